package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"

	"github.com/limbo/synapse/internal/api"
	"github.com/limbo/synapse/internal/repository"
	"github.com/limbo/synapse/internal/service"
	"github.com/limbo/synapse/pkg/cleanup"
	"github.com/limbo/synapse/pkg/config"
	jwtservice "github.com/limbo/synapse/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	if dir := cfg.GetString("MIGRATIONS_DIR"); dir != "" {
		migrate(dbCfg.ConnString()+"?sslmode=disable", dir)
	}

	pool := repository.NewPool(&dbCfg)
	tx := repository.NewTransactor(pool)
	sessionsRepo := repository.NewSessionsRepoWithConn(pool)
	tasksRepo := repository.NewTasksRepoWithConn(pool)
	userRewardsRepo := repository.NewUserRewardsRepoWithConn(pool)

	tables := service.DefaultTables()
	progress := service.NewProgressRollup(
		repository.NewProgressRepoWithConn(pool), sessionsRepo, tasksRepo, userRewardsRepo,
	)
	catalog := service.NewRewardCatalog(repository.NewRewardsRepoWithConn(pool), service.WithTables(tables))
	engine := service.NewRewardGrantEngine(
		tx, catalog, service.NewStatsAggregator(sessionsRepo, tasksRepo, progress), userRewardsRepo,
		service.WithTables(tables),
	)
	activity := service.NewActivityService(tx, tasksRepo, sessionsRepo, progress, engine)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	err := catalog.EnsureBaseline(ctx)
	cancel()
	if err != nil {
		log.Fatal("seeding baseline rewards error: " + err.Error())
	}

	serv := api.New(&api.ServicesList{
		UserService:     service.NewUserService(repository.NewUsersRepoWithConn(pool)),
		RewardCatalog:   catalog,
		RewardEngine:    engine,
		ProgressService: progress,
		ActivityService: activity,
		JwtService:      jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", time.Hour)),
		CORSOrigins:     cfg.GetList("CORS_ORIGINS"),
	})
	cleanup.Register(&cleanup.Job{
		Name: "stopping http server",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
			defer cancel()
			return serv.Shutdown(ctx)
		},
	})

	go func() {
		address := cfg.GetStringOr("API_ADDRESS", ":8080")
		log.Println("Server starting on " + address)
		if err := serv.Run(address); err != nil {
			log.Println("Server error: " + err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")
	cleanup.CleanUp()
}

func migrate(connStr, dir string) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("opening migrations connection error: " + err.Error())
	}
	defer db.Close()
	if err = goose.Up(db, dir); err != nil {
		log.Fatal("applying migrations error: " + err.Error())
	}
}
