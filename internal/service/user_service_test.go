package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/limbo/synapse/internal/error_values"
	"github.com/limbo/synapse/internal/repository"
	"github.com/limbo/synapse/internal/service"
	"github.com/limbo/synapse/pkg/entity"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	testCases := []struct {
		Name        string
		Request     service.RegisterRequest
		MockPrep    func(f *fixture)
		ExpectedErr error
	}{
		{
			Name:    "registered",
			Request: service.RegisterRequest{Name: "ana_maria", Password: "long_password"},
			MockPrep: func(f *fixture) {
				f.users.EXPECT().Create(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, u *entity.User) error {
						if u.Role != entity.RoleUser || u.Name != "ana_maria" {
							return errors.New("unexpected user")
						}
						return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("long_password"))
					})
				f.users.EXPECT().FindByName(ctx, "ana_maria").
					Return(&entity.User{ID: uuid.New(), Name: "ana_maria", Role: entity.RoleUser}, nil)
			},
		},
		{
			Name:        "short password",
			Request:     service.RegisterRequest{Name: "ana_maria", Password: "short"},
			MockPrep:    func(f *fixture) {},
			ExpectedErr: errorvalues.ErrValidation,
		},
		{
			Name:        "name starting with digit",
			Request:     service.RegisterRequest{Name: "1ana", Password: "long_password"},
			MockPrep:    func(f *fixture) {},
			ExpectedErr: errorvalues.ErrValidation,
		},
		{
			Name:    "taken name",
			Request: service.RegisterRequest{Name: "ana_maria", Password: "long_password"},
			MockPrep: func(f *fixture) {
				f.users.EXPECT().Create(ctx, gomock.Any()).Return(errorvalues.ErrUserExists)
			},
			ExpectedErr: errorvalues.ErrUserExists,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			f := newFixture(t)
			tc.MockPrep(f)
			user, err := service.NewUserService(f.users).Register(ctx, &tc.Request)
			if tc.ExpectedErr != nil {
				assert.ErrorIs(t, err, tc.ExpectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Request.Name, user.Name)
		})
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := service.Hash("long_password")
	require.NoError(t, err)
	user := &entity.User{ID: uuid.New(), Name: "ana_maria", PasswordHash: hash, Role: entity.RoleUser}

	t.Run("logged in", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().FindByName(ctx, user.Name).Return(user, nil)
		res, err := service.NewUserService(f.users).Login(ctx, user.Name, "long_password")
		require.NoError(t, err)
		assert.Equal(t, user.ID, res.ID)
	})
	t.Run("wrong password", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().FindByName(ctx, user.Name).Return(user, nil)
		_, err := service.NewUserService(f.users).Login(ctx, user.Name, "other_password")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().FindByName(ctx, "nobody").Return(nil, errorvalues.ErrUserNotFound)
		_, err := service.NewUserService(f.users).Login(ctx, "nobody", "long_password")
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestRewardFlowIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	dbCfg := setupTestDB(t)
	pool := repository.NewPool(dbCfg)
	t.Cleanup(pool.Close)
	ctx := context.Background()

	sessionsRepo := repository.NewSessionsRepoWithConn(pool)
	tasksRepo := repository.NewTasksRepoWithConn(pool)
	userRewardsRepo := repository.NewUserRewardsRepoWithConn(pool)
	tx := repository.NewTransactor(pool)
	progress := service.NewProgressRollup(repository.NewProgressRepoWithConn(pool), sessionsRepo, tasksRepo, userRewardsRepo)
	catalog := service.NewRewardCatalog(repository.NewRewardsRepoWithConn(pool))
	engine := service.NewRewardGrantEngine(tx, catalog, service.NewStatsAggregator(sessionsRepo, tasksRepo, progress), userRewardsRepo)
	activity := service.NewActivityService(tx, tasksRepo, sessionsRepo, progress, engine)
	us := service.NewUserService(repository.NewUsersRepoWithConn(pool))

	user, err := us.Register(ctx, &service.RegisterRequest{Name: "test_user", Password: "test_password"})
	require.NoError(t, err)
	require.NoError(t, catalog.EnsureBaseline(ctx))

	var sessionID uuid.UUID
	err = pool.QueryRow(ctx, `INSERT INTO sessions (user_id, technique_id, state, started_at)
		SELECT $1, id, 'EnEjecucion', NOW() - INTERVAL '15 minutes' FROM techniques WHERE name = 'Meditación'
		RETURNING id;`, user.ID).Scan(&sessionID)
	require.NoError(t, err)

	t.Run("finished meditation grants beginner reward", func(t *testing.T) {
		completion, err := activity.FinishSession(ctx, user.ID, sessionID, nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, completion.Session.RealDuration, 15)
		require.Len(t, completion.Granted, 1)
		assert.Equal(t, "Meditador Principiante", completion.Granted[0].Name)
	})
	t.Run("second finish rejected", func(t *testing.T) {
		_, err := activity.FinishSession(ctx, user.ID, sessionID, nil)
		assert.ErrorIs(t, err, errorvalues.ErrSessionFinished)
	})
	t.Run("verification is idempotent", func(t *testing.T) {
		report, err := engine.VerifyAndGrantAll(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, report.Granted)
		assert.Equal(t, 1, report.Stats[entity.CounterMeditations])
	})
	t.Run("progress of today updated", func(t *testing.T) {
		today, err := progress.GetOrCreateToday(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, today.Sessions)
		assert.Equal(t, 10, today.Points)
		streak, err := progress.OverallStreak(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, streak)
	})
	t.Run("stats report", func(t *testing.T) {
		report, err := engine.GetUserStatsReport(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, report.TotalRewards)
		assert.Equal(t, 10, report.TotalPoints)
		assert.Equal(t, "Principiante", report.Level)
	})
	t.Run("consumed once", func(t *testing.T) {
		owned, err := engine.UserRewards(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, owned, 1)
		require.NoError(t, engine.Consume(ctx, user.ID, owned[0].ID))
		assert.ErrorIs(t, engine.Consume(ctx, user.ID, owned[0].ID), errorvalues.ErrRewardConsumed)
		assert.ErrorIs(t, engine.Consume(ctx, user.ID, uuid.New()), errorvalues.ErrUserRewardNotFound)
	})
	t.Run("account deleted", func(t *testing.T) {
		assert.ErrorIs(t, us.DeleteAccount(ctx, user.ID, "wrong_password"), errorvalues.ErrWrongCredentials)
		assert.NoError(t, us.DeleteAccount(ctx, user.ID, "test_password"))
		_, err := us.GetByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("synapse"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}

	conn.Close()
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	return &testPGConfig{
		connStr: connStr,
	}
}
