package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/limbo/synapse/internal/service"
)

type Server struct {
	mx              *chi.Mux
	srv             *http.Server
	userService     service.UserServiceI
	rewardCatalog   service.RewardCatalogI
	rewardEngine    service.RewardEngineI
	progressService service.ProgressServiceI
	activityService service.ActivityServiceI
	jwtService      JWTServiceI
}

type ServicesList struct {
	UserService     service.UserServiceI
	RewardCatalog   service.RewardCatalogI
	RewardEngine    service.RewardEngineI
	ProgressService service.ProgressServiceI
	ActivityService service.ActivityServiceI
	JwtService      JWTServiceI
	// Origins allowed by CORS. Empty list allows any
	CORSOrigins []string
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		rewardCatalog:   servicesOptions.RewardCatalog,
		rewardEngine:    servicesOptions.RewardEngine,
		progressService: servicesOptions.ProgressService,
		activityService: servicesOptions.ActivityService,
		jwtService:      servicesOptions.JwtService,
	}
	s.srv = &http.Server{
		Handler:           s.mx,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	s.mountRoutes(servicesOptions.CORSOrigins)
	return s
}

func (s *Server) mountRoutes(origins []string) {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.mx.Use(middleware.RealIP)
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	s.mx.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)
	})

	s.mx.Route("/api", func(r chi.Router) {
		r.Use(s.AuthMiddleware)
		r.Use(s.LoggerExtensionMiddleware)

		r.Route("/rewards", func(r chi.Router) {
			r.Get("/", s.ListRewards)
			r.Get("/levels", s.RewardLevels)
			r.Get("/available", s.AvailableRewards)
			r.Get("/mine", s.MyRewards)
			r.Get("/stats", s.StatsReport)
			r.Post("/verify", s.VerifyRewards)
			r.Get("/{id}", s.GetReward)
			r.Post("/{id}/consume", s.ConsumeReward)
			r.Group(func(r chi.Router) {
				r.Use(s.AdminOnlyMiddleware)
				r.Post("/", s.CreateReward)
				r.Put("/{id}", s.UpdateReward)
			})
		})

		r.Route("/progress", func(r chi.Router) {
			r.Get("/today", s.TodayProgress)
			r.Post("/recompute", s.RecomputeProgress)
			r.Get("/week", s.WeekProgress)
			r.Get("/month", s.MonthProgress)
			r.Get("/streak", s.Streak)
		})

		r.Post("/tasks/{id}/complete", s.CompleteTask)
		r.Post("/sessions/{id}/finish", s.FinishSession)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run blocks until the server is stopped. Shutdown makes it return nil
func (s *Server) Run(address string) error {
	s.srv.Addr = address
	err := s.srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
