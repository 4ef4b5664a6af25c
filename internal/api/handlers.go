package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/limbo/synapse/internal/error_values"
	"github.com/limbo/synapse/internal/service"
	"github.com/limbo/synapse/pkg/httputil"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserExists):
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("registering error: invalid credentials format")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid name or password format", err)
		default:
			logger.Error("registering error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
			return
		}
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

// writeServiceError maps known domain errors to client statuses, the rest gives 500
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	var (
		status  int
		message string
		details error
	)
	switch {
	case errors.Is(err, errorvalues.ErrRewardNotFound):
		status, message = http.StatusNotFound, "reward doesn't exist"
	case errors.Is(err, errorvalues.ErrUserRewardNotFound):
		status, message = http.StatusNotFound, "reward is not held by user"
	case errors.Is(err, errorvalues.ErrTaskNotFound):
		status, message = http.StatusNotFound, "task doesn't exist"
	case errors.Is(err, errorvalues.ErrSessionNotFound):
		status, message = http.StatusNotFound, "session doesn't exist"
	// Foreign resources are reported as missing ones
	case errors.Is(err, errorvalues.ErrWrongOwner):
		status, message = http.StatusNotFound, "resource doesn't exist"
	case errors.Is(err, errorvalues.ErrUserNotFound):
		status, message = http.StatusNotFound, "user doesn't exist"
	case errors.Is(err, errorvalues.ErrRewardExists):
		status, message = http.StatusConflict, "reward with such name already exists"
	case errors.Is(err, errorvalues.ErrRewardConsumed):
		status, message = http.StatusConflict, "reward already consumed"
	case errors.Is(err, errorvalues.ErrTaskCompleted):
		status, message = http.StatusConflict, "task already completed"
	case errors.Is(err, errorvalues.ErrSessionFinished):
		status, message = http.StatusConflict, "session is not running"
	case errors.Is(err, errorvalues.ErrInvalidRequirements), errors.Is(err, errorvalues.ErrValidation):
		status, message, details = http.StatusBadRequest, "invalid request", err
	case errors.Is(err, errorvalues.ErrInvalidDate):
		status, message = http.StatusBadRequest, "invalid date"
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
		return
	}
	logger.Error(op+" error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, status, message, details)
}
