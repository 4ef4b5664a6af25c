package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/synapse/internal/service"
	"github.com/limbo/synapse/pkg/httputil"
)

type CompletionBody struct {
	CompletedCycles *int `json:"completed_cycles,omitempty"`
}

func (s *Server) CompleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := uidOrUnauthorized(w, r, "complete task")
	if !ok {
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("complete task error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	completion, err := s.activityService.CompleteTask(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "complete task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, completion)
	logger.Info("task completed", slog.String("task_id", id.String()), slog.Bool("early", completion.CompletedEarly))
}

// FinishSession accepts an optional body with the pomodoro cycles done
func (s *Server) FinishSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := uidOrUnauthorized(w, r, "finish session")
	if !ok {
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("finish session error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid session id in path value", nil)
		return
	}
	var body CompletionBody
	if r.ContentLength > 0 {
		if err = httputil.DecodeJSONBody(r, &body); err != nil {
			logger.Error("finish session error: invalid request body")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	completion, err := s.activityService.FinishSession(ctx, uid, id, &service.FinishSessionRequest{
		CompletedCycles: body.CompletedCycles,
	})
	if err != nil {
		writeServiceError(w, logger, "finish session", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, completion)
	logger.Info("session finished", slog.String("session_id", id.String()))
}
