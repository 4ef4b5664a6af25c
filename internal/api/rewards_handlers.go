package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/synapse/internal/service"
	"github.com/limbo/synapse/pkg/entity"
	"github.com/limbo/synapse/pkg/httputil"
)

type RewardBody struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Type         string              `json:"type"`
	Value        int                 `json:"value"`
	Requirements entity.Requirements `json:"requirements"`
}

func (b *RewardBody) toRequest() *service.RewardRequest {
	return &service.RewardRequest{
		Name:         b.Name,
		Description:  b.Description,
		Type:         entity.RewardType(b.Type),
		Value:        b.Value,
		Requirements: b.Requirements,
	}
}

type ListRewardsResponse struct {
	Rewards []entity.Reward `json:"rewards"`
	Total   int             `json:"total"`
}

type AvailableRewardsResponse struct {
	Rewards []entity.AvailableReward `json:"rewards"`
	Total   int                      `json:"total"`
}

type MyRewardsResponse struct {
	UserID  string               `json:"uid"`
	Rewards []entity.OwnedReward `json:"rewards"`
	Total   int                  `json:"total"`
}

func (s *Server) ListRewards(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	rewards, err := s.rewardCatalog.List(ctx)
	if err != nil {
		writeServiceError(w, logger, "list rewards", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ListRewardsResponse{
		Rewards: rewards,
		Total:   len(rewards),
	})
	logger.Info("rewards listed")
}

func (s *Server) GetReward(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get reward error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reward id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	reward, err := s.rewardCatalog.Get(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "get reward", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reward)
	logger.Info("reward provided")
}

func (s *Server) CreateReward(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var body RewardBody
	if err := httputil.DecodeJSONBody(r, &body); err != nil {
		logger.Error("create reward error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	reward, err := s.rewardCatalog.Create(ctx, body.toRequest())
	if err != nil {
		writeServiceError(w, logger, "create reward", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, reward)
	logger.Info("reward created", slog.String("reward_id", reward.ID.String()))
}

func (s *Server) UpdateReward(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update reward error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reward id in path value", nil)
		return
	}
	var body RewardBody
	if err = httputil.DecodeJSONBody(r, &body); err != nil {
		logger.Error("update reward error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	reward, err := s.rewardCatalog.Update(ctx, id, body.toRequest())
	if err != nil {
		writeServiceError(w, logger, "update reward", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reward)
	logger.Info("reward updated", slog.String("reward_id", id.String()))
}

func (s *Server) RewardLevels(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"levels": s.rewardCatalog.Levels(),
	})
}

func (s *Server) AvailableRewards(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := uidOrUnauthorized(w, r, "available rewards")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	rewards, err := s.rewardEngine.AvailableRewards(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "available rewards", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AvailableRewardsResponse{
		Rewards: rewards,
		Total:   len(rewards),
	})
	logger.Info("available rewards provided")
}

func (s *Server) MyRewards(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := uidOrUnauthorized(w, r, "user rewards")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	rewards, err := s.rewardEngine.UserRewards(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "user rewards", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, MyRewardsResponse{
		UserID:  uid.String(),
		Rewards: rewards,
		Total:   len(rewards),
	})
	logger.Info("user rewards provided")
}

func (s *Server) StatsReport(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := uidOrUnauthorized(w, r, "stats report")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	report, err := s.rewardEngine.GetUserStatsReport(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "stats report", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
	logger.Info("stats report provided")
}

func (s *Server) VerifyRewards(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := uidOrUnauthorized(w, r, "verify rewards")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	report, err := s.rewardEngine.VerifyAndGrantAll(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "verify rewards", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
	logger.Info("rewards verified", slog.Int("granted", len(report.Granted)))
}

func (s *Server) ConsumeReward(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := uidOrUnauthorized(w, r, "consume reward")
	if !ok {
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("consume reward error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reward id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err = s.rewardEngine.Consume(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "consume reward", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"reward_id": id.String(),
		"consumed":  true,
	})
	logger.Info("reward consumed", slog.String("reward_id", id.String()))
}

func uidOrUnauthorized(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.UUID{}, false
	}
	return uid, true
}
