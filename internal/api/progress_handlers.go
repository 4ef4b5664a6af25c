package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/limbo/synapse/pkg/entity"
	"github.com/limbo/synapse/pkg/httputil"
)

type StreakResponse struct {
	UserID string `json:"uid"`
	Streak int    `json:"streak"`
}

func (s *Server) TodayProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := uidOrUnauthorized(w, r, "today progress")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	day, err := s.progressService.GetOrCreateToday(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "today progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, day)
	logger.Info("today progress provided")
}

// RecomputeProgress rebuilds counters of the day given by "date" query param, today by default
func (s *Server) RecomputeProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := uidOrUnauthorized(w, r, "recompute progress")
	if !ok {
		return
	}
	date, err := dateFromQuery(r)
	if err != nil {
		logger.Error("recompute progress error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	day, err := s.progressService.Recompute(ctx, uid, date)
	if err != nil {
		writeServiceError(w, logger, "recompute progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, day)
	logger.Info("progress recomputed", slog.String("day", day.Day.Format(time.DateOnly)))
}

func (s *Server) WeekProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := uidOrUnauthorized(w, r, "week progress")
	if !ok {
		return
	}
	date, err := dateFromQuery(r)
	if err != nil {
		logger.Error("week progress error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	week, err := s.progressService.WeekSummary(ctx, uid, date)
	if err != nil {
		writeServiceError(w, logger, "week progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, week)
	logger.Info("week progress provided")
}

// MonthProgress reads "year" and "month" query params. Missing ones default to the current month
func (s *Server) MonthProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := uidOrUnauthorized(w, r, "month progress")
	if !ok {
		return
	}
	now := time.Now().UTC()
	year, month := now.Year(), int(now.Month())
	var err error
	if v := r.URL.Query().Get("year"); v != "" {
		if year, err = strconv.Atoi(v); err != nil {
			logger.Error("month progress error: invalid year")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid year", nil)
			return
		}
	}
	if v := r.URL.Query().Get("month"); v != "" {
		if month, err = strconv.Atoi(v); err != nil {
			logger.Error("month progress error: invalid month")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid month", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	summary, err := s.progressService.MonthSummary(ctx, uid, year, time.Month(month))
	if err != nil {
		writeServiceError(w, logger, "month progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("month progress provided")
}

func (s *Server) Streak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := uidOrUnauthorized(w, r, "streak")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	streak, err := s.progressService.OverallStreak(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "streak", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, StreakResponse{
		UserID: uid.String(),
		Streak: streak,
	})
	logger.Info("streak provided")
}

// dateFromQuery parses "date" query param, falling back to today
func dateFromQuery(r *http.Request) (time.Time, error) {
	v := r.URL.Query().Get("date")
	if v == "" {
		return entity.DateOf(time.Now()), nil
	}
	return time.Parse(time.DateOnly, v)
}
