package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	errorvalues "github.com/limbo/synapse/internal/error_values"
	"github.com/limbo/synapse/internal/repository"
	"github.com/limbo/synapse/pkg/entity"
)

// Rows fetched per query while walking a streak backwards
const streakPage = 30

var sixty = decimal.NewFromInt(60)

type ProgressRollup struct {
	repo        repository.ProgressRepositoryI
	sessions    repository.SessionsRepositoryI
	tasks       repository.TasksRepositoryI
	userRewards repository.UserRewardsRepositoryI
	now         func() time.Time
}

func NewProgressRollup(
	repo repository.ProgressRepositoryI,
	sessions repository.SessionsRepositoryI,
	tasks repository.TasksRepositoryI,
	userRewards repository.UserRewardsRepositoryI,
	opts ...Option,
) *ProgressRollup {
	if repo == nil || sessions == nil || tasks == nil || userRewards == nil {
		log.Fatal("on progress rollup provided nil repos")
	}
	o := buildOptions(opts)
	return &ProgressRollup{
		repo:        repo,
		sessions:    sessions,
		tasks:       tasks,
		userRewards: userRewards,
		now:         o.now,
	}
}

func (pr *ProgressRollup) GetOrCreateToday(ctx context.Context, uid uuid.UUID) (*entity.ProgressDay, error) {
	day, err := pr.repo.GetOrCreate(ctx, uid, entity.DateOf(pr.now()))
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("progress repository error: " + err.Error())
	}
	return day, nil
}

// Recompute rebuilds the counters of (uid, date) from sessions, tasks and grants.
func (pr *ProgressRollup) Recompute(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.ProgressDay, error) {
	day := entity.DateOf(date)
	sessions, err := pr.sessions.FindCompletedByUserAndDay(ctx, uid, day)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	tasks, err := pr.tasks.CountCompletedByUserAndDay(ctx, uid, day)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	points, err := pr.userRewards.PointsByUserAndDay(ctx, uid, day)
	if err != nil {
		return nil, errors.New("user rewards repository error: " + err.Error())
	}
	progress := entity.ProgressDay{
		UserID:         uid,
		Day:            day,
		TasksCompleted: tasks,
		Sessions:       len(sessions),
		Points:         points,
	}
	for _, s := range sessions {
		progress.MinutesStudied += s.RealDuration
	}
	saved, err := pr.repo.Upsert(ctx, &progress)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("progress repository error: " + err.Error())
	}
	return saved, nil
}

// WeekSummary always gives 7 days, Monday to Sunday, zero-filling missing rows.
func (pr *ProgressRollup) WeekSummary(ctx context.Context, uid uuid.UUID, anyDate time.Time) (*entity.WeekSummary, error) {
	date := entity.DateOf(anyDate)
	monday := date.AddDate(0, 0, -((int(date.Weekday()) + 6) % 7))
	sunday := monday.AddDate(0, 0, 6)
	rows, err := pr.repo.FindByUserAndRange(ctx, uid, monday, sunday)
	if err != nil {
		return nil, errors.New("progress repository error: " + err.Error())
	}
	byDay := indexByDay(rows)
	summary := entity.WeekSummary{
		Start: monday,
		End:   sunday,
		Days:  make([]entity.ProgressDay, 0, 7),
	}
	for d := monday; !d.After(sunday); d = d.AddDate(0, 0, 1) {
		day, ok := byDay[dayKey(d)]
		if !ok {
			day = entity.ProgressDay{UserID: uid, Day: d}
		}
		summary.Days = append(summary.Days, day)
	}
	summary.Totals = totals(summary.Days)
	return &summary, nil
}

func (pr *ProgressRollup) MonthSummary(ctx context.Context, uid uuid.UUID, year int, month time.Month) (*entity.MonthSummary, error) {
	if year < 1 || year > 9999 || month < time.January || month > time.December {
		return nil, errorvalues.ErrInvalidDate
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	rows, err := pr.repo.FindByUserAndRange(ctx, uid, first, last)
	if err != nil {
		return nil, errors.New("progress repository error: " + err.Error())
	}
	daysInMonth := last.Day()
	stats := entity.MonthStats{
		ProgressTotals: totals(rows),
		DaysInMonth:    daysInMonth,
		Streak:         longestRun(rows, first, last),
	}
	for i := range rows {
		if rows[i].Active() {
			stats.ActiveDays++
		}
	}
	stats.AverageMinutes = decimal.NewFromInt(int64(stats.Minutes)).
		Div(decimal.NewFromInt(int64(daysInMonth))).Round(2)
	return &entity.MonthSummary{
		Year:     year,
		Month:    month,
		FirstDay: first,
		LastDay:  last,
		Days:     rows,
		Stats:    stats,
	}, nil
}

// OverallStreak walks back from today until the first day without activity.
// Today only adds to the streak, a quiet or missing today never breaks it.
func (pr *ProgressRollup) OverallStreak(ctx context.Context, uid uuid.UUID) (int, error) {
	today := entity.DateOf(pr.now())
	streak := 0
	to := today
	for {
		from := to.AddDate(0, 0, -(streakPage - 1))
		rows, err := pr.repo.FindByUserAndRange(ctx, uid, from, to)
		if err != nil {
			return 0, errors.New("progress repository error: " + err.Error())
		}
		byDay := indexByDay(rows)
		for d := to; !d.Before(from); d = d.AddDate(0, 0, -1) {
			day, ok := byDay[dayKey(d)]
			active := ok && day.Active()
			if d.Equal(today) && !active {
				continue
			}
			if !active {
				return streak, nil
			}
			streak++
		}
		to = from.AddDate(0, 0, -1)
	}
}

// longestRun finds the longest chain of consecutive active days within [first, last]
func longestRun(rows []entity.ProgressDay, first, last time.Time) int {
	byDay := indexByDay(rows)
	best, current := 0, 0
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		day, ok := byDay[dayKey(d)]
		if ok && day.Active() {
			current++
			best = max(best, current)
		} else {
			current = 0
		}
	}
	return best
}

func totals(days []entity.ProgressDay) entity.ProgressTotals {
	var t entity.ProgressTotals
	for _, d := range days {
		t.Minutes += d.MinutesStudied
		t.Tasks += d.TasksCompleted
		t.Sessions += d.Sessions
		t.Points += d.Points
	}
	t.Hours = decimal.NewFromInt(int64(t.Minutes)).Div(sixty).Round(2)
	return t
}

func indexByDay(rows []entity.ProgressDay) map[string]entity.ProgressDay {
	byDay := make(map[string]entity.ProgressDay, len(rows))
	for _, r := range rows {
		byDay[dayKey(r.Day)] = r
	}
	return byDay
}

func dayKey(t time.Time) string {
	return entity.DateOf(t).Format(time.DateOnly)
}
