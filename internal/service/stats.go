package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/synapse/internal/repository"
	"github.com/limbo/synapse/pkg/entity"
)

// StatsAggregator computes activity counters straight from stored sessions
// and tasks. Nothing is cached.
type StatsAggregator struct {
	sessions repository.SessionsRepositoryI
	tasks    repository.TasksRepositoryI
	streaks  StreakCounter
}

func NewStatsAggregator(sessions repository.SessionsRepositoryI, tasks repository.TasksRepositoryI, streaks StreakCounter) *StatsAggregator {
	if sessions == nil || tasks == nil || streaks == nil {
		log.Fatal("on stats aggregator provided nil dependencies")
	}
	return &StatsAggregator{
		sessions: sessions,
		tasks:    tasks,
		streaks:  streaks,
	}
}

func (sa *StatsAggregator) Snapshot(ctx context.Context, uid uuid.UUID) (entity.StatsSnapshot, error) {
	stats := entity.StatsSnapshot{
		entity.CounterMeditations:      0,
		entity.CounterPomodoros:        0,
		entity.CounterFocusedPomodoros: 0,
		entity.CounterTasksOnTime:      0,
		entity.CounterTasksEarly:       0,
		entity.CounterSessions:         0,
		entity.CounterTotalMinutes:     0,
		entity.CounterConsecutiveDays:  0,
	}

	meditations, err := sa.sessions.FindByUserAndTechnique(ctx, uid, entity.TechniqueMeditation, entity.StateCompleted)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	stats[entity.CounterMeditations] = len(meditations)

	pomodoros, err := sa.sessions.FindByUserAndTechnique(ctx, uid, entity.TechniquePomodoro, entity.StateCompleted)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	for _, s := range pomodoros {
		p := s.Params.Pomodoro
		if p == nil || !p.Complete() {
			continue
		}
		stats[entity.CounterPomodoros]++
		if p.NoDistraction {
			stats[entity.CounterFocusedPomodoros]++
		}
	}

	completed, err := sa.sessions.FindByUserAndState(ctx, uid, entity.StateCompleted)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	stats[entity.CounterSessions] = len(completed)
	for _, s := range completed {
		stats[entity.CounterTotalMinutes] += s.RealDuration
	}

	tasks, err := sa.tasks.FindByUserAndState(ctx, uid, entity.StateCompleted)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	for i := range tasks {
		if CompletedOnTime(&tasks[i]) {
			stats[entity.CounterTasksOnTime]++
		}
		if CompletedEarly(&tasks[i]) {
			stats[entity.CounterTasksEarly]++
		}
	}

	streak, err := sa.streaks.OverallStreak(ctx, uid)
	if err != nil {
		return nil, err
	}
	stats[entity.CounterConsecutiveDays] = streak
	return stats, nil
}

// CompletedOnTime: the task has a due date and was not overdue when completed
func CompletedOnTime(t *entity.Task) bool {
	if t.DueDate == nil || t.CompletedAt == nil {
		return false
	}
	return !entity.DateOf(*t.CompletedAt).After(entity.DateOf(*t.DueDate))
}

// CompletedEarly: the task was closed before its due date with at least half
// of the creation-to-due window (whole days, rounded down) still left.
// Empty windows never count.
func CompletedEarly(t *entity.Task) bool {
	if t.DueDate == nil || t.CompletedAt == nil {
		return false
	}
	window := entity.DaysBetween(t.CreatedAt, *t.DueDate)
	if window <= 0 {
		return false
	}
	ahead := DaysAhead(*t.CompletedAt, *t.DueDate)
	return ahead > 0 && ahead >= window/2
}

// DaysAhead counts whole days left until due at completion time
func DaysAhead(completedAt, due time.Time) int {
	return entity.DaysBetween(completedAt, due)
}
