package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProgressDay struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"uid"`
	Day            time.Time `json:"day"`
	MinutesStudied int       `json:"minutes_studied"`
	TasksCompleted int       `json:"tasks_completed"`
	Sessions       int       `json:"sessions_completed"`
	Points         int       `json:"points"`
}

// Active reports whether the day counts towards a streak.
func (p *ProgressDay) Active() bool {
	return p.MinutesStudied > 0 || p.Sessions > 0
}

type ProgressTotals struct {
	Minutes  int             `json:"minutes"`
	Hours    decimal.Decimal `json:"hours"`
	Tasks    int             `json:"tasks"`
	Sessions int             `json:"sessions"`
	Points   int             `json:"points"`
}

type WeekSummary struct {
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
	Days   []ProgressDay  `json:"days"`
	Totals ProgressTotals `json:"totals"`
}

type MonthStats struct {
	ProgressTotals
	ActiveDays     int             `json:"active_days"`
	DaysInMonth    int             `json:"days_in_month"`
	AverageMinutes decimal.Decimal `json:"average_minutes"`
	Streak         int             `json:"streak"`
}

type MonthSummary struct {
	Year     int           `json:"year"`
	Month    time.Month    `json:"month"`
	FirstDay time.Time     `json:"first_day"`
	LastDay  time.Time     `json:"last_day"`
	Days     []ProgressDay `json:"days"`
	Stats    MonthStats    `json:"stats"`
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}
