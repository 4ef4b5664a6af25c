package entity

import (
	"bytes"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Counter names a derived activity statistic a reward may require.
type Counter string

const (
	CounterMeditations      Counter = "meditaciones_completadas"
	CounterPomodoros        Counter = "pomodoros_completos"
	CounterFocusedPomodoros Counter = "pomodoros_sin_distraccion"
	CounterTasksOnTime      Counter = "tareas_completadas_tiempo"
	CounterTasksEarly       Counter = "tareas_anticipadas_mitad_tiempo"
	CounterSessions         Counter = "sesiones_completadas"
	CounterTotalMinutes     Counter = "tiempo_total_minutos"
	CounterConsecutiveDays  Counter = "dias_consecutivos"
)

var knownCounters = map[Counter]struct{}{
	CounterMeditations:      {},
	CounterPomodoros:        {},
	CounterFocusedPomodoros: {},
	CounterTasksOnTime:      {},
	CounterTasksEarly:       {},
	CounterSessions:         {},
	CounterTotalMinutes:     {},
	CounterConsecutiveDays:  {},
}

func (c Counter) Known() bool {
	_, ok := knownCounters[c]
	return ok
}

// Threshold is a requirement value read from a stored document. Values that
// are not numbers decode as invalid instead of failing the whole document.
type Threshold struct {
	Value decimal.Decimal
	Valid bool
}

func NewThreshold(v int64) Threshold {
	return Threshold{Value: decimal.NewFromInt(v), Valid: true}
}

func (t Threshold) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return []byte(t.Value.String()), nil
}

func (t *Threshold) UnmarshalJSON(data []byte) error {
	t.Valid = false
	t.Value = decimal.Zero
	data = bytes.TrimSpace(data)
	// Quoted values are kept invalid even when they look numeric.
	if len(data) == 0 || data[0] == '"' || bytes.Equal(data, []byte("null")) {
		return nil
	}
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return nil
	}
	t.Value = d
	t.Valid = true
	return nil
}

type Requirements map[Counter]Threshold

type RewardType string

const (
	RewardPoints        RewardType = "puntos"
	RewardTechnique     RewardType = "tecnica"
	RewardCustomization RewardType = "personalizacion"
)

type Reward struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Type         RewardType   `json:"type"`
	Value        int          `json:"value"`
	Requirements Requirements `json:"requirements"`
}

type UserReward struct {
	UserID     uuid.UUID `json:"uid"`
	RewardID   uuid.UUID `json:"reward_id"`
	ObtainedAt time.Time `json:"obtained_at"`
	Consumed   bool      `json:"consumed"`
}

// OwnedReward is a reward joined with the holder's grant row.
type OwnedReward struct {
	Reward
	ObtainedAt time.Time `json:"obtained_at"`
	Consumed   bool      `json:"consumed"`
}

type RewardsSummary struct {
	Count       int `json:"total_rewards"`
	TotalPoints int `json:"total_points"`
}

type StatsSnapshot map[Counter]int

type RequirementProgress struct {
	Actual     int             `json:"actual"`
	Required   decimal.Decimal `json:"required"`
	Percentage decimal.Decimal `json:"percentage"`
}

type AvailableReward struct {
	Reward
	CanObtain bool                            `json:"can_obtain"`
	Progress  map[Counter]RequirementProgress `json:"progress"`
}

type GrantReport struct {
	Granted []Reward      `json:"granted"`
	Stats   StatsSnapshot `json:"stats"`
}

type StatsReport struct {
	Stats        StatsSnapshot `json:"activity_stats"`
	TotalRewards int           `json:"total_rewards"`
	TotalPoints  int           `json:"total_points"`
	Level        string        `json:"level"`
}

type RewardLevel struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}
