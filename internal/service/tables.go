package service

import (
	"fmt"

	"github.com/limbo/synapse/pkg/entity"
)

// Level codes of the reward value table
const (
	LevelLow      = "BAJA"
	LevelMedium   = "MEDIA"
	LevelHigh     = "ALTA"
	LevelVeryHigh = "MUY_ALTA"
)

type UserLevel struct {
	// Upper bound (exclusive) of total points. Zero means no bound
	Below int
	Label string
}

type Milestone struct {
	Meditations int
	Title       string
}

// Tables groups the immutable catalog configuration. It is built once at start
// and handed to the components which need it.
type Tables struct {
	Levels     []entity.RewardLevel
	UserLevels []UserLevel
	Baseline   []entity.Reward
	Milestones []Milestone
}

func DefaultTables() *Tables {
	levels := []entity.RewardLevel{
		{Code: LevelLow, Name: "Bronce", Value: 10},
		{Code: LevelMedium, Name: "Plata", Value: 25},
		{Code: LevelHigh, Name: "Oro", Value: 50},
		{Code: LevelVeryHigh, Name: "Platino", Value: 100},
	}
	t := &Tables{
		Levels: levels,
		UserLevels: []UserLevel{
			{Below: 100, Label: "Principiante"},
			{Below: 300, Label: "Intermedio"},
			{Below: 600, Label: "Avanzado"},
			{Below: 1000, Label: "Experto"},
			{Label: "Maestro"},
		},
		Milestones: []Milestone{
			{Meditations: 5, Title: "Dedicado"},
			{Meditations: 10, Title: "Persistente"},
			{Meditations: 25, Title: "Experto"},
			{Meditations: 50, Title: "Maestro"},
			{Meditations: 100, Title: "Guru"},
		},
	}
	t.Baseline = []entity.Reward{
		baselineReward("Meditador Principiante", "Completa tu primera meditación",
			t.LevelValue(LevelLow), entity.CounterMeditations),
		baselineReward("Organizador Eficiente", "Completa una tarea en el tiempo asignado",
			t.LevelValue(LevelMedium), entity.CounterTasksOnTime),
		baselineReward("Maestro del Pomodoro", "Completa un ciclo completo de Pomodoro",
			t.LevelValue(LevelHigh), entity.CounterPomodoros),
		baselineReward("Productividad Extrema", "Completa una tarea en la mitad del tiempo asignado",
			t.LevelValue(LevelVeryHigh), entity.CounterTasksEarly),
		baselineReward("Concentración Total", "Completa un Pomodoro con modo no distracción activo",
			t.LevelValue(LevelVeryHigh), entity.CounterFocusedPomodoros),
	}
	return t
}

func baselineReward(name, desc string, value int, counter entity.Counter) entity.Reward {
	return entity.Reward{
		Name:         name,
		Description:  desc,
		Type:         entity.RewardPoints,
		Value:        value,
		Requirements: entity.Requirements{counter: entity.NewThreshold(1)},
	}
}

func (t *Tables) LevelValue(code string) int {
	for _, l := range t.Levels {
		if l.Code == code {
			return l.Value
		}
	}
	return 0
}

// UserLevel maps total points to the level label
func (t *Tables) UserLevel(points int) string {
	for _, l := range t.UserLevels {
		if l.Below == 0 || points < l.Below {
			return l.Label
		}
	}
	return ""
}

// MilestoneReward builds the reward granted for m meditations.
func (t *Tables) MilestoneReward(m Milestone) entity.Reward {
	var value int
	switch {
	case m.Meditations <= 5:
		value = t.LevelValue(LevelLow)
	case m.Meditations <= 15:
		value = t.LevelValue(LevelMedium)
	case m.Meditations <= 50:
		value = t.LevelValue(LevelHigh)
	default:
		value = t.LevelValue(LevelVeryHigh)
	}
	return entity.Reward{
		Name:         "Meditador " + m.Title,
		Description:  fmt.Sprintf("Completa %d meditaciones", m.Meditations),
		Type:         entity.RewardPoints,
		Value:        value,
		Requirements: entity.Requirements{entity.CounterMeditations: entity.NewThreshold(int64(m.Meditations))},
	}
}
