package entity

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	Role         Role
}

// Technique names as seeded in the techniques table.
const (
	TechniquePomodoro   = "Pomodoro"
	TechniqueMeditation = "Meditación"
)

// State shared by sessions and tasks.
type State string

const (
	StatePending   State = "Pendiente"
	StateRunning   State = "EnEjecucion"
	StateCompleted State = "Completado"
	StateCancelled State = "Cancelado"
)

type Session struct {
	ID           uuid.UUID     `json:"id"`
	UserID       uuid.UUID     `json:"uid"`
	Technique    string        `json:"technique"`
	State        State         `json:"state"`
	StartedAt    time.Time     `json:"started_at"`
	EndedAt      *time.Time    `json:"ended_at,omitempty"`
	RealDuration int           `json:"real_duration"`
	Params       SessionParams `json:"params"`
}

// SessionParams holds the decoded per-technique parameters of a session.
// At most one variant is set, selected by the session's technique.
type SessionParams struct {
	Pomodoro   *PomodoroParams   `json:"pomodoro,omitempty"`
	Meditation *MeditationParams `json:"meditation,omitempty"`
	// Stored keys the variants don't model, written back untouched
	Extra map[string]any `json:"-"`
}

type PomodoroParams struct {
	WorkMinutes     int  `json:"duracion_trabajo"`
	BreakMinutes    int  `json:"duracion_descanso"`
	TargetCycles    int  `json:"ciclos_objetivo"`
	CompletedCycles int  `json:"ciclos_completados"`
	NoDistraction   bool `json:"modo_no_distraccion"`
}

// Complete reports whether every targeted cycle was done.
func (p *PomodoroParams) Complete() bool {
	return p.CompletedCycles >= p.TargetCycles
}

type MeditationParams struct {
	Kind            string `json:"tipo_meditacion"`
	PlannedMinutes  int    `json:"duracion_planificada"`
	BackgroundSound string `json:"sonido_fondo,omitempty"`
}

type Task struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"uid"`
	Title       string     `json:"title"`
	State       State      `json:"state"`
	CreatedAt   time.Time  `json:"created_at"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Comment     string     `json:"comment,omitempty"`
}

// TaskCompletion describes how a task was closed relative to its due date.
type TaskCompletion struct {
	TaskID         uuid.UUID  `json:"task_id"`
	CompletedAt    time.Time  `json:"completed_at"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	OnTime         bool       `json:"on_time"`
	CompletedEarly bool       `json:"completed_early"`
	DaysAhead      int        `json:"days_ahead"`
	Granted        []Reward   `json:"granted_rewards"`
}

type SessionCompletion struct {
	Session *Session `json:"session"`
	Granted []Reward `json:"granted_rewards"`
}
