package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/synapse/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type RewardRequest struct {
	Name         string              `validate:"required,min=3,max=100"`
	Description  string              `validate:"max=500"`
	Type         entity.RewardType   `validate:"required,reward_type"`
	Value        int                 `validate:"gte=0"`
	Requirements entity.Requirements `validate:"required"`
}

func (req *RewardRequest) toReward() entity.Reward {
	return entity.Reward{
		Name:         req.Name,
		Description:  req.Description,
		Type:         req.Type,
		Value:        req.Value,
		Requirements: req.Requirements,
	}
}

type FinishSessionRequest struct {
	// Pomodoro cycles actually done. Nil keeps the stored value
	CompletedCycles *int `validate:"omitempty,gte=0"`
}

type StatsProvider interface {
	// Computes every activity counter of user from stored data
	Snapshot(ctx context.Context, uid uuid.UUID) (entity.StatsSnapshot, error)
}

type StreakCounter interface {
	// Counts consecutive active days up to today
	OverallStreak(ctx context.Context, uid uuid.UUID) (int, error)
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type RewardCatalogI interface {
	List(ctx context.Context) ([]entity.Reward, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Reward, error)
	// Validates requirement document and stores new reward
	Create(ctx context.Context, req *RewardRequest) (*entity.Reward, error)
	Update(ctx context.Context, id uuid.UUID, req *RewardRequest) (*entity.Reward, error)
	Levels() []entity.RewardLevel
}

type RewardEngineI interface {
	// Runs the whole verification pass, granting every reward user became eligible for
	VerifyAndGrantAll(ctx context.Context, uid uuid.UUID) (*entity.GrantReport, error)
	GetUserStatsReport(ctx context.Context, uid uuid.UUID) (*entity.StatsReport, error)
	AvailableRewards(ctx context.Context, uid uuid.UUID) ([]entity.AvailableReward, error)
	UserRewards(ctx context.Context, uid uuid.UUID) ([]entity.OwnedReward, error)
	Consume(ctx context.Context, uid, rewardID uuid.UUID) error
}

type ProgressServiceI interface {
	GetOrCreateToday(ctx context.Context, uid uuid.UUID) (*entity.ProgressDay, error)
	Recompute(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.ProgressDay, error)
	// Gives Monday to Sunday week holding anyDate
	WeekSummary(ctx context.Context, uid uuid.UUID, anyDate time.Time) (*entity.WeekSummary, error)
	MonthSummary(ctx context.Context, uid uuid.UUID, year int, month time.Month) (*entity.MonthSummary, error)
	OverallStreak(ctx context.Context, uid uuid.UUID) (int, error)
}

type ActivityServiceI interface {
	CompleteTask(ctx context.Context, uid, taskID uuid.UUID) (*entity.TaskCompletion, error)
	FinishSession(ctx context.Context, uid, sessionID uuid.UUID, req *FinishSessionRequest) (*entity.SessionCompletion, error)
}
