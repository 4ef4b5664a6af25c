package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/synapse/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type SessionsRepositoryI interface {
	// Lists sessions of user made with technique (by its name) in given state. Unknown technique gives empty list
	FindByUserAndTechnique(ctx context.Context, uid uuid.UUID, technique string, state entity.State) ([]entity.Session, error)
	// Lists all sessions of user in given state
	FindByUserAndState(ctx context.Context, uid uuid.UUID, state entity.State) ([]entity.Session, error)
	// Lists completed sessions started on given date
	FindCompletedByUserAndDay(ctx context.Context, uid uuid.UUID, day time.Time) ([]entity.Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	// Marks running session as completed. Params are stored back as given
	Finish(ctx context.Context, session *entity.Session) error
}

type TasksRepositoryI interface {
	// Lists tasks of user in given state
	FindByUserAndState(ctx context.Context, uid uuid.UUID, state entity.State) ([]entity.Task, error)
	// Counts tasks completed on given date
	CountCompletedByUserAndDay(ctx context.Context, uid uuid.UUID, day time.Time) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	// Sets completed state and completion timestamp
	Complete(ctx context.Context, id uuid.UUID, completedAt time.Time) error
}

type ProgressRepositoryI interface {
	// Provides progress rows of user for a period (both ends included), ordered by day
	FindByUserAndRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.ProgressDay, error)
	// Returns row for the day, inserting zero-valued one if absent
	GetOrCreate(ctx context.Context, uid uuid.UUID, day time.Time) (*entity.ProgressDay, error)
	// Inserts or overwrites counters of (user, day) row
	Upsert(ctx context.Context, day *entity.ProgressDay) (*entity.ProgressDay, error)
}

type RewardsRepositoryI interface {
	FindByName(ctx context.Context, name string) (*entity.Reward, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Reward, error)
	// Creates reward. Duplicated name gives ErrRewardExists
	Insert(ctx context.Context, reward *entity.Reward) (uuid.UUID, error)
	// Creates reward unless one with the same name exists. Reports if row was inserted
	InsertIfAbsent(ctx context.Context, reward *entity.Reward) (bool, error)
	Update(ctx context.Context, reward *entity.Reward) error
	// Lists whole catalog ordered by value and name
	List(ctx context.Context) ([]entity.Reward, error)
}

type UserRewardsRepositoryI interface {
	// Returns grant row or ErrUserRewardNotFound
	Find(ctx context.Context, uid, rewardID uuid.UUID) (*entity.UserReward, error)
	// Grants reward. Already granted pair gives ErrUserRewardExists
	Insert(ctx context.Context, uid, rewardID uuid.UUID) error
	// Lists rewards held by user, newest first
	ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.OwnedReward, error)
	// Counts held rewards and sums their values
	Summary(ctx context.Context, uid uuid.UUID) (*entity.RewardsSummary, error)
	// Sums values of rewards obtained on given date
	PointsByUserAndDay(ctx context.Context, uid uuid.UUID, day time.Time) (int, error)
	// Flips consumed flag. Gives ErrUserRewardNotFound or ErrRewardConsumed
	Consume(ctx context.Context, uid, rewardID uuid.UUID) error
}

type TransactorI interface {
	// Runs fn inside a transaction. Repositories called with the provided ctx take part in it
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// querier is the part of PgConnection shared with pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
