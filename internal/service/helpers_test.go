package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	repomocks "github.com/limbo/synapse/internal/repository/mocks"
	"github.com/limbo/synapse/internal/service"
	svcmocks "github.com/limbo/synapse/internal/service/mocks"
	"github.com/limbo/synapse/pkg/entity"
)

// fixture bundles the mocked storage behind the services
type fixture struct {
	ctrl        *gomock.Controller
	tx          *repomocks.MockTransactorI
	users       *repomocks.MockUsersRepositoryI
	sessions    *repomocks.MockSessionsRepositoryI
	tasks       *repomocks.MockTasksRepositoryI
	progress    *repomocks.MockProgressRepositoryI
	rewards     *repomocks.MockRewardsRepositoryI
	userRewards *repomocks.MockUserRewardsRepositoryI
	stats       *svcmocks.MockStatsProvider
	streaks     *svcmocks.MockStreakCounter
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	return &fixture{
		ctrl:        ctrl,
		tx:          repomocks.NewMockTransactorI(ctrl),
		users:       repomocks.NewMockUsersRepositoryI(ctrl),
		sessions:    repomocks.NewMockSessionsRepositoryI(ctrl),
		tasks:       repomocks.NewMockTasksRepositoryI(ctrl),
		progress:    repomocks.NewMockProgressRepositoryI(ctrl),
		rewards:     repomocks.NewMockRewardsRepositoryI(ctrl),
		userRewards: repomocks.NewMockUserRewardsRepositoryI(ctrl),
		stats:       svcmocks.NewMockStatsProvider(ctrl),
		streaks:     svcmocks.NewMockStreakCounter(ctrl),
	}
}

// runTx makes the transactor call fn straight away
func (f *fixture) runTx() {
	f.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
}

// seeded makes every catalog seeding a no-op
func (f *fixture) seeded() {
	f.rewards.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
}

func (f *fixture) catalog() *service.RewardCatalog {
	return service.NewRewardCatalog(f.rewards)
}

func (f *fixture) engine() *service.RewardGrantEngine {
	return service.NewRewardGrantEngine(f.tx, f.catalog(), f.stats, f.userRewards)
}

func (f *fixture) rollup(now time.Time) *service.ProgressRollup {
	return service.NewProgressRollup(f.progress, f.sessions, f.tasks, f.userRewards, service.WithClock(fixedClock(now)))
}

func fixedClock(now time.Time) func() time.Time {
	return func() time.Time {
		return now
	}
}

// snapshot builds stats with every counter present
func snapshot(values map[entity.Counter]int) entity.StatsSnapshot {
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
	for k, v := range values {
		stats[k] = v
	}
	return stats
}

func reward(name string, value int, counter entity.Counter, threshold int64) entity.Reward {
	return entity.Reward{
		ID:           uuid.New(),
		Name:         name,
		Type:         entity.RewardPoints,
		Value:        value,
		Requirements: entity.Requirements{counter: entity.NewThreshold(threshold)},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}
