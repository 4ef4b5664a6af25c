package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/synapse/internal/error_values"
	"github.com/limbo/synapse/internal/service"
	"github.com/limbo/synapse/pkg/entity"
)

func TestEnsureBaseline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	catalog := f.catalog()

	t.Run("every baseline reward offered", func(t *testing.T) {
		seeded := make(map[string]entity.Reward)
		f.rewards.EXPECT().InsertIfAbsent(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r *entity.Reward) (bool, error) {
				seeded[r.Name] = *r
				return true, nil
			}).Times(5)
		require.NoError(t, catalog.EnsureBaseline(ctx))
		assert.Len(t, seeded, 5)
		assert.Equal(t, 10, seeded["Meditador Principiante"].Value)
		assert.Equal(t, 25, seeded["Organizador Eficiente"].Value)
		assert.Equal(t, 50, seeded["Maestro del Pomodoro"].Value)
		assert.Equal(t, 100, seeded["Productividad Extrema"].Value)
		assert.Equal(t, 100, seeded["Concentración Total"].Value)
		assert.Contains(t, seeded["Productividad Extrema"].Requirements, entity.CounterTasksEarly)
	})
	t.Run("already seeded", func(t *testing.T) {
		f.rewards.EXPECT().InsertIfAbsent(ctx, gomock.Any()).Return(false, nil).Times(5)
		assert.NoError(t, catalog.EnsureBaseline(ctx))
	})
	t.Run("repository error stops seeding", func(t *testing.T) {
		f.rewards.EXPECT().InsertIfAbsent(ctx, gomock.Any()).Return(false, errors.New("db error"))
		assert.Error(t, catalog.EnsureBaseline(ctx))
	})
}

func TestEnsureMilestones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	catalog := f.catalog()

	testCases := []struct {
		Name        string
		Meditations int
		Expected    map[string]int
	}{
		{Name: "none reached", Meditations: 4, Expected: map[string]int{}},
		{Name: "first reached", Meditations: 5, Expected: map[string]int{"Meditador Dedicado": 10}},
		{
			Name:        "several reached",
			Meditations: 30,
			Expected: map[string]int{
				"Meditador Dedicado":    10,
				"Meditador Persistente": 25,
				"Meditador Experto":     50,
			},
		},
		{
			Name:        "all reached",
			Meditations: 100,
			Expected: map[string]int{
				"Meditador Dedicado":    10,
				"Meditador Persistente": 25,
				"Meditador Experto":     50,
				"Meditador Maestro":     50,
				"Meditador Guru":        100,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			inserted := make(map[string]int)
			if len(tc.Expected) > 0 {
				f.rewards.EXPECT().InsertIfAbsent(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, r *entity.Reward) (bool, error) {
						inserted[r.Name] = r.Value
						return true, nil
					}).Times(len(tc.Expected))
			}
			stats := snapshot(map[entity.Counter]int{entity.CounterMeditations: tc.Meditations})
			require.NoError(t, catalog.EnsureMilestones(ctx, stats))
			assert.Equal(t, tc.Expected, inserted)
		})
	}
}

func TestCreateReward(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	catalog := f.catalog()
	valid := func() *service.RewardRequest {
		return &service.RewardRequest{
			Name:         "Lector Constante",
			Description:  "Completa 20 tareas a tiempo",
			Type:         entity.RewardCustomization,
			Value:        25,
			Requirements: entity.Requirements{entity.CounterTasksOnTime: entity.NewThreshold(20)},
		}
	}

	t.Run("created", func(t *testing.T) {
		id := uuid.New()
		f.rewards.EXPECT().Insert(ctx, gomock.Any()).Return(id, nil)
		reward, err := catalog.Create(ctx, valid())
		require.NoError(t, err)
		assert.Equal(t, id, reward.ID)
		assert.Equal(t, entity.RewardCustomization, reward.Type)
	})
	t.Run("duplicated name", func(t *testing.T) {
		f.rewards.EXPECT().Insert(ctx, gomock.Any()).Return(uuid.UUID{}, errorvalues.ErrRewardExists)
		_, err := catalog.Create(ctx, valid())
		assert.ErrorIs(t, err, errorvalues.ErrRewardExists)
	})

	invalid := []struct {
		Name        string
		Modify      func(req *service.RewardRequest)
		ExpectedErr error
	}{
		{
			Name:        "short name",
			Modify:      func(req *service.RewardRequest) { req.Name = "ab" },
			ExpectedErr: errorvalues.ErrValidation,
		},
		{
			Name:        "unknown type",
			Modify:      func(req *service.RewardRequest) { req.Type = entity.RewardType("medalla") },
			ExpectedErr: errorvalues.ErrValidation,
		},
		{
			Name:        "negative value",
			Modify:      func(req *service.RewardRequest) { req.Value = -1 },
			ExpectedErr: errorvalues.ErrValidation,
		},
		{
			Name:        "missing requirements",
			Modify:      func(req *service.RewardRequest) { req.Requirements = nil },
			ExpectedErr: errorvalues.ErrValidation,
		},
		{
			Name:        "empty requirements",
			Modify:      func(req *service.RewardRequest) { req.Requirements = entity.Requirements{} },
			ExpectedErr: errorvalues.ErrInvalidRequirements,
		},
		{
			Name: "unknown counter",
			Modify: func(req *service.RewardRequest) {
				req.Requirements = entity.Requirements{entity.Counter("likes"): entity.NewThreshold(1)}
			},
			ExpectedErr: errorvalues.ErrInvalidRequirements,
		},
		{
			Name: "negative threshold",
			Modify: func(req *service.RewardRequest) {
				req.Requirements = entity.Requirements{entity.CounterSessions: entity.NewThreshold(-3)}
			},
			ExpectedErr: errorvalues.ErrInvalidRequirements,
		},
		{
			Name: "non numeric threshold",
			Modify: func(req *service.RewardRequest) {
				req.Requirements = entity.Requirements{entity.CounterSessions: {}}
			},
			ExpectedErr: errorvalues.ErrInvalidRequirements,
		},
	}
	for _, tc := range invalid {
		t.Run(tc.Name, func(t *testing.T) {
			req := valid()
			tc.Modify(req)
			_, err := catalog.Create(ctx, req)
			assert.ErrorIs(t, err, tc.ExpectedErr)
		})
	}
}

func TestUpdateReward(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	catalog := f.catalog()
	id := uuid.New()
	req := &service.RewardRequest{
		Name:         "Meditador Principiante",
		Type:         entity.RewardPoints,
		Value:        15,
		Requirements: entity.Requirements{entity.CounterMeditations: entity.NewThreshold(2)},
	}

	t.Run("updated", func(t *testing.T) {
		f.rewards.EXPECT().Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r *entity.Reward) error {
				assert.Equal(t, id, r.ID)
				assert.Equal(t, 15, r.Value)
				return nil
			})
		reward, err := catalog.Update(ctx, id, req)
		require.NoError(t, err)
		assert.Equal(t, id, reward.ID)
	})
	t.Run("missing reward", func(t *testing.T) {
		f.rewards.EXPECT().Update(ctx, gomock.Any()).Return(errorvalues.ErrRewardNotFound)
		_, err := catalog.Update(ctx, id, req)
		assert.ErrorIs(t, err, errorvalues.ErrRewardNotFound)
	})
	t.Run("name taken", func(t *testing.T) {
		f.rewards.EXPECT().Update(ctx, gomock.Any()).Return(errorvalues.ErrRewardExists)
		_, err := catalog.Update(ctx, id, req)
		assert.ErrorIs(t, err, errorvalues.ErrRewardExists)
	})
}

func TestGetReward(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	catalog := f.catalog()
	r := reward("Primer Paso", 5, entity.CounterSessions, 1)

	f.rewards.EXPECT().GetByID(ctx, r.ID).Return(&r, nil)
	got, err := catalog.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r, *got)

	missing := uuid.New()
	f.rewards.EXPECT().GetByID(ctx, missing).Return(nil, errorvalues.ErrRewardNotFound)
	_, err = catalog.Get(ctx, missing)
	assert.ErrorIs(t, err, errorvalues.ErrRewardNotFound)
}

func TestLevelsReturnsCopy(t *testing.T) {
	f := newFixture(t)
	catalog := f.catalog()
	levels := catalog.Levels()
	require.Len(t, levels, 4)
	assert.Equal(t, service.LevelLow, levels[0].Code)
	levels[0].Value = 0
	assert.Equal(t, 10, catalog.Levels()[0].Value)
}
