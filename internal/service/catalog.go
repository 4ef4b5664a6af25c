package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/synapse/internal/error_values"
	"github.com/limbo/synapse/internal/repository"
	"github.com/limbo/synapse/pkg/entity"
)

// RewardCatalog owns the set of rewards a user can earn: the baseline ones,
// meditation milestones and the ones added by admins.
type RewardCatalog struct {
	repo   repository.RewardsRepositoryI
	tables *Tables
}

func NewRewardCatalog(rewardsRepo repository.RewardsRepositoryI, opts ...Option) *RewardCatalog {
	if rewardsRepo == nil {
		log.Fatal("provided nil rewardsRepo")
	}
	o := buildOptions(opts)
	return &RewardCatalog{
		repo:   rewardsRepo,
		tables: o.tables,
	}
}

// EnsureBaseline creates missing baseline rewards. Existing ones are left as is.
func (rc *RewardCatalog) EnsureBaseline(ctx context.Context) error {
	for _, reward := range rc.tables.Baseline {
		if _, err := rc.repo.InsertIfAbsent(ctx, &reward); err != nil {
			return errors.New("rewards repository error: " + err.Error())
		}
	}
	return nil
}

// EnsureMilestones creates the meditation milestone rewards already reached in stats.
func (rc *RewardCatalog) EnsureMilestones(ctx context.Context, stats entity.StatsSnapshot) error {
	meditations := stats[entity.CounterMeditations]
	for _, m := range rc.tables.Milestones {
		if meditations < m.Meditations {
			continue
		}
		reward := rc.tables.MilestoneReward(m)
		if _, err := rc.repo.InsertIfAbsent(ctx, &reward); err != nil {
			return errors.New("rewards repository error: " + err.Error())
		}
	}
	return nil
}

func (rc *RewardCatalog) List(ctx context.Context) ([]entity.Reward, error) {
	rewards, err := rc.repo.List(ctx)
	if err != nil {
		return nil, errors.New("rewards repository error: " + err.Error())
	}
	return rewards, nil
}

func (rc *RewardCatalog) Get(ctx context.Context, id uuid.UUID) (*entity.Reward, error) {
	reward, err := rc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRewardNotFound) {
			return nil, err
		}
		return nil, errors.New("rewards repository error: " + err.Error())
	}
	return reward, nil
}

func (rc *RewardCatalog) Create(ctx context.Context, req *RewardRequest) (*entity.Reward, error) {
	if err := validateRewardRequest(req); err != nil {
		return nil, err
	}
	reward := req.toReward()
	id, err := rc.repo.Insert(ctx, &reward)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRewardExists) {
			return nil, err
		}
		return nil, errors.New("rewards repository error: " + err.Error())
	}
	reward.ID = id
	return &reward, nil
}

// Update overwrites a reward. Grants made under the old requirements are kept.
func (rc *RewardCatalog) Update(ctx context.Context, id uuid.UUID, req *RewardRequest) (*entity.Reward, error) {
	if err := validateRewardRequest(req); err != nil {
		return nil, err
	}
	reward := req.toReward()
	reward.ID = id
	err := rc.repo.Update(ctx, &reward)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRewardExists) || errors.Is(err, errorvalues.ErrRewardNotFound) {
			return nil, err
		}
		return nil, errors.New("rewards repository error: " + err.Error())
	}
	return &reward, nil
}

func (rc *RewardCatalog) Levels() []entity.RewardLevel {
	levels := make([]entity.RewardLevel, len(rc.tables.Levels))
	copy(levels, rc.tables.Levels)
	return levels
}

func validateRewardRequest(req *RewardRequest) error {
	if err := checkStruct(*req); err != nil {
		return err
	}
	return ValidateRequirements(req.Requirements)
}

// ValidateRequirements rejects empty documents, unknown counters and
// thresholds which are not non-negative numbers.
func ValidateRequirements(reqs entity.Requirements) error {
	if len(reqs) == 0 {
		return errors.Join(errorvalues.ErrInvalidRequirements, errors.New("no requirements given"))
	}
	for counter, threshold := range reqs {
		if !counter.Known() {
			return errors.Join(errorvalues.ErrInvalidRequirements, errors.New("unknown counter "+string(counter)))
		}
		if !threshold.Valid || threshold.Value.IsNegative() {
			return errors.Join(errorvalues.ErrInvalidRequirements, errors.New("bad threshold for "+string(counter)))
		}
	}
	return nil
}
