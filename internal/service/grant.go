package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/synapse/internal/error_values"
	"github.com/limbo/synapse/internal/repository"
	"github.com/limbo/synapse/pkg/entity"
)

// RewardGrantEngine verifies every catalog reward against fresh user stats
// and grants the ones which became eligible. A pass is atomic.
type RewardGrantEngine struct {
	tx          repository.TransactorI
	catalog     *RewardCatalog
	stats       StatsProvider
	userRewards repository.UserRewardsRepositoryI
	tables      *Tables
	logger      *slog.Logger
}

func NewRewardGrantEngine(
	tx repository.TransactorI,
	catalog *RewardCatalog,
	stats StatsProvider,
	userRewards repository.UserRewardsRepositoryI,
	opts ...Option,
) *RewardGrantEngine {
	if tx == nil || catalog == nil || stats == nil || userRewards == nil {
		log.Fatal("on grant engine provided nil dependencies")
	}
	o := buildOptions(opts)
	return &RewardGrantEngine{
		tx:          tx,
		catalog:     catalog,
		stats:       stats,
		userRewards: userRewards,
		tables:      o.tables,
		logger:      o.logger,
	}
}

func (ge *RewardGrantEngine) VerifyAndGrantAll(ctx context.Context, uid uuid.UUID) (*entity.GrantReport, error) {
	var report entity.GrantReport
	err := ge.tx.WithinTx(ctx, func(ctx context.Context) error {
		report = entity.GrantReport{Granted: []entity.Reward{}}
		if err := ge.catalog.EnsureBaseline(ctx); err != nil {
			return err
		}
		stats, err := ge.stats.Snapshot(ctx, uid)
		if err != nil {
			return err
		}
		report.Stats = stats
		if err = ge.catalog.EnsureMilestones(ctx, stats); err != nil {
			return err
		}
		rewards, err := ge.catalog.List(ctx)
		if err != nil {
			return err
		}
		held, err := ge.heldRewards(ctx, uid)
		if err != nil {
			return err
		}
		for _, reward := range rewards {
			if _, ok := held[reward.ID]; ok {
				continue
			}
			if eligible, _ := Evaluate(reward.Requirements, stats); !eligible {
				continue
			}
			err = ge.userRewards.Insert(ctx, uid, reward.ID)
			if err != nil {
				// Granted concurrently by another pass
				if errors.Is(err, errorvalues.ErrUserRewardExists) {
					continue
				}
				if errors.Is(err, errorvalues.ErrUserNotFound) || errors.Is(err, errorvalues.ErrRewardNotFound) {
					return err
				}
				return errors.New("user rewards repository error: " + err.Error())
			}
			report.Granted = append(report.Granted, reward)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, reward := range report.Granted {
		ge.logger.Info("reward granted",
			slog.String("uid", uid.String()),
			slog.String("reward", reward.Name),
			slog.Int("value", reward.Value),
		)
	}
	return &report, nil
}

func (ge *RewardGrantEngine) VerifyAfterMeditation(ctx context.Context, uid uuid.UUID) (*entity.GrantReport, error) {
	return ge.VerifyAndGrantAll(ctx, uid)
}

func (ge *RewardGrantEngine) VerifyAfterTask(ctx context.Context, uid uuid.UUID) (*entity.GrantReport, error) {
	return ge.VerifyAndGrantAll(ctx, uid)
}

func (ge *RewardGrantEngine) VerifyAfterPomodoro(ctx context.Context, uid uuid.UUID) (*entity.GrantReport, error) {
	return ge.VerifyAndGrantAll(ctx, uid)
}

func (ge *RewardGrantEngine) GetUserStatsReport(ctx context.Context, uid uuid.UUID) (*entity.StatsReport, error) {
	stats, err := ge.stats.Snapshot(ctx, uid)
	if err != nil {
		return nil, err
	}
	summary, err := ge.userRewards.Summary(ctx, uid)
	if err != nil {
		return nil, errors.New("user rewards repository error: " + err.Error())
	}
	return &entity.StatsReport{
		Stats:        stats,
		TotalRewards: summary.Count,
		TotalPoints:  summary.TotalPoints,
		Level:        ge.tables.UserLevel(summary.TotalPoints),
	}, nil
}

// AvailableRewards lists rewards the user does not hold yet with the progress
// made towards each requirement.
func (ge *RewardGrantEngine) AvailableRewards(ctx context.Context, uid uuid.UUID) ([]entity.AvailableReward, error) {
	stats, err := ge.stats.Snapshot(ctx, uid)
	if err != nil {
		return nil, err
	}
	rewards, err := ge.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	held, err := ge.heldRewards(ctx, uid)
	if err != nil {
		return nil, err
	}
	available := make([]entity.AvailableReward, 0, len(rewards))
	for _, reward := range rewards {
		if _, ok := held[reward.ID]; ok {
			continue
		}
		eligible, progress := Evaluate(reward.Requirements, stats)
		available = append(available, entity.AvailableReward{
			Reward:    reward,
			CanObtain: eligible,
			Progress:  progress,
		})
	}
	return available, nil
}

func (ge *RewardGrantEngine) UserRewards(ctx context.Context, uid uuid.UUID) ([]entity.OwnedReward, error) {
	owned, err := ge.userRewards.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("user rewards repository error: " + err.Error())
	}
	return owned, nil
}

func (ge *RewardGrantEngine) Consume(ctx context.Context, uid, rewardID uuid.UUID) error {
	err := ge.userRewards.Consume(ctx, uid, rewardID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserRewardNotFound) || errors.Is(err, errorvalues.ErrRewardConsumed) {
			return err
		}
		return errors.New("user rewards repository error: " + err.Error())
	}
	return nil
}

func (ge *RewardGrantEngine) heldRewards(ctx context.Context, uid uuid.UUID) (map[uuid.UUID]struct{}, error) {
	owned, err := ge.userRewards.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("user rewards repository error: " + err.Error())
	}
	held := make(map[uuid.UUID]struct{}, len(owned))
	for _, o := range owned {
		held[o.ID] = struct{}{}
	}
	return held, nil
}
