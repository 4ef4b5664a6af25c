package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/synapse/internal/error_values"
	"github.com/limbo/synapse/pkg/entity"
)

type UserRewardsRepository struct {
	conn PgConnection
}

func NewUserRewardsRepoWithConn(conn PgConnection) *UserRewardsRepository {
	mustPing(conn, "userRewardsRepo")
	return &UserRewardsRepository{
		conn: conn,
	}
}

func (ur *UserRewardsRepository) Find(ctx context.Context, uid, rewardID uuid.UUID) (*entity.UserReward, error) {
	userReward := entity.UserReward{UserID: uid, RewardID: rewardID}
	row := pick(ctx, ur.conn).QueryRow(ctx, `SELECT obtained_at, consumed FROM user_rewards WHERE user_id = $1 AND reward_id = $2;`,
		uid, rewardID)
	if err := row.Scan(&userReward.ObtainedAt, &userReward.Consumed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserRewardNotFound
		}
		return nil, errors.New("searching user reward error: " + err.Error())
	}
	return &userReward, nil
}

const userRewardsUserFK = "user_rewards_user_id_fkey"

// Insert relies on the (user_id, reward_id) key. A lost race shows up as zero
// affected rows and does not abort the surrounding transaction.
func (ur *UserRewardsRepository) Insert(ctx context.Context, uid, rewardID uuid.UUID) error {
	ct, err := pick(ctx, ur.conn).Exec(ctx, `INSERT INTO user_rewards (user_id, reward_id) VALUES ($1, $2)
		ON CONFLICT (user_id, reward_id) DO NOTHING;`, uid, rewardID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrUserRewardExists
			// FK violation
			case "23503":
				if pgErr.ConstraintName == userRewardsUserFK {
					return errorvalues.ErrUserNotFound
				}
				return errorvalues.ErrRewardNotFound
			}
		}
		return errors.New("granting reward error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserRewardExists
	}
	return nil
}

func (ur *UserRewardsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.OwnedReward, error) {
	rows, err := pick(ctx, ur.conn).Query(ctx, `SELECT r.id, r.name, r.description, r.type, r.value, r.requirements, ur.obtained_at, ur.consumed
		FROM user_rewards ur JOIN rewards r ON r.id = ur.reward_id WHERE ur.user_id = $1 ORDER BY ur.obtained_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("listing user rewards error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.OwnedReward, 0)
	for rows.Next() {
		var (
			o   entity.OwnedReward
			raw []byte
		)
		err = rows.Scan(&o.ID, &o.Name, &o.Description, &o.Type, &o.Value, &raw, &o.ObtainedAt, &o.Consumed)
		if err != nil {
			return nil, errors.New("user reward row parsing error: " + err.Error())
		}
		o.Requirements = decodeRequirements(raw)
		result = append(result, o)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected user reward rows error: " + err.Error())
	}
	return result, nil
}

func (ur *UserRewardsRepository) Summary(ctx context.Context, uid uuid.UUID) (*entity.RewardsSummary, error) {
	var summary entity.RewardsSummary
	row := pick(ctx, ur.conn).QueryRow(ctx, `SELECT COUNT(*), COALESCE(SUM(r.value), 0)
		FROM user_rewards ur JOIN rewards r ON r.id = ur.reward_id WHERE ur.user_id = $1;`, uid)
	if err := row.Scan(&summary.Count, &summary.TotalPoints); err != nil {
		return nil, errors.New("summarizing user rewards error: " + err.Error())
	}
	return &summary, nil
}

func (ur *UserRewardsRepository) PointsByUserAndDay(ctx context.Context, uid uuid.UUID, day time.Time) (int, error) {
	from := entity.DateOf(day)
	row := pick(ctx, ur.conn).QueryRow(ctx, `SELECT COALESCE(SUM(r.value), 0)
		FROM user_rewards ur JOIN rewards r ON r.id = ur.reward_id
		WHERE ur.user_id = $1 AND ur.obtained_at >= $2 AND ur.obtained_at < $3;`, uid, from, from.AddDate(0, 0, 1))
	var points int
	if err := row.Scan(&points); err != nil {
		return 0, errors.New("summing points of day error: " + err.Error())
	}
	return points, nil
}

func (ur *UserRewardsRepository) Consume(ctx context.Context, uid, rewardID uuid.UUID) error {
	ct, err := pick(ctx, ur.conn).Exec(ctx, `UPDATE user_rewards SET consumed = TRUE
		WHERE user_id = $1 AND reward_id = $2 AND consumed = FALSE;`, uid, rewardID)
	if err != nil {
		return errors.New("consuming reward error: " + err.Error())
	}
	if ct.RowsAffected() > 0 {
		return nil
	}
	// Nothing updated: either the pair is missing or it was consumed before
	if _, err = ur.Find(ctx, uid, rewardID); err != nil {
		return err
	}
	return errorvalues.ErrRewardConsumed
}
