package repository

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/synapse/internal/error_values"
	"github.com/limbo/synapse/pkg/entity"
)

type RewardsRepository struct {
	conn PgConnection
}

func NewRewardsRepoWithConn(conn PgConnection) *RewardsRepository {
	mustPing(conn, "rewardsRepo")
	return &RewardsRepository{
		conn: conn,
	}
}

func (rr *RewardsRepository) FindByName(ctx context.Context, name string) (*entity.Reward, error) {
	row := pick(ctx, rr.conn).QueryRow(ctx, `SELECT id, name, description, type, value, requirements FROM rewards WHERE name = $1;`, name)
	reward, err := scanReward(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrRewardNotFound
		}
		return nil, errors.New("searching reward by name error: " + err.Error())
	}
	return reward, nil
}

func (rr *RewardsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Reward, error) {
	row := pick(ctx, rr.conn).QueryRow(ctx, `SELECT id, name, description, type, value, requirements FROM rewards WHERE id = $1;`, id)
	reward, err := scanReward(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrRewardNotFound
		}
		return nil, errors.New("getting reward by id error: " + err.Error())
	}
	return reward, nil
}

func (rr *RewardsRepository) Insert(ctx context.Context, reward *entity.Reward) (uuid.UUID, error) {
	reqs, err := sonic.Marshal(reward.Requirements)
	if err != nil {
		return uuid.UUID{}, errors.New("encoding requirements error: " + err.Error())
	}
	var id uuid.UUID
	row := pick(ctx, rr.conn).QueryRow(ctx, `INSERT INTO rewards (name, description, type, value, requirements)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		reward.Name, reward.Description, string(reward.Type), reward.Value, reqs)
	if err = row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrRewardExists
			}
		}
		return uuid.UUID{}, errors.New("creating reward error: " + err.Error())
	}
	return id, nil
}

func (rr *RewardsRepository) InsertIfAbsent(ctx context.Context, reward *entity.Reward) (bool, error) {
	reqs, err := sonic.Marshal(reward.Requirements)
	if err != nil {
		return false, errors.New("encoding requirements error: " + err.Error())
	}
	ct, err := pick(ctx, rr.conn).Exec(ctx, `INSERT INTO rewards (name, description, type, value, requirements)
		VALUES ($1, $2, $3, $4, $5) ON CONFLICT (name) DO NOTHING;`,
		reward.Name, reward.Description, string(reward.Type), reward.Value, reqs)
	if err != nil {
		return false, errors.New("seeding reward error: " + err.Error())
	}
	return ct.RowsAffected() > 0, nil
}

func (rr *RewardsRepository) Update(ctx context.Context, reward *entity.Reward) error {
	reqs, err := sonic.Marshal(reward.Requirements)
	if err != nil {
		return errors.New("encoding requirements error: " + err.Error())
	}
	ct, err := pick(ctx, rr.conn).Exec(ctx, `UPDATE rewards SET name = $1, description = $2, type = $3, value = $4, requirements = $5
		WHERE id = $6;`,
		reward.Name, reward.Description, string(reward.Type), reward.Value, reqs, reward.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return errorvalues.ErrRewardExists
		}
		return errors.New("updating reward error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrRewardNotFound
	}
	return nil
}

func (rr *RewardsRepository) List(ctx context.Context) ([]entity.Reward, error) {
	rows, err := pick(ctx, rr.conn).Query(ctx, `SELECT id, name, description, type, value, requirements FROM rewards ORDER BY value, name;`)
	if err != nil {
		return nil, errors.New("listing rewards error: " + err.Error())
	}
	defer rows.Close()
	rewards := make([]entity.Reward, 0)
	for rows.Next() {
		reward, err := scanReward(rows)
		if err != nil {
			return nil, errors.New("reward row parsing error: " + err.Error())
		}
		rewards = append(rewards, *reward)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected reward rows error: " + err.Error())
	}
	return rewards, nil
}

func scanReward(row pgx.Row) (*entity.Reward, error) {
	var (
		r   entity.Reward
		raw []byte
	)
	if err := row.Scan(&r.ID, &r.Name, &r.Description, &r.Type, &r.Value, &raw); err != nil {
		return nil, err
	}
	r.Requirements = decodeRequirements(raw)
	return &r, nil
}

// decodeRequirements never fails: a broken document yields no requirements,
// which the evaluator treats as unsatisfiable.
func decodeRequirements(raw []byte) entity.Requirements {
	reqs := make(entity.Requirements)
	if len(raw) == 0 {
		return reqs
	}
	if err := sonic.Unmarshal(raw, &reqs); err != nil {
		return make(entity.Requirements)
	}
	return reqs
}
