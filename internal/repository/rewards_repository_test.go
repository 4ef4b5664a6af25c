package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/synapse/internal/error_values"
	"github.com/limbo/synapse/internal/repository"
	"github.com/limbo/synapse/pkg/entity"
)

var rewardColumns = []string{"id", "name", "description", "type", "value", "requirements"}

func testReward() entity.Reward {
	return entity.Reward{
		ID:          uuid.New(),
		Name:        "Meditador Principiante",
		Description: "Completa 5 meditaciones",
		Type:        entity.RewardPoints,
		Value:       10,
		Requirements: entity.Requirements{
			entity.CounterMeditations: entity.NewThreshold(5),
		},
	}
}

func TestRewardsFindByName(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewRewardsRepoWithConn(conn)
	ctx := context.Background()
	reward := testReward()
	query := regexp.QuoteMeta(`SELECT id, name, description, type, value, requirements FROM rewards WHERE name = $1;`)

	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(reward.Name).
			WillReturnRows(pgxmock.NewRows(rewardColumns).
				AddRow(reward.ID, reward.Name, reward.Description, entity.RewardPoints, 10, []byte(`{"meditaciones_completadas": 5}`)))
		result, err := repo.FindByName(ctx, reward.Name)
		require.NoError(t, err)
		assert.Equal(t, reward.ID, result.ID)
		assert.Equal(t, entity.RewardPoints, result.Type)
		threshold, ok := result.Requirements[entity.CounterMeditations]
		assert.True(t, ok)
		assert.True(t, threshold.Valid)
		assert.Equal(t, "5", threshold.Value.String())
	})
	t.Run("non numeric threshold kept invalid", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(reward.Name).
			WillReturnRows(pgxmock.NewRows(rewardColumns).
				AddRow(reward.ID, reward.Name, reward.Description, entity.RewardPoints, 10, []byte(`{"meditaciones_completadas": "cinco"}`)))
		result, err := repo.FindByName(ctx, reward.Name)
		require.NoError(t, err)
		assert.False(t, result.Requirements[entity.CounterMeditations].Valid)
	})
	t.Run("broken document gives empty requirements", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(reward.Name).
			WillReturnRows(pgxmock.NewRows(rewardColumns).
				AddRow(reward.ID, reward.Name, reward.Description, entity.RewardPoints, 10, []byte(`{not json`)))
		result, err := repo.FindByName(ctx, reward.Name)
		require.NoError(t, err)
		assert.Empty(t, result.Requirements)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(reward.Name).WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByName(ctx, reward.Name)
		assert.ErrorIs(t, err, errorvalues.ErrRewardNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(reward.Name).WillReturnError(errors.New("db error"))
		_, err := repo.FindByName(ctx, reward.Name)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrRewardNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestRewardsGetByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewRewardsRepoWithConn(conn)
	ctx := context.Background()
	reward := testReward()
	query := regexp.QuoteMeta(`SELECT id, name, description, type, value, requirements FROM rewards WHERE id = $1;`)

	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(reward.ID).
			WillReturnRows(pgxmock.NewRows(rewardColumns).
				AddRow(reward.ID, reward.Name, reward.Description, entity.RewardPoints, 10, []byte(`{"meditaciones_completadas": 5}`)))
		result, err := repo.GetByID(ctx, reward.ID)
		require.NoError(t, err)
		assert.Equal(t, reward.Name, result.Name)
		assert.Equal(t, 10, result.Value)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(reward.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, reward.ID)
		assert.ErrorIs(t, err, errorvalues.ErrRewardNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestRewardsInsert(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewRewardsRepoWithConn(conn)
	ctx := context.Background()
	reward := testReward()
	reqs, err := sonic.Marshal(reward.Requirements)
	require.NoError(t, err)
	query := regexp.QuoteMeta(`INSERT INTO rewards (name, description, type, value, requirements)`) + `.*RETURNING id;`

	t.Run("inserted", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(reward.Name, reward.Description, string(reward.Type), reward.Value, reqs).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(reward.ID))
		id, err := repo.Insert(ctx, &reward)
		assert.NoError(t, err)
		assert.Equal(t, reward.ID, id)
	})
	t.Run("duplicated name", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(reward.Name, reward.Description, string(reward.Type), reward.Value, reqs).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		_, err := repo.Insert(ctx, &reward)
		assert.ErrorIs(t, err, errorvalues.ErrRewardExists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(reward.Name, reward.Description, string(reward.Type), reward.Value, reqs).
			WillReturnError(errors.New("db error"))
		_, err := repo.Insert(ctx, &reward)
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestRewardsInsertIfAbsent(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewRewardsRepoWithConn(conn)
	ctx := context.Background()
	reward := testReward()
	reqs, err := sonic.Marshal(reward.Requirements)
	require.NoError(t, err)
	query := regexp.QuoteMeta(`INSERT INTO rewards (name, description, type, value, requirements)`) +
		`.*` + regexp.QuoteMeta(`ON CONFLICT (name) DO NOTHING;`)

	testCases := []struct {
		Name     string
		Affected int64
		Expected bool
	}{
		{Name: "inserted", Affected: 1, Expected: true},
		{Name: "already present", Affected: 0, Expected: false},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			conn.ExpectExec(query).
				WithArgs(reward.Name, reward.Description, string(reward.Type), reward.Value, reqs).
				WillReturnResult(pgxmock.NewResult("INSERT", tc.Affected))
			inserted, err := repo.InsertIfAbsent(ctx, &reward)
			assert.NoError(t, err)
			assert.Equal(t, tc.Expected, inserted)
		})
	}
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestRewardsUpdate(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewRewardsRepoWithConn(conn)
	ctx := context.Background()
	reward := testReward()
	reqs, err := sonic.Marshal(reward.Requirements)
	require.NoError(t, err)
	query := regexp.QuoteMeta(`UPDATE rewards SET name = $1, description = $2, type = $3, value = $4, requirements = $5`)

	t.Run("updated", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(reward.Name, reward.Description, string(reward.Type), reward.Value, reqs, reward.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Update(ctx, &reward))
	})
	t.Run("missing reward", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(reward.Name, reward.Description, string(reward.Type), reward.Value, reqs, reward.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.Update(ctx, &reward), errorvalues.ErrRewardNotFound)
	})
	t.Run("name taken", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(reward.Name, reward.Description, string(reward.Type), reward.Value, reqs, reward.ID).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		assert.ErrorIs(t, repo.Update(ctx, &reward), errorvalues.ErrRewardExists)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestRewardsList(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewRewardsRepoWithConn(conn)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, name, description, type, value, requirements FROM rewards ORDER BY value, name;`)

	t.Run("listed", func(t *testing.T) {
		conn.ExpectQuery(query).
			WillReturnRows(pgxmock.NewRows(rewardColumns).
				AddRow(uuid.New(), "Primer Paso", "Completa tu primera sesion", entity.RewardPoints, 5, []byte(`{"sesiones_completadas": 1}`)).
				AddRow(uuid.New(), "Tecnica Avanzada", "Desbloquea meditacion guiada", entity.RewardTechnique, 30, []byte(`{"pomodoros_completos": 10}`)))
		rewards, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, rewards, 2)
		assert.Equal(t, "Primer Paso", rewards[0].Name)
		assert.Equal(t, entity.RewardTechnique, rewards[1].Type)
		assert.Contains(t, rewards[1].Requirements, entity.CounterPomodoros)
	})
	t.Run("empty catalog", func(t *testing.T) {
		conn.ExpectQuery(query).WillReturnRows(pgxmock.NewRows(rewardColumns))
		rewards, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, rewards)
		assert.Empty(t, rewards)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WillReturnError(errors.New("db error"))
		_, err := repo.List(ctx)
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}
