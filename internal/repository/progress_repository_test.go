package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/synapse/internal/error_values"
	"github.com/limbo/synapse/internal/repository"
	"github.com/limbo/synapse/pkg/entity"
)

var progressColumns = []string{"id", "user_id", "day", "minutes_studied", "tasks_completed", "sessions_completed", "points"}

func TestProgressFindByUserAndRange(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProgressRepoWithConn(conn)
	ctx := context.Background()
	uid := uuid.New()
	from := time.Date(2024, time.March, 4, 15, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 6)
	query := regexp.QuoteMeta(`SELECT id, user_id, day, minutes_studied, tasks_completed, sessions_completed, points`)

	t.Run("rows ordered by day", func(t *testing.T) {
		first, second := entity.DateOf(from), entity.DateOf(from).AddDate(0, 0, 2)
		conn.ExpectQuery(query).WithArgs(uid, entity.DateOf(from), entity.DateOf(to)).
			WillReturnRows(pgxmock.NewRows(progressColumns).
				AddRow(uuid.New(), uid, first, 50, 2, 2, 10).
				AddRow(uuid.New(), uid, second, 25, 0, 1, 0))
		days, err := repo.FindByUserAndRange(ctx, uid, from, to)
		require.NoError(t, err)
		require.Len(t, days, 2)
		assert.Equal(t, first, days[0].Day)
		assert.Equal(t, 50, days[0].MinutesStudied)
		assert.Equal(t, 2, days[0].Sessions)
		assert.Equal(t, 10, days[0].Points)
		assert.Equal(t, second, days[1].Day)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid, entity.DateOf(from), entity.DateOf(to)).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByUserAndRange(ctx, uid, from, to)
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestProgressGetOrCreate(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProgressRepoWithConn(conn)
	ctx := context.Background()
	uid := uuid.New()
	now := time.Date(2024, time.March, 4, 23, 59, 0, 0, time.UTC)
	day := entity.DateOf(now)
	insert := regexp.QuoteMeta(`INSERT INTO progress_days (user_id, day) VALUES ($1, $2) ON CONFLICT (user_id, day) DO NOTHING;`)
	selectQuery := regexp.QuoteMeta(`SELECT id, user_id, day, minutes_studied, tasks_completed, sessions_completed, points`)

	t.Run("zero row created", func(t *testing.T) {
		id := uuid.New()
		conn.ExpectExec(insert).WithArgs(uid, day).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectQuery(selectQuery).WithArgs(uid, day).
			WillReturnRows(pgxmock.NewRows(progressColumns).AddRow(id, uid, day, 0, 0, 0, 0))
		p, err := repo.GetOrCreate(ctx, uid, now)
		require.NoError(t, err)
		assert.Equal(t, entity.ProgressDay{ID: id, UserID: uid, Day: day}, *p)
	})
	t.Run("existing row kept", func(t *testing.T) {
		id := uuid.New()
		conn.ExpectExec(insert).WithArgs(uid, day).WillReturnResult(pgxmock.NewResult("INSERT", 0))
		conn.ExpectQuery(selectQuery).WithArgs(uid, day).
			WillReturnRows(pgxmock.NewRows(progressColumns).AddRow(id, uid, day, 30, 1, 1, 5))
		p, err := repo.GetOrCreate(ctx, uid, now)
		require.NoError(t, err)
		assert.Equal(t, 30, p.MinutesStudied)
		assert.Equal(t, 5, p.Points)
	})
	t.Run("unknown user", func(t *testing.T) {
		conn.ExpectExec(insert).WithArgs(uid, day).WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.GetOrCreate(ctx, uid, now)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestProgressUpsert(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProgressRepoWithConn(conn)
	ctx := context.Background()
	uid, id := uuid.New(), uuid.New()
	day := time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)
	p := entity.ProgressDay{
		UserID:         uid,
		Day:            day,
		MinutesStudied: 75,
		TasksCompleted: 2,
		Sessions:       3,
		Points:         15,
	}
	query := regexp.QuoteMeta(`INSERT INTO progress_days (user_id, day, minutes_studied, tasks_completed, sessions_completed, points)`)

	t.Run("upserted", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid, entity.DateOf(day), 75, 2, 3, 15).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		result, err := repo.Upsert(ctx, &p)
		require.NoError(t, err)
		assert.Equal(t, id, result.ID)
		assert.Equal(t, entity.DateOf(day), result.Day)
		assert.Equal(t, 75, result.MinutesStudied)
	})
	t.Run("unknown user", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid, entity.DateOf(day), 75, 2, 3, 15).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Upsert(ctx, &p)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}
