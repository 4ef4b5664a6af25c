package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/synapse/internal/error_values"
	"github.com/limbo/synapse/pkg/entity"
)

type ProgressRepository struct {
	conn PgConnection
}

func NewProgressRepoWithConn(conn PgConnection) *ProgressRepository {
	mustPing(conn, "progressRepo")
	return &ProgressRepository{
		conn: conn,
	}
}

func (pr *ProgressRepository) FindByUserAndRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.ProgressDay, error) {
	rows, err := pick(ctx, pr.conn).Query(ctx, `SELECT id, user_id, day, minutes_studied, tasks_completed, sessions_completed, points
		FROM progress_days WHERE user_id = $1 AND day >= $2 AND day <= $3 ORDER BY day;`,
		uid, entity.DateOf(from), entity.DateOf(to))
	if err != nil {
		return nil, errors.New("getting progress for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.ProgressDay, 0, 7)
	for rows.Next() {
		p := entity.ProgressDay{}
		err = rows.Scan(&p.ID, &p.UserID, &p.Day, &p.MinutesStudied, &p.TasksCompleted, &p.Sessions, &p.Points)
		if err != nil {
			return nil, errors.New("progress row parsing error: " + err.Error())
		}
		result = append(result, p)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected progress rows error: " + err.Error())
	}
	return result, nil
}

func (pr *ProgressRepository) GetOrCreate(ctx context.Context, uid uuid.UUID, day time.Time) (*entity.ProgressDay, error) {
	q := pick(ctx, pr.conn)
	day = entity.DateOf(day)
	_, err := q.Exec(ctx, `INSERT INTO progress_days (user_id, day) VALUES ($1, $2) ON CONFLICT (user_id, day) DO NOTHING;`, uid, day)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("creating progress day error: " + err.Error())
	}
	p := entity.ProgressDay{}
	row := q.QueryRow(ctx, `SELECT id, user_id, day, minutes_studied, tasks_completed, sessions_completed, points
		FROM progress_days WHERE user_id = $1 AND day = $2;`, uid, day)
	if err = row.Scan(&p.ID, &p.UserID, &p.Day, &p.MinutesStudied, &p.TasksCompleted, &p.Sessions, &p.Points); err != nil {
		return nil, errors.New("getting progress day error: " + err.Error())
	}
	return &p, nil
}

func (pr *ProgressRepository) Upsert(ctx context.Context, day *entity.ProgressDay) (*entity.ProgressDay, error) {
	row := pick(ctx, pr.conn).QueryRow(ctx, `INSERT INTO progress_days (user_id, day, minutes_studied, tasks_completed, sessions_completed, points)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, day) DO UPDATE SET minutes_studied = EXCLUDED.minutes_studied,
			tasks_completed = EXCLUDED.tasks_completed, sessions_completed = EXCLUDED.sessions_completed, points = EXCLUDED.points
		RETURNING id;`,
		day.UserID, entity.DateOf(day.Day), day.MinutesStudied, day.TasksCompleted, day.Sessions, day.Points)
	result := *day
	result.Day = entity.DateOf(day.Day)
	if err := row.Scan(&result.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("upserting progress day error: " + err.Error())
	}
	return &result, nil
}
