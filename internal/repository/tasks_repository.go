package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/synapse/internal/error_values"
	"github.com/limbo/synapse/pkg/entity"
)

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepoWithConn(conn PgConnection) *TasksRepository {
	mustPing(conn, "tasksRepo")
	return &TasksRepository{
		conn: conn,
	}
}

func (tr *TasksRepository) FindByUserAndState(ctx context.Context, uid uuid.UUID, state entity.State) ([]entity.Task, error) {
	rows, err := pick(ctx, tr.conn).Query(ctx, `SELECT id, user_id, title, state, created_at, due_date, completed_at, comment
		FROM tasks WHERE user_id = $1 AND state = $2;`, uid, string(state))
	if err != nil {
		return nil, errors.New("getting tasks by state error: " + err.Error())
	}
	defer rows.Close()
	tasks := make([]entity.Task, 0)
	for rows.Next() {
		t := entity.Task{}
		err = rows.Scan(&t.ID, &t.UserID, &t.Title, &t.State, &t.CreatedAt, &t.DueDate, &t.CompletedAt, &t.Comment)
		if err != nil {
			return nil, errors.New("task row parsing error: " + err.Error())
		}
		tasks = append(tasks, t)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected task rows error: " + err.Error())
	}
	return tasks, nil
}

func (tr *TasksRepository) CountCompletedByUserAndDay(ctx context.Context, uid uuid.UUID, day time.Time) (int, error) {
	from := entity.DateOf(day)
	row := pick(ctx, tr.conn).QueryRow(ctx, `SELECT COUNT(*) FROM tasks
		WHERE user_id = $1 AND state = $2 AND completed_at >= $3 AND completed_at < $4;`,
		uid, string(entity.StateCompleted), from, from.AddDate(0, 0, 1))
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting completed tasks: " + err.Error())
	}
	return count, nil
}

func (tr *TasksRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	t := entity.Task{ID: id}
	row := pick(ctx, tr.conn).QueryRow(ctx, `SELECT user_id, title, state, created_at, due_date, completed_at, comment
		FROM tasks WHERE id = $1;`, id)
	if err := row.Scan(&t.UserID, &t.Title, &t.State, &t.CreatedAt, &t.DueDate, &t.CompletedAt, &t.Comment); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("getting task by id error: " + err.Error())
	}
	return &t, nil
}

func (tr *TasksRepository) Complete(ctx context.Context, id uuid.UUID, completedAt time.Time) error {
	ct, err := pick(ctx, tr.conn).Exec(ctx, `UPDATE tasks SET state = $1, completed_at = $2 WHERE id = $3 AND state <> $1;`,
		string(entity.StateCompleted), completedAt, id)
	if err != nil {
		return errors.New("completing task error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskCompleted
	}
	return nil
}
