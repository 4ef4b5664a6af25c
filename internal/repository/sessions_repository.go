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

const sessionColumns = `s.id, s.user_id, t.name, s.state, s.started_at, s.ended_at, s.real_duration, s.params`

type SessionsRepository struct {
	conn PgConnection
}

func NewSessionsRepoWithConn(conn PgConnection) *SessionsRepository {
	mustPing(conn, "sessionsRepo")
	return &SessionsRepository{
		conn: conn,
	}
}

func (sr *SessionsRepository) FindByUserAndTechnique(ctx context.Context, uid uuid.UUID, technique string, state entity.State) ([]entity.Session, error) {
	rows, err := pick(ctx, sr.conn).Query(ctx, `SELECT `+sessionColumns+` FROM sessions s JOIN techniques t ON t.id = s.technique_id
		WHERE s.user_id = $1 AND t.name = $2 AND s.state = $3;`, uid, technique, string(state))
	if err != nil {
		return nil, errors.New("getting sessions by technique error: " + err.Error())
	}
	return collectSessions(rows)
}

func (sr *SessionsRepository) FindByUserAndState(ctx context.Context, uid uuid.UUID, state entity.State) ([]entity.Session, error) {
	rows, err := pick(ctx, sr.conn).Query(ctx, `SELECT `+sessionColumns+` FROM sessions s JOIN techniques t ON t.id = s.technique_id
		WHERE s.user_id = $1 AND s.state = $2;`, uid, string(state))
	if err != nil {
		return nil, errors.New("getting sessions by state error: " + err.Error())
	}
	return collectSessions(rows)
}

func (sr *SessionsRepository) FindCompletedByUserAndDay(ctx context.Context, uid uuid.UUID, day time.Time) ([]entity.Session, error) {
	from := entity.DateOf(day)
	rows, err := pick(ctx, sr.conn).Query(ctx, `SELECT `+sessionColumns+` FROM sessions s JOIN techniques t ON t.id = s.technique_id
		WHERE s.user_id = $1 AND s.state = $2 AND s.started_at >= $3 AND s.started_at < $4;`,
		uid, string(entity.StateCompleted), from, from.AddDate(0, 0, 1))
	if err != nil {
		return nil, errors.New("getting sessions of day error: " + err.Error())
	}
	return collectSessions(rows)
}

func (sr *SessionsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	rows, err := pick(ctx, sr.conn).Query(ctx, `SELECT `+sessionColumns+` FROM sessions s JOIN techniques t ON t.id = s.technique_id
		WHERE s.id = $1;`, id)
	if err != nil {
		return nil, errors.New("getting session by id error: " + err.Error())
	}
	sessions, err := collectSessions(rows)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, errorvalues.ErrSessionNotFound
	}
	return &sessions[0], nil
}

func (sr *SessionsRepository) Finish(ctx context.Context, session *entity.Session) error {
	params, err := encodeSessionParams(session.Params)
	if err != nil {
		return errors.New("encoding session params error: " + err.Error())
	}
	ct, err := pick(ctx, sr.conn).Exec(ctx, `UPDATE sessions SET state = $1, ended_at = $2, real_duration = $3, params = $4
		WHERE id = $5 AND state = $6;`,
		string(entity.StateCompleted), session.EndedAt, session.RealDuration, params, session.ID, string(entity.StateRunning))
	if err != nil {
		return errors.New("finishing session error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSessionFinished
	}
	return nil
}

func collectSessions(rows pgx.Rows) ([]entity.Session, error) {
	defer rows.Close()
	result := make([]entity.Session, 0)
	for rows.Next() {
		var (
			s   entity.Session
			raw []byte
		)
		err := rows.Scan(&s.ID, &s.UserID, &s.Technique, &s.State, &s.StartedAt, &s.EndedAt, &s.RealDuration, &raw)
		if err != nil {
			return nil, errors.New("session row parsing error: " + err.Error())
		}
		s.Params = decodeSessionParams(s.Technique, raw)
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected session rows error: " + err.Error())
	}
	return result, nil
}
