package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/synapse/internal/error_values"
	"github.com/limbo/synapse/internal/repository"
	"github.com/limbo/synapse/pkg/entity"
)

var sessionColumns = []string{"id", "user_id", "name", "state", "started_at", "ended_at", "real_duration", "params"}

const sessionSelect = `SELECT s.id, s.user_id, t.name, s.state, s.started_at, s.ended_at, s.real_duration, s.params FROM sessions s`

func TestSessionsFindByUserAndTechnique(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewSessionsRepoWithConn(conn)
	ctx := context.Background()
	uid := uuid.New()
	started := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)
	ended := started.Add(100 * time.Minute)
	query := regexp.QuoteMeta(sessionSelect)

	t.Run("pomodoro params decoded", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid, entity.TechniquePomodoro, string(entity.StateCompleted)).
			WillReturnRows(pgxmock.NewRows(sessionColumns).
				AddRow(uuid.New(), uid, entity.TechniquePomodoro, entity.StateCompleted, started, &ended, 100,
					[]byte(`{"duracion_trabajo": "50", "ciclos_objetivo": 2, "ciclos_completados": 2, "modo_no_distraccion": "True"}`)))
		sessions, err := repo.FindByUserAndTechnique(ctx, uid, entity.TechniquePomodoro, entity.StateCompleted)
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		p := sessions[0].Params.Pomodoro
		require.NotNil(t, p)
		assert.Nil(t, sessions[0].Params.Meditation)
		assert.Equal(t, entity.PomodoroParams{
			WorkMinutes:     50,
			BreakMinutes:    5,
			TargetCycles:    2,
			CompletedCycles: 2,
			NoDistraction:   true,
		}, *p)
		assert.True(t, p.Complete())
		assert.Equal(t, 100, sessions[0].RealDuration)
	})
	t.Run("broken params fall back to defaults", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid, entity.TechniquePomodoro, string(entity.StateCompleted)).
			WillReturnRows(pgxmock.NewRows(sessionColumns).
				AddRow(uuid.New(), uid, entity.TechniquePomodoro, entity.StateCompleted, started, &ended, 100, []byte(`[1, 2`)))
		sessions, err := repo.FindByUserAndTechnique(ctx, uid, entity.TechniquePomodoro, entity.StateCompleted)
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, entity.PomodoroParams{WorkMinutes: 25, BreakMinutes: 5, TargetCycles: 4}, *sessions[0].Params.Pomodoro)
		assert.False(t, sessions[0].Params.Pomodoro.Complete())
	})
	t.Run("meditation params decoded", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid, entity.TechniqueMeditation, string(entity.StateCompleted)).
			WillReturnRows(pgxmock.NewRows(sessionColumns).
				AddRow(uuid.New(), uid, entity.TechniqueMeditation, entity.StateCompleted, started, &ended, 15,
					[]byte(`{"tipo_meditacion": "guiada", "duracion_planificada": "15", "calificacion": "4"}`)))
		sessions, err := repo.FindByUserAndTechnique(ctx, uid, entity.TechniqueMeditation, entity.StateCompleted)
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		m := sessions[0].Params.Meditation
		require.NotNil(t, m)
		assert.Equal(t, "guiada", m.Kind)
		assert.Equal(t, 15, m.PlannedMinutes)
		assert.Empty(t, m.BackgroundSound)
		assert.Equal(t, map[string]any{"calificacion": "4"}, sessions[0].Params.Extra)
	})
	t.Run("unknown technique gives empty list", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid, "Yoga", string(entity.StateCompleted)).
			WillReturnRows(pgxmock.NewRows(sessionColumns))
		sessions, err := repo.FindByUserAndTechnique(ctx, uid, "Yoga", entity.StateCompleted)
		require.NoError(t, err)
		assert.Empty(t, sessions)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid, entity.TechniquePomodoro, string(entity.StateCompleted)).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByUserAndTechnique(ctx, uid, entity.TechniquePomodoro, entity.StateCompleted)
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestSessionsFindCompletedByUserAndDay(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewSessionsRepoWithConn(conn)
	ctx := context.Background()
	uid := uuid.New()
	day := time.Date(2024, time.March, 4, 21, 0, 0, 0, time.UTC)
	from := entity.DateOf(day)

	conn.ExpectQuery(regexp.QuoteMeta(sessionSelect)).
		WithArgs(uid, string(entity.StateCompleted), from, from.AddDate(0, 0, 1)).
		WillReturnRows(pgxmock.NewRows(sessionColumns).
			AddRow(uuid.New(), uid, entity.TechniqueMeditation, entity.StateCompleted, from.Add(time.Hour), nil, 20, nil))
	sessions, err := repo.FindCompletedByUserAndDay(ctx, uid, day)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Nil(t, sessions[0].EndedAt)
	assert.Equal(t, 20, sessions[0].RealDuration)
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestSessionsGetByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewSessionsRepoWithConn(conn)
	ctx := context.Background()
	id, uid := uuid.New(), uuid.New()
	started := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(sessionSelect)

	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(id).
			WillReturnRows(pgxmock.NewRows(sessionColumns).
				AddRow(id, uid, entity.TechniquePomodoro, entity.StateRunning, started, nil, 0, []byte(`{}`)))
		session, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, session.ID)
		assert.Equal(t, entity.StateRunning, session.State)
		require.NotNil(t, session.Params.Pomodoro)
		assert.Equal(t, 4, session.Params.Pomodoro.TargetCycles)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(id).WillReturnRows(pgxmock.NewRows(sessionColumns))
		_, err := repo.GetByID(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrSessionNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestSessionsFinish(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewSessionsRepoWithConn(conn)
	ctx := context.Background()
	ended := time.Date(2024, time.March, 4, 9, 30, 0, 0, time.UTC)
	session := entity.Session{
		ID:           uuid.New(),
		Technique:    entity.TechniqueMeditation,
		EndedAt:      &ended,
		RealDuration: 30,
		Params: entity.SessionParams{
			Meditation: &entity.MeditationParams{Kind: "guiada", PlannedMinutes: 30},
		},
	}
	query := regexp.QuoteMeta(`UPDATE sessions SET state = $1, ended_at = $2, real_duration = $3, params = $4`)

	t.Run("finished", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(string(entity.StateCompleted), session.EndedAt, 30, pgxmock.AnyArg(), session.ID, string(entity.StateRunning)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Finish(ctx, &session))
	})
	t.Run("not running", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(string(entity.StateCompleted), session.EndedAt, 30, pgxmock.AnyArg(), session.ID, string(entity.StateRunning)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.Finish(ctx, &session), errorvalues.ErrSessionFinished)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

// paramsArg matches the encoded params bag of a session update
type paramsArg func(bag map[string]any) bool

func (m paramsArg) Match(v any) bool {
	raw, ok := v.([]byte)
	if !ok {
		return false
	}
	bag := make(map[string]any)
	if err := sonic.Unmarshal(raw, &bag); err != nil {
		return false
	}
	return m(bag)
}

func TestSessionsFinishKeepsStoredParams(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewSessionsRepoWithConn(conn)
	ctx := context.Background()
	id, uid := uuid.New(), uuid.New()
	started := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)
	ended := started.Add(20 * time.Minute)

	conn.ExpectQuery(regexp.QuoteMeta(sessionSelect)).WithArgs(id).
		WillReturnRows(pgxmock.NewRows(sessionColumns).
			AddRow(id, uid, entity.TechniqueMeditation, entity.StateRunning, started, nil, 0,
				[]byte(`{"duracion_planificada": "20", "tipo_meditacion": "mindfulness", "tiempo_inicio": "2024-03-04T09:00:00", "calificacion": "4"}`)))
	session, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, session.Params.Meditation)
	assert.Equal(t, 20, session.Params.Meditation.PlannedMinutes)

	session.State = entity.StateCompleted
	session.EndedAt = &ended
	session.RealDuration = 20
	conn.ExpectExec(regexp.QuoteMeta(`UPDATE sessions SET state = $1, ended_at = $2, real_duration = $3, params = $4`)).
		WithArgs(string(entity.StateCompleted), &ended, 20, paramsArg(func(bag map[string]any) bool {
			return bag["tiempo_inicio"] == "2024-03-04T09:00:00" &&
				bag["calificacion"] == "4" &&
				bag["tipo_meditacion"] == "mindfulness" &&
				bag["duracion_planificada"] == float64(20)
		}), id, string(entity.StateRunning)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.Finish(ctx, session))
	assert.NoError(t, conn.ExpectationsWereMet())
}
