package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/synapse/internal/error_values"
	"github.com/limbo/synapse/internal/repository"
	"github.com/limbo/synapse/pkg/entity"
)

// ActivityService closes tasks and sessions, then refreshes progress and rewards.
type ActivityService struct {
	tx       repository.TransactorI
	tasks    repository.TasksRepositoryI
	sessions repository.SessionsRepositoryI
	progress *ProgressRollup
	engine   *RewardGrantEngine
	now      func() time.Time
}

func NewActivityService(
	tx repository.TransactorI,
	tasks repository.TasksRepositoryI,
	sessions repository.SessionsRepositoryI,
	progress *ProgressRollup,
	engine *RewardGrantEngine,
	opts ...Option,
) *ActivityService {
	if tx == nil || tasks == nil || sessions == nil || progress == nil || engine == nil {
		log.Fatal("on activity service provided nil dependencies")
	}
	o := buildOptions(opts)
	return &ActivityService{
		tx:       tx,
		tasks:    tasks,
		sessions: sessions,
		progress: progress,
		engine:   engine,
		now:      o.now,
	}
}

func (as *ActivityService) CompleteTask(ctx context.Context, uid, taskID uuid.UUID) (*entity.TaskCompletion, error) {
	var completion *entity.TaskCompletion
	err := as.tx.WithinTx(ctx, func(ctx context.Context) error {
		task, err := as.tasks.GetByID(ctx, taskID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrTaskNotFound) {
				return err
			}
			return errors.New("tasks repository error: " + err.Error())
		}
		if task.UserID != uid {
			return errorvalues.ErrWrongOwner
		}
		if task.State == entity.StateCompleted {
			return errorvalues.ErrTaskCompleted
		}
		now := as.now()
		if err = as.tasks.Complete(ctx, taskID, now); err != nil {
			if errors.Is(err, errorvalues.ErrTaskCompleted) {
				return err
			}
			return errors.New("tasks repository error: " + err.Error())
		}
		task.State = entity.StateCompleted
		task.CompletedAt = &now

		// Before granting, so the streak counts today
		if _, err = as.progress.Recompute(ctx, uid, now); err != nil {
			return err
		}
		report, err := as.engine.VerifyAfterTask(ctx, uid)
		if err != nil {
			return err
		}
		if err = as.refreshPoints(ctx, uid, now, report); err != nil {
			return err
		}
		completion = &entity.TaskCompletion{
			TaskID:         task.ID,
			CompletedAt:    now,
			DueDate:        task.DueDate,
			OnTime:         CompletedOnTime(task),
			CompletedEarly: CompletedEarly(task),
			Granted:        report.Granted,
		}
		if task.DueDate != nil {
			completion.DaysAhead = DaysAhead(now, *task.DueDate)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completion, nil
}

func (as *ActivityService) FinishSession(ctx context.Context, uid, sessionID uuid.UUID, req *FinishSessionRequest) (*entity.SessionCompletion, error) {
	if req == nil {
		req = &FinishSessionRequest{}
	}
	if err := checkStruct(*req); err != nil {
		return nil, err
	}
	var completion *entity.SessionCompletion
	err := as.tx.WithinTx(ctx, func(ctx context.Context) error {
		session, err := as.sessions.GetByID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrSessionNotFound) {
				return err
			}
			return errors.New("sessions repository error: " + err.Error())
		}
		if session.UserID != uid {
			return errorvalues.ErrWrongOwner
		}
		if session.State != entity.StateRunning {
			return errorvalues.ErrSessionFinished
		}
		now := as.now()
		session.State = entity.StateCompleted
		session.EndedAt = &now
		session.RealDuration = max(0, int(now.Sub(session.StartedAt).Minutes()))
		if req.CompletedCycles != nil && session.Params.Pomodoro != nil {
			session.Params.Pomodoro.CompletedCycles = *req.CompletedCycles
		}
		if err = as.sessions.Finish(ctx, session); err != nil {
			if errors.Is(err, errorvalues.ErrSessionFinished) {
				return err
			}
			return errors.New("sessions repository error: " + err.Error())
		}

		// Sessions count on the day they started. Both days are rebuilt
		// before granting, so the streak counts today
		if _, err = as.progress.Recompute(ctx, uid, session.StartedAt); err != nil {
			return err
		}
		if !entity.DateOf(session.StartedAt).Equal(entity.DateOf(now)) {
			if _, err = as.progress.Recompute(ctx, uid, now); err != nil {
				return err
			}
		}

		var report *entity.GrantReport
		switch session.Technique {
		case entity.TechniqueMeditation:
			report, err = as.engine.VerifyAfterMeditation(ctx, uid)
		case entity.TechniquePomodoro:
			report, err = as.engine.VerifyAfterPomodoro(ctx, uid)
		default:
			report, err = as.engine.VerifyAndGrantAll(ctx, uid)
		}
		if err != nil {
			return err
		}
		if err = as.refreshPoints(ctx, uid, now, report); err != nil {
			return err
		}
		completion = &entity.SessionCompletion{
			Session: session,
			Granted: report.Granted,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completion, nil
}

// refreshPoints rebuilds the grant day once more when the pass granted something,
// so its points include the new rewards
func (as *ActivityService) refreshPoints(ctx context.Context, uid uuid.UUID, now time.Time, report *entity.GrantReport) error {
	if len(report.Granted) == 0 {
		return nil
	}
	_, err := as.progress.Recompute(ctx, uid, now)
	return err
}
