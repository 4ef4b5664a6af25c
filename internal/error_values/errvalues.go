package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrForbidden        = errors.New("not enough rights")

	ErrRewardNotFound      = errors.New("reward doesn't exist")
	ErrRewardExists        = errors.New("reward with such name already exists")
	ErrInvalidRequirements = errors.New("invalid reward requirements")
	ErrUserRewardExists    = errors.New("user already holds this reward")
	ErrUserRewardNotFound  = errors.New("user doesn't hold this reward")
	ErrRewardConsumed      = errors.New("reward already consumed")

	ErrTaskNotFound    = errors.New("task doesn't exist")
	ErrTaskCompleted   = errors.New("task already completed")
	ErrSessionNotFound = errors.New("session doesn't exist")
	ErrSessionFinished = errors.New("session is not running")
	ErrWrongOwner      = errors.New("resource belongs to another user")

	ErrInvalidDate = errors.New("invalid date")
	ErrValidation  = errors.New("validation error")
)
