package notice

import "errors"

var (
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidEvent    = errors.New("event has no actor")
	ErrDuplicateNotice = errors.New("notice already exists")
	ErrDrainConflict   = errors.New("notices drained concurrently")
)
