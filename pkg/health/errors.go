package health

import "errors"

var (
	// ErrCheckFailed is joined with the errors of every failing readiness
	// check (store, redis, jobs).
	ErrCheckFailed = errors.New("health: not ready")
	// ErrCheckTimeout wraps a check that ran past its deadline.
	ErrCheckTimeout = errors.New("health: check timed out")
)
