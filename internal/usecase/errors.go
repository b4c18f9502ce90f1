package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrSnapshotSuperseded is returned by a fetch cycle that finished after a newer one started.
	ErrSnapshotSuperseded = errors.New("snapshot refresh superseded")
)
