package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid caller input,
	// such as an unrecognised leaderboard period. It is always raised
	// before any network activity.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuthRequired indicates the hub rejected a request with HTTP 401.
	// The stored cookies are missing or stale; the user must run
	// 'tripleten login' again. Never retried.
	ErrAuthRequired = errors.New("authentication required")

	// ErrStorage indicates a local state file (cookie jar, config) could
	// not be read or written. Callers must treat it as non-fatal for an
	// already-authenticated in-memory session.
	ErrStorage = errors.New("storage failure")
)
