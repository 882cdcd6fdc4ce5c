package driven

import (
	"context"

	"github.com/tripleten-tools/tripleten-cli/internal/core/domain"
)

// LeaderboardGateway is the authenticated hub API surface the core
// depends on. The gateway owns transport concerns (retries, timeouts,
// cookie attachment) and response-shape normalisation; core services
// only ever see canonical domain types.
type LeaderboardGateway interface {
	// Login replaces the session with cookies parsed from a raw Cookie
	// header line, persists them, and reports how many were parsed.
	// The in-memory session is updated even when persistence fails, so
	// a read-only config directory still allows a working session.
	Login(cookieHeader string) (int, error)

	// FetchLeaderboard retrieves one normalised leaderboard snapshot
	// for the period. The period must already be valid; the gateway
	// re-checks and fails with domain.ErrInvalidInput before any
	// network activity.
	FetchLeaderboard(ctx context.Context, period domain.Period) (*domain.Snapshot, error)

	// UserInfo returns the authenticated profile, or nil without error
	// when the hub signals the session is unauthenticated.
	UserInfo(ctx context.Context) (*domain.UserInfo, error)

	// IsAuthenticated probes the hub with the stored cookies. False
	// with nil error means the hub explicitly rejected the session;
	// any other failure returns an error so callers can distinguish
	// "confirmed unauthenticated" from "could not determine".
	IsAuthenticated(ctx context.Context) (bool, error)

	// SetCredentials replaces the cookie jar attached to every
	// subsequent request.
	SetCredentials(creds domain.Credentials)
}
