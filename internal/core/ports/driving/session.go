package driving

import (
	"context"

	"github.com/tripleten-tools/tripleten-cli/internal/core/domain"
)

// SessionService manages the authenticated hub session.
type SessionService interface {
	// Login parses a raw browser Cookie header, replaces the cookie jar
	// wholesale and persists it. Returns the number of cookies stored.
	// Parsing is best-effort and never fails; a persistence failure is
	// reported but the in-memory session stays authenticated.
	Login(ctx context.Context, cookieHeader string) (int, error)

	// Verify probes the hub with the stored cookies. Returns the
	// profile when authenticated, nil without error when the hub
	// rejects the session, and an error when the probe could not
	// determine either way.
	Verify(ctx context.Context) (*domain.UserInfo, error)

	// JarPath returns the on-disk location of the cookie jar.
	JarPath() string
}
