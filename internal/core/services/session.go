package services

import (
	"context"

	"github.com/tripleten-tools/tripleten-cli/internal/core/domain"
	"github.com/tripleten-tools/tripleten-cli/internal/core/ports/driven"
	"github.com/tripleten-tools/tripleten-cli/internal/core/ports/driving"
)

// Ensure Session implements the interface.
var _ driving.SessionService = (*Session)(nil)

// Session manages the authenticated hub session.
type Session struct {
	gateway driven.LeaderboardGateway
	store   driven.CredentialStore
}

// NewSession creates a session service.
func NewSession(gateway driven.LeaderboardGateway, store driven.CredentialStore) *Session {
	return &Session{
		gateway: gateway,
		store:   store,
	}
}

// Login replaces the stored session with cookies parsed from a raw
// Cookie header line. Returns the number of cookies stored; the count
// is valid even when persisting them failed.
func (s *Session) Login(_ context.Context, cookieHeader string) (int, error) {
	return s.gateway.Login(cookieHeader)
}

// Verify probes the hub with the stored session. A nil UserInfo with a
// nil error means the hub explicitly rejected the session.
func (s *Session) Verify(ctx context.Context) (*domain.UserInfo, error) {
	return s.gateway.UserInfo(ctx)
}

// JarPath returns the on-disk location of the cookie jar.
func (s *Session) JarPath() string {
	return s.store.Path()
}
