package mcp

import (
	"github.com/tripleten-tools/tripleten-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Leaderboard provides snapshot fetching.
	Leaderboard driving.LeaderboardService

	// Session reports authentication state.
	Session driving.SessionService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Leaderboard == nil {
		return ErrMissingLeaderboardService
	}
	if p.Session == nil {
		return ErrMissingSessionService
	}
	return nil
}
