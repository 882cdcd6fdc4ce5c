// Package mcp provides an MCP (Model Context Protocol) server adapter
// for the TripleTen CLI. It lets AI assistants like Claude fetch the
// leaderboard and inspect the session state over JSON-RPC.
package mcp

import "errors"

var (
	// ErrMissingLeaderboardService is returned when the leaderboard service is not provided.
	ErrMissingLeaderboardService = errors.New("mcp: leaderboard service is required")

	// ErrMissingSessionService is returned when the session service is not provided.
	ErrMissingSessionService = errors.New("mcp: session service is required")
)
