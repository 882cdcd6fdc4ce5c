package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tripleten-tools/tripleten-cli/internal/core/domain"
)

// FetchLeaderboardInput is the input schema for the fetch_leaderboard tool.
type FetchLeaderboardInput struct {
	Period string `json:"period,omitempty" jsonschema:"leaderboard period: all_time, 30_days or 7_days (default all_time)"`
}

// FetchLeaderboardOutput is the output schema for the fetch_leaderboard tool.
type FetchLeaderboardOutput struct {
	Period    string        `json:"period"`
	FetchedAt string        `json:"fetched_at"`
	Entries   []EntryOutput `json:"entries"`
}

// EntryOutput represents a single leaderboard row.
type EntryOutput struct {
	Rank      int    `json:"rank"`
	User      string `json:"user"`
	UserID    string `json:"user_id,omitempty"`
	XP        int    `json:"xp"`
	Completed int    `json:"completed"`
	Streak    int    `json:"streak"`
}

// AuthStatusInput is the input schema for the auth_status tool.
type AuthStatusInput struct{}

// AuthStatusOutput is the output schema for the auth_status tool.
type AuthStatusOutput struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"user_id,omitempty"`
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "fetch_leaderboard",
		Description: "Fetch the TripleTen leaderboard for a time period",
	}, s.handleFetchLeaderboard)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "auth_status",
		Description: "Report whether the stored session cookies are still valid",
	}, s.handleAuthStatus)
}

// handleFetchLeaderboard handles the fetch_leaderboard tool invocation.
func (s *Server) handleFetchLeaderboard(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FetchLeaderboardInput,
) (*mcp.CallToolResult, FetchLeaderboardOutput, error) {
	period := domain.PeriodAllTime
	if input.Period != "" {
		parsed, err := domain.ParsePeriod(input.Period)
		if err != nil {
			return nil, FetchLeaderboardOutput{}, err
		}
		period = parsed
	}

	snapshot, err := s.ports.Leaderboard.Fetch(ctx, period)
	if err != nil {
		if errors.Is(err, domain.ErrAuthRequired) {
			return nil, FetchLeaderboardOutput{},
				fmt.Errorf("authentication required: run 'tripleten login' to refresh the session")
		}
		return nil, FetchLeaderboardOutput{}, err
	}

	output := FetchLeaderboardOutput{
		Period:    period.String(),
		FetchedAt: snapshot.FetchedAt.Format(time.RFC3339),
		Entries:   make([]EntryOutput, len(snapshot.Entries)),
	}

	for i := range snapshot.Entries {
		output.Entries[i] = EntryOutput{
			Rank:      snapshot.Entries[i].Rank,
			User:      snapshot.Entries[i].User,
			UserID:    snapshot.Entries[i].UserID,
			XP:        snapshot.Entries[i].XP,
			Completed: snapshot.Entries[i].Completed,
			Streak:    snapshot.Entries[i].Streak,
		}
	}

	return nil, output, nil
}

// handleAuthStatus handles the auth_status tool invocation.
func (s *Server) handleAuthStatus(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ AuthStatusInput,
) (*mcp.CallToolResult, AuthStatusOutput, error) {
	info, err := s.ports.Session.Verify(ctx)
	if err != nil {
		return nil, AuthStatusOutput{}, err
	}
	if info == nil {
		return nil, AuthStatusOutput{Authenticated: false}, nil
	}

	return nil, AuthStatusOutput{
		Authenticated: true,
		UserID:        info.PublicUID,
		Name:          info.Name,
		Email:         info.Email,
	}, nil
}
