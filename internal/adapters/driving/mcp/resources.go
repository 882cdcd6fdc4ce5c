package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tripleten-tools/tripleten-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for TripleTen resources.
	uriScheme = "tripleten://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing valid periods.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "periods",
		Name:        "periods",
		Description: "Valid leaderboard time periods",
		MIMEType:    "application/json",
	}, s.handlePeriodsResource)

	// Template for leaderboard snapshots.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "leaderboard/{period}",
		Name:        "leaderboard",
		Description: "Leaderboard snapshot for a specific period",
		MIMEType:    "application/json",
	}, s.handleLeaderboardResource)
}

// handlePeriodsResource returns the closed set of valid periods.
func (s *Server) handlePeriodsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type periodInfo struct {
		ID          string `json:"id"`
		Description string `json:"description"`
	}

	periods := domain.AllPeriods()
	infos := make([]periodInfo, len(periods))
	for i, p := range periods {
		infos[i] = periodInfo{ID: p.String(), Description: p.Description()}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling periods: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleLeaderboardResource returns one leaderboard snapshot.
func (s *Server) handleLeaderboardResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract the period from URI: tripleten://leaderboard/{period}
	raw := extractPeriod(req.Params.URI)
	if raw == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	period, err := domain.ParsePeriod(raw)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	snapshot, err := s.ports.Leaderboard.Fetch(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("fetching leaderboard: %w", err)
	}

	data, err := json.MarshalIndent(snapshot.Entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling entries: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractPeriod extracts the period from a URI like tripleten://leaderboard/{period}.
func extractPeriod(uri string) string {
	const prefix = uriScheme + "leaderboard/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
