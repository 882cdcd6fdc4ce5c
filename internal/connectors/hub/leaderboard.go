package hub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tripleten-tools/tripleten-cli/internal/core/domain"
	"github.com/tripleten-tools/tripleten-cli/internal/logger"
)

// leaderboardPath is the internal API route for leaderboard data.
// The doubled slash is what the hub's own web client requests and the
// single-slash spelling 404s, so it must survive URL assembly
// byte-for-byte.
const leaderboardPath = "/internal_api//gamification/leaderboard"

// leaderboardReferer is the page URL the web client fetches the
// leaderboard from; the hub checks it against the requested period.
const leaderboardReferer = "https://hub.tripleten.com/leaderboard/?period="

// topMember is the reduced entry shape served by older hub deploys.
type topMember struct {
	Name        string `json:"name"`
	PublicUID   string `json:"public_uid"`
	TotalPoints int    `json:"total_points"`
}

// FetchLeaderboard retrieves one leaderboard snapshot for the period.
// The flow is strictly staged: validate before any network activity,
// dispatch, map the status, decode, normalise. Every exit is one of
// the package error types or a domain sentinel.
func (c *Client) FetchLeaderboard(ctx context.Context, period domain.Period) (*domain.Snapshot, error) {
	// 1. Validate locally - an unknown period never reaches the wire.
	if !period.IsValid() {
		return nil, fmt.Errorf("%w: invalid period %q (valid: all_time, 30_days, 7_days)",
			domain.ErrInvalidInput, string(period))
	}

	logger.Debug("Fetching leaderboard for period %s", period)

	// 2. Dispatch with the period both in the query and in the Referer.
	resp, err := c.transport.Do(ctx, http.MethodGet, leaderboardPath,
		map[string]string{"period": period.String()},
		map[string]string{"Referer": leaderboardReferer + period.String()},
	)
	if err != nil {
		// 3. 401 surfaces as domain.ErrAuthRequired, transport
		// failures as NetworkError; both pass through unwrapped.
		return nil, err
	}

	// 4. Any other non-success status becomes an APIError.
	if resp.StatusCode() != http.StatusOK {
		return nil, apiError(resp)
	}

	// 5. Decode and normalise into canonical entries.
	entries, err := decodeLeaderboard(resp.Body())
	if err != nil {
		return nil, &MalformedResponseError{URL: resp.Request.URL, Err: err}
	}

	logger.Debug("Fetched %d leaderboard entries", len(entries))

	return &domain.Snapshot{
		Entries:   entries,
		FetchedAt: time.Now(),
	}, nil
}

// decodeLeaderboard turns a success body into canonical entries.
// Two payload shapes exist: the current one carries a `leaderboard`
// array of full entries taken verbatim, the older one carries
// `top_members` with a reduced field set that gets synthesised into
// full entries. Anything else is a malformed response. A JSON null
// under either key counts as the key being absent.
func decodeLeaderboard(body []byte) ([]domain.Entry, error) {
	var payload struct {
		Leaderboard *[]domain.Entry `json:"leaderboard"`
		TopMembers  *[]topMember    `json:"top_members"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode leaderboard body: %w", err)
	}

	switch {
	case payload.Leaderboard != nil:
		return *payload.Leaderboard, nil
	case payload.TopMembers != nil:
		return normaliseTopMembers(*payload.TopMembers), nil
	default:
		return nil, errors.New("response carries neither leaderboard nor top_members")
	}
}

// normaliseTopMembers synthesises full entries from the reduced
// shape: rank is the 1-based list position, missing names become
// "Unknown", and the fields the shape lacks are zero.
func normaliseTopMembers(members []topMember) []domain.Entry {
	entries := make([]domain.Entry, 0, len(members))
	for i, member := range members {
		name := member.Name
		if name == "" {
			name = "Unknown"
		}
		entries = append(entries, domain.Entry{
			Rank:   i + 1,
			User:   name,
			UserID: member.PublicUID,
			XP:     member.TotalPoints,
		})
	}
	return entries
}
