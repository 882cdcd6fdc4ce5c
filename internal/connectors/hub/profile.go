package hub

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tripleten-tools/tripleten-cli/internal/core/domain"
)

// profilePath is the lightweight authenticated endpoint used to probe
// whether the stored cookies still identify a live session.
const profilePath = "/api/user/profile"

// UserInfo returns the authenticated profile. A rejected session is
// reported as (nil, nil) so callers can treat "not logged in" as a
// state rather than a failure.
func (c *Client) UserInfo(ctx context.Context) (*domain.UserInfo, error) {
	resp, err := c.transport.Do(ctx, http.MethodGet, profilePath, nil, nil)
	if errors.Is(err, domain.ErrAuthRequired) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, apiError(resp)
	}

	var info domain.UserInfo
	if err := json.Unmarshal(resp.Body(), &info); err != nil {
		return nil, &MalformedResponseError{URL: resp.Request.URL, Err: err}
	}

	return &info, nil
}

// IsAuthenticated probes the hub with the stored cookies. False with
// nil error means the hub explicitly rejected the session; any other
// failure (network, hub-side) returns the error so callers can tell
// "confirmed unauthenticated" from "could not determine".
func (c *Client) IsAuthenticated(ctx context.Context) (bool, error) {
	resp, err := c.transport.Do(ctx, http.MethodGet, profilePath, nil, nil)
	if errors.Is(err, domain.ErrAuthRequired) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if resp.StatusCode() != http.StatusOK {
		return false, apiError(resp)
	}

	return true, nil
}
