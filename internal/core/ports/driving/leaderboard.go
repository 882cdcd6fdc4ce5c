package driving

import (
	"context"
	"time"

	"github.com/tripleten-tools/tripleten-cli/internal/core/domain"
)

// LeaderboardService drives leaderboard fetching and the change-aware
// refresh loop.
type LeaderboardService interface {
	// Fetch retrieves one normalised snapshot for the period.
	Fetch(ctx context.Context, period domain.Period) (*domain.Snapshot, error)

	// Run executes the refresh loop: an immediate fetch-and-render,
	// then, in watch mode, repeated change-aware refreshes until the
	// context is cancelled. A non-watch run is the degenerate case of
	// exactly one fetch and one render.
	Run(ctx context.Context, opts RunOptions) error
}

// RunOptions configures one refresh loop run.
type RunOptions struct {
	// Period is the leaderboard window to poll.
	Period domain.Period

	// Interval is the sleep between fetches in watch mode.
	Interval time.Duration

	// Watch keeps the loop running until cancellation. When false the
	// loop ends after the first fetch without ever sleeping.
	Watch bool

	// UserID marks the viewer's row in rendered output.
	UserID string

	// CredentialsChanged, when non-nil, signals that the cookie jar was
	// replaced on disk by another process. The loop invokes
	// ReloadCredentials before the next fetch so long-running watch
	// sessions pick up an external re-login.
	CredentialsChanged <-chan struct{}

	// ReloadCredentials reloads the jar into the gateway. Only called
	// after CredentialsChanged fires. May be nil.
	ReloadCredentials func() error
}
