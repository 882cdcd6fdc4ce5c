package driven

import (
	"time"

	"github.com/tripleten-tools/tripleten-cli/internal/core/domain"
)

// Renderer presents a leaderboard snapshot to the user. Exactly one
// concrete implementation is selected by the host application at
// startup; the core never branches on which backend is active.
type Renderer interface {
	// Render draws the snapshot. The refresh loop guarantees it is
	// called at most once per changed fetch and never concurrently.
	Render(snapshot *domain.Snapshot, opts RenderOptions) error
}

// RenderOptions carries presentation context for a single render.
type RenderOptions struct {
	// Period is the window the snapshot was fetched for.
	Period domain.Period

	// CurrentUserID marks the viewer's row when non-empty.
	CurrentUserID string

	// Notice is an optional warning shown above the table, e.g. when
	// sample data stands in for a failed live fetch.
	Notice string

	// Watch enables screen clearing and the refresh footer.
	Watch bool

	// Interval is the refresh cadence shown in the watch footer.
	Interval time.Duration
}
