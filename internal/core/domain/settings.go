package domain

import "time"

// Settings holds the resolved application configuration consumed by
// the CLI and the refresh loop. It is built once at process start and
// passed by value into constructors; there is no ambient global
// configuration.
type Settings struct {
	// DefaultPeriod is the leaderboard window used when --period is
	// not given.
	DefaultPeriod Period

	// DefaultInterval is the watch-mode refresh cadence used when
	// --interval is not given. Always positive.
	DefaultInterval time.Duration

	// UserID is the viewer's public identifier, used to highlight
	// their row in the rendered table. Empty disables highlighting.
	UserID string
}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		DefaultPeriod:   PeriodAllTime,
		DefaultInterval: 30 * time.Second,
	}
}
