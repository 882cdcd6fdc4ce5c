package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tripleten-tools/tripleten-cli/internal/core/domain"
	"github.com/tripleten-tools/tripleten-cli/internal/core/ports/driving"
	"github.com/tripleten-tools/tripleten-cli/internal/logger"
)

var (
	leaderboardPeriod   string
	leaderboardWatch    bool
	leaderboardInterval int
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Display the TripleTen leaderboard",
	Long: `Display the TripleTen leaderboard (default command).

Fetches the ranking for the chosen period and renders it as a table.
In watch mode the display refreshes on an interval and only repaints
when the data actually changes.

Examples:
  # One-off display with the configured defaults
  tripleten leaderboard

  # Weekly board, refreshed every 15 seconds
  tripleten leaderboard --period 7_days --watch --interval 15`,
	RunE: runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().StringVar(
		&leaderboardPeriod, "period", "", "time period: all_time, 30_days or 7_days (default from config)")
	leaderboardCmd.Flags().BoolVarP(
		&leaderboardWatch, "watch", "w", false, "continuously refresh the leaderboard")
	leaderboardCmd.Flags().IntVar(
		&leaderboardInterval, "interval", 0, "refresh interval in seconds for watch mode (default from config)")
	rootCmd.AddCommand(leaderboardCmd)
}

func runLeaderboard(cmd *cobra.Command, _ []string) error {
	if leaderboardService == nil {
		return errors.New("leaderboard service not configured")
	}
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings := settingsService.Get()

	// 1. Resolve period and interval; flags win over configured defaults.
	period := settings.DefaultPeriod
	if leaderboardPeriod != "" {
		parsed, err := domain.ParsePeriod(leaderboardPeriod)
		if err != nil {
			return err
		}
		period = parsed
	}

	interval := settings.DefaultInterval
	if cmd.Flags().Changed("interval") {
		if leaderboardInterval <= 0 {
			return fmt.Errorf("%w: interval must be a positive integer, got %d",
				domain.ErrInvalidInput, leaderboardInterval)
		}
		interval = time.Duration(leaderboardInterval) * time.Second
	}

	opts := driving.RunOptions{
		Period:   period,
		Interval: interval,
		Watch:    leaderboardWatch,
		UserID:   settings.UserID,
	}

	// 2. Watch mode picks up an external re-login without restarting.
	if leaderboardWatch && watchCredentials != nil {
		changes, stop, err := watchCredentials()
		if err != nil {
			logger.Warn("Could not watch cookie jar: %v", err)
		} else {
			defer stop()
			opts.CredentialsChanged = changes
			opts.ReloadCredentials = reloadCredentials
		}
	}

	// 3. Run until done or interrupted. Watch runs end only through
	// cancellation, so a nil error there means the user stopped it.
	if err := leaderboardService.Run(cmd.Context(), opts); err != nil {
		return loginHint(err)
	}

	if leaderboardWatch {
		cmd.Println("\nWatch mode stopped.")
	} else if cmd.Context().Err() != nil {
		cmd.Println("\nLeaderboard display interrupted.")
	}
	return nil
}

// loginHint appends a re-login pointer to authentication failures.
func loginHint(err error) error {
	if errors.Is(err, domain.ErrAuthRequired) {
		return fmt.Errorf("%w; run 'tripleten login' to refresh your session", err)
	}
	return err
}
