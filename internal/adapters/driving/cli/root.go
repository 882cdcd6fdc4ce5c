// Package cli implements the tripleten command-line interface.
//
// Commands are thin cobra adapters over the driving ports; all domain
// behaviour lives in core services. main wires the services with
// SetServices before Execute.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/tripleten-tools/tripleten-cli/internal/core/ports/driving"
	"github.com/tripleten-tools/tripleten-cli/internal/logger"
)

// Build metadata injected by main (set via ldflags at release time).
var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

// Services aggregates the driving ports and hooks the commands need.
type Services struct {
	Leaderboard driving.LeaderboardService
	Session     driving.SessionService
	Settings    driving.SettingsService

	// WatchCredentials starts watching the cookie jar for external
	// replacement, returning a change signal and a stop function.
	// Nil disables credential hot-reload in watch mode.
	WatchCredentials func() (<-chan struct{}, func(), error)

	// ReloadCredentials re-reads the persisted jar into the gateway.
	// The refresh loop calls it after WatchCredentials signals.
	ReloadCredentials func() error
}

var (
	leaderboardService driving.LeaderboardService
	sessionService     driving.SessionService
	settingsService    driving.SettingsService
	watchCredentials   func() (<-chan struct{}, func(), error)
	reloadCredentials  func() error
)

// SetServices installs the wired services for all commands.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	leaderboardService = s.Leaderboard
	sessionService = s.Session
	settingsService = s.Settings
	watchCredentials = s.WatchCredentials
	reloadCredentials = s.ReloadCredentials
}

// SetVersion records the build metadata printed by the version command.
func SetVersion(v, c, date string) {
	if v != "" {
		version = v
	}
	commit = c
	buildDate = date
}

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "tripleten",
	Short: "A command-line interface for the TripleTen educational platform",
	Long: `TripleTen CLI displays the TripleTen leaderboard in your terminal.

Running tripleten without a subcommand shows the leaderboard for the
configured default period. Use 'tripleten login' first to authenticate
with your browser cookies; without a valid session the CLI falls back
to sample data.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	// Bare invocation behaves exactly like the leaderboard subcommand.
	RunE: runLeaderboard,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
	// Consumed by main before services are wired; declared here so the
	// flag parses and shows up in help.
	rootCmd.PersistentFlags().String(
		"config-dir", "", "configuration directory (default $TRIPLETEN_CONFIG_DIR or the platform config dir)")
}

// Execute runs the root command with the given context. Command output
// goes to stdout; cobra would otherwise fall back to stderr.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}
