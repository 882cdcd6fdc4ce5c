package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripleten-tools/tripleten-cli/internal/core/domain"
)

func TestLeaderboardCmd_Use(t *testing.T) {
	assert.Equal(t, "leaderboard", leaderboardCmd.Use)
	assert.Equal(t, "Display the TripleTen leaderboard", leaderboardCmd.Short)
}

func TestLeaderboardCmd_Flags(t *testing.T) {
	periodFlag := leaderboardCmd.Flags().Lookup("period")
	require.NotNil(t, periodFlag)
	assert.Equal(t, "", periodFlag.DefValue)

	watchFlag := leaderboardCmd.Flags().Lookup("watch")
	require.NotNil(t, watchFlag)
	assert.Equal(t, "w", watchFlag.Shorthand)
	assert.Equal(t, "false", watchFlag.DefValue)

	intervalFlag := leaderboardCmd.Flags().Lookup("interval")
	require.NotNil(t, intervalFlag)
	assert.Equal(t, "0", intervalFlag.DefValue)
}

func TestLeaderboardCmd_DefaultsComeFromConfig(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	settingsService.(*mockSettingsService).settings = domain.Settings{
		DefaultPeriod:   domain.PeriodWeek,
		DefaultInterval: 45 * time.Second,
		UserID:          "alice123",
	}
	mock := leaderboardService.(*mockLeaderboardService)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"leaderboard"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetLeaderboardFlags()
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	require.Len(t, mock.runOpts, 1)
	opts := mock.runOpts[0]
	assert.Equal(t, domain.PeriodWeek, opts.Period)
	assert.Equal(t, 45*time.Second, opts.Interval)
	assert.Equal(t, "alice123", opts.UserID)
	assert.False(t, opts.Watch)
}

func TestLeaderboardCmd_FlagsOverrideDefaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := leaderboardService.(*mockLeaderboardService)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"leaderboard", "--period", "30_days", "--watch", "--interval", "15"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetLeaderboardFlags()
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	require.Len(t, mock.runOpts, 1)
	opts := mock.runOpts[0]
	assert.Equal(t, domain.PeriodMonth, opts.Period)
	assert.Equal(t, 15*time.Second, opts.Interval)
	assert.True(t, opts.Watch)
	assert.Contains(t, buf.String(), "Watch mode stopped.")
}

func TestLeaderboardCmd_AcceptsPeriodAliases(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := leaderboardService.(*mockLeaderboardService)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"leaderboard", "--period", "week"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetLeaderboardFlags()
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	require.Len(t, mock.runOpts, 1)
	assert.Equal(t, domain.PeriodWeek, mock.runOpts[0].Period)
}

func TestLeaderboardCmd_RejectsUnknownPeriod(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := leaderboardService.(*mockLeaderboardService)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"leaderboard", "--period", "fortnight"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetLeaderboardFlags()
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "invalid period")
	assert.Empty(t, mock.runOpts)
}

func TestLeaderboardCmd_RejectsNonPositiveInterval(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := leaderboardService.(*mockLeaderboardService)

	for _, value := range []string{"0", "-5"} {
		buf := new(bytes.Buffer)
		rootCmd.SetOut(buf)
		rootCmd.SetErr(buf)
		rootCmd.SetArgs([]string{"leaderboard", "--interval=" + value})

		err := rootCmd.Execute()

		assert.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "interval must be a positive integer")
		assert.Empty(t, mock.runOpts)

		rootCmd.SetArgs(nil)
		resetLeaderboardFlags()
	}
}

func TestLeaderboardCmd_AuthErrorSuggestsLogin(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	leaderboardService.(*mockLeaderboardService).runErr = domain.ErrAuthRequired

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"leaderboard"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetLeaderboardFlags()
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
	assert.Contains(t, err.Error(), "run 'tripleten login' to refresh your session")
}

func TestLeaderboardCmd_WatchStartsCredentialWatcher(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := leaderboardService.(*mockLeaderboardService)
	changes := make(chan struct{})
	stopped := false
	watchCredentials = func() (<-chan struct{}, func(), error) {
		return changes, func() { stopped = true }, nil
	}
	reloadCredentials = func() error { return nil }

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"leaderboard", "--watch"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetLeaderboardFlags()
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	require.Len(t, mock.runOpts, 1)
	opts := mock.runOpts[0]
	assert.NotNil(t, opts.CredentialsChanged)
	assert.NotNil(t, opts.ReloadCredentials)
	assert.True(t, stopped, "watcher should be stopped after the run ends")
}

func TestLeaderboardCmd_SingleShotSkipsCredentialWatcher(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := leaderboardService.(*mockLeaderboardService)
	started := false
	watchCredentials = func() (<-chan struct{}, func(), error) {
		started = true
		return nil, func() {}, nil
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"leaderboard"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetLeaderboardFlags()
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.False(t, started, "single-shot runs should not start the watcher")
	require.Len(t, mock.runOpts, 1)
	assert.Nil(t, mock.runOpts[0].CredentialsChanged)
}

func TestLeaderboardCmd_WatcherFailureDegradesGracefully(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := leaderboardService.(*mockLeaderboardService)
	watchCredentials = func() (<-chan struct{}, func(), error) {
		return nil, nil, assert.AnError
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"leaderboard", "--watch"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetLeaderboardFlags()
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	require.Len(t, mock.runOpts, 1)
	assert.Nil(t, mock.runOpts[0].CredentialsChanged)
}

func TestLeaderboardCmd_ServiceNotConfigured(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	leaderboardService = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"leaderboard"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetLeaderboardFlags()
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "leaderboard service not configured")
}
