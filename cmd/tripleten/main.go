// Command tripleten displays the TripleTen leaderboard in the
// terminal. It wires the file-backed stores, the hub gateway and the
// table renderer into the core services, then hands control to the
// CLI adapter.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	configfile "github.com/tripleten-tools/tripleten-cli/internal/adapters/driven/config/file"
	credfile "github.com/tripleten-tools/tripleten-cli/internal/adapters/driven/credentials/file"
	"github.com/tripleten-tools/tripleten-cli/internal/adapters/driven/render/table"
	"github.com/tripleten-tools/tripleten-cli/internal/adapters/driving/cli"
	"github.com/tripleten-tools/tripleten-cli/internal/connectors/hub"
	"github.com/tripleten-tools/tripleten-cli/internal/core/services"
	"github.com/tripleten-tools/tripleten-cli/internal/logger"
)

// Build metadata, injected with -ldflags at release time.
var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// The config directory must be known before cobra parses anything,
	// because the stores feed the services the commands run on.
	configDir := resolveConfigDir(os.Args[1:])

	configStore, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}

	credStore, err := credfile.NewStore(configDir)
	if err != nil {
		return fmt.Errorf("open credential store: %w", err)
	}

	var hubOpts []hub.TransportOption
	if origin := os.Getenv("TRIPLETEN_HUB_ORIGIN"); origin != "" {
		hubOpts = append(hubOpts, hub.WithBaseURL(origin))
	}
	if dir := os.Getenv("TRIPLETEN_DEBUG_DUMP"); dir != "" {
		hubOpts = append(hubOpts, hub.WithDebugDump(dir))
	}

	gateway, err := hub.New(credStore, hubOpts...)
	if err != nil {
		return fmt.Errorf("create hub client: %w", err)
	}

	renderer := table.NewRenderer(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))

	cli.SetVersion(version, commit, date)
	cli.SetServices(&cli.Services{
		Leaderboard: services.NewRefresh(gateway, renderer),
		Session:     services.NewSession(gateway, credStore),
		Settings:    services.NewSettingsService(configStore),
		WatchCredentials: func() (<-chan struct{}, func(), error) {
			watcher, err := credfile.NewWatcher(credStore)
			if err != nil {
				return nil, nil, err
			}
			stopWatcher := func() {
				if err := watcher.Close(); err != nil {
					logger.Warn("Could not close credential watcher: %v", err)
				}
			}
			return watcher.Changes(), stopWatcher, nil
		},
		ReloadCredentials: func() error {
			creds, err := credStore.Load()
			if err != nil {
				return err
			}
			gateway.SetCredentials(creds)
			return nil
		},
	})

	return cli.Execute(ctx)
}

// resolveConfigDir extracts --config-dir from the raw arguments,
// falling back to $TRIPLETEN_CONFIG_DIR. An empty result makes the
// stores default to the platform config directory.
func resolveConfigDir(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--config-dir" && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(arg, "--config-dir="):
			return strings.TrimPrefix(arg, "--config-dir=")
		}
	}
	return os.Getenv("TRIPLETEN_CONFIG_DIR")
}
