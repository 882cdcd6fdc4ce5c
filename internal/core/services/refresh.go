package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tripleten-tools/tripleten-cli/internal/core/domain"
	"github.com/tripleten-tools/tripleten-cli/internal/core/ports/driven"
	"github.com/tripleten-tools/tripleten-cli/internal/core/ports/driving"
	"github.com/tripleten-tools/tripleten-cli/internal/logger"
)

// Ensure Refresh implements the interface.
var _ driving.LeaderboardService = (*Refresh)(nil)

// Refresh drives leaderboard fetching and the change-aware watch loop.
// A single goroutine owns the whole cycle: fetches, renders and sleeps
// run strictly in sequence, so at most one request is ever in flight
// and the renderer is never invoked concurrently.
type Refresh struct {
	gateway  driven.LeaderboardGateway
	renderer driven.Renderer
}

// NewRefresh creates a refresh service.
func NewRefresh(gateway driven.LeaderboardGateway, renderer driven.Renderer) *Refresh {
	return &Refresh{
		gateway:  gateway,
		renderer: renderer,
	}
}

// Fetch retrieves one normalised snapshot for the period.
func (r *Refresh) Fetch(ctx context.Context, period domain.Period) (*domain.Snapshot, error) {
	return r.gateway.FetchLeaderboard(ctx, period)
}

// Run executes the refresh loop: an immediate fetch, then fetches every
// opts.Interval until ctx is cancelled. Repaints happen only when the
// snapshot content digest moves. Cancellation ends the run cleanly with
// a nil error; it is never treated as a failure.
func (r *Refresh) Run(ctx context.Context, opts driving.RunOptions) error {
	var lastDigest string

	for {
		// 1. Fetch. A cancelled context ends the run regardless of
		// what the in-flight request returned.
		snapshot, err := r.gateway.FetchLeaderboard(ctx, opts.Period)
		if ctx.Err() != nil {
			return nil
		}

		notice := ""
		if err != nil {
			// Invalid input cannot heal between iterations, unlike
			// auth or network failures which external action may fix.
			if !opts.Watch || errors.Is(err, domain.ErrInvalidInput) {
				return err
			}
			logger.Warn("Fetch failed: %v", err)
			snapshot = domain.SampleSnapshot()
			notice = sampleNotice(err)
		}

		// 2. Render only when the digest moved. The sample snapshot
		// flows through the same comparison, so consecutive failures
		// repaint once and recovery to live data repaints immediately.
		digest := domain.Fingerprint(snapshot.Entries)
		if digest != lastDigest {
			lastDigest = digest
			renderErr := r.renderer.Render(snapshot, driven.RenderOptions{
				Period:        opts.Period,
				CurrentUserID: opts.UserID,
				Notice:        notice,
				Watch:         opts.Watch,
				Interval:      opts.Interval,
			})
			if renderErr != nil {
				return fmt.Errorf("render: %w", renderErr)
			}
		} else {
			logger.Debug("Leaderboard unchanged, skipping render")
		}

		// 3. A single-shot run ends after the first handled fetch.
		if !opts.Watch {
			return nil
		}

		// 4. Sleep out the interval, reloading credentials if the
		// cookie jar changes on disk mid-wait.
		if err := r.sleep(ctx, opts); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
}

// sleep waits out the refresh interval. A cookie jar change on disk
// triggers a credential reload without resetting the remaining wait,
// so an external re-login takes effect on the next scheduled fetch.
func (r *Refresh) sleep(ctx context.Context, opts driving.RunOptions) error {
	timer := time.NewTimer(opts.Interval)
	defer timer.Stop()

	changes := opts.CredentialsChanged
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		case _, ok := <-changes:
			if !ok {
				// Watcher closed; stop selecting on it.
				changes = nil
				continue
			}
			if opts.ReloadCredentials == nil {
				continue
			}
			logger.Info("Cookie jar changed on disk, reloading credentials")
			if err := opts.ReloadCredentials(); err != nil {
				logger.Warn("Could not reload credentials: %v", err)
			}
		}
	}
}

// sampleNotice explains the fallback row set. Auth failures point at
// the login command since a watch session can outlive its cookies.
func sampleNotice(err error) string {
	if errors.Is(err, domain.ErrAuthRequired) {
		return "Authentication required, showing sample data. Run 'tripleten login' to refresh your session."
	}
	return "Fetch failed, showing sample data."
}
