package mcp

import (
	"context"

	"github.com/tripleten-tools/tripleten-cli/internal/core/domain"
	"github.com/tripleten-tools/tripleten-cli/internal/core/ports/driving"
)

// mockLeaderboardService is a mock implementation of driving.LeaderboardService.
type mockLeaderboardService struct {
	snapshot   *domain.Snapshot
	err        error
	lastPeriod domain.Period
}

func (m *mockLeaderboardService) Fetch(
	_ context.Context,
	period domain.Period,
) (*domain.Snapshot, error) {
	m.lastPeriod = period
	return m.snapshot, m.err
}

func (m *mockLeaderboardService) Run(_ context.Context, _ driving.RunOptions) error {
	return m.err
}

// mockSessionService is a mock implementation of driving.SessionService.
type mockSessionService struct {
	info  *domain.UserInfo
	err   error
	count int
	path  string
}

func (m *mockSessionService) Login(_ context.Context, _ string) (int, error) {
	return m.count, m.err
}

func (m *mockSessionService) Verify(_ context.Context) (*domain.UserInfo, error) {
	return m.info, m.err
}

func (m *mockSessionService) JarPath() string {
	return m.path
}
