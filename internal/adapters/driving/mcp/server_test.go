package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil leaderboard service returns error", func(t *testing.T) {
		ports := &Ports{Session: &mockSessionService{}}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingLeaderboardService)
	})

	t.Run("nil session service returns error", func(t *testing.T) {
		ports := &Ports{Leaderboard: &mockLeaderboardService{}}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSessionService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Leaderboard: &mockLeaderboardService{},
			Session:     &mockSessionService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil leaderboard service returns error", func(t *testing.T) {
		ports := &Ports{Session: &mockSessionService{}}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingLeaderboardService)
	})

	t.Run("nil session service returns error", func(t *testing.T) {
		ports := &Ports{Leaderboard: &mockLeaderboardService{}}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingSessionService)
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Leaderboard: &mockLeaderboardService{},
			Session:     &mockSessionService{},
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})
}
