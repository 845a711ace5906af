package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3001", cfg.Addr)
	assert.Equal(t, 2, cfg.MinPlayers)
	assert.Equal(t, 5*time.Second, cfg.ResetDelay)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LASTLIGHT_ADDR", ":9000")
	t.Setenv("LASTLIGHT_MIN_PLAYERS", "4")
	t.Setenv("LASTLIGHT_RESET_DELAY", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 4, cfg.MinPlayers)
	assert.Equal(t, 250*time.Millisecond, cfg.ResetDelay)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("LASTLIGHT_MIN_PLAYERS", "zero")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsZeroMinPlayers(t *testing.T) {
	t.Setenv("LASTLIGHT_MIN_PLAYERS", "0")
	_, err := Load()
	assert.Error(t, err)
}
