// Package config loads server settings from the environment, with a
// .env file honored when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Addr is the listen address for the HTTP/websocket server.
	Addr string
	// MinPlayers is the roster size required to start a game.
	MinPlayers int
	// ResetDelay is the pause between a game ending and the room
	// returning to the lobby.
	ResetDelay time.Duration
	LogLevel   string
	LogFormat  string
}

// Load reads configuration from the environment. Every value has a
// default so the server runs with no environment at all.
func Load() (Config, error) {
	// A missing .env file is fine; real env vars still apply.
	_ = godotenv.Load()

	cfg := Config{
		Addr:      getEnv("LASTLIGHT_ADDR", ":3001"),
		LogLevel:  getEnv("LASTLIGHT_LOG_LEVEL", "info"),
		LogFormat: getEnv("LASTLIGHT_LOG_FORMAT", "console"),
	}

	minPlayers, err := getEnvAsInt("LASTLIGHT_MIN_PLAYERS", 2)
	if err != nil {
		return Config{}, err
	}
	if minPlayers < 1 {
		return Config{}, fmt.Errorf("LASTLIGHT_MIN_PLAYERS must be at least 1, got %d", minPlayers)
	}
	cfg.MinPlayers = minPlayers

	resetDelay, err := getEnvAsDuration("LASTLIGHT_RESET_DELAY", 5*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.ResetDelay = resetDelay

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}
