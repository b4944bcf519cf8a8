// Package config resolves runtime configuration from the environment, with
// an optional .env file for development setups.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config is everything the CLI needs before it can talk to the API.
type Config struct {
	// APIURL is the base URL of the Grocey API, including the /api prefix.
	APIURL string
	// StatePath is the SQLite file holding credentials and settings.
	StatePath string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads GROCEY_* environment variables, after loading a .env file from
// the working directory when one exists.
func Load() Config {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	return Config{
		APIURL:    getenv("GROCEY_API_URL", "http://localhost:8080/api"),
		StatePath: getenv("GROCEY_STATE_PATH", defaultStatePath()),
		LogLevel:  getenv("GROCEY_LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "grocey.db"
	}
	return filepath.Join(dir, "grocey", "state.db")
}
