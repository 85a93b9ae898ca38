package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Sync     SyncConfig
}

// DatabaseConfig holds local persistence configuration.
type DatabaseConfig struct {
	Path string
}

// SyncConfig holds linked-file sync configuration.
type SyncConfig struct {
	// LinkedFile, when set, is linked at startup the same way a user-picked
	// file would be. Empty means no file is linked until LinkFile is called.
	LinkedFile string
	// WatchLinkedFile re-imports the linked file when something else writes it.
	WatchLinkedFile bool
}

// Load loads configuration from environment variables, reading a .env file
// first when one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			Path: getEnv("NUTRITRACK_DB_PATH", "nutritrack.db"),
		},
		Sync: SyncConfig{
			LinkedFile:      getEnv("NUTRITRACK_LINKED_FILE", ""),
			WatchLinkedFile: getEnvBool("NUTRITRACK_WATCH_LINKED_FILE", true),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
