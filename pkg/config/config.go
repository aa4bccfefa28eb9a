package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	envStore    = "LEDJER_STORE"
	envSecret   = "LEDJER_SECRET"
	envItemsCSV = "LEDJER_ITEMS_CSV"
	envLogLevel = "LEDJER_LOG_LEVEL"

	DefaultStore    = "jsonfile:ledjer.json"
	DefaultItemsCSV = "Assets/CSV/items.csv"

	// FallbackItemsCSV is tried when the configured items csv is missing.
	FallbackItemsCSV = "data/items.csv"
)

// Config holds the settings read from the environment.
type Config struct {
	// Store is where transactions and items are persisted, see store.Open.
	Store string

	// Secret, if set, encrypts everything written to Store.
	Secret string

	ItemsCSV string
	LogLevel string

	// EnvFile is the .env file that was read, if any.
	EnvFile string
}

// Load reads a .env file from the current or the parent directory, if there
// is one, then the environment. Variables already set in the environment win
// over the file.
func Load() *Config {
	cfg := &Config{}

	for _, path := range []string{".env", "../.env"} {
		if err := godotenv.Load(path); err == nil {
			cfg.EnvFile = path
			break
		}
	}

	cfg.Store = getEnv(envStore, DefaultStore)
	cfg.Secret = os.Getenv(envSecret)
	cfg.ItemsCSV = getEnv(envItemsCSV, DefaultItemsCSV)
	cfg.LogLevel = strings.ToLower(getEnv(envLogLevel, "info"))
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}
