package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName  string
	Port     string
	LogLevel string

	// DatabaseURL has no default; main refuses to start without it.
	DatabaseURL string

	// RulesFile optionally pins the ruleset file instead of the search path.
	RulesFile string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "nta-engine"),
		Port:        getenv("PORT", "1323"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RulesFile:   os.Getenv("RULES_FILE"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
