package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Backend API
	BackendURL string

	// Client timeout classes. Ordinary CRUD calls use RequestTimeout;
	// AI consultation calls use ConsultationTimeout.
	RequestTimeout      time.Duration
	ConsultationTimeout time.Duration

	// Local settings store (remembered test user id)
	SettingsDB string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:       getEnv("PORT", "8080"),
		Env:        getEnv("ENV", "development"),
		BackendURL: getEnv("BACKEND_URL", "http://localhost:8000"),
		SettingsDB: getEnv("SETTINGS_DB", "finadvisor.db"),
	}

	config.RequestTimeout = getDuration("REQUEST_TIMEOUT", 10*time.Second)
	config.ConsultationTimeout = getDuration("CONSULTATION_TIMEOUT", 90*time.Second)

	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration parses a duration environment variable, falling back to the
// default on empty or invalid values.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %v\n", key, value, defaultValue)
		return defaultValue
	}
	return d
}
