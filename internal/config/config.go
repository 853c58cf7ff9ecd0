// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string
	Environment  string
	DatabasePath string

	// Comma-separated list of allowed CORS origins. Empty means
	// permissive (development).
	AllowedOrigins []string

	// Streaming pacing and bound.
	StreamMinDelay time.Duration
	StreamMaxDelay time.Duration
	StreamTimeout  time.Duration
}

// Load reads configuration from environment variables or .env file.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		Environment:    env,
		DatabasePath:   getEnv("DATABASE_PATH", "dronestudio.db"),
		AllowedOrigins: parseAllowedOrigins(getEnv("ALLOWED_ORIGINS", "")),
		StreamMinDelay: time.Duration(getEnvAsInt("STREAM_MIN_DELAY_MS", 50)) * time.Millisecond,
		StreamMaxDelay: time.Duration(getEnvAsInt("STREAM_MAX_DELAY_MS", 150)) * time.Millisecond,
		StreamTimeout:  time.Duration(getEnvAsInt("STREAM_TIMEOUT_S", 60)) * time.Second,
	}

	if strings.ToLower(env) == "production" && len(cfg.AllowedOrigins) == 0 {
		log.Println("Warning: no ALLOWED_ORIGINS configured in production; CORS is permissive")
	}

	return cfg
}

// parseAllowedOrigins splits a comma-separated origin list, dropping
// empty entries.
func parseAllowedOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an env var as an integer, with a fallback.
func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as integer. Using default value.", key)
		return defaultValue
	}
	return intValue
}
