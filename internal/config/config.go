package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL           string
	TokenFile            string
	Language             string
	HTTPTimeout          time.Duration
	AllowPendingProgress bool
	Debug                bool
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		APIBaseURL:           getEnv("TAREAS_API_URL", "http://localhost:3000"),
		TokenFile:            getEnv("TAREAS_TOKEN_FILE", defaultTokenFile()),
		Language:             getEnv("TAREAS_LANG", "es"),
		HTTPTimeout:          getDurationEnv("TAREAS_HTTP_TIMEOUT", 15*time.Second),
		AllowPendingProgress: getBoolEnv("ALLOW_PENDING_PROGRESS", false),
		Debug:                getBoolEnv("TAREAS_DEBUG", false),
	}
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tareas-token"
	}
	return filepath.Join(home, ".tareas", "token")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
