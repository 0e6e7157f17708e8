package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings loaded from the environment.
type Config struct {
	Port             string
	DBPath           string
	SchedulerTick    time.Duration
	ReportCacheTTL   time.Duration
	SchedulerEnabled bool
}

// Load reads .env (if present) and builds the configuration from
// environment variables with sensible defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		// Missing .env is fine in production; env vars still apply
		log.Println("No .env file found, using environment defaults")
	}

	return Config{
		Port:             getEnv("PORT", "8008"),
		DBPath:           getEnv("DB_PATH", "taskflow.db"),
		SchedulerTick:    time.Duration(getEnvInt("SCHEDULER_CHECK_SECONDS", 60)) * time.Second,
		ReportCacheTTL:   time.Duration(getEnvInt("REPORT_CACHE_SECONDS", 60)) * time.Second,
		SchedulerEnabled: getEnv("SCHEDULER_ENABLED", "true") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
