package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// Session Configuration
	SessionSecret   string
	SessionTTLHours int
	// Redis Configuration (optional; in-memory fallbacks apply when absent)
	RedisURL      string
	RedisPassword string
	// OpenAI Configuration
	OpenAIAPIKey string
	OpenAIModel  string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitAuthThreshold   int
	RateLimitGlobalThreshold int
	// Audio Retention Configuration
	AudioRetentionDays        int
	AudioCleanupIntervalHours int
}

func LoadConfig() (*Config, error) {
	// .env only matters locally; ignored in production when absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Session Configuration
		SessionSecret:   getEnv("SESSION_SECRET", ""),
		SessionTTLHours: getEnvInt("SESSION_TTL_HOURS", 168), // 7 days
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// OpenAI Configuration
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitAuthThreshold:   getEnvInt("RATE_LIMIT_AUTH_THRESHOLD", 10),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		// Audio Retention Configuration
		AudioRetentionDays:        getEnvInt("AUDIO_RETENTION_DAYS", 2),
		AudioCleanupIntervalHours: getEnvInt("AUDIO_CLEANUP_INTERVAL_HOURS", 12),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.SessionSecret == "" {
		log.Println("WARNING: SESSION_SECRET is missing. Sessions will not survive restarts.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Sessions and rate limiting will use in-memory fallbacks.")
	}
	if cfg.OpenAIAPIKey == "" {
		log.Println("WARNING: OPENAI_API_KEY not configured. Interview feedback generation will be unavailable.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
