package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            string
	BaseURL         string
	SessionTTL      time.Duration
	CleanupInterval time.Duration
	MaxSessions     int
	RateLimitRPS    float64
	RateLimitBurst  int
	ChallengesPath  string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:8080"),
		SessionTTL:      getEnvMinutes("SESSION_TTL_MINUTES", 30*time.Minute),
		CleanupInterval: getEnvMinutes("CLEANUP_INTERVAL_MINUTES", 5*time.Minute),
		MaxSessions:     getEnvInt("MAX_SESSIONS", 1000),
		RateLimitRPS:    getEnvFloat64("RATE_LIMIT_RPS", 10),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 20),
		ChallengesPath:  getEnv("CHALLENGES_PATH", ""),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat64(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvMinutes(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if minutes, err := strconv.ParseFloat(val, 64); err == nil {
			return time.Duration(minutes * float64(time.Minute))
		}
	}
	return fallback
}
