package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DatabaseURL string
	RedisURL    string

	MeiliSearchHost string
	MeiliMasterKey  string

	JWTSecret string
	JWTTTL    time.Duration

	// Rate limit aksi sensitif. Window+max per aksi, advisory (lihat
	// internal/ratelimit).
	RateLimitJoinMax      int
	RateLimitJoinWindow   time.Duration
	RateLimitTicketMax    int
	RateLimitTicketWindow time.Duration
	RateLimitDuesMax      int
	RateLimitDuesWindow   time.Duration
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		MeiliSearchHost: getEnv("MEILISEARCH_HOST", "http://localhost:7700"),
		MeiliMasterKey:  os.Getenv("MEILI_MASTER_KEY"),

		JWTSecret: getEnv("JWT_SECRET", "change-me"),
	}

	var err error
	cfg.JWTTTL, err = parseDuration(getEnv("JWT_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}

	cfg.RateLimitJoinMax, err = parseInt(getEnv("RATE_LIMIT_JOIN_MAX", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_JOIN_MAX: %w", err)
	}
	cfg.RateLimitJoinWindow, err = parseDuration(getEnv("RATE_LIMIT_JOIN_WINDOW", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_JOIN_WINDOW: %w", err)
	}
	cfg.RateLimitTicketMax, err = parseInt(getEnv("RATE_LIMIT_TICKET_MAX", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_TICKET_MAX: %w", err)
	}
	cfg.RateLimitTicketWindow, err = parseDuration(getEnv("RATE_LIMIT_TICKET_WINDOW", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_TICKET_WINDOW: %w", err)
	}
	cfg.RateLimitDuesMax, err = parseInt(getEnv("RATE_LIMIT_DUES_MAX", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_DUES_MAX: %w", err)
	}
	cfg.RateLimitDuesWindow, err = parseDuration(getEnv("RATE_LIMIT_DUES_WINDOW", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_DUES_WINDOW: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(s)
}
