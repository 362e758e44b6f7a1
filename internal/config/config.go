package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Environment string
	Port        string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	RedisAddr   string
	KafkaBroker string

	JWTSecret string
	JWTTTL    time.Duration

	CORSOrigins []string

	RunMigrations       bool
	ConnectRetries      int
	StatsCacheTTL       time.Duration
	IdempotencyTTL      time.Duration
	OutboxPollInterval  time.Duration
	RateLimitPerMinute  int
	SeedManagerEmail    string
	SeedManagerPassword string
	SeedManagerName     string
}

func Load() Config {
	return Config{
		Environment:         getEnv("APP_ENV", "development"),
		Port:                getEnv("PORT", "3000"),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", ""),
		DBName:              getEnv("DB_NAME", "workforce"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBSSLMode:           getEnv("DB_SSLMODE", "disable"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:         getEnv("KAFKA_BROKER", ""),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		JWTTTL:              getEnvDuration("JWT_TTL", 24*time.Hour),
		CORSOrigins:         getEnvList("CORS_ORIGINS", []string{"http://localhost:5173"}),
		RunMigrations:       getEnvBool("RUN_MIGRATIONS", true),
		ConnectRetries:      getEnvInt("CONNECT_RETRIES", 5),
		StatsCacheTTL:       getEnvDuration("STATS_CACHE_TTL", 30*time.Second),
		IdempotencyTTL:      getEnvDuration("IDEMPOTENCY_TTL", 24*time.Hour),
		OutboxPollInterval:  getEnvDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),
		RateLimitPerMinute:  getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		SeedManagerEmail:    getEnv("SEED_MANAGER_EMAIL", ""),
		SeedManagerPassword: getEnv("SEED_MANAGER_PASSWORD", ""),
		SeedManagerName:     getEnv("SEED_MANAGER_NAME", "Default Manager"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// DSN is the gorm postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Environment == "production" && len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters in production")
	}
	if c.ConnectRetries <= 0 {
		return fmt.Errorf("CONNECT_RETRIES must be positive")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.SeedManagerEmail != "" && c.SeedManagerPassword == "" {
		return fmt.Errorf("SEED_MANAGER_PASSWORD must be set when SEED_MANAGER_EMAIL is set")
	}
	return nil
}
