package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr           string
	DatabaseURL    string
	Environment    string
	JWTSecret      string
	TokenTTL       time.Duration
	PasswordMinLen int
	PasswordMaxLen int
	SeedPassword   string
	MigrationsDir  string
	RunMigrations  bool
	RunSeed        bool
	MaxBodyBytes   int64
}

func Load() Config {
	return Config{
		Addr:           getEnv("APP_ADDR", ":8080"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		Environment:    getEnv("APP_ENV", "development"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		TokenTTL:       getEnvDuration("TOKEN_TTL", 24*time.Hour),
		PasswordMinLen: getEnvInt("PASSWORD_MIN_LEN", 8),
		PasswordMaxLen: getEnvInt("PASSWORD_MAX_LEN", 15),
		SeedPassword:   getEnv("SEED_PASSWORD", ""),
		MigrationsDir:  getEnv("MIGRATIONS_DIR", "migrations"),
		RunMigrations:  getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:        getEnvBool("RUN_SEED", true),
		MaxBodyBytes:   int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
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

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	// Never start without a signing key: an empty secret would mean issuing
	// tokens anyone can forge.
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	if c.PasswordMinLen < 1 || c.PasswordMaxLen < c.PasswordMinLen {
		return fmt.Errorf("password length bounds are invalid: min=%d max=%d", c.PasswordMinLen, c.PasswordMaxLen)
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RunSeed && c.Environment == "production" && strings.TrimSpace(c.SeedPassword) == "" {
		return fmt.Errorf("SEED_PASSWORD must be set or RUN_SEED disabled in production")
	}
	return nil
}
