package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	LogLevel           slog.Level
	JWTSecret          string
	JWTExpiryDuration  time.Duration
	JWTIssuer          string
	CORSAllowedOrigins []string
	RateLimit          string // ulule/limiter format, e.g. "100-M"
	LoginRateLimit     string
	MigrationsPath     string
	SeedChartOnStart   bool
	CompanyCurrency    string // ISO 4217, amounts are stored in this currency only
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "ohada-ledger")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("SEED_CHART_ON_START", true)
	v.SetDefault("COMPANY_CURRENCY", "XOF")

	// Environment variables override defaults and .env values.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:      v.GetString("PGSQL_URL"),
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:    v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTIssuer:        v.GetString("JWT_ISSUER"),
		RateLimit:        v.GetString("RATE_LIMIT"),
		LoginRateLimit:   v.GetString("LOGIN_RATE_LIMIT"),
		MigrationsPath:   v.GetString("MIGRATIONS_PATH"),
		SeedChartOnStart: v.GetBool("SEED_CHART_ON_START"),
		CompanyCurrency:  strings.ToUpper(v.GetString("COMPANY_CURRENCY")),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_DURATION %q", jwtExpiryStr)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, errors.New("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		slog.Warn("JWT_SECRET environment variable not set, using default insecure key")
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if len(cfg.CompanyCurrency) != 3 {
		return nil, fmt.Errorf("invalid COMPANY_CURRENCY %q", cfg.CompanyCurrency)
	}

	return cfg, nil
}
