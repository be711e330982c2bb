package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// MaxForecastHorizonDays bounds any forecast horizon, configured or requested
const MaxForecastHorizonDays = 365

// Config holds all application configuration
type Config struct {
	// Server
	Port        string
	Environment string
	LogLevel    string

	// Database
	DatabaseURL string

	// JWT
	JWTSecret string

	// Storage (archived report exports)
	StoragePath string

	// Background Workers
	WorkerCount int

	// CORS
	AllowedOrigins []string

	// Sentry
	SentryDSN string

	// Analytics
	ForecastHistoryDays int
	ForecastHorizonDays int
	ReportTimeout       time.Duration

	// Overbooking monitor
	MonitorInterval      time.Duration
	MonitorLookaheadDays int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		Environment:          getEnv("ENVIRONMENT", "development"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		JWTSecret:            getEnv("JWT_SECRET", ""),
		StoragePath:          getEnv("STORAGE_PATH", "./storage"),
		WorkerCount:          getEnvAsInt("WORKER_COUNT", 5),
		AllowedOrigins:       getEnvAsSlice("ALLOWED_ORIGINS", []string{"*"}),
		SentryDSN:            getEnv("SENTRY_DSN", ""),
		ForecastHistoryDays:  getEnvAsInt("FORECAST_HISTORY_DAYS", 90),
		ForecastHorizonDays:  getEnvAsInt("FORECAST_HORIZON_DAYS", 30),
		ReportTimeout:        time.Duration(getEnvAsInt("REPORT_TIMEOUT_SECONDS", 10)) * time.Second,
		MonitorInterval:      time.Duration(getEnvAsInt("MONITOR_INTERVAL_MINUTES", 60)) * time.Minute,
		MonitorLookaheadDays: getEnvAsInt("MONITOR_LOOKAHEAD_DAYS", 30),
	}

	// Validate required configuration
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.JWTSecret == "" && cfg.IsProduction() {
		return nil, fmt.Errorf("JWT_SECRET is required in production")
	}

	if cfg.ForecastHistoryDays <= 0 || cfg.ForecastHorizonDays <= 0 {
		return nil, fmt.Errorf("FORECAST_HISTORY_DAYS and FORECAST_HORIZON_DAYS must be positive")
	}

	if cfg.ForecastHorizonDays > MaxForecastHorizonDays {
		return nil, fmt.Errorf("FORECAST_HORIZON_DAYS must not exceed %d", MaxForecastHorizonDays)
	}

	if cfg.MonitorLookaheadDays <= 0 {
		return nil, fmt.Errorf("MONITOR_LOOKAHEAD_DAYS must be positive")
	}

	// Set default JWT secret for development
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-in-production"
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as integer
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsSlice reads an environment variable as comma-separated slice
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
