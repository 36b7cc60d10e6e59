package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all configuration for the POS backend.
type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	DB       DatabaseConfig

	// TaxRate is applied to bills, 0.10 meaning 10%.
	TaxRate decimal.Decimal
	// TableResetCron schedules the end-of-day table reset. Empty disables it.
	TableResetCron string
	CORSOrigins    []string
	SeedData       bool
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

// DSN returns the PostgreSQL connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Load reads the given env files (".env" when none are given) into the
// process environment and builds a Config from it. Missing files are
// skipped and variables already set in the environment win.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	dbPort, err := strconv.Atoi(get("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	taxRate, err := decimal.NewFromString(get("TAX_RATE", "0.10"))
	if err != nil {
		return nil, fmt.Errorf("invalid TAX_RATE: %w", err)
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("invalid TAX_RATE %s: must be between 0 and 1", taxRate)
	}
	seed, err := strconv.ParseBool(get("SEED_DATA", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_DATA: %w", err)
	}

	cfg := &Config{
		Port:     get("APP_PORT", "8080"),
		GinMode:  get("GIN_MODE", "release"),
		LogLevel: get("LOG_LEVEL", "info"),
		DB: DatabaseConfig{
			Driver:     get("DB_DRIVER", "postgres"),
			Host:       get("DB_HOST", "localhost"),
			Port:       dbPort,
			User:       get("DB_USER", "postgres"),
			Password:   get("DB_PASSWORD", "postgres"),
			Name:       get("DB_NAME", "restaurant"),
			SSLMode:    get("DB_SSLMODE", "disable"),
			SQLitePath: get("SQLITE_PATH", "restaurant.db"),
		},
		TaxRate:        taxRate,
		TableResetCron: os.Getenv("TABLE_RESET_CRON"),
		CORSOrigins:    splitList(os.Getenv("CORS_ORIGINS")),
		SeedData:       seed,
	}
	return cfg, nil
}

func get(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
