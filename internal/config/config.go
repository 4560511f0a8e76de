// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store names accepted by STORE.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Port  string `env:"PORT" envDefault:"8080"`
	Store string `env:"STORE" envDefault:"memory"`

	SQLitePath string `env:"SQLITE_PATH" envDefault:"activities.db"`

	DB Postgres

	// BoardAPIURL is where the board controller sends its API calls.
	// Empty means this process, on localhost:PORT.
	BoardAPIURL  string        `env:"BOARD_API_URL"`
	BoardCSRFKey string        `env:"BOARD_CSRF_KEY"`
	MessageTTL   time.Duration `env:"MESSAGE_TTL" envDefault:"5s"`
}

// Postgres holds PostgreSQL connection settings.
type Postgres struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"DB_NAME" envDefault:"activities"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// DSN builds a libpq-compatible connection string.
func (p Postgres) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}

// Load reads a .env file when present, then parses the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return Parse()
}

// Parse reads configuration from environment variables only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))
	switch cfg.Store {
	case StoreMemory, StoreSQLite, StorePostgres:
	default:
		return cfg, fmt.Errorf("unknown STORE %q", cfg.Store)
	}
	if cfg.MessageTTL <= 0 {
		return cfg, fmt.Errorf("MESSAGE_TTL must be positive, got %s", cfg.MessageTTL)
	}

	cfg.BoardAPIURL = strings.TrimRight(strings.TrimSpace(cfg.BoardAPIURL), "/")
	if cfg.BoardAPIURL == "" {
		cfg.BoardAPIURL = "http://localhost:" + cfg.Port
	}
	return cfg, nil
}
