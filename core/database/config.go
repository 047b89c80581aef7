package database

import (
	"fmt"
	"strings"
)

const (
	// DriverPostgres selects the lib/pq backend.
	DriverPostgres = "postgres"
	// DriverSQLite selects the cgo-free modernc sqlite backend.
	DriverSQLite = "sqlite"
)

// Config holds database connection settings.
// Postgres fields are ignored for sqlite and vice versa.
type Config struct {
	Driver         string `yaml:"driver" envconfig:"DB_DRIVER"`
	Host           string `yaml:"host" envconfig:"DB_HOST"`
	Port           string `yaml:"port" envconfig:"DB_PORT"`
	User           string `yaml:"user" envconfig:"DB_USER"`
	Password       string `yaml:"password" envconfig:"DB_PASSWORD"`
	Name           string `yaml:"name" envconfig:"DB_NAME"`
	SSLMode        string `yaml:"sslmode" envconfig:"DB_SSLMODE"`
	Path           string `yaml:"path" envconfig:"DB_PATH"`
	MaxConnections int    `yaml:"max_connections" envconfig:"DB_MAX_CONNECTIONS"`
}

// Normalize validates the driver choice and fills defaults.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil database config")
	}
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	if driver == "" {
		driver = DriverSQLite
	}
	switch driver {
	case DriverPostgres:
		if cfg.Host == "" || cfg.Name == "" {
			return fmt.Errorf("database.host and database.name are required for the postgres driver")
		}
		if cfg.Port == "" {
			cfg.Port = "5432"
		}
		if cfg.SSLMode == "" {
			cfg.SSLMode = "disable"
		}
	case DriverSQLite:
		if strings.TrimSpace(cfg.Path) == "" {
			cfg.Path = "./data/daybook.db"
		}
	default:
		return fmt.Errorf("invalid database.driver %q; allowed: postgres, sqlite", cfg.Driver)
	}
	cfg.Driver = driver
	if cfg.MaxConnections <= 0 {
		cfg.MaxConnections = 4
	}
	return nil
}

// DSN builds the connection string for the configured driver.
func (c Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Path
	}
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// MigrateURL builds the database URL understood by golang-migrate.
func (c Config) MigrateURL() string {
	if c.Driver == DriverSQLite {
		return "sqlite://" + c.Path
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}
