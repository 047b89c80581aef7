package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/avdeev/daybook/core/logger"
	"log/slog"
)

// Connect opens the database connection, configures the pool, and verifies connectivity.
func Connect(cfg Config) (*sqlx.DB, error) {
	if err := Normalize(&cfg); err != nil {
		return nil, err
	}

	if cfg.Driver == DriverSQLite {
		if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("db dir: %w", err)
			}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	sqlxDB, err := sqlx.ConnectContext(ctx, cfg.Driver, cfg.DSN())
	took := time.Since(start)
	if err != nil {
		logger.DB.Error("db connect failed",
			slog.String("event", "db.connect"),
			slog.String("driver", cfg.Driver),
			slog.String("host", cfg.Host),
			slog.String("path", cfg.Path),
			slog.String("db", cfg.Name),
			slog.Duration("duration", logger.RoundMS(took)),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("db connect: %w", err)
	}

	if pingErr := sqlxDB.PingContext(ctx); pingErr != nil {
		logger.DB.Error("db ping failed",
			slog.String("event", "db.ping"),
			slog.String("driver", cfg.Driver),
			slog.String("err", pingErr.Error()),
		)
		return nil, fmt.Errorf("db ping: %w", pingErr)
	}

	maxConns := cfg.MaxConnections
	if cfg.Driver == DriverSQLite {
		// Single writer; sqlite locks the whole file on write.
		maxConns = 1
	}
	sqlxDB.SetMaxOpenConns(maxConns)
	sqlxDB.SetMaxIdleConns(maxConns)

	if cfg.Driver == DriverSQLite {
		if _, err := sqlxDB.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			_ = sqlxDB.Close()
			return nil, fmt.Errorf("db pragma: %w", err)
		}
	}

	logger.DB.Info("db connected",
		slog.String("event", "db.connect"),
		slog.String("driver", cfg.Driver),
		slog.String("host", cfg.Host),
		slog.String("path", cfg.Path),
		slog.String("db", cfg.Name),
		slog.Int("pool_open", maxConns),
		slog.Duration("duration", logger.RoundMS(took)),
	)

	return sqlxDB, nil
}

// WaitFor tries to connect to the DB until it is ready or timeout is reached.
// Useful when the bot starts together with a postgres container.
func WaitFor(cfg Config, timeout time.Duration) error {
	if err := Normalize(&cfg); err != nil {
		return err
	}
	if cfg.Driver == DriverSQLite {
		return nil
	}
	start := time.Now()
	var lastErr error
	for {
		db, err := sqlx.Open(cfg.Driver, cfg.DSN())
		if err == nil {
			if err = db.Ping(); err == nil {
				_ = db.Close()
				return nil
			}
			_ = db.Close()
		}
		lastErr = err
		if time.Since(start) > timeout {
			return fmt.Errorf("timeout reached waiting for database: %w", lastErr)
		}
		time.Sleep(2 * time.Second)
	}
}
