package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kizuna-dev/teambuilder/internal/config"
	"github.com/kizuna-dev/teambuilder/internal/database"
)

const (
	defaultWaitAttempts = 30
	defaultWaitInterval = 2 * time.Second
)

// connectFunc opens a pool for the loaded configuration
type connectFunc func(cfg *config.Config) (*pgxpool.Pool, error)

func connectPool(cfg *config.Config) (*pgxpool.Pool, error) {
	return database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadUnvalidated()
	if err != nil {
		return nil, err
	}
	for _, warning := range cfg.Warnings() {
		PrintWarning("%s", warning)
	}
	return cfg, nil
}

type WaitForDBCommand struct {
	connect connectFunc
}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	fs.SetOutput(out)
	attempts := fs.Int("attempts", defaultWaitAttempts, "maximum connection attempts")
	interval := fs.Duration("interval", defaultWaitInterval, "delay between attempts")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *attempts < 1 {
		return fmt.Errorf("attempts must be positive, got %d", *attempts)
	}

	PrintHeader("Waiting for database...")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return waitForDB(ctx, cfg, c.connect, *attempts, *interval)
}

func waitForDB(ctx context.Context, cfg *config.Config, connect connectFunc, attempts int, interval time.Duration) error {
	var lastErr error
	for i := 0; i < attempts; i++ {
		pool, err := connect(cfg)
		if err == nil {
			pool.Close()
			PrintSuccess("Database is ready")
			return nil
		}
		lastErr = err

		fmt.Fprintf(out, "Database not ready (%d/%d): %v\n", i+1, attempts, err)
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", attempts, lastErr)
}
