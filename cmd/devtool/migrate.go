package main

import (
	"context"
	"fmt"

	"github.com/kizuna-dev/teambuilder/internal/database"
)

type MigrateCommand struct {
	connect connectFunc
}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply the embedded database migrations (up)"
}

func (c *MigrateCommand) Run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up")
	}
	if args[0] != "up" {
		return fmt.Errorf("unknown migrate subcommand %q", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	PrintInfo("Connecting to %s:%s/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)
	pool, err := c.connect(cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	version, err := database.Migrate(ctx, pool)
	if err != nil {
		return err
	}
	PrintSuccess("Schema at version %d", version)
	return nil
}
