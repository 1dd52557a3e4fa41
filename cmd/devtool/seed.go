package main

import (
	"context"
	"flag"

	"github.com/kizuna-dev/teambuilder/internal/bootstrap"
	"github.com/kizuna-dev/teambuilder/internal/constellation"
)

type SeedCommand struct {
	connect connectFunc
}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Sync the constellation seed file into the database"
}

func (c *SeedCommand) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	fs.SetOutput(out)
	force := fs.Bool("force", false, "write even when the seed file is unchanged")
	path := fs.String("file", "", "seed file (default CONSTELLATION_SEED_PATH)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if *path != "" {
		cfg.SeedPath = *path
	}

	// Fail on a bad file before touching the database
	loader := constellation.NewLoader()
	seed, err := loader.Load(cfg.SeedPath)
	if err != nil {
		return err
	}
	if err := loader.Validate(seed); err != nil {
		return err
	}
	PrintInfo("Seed %s: %d constellations, %d characters", cfg.SeedPath, len(seed.Constellations), len(seed.Characters))

	pool, err := c.connect(cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	repos := bootstrap.InitializeRepositories(pool)
	svc := constellation.NewService(repos.Constellation, repos.Seed, loader, constellation.ServiceConfig{SeedPath: cfg.SeedPath})
	if err := bootstrap.SyncConstellations(ctx, svc, *force); err != nil {
		return err
	}
	PrintSuccess("Constellations synced")
	return nil
}
