package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/kizuna-dev/teambuilder/internal/bootstrap"
	"github.com/kizuna-dev/teambuilder/internal/config"
	"github.com/kizuna-dev/teambuilder/internal/database"
	"github.com/kizuna-dev/teambuilder/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	bootstrap.SetupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
	if err != nil {
		return err
	}

	if cfg.RunMigrations {
		version, err := database.Migrate(ctx, dbPool)
		if err != nil {
			dbPool.Close()
			return fmt.Errorf("%s: %w", bootstrap.ErrMsgFailedMigrate, err)
		}
		slog.Info(bootstrap.LogMsgMigrationsApplied, "version", version)
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	services, err := bootstrap.InitializeServices(cfg, repos, nil)
	if err != nil {
		dbPool.Close()
		return err
	}

	if err := bootstrap.SyncConstellations(ctx, services.Constellation, false); err != nil {
		dbPool.Close()
		return err
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	}, server.Dependencies{
		DBPool:         dbPool,
		Users:          services.User,
		Constellations: services.Constellation,
		Summons:        services.Summon,
		Tokens:         services.Tokens,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server: srv,
			DBPool: dbPool,
		})
		return nil
	})

	return g.Wait()
}
