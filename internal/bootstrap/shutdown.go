package bootstrap

import (
	"context"

	"github.com/kizuna-dev/teambuilder/internal/database"
	"github.com/kizuna-dev/teambuilder/internal/logger"
)

// Stopper is a component that drains on shutdown
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds everything that needs graceful shutdown
type ShutdownComponents struct {
	Server Stopper
	DBPool database.Pool
}

// GracefulShutdown stops the HTTP server first so in-flight pulls can
// commit, then closes the database pool. Errors are logged and the
// sequence continues.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	logger.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			logger.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DBPool != nil {
		logger.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	logger.Info(LogMsgServerStopped)
}
