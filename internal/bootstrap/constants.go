package bootstrap

// Log messages for startup
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting teambuilder"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgUnknownLogLevel     = "Unknown LOG_LEVEL, using info"
	LogMsgMigrationsApplied   = "Database migrations applied"
)

// Config sync messages
const (
	LogMsgSyncingConstellations   = "Syncing constellations from seed file..."
	LogMsgConstellationsSynced    = "Constellations synced successfully"
	LogMsgConstellationsUnchanged = "Constellation seed unchanged, sync skipped"

	ErrMsgFailedSyncConstellations = "failed to sync constellations"
	ErrMsgFailedMigrate            = "failed to migrate database"
	ErrMsgFailedCreateIssuer       = "failed to create token issuer"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"
)
