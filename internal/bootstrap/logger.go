package bootstrap

import (
	"io"
	"os"

	"github.com/kizuna-dev/teambuilder/internal/config"
	"github.com/kizuna-dev/teambuilder/internal/logger"
)

// SetupLogger installs the default logger from configuration and logs the
// startup banner plus any configuration warnings
func SetupLogger(cfg *config.Config) {
	SetupLoggerWithWriter(cfg, os.Stdout)
}

// SetupLoggerWithWriter is SetupLogger writing to w
func SetupLoggerWithWriter(cfg *config.Config, w io.Writer) {
	logCfg := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.Version,
		cfg.Environment,
		cfg.Environment == config.EnvironmentDev,
	)
	logger.InitLoggerWithWriter(logCfg, w)

	logger.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel().String(), "format", cfg.LogFormat)
	if _, ok := logger.ParseLevel(cfg.LogLevel); !ok {
		logger.Warn(LogMsgUnknownLogLevel, "level", cfg.LogLevel)
	}
	logger.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"port", cfg.Port)
	logger.Info(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"seed_path", cfg.SeedPath,
		"starting_kizuna_stars", cfg.StartingKizunaStars)

	for _, warning := range cfg.Warnings() {
		logger.Warn(LogMsgConfigWarning, "warning", warning)
	}
}
