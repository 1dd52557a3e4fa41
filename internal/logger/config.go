package logger

import (
	"log/slog"
	"strings"
)

// Config selects the handler and the attributes stamped on every record
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// NewConfig builds a Config for the API process. Level and format are
// matched case-insensitively; unknown values fall back to info and text.
func NewConfig(level, format, version, environment string, addSource bool) Config {
	return Config{
		Level:       strings.ToLower(level),
		Format:      strings.ToLower(format),
		ServiceName: ServiceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// LogLevel converts the configured level to slog.Level
func (c Config) LogLevel() slog.Level {
	level, _ := ParseLevel(c.Level)
	return level
}

// ParseLevel maps a LOG_LEVEL value to slog. ok is false when s is not
// recognised and info is returned.
func ParseLevel(s string) (level slog.Level, ok bool) {
	switch strings.ToLower(s) {
	case levelDebug:
		return slog.LevelDebug, true
	case levelInfo:
		return slog.LevelInfo, true
	case levelWarn, levelWarning:
		return slog.LevelWarn, true
	case levelError:
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == FormatJSON
}

// BaseAttributes returns the attributes every record carries
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
