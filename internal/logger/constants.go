package logger

// Accepted LOG_LEVEL values
const (
	levelDebug   = "debug"
	levelInfo    = "info"
	levelWarn    = "warn"
	levelWarning = "warning"
	levelError   = "error"
)

// Accepted LOG_FORMAT values
const (
	FormatJSON = "json"
	FormatText = "text"
)

// ServiceName tags every record emitted by the API process
const ServiceName = "teambuilder-api"

// Attribute keys attached by the logger itself
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyUserID      = "user_id"
)
