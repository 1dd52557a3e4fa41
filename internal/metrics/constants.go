package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Gacha metric names
const (
	MetricNamePullsTotal           = "gacha_pulls_total"
	MetricNameDrawsTotal           = "gacha_draws_total"
	MetricNameKizunaStarsSpent     = "gacha_kizuna_stars_spent_total"
	MetricNameInsufficientCurrency = "gacha_insufficient_currency_total"
	MetricNameEmptyPoolDraws       = "gacha_empty_pool_draws_total"
	MetricNamePullDuration         = "gacha_pull_duration_seconds"
	MetricNameKizunaStarsGranted   = "kizuna_stars_granted_total"
	MetricNameUsersRegistered      = "users_registered_total"
)

// Security metric names
const MetricNameSecurityEvents = "security_events_total"

// Cache metric names
const (
	MetricNameConstellationCacheHits   = "constellation_cache_hits_total"
	MetricNameConstellationCacheMisses = "constellation_cache_misses_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Gacha metric help text
const (
	HelpTextPullsTotal           = "Total number of completed pull requests"
	HelpTextDrawsTotal           = "Total number of individual draws by rarity"
	HelpTextKizunaStarsSpent     = "Total Kizuna Stars debited by pulls"
	HelpTextInsufficientCurrency = "Total number of pulls rejected for insufficient Kizuna Stars"
	HelpTextEmptyPoolDraws       = "Total number of draws that landed on an empty character pool"
	HelpTextPullDuration         = "Time to complete a pull transaction in seconds"
	HelpTextKizunaStarsGranted   = "Total Kizuna Stars granted by admins"
	HelpTextUsersRegistered      = "Total number of registered users"
)

// Security metric help text
const HelpTextSecurityEvents = "Requests rejected by the API key guard or the rate limiter"

// Cache metric help text
const (
	HelpTextConstellationCacheHits   = "Constellation lookups served from cache"
	HelpTextConstellationCacheMisses = "Constellation lookups that hit the database"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod        = "method"
	LabelPath          = "path"
	LabelStatus        = "status"
	LabelConstellation = "constellation"
	LabelRarity        = "rarity"
	LabelEvent         = "event"
)

// Security event label values
const (
	SecurityEventAuthFailed  = "auth_failed"
	SecurityEventAuthLocked  = "auth_locked"
	SecurityEventRateLimited = "rate_limited"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// UnmatchedRoutePath labels requests chi could not route
const UnmatchedRoutePath = "unmatched"
