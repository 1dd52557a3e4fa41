package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Gacha Metrics
var (
	PullsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePullsTotal,
			Help: HelpTextPullsTotal,
		},
		[]string{LabelConstellation},
	)

	DrawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawsTotal,
			Help: HelpTextDrawsTotal,
		},
		[]string{LabelConstellation, LabelRarity},
	)

	KizunaStarsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameKizunaStarsSpent,
			Help: HelpTextKizunaStarsSpent,
		},
	)

	InsufficientCurrency = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameInsufficientCurrency,
			Help: HelpTextInsufficientCurrency,
		},
	)

	EmptyPoolDraws = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEmptyPoolDraws,
			Help: HelpTextEmptyPoolDraws,
		},
		[]string{LabelConstellation, LabelRarity},
	)

	PullDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePullDuration,
			Help:    HelpTextPullDuration,
			Buckets: HTTPLatencyBuckets,
		},
	)
)

// Account Metrics
var (
	KizunaStarsGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameKizunaStarsGranted,
			Help: HelpTextKizunaStarsGranted,
		},
	)

	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUsersRegistered,
			Help: HelpTextUsersRegistered,
		},
	)
)

// Cache Metrics
var (
	ConstellationCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameConstellationCacheHits,
			Help: HelpTextConstellationCacheHits,
		},
	)

	ConstellationCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameConstellationCacheMisses,
			Help: HelpTextConstellationCacheMisses,
		},
	)
)

// Security Metrics
var SecurityEvents = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: MetricNameSecurityEvents,
		Help: HelpTextSecurityEvents,
	},
	[]string{LabelEvent},
)
