package providers

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"aurad/internal/structures"
)

// EngineStatsInterface is the read-only view the gauges sample. The aura
// service implements it.
type EngineStatsInterface interface {
	CollectionSize() int
	MascotLevel() int
}

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncDraws(newDiscovery bool)
	IncFeeds(source string)
	IncRerolls()
	IncEvolutions()
	ObservePersistenceDuration(duration time.Duration)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	drawsTotal          *prometheus.CounterVec
	feedsTotal          *prometheus.CounterVec
	rerollsTotal        prometheus.Counter
	evolutionsTotal     prometheus.Counter
	persistenceDuration prometheus.Histogram
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncDraws(newDiscovery bool) {
	m.drawsTotal.WithLabelValues(strconv.FormatBool(newDiscovery)).Inc()
}

func (m *MetricsProvider) IncFeeds(source string) {
	m.feedsTotal.WithLabelValues(source).Inc()
}

func (m *MetricsProvider) IncRerolls() {
	m.rerollsTotal.Inc()
}

func (m *MetricsProvider) IncEvolutions() {
	m.evolutionsTotal.Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, stats EngineStatsInterface) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "aurad_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "aurad_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aurad_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aurad_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		drawsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "aurad_draws_total",
			Help: "Total number of daily persona draws",
		}, []string{"new_discovery"}),

		feedsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "aurad_feeds_total",
			Help: "Total number of mascot feeds by pathway",
		}, []string{"source"}),

		rerollsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aurad_rerolls_total",
			Help: "Total number of persona rerolls",
		}),

		evolutionsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aurad_evolutions_total",
			Help: "Total number of mascot evolution events",
		}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "aurad_persistence_duration_seconds",
			Help:    "Duration of composite persistence operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "aurad_collection_size",
		Help: "Number of discovered personas",
	}, func() float64 {
		return float64(stats.CollectionSize())
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "aurad_mascot_level",
		Help: "Evolution level of the active mascot",
	}, func() float64 {
		return float64(stats.MascotLevel())
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                  {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)  {}
func (n *noopMetrics) IncCacheHits()                                     {}
func (n *noopMetrics) IncCacheMisses()                                   {}
func (n *noopMetrics) IncDraws(_ bool)                                   {}
func (n *noopMetrics) IncFeeds(_ string)                                 {}
func (n *noopMetrics) IncRerolls()                                       {}
func (n *noopMetrics) IncEvolutions()                                    {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)        {}
