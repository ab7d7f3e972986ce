package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"aurad/internal/structures"
)

type stubStats struct{}

func (stubStats) CollectionSize() int { return 3 }
func (stubStats) MascotLevel() int    { return 1 }

func TestNewMetricsProvider_DisabledReturnsNoop(t *testing.T) {
	conf := &structures.Config{Metrics: structures.MetricsConfig{Enabled: false}}
	m := NewMetricsProvider(conf, stubStats{})
	assert.IsType(t, &noopMetrics{}, m)

	// No-op methods must be safe to call.
	m.IncRequestsTotal("/draw", 200)
	m.ObserveRequestDuration("/draw", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncDraws(true)
	m.IncFeeds("manual")
	m.IncRerolls()
	m.IncEvolutions()
	m.ObservePersistenceDuration(time.Millisecond)
}

// Enabled providers register collectors on the global prometheus registry,
// so only a single test may construct one.
func TestNewMetricsProvider_Enabled(t *testing.T) {
	conf := &structures.Config{Metrics: structures.MetricsConfig{Enabled: true}}
	m := NewMetricsProvider(conf, stubStats{})
	assert.IsType(t, &MetricsProvider{}, m)

	m.IncRequestsTotal("/draw", 200)
	m.IncRequestsTotal("/draw", 403)
	m.ObserveRequestDuration("/draw", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncDraws(true)
	m.IncDraws(false)
	m.IncFeeds("draw")
	m.IncFeeds("manual")
	m.IncRerolls()
	m.IncEvolutions()
	m.ObservePersistenceDuration(time.Millisecond)
}

func TestHttpStatusBucket(t *testing.T) {
	assert.Equal(t, "1xx", httpStatusBucket(100))
	assert.Equal(t, "2xx", httpStatusBucket(200))
	assert.Equal(t, "3xx", httpStatusBucket(302))
	assert.Equal(t, "4xx", httpStatusBucket(404))
	assert.Equal(t, "5xx", httpStatusBucket(500))
}
