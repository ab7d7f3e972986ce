package testutil

import (
	"errors"
	"sync"
	"time"

	"aurad/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// LevelCount returns how many entries were recorded at the given level.
func (m *MockLogger) LevelCount(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MemKV implements store.KV in memory. FailWrites makes every Set return
// an error, for exercising the best-effort write path.
type MemKV struct {
	mu         sync.Mutex
	Data       map[string][]byte
	FailWrites bool
}

func NewMemKV() *MemKV {
	return &MemKV{Data: make(map[string][]byte)}
}

func (m *MemKV) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MemKV) Set(key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return errors.New("write disabled")
	}
	cp := make([]byte, len(val))
	copy(cp, val)
	m.Data[key] = cp
	return nil
}

// MockCache implements providers.CacheProviderInterface over a map.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu           sync.Mutex
	Requests     map[string]int
	CacheHits    int
	CacheMisses  int
	Draws        int
	NewDraws     int
	Feeds        map[string]int
	Rerolls      int
	Evolutions   int
	Persistences int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Requests: make(map[string]int),
		Feeds:    make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(endpoint string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests[endpoint]++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) IncDraws(newDiscovery bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Draws++
	if newDiscovery {
		m.NewDraws++
	}
}

func (m *MockMetrics) IncFeeds(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Feeds[source]++
}

func (m *MockMetrics) IncRerolls() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rerolls++
}

func (m *MockMetrics) IncEvolutions() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Evolutions++
}

func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Persistences++
}
