package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHTTPMetricsExist(t *testing.T) {
	// Verify HTTP metrics are properly initialized
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInFlight)

	// Increment and verify
	initialRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	HTTPRequestsTotal.WithLabelValues("GET", "/health", "200").Inc()
	newRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	assert.Equal(t, initialRequests+1, newRequests)
}

func TestContentCounters(t *testing.T) {
	initialViews := testutil.ToFloat64(ArticleViewsTotal)
	initialCreated := testutil.ToFloat64(CommentsCreatedTotal)
	initialApproved := testutil.ToFloat64(CommentsApprovedTotal)

	ArticleViewsTotal.Inc()
	CommentsCreatedTotal.Inc()
	CommentsApprovedTotal.Add(3)

	assert.Equal(t, initialViews+1, testutil.ToFloat64(ArticleViewsTotal), "Article views should increment")
	assert.Equal(t, initialCreated+1, testutil.ToFloat64(CommentsCreatedTotal), "Created comments should increment")
	assert.Equal(t, initialApproved+3, testutil.ToFloat64(CommentsApprovedTotal), "Approved comments should increase by batch size")
}

func TestDBConnectionPoolSizeMetric(t *testing.T) {
	// Verify DB pool metric exists and can be set
	DBConnectionPoolSize.WithLabelValues("total").Set(10)
	DBConnectionPoolSize.WithLabelValues("idle").Set(5)
	DBConnectionPoolSize.WithLabelValues("in_use").Set(5)

	assert.Equal(t, float64(10), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")))
	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")))
	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")))
}

func TestHTTPRequestDurationHistogramBuckets(t *testing.T) {
	// Observe various request durations
	durations := []float64{0.005, 0.01, 0.1, 0.5, 1.0, 5.0, 30.0}

	for _, d := range durations {
		HTTPRequestDuration.WithLabelValues("GET", "/test").Observe(d)
	}

	// Verify histogram has observations
	count := testutil.CollectAndCount(HTTPRequestDuration)
	assert.GreaterOrEqual(t, count, 1, "HTTPRequestDuration should have observations")
}

func TestHTTPRequestsInFlightGauge(t *testing.T) {
	initial := testutil.ToFloat64(HTTPRequestsInFlight)

	HTTPRequestsInFlight.Inc()
	HTTPRequestsInFlight.Inc()
	after2 := testutil.ToFloat64(HTTPRequestsInFlight)
	assert.Equal(t, initial+2, after2, "In-flight should be initial+2")

	HTTPRequestsInFlight.Dec()
	HTTPRequestsInFlight.Dec()
	afterReset := testutil.ToFloat64(HTTPRequestsInFlight)
	assert.Equal(t, initial, afterReset, "In-flight should return to initial")
}

func TestPoolStatsCollectorStartStop(t *testing.T) {
	// Create a mock pool stats provider
	mockProvider := &mockPoolStatsProvider{
		totalConns:    10,
		idleConns:     5,
		acquiredConns: 5,
	}

	collector := NewPoolStatsCollectorWithProvider(mockProvider)

	// Start the collector with a short interval
	collector.Start(10 * time.Millisecond)

	// Let it run for a bit to collect stats
	time.Sleep(30 * time.Millisecond)

	// Verify stats were collected
	total := testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total"))
	idle := testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle"))
	inUse := testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use"))

	assert.Equal(t, float64(10), total, "Total connections should be 10")
	assert.Equal(t, float64(5), idle, "Idle connections should be 5")
	assert.Equal(t, float64(5), inUse, "In-use connections should be 5")

	// Stop the collector
	collector.Stop()

	// Verify it stopped (no panic, completes in reasonable time)
}

// mockPoolStats implements PoolStats for testing
type mockPoolStats struct {
	total    int32
	idle     int32
	acquired int32
}

func (m *mockPoolStats) TotalConns() int32    { return m.total }
func (m *mockPoolStats) IdleConns() int32     { return m.idle }
func (m *mockPoolStats) AcquiredConns() int32 { return m.acquired }

// mockPoolStatsProvider implements PoolStatsProvider for testing
type mockPoolStatsProvider struct {
	totalConns    int32
	idleConns     int32
	acquiredConns int32
}

func (m *mockPoolStatsProvider) Stat() PoolStats {
	return &mockPoolStats{
		total:    m.totalConns,
		idle:     m.idleConns,
		acquired: m.acquiredConns,
	}
}

func TestPoolStatsCollectorMultipleCollections(t *testing.T) {
	// Create a mock that changes values
	mockProvider := &dynamicMockPoolStatsProvider{
		calls: 0,
	}

	collector := NewPoolStatsCollectorWithProvider(mockProvider)
	collector.Start(5 * time.Millisecond)

	// Let it collect a few times
	time.Sleep(25 * time.Millisecond)

	collector.Stop()

	// Should have collected multiple times
	assert.GreaterOrEqual(t, mockProvider.calls, 2, "Should collect multiple times")
}

type dynamicMockPoolStatsProvider struct {
	calls int
}

func (m *dynamicMockPoolStatsProvider) Stat() PoolStats {
	m.calls++
	return &mockPoolStats{
		total:    int32(10 + m.calls),
		idle:     int32(5),
		acquired: int32(5 + m.calls),
	}
}

func TestLogHealthCheckMetrics(t *testing.T) {
	// LogHealthCheckMetrics requires a real pgxpool.Pool which we can't easily mock
	// This test just verifies the function signature and that it would be callable
	// The actual integration test would use a real database connection
	t.Run("function exists and is callable", func(t *testing.T) {
		// Verify the function is defined (compile-time check)
		var _ = LogHealthCheckMetrics
	})
}
