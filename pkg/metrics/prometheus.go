// Package metrics provides Prometheus metrics for the scoutboard service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Table labels used by the dataset gauges.
const (
	TablePlayers   = "players"
	TableReports   = "reports"
	TableShortlist = "shortlist"
)

// Manager manages all Prometheus metrics for the scoutboard service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Render passes
	renders        prometheus.Counter
	renderLatency  prometheus.Histogram
	cardsFormatted prometheus.Counter
	invalidRecords prometheus.Counter

	// Dataset
	recordsLoaded      *prometheus.GaugeVec
	danglingReferences *prometheus.GaugeVec
	loads              *prometheus.CounterVec
	loadLatency        prometheus.Histogram
	lastLoadUnix       prometheus.Gauge

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "scoutboard",
		subsystem:        "dashboard",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) name(n string) string {
	if m.metricPrefix == "" {
		return n
	}
	return m.metricPrefix + "_" + n
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name(name),
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name(name),
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) histogramOpts(name, help string) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name(name),
		Help:        help,
		Buckets:     m.histogramBuckets,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every metric definition
	auto := promauto.With(m.registry)

	m.renders = auto.NewCounter(m.counterOpts("renders_total", "Total number of dashboard render passes"))
	m.renderLatency = auto.NewHistogram(m.histogramOpts("render_latency_milliseconds", "Duration of one render pass in milliseconds"))
	m.cardsFormatted = auto.NewCounter(m.counterOpts("cards_formatted_total", "Total number of player cards produced"))
	m.invalidRecords = auto.NewCounter(m.counterOpts("invalid_records_total", "Total number of player records skipped as invalid"))

	m.recordsLoaded = auto.NewGaugeVec(m.gaugeOpts("records_loaded", "Rows in the current snapshot by table"), []string{"table"})
	m.danglingReferences = auto.NewGaugeVec(m.gaugeOpts("dangling_references", "Rows whose player reference does not resolve, by table"), []string{"table"})
	m.loads = auto.NewCounterVec(m.counterOpts("loads_total", "Dataset loads by result"), []string{"result"})
	m.loadLatency = auto.NewHistogram(m.histogramOpts("load_latency_milliseconds", "Duration of a dataset load in milliseconds"))
	m.lastLoadUnix = auto.NewGauge(m.gaugeOpts("last_load_unixtime", "Unix time of the last successful load"))

	m.httpRequests = auto.NewCounterVec(m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = auto.NewHistogramVec(m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds"),
		[]string{"endpoint", "method", "status_code"})
	m.errorRateByType = auto.NewCounterVec(m.counterOpts("errors_by_type_total", "Errors by type and severity"),
		[]string{"error_type", "severity"})
	m.errorRateByEndpoint = auto.NewCounterVec(m.counterOpts("errors_by_endpoint_total", "Errors by endpoint"),
		[]string{"endpoint", "method", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_bytes", "Allocated heap bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutines", "Number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(m.histogramOpts("system_gc_pause_milliseconds", "Average GC pause in milliseconds"))
}

// RefreshInterval is how often callers should refresh gauge metrics.
func (m *Manager) RefreshInterval() time.Duration { return m.refreshInterval }

// RecordRender records one render pass and its duration.
func (m *Manager) RecordRender(latencyMs float64, cards, invalid int) {
	if !m.enabled {
		return
	}
	m.renders.Inc()
	m.renderLatency.Observe(latencyMs)
	m.cardsFormatted.Add(float64(cards))
	m.invalidRecords.Add(float64(invalid))
}

// RecordLoad records a dataset load attempt.
func (m *Manager) RecordLoad(latencyMs float64, err error) {
	if !m.enabled {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	} else {
		m.lastLoadUnix.Set(float64(time.Now().Unix()))
	}
	m.loads.WithLabelValues(result).Inc()
	m.loadLatency.Observe(latencyMs)
}

// UpdateRecordsLoaded sets the row count gauge for table.
func (m *Manager) UpdateRecordsLoaded(table string, count int) {
	if !m.enabled {
		return
	}
	m.recordsLoaded.WithLabelValues(table).Set(float64(count))
}

// UpdateDanglingReferences sets the unresolved reference gauge for table.
func (m *Manager) UpdateDanglingReferences(table string, count int) {
	if !m.enabled {
		return
	}
	m.danglingReferences.WithLabelValues(table).Set(float64(count))
}

// RecordHTTPRequest records one request and its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordError records an error by endpoint, type and severity.
func (m *Manager) RecordError(endpoint, method, errorType, severity string) {
	if !m.enabled {
		return
	}
	m.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	m.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// UpdateSystem records process-level figures.
func (m *Manager) UpdateSystem(memBytes uint64, goroutines int, avgGCPauseMs float64) {
	if !m.enabled {
		return
	}
	m.systemMemoryUsage.Set(float64(memBytes))
	m.systemGoroutineCount.Set(float64(goroutines))
	if avgGCPauseMs > 0 {
		m.systemGCPauseTime.Observe(avgGCPauseMs)
	}
}

// Package-level helpers delegate to the global manager.

// RecordRender records a render pass on the global manager.
func RecordRender(latencyMs float64, cards, invalid int) {
	globalManager.RecordRender(latencyMs, cards, invalid)
}

// RecordLoad records a dataset load on the global manager.
func RecordLoad(latencyMs float64, err error) { globalManager.RecordLoad(latencyMs, err) }

// UpdateRecordsLoaded sets a row count gauge on the global manager.
func UpdateRecordsLoaded(table string, count int) { globalManager.UpdateRecordsLoaded(table, count) }

// UpdateDanglingReferences sets an unresolved reference gauge on the global manager.
func UpdateDanglingReferences(table string, count int) {
	globalManager.UpdateDanglingReferences(table, count)
}

// RecordHTTPRequest records a request on the global manager.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// RecordError records an error on the global manager.
func RecordError(endpoint, method, errorType, severity string) {
	globalManager.RecordError(endpoint, method, errorType, severity)
}

// UpdateSystem records process figures on the global manager.
func UpdateSystem(memBytes uint64, goroutines int, avgGCPauseMs float64) {
	globalManager.UpdateSystem(memBytes, goroutines, avgGCPauseMs)
}

// RefreshInterval returns the global manager's refresh interval.
func RefreshInterval() time.Duration { return globalManager.RefreshInterval() }

// Configure rebuilds the global manager with opts on a fresh registry. Call
// it once at startup, before handlers capture GetRegistry and before any
// metric is recorded.
func Configure(opts ...Option) *Manager {
	customRegistry = prometheus.NewRegistry()
	globalManager = NewManager(append([]Option{WithPrometheusRegistry(customRegistry)}, opts...)...)
	return globalManager
}

// GetRegistry returns the custom registry used for metrics exposition.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
