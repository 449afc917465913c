// Package metrics provides Prometheus metrics for the ENCORE progression engine.
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

// Manager manages all Prometheus metrics for the progression engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Core Engine Metrics - modifier and bonus computations
	modifierComputations prometheus.Counter
	modifierLatency      prometheus.Histogram
	neutralFallbacks     *prometheus.CounterVec
	bandAggregations     prometheus.Counter
	bandAggregationTime  prometheus.Histogram
	touringMemberRolls   prometheus.Counter
	bonusCalculations    *prometheus.CounterVec

	// Reference Data Metrics - skill graph scale
	skillDefinitions   prometheus.Gauge
	skillRelationships prometheus.Gauge

	// Store Metrics - in-memory collaborator stores
	storeOpLatency *prometheus.HistogramVec
	profilesTotal  prometheus.Gauge
	bandsTotal     prometheus.Gauge

	// Operational Metrics
	workerCount prometheus.Gauge

	// HTTP Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorsByComponent *prometheus.CounterVec
	errorsByEndpoint  *prometheus.CounterVec

	// System Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
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
		namespace:        "encore",
		subsystem:        "progression",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.modifierComputations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "modifier_computations_total",
		Help:      "Total number of performance modifier computations",
	})

	m.modifierLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "modifier_latency_milliseconds",
		Help:      "Histogram of performance modifier computation latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.neutralFallbacks = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "neutral_fallbacks_total",
			Help:      "Total number of computations that degraded to the neutral baseline",
		},
		[]string{"component"},
	)

	m.bandAggregations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "band_aggregations_total",
		Help:      "Total number of band skill rating aggregations",
	})

	m.bandAggregationTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "band_aggregation_milliseconds",
		Help:      "Band aggregation duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.touringMemberRolls = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "touring_member_rolls_total",
		Help:      "Total number of randomized touring-member ability rolls",
	})

	m.bonusCalculations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "bonus_calculations_total",
			Help:      "Total number of bonus calculations by kind (genre, recording, rehearsal)",
		},
		[]string{"kind"},
	)

	m.skillDefinitions = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "skill_definitions",
		Help:      "Number of skill definitions in the static catalog",
	})

	m.skillRelationships = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "skill_relationships",
		Help:      "Number of prerequisite relationships in the static catalog",
	})

	m.storeOpLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "store_op_latency_milliseconds",
			Help:      "Store operation latency in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"store", "op"},
	)

	m.profilesTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "profiles_total",
		Help:      "Number of profiles tracked by the progress store",
	})

	m.bandsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "bands_total",
		Help:      "Number of bands tracked by the roster store",
	})

	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_count",
		Help:      "Configured band aggregation fan-out width",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorsByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Total number of errors by component",
		},
		[]string{"component", "error_type"},
	)

	m.errorsByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of errors by endpoint",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})
}

// RecordModifierComputation increments the modifier computations counter.
func RecordModifierComputation() {
	globalManager.modifierComputations.Inc()
}

// RecordModifierLatency records modifier computation latency in milliseconds.
func RecordModifierLatency(latencyMs float64) {
	globalManager.modifierLatency.Observe(latencyMs)
}

// RecordNeutralFallback counts a degradation to the neutral baseline.
func RecordNeutralFallback(component string) {
	globalManager.neutralFallbacks.WithLabelValues(component).Inc()
}

// RecordBandAggregation increments the band aggregations counter.
func RecordBandAggregation() {
	globalManager.bandAggregations.Inc()
}

// RecordBandAggregationTime records band aggregation duration.
func RecordBandAggregationTime(latencyMs float64) {
	globalManager.bandAggregationTime.Observe(latencyMs)
}

// RecordTouringMemberRoll increments the touring-member roll counter.
func RecordTouringMemberRoll() {
	globalManager.touringMemberRolls.Inc()
}

// RecordBonusCalculation counts a bonus calculation by kind.
func RecordBonusCalculation(kind string) {
	globalManager.bonusCalculations.WithLabelValues(kind).Inc()
}

// UpdateSkillDefinitions sets the catalog definition count.
func UpdateSkillDefinitions(count int) {
	globalManager.skillDefinitions.Set(float64(count))
}

// UpdateSkillRelationships sets the catalog relationship count.
func UpdateSkillRelationships(count int) {
	globalManager.skillRelationships.Set(float64(count))
}

// RecordStoreOpLatency records a store operation latency.
func RecordStoreOpLatency(store, op string, latencyMs float64) {
	globalManager.storeOpLatency.WithLabelValues(store, op).Observe(latencyMs)
}

// UpdateProfilesTotal sets the tracked profile count.
func UpdateProfilesTotal(count int) {
	globalManager.profilesTotal.Set(float64(count))
}

// UpdateBandsTotal sets the tracked band count.
func UpdateBandsTotal(count int) {
	globalManager.bandsTotal.Set(float64(count))
}

// UpdateWorkerCount sets the configured fan-out width.
func UpdateWorkerCount(count int) {
	globalManager.workerCount.Set(float64(count))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
