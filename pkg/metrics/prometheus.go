// Package metrics provides Prometheus metrics for the broadcast schedule service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the schedule service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Import pipeline metrics
	importsRequested     prometheus.Counter
	importsCompleted     prometheus.Counter
	importsFailed        prometheus.Counter
	importDuration       prometheus.Histogram
	scheduleItemsNew     prometheus.Counter
	scheduleItemsUpdated prometheus.Counter
	talentNew            prometheus.Counter
	talentUpdated        prometheus.Counter
	talentUnmodified     prometheus.Counter
	danglingRefs         prometheus.Counter
	categoryLookups      prometheus.Counter
	categoryLookupErrors prometheus.Counter

	// Store metrics
	storeCommits        prometheus.Counter
	storeCommitDuration prometheus.Histogram
	subscriberDrops     prometheus.Counter
	scheduleItemsTotal  prometheus.Gauge
	talentTotal         prometheus.Gauge

	// Queue metrics
	queueSize          prometheus.Gauge
	queueCapacity      prometheus.Gauge
	queueUtilization   prometheus.Gauge
	queueEnqueues      prometheus.Counter
	queueDequeues      prometheus.Counter
	queueEnqueueErrors prometheus.Counter

	// Worker metrics
	workerActive  prometheus.Gauge
	workerLatency prometheus.Histogram
	workerErrors  prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "besties",
		subsystem:        "schedule",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // metric declarations are long by nature
	auto := promauto.With(m.registry)

	m.importsRequested = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "imports_requested_total",
		Help:      "Total number of schedule imports requested",
	})
	m.importsCompleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "imports_completed_total",
		Help:      "Total number of schedule imports completed successfully",
	})
	m.importsFailed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "imports_failed_total",
		Help:      "Total number of schedule imports that failed",
	})
	m.importDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "import_duration_milliseconds",
		Help:      "Histogram of end-to-end import duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})
	m.scheduleItemsNew = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "schedule_items_new_total",
		Help:      "Total number of schedule items created by imports",
	})
	m.scheduleItemsUpdated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "schedule_items_updated_total",
		Help:      "Total number of schedule items updated by imports",
	})
	m.talentNew = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "talent_new_total",
		Help:      "Total number of talent items created by imports",
	})
	m.talentUpdated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "talent_updated_total",
		Help:      "Total number of talent items updated by imports",
	})
	m.talentUnmodified = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "talent_unmodified_total",
		Help:      "Total number of existing talent items retained untouched by imports",
	})
	m.danglingRefs = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dangling_talent_refs_total",
		Help:      "Total number of schedule talent references that could not be resolved",
	})
	m.categoryLookups = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "category_lookups_total",
		Help:      "Total number of streaming category lookups performed",
	})
	m.categoryLookupErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "category_lookup_errors_total",
		Help:      "Total number of streaming category lookups that failed",
	})

	m.storeCommits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_commits_total",
		Help:      "Total number of state commits",
	})
	m.storeCommitDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_commit_duration_milliseconds",
		Help:      "Histogram of state commit duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})
	m.subscriberDrops = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "subscriber_drops_total",
		Help:      "Total number of state notifications dropped on slow subscribers",
	})
	m.scheduleItemsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "schedule_items",
		Help:      "Current number of schedule items in the store",
	})
	m.talentTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "talent_items",
		Help:      "Current number of talent items in the store",
	})

	m.queueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "import_queue_size",
		Help:      "Current size of the import request queue",
	})
	m.queueCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "import_queue_capacity",
		Help:      "Capacity of the import request queue",
	})
	m.queueUtilization = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "import_queue_utilization",
		Help:      "Utilization ratio of the import request queue",
	})
	m.queueEnqueues = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "import_queue_enqueues_total",
		Help:      "Total number of import requests enqueued",
	})
	m.queueDequeues = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "import_queue_dequeues_total",
		Help:      "Total number of import requests dequeued",
	})
	m.queueEnqueueErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "import_queue_enqueue_errors_total",
		Help:      "Total number of rejected import enqueue attempts",
	})

	m.workerActive = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "import_workers_active",
		Help:      "Number of import workers currently processing a request",
	})
	m.workerLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "import_worker_latency_milliseconds",
		Help:      "Histogram of per-request import worker latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})
	m.workerErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "import_worker_errors_total",
		Help:      "Total number of import worker failures",
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
}

// RecordImportRequested increments the imports requested counter.
func RecordImportRequested() {
	globalManager.importsRequested.Inc()
}

// RecordImportCompleted records a successful import and its duration.
func RecordImportCompleted(durationMs float64) {
	globalManager.importsCompleted.Inc()
	globalManager.importDuration.Observe(durationMs)
}

// RecordImportFailed increments the failed imports counter.
func RecordImportFailed() {
	globalManager.importsFailed.Inc()
}

// RecordScheduleMerge records schedule merge outcome counts.
func RecordScheduleMerge(newItems, updatedItems int) {
	globalManager.scheduleItemsNew.Add(float64(newItems))
	globalManager.scheduleItemsUpdated.Add(float64(updatedItems))
}

// RecordTalentMerge records talent merge outcome counts.
func RecordTalentMerge(newItems, updatedItems, unmodifiedItems int) {
	globalManager.talentNew.Add(float64(newItems))
	globalManager.talentUpdated.Add(float64(updatedItems))
	globalManager.talentUnmodified.Add(float64(unmodifiedItems))
}

// RecordDanglingRefs adds to the dangling talent reference counter.
func RecordDanglingRefs(count int) {
	globalManager.danglingRefs.Add(float64(count))
}

// RecordCategoryLookup increments the category lookup counter.
func RecordCategoryLookup() {
	globalManager.categoryLookups.Inc()
}

// RecordCategoryLookupError increments the category lookup error counter.
func RecordCategoryLookupError() {
	globalManager.categoryLookupErrors.Inc()
}

// RecordStoreCommit records a state commit and its duration.
func RecordStoreCommit(durationMs float64) {
	globalManager.storeCommits.Inc()
	globalManager.storeCommitDuration.Observe(durationMs)
}

// RecordSubscriberDrop increments the dropped notification counter.
func RecordSubscriberDrop() {
	globalManager.subscriberDrops.Inc()
}

// UpdateScheduleItemsTotal sets the stored schedule item gauge.
func UpdateScheduleItemsTotal(count int) {
	globalManager.scheduleItemsTotal.Set(float64(count))
}

// UpdateTalentTotal sets the stored talent gauge.
func UpdateTalentTotal(count int) {
	globalManager.talentTotal.Set(float64(count))
}

// UpdateQueueSize sets the import queue size gauge.
func UpdateQueueSize(size int) {
	globalManager.queueSize.Set(float64(size))
}

// UpdateQueueCapacity sets the import queue capacity gauge.
func UpdateQueueCapacity(capacity int) {
	globalManager.queueCapacity.Set(float64(capacity))
}

// UpdateQueueUtilization sets the import queue utilization gauge.
func UpdateQueueUtilization(utilization float64) {
	globalManager.queueUtilization.Set(utilization)
}

// RecordQueueEnqueue increments the enqueue counter.
func RecordQueueEnqueue() {
	globalManager.queueEnqueues.Inc()
}

// RecordQueueDequeue increments the dequeue counter.
func RecordQueueDequeue() {
	globalManager.queueDequeues.Inc()
}

// RecordQueueEnqueueError increments the rejected enqueue counter.
func RecordQueueEnqueueError() {
	globalManager.queueEnqueueErrors.Inc()
}

// UpdateWorkerActive sets the active import worker gauge.
func UpdateWorkerActive(count int) {
	globalManager.workerActive.Set(float64(count))
}

// RecordWorkerLatency records per-request import worker latency.
func RecordWorkerLatency(latencyMs float64) {
	globalManager.workerLatency.Observe(latencyMs)
}

// RecordWorkerError increments the import worker error counter.
func RecordWorkerError() {
	globalManager.workerErrors.Inc()
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the custom registry serving /metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
