package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/initram2002/random-quiz-regolamentari-c11/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	generationDuration *prometheus.HistogramVec
	generationResults  *prometheus.CounterVec
	selectionSize      prometheus.Histogram
	drawAttempts       *prometheus.CounterVec
	rejections         *prometheus.CounterVec
	adjacencyFallbacks *prometheus.CounterVec
	partitionPoolSize  *prometheus.GaugeVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "quiz" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "quiz"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.generationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "sampler",
			Name:      "generation_duration_seconds",
			Help:      "Duration of sampling runs in seconds by policy.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12), // 100µs .. ~0.4s
		}, []string{"policy"})

		p.generationResults = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "sampler",
			Name:      "generation_results_total",
			Help:      "Total sampling run outcomes by policy and result.",
		}, []string{"policy", "result"})

		p.selectionSize = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "sampler",
			Name:      "selection_size",
			Help:      "Number of picks in completed selections.",
			Buckets:   []float64{1, 5, 10, 15, 20, 25, 30},
		})

		p.drawAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "policy",
			Name:      "draw_attempts_total",
			Help:      "Total candidate draws by policy and outcome.",
		}, []string{"policy", "outcome"})

		p.rejections = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "policy",
			Name:      "rejections_total",
			Help:      "Total rejected candidates by policy and reason.",
		}, []string{"policy", "reason"})

		p.adjacencyFallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "policy",
			Name:      "adjacency_fallbacks_total",
			Help:      "Adjacency-avoidance preferences that fell back to the unfiltered pool.",
		}, []string{"partition"})

		p.partitionPoolSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "policy",
			Name:      "partition_pool_size",
			Help:      "Available pool size observed per partition before drawing.",
		}, []string{"partition"})

		p.reg.MustRegister(
			p.generationDuration,
			p.generationResults,
			p.selectionSize,
			p.drawAttempts,
			p.rejections,
			p.adjacencyFallbacks,
			p.partitionPoolSize,
		)
	})
}

// RecordGenerationDuration records the duration of one sampling run.
func (p *PrometheusCollector) RecordGenerationDuration(duration float64, policy string) {
	p.ensureRegistered()
	p.generationDuration.WithLabelValues(policy).Observe(duration)
}

// RecordGenerationResult records a sampling run outcome.
func (p *PrometheusCollector) RecordGenerationResult(policy string, success bool) {
	p.ensureRegistered()
	result := "failure"
	if success {
		result = "success"
	}
	p.generationResults.WithLabelValues(policy, result).Inc()
}

// RecordSelectionSize records the number of picks in a completed selection.
func (p *PrometheusCollector) RecordSelectionSize(count int) {
	p.ensureRegistered()
	p.selectionSize.Observe(float64(count))
}

// RecordDrawAttempt records a single candidate draw.
func (p *PrometheusCollector) RecordDrawAttempt(policy string, accepted bool) {
	p.ensureRegistered()
	outcome := "rejected"
	if accepted {
		outcome = "accepted"
	}
	p.drawAttempts.WithLabelValues(policy, outcome).Inc()
}

// RecordRejection records a rejected candidate by reason.
func (p *PrometheusCollector) RecordRejection(policy, reason string) {
	p.ensureRegistered()
	p.rejections.WithLabelValues(policy, reason).Inc()
}

// RecordAdjacencyFallback records an adjacency preference fallback.
func (p *PrometheusCollector) RecordAdjacencyFallback(partition string) {
	p.ensureRegistered()
	p.adjacencyFallbacks.WithLabelValues(partition).Inc()
}

// RecordPartitionPoolSize records the available pool size for a partition.
func (p *PrometheusCollector) RecordPartitionPoolSize(partition string, size int) {
	p.ensureRegistered()
	p.partitionPoolSize.WithLabelValues(partition).Set(float64(size))
}
