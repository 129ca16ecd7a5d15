// Package metrics provides metrics collector implementations for the quiz
// sampling library.
package metrics

import "github.com/initram2002/random-quiz-regolamentari-c11/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	m := metrics.NewNop()
//	sampler, err := quiz.New(&cfg, src, pol, quiz.WithMetrics(m))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// SamplerMetrics implementation

// RecordGenerationDuration discards the generation duration metric.
func (n *NopMetrics) RecordGenerationDuration(_ /* duration */ float64, _ /* policy */ string) {
	// No-op
}

// RecordGenerationResult discards the generation result metric.
func (n *NopMetrics) RecordGenerationResult(_ /* policy */ string, _ /* success */ bool) {
	// No-op
}

// RecordSelectionSize discards the selection size metric.
func (n *NopMetrics) RecordSelectionSize(_ /* count */ int) {
	// No-op
}

// PolicyMetrics implementation

// RecordDrawAttempt discards the draw attempt metric.
func (n *NopMetrics) RecordDrawAttempt(_ /* policy */ string, _ /* accepted */ bool) {
	// No-op
}

// RecordRejection discards the rejection metric.
func (n *NopMetrics) RecordRejection(_ /* policy */, _ /* reason */ string) {
	// No-op
}

// RecordAdjacencyFallback discards the adjacency fallback metric.
func (n *NopMetrics) RecordAdjacencyFallback(_ /* partition */ string) {
	// No-op
}

// RecordPartitionPoolSize discards the pool size metric.
func (n *NopMetrics) RecordPartitionPoolSize(_ /* partition */ string, _ /* size */ int) {
	// No-op
}
