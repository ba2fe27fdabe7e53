// Package metrics defines the Prometheus metrics for the control plane.
//
// Metric naming follows Prometheus conventions:
//   - agentplane_ prefix for all custom metrics
//   - _total suffix for counters
//   - _seconds suffix for duration histograms
//
// Tenant ids are deliberately not used as label values: tenants are unbounded
// and would blow up series cardinality. Agent names, queues, and models are
// small closed sets.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PipelineRequestsTotal counts decision pipeline requests by agent and
	// terminal outcome (success, rejected, rate_limited, cancelled, error).
	PipelineRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agentplane_pipeline_requests_total",
			Help: "Total decision pipeline requests by agent and outcome.",
		},
		[]string{"agent", "outcome"},
	)

	// PipelineDurationSeconds is a histogram of end-to-end pipeline latency.
	PipelineDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agentplane_pipeline_duration_seconds",
			Help:    "End-to-end decision pipeline latency in seconds.",
			Buckets: []float64{0.005, 0.025, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"agent"},
	)

	// CacheLookupsTotal counts response cache lookups by layer and result.
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agentplane_cache_lookups_total",
			Help: "Response cache lookups by layer (exact, semantic) and result (hit, miss).",
		},
		[]string{"layer", "result"},
	)

	// ProviderRequestsTotal counts LLM provider calls by model and outcome.
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agentplane_provider_requests_total",
			Help: "LLM provider requests by model and outcome.",
		},
		[]string{"model", "outcome"},
	)

	// BreakerTripsTotal counts circuit breaker trips by agent.
	BreakerTripsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agentplane_breaker_trips_total",
			Help: "Circuit breaker trips by agent.",
		},
		[]string{"agent"},
	)

	// OutreachTotal counts outreach records by channel and reached status.
	OutreachTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agentplane_outreach_total",
			Help: "Outreach state transitions by channel and new status.",
		},
		[]string{"channel", "status"},
	)

	// ApprovalsTotal counts approval resolutions by terminal status.
	ApprovalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agentplane_approvals_total",
			Help: "Approval resolutions by terminal status.",
		},
		[]string{"status"},
	)

	// TasksProcessedTotal counts queue tasks by queue and terminal status.
	TasksProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agentplane_tasks_processed_total",
			Help: "Queue tasks processed by queue and terminal status.",
		},
		[]string{"queue", "status"},
	)

	// QueueDepth tracks pending tasks per queue, sampled by the worker pool.
	QueueDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "agentplane_queue_depth",
			Help: "Pending tasks per queue.",
		},
		[]string{"queue"},
	)

	// EventsPublishedTotal counts published domain events by type.
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agentplane_events_published_total",
			Help: "Domain events published by event type.",
		},
		[]string{"event_type"},
	)

	// GapsFilledTotal counts gaps filled through outreach attribution.
	GapsFilledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "agentplane_gaps_filled_total",
			Help: "Gaps filled through outreach attribution.",
		},
	)
)
