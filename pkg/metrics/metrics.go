// Package metrics exposes the orchestrator's Prometheus instruments.
// Everything is registered on the default registry and served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunsFinished counts runs reaching a terminal status.
	RunsFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maestro_runs_finished_total",
		Help: "Runs that reached a terminal status.",
	}, []string{"status"})

	// RunsClaimed counts dispatcher lease acquisitions.
	RunsClaimed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "maestro_runs_claimed_total",
		Help: "Queued runs claimed by workers.",
	})

	// LeasesReaped counts expired leases returned to the queue.
	LeasesReaped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "maestro_leases_reaped_total",
		Help: "Expired leases returned to queued by the reaper.",
	})

	// ToolExecutions counts tool router executions by tool and outcome.
	ToolExecutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maestro_tool_executions_total",
		Help: "Tool router executions by tool name and outcome.",
	}, []string{"tool", "outcome"})

	// ToolDuration observes handler latency per tool.
	ToolDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "maestro_tool_duration_seconds",
		Help:    "Tool handler duration.",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
	}, []string{"tool"})

	// ProviderCalls counts LLM calls by provider, model, and outcome.
	ProviderCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maestro_provider_calls_total",
		Help: "LLM provider calls by provider, model, and outcome.",
	}, []string{"provider", "model", "outcome"})

	// ChatLatency observes end-to-end provider chat latency.
	ChatLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "maestro_chat_latency_seconds",
		Help:    "Provider chat call latency.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
	}, []string{"provider"})

	// EventsDropped counts events dropped by slow SSE consumers.
	EventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "maestro_events_dropped_total",
		Help: "Events dropped from full subscriber buffers.",
	})

	// HTTPRequests counts API requests by method, route, and status class.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maestro_http_requests_total",
		Help: "API requests by method, route, and status class.",
	}, []string{"method", "route", "status"})

	// ActiveRuns tracks runs currently leased by this worker pool.
	ActiveRuns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "maestro_active_runs",
		Help: "Runs currently executing on this instance.",
	})
)
