package config

import "time"

// QueueConfig contains dispatcher and worker pool configuration.
// These values control how runs are polled, claimed, and leased.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes runs.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentRuns is the global limit of runs being processed across
	// ALL replicas. Enforced by a database COUNT(*) check at claim time.
	MaxConcurrentRuns int `yaml:"max_concurrent_runs"`

	// PollInterval is the base interval for checking queued runs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// LeaseDuration is the visibility timeout on a claimed run. A run whose
	// lease expires without a heartbeat is requeued by the reaper.
	LeaseDuration time.Duration `yaml:"lease_duration"`

	// HeartbeatInterval is how often an active worker extends its lease.
	// Must be well under LeaseDuration.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// ReaperInterval is how often to scan for expired leases and timed-out
	// runs.
	ReaperInterval time.Duration `yaml:"reaper_interval"`

	// GracefulShutdownTimeout is the max time to wait for active runs to
	// reach a checkpoint during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// EventBufferSize bounds each event stream subscriber's in-memory buffer.
	// A full buffer drops the oldest event and inserts a dropped marker.
	EventBufferSize int `yaml:"event_buffer_size"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentRuns:       20,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		LeaseDuration:           2 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		ReaperInterval:          1 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Second,
		EventBufferSize:         256,
	}
}
