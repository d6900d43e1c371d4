package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus is the database section of the health endpoint: a ping
// round-trip plus connection pool pressure indicators.
type HealthStatus struct {
	Healthy        bool  `json:"healthy"`
	PingMS         int64 `json:"ping_ms"`
	OpenConns      int   `json:"open_conns"`
	InUse          int   `json:"in_use"`
	Idle           int   `json:"idle"`
	WaitCount      int64 `json:"wait_count"`
	WaitDurationMS int64 `json:"wait_duration_ms"`
	MaxOpenConns   int   `json:"max_open_conns"`
}

// Health pings the database and reports pool statistics. A non-nil error
// comes with a partial status carrying the failed ping latency.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{PingMS: time.Since(start).Milliseconds()}, err
	}

	stats := db.Stats()
	return &HealthStatus{
		Healthy:        true,
		PingMS:         time.Since(start).Milliseconds(),
		OpenConns:      stats.OpenConnections,
		InUse:          stats.InUse,
		Idle:           stats.Idle,
		WaitCount:      stats.WaitCount,
		WaitDurationMS: stats.WaitDuration.Milliseconds(),
		MaxOpenConns:   stats.MaxOpenConnections,
	}, nil
}
