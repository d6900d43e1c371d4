package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// notifyLimit leaves headroom under PostgreSQL's 8000-byte NOTIFY cap.
const notifyLimit = 7900

// seqRetries bounds retries on a (run_id, seq) collision. Events for one run
// normally come from a single worker goroutine, so collisions are rare —
// they only happen when an API-side terminal event races the worker.
const seqRetries = 3

// Publisher persists run events and broadcasts them via NOTIFY.
//
// Persist and notify happen in one transaction: pg_notify is transactional,
// so the notification fires exactly when the row commits. The per-run
// sequence number is assigned inside the same statement, which combined with
// the unique (run_id, seq) index guarantees a gapless, strictly increasing
// stream per run.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher. The db parameter should be the *sql.DB
// from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// Publish persists one event and broadcasts it on the run's channel.
// Returns the assigned sequence number.
func (p *Publisher) Publish(ctx context.Context, runID, eventType string, payload map[string]any) (int, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	var lastErr error
	for attempt := 0; attempt < seqRetries; attempt++ {
		seq, err := p.persistAndNotify(ctx, runID, eventType, payloadJSON)
		if err == nil {
			return seq, nil
		}
		lastErr = err
		if !isUniqueViolation(err) {
			return 0, err
		}
	}
	return 0, fmt.Errorf("failed to assign event sequence for run %s: %w", runID, lastErr)
}

// persistAndNotify inserts the event with the next per-run seq and fires
// pg_notify in the same transaction.
func (p *Publisher) persistAndNotify(ctx context.Context, runID, eventType string, payloadJSON []byte) (int, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()

	var seq int
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (run_id, seq, event_type, payload, created_at)
		SELECT $1::varchar, COALESCE(MAX(seq), 0) + 1, $2, $3, $4 FROM events WHERE run_id = $1::varchar
		RETURNING seq`,
		runID, eventType, payloadJSON, now,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := buildNotifyPayload(runID, seq, eventType, payloadJSON, now)
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", RunChannel(runID), notifyPayload)
	if err != nil {
		return 0, fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return seq, nil
}

// buildNotifyPayload marshals the NOTIFY envelope, replacing the payload with
// a truncation marker when the result would exceed the NOTIFY size limit.
// Consumers seeing truncated=true fetch the full event from the database.
func buildNotifyPayload(runID string, seq int, eventType string, payloadJSON []byte, ts time.Time) (string, error) {
	env := Envelope{
		RunID:     runID,
		Seq:       seq,
		Type:      eventType,
		Timestamp: ts.Format(time.RFC3339Nano),
	}
	if len(payloadJSON) > 0 && string(payloadJSON) != "null" {
		if err := json.Unmarshal(payloadJSON, &env.Payload); err != nil {
			return "", fmt.Errorf("failed to unmarshal payload for envelope: %w", err)
		}
	}

	raw, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("failed to marshal NOTIFY envelope: %w", err)
	}
	if len(raw) <= notifyLimit {
		return string(raw), nil
	}

	env.Payload = nil
	env.Truncated = true
	raw, err = json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated NOTIFY envelope: %w", err)
	}
	return string(raw), nil
}

// isUniqueViolation matches the (run_id, seq) unique index collision without
// importing driver-specific error types at every call site.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	// pgx wraps server errors with the SQLSTATE; 23505 is unique_violation.
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}

// PublishBestEffort publishes an event and logs instead of failing. Progress
// events must never break run execution; the durable run state is the source
// of truth.
func PublishBestEffort(ctx context.Context, p *Publisher, runID, eventType string, payload map[string]any) {
	if p == nil {
		return
	}
	if _, err := p.Publish(ctx, runID, eventType, payload); err != nil {
		slog.Warn("Failed to publish event",
			"run_id", runID, "event_type", eventType, "error", err)
	}
}
