package llm

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/taskfleet/maestro/ent"
	"github.com/taskfleet/maestro/ent/modelhealth"
)

// HealthStatus of a model as seen by the router.
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusDegraded  HealthStatus = "degraded"
	StatusUnhealthy HealthStatus = "unhealthy"
)

const (
	// Successful calls slower than this mark the model degraded.
	degradedLatencyMS = 5000

	// Consecutive failures at or past this mark the model unhealthy.
	unhealthyThreshold = 3

	// How long an unhealthy model sits out before a trial call is allowed
	// back through. Without it a tripped model could never record the
	// success that restores it.
	unhealthyCooldown = 30 * time.Second
)

// ModelState is one model's health snapshot.
type ModelState struct {
	Model               string       `json:"model"`
	Provider            string       `json:"provider"`
	Status              HealthStatus `json:"status"`
	LatencyMS           int          `json:"latency_ms"`
	FailureCount        int          `json:"failure_count"`
	ConsecutiveFailures int          `json:"consecutive_failures"`
	LastSuccessAt       *time.Time   `json:"last_success_at,omitempty"`
	LastFailureAt       *time.Time   `json:"last_failure_at,omitempty"`
}

// HealthTracker keeps per-model health in memory. The source of truth is
// in-memory; database snapshots are best effort so dashboards and restarts
// see recent state.
type HealthTracker struct {
	mu     sync.RWMutex
	states map[string]*ModelState
	client *ent.Client // nil disables persistence
}

// NewHealthTracker creates a tracker. client may be nil (no persistence).
func NewHealthTracker(client *ent.Client) *HealthTracker {
	return &HealthTracker{
		states: make(map[string]*ModelState),
		client: client,
	}
}

// RecordSuccess marks a successful call. Latency past the degraded threshold
// keeps the model usable but degraded; otherwise the model is healthy again
// regardless of prior failures.
func (h *HealthTracker) RecordSuccess(model, provider string, latencyMS int) {
	now := time.Now()

	h.mu.Lock()
	s := h.state(model, provider)
	s.LatencyMS = latencyMS
	s.ConsecutiveFailures = 0
	s.LastSuccessAt = &now
	if latencyMS > degradedLatencyMS {
		s.Status = StatusDegraded
	} else {
		s.Status = StatusHealthy
	}
	snapshot := *s
	h.mu.Unlock()

	h.persist(snapshot)
}

// RecordFailure marks a failed call. Three consecutive failures take the
// model out of rotation until the cooldown elapses.
func (h *HealthTracker) RecordFailure(model, provider string) {
	now := time.Now()

	h.mu.Lock()
	s := h.state(model, provider)
	s.FailureCount++
	s.ConsecutiveFailures++
	s.LastFailureAt = &now
	if s.ConsecutiveFailures >= unhealthyThreshold {
		s.Status = StatusUnhealthy
	} else {
		s.Status = StatusDegraded
	}
	snapshot := *s
	h.mu.Unlock()

	h.persist(snapshot)
}

// Available reports whether the router may route to the model. Models with
// no recorded state are available. An unhealthy model becomes available
// again once the cooldown since its last failure elapses; the trial call's
// outcome then decides whether it rejoins the rotation or sits out another
// cooldown.
func (h *HealthTracker) Available(model string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	s, ok := h.states[model]
	if !ok || s.Status != StatusUnhealthy {
		return true
	}
	return s.LastFailureAt == nil || time.Since(*s.LastFailureAt) >= unhealthyCooldown
}

// Status returns the model's current status, defaulting to healthy for
// models never seen.
func (h *HealthTracker) Status(model string) HealthStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if s, ok := h.states[model]; ok {
		return s.Status
	}
	return StatusHealthy
}

// Snapshot returns all tracked states sorted by model name.
func (h *HealthTracker) Snapshot() []ModelState {
	h.mu.RLock()
	out := make([]ModelState, 0, len(h.states))
	for _, s := range h.states {
		out = append(out, *s)
	}
	h.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Model < out[j].Model })
	return out
}

// state returns the entry for model, creating it under the write lock.
func (h *HealthTracker) state(model, provider string) *ModelState {
	s, ok := h.states[model]
	if !ok {
		s = &ModelState{Model: model, Provider: provider, Status: StatusHealthy}
		h.states[model] = s
	}
	return s
}

// persist upserts the snapshot row. Failures are logged and dropped; health
// tracking must never block or fail a chat call.
func (h *HealthTracker) persist(s ModelState) {
	if h.client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := h.client.ModelHealth.Create().
		SetID(s.Model).
		SetProvider(s.Provider).
		SetStatus(modelhealth.Status(s.Status)).
		SetLatencyMs(s.LatencyMS).
		SetFailureCount(s.FailureCount).
		SetConsecutiveFailures(s.ConsecutiveFailures).
		SetNillableLastSuccessAt(s.LastSuccessAt).
		SetNillableLastFailureAt(s.LastFailureAt).
		OnConflict(entsql.ConflictColumns(modelhealth.FieldID)).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		slog.Warn("Failed to persist model health snapshot",
			"model", s.Model, "error", err)
	}
}
