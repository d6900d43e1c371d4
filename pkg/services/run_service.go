// Package services implements the persistence-facing operations: run
// lifecycle transitions with optimistic concurrency, step recording with
// idempotent replay, content-addressed artifacts, and event catchup reads.
package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/taskfleet/maestro/ent"
	"github.com/taskfleet/maestro/ent/run"
	"github.com/taskfleet/maestro/pkg/credits"
	"github.com/taskfleet/maestro/pkg/events"
	"github.com/taskfleet/maestro/pkg/lifecycle"
	"github.com/taskfleet/maestro/pkg/metrics"
	"github.com/taskfleet/maestro/pkg/models"
)

// ErrNotFound marks lookups of runs that do not exist. API handlers map it
// to 404.
var ErrNotFound = errors.New("resource not found")

// RunService owns run rows: creation with external-id dedup, guarded status
// transitions keyed on (id, version), and terminal side-effects.
type RunService struct {
	client    *ent.Client
	publisher *events.Publisher
	credits   *credits.Manager
}

// NewRunService creates the run service.
func NewRunService(client *ent.Client, publisher *events.Publisher, creditMgr *credits.Manager) *RunService {
	return &RunService{client: client, publisher: publisher, credits: creditMgr}
}

// CreateRun creates a pending run. When the caller supplies an external_id
// that already exists for the tenant, the original run is returned instead of
// creating a duplicate; the bool reports whether a new row was created.
func (s *RunService) CreateRun(ctx context.Context, req *models.CreateRunRequest) (*ent.Run, bool, error) {
	cfg := req.Config
	if err := cfg.Normalize(); err != nil {
		return nil, false, models.Errorf(models.CodeInvalidRequest, "invalid run config: %v", err)
	}
	if req.Prompt == "" {
		return nil, false, models.Errorf(models.CodeInvalidRequest, "prompt is required")
	}

	if req.ExternalID != "" {
		if existing, err := s.byExternalID(ctx, req.TenantID, req.ExternalID); err == nil {
			return existing, false, nil
		} else if !ent.IsNotFound(err) {
			return nil, false, err
		}
	}

	id := req.RunID
	if id == "" {
		id = uuid.New().String()
	}
	cfgMap, err := cfg.ToMap()
	if err != nil {
		return nil, false, err
	}

	create := s.client.Run.Create().
		SetID(id).
		SetTenantID(req.TenantID).
		SetUserID(req.UserID).
		SetPrompt(req.Prompt).
		SetPromptHash(HashPrompt(req.Prompt)).
		SetConfig(cfgMap).
		SetPriority(req.Priority)
	if req.ExternalID != "" {
		create.SetExternalID(req.ExternalID)
	}

	r, err := create.Save(ctx)
	if err != nil {
		// A concurrent create with the same external_id won the race; the
		// partial unique index rejected ours, so return the winner.
		if ent.IsConstraintError(err) && req.ExternalID != "" {
			if existing, qerr := s.byExternalID(ctx, req.TenantID, req.ExternalID); qerr == nil {
				return existing, false, nil
			}
		}
		return nil, false, fmt.Errorf("failed to create run: %w", err)
	}
	return r, true, nil
}

// Enqueue reserves credits per config.max_credits, stamps the run deadline,
// and transitions pending → queued.
func (s *RunService) Enqueue(ctx context.Context, r *ent.Run) (*ent.Run, error) {
	cfg, err := models.RunConfigFromMap(r.Config)
	if err != nil {
		return nil, err
	}

	if _, err := s.credits.Reserve(ctx, r.ID, r.TenantID, cfg.MaxCredits); err != nil {
		return nil, err
	}

	// Reserve bumped the version; transition from a fresh read.
	r, err = s.Get(ctx, r.ID)
	if err != nil {
		return nil, err
	}

	timeoutAt := time.Now().Add(time.Duration(cfg.MaxDurationSeconds) * time.Second)
	return s.Transition(ctx, r, run.StatusQueued, &TransitionOptions{
		Mutate: func(u *ent.RunUpdateOne) { u.SetTimeoutAt(timeoutAt) },
	})
}

// TransitionOptions carries optional data persisted with a transition.
type TransitionOptions struct {
	// Error is stored on the run for failure-type terminal states.
	Error *models.AgentError

	// Plan is persisted atomically with the planning → executing edge and
	// satisfies its plan-not-null guard.
	Plan *models.Plan

	// Mutate applies extra field updates within the same optimistic write.
	Mutate func(*ent.RunUpdateOne)
}

// Transition moves the run along one legal edge. The write is keyed on the
// version the caller read; a concurrent mutation fails with CONCURRENT_UPDATE
// and the caller retries from a fresh read. Terminal transitions settle the
// credit reservation and emit the terminal event plus stream_end.
func (s *RunService) Transition(ctx context.Context, r *ent.Run, to run.Status, opts *TransitionOptions) (*ent.Run, error) {
	if opts == nil {
		opts = &TransitionOptions{}
	}

	if !lifecycle.CanTransition(r.Status, to) {
		return nil, models.Errorf(models.CodeInvalidTransition,
			"illegal transition %s → %s for run %s", r.Status, to, r.ID)
	}
	switch to {
	case run.StatusQueued:
		if r.CreditsReserved <= 0 {
			return nil, models.Errorf(models.CodeInvalidTransition,
				"run %s cannot be queued without reserved credits", r.ID)
		}
	case run.StatusExecuting:
		if r.Status == run.StatusPlanning && len(r.Plan) == 0 && opts.Plan == nil {
			return nil, models.Errorf(models.CodeInvalidTransition,
				"run %s cannot execute without a plan", r.ID)
		}
	}

	now := time.Now()
	u := s.client.Run.UpdateOneID(r.ID).
		Where(run.VersionEQ(r.Version)).
		SetStatus(to).
		AddVersion(1)

	if to == run.StatusExecuting && r.StartedAt == nil {
		u.SetStartedAt(now)
	}
	if opts.Plan != nil {
		planMap, err := opts.Plan.ToMap()
		if err != nil {
			return nil, err
		}
		u.SetPlan(planMap).SetCurrentPhaseID(opts.Plan.CurrentPhaseID)
	}
	if lifecycle.Terminal(to) {
		u.SetCompletedAt(now).
			ClearWorkerID().
			ClearLeaseExpiresAt()
		if opts.Error != nil {
			u.SetError(opts.Error.ToMap())
		}
	}
	if opts.Mutate != nil {
		opts.Mutate(u)
	}

	saved, err := u.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, models.Errorf(models.CodeConcurrentUpdate,
				"run %s changed underneath the transition to %s (version %d is stale)",
				r.ID, to, r.Version)
		}
		return nil, fmt.Errorf("failed to persist transition to %s: %w", to, err)
	}

	if lifecycle.Terminal(to) {
		metrics.RunsFinished.WithLabelValues(string(to)).Inc()
		s.finishRun(ctx, saved, opts.Error)
	}
	return saved, nil
}

// finishRun settles the credit reservation and closes the event stream.
// Both are idempotent: the reservation is one-shot and a duplicate terminal
// event only repeats what consumers already deduplicate on seq.
func (s *RunService) finishRun(ctx context.Context, r *ent.Run, ae *models.AgentError) {
	if s.credits != nil {
		res, err := s.credits.ActiveReservation(ctx, r.ID)
		switch {
		case err == nil:
			reason := credits.SettleReasonForStatus(r.Status)
			if r.Status == run.StatusCompleted {
				err = s.credits.Finalize(ctx, res.ID, reason)
			} else {
				err = s.credits.Release(ctx, res.ID, reason)
			}
			if err != nil && !errors.Is(err, credits.ErrAlreadyFinalized) {
				slog.Error("Failed to settle credit reservation",
					"run_id", r.ID, "status", r.Status, "error", err)
			}
		case errors.Is(err, credits.ErrNoActiveReservation):
			// Already settled, or the run never reserved (failed at pending).
		default:
			slog.Error("Failed to look up reservation for terminal run",
				"run_id", r.ID, "error", err)
		}
	}

	if r.Status == run.StatusCompleted {
		events.PublishBestEffort(ctx, s.publisher, r.ID, events.EventTaskCompleted, map[string]any{
			"credits_consumed": r.CreditsConsumed,
			"step_count":       r.StepCount,
		})
	} else {
		payload := map[string]any{"status": string(r.Status)}
		if ae != nil {
			payload["error"] = ae.ToMap()
		}
		events.PublishBestEffort(ctx, s.publisher, r.ID, events.EventTaskFailed, payload)
	}
	events.PublishBestEffort(ctx, s.publisher, r.ID, events.EventStreamEnd, nil)
}

// Get loads a run by id.
func (s *RunService) Get(ctx context.Context, runID string) (*ent.Run, error) {
	r, err := s.client.Run.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: run %s", ErrNotFound, runID)
		}
		return nil, fmt.Errorf("failed to load run: %w", err)
	}
	return r, nil
}

// List returns a page of runs for a tenant, newest first.
func (s *RunService) List(ctx context.Context, filters models.RunFilters) (*models.RunListResponse, error) {
	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	q := s.client.Run.Query().Where(run.TenantIDEQ(filters.TenantID))
	if filters.Status != "" {
		q = q.Where(run.StatusEQ(run.Status(filters.Status)))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}

	rows, err := q.
		Order(ent.Desc(run.FieldCreatedAt)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	resp := &models.RunListResponse{Page: page, PageSize: pageSize, TotalCount: total}
	for _, r := range rows {
		resp.Runs = append(resp.Runs, models.RunSummary{
			ID:              r.ID,
			Status:          string(r.Status),
			Prompt:          r.Prompt,
			StepCount:       r.StepCount,
			CreditsReserved: r.CreditsReserved,
			CreditsConsumed: r.CreditsConsumed,
			CreatedAt:       r.CreatedAt,
			CompletedAt:     r.CompletedAt,
		})
	}
	return resp, nil
}

// Retry creates a fresh run carrying the prompt and config of a failed run.
func (s *RunService) Retry(ctx context.Context, runID string) (*ent.Run, error) {
	prev, err := s.Get(ctx, runID)
	if err != nil {
		return nil, err
	}
	if prev.Status != run.StatusFailed {
		return nil, models.Errorf(models.CodeInvalidTransition,
			"only failed runs can be retried; run %s is %s", runID, prev.Status)
	}

	cfg, err := models.RunConfigFromMap(prev.Config)
	if err != nil {
		return nil, err
	}
	r, _, err := s.CreateRun(ctx, &models.CreateRunRequest{
		TenantID: prev.TenantID,
		UserID:   prev.UserID,
		Prompt:   prev.Prompt,
		Config:   cfg,
		Priority: prev.Priority,
	})
	return r, err
}

// Resume moves a waiting_user or paused run back to executing, recording the
// user's answer as a message event so the supervisor rebuilds it into the
// conversation. The run is left unleased; a worker picks it up.
func (s *RunService) Resume(ctx context.Context, runID, userInput string) (*ent.Run, error) {
	r, err := s.Get(ctx, runID)
	if err != nil {
		return nil, err
	}
	if !lifecycle.Resumable(r.Status) {
		return nil, models.Errorf(models.CodeInvalidTransition,
			"run %s is %s, not waiting for input", runID, r.Status)
	}

	if userInput != "" {
		if _, err := s.publisher.Publish(ctx, runID, events.EventMessage, map[string]any{
			"role": "user", "content": userInput,
		}); err != nil {
			return nil, fmt.Errorf("failed to record user input: %w", err)
		}
	}
	return s.Transition(ctx, r, run.StatusExecuting, nil)
}

// byExternalID resolves the create-dedup lookup.
func (s *RunService) byExternalID(ctx context.Context, tenantID, externalID string) (*ent.Run, error) {
	return s.client.Run.Query().
		Where(run.TenantIDEQ(tenantID), run.ExternalIDEQ(externalID)).
		Only(ctx)
}

// HashPrompt returns the SHA-256 hex digest used for prompt_hash.
func HashPrompt(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
