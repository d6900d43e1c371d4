package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/taskfleet/maestro/ent"
	"github.com/taskfleet/maestro/ent/step"
	"github.com/taskfleet/maestro/pkg/models"
)

// StepService owns step rows and the idempotent-replay lookup.
type StepService struct {
	client *ent.Client
}

// NewStepService creates the step service.
func NewStepService(client *ent.Client) *StepService {
	return &StepService{client: client}
}

// IdempotencyKey derives the replay key for a step.
func IdempotencyKey(runID string, sequence int, toolName string) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s:%d:%s", runID, sequence, toolName))
	return hex.EncodeToString(sum[:])
}

// Create records a pending step, or returns the existing one when the
// idempotency key (or the sequence slot) was already written. The bool
// reports whether the prior step finished and its output should be reused
// instead of re-executing.
func (s *StepService) Create(ctx context.Context, req *models.CreateStepRequest) (*ent.Step, bool, error) {
	existing, err := s.client.Step.Query().
		Where(step.RunIDEQ(req.RunID), step.IdempotencyKeyEQ(req.IdempotencyKey)).
		Only(ctx)
	if err == nil {
		reuse := existing.Status == step.StatusCompleted
		return existing, reuse, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to check idempotency key: %w", err)
	}

	id := req.StepID
	if id == "" {
		id = uuid.New().String()
	}
	st, err := s.client.Step.Create().
		SetID(id).
		SetRunID(req.RunID).
		SetPhaseID(req.PhaseID).
		SetSequence(req.Sequence).
		SetToolName(req.ToolName).
		SetToolInput(req.ToolInput).
		SetIdempotencyKey(req.IdempotencyKey).
		Save(ctx)
	if err != nil {
		// Lost a replay race on the unique (run_id, idempotency_key) index,
		// or the sequence slot is already taken because a replayed decision
		// picked a different tool. Either way the durable step wins.
		if ent.IsConstraintError(err) {
			if existing, qerr := s.client.Step.Query().
				Where(step.RunIDEQ(req.RunID), step.IdempotencyKeyEQ(req.IdempotencyKey)).
				Only(ctx); qerr == nil {
				return existing, existing.Status == step.StatusCompleted, nil
			}
			if existing, qerr := s.client.Step.Query().
				Where(step.RunIDEQ(req.RunID), step.SequenceEQ(req.Sequence)).
				Only(ctx); qerr == nil {
				return existing, existing.Status == step.StatusCompleted, nil
			}
		}
		return nil, false, fmt.Errorf("failed to create step: %w", err)
	}
	return st, false, nil
}

// Start marks the step running.
func (s *StepService) Start(ctx context.Context, stepID string) (*ent.Step, error) {
	st, err := s.client.Step.UpdateOneID(stepID).
		SetStatus(step.StatusRunning).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start step: %w", err)
	}
	return st, nil
}

// Complete records a successful step with its output and accounting.
func (s *StepService) Complete(ctx context.Context, stepID string, output map[string]any, durationMS, creditsUsed, tokensIn, tokensOut int) (*ent.Step, error) {
	st, err := s.client.Step.UpdateOneID(stepID).
		SetStatus(step.StatusCompleted).
		SetToolOutput(output).
		SetDurationMs(durationMS).
		SetCreditsConsumed(creditsUsed).
		SetTokensInput(tokensIn).
		SetTokensOutput(tokensOut).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete step: %w", err)
	}
	return st, nil
}

// Fail records a failed step with its structured error.
func (s *StepService) Fail(ctx context.Context, stepID string, ae *models.AgentError, durationMS int) (*ent.Step, error) {
	st, err := s.client.Step.UpdateOneID(stepID).
		SetStatus(step.StatusFailed).
		SetError(ae.ToMap()).
		SetDurationMs(durationMS).
		SetCompletedAt(time.Now()).
		AddRetryCount(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record step failure: %w", err)
	}
	return st, nil
}

// Cancel marks an in-flight step cancelled; its result, if any, is discarded.
func (s *StepService) Cancel(ctx context.Context, stepID string) error {
	err := s.client.Step.UpdateOneID(stepID).
		SetStatus(step.StatusCancelled).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel step: %w", err)
	}
	return nil
}

// History returns the run's steps in sequence order.
func (s *StepService) History(ctx context.Context, runID string) ([]*ent.Step, error) {
	steps, err := s.client.Step.Query().
		Where(step.RunIDEQ(runID)).
		Order(ent.Asc(step.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load step history: %w", err)
	}
	return steps, nil
}
