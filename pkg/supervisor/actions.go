package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/taskfleet/maestro/ent"
	"github.com/taskfleet/maestro/ent/run"
	"github.com/taskfleet/maestro/pkg/events"
	"github.com/taskfleet/maestro/pkg/models"
	"github.com/taskfleet/maestro/pkg/services"
	"github.com/taskfleet/maestro/pkg/tools"
)

// apply executes one decided action. It returns done=true when the run has
// reached a state where this worker should stop (terminal or waiting on the
// user). A returned error fails the run.
func (s *Supervisor) apply(ctx context.Context, r *ent.Run, cfg models.RunConfig, plan *models.Plan, phase *models.Phase, action *models.AgentAction) (bool, error) {
	if action.Reasoning != "" {
		events.PublishBestEffort(ctx, s.publisher, r.ID, events.EventThinking, map[string]any{
			"content": action.Reasoning,
		})
	}

	switch action.Kind {
	case models.ActionTool:
		return false, s.executeToolStep(ctx, r, cfg, plan, phase, action)

	case models.ActionMessage:
		events.PublishBestEffort(ctx, s.publisher, r.ID, events.EventMessage, map[string]any{
			"role":    "assistant",
			"content": action.Content,
		})
		return false, nil

	case models.ActionPhaseComplete:
		return s.completePhase(ctx, r, plan, phase)

	case models.ActionTaskComplete:
		return true, s.completeTask(ctx, r, plan, phase)

	case models.ActionRequestInput:
		return true, s.requestInput(ctx, r, action.Question)

	default:
		return false, models.Errorf(models.CodeDecisionFailed,
			"unsupported action kind %q", action.Kind)
	}
}

// completePhase closes the current phase and advances the plan pointer. When
// it was the last phase the run completes.
func (s *Supervisor) completePhase(ctx context.Context, r *ent.Run, plan *models.Plan, phase *models.Phase) (bool, error) {
	now := time.Now()
	phase.Status = models.PhaseStatusCompleted
	phase.CompletedAt = &now
	if next := plan.CurrentPhase(); next != nil {
		plan.CurrentPhaseID = next.ID
	}

	if plan.AllPhasesDone() {
		planMap, err := plan.ToMap()
		if err != nil {
			return false, err
		}
		_, err = s.transition(ctx, r.ID, run.StatusCompleted, &services.TransitionOptions{
			Mutate: func(u *ent.RunUpdateOne) { u.SetPlan(planMap) },
		})
		if err != nil {
			return false, err
		}
		s.publishPhaseCompleted(ctx, r.ID, phase)
		return true, nil
	}

	if _, err := s.persistPlan(ctx, r.ID, plan, nil); err != nil {
		return false, err
	}
	s.publishPhaseCompleted(ctx, r.ID, phase)
	return false, nil
}

// completeTask closes the current phase, skips any remaining ones, and moves
// the run to completed. Credit settlement and the terminal events happen in
// the transition itself.
func (s *Supervisor) completeTask(ctx context.Context, r *ent.Run, plan *models.Plan, phase *models.Phase) error {
	now := time.Now()
	phase.Status = models.PhaseStatusCompleted
	phase.CompletedAt = &now
	for i := range plan.Phases {
		if plan.Phases[i].Status == models.PhaseStatusPending {
			plan.Phases[i].Status = models.PhaseStatusSkipped
		}
	}

	planMap, err := plan.ToMap()
	if err != nil {
		return err
	}
	_, err = s.transition(ctx, r.ID, run.StatusCompleted, &services.TransitionOptions{
		Mutate: func(u *ent.RunUpdateOne) { u.SetPlan(planMap) },
	})
	if err != nil {
		return err
	}
	s.publishPhaseCompleted(ctx, r.ID, phase)
	return nil
}

// requestInput suspends the run until the user answers. The lease is cleared
// so resume can hand the run to any worker.
func (s *Supervisor) requestInput(ctx context.Context, r *ent.Run, question string) error {
	events.PublishBestEffort(ctx, s.publisher, r.ID, events.EventMessage, map[string]any{
		"role":    "assistant",
		"content": question,
	})
	_, err := s.transition(ctx, r.ID, run.StatusWaitingUser, &services.TransitionOptions{
		Mutate: func(u *ent.RunUpdateOne) {
			u.ClearWorkerID().ClearLeaseExpiresAt()
		},
	})
	return err
}

func (s *Supervisor) publishPhaseCompleted(ctx context.Context, runID string, phase *models.Phase) {
	events.PublishBestEffort(ctx, s.publisher, runID, events.EventPhaseCompleted, map[string]any{
		"phase_id":        phase.ID,
		"title":           phase.Title,
		"steps_completed": phase.StepsCompleted,
	})
}

// executeToolStep runs one tool call as a durable step: create the step row
// under its idempotency key (replays reuse the stored output), execute with
// bounded retries on recoverable failures, then settle credits and artifacts.
//
// A step that fails after its retries does not fail the run: the failure is
// recorded on the step and fed back to the next decision, bounded by
// max_steps. Only credit exhaustion propagates as a run failure.
func (s *Supervisor) executeToolStep(ctx context.Context, r *ent.Run, cfg models.RunConfig, plan *models.Plan, phase *models.Phase, action *models.AgentAction) error {
	// The sequence derives from the run's durable step counter, not from the
	// steps table: a crash between completing a step and checkpointing the
	// counter must reproduce the same idempotency key on the next lease, so
	// the stored output is reused instead of re-running the tool.
	seq := r.StepCount + 1

	st, reused, err := s.steps.Create(ctx, &models.CreateStepRequest{
		RunID:          r.ID,
		PhaseID:        phase.ID,
		Sequence:       seq,
		ToolName:       action.ToolName,
		ToolInput:      action.ToolInput,
		IdempotencyKey: services.IdempotencyKey(r.ID, seq, action.ToolName),
	})
	if err != nil {
		return err
	}
	if reused {
		slog.Info("Reusing completed step output",
			"run_id", r.ID, "step_id", st.ID, "tool", st.ToolName)
		events.PublishBestEffort(ctx, s.publisher, r.ID, events.EventToolCompleted, map[string]any{
			"step_id": st.ID,
			"tool":    st.ToolName,
			"success": true,
			"reused":  true,
		})
		return s.recordStepProgress(ctx, r.ID, plan, phase, st.ID)
	}

	// Policy rejections are recorded as failed steps, never executed. They
	// still count toward max_steps so a stubborn decision loop stays bounded.
	if !cfg.ToolEnabled(action.ToolName) {
		if err := s.failStep(ctx, r.ID, st.ID, models.Errorf(models.CodeToolNotAllowed,
			"tool %q is not enabled for this run", action.ToolName)); err != nil {
			return err
		}
		return s.recordStepProgress(ctx, r.ID, plan, phase, st.ID)
	}
	if !s.tools.Has(action.ToolName) {
		if err := s.failStep(ctx, r.ID, st.ID, models.Errorf(models.CodeUnknownTool,
			"tool %q does not exist", action.ToolName)); err != nil {
			return err
		}
		return s.recordStepProgress(ctx, r.ID, plan, phase, st.ID)
	}

	reservation, err := s.credits.ActiveReservation(ctx, r.ID)
	if err != nil {
		return err
	}

	// Cancellation between the decision and the call: the tool never runs.
	cancelled, err := s.runCancelled(ctx, r.ID)
	if err != nil {
		return err
	}
	if cancelled {
		return s.steps.Cancel(ctx, st.ID)
	}

	events.PublishBestEffort(ctx, s.publisher, r.ID, events.EventToolStarted, map[string]any{
		"step_id":  st.ID,
		"tool":     st.ToolName,
		"phase_id": phase.ID,
		"sequence": seq,
	})
	if _, err := s.steps.Start(ctx, st.ID); err != nil {
		return err
	}

	res := s.runTool(ctx, r, st, reservation.Amount-reservation.Consumed)

	// Cancellation while the tool ran: the result, success or failure, is
	// discarded. The step ends cancelled, never failed, and no credits are
	// consumed against the already-released reservation.
	cancelled, err = s.runCancelled(ctx, r.ID)
	if err != nil {
		return err
	}
	if cancelled {
		return s.steps.Cancel(ctx, st.ID)
	}

	if !res.Success {
		if _, err := s.steps.Fail(ctx, st.ID, res.Error, res.DurationMS); err != nil {
			return err
		}
		events.PublishBestEffort(ctx, s.publisher, r.ID, events.EventToolCompleted, map[string]any{
			"step_id": st.ID,
			"tool":    st.ToolName,
			"success": false,
			"error":   res.Error.ToMap(),
		})
		return s.recordStepProgress(ctx, r.ID, plan, phase, st.ID)
	}

	cost := s.stepCost(st.ToolName, res)
	if err := s.credits.Consume(ctx, reservation.ID, cost); err != nil {
		// Exceeding the reservation is fatal for the run; the step result is
		// discarded rather than delivered unpaid.
		fae := models.AsAgentError(err)
		if _, serr := s.steps.Fail(ctx, st.ID, fae, res.DurationMS); serr != nil {
			slog.Warn("Failed to record step failure", "step_id", st.ID, "error", serr)
		}
		return fae
	}

	if _, err := s.steps.Complete(ctx, st.ID, res.Output, res.DurationMS, cost, 0, res.TokensUsed); err != nil {
		return err
	}
	s.recordArtifacts(ctx, r, st, res)

	if len(res.Output) > 0 {
		events.PublishBestEffort(ctx, s.publisher, r.ID, events.EventToolOutput, map[string]any{
			"step_id": st.ID,
			"tool":    st.ToolName,
			"output":  res.Output,
		})
	}
	events.PublishBestEffort(ctx, s.publisher, r.ID, events.EventToolCompleted, map[string]any{
		"step_id":     st.ID,
		"tool":        st.ToolName,
		"success":     true,
		"duration_ms": res.DurationMS,
		"credits":     cost,
		"artifacts":   len(res.Artifacts),
	})

	return s.recordStepProgress(ctx, r.ID, plan, phase, st.ID)
}

// runCancelled re-reads the run's durable status. Tool calls can outlive an
// API cancel by seconds; checking here keeps the step record truthful.
func (s *Supervisor) runCancelled(ctx context.Context, runID string) (bool, error) {
	cur, err := s.runs.Get(ctx, runID)
	if err != nil {
		return false, err
	}
	return cur.Status == run.StatusCancelled, nil
}

// runTool executes the call, retrying recoverable failures with exponential
// backoff. Non-recoverable failures and successes return immediately.
func (s *Supervisor) runTool(ctx context.Context, r *ent.Run, st *ent.Step, budget int) *tools.Result {
	call := &tools.Call{
		ToolName: st.ToolName,
		Input:    st.ToolInput,
		Context: &tools.ExecutionContext{
			RunID:          r.ID,
			StepID:         st.ID,
			TenantID:       r.TenantID,
			UserID:         r.UserID,
			IdempotencyKey: st.IdempotencyKey,
			CreditBudget:   budget,
		},
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = toolBackoffBase
	bo.MaxInterval = toolBackoffCap
	bo.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, toolRetries), ctx)

	var last *tools.Result
	res, err := backoff.RetryWithData(func() (*tools.Result, error) {
		res := s.tools.Execute(ctx, call)
		last = res
		if !res.Success && res.Error != nil && res.Error.Recoverable {
			slog.Warn("Tool failed recoverably, retrying",
				"run_id", r.ID, "step_id", st.ID, "tool", st.ToolName, "error", res.Error)
			return nil, res.Error
		}
		return res, nil
	}, policy)
	if err != nil {
		// Retries exhausted (or ctx done); surface the last attempt's result.
		if last != nil {
			return last
		}
		return &tools.Result{Success: false, Error: models.AsAgentError(err)}
	}
	return res
}

// stepCost prices a completed step: the handler's self-reported consumption
// when present, otherwise the catalog price.
func (s *Supervisor) stepCost(toolName string, res *tools.Result) int {
	if res.CreditsConsumed > 0 {
		return res.CreditsConsumed
	}
	if def, ok := s.tools.Catalog().Get(toolName); ok {
		return def.CostCredits
	}
	return 0
}

// recordArtifacts content-addresses and persists each artifact the handler
// emitted. Best effort: a failed record is logged, not fatal.
func (s *Supervisor) recordArtifacts(ctx context.Context, r *ent.Run, st *ent.Step, res *tools.Result) {
	for _, ref := range res.Artifacts {
		if len(ref.Data) == 0 {
			continue
		}
		hash := services.HashContent(ref.Data)
		_, _, err := s.artifacts.Record(ctx, &models.RecordArtifactRequest{
			ContentHash:   hash,
			Type:          ref.Type,
			MimeType:      ref.MimeType,
			FileName:      ref.FileName,
			Size:          int64(len(ref.Data)),
			StoragePath:   fmt.Sprintf("runs/%s/%s", r.ID, ref.FileName),
			CreatedByRun:  r.ID,
			CreatedByStep: st.ID,
			CreatedByTool: st.ToolName,
			Metadata:      ref.Metadata,
		})
		if err != nil {
			slog.Warn("Failed to record artifact",
				"run_id", r.ID, "step_id", st.ID, "file", ref.FileName, "error", err)
		}
	}
}

// failStep records a policy rejection as a failed step and announces it.
func (s *Supervisor) failStep(ctx context.Context, runID, stepID string, ae *models.AgentError) error {
	st, err := s.steps.Fail(ctx, stepID, ae, 0)
	if err != nil {
		return err
	}
	events.PublishBestEffort(ctx, s.publisher, runID, events.EventToolCompleted, map[string]any{
		"step_id": st.ID,
		"tool":    st.ToolName,
		"success": false,
		"error":   ae.ToMap(),
	})
	return nil
}

// recordStepProgress checkpoints the run after a step: plan phase counters,
// the step pointer, and the run-wide step count all land in one CAS write.
func (s *Supervisor) recordStepProgress(ctx context.Context, runID string, plan *models.Plan, phase *models.Phase, stepID string) error {
	phase.StepsCompleted++
	_, err := s.persistPlan(ctx, runID, plan, func(u *ent.RunUpdateOne) {
		u.AddStepCount(1).SetCurrentStepID(stepID)
	})
	return err
}
