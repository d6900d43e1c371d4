// Package supervisor drives a leased run to a terminal state: planning, then
// the decide → execute → apply loop over the plan's phases. The supervisor is
// single-threaded per run; durable run state is re-read every iteration so
// cancellation and pause are observed at iteration boundaries.
package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taskfleet/maestro/ent"
	"github.com/taskfleet/maestro/ent/run"
	"github.com/taskfleet/maestro/pkg/credits"
	"github.com/taskfleet/maestro/pkg/events"
	"github.com/taskfleet/maestro/pkg/lifecycle"
	"github.com/taskfleet/maestro/pkg/llm"
	"github.com/taskfleet/maestro/pkg/models"
	"github.com/taskfleet/maestro/pkg/planner"
	"github.com/taskfleet/maestro/pkg/services"
	"github.com/taskfleet/maestro/pkg/tools"
)

const (
	// decisionRetries bounds the "return ONLY JSON" repair rounds per decision.
	decisionRetries = 3

	// toolRetries bounds retries of a recoverably failing tool call.
	toolRetries = 3

	// Exponential backoff bounds for recoverable tool failures.
	toolBackoffBase = 500 * time.Millisecond
	toolBackoffCap  = 30 * time.Second

	// transitionRetries bounds CAS retries on CONCURRENT_UPDATE.
	transitionRetries = 3

	// defaultPacing separates loop iterations so a tight decision loop
	// cannot saturate a provider.
	defaultPacing = 100 * time.Millisecond
)

// ChatClient is the decision/planning LLM seam; *llm.Router satisfies it.
type ChatClient interface {
	Chat(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error)
}

// Supervisor executes one run at a time on behalf of a worker.
type Supervisor struct {
	runs      *services.RunService
	steps     *services.StepService
	artifacts *services.ArtifactService
	eventsSvc *services.EventService
	publisher *events.Publisher
	credits   *credits.Manager
	planner   *planner.Planner
	chat      ChatClient
	tools     *tools.Router
	pacing    time.Duration
}

// Config wires the supervisor's collaborators.
type Config struct {
	Runs      *services.RunService
	Steps     *services.StepService
	Artifacts *services.ArtifactService
	Events    *services.EventService
	Publisher *events.Publisher
	Credits   *credits.Manager
	Planner   *planner.Planner
	Chat      ChatClient
	Tools     *tools.Router

	// Pacing overrides the inter-iteration sleep; zero uses the default.
	Pacing time.Duration
}

// New creates a supervisor.
func New(cfg Config) *Supervisor {
	pacing := cfg.Pacing
	if pacing <= 0 {
		pacing = defaultPacing
	}
	return &Supervisor{
		runs:      cfg.Runs,
		steps:     cfg.Steps,
		artifacts: cfg.Artifacts,
		eventsSvc: cfg.Events,
		publisher: cfg.Publisher,
		credits:   cfg.Credits,
		planner:   cfg.Planner,
		chat:      cfg.Chat,
		tools:     cfg.Tools,
		pacing:    pacing,
	}
}

// Execute drives a freshly leased run. It returns when the run reaches a
// terminal state, suspends (paused, waiting_user), or ctx is cancelled
// (worker shutdown; the lease reaper takes over from there).
func (s *Supervisor) Execute(ctx context.Context, r *ent.Run) error {
	cfg, err := models.RunConfigFromMap(r.Config)
	if err != nil {
		_, ferr := s.transition(ctx, r.ID, run.StatusFailed, &services.TransitionOptions{
			Error: models.Errorf(models.CodeInvalidRequest, "unreadable run config: %v", err),
		})
		return ferr
	}

	if r.Status == run.StatusPlanning {
		// A re-leased run keeps its accepted plan; only synthesize once.
		if stored, perr := models.PlanFromMap(r.Plan); perr == nil && stored != nil {
			r, err = s.transition(ctx, r.ID, run.StatusExecuting, nil)
		} else {
			r, err = s.plan(ctx, r, cfg)
		}
		if err != nil {
			return err
		}
		if r == nil || lifecycle.Terminal(r.Status) {
			return nil
		}
	}

	return s.loop(ctx, r.ID, cfg)
}

// plan synthesizes and persists the run's plan, moving planning → executing.
// Planning failure fails the run, which releases its credits.
func (s *Supervisor) plan(ctx context.Context, r *ent.Run, cfg models.RunConfig) (*ent.Run, error) {
	events.PublishBestEffort(ctx, s.publisher, r.ID, events.EventTaskStarted, map[string]any{
		"prompt": r.Prompt,
	})

	p, err := s.planner.Synthesize(ctx, r.ID, r.Prompt, cfg)
	if err != nil {
		slog.Error("Planning failed", "run_id", r.ID, "error", err)
		_, ferr := s.transition(ctx, r.ID, run.StatusFailed, &services.TransitionOptions{
			Error: models.AsAgentError(err),
		})
		return nil, ferr
	}

	saved, err := s.transition(ctx, r.ID, run.StatusExecuting, &services.TransitionOptions{Plan: p})
	if err != nil {
		return nil, err
	}

	planMap, merr := p.ToMap()
	if merr == nil {
		events.PublishBestEffort(ctx, s.publisher, r.ID, events.EventPlanCreated, planMap)
	}
	return saved, nil
}

// loop is the decide → execute → apply iteration.
func (s *Supervisor) loop(ctx context.Context, runID string, cfg models.RunConfig) error {
	for {
		r, err := s.runs.Get(ctx, runID)
		if err != nil {
			return err
		}

		// Cancellation and pause are observed here, at the iteration boundary.
		switch r.Status {
		case run.StatusCancelled, run.StatusPaused, run.StatusWaitingUser:
			return nil
		case run.StatusExecuting:
			// continue below
		default:
			if lifecycle.Terminal(r.Status) {
				return nil
			}
			return models.Errorf(models.CodeInvalidTransition,
				"run %s in unexpected state %s during execution", runID, r.Status)
		}

		plan, err := models.PlanFromMap(r.Plan)
		if err != nil || plan == nil {
			_, ferr := s.transition(ctx, runID, run.StatusFailed, &services.TransitionOptions{
				Error: models.Errorf(models.CodePlanInvalid, "run %s has no readable plan", runID),
			})
			return ferr
		}

		if s.exceededBounds(r, cfg) {
			return s.timeoutRun(r, plan)
		}

		phase := plan.CurrentPhase()
		if phase == nil {
			_, err := s.transition(ctx, runID, run.StatusCompleted, nil)
			return err
		}

		if phase.Status == models.PhaseStatusPending {
			r, err = s.startPhase(ctx, r, plan, phase)
			if err != nil {
				return err
			}
		}

		action, err := s.decide(ctx, r, plan, phase, cfg)
		if err != nil {
			_, ferr := s.transition(ctx, runID, run.StatusFailed, &services.TransitionOptions{
				Error: models.AsAgentError(err),
			})
			return ferr
		}

		done, err := s.apply(ctx, r, cfg, plan, phase, action)
		if err != nil {
			ae := models.AsAgentError(err)
			_, ferr := s.transition(ctx, runID, run.StatusFailed, &services.TransitionOptions{Error: ae})
			if ferr != nil {
				return ferr
			}
			return nil
		}
		if done {
			return nil
		}

		select {
		case <-time.After(s.pacing):
		case <-ctx.Done():
			// Worker shutdown: leave the run leased; the reaper requeues it.
			return ctx.Err()
		}
	}
}

// exceededBounds checks the run-wide step and duration limits.
func (s *Supervisor) exceededBounds(r *ent.Run, cfg models.RunConfig) bool {
	if r.StepCount >= cfg.MaxSteps {
		return true
	}
	return r.TimeoutAt != nil && time.Now().After(*r.TimeoutAt)
}

// timeoutRun freezes the current phase as failed and moves the run to
// timeout. Uses a detached context so an expiring deadline cannot cancel its
// own terminal write.
func (s *Supervisor) timeoutRun(r *ent.Run, plan *models.Plan) error {
	for i := range plan.Phases {
		if plan.Phases[i].Status == models.PhaseStatusExecuting {
			plan.Phases[i].Status = models.PhaseStatusFailed
		}
	}
	planMap, err := plan.ToMap()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err = s.transition(ctx, r.ID, run.StatusTimeout, &services.TransitionOptions{
		Error: models.Errorf(models.CodeRunTimeout,
			"run exceeded max_steps=%d or its deadline", r.StepCount),
		Mutate: func(u *ent.RunUpdateOne) { u.SetPlan(planMap) },
	})
	return err
}

// startPhase marks the phase executing and announces it.
func (s *Supervisor) startPhase(ctx context.Context, r *ent.Run, plan *models.Plan, phase *models.Phase) (*ent.Run, error) {
	now := time.Now()
	phase.Status = models.PhaseStatusExecuting
	phase.StartedAt = &now
	plan.CurrentPhaseID = phase.ID

	saved, err := s.persistPlan(ctx, r.ID, plan, nil)
	if err != nil {
		return nil, err
	}
	events.PublishBestEffort(ctx, s.publisher, r.ID, events.EventPhaseStarted, map[string]any{
		"phase_id": phase.ID,
		"title":    phase.Title,
	})
	return saved, nil
}

// persistPlan writes the updated plan document via an executing self-edge,
// re-reading the run first since step accounting bumps the version.
func (s *Supervisor) persistPlan(ctx context.Context, runID string, plan *models.Plan, extra func(*ent.RunUpdateOne)) (*ent.Run, error) {
	planMap, err := plan.ToMap()
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, runID, run.StatusExecuting, &services.TransitionOptions{
		Mutate: func(u *ent.RunUpdateOne) {
			u.SetPlan(planMap).SetCurrentPhaseID(plan.CurrentPhaseID)
			if extra != nil {
				extra(u)
			}
		},
	})
}

// transition retries a guarded transition from a fresh read when the
// optimistic write loses a race.
func (s *Supervisor) transition(ctx context.Context, runID string, to run.Status, opts *services.TransitionOptions) (*ent.Run, error) {
	var lastErr error
	for attempt := 0; attempt < transitionRetries; attempt++ {
		r, err := s.runs.Get(ctx, runID)
		if err != nil {
			return nil, err
		}
		if lifecycle.Terminal(r.Status) && lifecycle.Terminal(to) {
			return r, nil // another actor already finished the run
		}

		saved, err := s.runs.Transition(ctx, r, to, opts)
		if err == nil {
			return saved, nil
		}
		lastErr = err
		if models.AsAgentError(err).Code != models.CodeConcurrentUpdate {
			return nil, err
		}
	}
	return nil, fmt.Errorf("transition to %s kept losing version races: %w", to, lastErr)
}
