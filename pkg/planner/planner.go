// Package planner synthesizes an execution plan for a run by prompting the
// LLM router and validating the structured response.
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taskfleet/maestro/pkg/llm"
	"github.com/taskfleet/maestro/pkg/models"
)

// ChatClient is the LLM seam; *llm.Router satisfies it.
type ChatClient interface {
	Chat(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error)
}

// planRetries is how many repair rounds follow a failed synthesis attempt.
const planRetries = 3

// Planner produces validated plans.
type Planner struct {
	client ChatClient
}

// New creates a planner over the chat client.
func New(client ChatClient) *Planner {
	return &Planner{client: client}
}

// rawPlan is the JSON shape the model is asked to return.
type rawPlan struct {
	Goal   string `json:"goal"`
	Phases []struct {
		ID             int      `json:"id"`
		Title          string   `json:"title"`
		Description    string   `json:"description"`
		Capabilities   []string `json:"capabilities"`
		EstimatedSteps int      `json:"estimated_steps"`
	} `json:"phases"`
}

// Synthesize prompts for a plan and validates it, repairing up to planRetries
// times. RunID and model/temperature come from the run's config.
func (p *Planner) Synthesize(ctx context.Context, runID, goal string, cfg models.RunConfig) (*models.Plan, error) {
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf("Goal: %s", goal)},
	}

	start := time.Now()
	var lastErr error
	for attempt := 1; attempt <= 1+planRetries; attempt++ {
		resp, err := p.client.Chat(ctx, &llm.ChatRequest{
			Messages:    messages,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			RunID:       runID,
		})
		if err != nil {
			lastErr = err
			if !models.AsAgentError(err).Recoverable {
				break
			}
			continue
		}

		plan, err := p.parse(resp, goal, attempt, start)
		if err == nil {
			return plan, nil
		}
		lastErr = err
		slog.Warn("Plan synthesis attempt rejected",
			"run_id", runID, "attempt", attempt, "error", err)

		// Feed the rejected output and the reason back for repair.
		messages = append(messages,
			llm.Message{Role: llm.RoleAssistant, Content: resp.Content},
			llm.Message{Role: llm.RoleUser, Content: fmt.Sprintf(
				"That plan was rejected: %v. Return ONLY the corrected JSON object, no other text.", err)},
		)
	}

	ae := models.Errorf(models.CodePlanningFailed,
		"failed to synthesize a valid plan for run %s", runID)
	if lastErr != nil {
		ae.Details = map[string]any{"last_error": lastErr.Error()}
	}
	return nil, ae
}

// parse extracts, decodes, and validates one model response.
func (p *Planner) parse(resp *llm.ChatResponse, goal string, attempt int, start time.Time) (*models.Plan, error) {
	obj, err := models.FirstJSONObject(resp.Content)
	if err != nil {
		return nil, err
	}

	var raw rawPlan
	if err := json.Unmarshal([]byte(obj), &raw); err != nil {
		return nil, fmt.Errorf("plan is not valid JSON: %w", err)
	}

	plan := &models.Plan{
		Version:        1,
		Goal:           raw.Goal,
		CurrentPhaseID: 1,
		Metadata: models.PlanMetadata{
			Attempt:          attempt,
			Model:            resp.Model,
			InputTokens:      resp.Usage.PromptTokens,
			OutputTokens:     resp.Usage.CompletionTokens,
			GenerationTimeMS: time.Since(start).Milliseconds(),
		},
	}
	if plan.Goal == "" {
		plan.Goal = goal
	}
	for _, ph := range raw.Phases {
		plan.Phases = append(plan.Phases, models.Phase{
			ID:             ph.ID,
			Title:          ph.Title,
			Description:    ph.Description,
			Capabilities:   ph.Capabilities,
			EstimatedSteps: ph.EstimatedSteps,
			Status:         models.PhaseStatusPending,
		})
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	if !isDeliveryPhase(plan.Phases[len(plan.Phases)-1]) {
		return nil, fmt.Errorf("last phase %q must deliver the final output", plan.Phases[len(plan.Phases)-1].Title)
	}
	return plan, nil
}

// isDeliveryPhase accepts a closing phase that either names delivery or
// carries the document_generation capability.
func isDeliveryPhase(ph models.Phase) bool {
	text := strings.ToLower(ph.Title + " " + ph.Description)
	if strings.Contains(text, "deliver") || strings.Contains(text, "final") {
		return true
	}
	for _, c := range ph.Capabilities {
		if c == models.CapabilityDocumentGeneration {
			return true
		}
	}
	return false
}

var systemPrompt = fmt.Sprintf(`You are a planning assistant. Break the user's goal into a plan of %d-%d sequential phases.

Return ONLY a JSON object with this shape, no prose:
{"goal": "<restated goal>", "phases": [{"id": 1, "title": "...", "description": "...", "capabilities": ["..."], "estimated_steps": 2}, ...]}

Rules:
- Phase ids start at 1 with no gaps.
- capabilities must be drawn from: %s.
- The last phase must deliver the final output to the user.`,
	models.MinPlanPhases, models.MaxPlanPhases, strings.Join(models.AllCapabilities, ", "))
