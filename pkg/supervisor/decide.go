package supervisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/taskfleet/maestro/ent"
	"github.com/taskfleet/maestro/pkg/llm"
	"github.com/taskfleet/maestro/pkg/models"
)

const decisionSystemPrompt = `You are the execution supervisor for an autonomous agent run.
You are given the run goal, the plan, the current phase, and the history so far.
Decide the single next action and respond with ONE JSON object, nothing else.

Action shapes:
  {"kind": "tool", "tool_name": "<name>", "tool_input": {...}, "reasoning": "<short>"}
  {"kind": "message", "content": "<progress note for the user>"}
  {"kind": "phase_complete", "reasoning": "<why the phase's objective is met>"}
  {"kind": "task_complete", "reasoning": "<why the whole task is done>"}
  {"kind": "request_input", "question": "<what you need from the user>"}

Rules:
- Use only the tools listed as available.
- Emit phase_complete as soon as the current phase's objective is met.
- Emit task_complete only from the final phase, after the deliverable exists.
- Emit request_input only when you cannot proceed without the user.`

// decide asks the LLM for the next action, repairing malformed responses a
// bounded number of times before giving up with DECISION_FAILED.
func (s *Supervisor) decide(ctx context.Context, r *ent.Run, plan *models.Plan, phase *models.Phase, cfg models.RunConfig) (*models.AgentAction, error) {
	msgs, err := s.conversation(ctx, r, plan, phase, cfg)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= 1+decisionRetries; attempt++ {
		resp, err := s.chat.Chat(ctx, &llm.ChatRequest{
			Messages:    msgs,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			RunID:       r.ID,
			UserID:      r.UserID,
		})
		if err != nil {
			ae := models.NewAgentError(models.CodeDecisionFailed,
				fmt.Sprintf("decision call failed: %v", err))
			ae.Details = map[string]any{"attempt": attempt}
			return nil, ae
		}

		action, perr := models.ParseAgentAction(resp.Content)
		if perr == nil {
			return action, nil
		}
		lastErr = perr
		msgs = append(msgs,
			llm.Message{Role: llm.RoleAssistant, Content: resp.Content},
			llm.Message{Role: llm.RoleUser, Content: fmt.Sprintf(
				"That response was rejected: %v. Return ONLY the JSON action object, no other text.", perr)},
		)
	}

	ae := models.NewAgentError(models.CodeDecisionFailed,
		fmt.Sprintf("no valid action after %d attempts", 1+decisionRetries))
	ae.Details = map[string]any{"last_error": lastErr.Error()}
	return nil, ae
}

// conversation rebuilds the decision context from durable state: the goal and
// plan, the step history, and persisted message events (assistant notes and
// resume inputs). The run itself stores no conversation; this reconstruction
// is what makes lease takeover after a worker crash possible.
func (s *Supervisor) conversation(ctx context.Context, r *ent.Run, plan *models.Plan, phase *models.Phase, cfg models.RunConfig) ([]llm.Message, error) {
	msgs := []llm.Message{
		{Role: llm.RoleSystem, Content: decisionSystemPrompt},
		{Role: llm.RoleUser, Content: s.taskContext(r, plan, phase, cfg)},
	}

	history, err := s.steps.History(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	for _, st := range history {
		call := map[string]any{"tool": st.ToolName, "input": st.ToolInput}
		msgs = append(msgs, llm.Message{Role: llm.RoleAssistant, Content: compactJSON(call)})

		result := map[string]any{"status": st.Status.String()}
		if len(st.ToolOutput) > 0 {
			result["output"] = st.ToolOutput
		}
		if len(st.Error) > 0 {
			result["error"] = st.Error
		}
		msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: compactJSON(result)})
	}

	// Message events follow the step history; the most recent user input
	// (e.g. a resume answer) lands last, where it carries the most weight.
	messages, err := s.eventsSvc.Messages(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	for _, env := range messages {
		role := llm.RoleAssistant
		if v, _ := env.Payload["role"].(string); v == "user" {
			role = llm.RoleUser
		}
		content, _ := env.Payload["content"].(string)
		if content == "" {
			continue
		}
		msgs = append(msgs, llm.Message{Role: role, Content: content})
	}

	return msgs, nil
}

// taskContext renders the goal, plan outline, current phase, and tool list.
func (s *Supervisor) taskContext(r *ent.Run, plan *models.Plan, phase *models.Phase, cfg models.RunConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Goal: %s\n\nPlan:\n", r.Prompt)
	for _, ph := range plan.Phases {
		marker := " "
		if ph.ID == phase.ID {
			marker = ">"
		}
		fmt.Fprintf(&b, "%s %d. %s [%s]\n", marker, ph.ID, ph.Title, ph.Status)
	}
	fmt.Fprintf(&b, "\nCurrent phase: %d (%s)", phase.ID, phase.Title)
	if phase.Description != "" {
		fmt.Fprintf(&b, " — %s", phase.Description)
	}

	b.WriteString("\n\nAvailable tools:\n")
	for _, name := range s.tools.List() {
		if !cfg.ToolEnabled(name) {
			continue
		}
		if def, ok := s.tools.Catalog().Get(name); ok {
			if def.Disabled {
				continue
			}
			fmt.Fprintf(&b, "- %s: %s (cost %d credits)\n", name, def.Description, def.CostCredits)
		} else {
			fmt.Fprintf(&b, "- %s\n", name)
		}
	}
	return b.String()
}

func compactJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}
