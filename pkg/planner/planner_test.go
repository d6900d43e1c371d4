package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskfleet/maestro/pkg/llm"
	"github.com/taskfleet/maestro/pkg/models"
)

// scriptedClient returns canned responses in order and records requests.
type scriptedClient struct {
	responses []string
	requests  []*llm.ChatRequest
}

func (s *scriptedClient) Chat(_ context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	s.requests = append(s.requests, req)
	i := len(s.requests) - 1
	if i >= len(s.responses) {
		i = len(s.responses) - 1
	}
	return &llm.ChatResponse{
		Model:   "gemini-2.5-flash",
		Content: s.responses[i],
		Usage:   llm.Usage{PromptTokens: 100, CompletionTokens: 50, TotalTokens: 150},
	}, nil
}

const validPlanJSON = `{
  "goal": "Summarize the top 3 causes of X",
  "phases": [
    {"id": 1, "title": "Research", "capabilities": ["web_search"], "estimated_steps": 3},
    {"id": 2, "title": "Synthesize findings", "capabilities": [], "estimated_steps": 2},
    {"id": 3, "title": "Deliver summary", "capabilities": ["document_generation"], "estimated_steps": 1}
  ]
}`

func TestPlanner_ValidPlanFirstAttempt(t *testing.T) {
	client := &scriptedClient{responses: []string{
		"Here is the plan you asked for:\n```json\n" + validPlanJSON + "\n```",
	}}
	p := New(client)

	plan, err := p.Synthesize(context.Background(), "run-1", "Summarize the top 3 causes of X", models.DefaultRunConfig())
	require.NoError(t, err)

	assert.Equal(t, 1, plan.Version)
	assert.Equal(t, 1, plan.CurrentPhaseID)
	require.Len(t, plan.Phases, 3)
	assert.Equal(t, models.PhaseStatusPending, plan.Phases[0].Status)
	assert.Equal(t, 1, plan.Metadata.Attempt)
	assert.Equal(t, "gemini-2.5-flash", plan.Metadata.Model)
	assert.Equal(t, 100, plan.Metadata.InputTokens)

	// Model and temperature come from the run config.
	require.Len(t, client.requests, 1)
	assert.Equal(t, models.DefaultModel, client.requests[0].Model)
	assert.Equal(t, "run-1", client.requests[0].RunID)
}

func TestPlanner_RepairAfterInvalidResponse(t *testing.T) {
	client := &scriptedClient{responses: []string{
		"Sure! Step one is research, step two is writing.", // no JSON
		validPlanJSON,
	}}
	p := New(client)

	plan, err := p.Synthesize(context.Background(), "run-1", "goal", models.DefaultRunConfig())
	require.NoError(t, err)
	assert.Equal(t, 2, plan.Metadata.Attempt)

	// The repair request carries the rejection and the strict JSON reminder.
	require.Len(t, client.requests, 2)
	repair := client.requests[1].Messages
	assert.Contains(t, repair[len(repair)-1].Content, "ONLY the corrected JSON")
}

func TestPlanner_RejectsBadPhaseNumbering(t *testing.T) {
	bad := `{"goal": "g", "phases": [
	  {"id": 1, "title": "Research"},
	  {"id": 3, "title": "Deliver results"}
	]}`
	client := &scriptedClient{responses: []string{bad}}
	p := New(client)

	_, err := p.Synthesize(context.Background(), "run-1", "goal", models.DefaultRunConfig())
	require.Error(t, err)

	ae := models.AsAgentError(err)
	assert.Equal(t, models.CodePlanningFailed, ae.Code)
	assert.Contains(t, ae.Details["last_error"], "id 3")
	// Initial attempt plus three repair rounds.
	assert.Len(t, client.requests, 4)
}

func TestPlanner_RejectsUnknownCapability(t *testing.T) {
	bad := `{"goal": "g", "phases": [
	  {"id": 1, "title": "Research", "capabilities": ["time_travel"]},
	  {"id": 2, "title": "Deliver results"}
	]}`
	client := &scriptedClient{responses: []string{bad, validPlanJSON}}
	p := New(client)

	plan, err := p.Synthesize(context.Background(), "run-1", "goal", models.DefaultRunConfig())
	require.NoError(t, err)
	assert.Equal(t, 2, plan.Metadata.Attempt)
}

func TestPlanner_RejectsNonDeliveryEnding(t *testing.T) {
	bad := `{"goal": "g", "phases": [
	  {"id": 1, "title": "Research", "capabilities": ["web_search"]},
	  {"id": 2, "title": "More research", "capabilities": ["web_search"]}
	]}`
	client := &scriptedClient{responses: []string{bad}}
	p := New(client)

	_, err := p.Synthesize(context.Background(), "run-1", "goal", models.DefaultRunConfig())
	require.Error(t, err)
	assert.Equal(t, models.CodePlanningFailed, models.AsAgentError(err).Code)
}

func TestPlanner_TooFewPhasesRejected(t *testing.T) {
	bad := `{"goal": "g", "phases": [{"id": 1, "title": "Deliver everything"}]}`
	client := &scriptedClient{responses: []string{bad}}
	p := New(client)

	_, err := p.Synthesize(context.Background(), "run-1", "goal", models.DefaultRunConfig())
	require.Error(t, err)
}

func TestIsDeliveryPhase(t *testing.T) {
	assert.True(t, isDeliveryPhase(models.Phase{Title: "Deliver the report"}))
	assert.True(t, isDeliveryPhase(models.Phase{Title: "Wrap up", Description: "present final answer"}))
	assert.True(t, isDeliveryPhase(models.Phase{Title: "Write up", Capabilities: []string{models.CapabilityDocumentGeneration}}))
	assert.False(t, isDeliveryPhase(models.Phase{Title: "Research", Capabilities: []string{models.CapabilityWebSearch}}))
}
