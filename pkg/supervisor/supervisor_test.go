package supervisor

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskfleet/maestro/ent"
	"github.com/taskfleet/maestro/ent/creditreservation"
	"github.com/taskfleet/maestro/ent/run"
	"github.com/taskfleet/maestro/ent/step"
	"github.com/taskfleet/maestro/pkg/credits"
	"github.com/taskfleet/maestro/pkg/database"
	"github.com/taskfleet/maestro/pkg/events"
	"github.com/taskfleet/maestro/pkg/llm"
	"github.com/taskfleet/maestro/pkg/models"
	"github.com/taskfleet/maestro/pkg/planner"
	"github.com/taskfleet/maestro/pkg/services"
	"github.com/taskfleet/maestro/pkg/tools"
	testdb "github.com/taskfleet/maestro/test/database"
)

// scriptedChat replays canned LLM turns and records every request.
type scriptedChat struct {
	mu        sync.Mutex
	responses []chatTurn
	requests  []*llm.ChatRequest
}

type chatTurn struct {
	content string
	err     error
}

func (c *scriptedChat) push(content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responses = append(c.responses, chatTurn{content: content})
}

func (c *scriptedChat) pushErr(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responses = append(c.responses, chatTurn{err: err})
}

func (c *scriptedChat) Chat(_ context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests = append(c.requests, req)
	if len(c.responses) == 0 {
		return nil, models.NewAgentError(models.CodeAllModelsFailed, "chat script exhausted")
	}
	turn := c.responses[0]
	c.responses = c.responses[1:]
	if turn.err != nil {
		return nil, turn.err
	}
	return &llm.ChatResponse{
		ID:           "chat-1",
		Model:        req.Model,
		Provider:     "scripted",
		Content:      turn.content,
		FinishReason: "stop",
		Usage:        llm.Usage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
		LatencyMS:    5,
	}, nil
}

type harness struct {
	sup       *Supervisor
	runs      *services.RunService
	steps     *services.StepService
	eventsSvc *services.EventService
	credits   *credits.Manager
	chat      *scriptedChat
	tools     *tools.Router
	client    *database.Client
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	client := testdb.NewTestClient(t)
	publisher := events.NewPublisher(client.DB())
	creditMgr := credits.NewManager(client.Client)
	runSvc := services.NewRunService(client.Client, publisher, creditMgr)
	stepSvc := services.NewStepService(client.Client)
	artifactSvc := services.NewArtifactService(client.Client)
	eventSvc := services.NewEventService(client.Client)

	chat := &scriptedChat{}
	router := tools.NewRouter(tools.NewCatalog(nil))

	sup := New(Config{
		Runs:      runSvc,
		Steps:     stepSvc,
		Artifacts: artifactSvc,
		Events:    eventSvc,
		Publisher: publisher,
		Credits:   creditMgr,
		Planner:   planner.New(chat),
		Chat:      chat,
		Tools:     router,
		Pacing:    time.Millisecond,
	})
	return &harness{
		sup:       sup,
		runs:      runSvc,
		steps:     stepSvc,
		eventsSvc: eventSvc,
		credits:   creditMgr,
		chat:      chat,
		tools:     router,
		client:    client,
	}
}

// seedPlanning creates, enqueues, and leases a run as a worker claim would.
func (h *harness) seedPlanning(t *testing.T, prompt string) *ent.Run {
	t.Helper()
	ctx := context.Background()
	r, _, err := h.runs.CreateRun(ctx, &models.CreateRunRequest{
		TenantID: "acme",
		UserID:   "u-1",
		Prompt:   prompt,
		Config:   models.DefaultRunConfig(),
	})
	require.NoError(t, err)
	r, err = h.runs.Enqueue(ctx, r)
	require.NoError(t, err)
	r, err = h.runs.Transition(ctx, r, run.StatusPlanning, &services.TransitionOptions{
		Mutate: func(u *ent.RunUpdateOne) {
			u.SetWorkerID("worker-test").SetLeaseExpiresAt(time.Now().Add(time.Minute))
		},
	})
	require.NoError(t, err)
	return r
}

// seedExecuting puts a run in executing with the given plan already accepted.
func (h *harness) seedExecuting(t *testing.T, prompt string, plan *models.Plan) *ent.Run {
	t.Helper()
	r := h.seedPlanning(t, prompt)
	r, err := h.runs.Transition(context.Background(), r, run.StatusExecuting,
		&services.TransitionOptions{Plan: plan})
	require.NoError(t, err)
	return r
}

func (h *harness) eventTypes(t *testing.T, runID string) []string {
	t.Helper()
	envs, err := h.eventsSvc.Since(context.Background(), runID, 0)
	require.NoError(t, err)
	types := make([]string, 0, len(envs))
	for _, env := range envs {
		types = append(types, env.Type)
	}
	return types
}

func twoPhasePlanJSON() string {
	return `{"goal": "research and report", "phases": [
		{"id": 1, "title": "Research", "description": "Gather sources", "capabilities": ["web_search"], "estimated_steps": 2},
		{"id": 2, "title": "Deliver report", "description": "Write the final document", "capabilities": ["document_generation"], "estimated_steps": 1}
	]}`
}

func twoPhasePlan(t *testing.T) *models.Plan {
	t.Helper()
	p, err := planFromJSON(twoPhasePlanJSON())
	require.NoError(t, err)
	return p
}

func planFromJSON(raw string) (*models.Plan, error) {
	var decoded struct {
		Goal   string `json:"goal"`
		Phases []struct {
			ID           int      `json:"id"`
			Title        string   `json:"title"`
			Description  string   `json:"description"`
			Capabilities []string `json:"capabilities"`
		} `json:"phases"`
	}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, err
	}
	p := &models.Plan{Version: 1, Goal: decoded.Goal, CurrentPhaseID: 1}
	for _, ph := range decoded.Phases {
		p.Phases = append(p.Phases, models.Phase{
			ID:           ph.ID,
			Title:        ph.Title,
			Description:  ph.Description,
			Capabilities: ph.Capabilities,
			Status:       models.PhaseStatusPending,
		})
	}
	return p, p.Validate()
}

func actionJSON(t *testing.T, a map[string]any) string {
	t.Helper()
	raw, err := json.Marshal(a)
	require.NoError(t, err)
	return string(raw)
}

func TestSupervisor_HappyPath(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	searched := 0
	h.tools.Register("web_search", func(_ context.Context, input map[string]any, _ *tools.ExecutionContext) (*tools.Result, error) {
		searched++
		return &tools.Result{Success: true, Output: map[string]any{"summary": "found it"}}, nil
	})
	h.tools.Register("document_generate", func(_ context.Context, _ map[string]any, _ *tools.ExecutionContext) (*tools.Result, error) {
		return &tools.Result{
			Success:   true,
			Output:    map[string]any{"file_name": "report.md"},
			Artifacts: []tools.ArtifactRef{{Type: "document", MimeType: "text/markdown", FileName: "report.md", Data: []byte("# Report")}},
		}, nil
	})

	h.chat.push(twoPhasePlanJSON())
	h.chat.push(actionJSON(t, map[string]any{"kind": "tool", "tool_name": "web_search", "tool_input": map[string]any{"query": "golang"}}))
	h.chat.push(actionJSON(t, map[string]any{"kind": "phase_complete", "reasoning": "sources gathered"}))
	h.chat.push(actionJSON(t, map[string]any{"kind": "tool", "tool_name": "document_generate", "tool_input": map[string]any{"title": "Report"}}))
	h.chat.push(actionJSON(t, map[string]any{"kind": "task_complete", "reasoning": "report delivered"}))

	r := h.seedPlanning(t, "research golang and write a report")
	require.NoError(t, h.sup.Execute(ctx, r))

	final, err := h.runs.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCompleted, final.Status)
	assert.Equal(t, 2, final.StepCount)
	assert.Equal(t, 1, searched)

	plan, err := models.PlanFromMap(final.Plan)
	require.NoError(t, err)
	assert.True(t, plan.AllPhasesDone())

	// The tool steps are durable and priced from the catalog.
	history, err := h.steps.History(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, step.StatusCompleted, history[0].Status)
	assert.Equal(t, step.StatusCompleted, history[1].Status)
	searchDef, _ := h.tools.Catalog().Get("web_search")
	assert.Equal(t, searchDef.CostCredits, history[0].CreditsConsumed)
	assert.Greater(t, final.CreditsConsumed, 0)

	// The reservation is finalized, not released.
	res, err := h.client.CreditReservation.Query().
		Where(creditreservation.RunIDEQ(r.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, creditreservation.StatusConsumed, res.Status)

	types := h.eventTypes(t, r.ID)
	assert.Contains(t, types, events.EventTaskStarted)
	assert.Contains(t, types, events.EventPlanCreated)
	assert.Contains(t, types, events.EventPhaseStarted)
	assert.Contains(t, types, events.EventPhaseCompleted)
	assert.Contains(t, types, events.EventToolStarted)
	assert.Contains(t, types, events.EventToolCompleted)
	assert.Contains(t, types, events.EventThinking)
	assert.Contains(t, types, events.EventTaskCompleted)
	assert.Equal(t, events.EventStreamEnd, types[len(types)-1])
}

func TestSupervisor_PlanningFailureReleasesCredits(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	// Four rounds of unusable output exhaust the repair budget.
	for i := 0; i < 4; i++ {
		h.chat.push("I cannot produce a plan right now.")
	}

	r := h.seedPlanning(t, "impossible goal")
	require.NoError(t, h.sup.Execute(ctx, r))

	final, err := h.runs.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, final.Status)
	assert.Equal(t, models.CodePlanningFailed, final.Error["code"])

	res, err := h.client.CreditReservation.Query().
		Where(creditreservation.RunIDEQ(r.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, creditreservation.StatusReleased, res.Status)

	types := h.eventTypes(t, r.ID)
	assert.Contains(t, types, events.EventTaskFailed)
	assert.Equal(t, events.EventStreamEnd, types[len(types)-1])
}

func TestSupervisor_DecisionRepairRetries(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.chat.push("Let me think about what to do next...")
	h.chat.push(actionJSON(t, map[string]any{"kind": "task_complete"}))

	r := h.seedExecuting(t, "quick task", twoPhasePlan(t))
	require.NoError(t, h.sup.Execute(ctx, r))

	final, err := h.runs.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCompleted, final.Status)

	// The repair round feeds the rejected output back.
	require.Len(t, h.chat.requests, 2)
	repair := h.chat.requests[1].Messages
	assert.Contains(t, repair[len(repair)-1].Content, "Return ONLY the JSON action object")
}

func TestSupervisor_DecisionFailureFailsRun(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		h.chat.push("still just prose, no action")
	}

	r := h.seedExecuting(t, "undecidable", twoPhasePlan(t))
	require.NoError(t, h.sup.Execute(ctx, r))

	final, err := h.runs.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, final.Status)
	assert.Equal(t, models.CodeDecisionFailed, final.Error["code"])
}

func TestSupervisor_UnknownToolRecordedAndRunContinues(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.chat.push(actionJSON(t, map[string]any{"kind": "tool", "tool_name": "quantum_probe", "tool_input": map[string]any{}}))
	h.chat.push(actionJSON(t, map[string]any{"kind": "task_complete"}))

	r := h.seedExecuting(t, "hallucinated tool", twoPhasePlan(t))
	require.NoError(t, h.sup.Execute(ctx, r))

	final, err := h.runs.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCompleted, final.Status)

	history, err := h.steps.History(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, step.StatusFailed, history[0].Status)
	assert.Equal(t, models.CodeUnknownTool, history[0].Error["code"])
}

func TestSupervisor_ToolNotEnabledRejected(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.tools.Register("shell_exec", func(_ context.Context, _ map[string]any, _ *tools.ExecutionContext) (*tools.Result, error) {
		t.Fatal("disallowed tool must not execute")
		return nil, nil
	})

	h.chat.push(actionJSON(t, map[string]any{"kind": "tool", "tool_name": "shell_exec", "tool_input": map[string]any{"command": "ls"}}))
	h.chat.push(actionJSON(t, map[string]any{"kind": "task_complete"}))

	r := h.seedPlanning(t, "restricted run")
	// Restrict the run to search tools only.
	cfg := models.DefaultRunConfig()
	cfg.ToolsEnabled = []string{"web_search"}
	cfgMap, err := cfg.ToMap()
	require.NoError(t, err)
	require.NoError(t, h.client.Run.UpdateOneID(r.ID).SetConfig(cfgMap).Exec(ctx))

	plan := twoPhasePlan(t)
	r, err = h.runs.Get(ctx, r.ID)
	require.NoError(t, err)
	r, err = h.runs.Transition(ctx, r, run.StatusExecuting, &services.TransitionOptions{Plan: plan})
	require.NoError(t, err)

	require.NoError(t, h.sup.Execute(ctx, r))

	history, err := h.steps.History(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.CodeToolNotAllowed, history[0].Error["code"])
}

func TestSupervisor_IdempotentReplaySkipsHandler(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	invoked := 0
	h.tools.Register("web_search", func(_ context.Context, _ map[string]any, _ *tools.ExecutionContext) (*tools.Result, error) {
		invoked++
		return &tools.Result{Success: true, Output: map[string]any{"fresh": true}}, nil
	})

	plan := twoPhasePlan(t)
	r := h.seedExecuting(t, "replay me", plan)

	// A previous lease already completed step 1 before the worker died.
	st, _, err := h.steps.Create(ctx, &models.CreateStepRequest{
		RunID:          r.ID,
		PhaseID:        1,
		Sequence:       1,
		ToolName:       "web_search",
		ToolInput:      map[string]any{"query": "golang"},
		IdempotencyKey: services.IdempotencyKey(r.ID, 1, "web_search"),
	})
	require.NoError(t, err)
	_, err = h.steps.Complete(ctx, st.ID, map[string]any{"summary": "cached"}, 12, 2, 0, 0)
	require.NoError(t, err)

	h.chat.push(actionJSON(t, map[string]any{"kind": "tool", "tool_name": "web_search", "tool_input": map[string]any{"query": "golang"}}))
	h.chat.push(actionJSON(t, map[string]any{"kind": "task_complete"}))

	require.NoError(t, h.sup.Execute(ctx, r))

	assert.Equal(t, 0, invoked, "completed step must be replayed from its stored output")

	final, err := h.runs.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCompleted, final.Status)
	// The replayed step checkpoints the counter it never got to bump.
	assert.Equal(t, 1, final.StepCount)

	history, err := h.steps.History(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "cached", history[0].ToolOutput["summary"])
}

func TestSupervisor_RecoverableToolFailureRetries(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	attempts := 0
	h.tools.Register("web_search", func(_ context.Context, _ map[string]any, _ *tools.ExecutionContext) (*tools.Result, error) {
		attempts++
		if attempts < 3 {
			return &tools.Result{Success: false,
				Error: models.NewRecoverableError(models.CodeToolFailed, "upstream hiccup")}, nil
		}
		return &tools.Result{Success: true, Output: map[string]any{"summary": "third time lucky"}}, nil
	})

	h.chat.push(actionJSON(t, map[string]any{"kind": "tool", "tool_name": "web_search", "tool_input": map[string]any{"query": "flaky"}}))
	h.chat.push(actionJSON(t, map[string]any{"kind": "task_complete"}))

	r := h.seedExecuting(t, "retry the flaky tool", twoPhasePlan(t))
	require.NoError(t, h.sup.Execute(ctx, r))

	assert.Equal(t, 3, attempts)
	history, err := h.steps.History(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, step.StatusCompleted, history[0].Status)
}

func TestSupervisor_RequestInputSuspendsAndResumeContinues(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.chat.push(actionJSON(t, map[string]any{"kind": "request_input", "question": "Which city do you mean?"}))

	r := h.seedExecuting(t, "ambiguous task", twoPhasePlan(t))
	require.NoError(t, h.sup.Execute(ctx, r))

	waiting, err := h.runs.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusWaitingUser, waiting.Status)
	assert.Empty(t, waiting.WorkerID)
	assert.Nil(t, waiting.LeaseExpiresAt)

	// The user answers; the run resumes and the next decision sees the answer.
	_, err = h.runs.Resume(ctx, waiting.ID, "Springfield, Oregon")
	require.NoError(t, err)

	h.chat.push(actionJSON(t, map[string]any{"kind": "task_complete"}))
	resumed, err := h.runs.Get(ctx, r.ID)
	require.NoError(t, err)
	require.NoError(t, h.sup.Execute(ctx, resumed))

	final, err := h.runs.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCompleted, final.Status)

	last := h.chat.requests[len(h.chat.requests)-1].Messages
	var sawAnswer bool
	for _, m := range last {
		if m.Role == llm.RoleUser && m.Content == "Springfield, Oregon" {
			sawAnswer = true
		}
	}
	assert.True(t, sawAnswer, "resume input must reach the decision conversation")
}

func TestSupervisor_CancellationObservedAtBoundary(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	r := h.seedExecuting(t, "cancel me", twoPhasePlan(t))
	_, err := h.runs.Transition(ctx, r, run.StatusCancelled, nil)
	require.NoError(t, err)

	// No chat turns are scripted: the supervisor must return without deciding.
	fresh, err := h.runs.Get(ctx, r.ID)
	require.NoError(t, err)
	require.NoError(t, h.sup.Execute(ctx, fresh))
	assert.Empty(t, h.chat.requests)
}

func TestSupervisor_CancelDuringToolCancelsStep(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	// The user cancels while the call is in flight; the failure the tool
	// reports afterwards must not be recorded as a failed step.
	h.tools.Register("web_search", func(_ context.Context, _ map[string]any, ec *tools.ExecutionContext) (*tools.Result, error) {
		cur, err := h.runs.Get(ctx, ec.RunID)
		require.NoError(t, err)
		_, err = h.runs.Transition(ctx, cur, run.StatusCancelled, nil)
		require.NoError(t, err)
		return &tools.Result{Success: false,
			Error: models.NewAgentError(models.CodeToolFailed, "connection reset")}, nil
	})

	h.chat.push(actionJSON(t, map[string]any{"kind": "tool", "tool_name": "web_search", "tool_input": map[string]any{"query": "golang"}}))

	r := h.seedExecuting(t, "cancel mid-call", twoPhasePlan(t))
	require.NoError(t, h.sup.Execute(ctx, r))

	final, err := h.runs.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCancelled, final.Status)

	history, err := h.steps.History(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, step.StatusCancelled, history[0].Status)
	assert.Nil(t, history[0].Error)

	// The cancel released the reservation; the discarded call consumed nothing.
	res, err := h.client.CreditReservation.Query().
		Where(creditreservation.RunIDEQ(r.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, creditreservation.StatusReleased, res.Status)
	assert.Equal(t, 0, res.Consumed)
}

func TestSupervisor_ReasoningStreamedAsThinking(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.chat.push(actionJSON(t, map[string]any{"kind": "task_complete", "reasoning": "everything the plan asked for is already done"}))

	r := h.seedExecuting(t, "trivial task", twoPhasePlan(t))
	require.NoError(t, h.sup.Execute(ctx, r))

	envs, err := h.eventsSvc.Since(ctx, r.ID, 0)
	require.NoError(t, err)
	var thought string
	for _, env := range envs {
		if env.Type == events.EventThinking {
			thought, _ = env.Payload["content"].(string)
		}
	}
	assert.Equal(t, "everything the plan asked for is already done", thought)
}

func TestSupervisor_MaxStepsBecomesTimeout(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	plan := twoPhasePlan(t)
	plan.Phases[0].Status = models.PhaseStatusExecuting
	r := h.seedExecuting(t, "runaway loop", plan)

	cfg, err := models.RunConfigFromMap(r.Config)
	require.NoError(t, err)
	require.NoError(t, h.client.Run.UpdateOneID(r.ID).SetStepCount(cfg.MaxSteps).Exec(ctx))

	fresh, err := h.runs.Get(ctx, r.ID)
	require.NoError(t, err)
	require.NoError(t, h.sup.Execute(ctx, fresh))

	final, err := h.runs.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusTimeout, final.Status)
	assert.Equal(t, models.CodeRunTimeout, final.Error["code"])

	// The in-flight phase is frozen as failed.
	stored, err := models.PlanFromMap(final.Plan)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseStatusFailed, stored.Phases[0].Status)

	res, err := h.client.CreditReservation.Query().
		Where(creditreservation.RunIDEQ(r.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, creditreservation.StatusReleased, res.Status)
}

func TestSupervisor_AssistantMessagePersisted(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.chat.push(actionJSON(t, map[string]any{"kind": "message", "content": "Halfway there."}))
	h.chat.push(actionJSON(t, map[string]any{"kind": "task_complete"}))

	r := h.seedExecuting(t, "narrated task", twoPhasePlan(t))
	require.NoError(t, h.sup.Execute(ctx, r))

	msgs, err := h.eventsSvc.Messages(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "assistant", msgs[0].Payload["role"])
	assert.Equal(t, "Halfway there.", msgs[0].Payload["content"])
}

func TestSupervisor_CreditExhaustionFailsRun(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.tools.Register("image_generate", func(_ context.Context, _ map[string]any, _ *tools.ExecutionContext) (*tools.Result, error) {
		// Claims far more than the reservation holds.
		return &tools.Result{Success: true, Output: map[string]any{}, CreditsConsumed: 10_000}, nil
	})

	h.chat.push(actionJSON(t, map[string]any{"kind": "tool", "tool_name": "image_generate", "tool_input": map[string]any{"prompt": "a whale"}}))

	r := h.seedExecuting(t, "too expensive", twoPhasePlan(t))
	require.NoError(t, h.sup.Execute(ctx, r))

	final, err := h.runs.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, final.Status)
	assert.Equal(t, models.CodeInsufficientCredits, final.Error["code"])

	history, err := h.steps.History(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, step.StatusFailed, history[0].Status)
}

func TestSupervisor_ScriptExhaustionMessage(t *testing.T) {
	// Guard for the harness itself: an empty script yields a structured error.
	c := &scriptedChat{}
	_, err := c.Chat(context.Background(), &llm.ChatRequest{})
	require.Error(t, err)
	assert.Equal(t, models.CodeAllModelsFailed, models.AsAgentError(err).Code)
	assert.Equal(t, fmt.Sprintf("%s: chat script exhausted", models.CodeAllModelsFailed), err.Error())
}
