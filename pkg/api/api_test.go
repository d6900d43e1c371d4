package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskfleet/maestro/ent"
	"github.com/taskfleet/maestro/ent/creditreservation"
	"github.com/taskfleet/maestro/ent/run"
	"github.com/taskfleet/maestro/pkg/credits"
	"github.com/taskfleet/maestro/pkg/database"
	"github.com/taskfleet/maestro/pkg/events"
	"github.com/taskfleet/maestro/pkg/models"
	"github.com/taskfleet/maestro/pkg/services"
	testdb "github.com/taskfleet/maestro/test/database"
)

type apiHarness struct {
	client    *database.Client
	runs      *services.RunService
	steps     *services.StepService
	artifacts *services.ArtifactService
	eventsSvc *services.EventService
	publisher *events.Publisher
	server    *Server
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()
	client := testdb.NewTestClient(t)
	publisher := events.NewPublisher(client.DB())
	creditMgr := credits.NewManager(client.Client)
	runs := services.NewRunService(client.Client, publisher, creditMgr)
	steps := services.NewStepService(client.Client)
	artifacts := services.NewArtifactService(client.Client)
	eventsSvc := services.NewEventService(client.Client)

	auth := NewAuthenticator(map[string]Identity{
		"tok-acme":  {TenantID: "acme", UserID: "alice"},
		"tok-other": {TenantID: "other", UserID: "bob"},
	})
	server := NewServer(Deps{
		DB:        client,
		Runs:      runs,
		Steps:     steps,
		Artifacts: artifacts,
		Events:    eventsSvc,
		Broker:    events.NewBroker(64),
		Auth:      auth,
	})
	return &apiHarness{
		client:    client,
		runs:      runs,
		steps:     steps,
		artifacts: artifacts,
		eventsSvc: eventsSvc,
		publisher: publisher,
		server:    server,
	}
}

func (h *apiHarness) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.server.Handler().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// newQueuedRun creates and enqueues a run directly through the services,
// for tests that exercise later lifecycle stages.
func (h *apiHarness) newQueuedRun(t *testing.T, tenant, prompt string) *ent.Run {
	t.Helper()
	ctx := context.Background()
	r, _, err := h.runs.CreateRun(ctx, &models.CreateRunRequest{
		TenantID: tenant,
		UserID:   "alice",
		Prompt:   prompt,
		Config:   models.DefaultRunConfig(),
	})
	require.NoError(t, err)
	r, err = h.runs.Enqueue(ctx, r)
	require.NoError(t, err)
	return r
}

func testPlan() *models.Plan {
	return &models.Plan{
		Version: 1,
		Goal:    "compile a market overview",
		Phases: []models.Phase{
			{ID: 1, Title: "Research", Capabilities: []string{models.CapabilityWebSearch}, Status: models.PhaseStatusExecuting},
			{ID: 2, Title: "Write report", Capabilities: []string{models.CapabilityDocumentGeneration}, Status: models.PhaseStatusPending},
		},
		CurrentPhaseID: 1,
	}
}

// toExecuting walks a queued run through claim and plan acceptance.
func (h *apiHarness) toExecuting(t *testing.T, r *ent.Run) *ent.Run {
	t.Helper()
	ctx := context.Background()
	lease := time.Now().Add(2 * time.Minute)
	r, err := h.runs.Transition(ctx, r, run.StatusPlanning, &services.TransitionOptions{
		Mutate: func(u *ent.RunUpdateOne) {
			u.SetWorkerID("worker-test").SetLeaseExpiresAt(lease)
		},
	})
	require.NoError(t, err)
	r, err = h.runs.Transition(ctx, r, run.StatusExecuting, &services.TransitionOptions{
		Plan: testPlan(),
	})
	require.NoError(t, err)
	return r
}

func TestAPI_CreateRunAndGet(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodPost, "/api/v1/runs", "tok-acme", jsonBody{
		"prompt": "summarize the quarterly numbers",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "queued", body["status"])
	assert.EqualValues(t, models.DefaultMaxCredits, body["credits_reserved"])
	runID := body["run_id"].(string)

	w = h.do(t, http.MethodGet, "/api/v1/runs/"+runID, "tok-acme", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, runID, decodeBody(t, w)["run_id"])

	// Cross-tenant reads look like missing runs.
	w = h.do(t, http.MethodGet, "/api/v1/runs/"+runID, "tok-other", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_CreateRunRequiresPrompt(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodPost, "/api/v1/runs", "tok-acme", jsonBody{"priority": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPI_CreateRunDedupsOnExternalID(t *testing.T) {
	h := newAPIHarness(t)

	first := h.do(t, http.MethodPost, "/api/v1/runs", "tok-acme", jsonBody{
		"prompt": "build the onboarding doc", "external_id": "ticket-77",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := h.do(t, http.MethodPost, "/api/v1/runs", "tok-acme", jsonBody{
		"prompt": "build the onboarding doc", "external_id": "ticket-77",
	})
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, decodeBody(t, first)["run_id"], decodeBody(t, second)["run_id"])
}

func TestAPI_ListRunsScopedToTenant(t *testing.T) {
	h := newAPIHarness(t)
	h.newQueuedRun(t, "acme", "job one")
	h.newQueuedRun(t, "acme", "job two")
	h.newQueuedRun(t, "other", "someone else's job")

	w := h.do(t, http.MethodGet, "/api/v1/runs?status=queued", "tok-acme", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 2, body["total_count"])
	assert.Len(t, body["runs"], 2)
}

func TestAPI_StartEnqueuesPendingRun(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()

	r, _, err := h.runs.CreateRun(ctx, &models.CreateRunRequest{
		TenantID: "acme",
		UserID:   "alice",
		Prompt:   "deferred job",
		Config:   models.DefaultRunConfig(),
	})
	require.NoError(t, err)
	require.Equal(t, run.StatusPending, r.Status)

	w := h.do(t, http.MethodPost, "/api/v1/runs/"+r.ID+"/start", "tok-acme", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "queued", decodeBody(t, w)["status"])

	// Starting an already-queued run is a no-op.
	w = h.do(t, http.MethodPost, "/api/v1/runs/"+r.ID+"/start", "tok-acme", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "queued", decodeBody(t, w)["status"])

	h.do(t, http.MethodPost, "/api/v1/runs/"+r.ID+"/cancel", "tok-acme", nil)
	w = h.do(t, http.MethodPost, "/api/v1/runs/"+r.ID+"/start", "tok-acme", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPI_CancelReleasesReservation(t *testing.T) {
	h := newAPIHarness(t)
	r := h.newQueuedRun(t, "acme", "doomed job")

	w := h.do(t, http.MethodPost, "/api/v1/runs/"+r.ID+"/cancel", "tok-acme", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "cancelled", decodeBody(t, w)["status"])

	res, err := h.client.CreditReservation.Query().
		Where(creditreservation.RunIDEQ(r.ID)).
		Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, creditreservation.StatusReleased, res.Status)

	// Cancelling a terminal run is not a legal edge.
	w = h.do(t, http.MethodPost, "/api/v1/runs/"+r.ID+"/cancel", "tok-acme", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAPI_PauseAndResume(t *testing.T) {
	h := newAPIHarness(t)
	r := h.toExecuting(t, h.newQueuedRun(t, "acme", "long job"))

	w := h.do(t, http.MethodPost, "/api/v1/runs/"+r.ID+"/pause", "tok-acme", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "paused", decodeBody(t, w)["status"])

	paused, err := h.runs.Get(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Nil(t, paused.WorkerID)
	assert.Nil(t, paused.LeaseExpiresAt)

	w = h.do(t, http.MethodPost, "/api/v1/runs/"+r.ID+"/resume", "tok-acme", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "executing", decodeBody(t, w)["status"])
}

func TestAPI_ResumeRecordsUserInput(t *testing.T) {
	h := newAPIHarness(t)
	r := h.toExecuting(t, h.newQueuedRun(t, "acme", "job with a question"))
	ctx := context.Background()

	_, err := h.runs.Transition(ctx, r, run.StatusWaitingUser, &services.TransitionOptions{
		Mutate: func(u *ent.RunUpdateOne) {
			u.ClearWorkerID().ClearLeaseExpiresAt()
		},
	})
	require.NoError(t, err)

	w := h.do(t, http.MethodPost, "/api/v1/runs/"+r.ID+"/resume", "tok-acme", jsonBody{
		"input": "use the EU dataset",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	msgs, err := h.eventsSvc.Messages(ctx, r.ID)
	require.NoError(t, err)
	require.NotEmpty(t, msgs)
	last := msgs[len(msgs)-1]
	assert.Equal(t, "user", last.Payload["role"])
	assert.Equal(t, "use the EU dataset", last.Payload["content"])
}

func TestAPI_RetryFailedRun(t *testing.T) {
	h := newAPIHarness(t)
	r := h.toExecuting(t, h.newQueuedRun(t, "acme", "flaky job"))
	ctx := context.Background()

	_, err := h.runs.Transition(ctx, r, run.StatusFailed, &services.TransitionOptions{
		Error: models.NewAgentError(models.CodeToolFailed, "downstream flaked"),
	})
	require.NoError(t, err)

	w := h.do(t, http.MethodPost, "/api/v1/runs/"+r.ID+"/retry", "tok-acme", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.NotEqual(t, r.ID, body["run_id"])
	assert.Equal(t, "queued", body["status"])
	assert.Equal(t, "flaky job", body["prompt"])
}

func TestAPI_StepsAndArtifacts(t *testing.T) {
	h := newAPIHarness(t)
	r := h.toExecuting(t, h.newQueuedRun(t, "acme", "producing job"))
	ctx := context.Background()

	st, _, err := h.steps.Create(ctx, &models.CreateStepRequest{
		RunID:          r.ID,
		PhaseID:        1,
		Sequence:       1,
		ToolName:       "web_search",
		ToolInput:      map[string]any{"query": "golang"},
		IdempotencyKey: services.IdempotencyKey(r.ID, 1, "web_search"),
	})
	require.NoError(t, err)
	_, err = h.steps.Start(ctx, st.ID)
	require.NoError(t, err)
	_, err = h.steps.Complete(ctx, st.ID, map[string]any{"hits": 3}, 120, 2, 0, 0)
	require.NoError(t, err)

	content := []byte("# Market overview\n")
	_, _, err = h.artifacts.Record(ctx, &models.RecordArtifactRequest{
		ContentHash:   services.HashContent(content),
		Type:          "document",
		MimeType:      "text/markdown",
		FileName:      "overview.md",
		Size:          int64(len(content)),
		StoragePath:   fmt.Sprintf("runs/%s/overview.md", r.ID),
		CreatedByRun:  r.ID,
		CreatedByStep: st.ID,
		CreatedByTool: "document_generate",
	})
	require.NoError(t, err)

	w := h.do(t, http.MethodGet, "/api/v1/runs/"+r.ID+"/steps", "tok-acme", nil)
	require.Equal(t, http.StatusOK, w.Code)
	steps := decodeBody(t, w)["steps"].([]any)
	require.Len(t, steps, 1)
	step := steps[0].(map[string]any)
	assert.Equal(t, "completed", step["status"])
	assert.EqualValues(t, 2, step["credits_consumed"])

	w = h.do(t, http.MethodGet, "/api/v1/runs/"+r.ID+"/artifacts", "tok-acme", nil)
	require.Equal(t, http.StatusOK, w.Code)
	arts := decodeBody(t, w)["artifacts"].([]any)
	require.Len(t, arts, 1)
	assert.Equal(t, "overview.md", arts[0].(map[string]any)["file_name"])
}

func TestAPI_EventStreamReplaysHistory(t *testing.T) {
	h := newAPIHarness(t)
	r := h.newQueuedRun(t, "acme", "short-lived job")

	// Cancelling publishes task_failed and stream_end; the SSE handler then
	// terminates after replaying them.
	w := h.do(t, http.MethodPost, "/api/v1/runs/"+r.ID+"/cancel", "tok-acme", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = h.do(t, http.MethodGet, "/api/v1/runs/"+r.ID+"/events", "tok-acme", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "id: 1\n")
	assert.Contains(t, body, "event: task_failed\n")
	assert.Contains(t, body, "event: stream_end\n")
}

func TestAPI_EventStreamResumesAfterLastEventID(t *testing.T) {
	h := newAPIHarness(t)
	r := h.newQueuedRun(t, "acme", "short-lived job")
	h.do(t, http.MethodPost, "/api/v1/runs/"+r.ID+"/cancel", "tok-acme", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs/"+r.ID+"/events", nil)
	req.Header.Set("Authorization", "Bearer tok-acme")
	req.Header.Set("Last-Event-ID", "1")
	w := httptest.NewRecorder()
	h.server.Handler().ServeHTTP(w, req)

	body := w.Body.String()
	assert.NotContains(t, body, "event: task_failed\n")
	assert.Contains(t, body, "event: stream_end\n")
}

func TestAPI_AuthRejectsMissingToken(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodGet, "/api/v1/runs", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = h.do(t, http.MethodGet, "/api/v1/runs", "tok-bogus", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPI_HealthCheck(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Contains(t, body, "database")
}

func TestAPI_QueueHealthWithoutPool(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodGet, "/api/v1/queue/health", "tok-acme", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["running"])
}

func TestAPI_ModelHealthEmptyWithoutTracker(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodGet, "/api/v1/system/models", "tok-acme", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["models"])
}

// jsonBody avoids importing gin into the tests just for request bodies.
type jsonBody = map[string]any
