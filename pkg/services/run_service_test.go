package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskfleet/maestro/ent/creditreservation"
	"github.com/taskfleet/maestro/ent/run"
	"github.com/taskfleet/maestro/pkg/credits"
	"github.com/taskfleet/maestro/pkg/database"
	"github.com/taskfleet/maestro/pkg/events"
	"github.com/taskfleet/maestro/pkg/models"
	testdb "github.com/taskfleet/maestro/test/database"
)

func newRunService(t *testing.T) (*RunService, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	publisher := events.NewPublisher(client.DB())
	creditMgr := credits.NewManager(client.Client)
	return NewRunService(client.Client, publisher, creditMgr), client
}

func createReq(prompt string) *models.CreateRunRequest {
	return &models.CreateRunRequest{
		TenantID: "acme",
		UserID:   "u-1",
		Prompt:   prompt,
		Config:   models.DefaultRunConfig(),
	}
}

func TestRunService_CreateRunDefaults(t *testing.T) {
	svc, _ := newRunService(t)
	ctx := context.Background()

	r, created, err := svc.CreateRun(ctx, createReq("do the thing"))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, run.StatusPending, r.Status)
	assert.Equal(t, HashPrompt("do the thing"), r.PromptHash)
	assert.Equal(t, int64(1), r.Version)

	cfg, err := models.RunConfigFromMap(r.Config)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultMaxCredits, cfg.MaxCredits)
	assert.Equal(t, models.DefaultModel, cfg.Model)
}

func TestRunService_ExternalIDDedup(t *testing.T) {
	svc, _ := newRunService(t)
	ctx := context.Background()

	req := createReq("idempotent create")
	req.ExternalID = "token-1"

	first, created, err := svc.CreateRun(ctx, req)
	require.NoError(t, err)
	assert.True(t, created)

	// Re-submitting the same token returns the original run.
	second, created, err := svc.CreateRun(ctx, req)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	// A different tenant may reuse the token.
	other := createReq("idempotent create")
	other.ExternalID = "token-1"
	other.TenantID = "globex"
	third, created, err := svc.CreateRun(ctx, other)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestRunService_EnqueueReservesAndQueues(t *testing.T) {
	svc, client := newRunService(t)
	ctx := context.Background()

	r, _, err := svc.CreateRun(ctx, createReq("queue me"))
	require.NoError(t, err)

	r, err = svc.Enqueue(ctx, r)
	require.NoError(t, err)
	assert.Equal(t, run.StatusQueued, r.Status)
	assert.Equal(t, models.DefaultMaxCredits, r.CreditsReserved)
	assert.NotNil(t, r.TimeoutAt)

	res, err := client.CreditReservation.Query().
		Where(creditreservation.RunIDEQ(r.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, creditreservation.StatusActive, res.Status)
}

func TestRunService_QueuedGuardRequiresReservation(t *testing.T) {
	svc, _ := newRunService(t)
	ctx := context.Background()

	r, _, err := svc.CreateRun(ctx, createReq("no credits"))
	require.NoError(t, err)

	_, err = svc.Transition(ctx, r, run.StatusQueued, nil)
	require.Error(t, err)
	assert.Equal(t, models.CodeInvalidTransition, models.AsAgentError(err).Code)
}

func TestRunService_IllegalEdgeRejected(t *testing.T) {
	svc, _ := newRunService(t)
	ctx := context.Background()

	r, _, err := svc.CreateRun(ctx, createReq("bad edge"))
	require.NoError(t, err)

	_, err = svc.Transition(ctx, r, run.StatusExecuting, nil)
	require.Error(t, err)
	assert.Equal(t, models.CodeInvalidTransition, models.AsAgentError(err).Code)
}

func TestRunService_StaleVersionConcurrentUpdate(t *testing.T) {
	svc, _ := newRunService(t)
	ctx := context.Background()

	r, _, err := svc.CreateRun(ctx, createReq("race"))
	require.NoError(t, err)
	r, err = svc.Enqueue(ctx, r)
	require.NoError(t, err)

	// Another actor moves the run first.
	_, err = svc.Transition(ctx, r, run.StatusCancelled, nil)
	require.NoError(t, err)

	// Our copy of the run is now stale.
	_, err = svc.Transition(ctx, r, run.StatusPlanning, nil)
	require.Error(t, err)
	assert.Equal(t, models.CodeConcurrentUpdate, models.AsAgentError(err).Code)
}

func TestRunService_ExecutingRequiresPlan(t *testing.T) {
	svc, _ := newRunService(t)
	ctx := context.Background()

	r, _, err := svc.CreateRun(ctx, createReq("plan guard"))
	require.NoError(t, err)
	r, err = svc.Enqueue(ctx, r)
	require.NoError(t, err)
	r, err = svc.Transition(ctx, r, run.StatusPlanning, nil)
	require.NoError(t, err)

	_, err = svc.Transition(ctx, r, run.StatusExecuting, nil)
	require.Error(t, err)
	assert.Equal(t, models.CodeInvalidTransition, models.AsAgentError(err).Code)

	plan := &models.Plan{
		Version: 1, Goal: "g", CurrentPhaseID: 1,
		Phases: []models.Phase{
			{ID: 1, Title: "Research", Status: models.PhaseStatusPending},
			{ID: 2, Title: "Deliver", Status: models.PhaseStatusPending},
		},
	}
	r, err = svc.Transition(ctx, r, run.StatusExecuting, &TransitionOptions{Plan: plan})
	require.NoError(t, err)
	assert.Equal(t, run.StatusExecuting, r.Status)
	assert.NotEmpty(t, r.Plan)
	assert.NotNil(t, r.StartedAt)

	stored, err := models.PlanFromMap(r.Plan)
	require.NoError(t, err)
	require.Len(t, stored.Phases, 2)
	assert.Equal(t, "Research", stored.Phases[0].Title)
}

func TestRunService_TerminalSettlesCreditsAndEndsStream(t *testing.T) {
	svc, client := newRunService(t)
	ctx := context.Background()

	r, _, err := svc.CreateRun(ctx, createReq("cancel me"))
	require.NoError(t, err)
	r, err = svc.Enqueue(ctx, r)
	require.NoError(t, err)

	r, err = svc.Transition(ctx, r, run.StatusCancelled, nil)
	require.NoError(t, err)
	assert.NotNil(t, r.CompletedAt)

	// Unused reservation released.
	res, err := client.CreditReservation.Query().
		Where(creditreservation.RunIDEQ(r.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, creditreservation.StatusReleased, res.Status)

	// Terminal event followed by exactly one stream_end.
	evts, err := NewEventService(client.Client).Since(ctx, r.ID, 0)
	require.NoError(t, err)
	require.Len(t, evts, 2)
	assert.Equal(t, events.EventTaskFailed, evts[0].Type)
	assert.Equal(t, "cancelled", evts[0].Payload["status"])
	assert.Equal(t, events.EventStreamEnd, evts[1].Type)
}

func TestRunService_CompletedFinalizesReservation(t *testing.T) {
	svc, client := newRunService(t)
	ctx := context.Background()
	creditMgr := credits.NewManager(client.Client)

	r, _, err := svc.CreateRun(ctx, createReq("finish me"))
	require.NoError(t, err)
	r, err = svc.Enqueue(ctx, r)
	require.NoError(t, err)
	r, err = svc.Transition(ctx, r, run.StatusPlanning, nil)
	require.NoError(t, err)

	plan := &models.Plan{
		Version: 1, Goal: "g", CurrentPhaseID: 1,
		Phases: []models.Phase{
			{ID: 1, Title: "Work", Status: models.PhaseStatusCompleted},
			{ID: 2, Title: "Deliver", Status: models.PhaseStatusCompleted},
		},
	}
	r, err = svc.Transition(ctx, r, run.StatusExecuting, &TransitionOptions{Plan: plan})
	require.NoError(t, err)

	res, err := creditMgr.ActiveReservation(ctx, r.ID)
	require.NoError(t, err)
	require.NoError(t, creditMgr.Consume(ctx, res.ID, 22))

	// Consume bumped the version.
	r, err = svc.Get(ctx, r.ID)
	require.NoError(t, err)
	r, err = svc.Transition(ctx, r, run.StatusCompleted, nil)
	require.NoError(t, err)

	got, err := client.CreditReservation.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, creditreservation.StatusConsumed, got.Status)

	evts, err := NewEventService(client.Client).Since(ctx, r.ID, 0)
	require.NoError(t, err)
	require.Len(t, evts, 2)
	assert.Equal(t, events.EventTaskCompleted, evts[0].Type)
	assert.Equal(t, events.EventStreamEnd, evts[1].Type)
}

func TestRunService_RetryClonesFailedRun(t *testing.T) {
	svc, _ := newRunService(t)
	ctx := context.Background()

	r, _, err := svc.CreateRun(ctx, createReq("flaky job"))
	require.NoError(t, err)

	// Retry is only for failed runs.
	_, err = svc.Retry(ctx, r.ID)
	require.Error(t, err)

	r, err = svc.Transition(ctx, r, run.StatusFailed, &TransitionOptions{
		Error: models.NewAgentError(models.CodePlanningFailed, "no plan"),
	})
	require.NoError(t, err)

	clone, err := svc.Retry(ctx, r.ID)
	require.NoError(t, err)
	assert.NotEqual(t, r.ID, clone.ID)
	assert.Equal(t, r.Prompt, clone.Prompt)
	assert.Equal(t, run.StatusPending, clone.Status)
}

func TestRunService_ResumeRecordsUserInput(t *testing.T) {
	svc, client := newRunService(t)
	ctx := context.Background()

	r, _, err := svc.CreateRun(ctx, createReq("which dataset?"))
	require.NoError(t, err)
	r, err = svc.Enqueue(ctx, r)
	require.NoError(t, err)
	r, err = svc.Transition(ctx, r, run.StatusPlanning, nil)
	require.NoError(t, err)

	plan := &models.Plan{
		Version: 1, Goal: "g", CurrentPhaseID: 1,
		Phases: []models.Phase{
			{ID: 1, Title: "Ask", Status: models.PhaseStatusExecuting},
			{ID: 2, Title: "Deliver", Status: models.PhaseStatusPending},
		},
	}
	r, err = svc.Transition(ctx, r, run.StatusExecuting, &TransitionOptions{Plan: plan})
	require.NoError(t, err)
	r, err = svc.Transition(ctx, r, run.StatusWaitingUser, nil)
	require.NoError(t, err)

	resumed, err := svc.Resume(ctx, r.ID, "dataset A")
	require.NoError(t, err)
	assert.Equal(t, run.StatusExecuting, resumed.Status)

	msgs, err := NewEventService(client.Client).Messages(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "user", msgs[0].Payload["role"])
	assert.Equal(t, "dataset A", msgs[0].Payload["content"])

	// A run that is not waiting cannot be resumed.
	_, err = svc.Resume(ctx, r.ID, "again")
	require.Error(t, err)
}

func TestRunService_List(t *testing.T) {
	svc, _ := newRunService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _, err := svc.CreateRun(ctx, createReq("job"))
		require.NoError(t, err)
	}

	resp, err := svc.List(ctx, models.RunFilters{TenantID: "acme", PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalCount)
	assert.Len(t, resp.Runs, 2)

	resp, err = svc.List(ctx, models.RunFilters{TenantID: "acme", Status: "pending", Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Runs, 1)

	resp, err = svc.List(ctx, models.RunFilters{TenantID: "globex"})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalCount)
}
