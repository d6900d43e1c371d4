package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskfleet/maestro/ent"
	"github.com/taskfleet/maestro/ent/step"
	"github.com/taskfleet/maestro/pkg/models"
	testdb "github.com/taskfleet/maestro/test/database"
)

func seedRun(t *testing.T, client *ent.Client, id string) {
	t.Helper()
	_, err := client.Run.Create().
		SetID(id).
		SetTenantID("acme").
		SetUserID("u-1").
		SetPrompt("p").
		SetPromptHash("h").
		SetConfig(map[string]interface{}{}).
		Save(context.Background())
	require.NoError(t, err)
}

func stepReq(runID string, seq int, tool string) *models.CreateStepRequest {
	return &models.CreateStepRequest{
		RunID:          runID,
		PhaseID:        1,
		Sequence:       seq,
		ToolName:       tool,
		ToolInput:      map[string]any{"q": "x"},
		IdempotencyKey: IdempotencyKey(runID, seq, tool),
	}
}

func TestStepService_CreateAndComplete(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStepService(client.Client)
	ctx := context.Background()
	seedRun(t, client.Client, "run-1")

	st, reused, err := svc.Create(ctx, stepReq("run-1", 1, "web_search"))
	require.NoError(t, err)
	assert.False(t, reused)
	assert.Equal(t, step.StatusPending, st.Status)

	st, err = svc.Start(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, step.StatusRunning, st.Status)
	assert.NotNil(t, st.StartedAt)

	st, err = svc.Complete(ctx, st.ID, map[string]any{"answer": 42}, 120, 1, 100, 50)
	require.NoError(t, err)
	assert.Equal(t, step.StatusCompleted, st.Status)
	assert.Equal(t, 120, *st.DurationMs)
	assert.Equal(t, 1, st.CreditsConsumed)
}

func TestStepService_IdempotentReplayReusesOutput(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStepService(client.Client)
	ctx := context.Background()
	seedRun(t, client.Client, "run-1")

	st, _, err := svc.Create(ctx, stepReq("run-1", 1, "web_search"))
	require.NoError(t, err)
	_, err = svc.Complete(ctx, st.ID, map[string]any{"answer": 42}, 10, 0, 0, 0)
	require.NoError(t, err)

	// Same key after a lease re-acquisition: prior output is reused.
	again, reused, err := svc.Create(ctx, stepReq("run-1", 1, "web_search"))
	require.NoError(t, err)
	assert.True(t, reused)
	assert.Equal(t, st.ID, again.ID)
	assert.Equal(t, float64(42), again.ToolOutput["answer"])
}

func TestStepService_ReplayOfUnfinishedStepNotReused(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStepService(client.Client)
	ctx := context.Background()
	seedRun(t, client.Client, "run-1")

	st, _, err := svc.Create(ctx, stepReq("run-1", 1, "web_search"))
	require.NoError(t, err)

	// The step never finished; the caller must re-execute it.
	again, reused, err := svc.Create(ctx, stepReq("run-1", 1, "web_search"))
	require.NoError(t, err)
	assert.False(t, reused)
	assert.Equal(t, st.ID, again.ID)
}

func TestStepService_FailIncrementsRetryCount(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStepService(client.Client)
	ctx := context.Background()
	seedRun(t, client.Client, "run-1")

	st, _, err := svc.Create(ctx, stepReq("run-1", 1, "shell_exec"))
	require.NoError(t, err)

	st, err = svc.Fail(ctx, st.ID, models.NewRecoverableError(models.CodeToolTimeout, "too slow"), 30000)
	require.NoError(t, err)
	assert.Equal(t, step.StatusFailed, st.Status)
	assert.Equal(t, 1, st.RetryCount)
	assert.Equal(t, models.CodeToolTimeout, st.Error["code"])
	assert.Equal(t, true, st.Error["recoverable"])
}

func TestStepService_HistoryOrderedBySequence(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStepService(client.Client)
	ctx := context.Background()
	seedRun(t, client.Client, "run-1")

	for seq := 1; seq <= 3; seq++ {
		_, _, err := svc.Create(ctx, stepReq("run-1", seq, "web_search"))
		require.NoError(t, err)
	}

	history, err := svc.History(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, 1, history[0].Sequence)
	assert.Equal(t, 3, history[2].Sequence)
}

func TestStepService_SequenceSlotWinsOverReplayedDecision(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStepService(client.Client)
	ctx := context.Background()
	seedRun(t, client.Client, "run-1")

	st, _, err := svc.Create(ctx, stepReq("run-1", 1, "web_search"))
	require.NoError(t, err)
	_, err = svc.Complete(ctx, st.ID, map[string]any{"answer": 42}, 10, 0, 0, 0)
	require.NoError(t, err)

	// A replayed lease decides a different tool for the same sequence. The
	// durable step occupying the slot is reused, not overwritten.
	again, reused, err := svc.Create(ctx, stepReq("run-1", 1, "news_search"))
	require.NoError(t, err)
	assert.True(t, reused)
	assert.Equal(t, st.ID, again.ID)
	assert.Equal(t, "web_search", again.ToolName)
}

func TestIdempotencyKeyDeterministic(t *testing.T) {
	k1 := IdempotencyKey("run-1", 3, "web_search")
	k2 := IdempotencyKey("run-1", 3, "web_search")
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, IdempotencyKey("run-1", 4, "web_search"))
	assert.NotEqual(t, k1, IdempotencyKey("run-1", 3, "file_read"))
	assert.Len(t, k1, 64)
}
