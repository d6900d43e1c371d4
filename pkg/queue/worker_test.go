package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskfleet/maestro/ent"
	"github.com/taskfleet/maestro/ent/creditreservation"
	"github.com/taskfleet/maestro/ent/run"
	"github.com/taskfleet/maestro/pkg/config"
	"github.com/taskfleet/maestro/pkg/credits"
	"github.com/taskfleet/maestro/pkg/database"
	"github.com/taskfleet/maestro/pkg/events"
	"github.com/taskfleet/maestro/pkg/models"
	"github.com/taskfleet/maestro/pkg/services"
	testdb "github.com/taskfleet/maestro/test/database"
)

// recordingExecutor captures which runs it was handed and replies per script.
type recordingExecutor struct {
	mu   sync.Mutex
	runs []string
	err  error
}

func (e *recordingExecutor) Execute(_ context.Context, r *ent.Run) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.runs = append(e.runs, r.ID)
	return e.err
}

type queueHarness struct {
	client *database.Client
	runs   *services.RunService
	cfg    *config.QueueConfig
	exec   *recordingExecutor
}

func newQueueHarness(t *testing.T) *queueHarness {
	t.Helper()
	client := testdb.NewTestClient(t)
	publisher := events.NewPublisher(client.DB())
	creditMgr := credits.NewManager(client.Client)
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 10 * time.Millisecond
	cfg.PollIntervalJitter = 0
	return &queueHarness{
		client: client,
		runs:   services.NewRunService(client.Client, publisher, creditMgr),
		cfg:    cfg,
		exec:   &recordingExecutor{},
	}
}

func (h *queueHarness) worker(id string) *Worker {
	return NewWorker(id, h.client.Client, h.exec, h.cfg)
}

func (h *queueHarness) enqueue(t *testing.T, prompt string, priority int) *ent.Run {
	t.Helper()
	ctx := context.Background()
	r, _, err := h.runs.CreateRun(ctx, &models.CreateRunRequest{
		TenantID: "acme",
		UserID:   "u-1",
		Prompt:   prompt,
		Config:   models.DefaultRunConfig(),
		Priority: priority,
	})
	require.NoError(t, err)
	r, err = h.runs.Enqueue(ctx, r)
	require.NoError(t, err)
	return r
}

func TestWorker_ClaimOrdersByPriorityThenAge(t *testing.T) {
	h := newQueueHarness(t)
	ctx := context.Background()

	low := h.enqueue(t, "routine job", 0)
	high := h.enqueue(t, "urgent job", 5)

	w := h.worker("w-1")
	first, err := w.Claim(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, high.ID, first.ID)
	assert.Equal(t, run.StatusPlanning, first.Status)
	assert.Equal(t, "w-1", *first.WorkerID)
	require.NotNil(t, first.LeaseExpiresAt)
	assert.True(t, first.LeaseExpiresAt.After(time.Now()))
	assert.Equal(t, high.Version+1, first.Version)

	second, err := w.Claim(ctx)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, low.ID, second.ID)
}

func TestWorker_ClaimEmptyQueue(t *testing.T) {
	h := newQueueHarness(t)

	r, err := h.worker("w-1").Claim(context.Background())
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestWorker_ClaimPicksUpResumedRun(t *testing.T) {
	h := newQueueHarness(t)
	ctx := context.Background()

	r := h.enqueue(t, "resumed job", 0)
	// A resumed run sits in executing with its plan stored and no lease.
	plan := map[string]any{"version": 1, "goal": "resumed job", "current_phase_id": 1,
		"phases": []any{map[string]any{"id": 1, "title": "Work", "status": "executing"},
			map[string]any{"id": 2, "title": "Deliver", "status": "pending"}}}
	require.NoError(t, h.client.Run.UpdateOneID(r.ID).
		SetStatus(run.StatusExecuting).
		SetPlan(plan).
		Exec(ctx))

	claimed, err := h.worker("w-1").Claim(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, r.ID, claimed.ID)
	// The claim leases it without rewinding to planning.
	assert.Equal(t, run.StatusExecuting, claimed.Status)
	require.NotNil(t, claimed.LeaseExpiresAt)
}

func TestWorker_ClaimSkipsLeasedRuns(t *testing.T) {
	h := newQueueHarness(t)
	ctx := context.Background()

	r := h.enqueue(t, "already owned", 0)
	require.NoError(t, h.client.Run.UpdateOneID(r.ID).
		SetStatus(run.StatusExecuting).
		SetWorkerID("other-worker").
		SetLeaseExpiresAt(time.Now().Add(time.Minute)).
		Exec(ctx))

	claimed, err := h.worker("w-1").Claim(ctx)
	require.NoError(t, err)
	assert.Nil(t, claimed)
}

func TestWorker_ClaimHonorsGlobalConcurrencyCap(t *testing.T) {
	h := newQueueHarness(t)
	h.cfg.MaxConcurrentRuns = 1
	ctx := context.Background()

	busy := h.enqueue(t, "occupying the only slot", 0)
	require.NoError(t, h.client.Run.UpdateOneID(busy.ID).
		SetStatus(run.StatusExecuting).
		SetWorkerID("other-worker").
		SetLeaseExpiresAt(time.Now().Add(time.Minute)).
		Exec(ctx))
	h.enqueue(t, "must wait", 0)

	claimed, err := h.worker("w-1").Claim(ctx)
	require.NoError(t, err)
	assert.Nil(t, claimed, "cap reached, nothing may be claimed")
}

func TestWorker_ProcessRequeuesOnExecutorError(t *testing.T) {
	h := newQueueHarness(t)
	h.exec.err = errors.New("database connection lost")
	ctx := context.Background()

	r := h.enqueue(t, "flaky infra", 0)
	w := h.worker("w-1")
	claimed, err := w.Claim(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed)

	w.process(ctx, claimed)

	after, err := h.runs.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusQueued, after.Status)
	assert.Nil(t, after.WorkerID)
	assert.Nil(t, after.LeaseExpiresAt)
	assert.Equal(t, 1, after.RetryCount)
	assert.Equal(t, []string{r.ID}, h.exec.runs)
}

func TestWorker_ProcessLeavesLeaseOnShutdown(t *testing.T) {
	h := newQueueHarness(t)
	h.exec.err = context.Canceled
	ctx := context.Background()

	r := h.enqueue(t, "interrupted", 0)
	w := h.worker("w-1")
	claimed, err := w.Claim(ctx)
	require.NoError(t, err)

	w.process(ctx, claimed)

	after, err := h.runs.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusPlanning, after.Status)
	require.NotNil(t, after.WorkerID)
	assert.Equal(t, "w-1", *after.WorkerID)
	assert.NotNil(t, after.LeaseExpiresAt, "lease stays for the reaper")
}

func TestReaper_RequeuesExpiredLease(t *testing.T) {
	h := newQueueHarness(t)
	ctx := context.Background()

	r := h.enqueue(t, "worker died", 0)
	require.NoError(t, h.client.Run.UpdateOneID(r.ID).
		SetStatus(run.StatusPlanning).
		SetWorkerID("dead-worker").
		SetLeaseExpiresAt(time.Now().Add(-time.Minute)).
		Exec(ctx))

	rp := NewReaper(h.client.Client, h.runs, h.cfg)
	requeued, failed, timedOut, err := rp.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, requeued)
	assert.Zero(t, failed)
	assert.Zero(t, timedOut)

	after, err := h.runs.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusQueued, after.Status)
	assert.Nil(t, after.WorkerID)
	assert.Nil(t, after.LeaseExpiresAt)
	assert.Equal(t, 1, after.RetryCount)
}

func TestReaper_FailsRunAfterRetryBudget(t *testing.T) {
	h := newQueueHarness(t)
	ctx := context.Background()

	r := h.enqueue(t, "keeps dying", 0)
	require.NoError(t, h.client.Run.UpdateOneID(r.ID).
		SetStatus(run.StatusExecuting).
		SetWorkerID("dead-worker").
		SetLeaseExpiresAt(time.Now().Add(-time.Minute)).
		SetRetryCount(3).
		Exec(ctx))

	rp := NewReaper(h.client.Client, h.runs, h.cfg)
	requeued, failed, _, err := rp.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, requeued)
	assert.Equal(t, 1, failed)

	after, err := h.runs.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, after.Status)
	assert.Equal(t, models.CodeLeaseExpiredExceeded, after.Error["code"])

	// Terminal settlement released the reservation.
	res, err := h.client.CreditReservation.Query().
		Where(creditreservation.RunIDEQ(r.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, creditreservation.StatusReleased, res.Status)
}

func TestReaper_TimesOutOverdueRuns(t *testing.T) {
	h := newQueueHarness(t)
	ctx := context.Background()

	// An unanswered question does not suspend the deadline.
	waiting := h.enqueue(t, "asked and forgotten", 0)
	require.NoError(t, h.client.Run.UpdateOneID(waiting.ID).
		SetStatus(run.StatusWaitingUser).
		SetTimeoutAt(time.Now().Add(-time.Second)).
		Exec(ctx))

	// A leased run past its deadline belongs to its supervisor, not the reaper.
	leased := h.enqueue(t, "still being worked", 0)
	require.NoError(t, h.client.Run.UpdateOneID(leased.ID).
		SetStatus(run.StatusExecuting).
		SetWorkerID("w-9").
		SetLeaseExpiresAt(time.Now().Add(time.Minute)).
		SetTimeoutAt(time.Now().Add(-time.Second)).
		Exec(ctx))

	rp := NewReaper(h.client.Client, h.runs, h.cfg)
	_, _, timedOut, err := rp.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, timedOut)

	after, err := h.runs.Get(ctx, waiting.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusTimeout, after.Status)
	assert.Equal(t, models.CodeRunTimeout, after.Error["code"])

	untouched, err := h.runs.Get(ctx, leased.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusExecuting, untouched.Status)
}

func TestPool_StartStopAndHealth(t *testing.T) {
	h := newQueueHarness(t)
	h.cfg.GracefulShutdownTimeout = 2 * time.Second
	ctx := context.Background()

	h.enqueue(t, "work item", 0)

	pool := NewPool(h.cfg, h.client.Client, h.runs, h.exec)
	require.NoError(t, pool.Start(ctx))
	require.Error(t, pool.Start(ctx), "double start is rejected")

	// The single worker should claim and hand off the run.
	require.Eventually(t, func() bool {
		h.exec.mu.Lock()
		defer h.exec.mu.Unlock()
		return len(h.exec.runs) == 1
	}, 5*time.Second, 20*time.Millisecond)

	health, err := pool.Health(ctx)
	require.NoError(t, err)
	assert.True(t, health.Running)
	assert.Equal(t, 1, health.Workers)

	pool.Stop()
	health, err = pool.Health(ctx)
	require.NoError(t, err)
	assert.False(t, health.Running)
}
