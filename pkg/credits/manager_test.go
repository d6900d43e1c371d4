package credits

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskfleet/maestro/ent"
	"github.com/taskfleet/maestro/ent/billingentry"
	"github.com/taskfleet/maestro/ent/creditreservation"
	"github.com/taskfleet/maestro/pkg/models"
	testdb "github.com/taskfleet/maestro/test/database"
)

func createTestRun(t *testing.T, client *ent.Client, id string) *ent.Run {
	t.Helper()
	r, err := client.Run.Create().
		SetID(id).
		SetTenantID("acme").
		SetUserID("u-1").
		SetPrompt("test prompt").
		SetPromptHash("hash").
		SetConfig(map[string]interface{}{}).
		Save(context.Background())
	require.NoError(t, err)
	return r
}

func TestManager_ReserveAndConsume(t *testing.T) {
	client := testdb.NewTestClient(t)
	mgr := NewManager(client.Client)
	ctx := context.Background()

	createTestRun(t, client.Client, "run-1")

	res, err := mgr.Reserve(ctx, "run-1", "acme", 50)
	require.NoError(t, err)
	assert.Equal(t, 50, res.Amount)
	assert.Equal(t, 0, res.Consumed)
	assert.Equal(t, creditreservation.StatusActive, res.Status)

	r, err := client.Run.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 50, r.CreditsReserved)

	require.NoError(t, mgr.Consume(ctx, res.ID, 10))
	require.NoError(t, mgr.Consume(ctx, res.ID, 12))

	res, err = mgr.ActiveReservation(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 22, res.Consumed)

	r, err = client.Run.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 22, r.CreditsConsumed)
}

func TestManager_ConsumeNeverExceedsReserved(t *testing.T) {
	client := testdb.NewTestClient(t)
	mgr := NewManager(client.Client)
	ctx := context.Background()

	createTestRun(t, client.Client, "run-1")
	res, err := mgr.Reserve(ctx, "run-1", "acme", 10)
	require.NoError(t, err)

	require.NoError(t, mgr.Consume(ctx, res.ID, 8))

	err = mgr.Consume(ctx, res.ID, 5)
	require.Error(t, err)
	assert.Equal(t, models.CodeInsufficientCredits, models.AsAgentError(err).Code)

	// The failed consume must not partially apply.
	res, err = mgr.ActiveReservation(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 8, res.Consumed)
}

func TestManager_ConsumeConcurrent(t *testing.T) {
	client := testdb.NewTestClient(t)
	mgr := NewManager(client.Client)
	ctx := context.Background()

	createTestRun(t, client.Client, "run-1")
	res, err := mgr.Reserve(ctx, "run-1", "acme", 10)
	require.NoError(t, err)

	// 20 concurrent consumes of 1; only 10 can succeed.
	var wg sync.WaitGroup
	errs := make([]error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = mgr.Consume(ctx, res.ID, 1)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 10, succeeded)

	res, err = mgr.ActiveReservation(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 10, res.Consumed)
}

func TestManager_FinalizeWritesLedger(t *testing.T) {
	client := testdb.NewTestClient(t)
	mgr := NewManager(client.Client)
	ctx := context.Background()

	createTestRun(t, client.Client, "run-1")
	res, err := mgr.Reserve(ctx, "run-1", "acme", 50)
	require.NoError(t, err)
	require.NoError(t, mgr.Consume(ctx, res.ID, 22))

	require.NoError(t, mgr.Finalize(ctx, res.ID, ReasonCompleted))

	got, err := client.CreditReservation.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, creditreservation.StatusConsumed, got.Status)
	assert.NotNil(t, got.FinalizedAt)

	entries, err := client.BillingEntry.Query().
		Where(billingentry.RunIDEQ("run-1")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byType := map[billingentry.EntryType]int{}
	for _, e := range entries {
		byType[e.EntryType] = e.Amount
	}
	assert.Equal(t, 22, byType[billingentry.EntryTypeDebit])
	assert.Equal(t, 28, byType[billingentry.EntryTypeRefund])

	// Exactly one of finalize/release per reservation.
	err = mgr.Finalize(ctx, res.ID, ReasonCompleted)
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
	err = mgr.Release(ctx, res.ID, ReasonCancelled)
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
}

func TestManager_ReleaseRefundsUnused(t *testing.T) {
	client := testdb.NewTestClient(t)
	mgr := NewManager(client.Client)
	ctx := context.Background()

	createTestRun(t, client.Client, "run-1")
	res, err := mgr.Reserve(ctx, "run-1", "acme", 30)
	require.NoError(t, err)
	require.NoError(t, mgr.Consume(ctx, res.ID, 4))

	require.NoError(t, mgr.Release(ctx, res.ID, ReasonCancelled))

	got, err := client.CreditReservation.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, creditreservation.StatusReleased, got.Status)

	entries, err := client.BillingEntry.Query().
		Where(billingentry.RunIDEQ("run-1")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byType := map[billingentry.EntryType]int{}
	for _, e := range entries {
		byType[e.EntryType] = e.Amount
	}
	assert.Equal(t, 4, byType[billingentry.EntryTypeDebit])
	assert.Equal(t, 26, byType[billingentry.EntryTypeRefund])
}

func TestManager_DoubleReserveRejected(t *testing.T) {
	client := testdb.NewTestClient(t)
	mgr := NewManager(client.Client)
	ctx := context.Background()

	createTestRun(t, client.Client, "run-1")
	_, err := mgr.Reserve(ctx, "run-1", "acme", 10)
	require.NoError(t, err)

	_, err = mgr.Reserve(ctx, "run-1", "acme", 10)
	require.Error(t, err)
}

func TestManager_ReserveRejectsNonPositive(t *testing.T) {
	client := testdb.NewTestClient(t)
	mgr := NewManager(client.Client)

	_, err := mgr.Reserve(context.Background(), "run-1", "acme", 0)
	require.Error(t, err)
	assert.Equal(t, models.CodeInvalidRequest, models.AsAgentError(err).Code)
}

func TestSettleReasonForStatus(t *testing.T) {
	assert.Equal(t, ReasonCompleted, SettleReasonForStatus("completed"))
	assert.Equal(t, ReasonCancelled, SettleReasonForStatus("cancelled"))
	assert.Equal(t, ReasonTimeout, SettleReasonForStatus("timeout"))
	assert.Equal(t, ReasonFailed, SettleReasonForStatus("failed"))
}
