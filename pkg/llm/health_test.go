package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthTracker_SlowSuccessDegrades(t *testing.T) {
	h := NewHealthTracker(nil)

	h.RecordSuccess("m1", "openai", 120)
	assert.Equal(t, StatusHealthy, h.Status("m1"))

	h.RecordSuccess("m1", "openai", 5001)
	assert.Equal(t, StatusDegraded, h.Status("m1"))
	assert.True(t, h.Available("m1"))
}

func TestHealthTracker_ConsecutiveFailuresUnhealthy(t *testing.T) {
	h := NewHealthTracker(nil)

	h.RecordFailure("m1", "openai")
	h.RecordFailure("m1", "openai")
	assert.Equal(t, StatusDegraded, h.Status("m1"))
	assert.True(t, h.Available("m1"))

	h.RecordFailure("m1", "openai")
	assert.Equal(t, StatusUnhealthy, h.Status("m1"))
	assert.False(t, h.Available("m1"))
}

func TestHealthTracker_SuccessResetsConsecutive(t *testing.T) {
	h := NewHealthTracker(nil)

	h.RecordFailure("m1", "openai")
	h.RecordFailure("m1", "openai")
	h.RecordSuccess("m1", "openai", 80)
	assert.Equal(t, StatusHealthy, h.Status("m1"))

	// Total failure count survives recovery; consecutive count does not.
	snap := h.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, 2, snap[0].FailureCount)
	assert.Equal(t, 0, snap[0].ConsecutiveFailures)

	// Two more failures after recovery stay below the unhealthy threshold.
	h.RecordFailure("m1", "openai")
	h.RecordFailure("m1", "openai")
	assert.Equal(t, StatusDegraded, h.Status("m1"))
}

func TestHealthTracker_CooldownAllowsTrialCall(t *testing.T) {
	h := NewHealthTracker(nil)

	for i := 0; i < 3; i++ {
		h.RecordFailure("m1", "openai")
	}
	require.False(t, h.Available("m1"))

	// Age the last failure past the cooldown; the model stays unhealthy but
	// may receive one trial call.
	past := time.Now().Add(-unhealthyCooldown)
	h.mu.Lock()
	h.states["m1"].LastFailureAt = &past
	h.mu.Unlock()

	assert.True(t, h.Available("m1"))
	assert.Equal(t, StatusUnhealthy, h.Status("m1"))

	// A failed trial restarts the cooldown.
	h.RecordFailure("m1", "openai")
	assert.False(t, h.Available("m1"))

	// A successful trial restores the model outright.
	h.RecordSuccess("m1", "openai", 40)
	assert.Equal(t, StatusHealthy, h.Status("m1"))
	assert.True(t, h.Available("m1"))
}

func TestHealthTracker_UnknownModelAvailable(t *testing.T) {
	h := NewHealthTracker(nil)
	assert.True(t, h.Available("never-seen"))
	assert.Equal(t, StatusHealthy, h.Status("never-seen"))
}

func TestHealthTracker_SnapshotSorted(t *testing.T) {
	h := NewHealthTracker(nil)
	h.RecordSuccess("zeta", "openai", 10)
	h.RecordSuccess("alpha", "google", 10)

	snap := h.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "alpha", snap[0].Model)
	assert.Equal(t, "zeta", snap[1].Model)
}
