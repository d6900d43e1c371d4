package events

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNotifyPayload(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	payload, _ := json.Marshal(map[string]any{"phase_id": 1, "name": "research"})

	raw, err := buildNotifyPayload("run-1", 7, EventPhaseStarted, payload, ts)
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(raw), &env))
	assert.Equal(t, "run-1", env.RunID)
	assert.Equal(t, 7, env.Seq)
	assert.Equal(t, EventPhaseStarted, env.Type)
	assert.Equal(t, "research", env.Payload["name"])
	assert.False(t, env.Truncated)
}

func TestBuildNotifyPayload_TruncatesOversized(t *testing.T) {
	big, _ := json.Marshal(map[string]any{
		"output": strings.Repeat("x", 10_000),
	})

	raw, err := buildNotifyPayload("run-1", 3, EventToolOutput, big, time.Now())
	require.NoError(t, err)
	assert.LessOrEqual(t, len(raw), notifyLimit)

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(raw), &env))
	assert.True(t, env.Truncated)
	assert.Nil(t, env.Payload)
	// Routing fields survive so the consumer can fetch the full event.
	assert.Equal(t, "run-1", env.RunID)
	assert.Equal(t, 3, env.Seq)
}

func TestBuildNotifyPayload_NullPayload(t *testing.T) {
	raw, err := buildNotifyPayload("run-1", 1, EventStreamEnd, []byte("null"), time.Now())
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(raw), &env))
	assert.Equal(t, EventStreamEnd, env.Type)
	assert.Nil(t, env.Payload)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "event_run_id_seq" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(nil))
}

func TestTerminal(t *testing.T) {
	assert.True(t, Terminal(EventTaskCompleted))
	assert.True(t, Terminal(EventTaskFailed))
	assert.False(t, Terminal(EventStreamEnd))
	assert.False(t, Terminal(EventToolOutput))
}

func TestRunChannel(t *testing.T) {
	assert.Equal(t, "run:abc-123", RunChannel("abc-123"))
}
