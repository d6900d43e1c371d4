// Package events provides durable, ordered run progress events with
// real-time delivery via SSE and PostgreSQL NOTIFY/LISTEN for cross-pod
// distribution.
//
// Every event is assigned a per-run sequence number at persist time, so a
// consumer that reconnects with Last-Event-ID can replay the gap from the
// events table before switching to live delivery. The stream is one-way:
// consumers never write back on it.
package events

// Run lifecycle event types (stored in DB + NOTIFY).
const (
	EventTaskStarted    = "task_started"
	EventPlanCreated    = "plan_created"
	EventPhaseStarted   = "phase_started"
	EventPhaseCompleted = "phase_completed"
	EventToolStarted    = "tool_started"
	EventToolOutput     = "tool_output"
	EventToolCompleted  = "tool_completed"
	EventMessage        = "message"
	EventThinking       = "thinking"
	EventTaskCompleted  = "task_completed"
	EventTaskFailed     = "task_failed"

	// EventStreamEnd marks the end of a run's stream. Emitted after any
	// terminal event; consumers may close the connection on receipt.
	EventStreamEnd = "stream_end"

	// EventDropped is synthesized locally when a slow consumer's buffer
	// overflows. It is never persisted; payload carries the drop count.
	EventDropped = "dropped"
)

// RunChannel returns the NOTIFY channel name for a run's events.
// Format: "run:{run_id}"
func RunChannel(runID string) string {
	return "run:" + runID
}

// Envelope is the wire shape of one event, both on the NOTIFY channel and on
// the SSE stream.
type Envelope struct {
	RunID string `json:"run_id"`
	// Seq is strictly increasing per run. Doubles as the SSE event id.
	Seq       int            `json:"seq"`
	Type      string         `json:"type"`
	Payload   map[string]any `json:"payload,omitempty"`
	Timestamp string         `json:"timestamp"`

	// Truncated marks a NOTIFY envelope whose payload exceeded the
	// PostgreSQL limit; the full payload is in the events table.
	Truncated bool `json:"truncated,omitempty"`
}

// Terminal reports whether the event type ends the stream.
func Terminal(eventType string) bool {
	switch eventType {
	case EventTaskCompleted, EventTaskFailed:
		return true
	}
	return false
}
