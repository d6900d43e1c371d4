// Package tools implements the tool router: a name → handler registry with a
// uniform result envelope, per-tool timeouts, sliding-window rate limits, and
// bounded concurrent batch execution.
package tools

import (
	"context"
	"time"

	"github.com/taskfleet/maestro/pkg/models"
)

// ExecutionContext carries the run-scoped facts a handler may need. Handlers
// must treat it as read-only.
type ExecutionContext struct {
	RunID          string
	StepID         string
	TenantID       string
	UserID         string
	IdempotencyKey string

	// Timeout overrides the catalog timeout when positive.
	Timeout time.Duration

	// CreditBudget is the remaining reservation balance; handlers reporting
	// CreditsConsumed above it will have the step rejected by the caller.
	CreditBudget int
}

// ArtifactRef is an output emitted by a handler. The caller content-addresses
// and persists it; handlers only produce bytes.
type ArtifactRef struct {
	Type     string         `json:"type"`
	MimeType string         `json:"mime_type"`
	FileName string         `json:"file_name"`
	Data     []byte         `json:"-"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Result is the uniform envelope every tool execution returns.
type Result struct {
	Success         bool               `json:"success"`
	Output          map[string]any     `json:"output,omitempty"`
	Error           *models.AgentError `json:"error,omitempty"`
	Artifacts       []ArtifactRef      `json:"artifacts,omitempty"`
	TokensUsed      int                `json:"tokens_used,omitempty"`
	CreditsConsumed int                `json:"credits_consumed,omitempty"`
	DurationMS      int                `json:"duration_ms"`
}

// Call is one tool invocation request.
type Call struct {
	ToolName string
	Input    map[string]any
	Context  *ExecutionContext
}

// Handler executes one tool call. Returning an error is equivalent to
// returning a Result with Success=false; the router normalizes both.
type Handler func(ctx context.Context, input map[string]any, ec *ExecutionContext) (*Result, error)

// failure builds an error envelope.
func failure(err *models.AgentError) *Result {
	return &Result{Success: false, Error: err}
}
