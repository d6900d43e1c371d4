package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskfleet/maestro/ent"
	"github.com/taskfleet/maestro/pkg/llm"
)

// UsageRecorder persists one token_usages row per LLM call. Implements
// llm.UsageRecorder; failures are logged, never surfaced — billing
// reconciliation tolerates gaps, chat calls must not.
type UsageRecorder struct {
	client *ent.Client
}

// NewUsageRecorder creates the recorder.
func NewUsageRecorder(client *ent.Client) *UsageRecorder {
	return &UsageRecorder{client: client}
}

// RecordUsage writes the usage row. Calls without a run id (health probes,
// ad-hoc completions) are skipped: the table is keyed to runs.
func (u *UsageRecorder) RecordUsage(ctx context.Context, req *llm.ChatRequest, resp *llm.ChatResponse) {
	if req.RunID == "" {
		return
	}

	err := u.client.TokenUsage.Create().
		SetID(uuid.New().String()).
		SetRunID(req.RunID).
		SetStepID(req.StepID).
		SetModel(resp.Model).
		SetProvider(resp.Provider).
		SetPromptTokens(resp.Usage.PromptTokens).
		SetCompletionTokens(resp.Usage.CompletionTokens).
		SetTotalTokens(resp.Usage.TotalTokens).
		SetLatencyMs(resp.LatencyMS).
		Exec(ctx)
	if err != nil {
		slog.Warn("Failed to record token usage",
			"run_id", req.RunID, "model", resp.Model, "error", err)
	}
}
