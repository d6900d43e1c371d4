package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskfleet/maestro/ent"
)

// runDetail is the single-run projection. The plan and error maps are passed
// through as stored.
func runDetail(r *ent.Run) gin.H {
	out := gin.H{
		"run_id":           r.ID,
		"status":           string(r.Status),
		"prompt":           r.Prompt,
		"config":           r.Config,
		"priority":         r.Priority,
		"step_count":       r.StepCount,
		"retry_count":      r.RetryCount,
		"credits_reserved": r.CreditsReserved,
		"credits_consumed": r.CreditsConsumed,
		"created_at":       r.CreatedAt,
	}
	if r.ExternalID != nil {
		out["external_id"] = *r.ExternalID
	}
	if len(r.Plan) > 0 {
		out["plan"] = r.Plan
	}
	if r.CurrentPhaseID != nil {
		out["current_phase_id"] = *r.CurrentPhaseID
	}
	if len(r.Error) > 0 {
		out["error"] = r.Error
	}
	if r.StartedAt != nil {
		out["started_at"] = r.StartedAt
	}
	if r.CompletedAt != nil {
		out["completed_at"] = r.CompletedAt
	}
	if r.TimeoutAt != nil {
		out["timeout_at"] = r.TimeoutAt
	}
	return out
}

func stepView(st *ent.Step) gin.H {
	out := gin.H{
		"step_id":          st.ID,
		"phase_id":         st.PhaseID,
		"sequence":         st.Sequence,
		"tool_name":        st.ToolName,
		"status":           string(st.Status),
		"credits_consumed": st.CreditsConsumed,
		"created_at":       st.CreatedAt,
	}
	if len(st.ToolInput) > 0 {
		out["tool_input"] = st.ToolInput
	}
	if len(st.ToolOutput) > 0 {
		out["tool_output"] = st.ToolOutput
	}
	if len(st.Error) > 0 {
		out["error"] = st.Error
	}
	if st.DurationMs != nil {
		out["duration_ms"] = *st.DurationMs
	}
	if st.CompletedAt != nil {
		out["completed_at"] = st.CompletedAt
	}
	return out
}

func artifactView(a *ent.Artifact) gin.H {
	return gin.H{
		"artifact_id":  a.ID,
		"content_hash": a.ContentHash,
		"type":         a.ArtifactType,
		"mime_type":    a.MimeType,
		"file_name":    a.FileName,
		"size":         a.Size,
		"storage_path": a.StoragePath,
		"created_by":   a.CreatedByStep,
		"created_tool": a.CreatedByTool,
		"created_at":   a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
