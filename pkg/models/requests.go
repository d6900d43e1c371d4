package models

import "time"

// CreateRunRequest carries the fields needed to create a run row.
type CreateRunRequest struct {
	RunID      string
	ExternalID string
	TenantID   string
	UserID     string
	Prompt     string
	Config     RunConfig
	Priority   int
}

// CreateStepRequest carries the fields needed to create a step row.
type CreateStepRequest struct {
	StepID         string
	RunID          string
	PhaseID        int
	Sequence       int
	ToolName       string
	ToolInput      map[string]any
	IdempotencyKey string
}

// RecordArtifactRequest carries the fields needed to record an artifact.
// Recording is idempotent under ContentHash.
type RecordArtifactRequest struct {
	ContentHash   string
	Type          string
	MimeType      string
	FileName      string
	Size          int64
	StoragePath   string
	CreatedByRun  string
	CreatedByStep string
	CreatedByTool string
	Metadata      map[string]any
	Parents       []string
}

// RunFilters narrows run listing queries.
type RunFilters struct {
	TenantID string
	Status   string
	Page     int
	PageSize int
}

// RunSummary is the list-view projection of a run.
type RunSummary struct {
	ID              string     `json:"run_id"`
	Status          string     `json:"status"`
	Prompt          string     `json:"prompt"`
	StepCount       int        `json:"step_count"`
	CreditsReserved int        `json:"credits_reserved"`
	CreditsConsumed int        `json:"credits_consumed"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// RunListResponse is a paginated run listing.
type RunListResponse struct {
	Runs       []RunSummary `json:"runs"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalCount int          `json:"total_count"`
}
