package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Capability vocabulary for plan phases. The planner rejects anything else.
const (
	CapabilityWebBrowsing        = "web_browsing"
	CapabilityCodeExecution      = "code_execution"
	CapabilityFileOperations     = "file_operations"
	CapabilityDocumentGeneration = "document_generation"
	CapabilityWebSearch          = "web_search"
	CapabilityImageGeneration    = "image_generation"
)

// AllCapabilities is the fixed phase capability vocabulary.
var AllCapabilities = []string{
	CapabilityWebBrowsing,
	CapabilityCodeExecution,
	CapabilityFileOperations,
	CapabilityDocumentGeneration,
	CapabilityWebSearch,
	CapabilityImageGeneration,
}

// ValidCapability reports whether c is in the fixed vocabulary.
func ValidCapability(c string) bool {
	for _, known := range AllCapabilities {
		if c == known {
			return true
		}
	}
	return false
}

// Plan size bounds enforced by the planner.
const (
	MinPlanPhases = 2
	MaxPlanPhases = 15
)

// PhaseStatus is the lifecycle status of a single plan phase.
type PhaseStatus string

// Phase status values.
const (
	PhaseStatusPending   PhaseStatus = "pending"
	PhaseStatusExecuting PhaseStatus = "executing"
	PhaseStatusCompleted PhaseStatus = "completed"
	PhaseStatusFailed    PhaseStatus = "failed"
	PhaseStatusSkipped   PhaseStatus = "skipped"
)

// Terminal reports whether the phase can make no further progress.
func (s PhaseStatus) Terminal() bool {
	return s == PhaseStatusCompleted || s == PhaseStatusFailed || s == PhaseStatusSkipped
}

// Phase is a sequential unit within a plan, tagged with capabilities.
type Phase struct {
	ID             int         `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description,omitempty"`
	Capabilities   []string    `json:"capabilities,omitempty"`
	EstimatedSteps int         `json:"estimated_steps,omitempty"`
	Status         PhaseStatus `json:"status"`
	StartedAt      *time.Time  `json:"started_at,omitempty"`
	CompletedAt    *time.Time  `json:"completed_at,omitempty"`
	StepsCompleted int         `json:"steps_completed"`
}

// PlanMetadata records how the plan was produced.
type PlanMetadata struct {
	Attempt          int    `json:"attempt"`
	Model            string `json:"model"`
	InputTokens      int    `json:"input_tokens"`
	OutputTokens     int    `json:"output_tokens"`
	GenerationTimeMS int64  `json:"generation_time_ms"`
}

// Plan is the ordered set of phases synthesized for a run. The phase list is
// immutable once accepted; only per-phase status fields change afterwards.
type Plan struct {
	Version        int          `json:"version"`
	Goal           string       `json:"goal"`
	Phases         []Phase      `json:"phases"`
	CurrentPhaseID int          `json:"current_phase_id"`
	Metadata       PlanMetadata `json:"metadata"`
}

// Validate enforces the structural invariants: 2-15 phases ordered 1..n with
// no gaps, capabilities from the fixed vocabulary, at most one executing.
func (p *Plan) Validate() error {
	if len(p.Phases) < MinPlanPhases || len(p.Phases) > MaxPlanPhases {
		return fmt.Errorf("plan must have %d-%d phases, got %d", MinPlanPhases, MaxPlanPhases, len(p.Phases))
	}
	executing := 0
	for i, ph := range p.Phases {
		if ph.ID != i+1 {
			return fmt.Errorf("phase %d has id %d, want %d", i, ph.ID, i+1)
		}
		if ph.Title == "" {
			return fmt.Errorf("phase %d has no title", ph.ID)
		}
		for _, c := range ph.Capabilities {
			if !ValidCapability(c) {
				return fmt.Errorf("phase %d has unknown capability %q", ph.ID, c)
			}
		}
		if ph.Status == PhaseStatusExecuting {
			executing++
		}
	}
	if executing > 1 {
		return fmt.Errorf("%d phases executing, at most one allowed", executing)
	}
	return nil
}

// CurrentPhase returns the first phase in pending or executing state, or nil
// when every phase is terminal.
func (p *Plan) CurrentPhase() *Phase {
	for i := range p.Phases {
		if !p.Phases[i].Status.Terminal() {
			return &p.Phases[i]
		}
	}
	return nil
}

// AllPhasesDone reports whether every phase is completed or skipped.
func (p *Plan) AllPhasesDone() bool {
	for _, ph := range p.Phases {
		if ph.Status != PhaseStatusCompleted && ph.Status != PhaseStatusSkipped {
			return false
		}
	}
	return true
}

// ToMap converts the plan to the generic map shape stored in JSON columns.
func (p *Plan) ToMap() (map[string]interface{}, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan: %w", err)
	}
	return m, nil
}

// PlanFromMap parses the stored JSON shape back into a Plan.
// Returns nil for an empty map (no plan synthesized yet).
func PlanFromMap(m map[string]interface{}) (*Plan, error) {
	if len(m) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stored plan: %w", err)
	}
	var p Plan
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("failed to parse stored plan: %w", err)
	}
	return &p, nil
}
