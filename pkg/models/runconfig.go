package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RunConfig default values, applied by Normalize for unset fields.
const (
	DefaultMaxSteps           = 50
	DefaultMaxDurationSeconds = 3600
	DefaultMaxCredits         = 100
	DefaultModel              = "gemini-2.5-flash"
	DefaultTemperature        = 0.7
	DefaultCheckpointInterval = 5
)

// RunConfig holds the caller-supplied execution bounds for a run.
// Unset fields take the documented defaults; unknown keys are rejected.
type RunConfig struct {
	MaxSteps           int      `json:"max_steps"`
	MaxDurationSeconds int      `json:"max_duration_seconds"`
	MaxCredits         int      `json:"max_credits"`
	ToolsEnabled       []string `json:"tools_enabled,omitempty"`
	Model              string   `json:"model"`
	Temperature        float64  `json:"temperature"`
	CheckpointInterval int      `json:"checkpoint_interval"`
}

// DefaultRunConfig returns a config with all defaults applied.
// Empty ToolsEnabled means all catalog tools are allowed.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		MaxSteps:           DefaultMaxSteps,
		MaxDurationSeconds: DefaultMaxDurationSeconds,
		MaxCredits:         DefaultMaxCredits,
		Model:              DefaultModel,
		Temperature:        DefaultTemperature,
		CheckpointInterval: DefaultCheckpointInterval,
	}
}

// Normalize fills unset fields with defaults and validates bounds.
func (c *RunConfig) Normalize() error {
	if c.MaxSteps == 0 {
		c.MaxSteps = DefaultMaxSteps
	}
	if c.MaxDurationSeconds == 0 {
		c.MaxDurationSeconds = DefaultMaxDurationSeconds
	}
	if c.MaxCredits == 0 {
		c.MaxCredits = DefaultMaxCredits
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Temperature == 0 {
		c.Temperature = DefaultTemperature
	}
	if c.CheckpointInterval == 0 {
		c.CheckpointInterval = DefaultCheckpointInterval
	}

	if c.MaxSteps < 1 {
		return fmt.Errorf("max_steps must be positive, got %d", c.MaxSteps)
	}
	if c.MaxDurationSeconds < 1 {
		return fmt.Errorf("max_duration_seconds must be positive, got %d", c.MaxDurationSeconds)
	}
	if c.MaxCredits < 1 {
		return fmt.Errorf("max_credits must be positive, got %d", c.MaxCredits)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2], got %v", c.Temperature)
	}
	return nil
}

// ToolEnabled reports whether a tool name is allowed by this config.
// An empty ToolsEnabled list allows every catalog tool.
func (c *RunConfig) ToolEnabled(name string) bool {
	if len(c.ToolsEnabled) == 0 {
		return true
	}
	for _, t := range c.ToolsEnabled {
		if t == name {
			return true
		}
	}
	return false
}

// ToMap converts the config to the generic map shape stored in JSON columns.
func (c RunConfig) ToMap() (map[string]interface{}, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal run config: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run config: %w", err)
	}
	return m, nil
}

// RunConfigFromMap parses the stored JSON shape back into a RunConfig.
func RunConfigFromMap(m map[string]interface{}) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if m == nil {
		return cfg, nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return cfg, fmt.Errorf("failed to marshal stored config: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse stored config: %w", err)
	}
	if err := cfg.Normalize(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
