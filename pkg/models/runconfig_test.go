package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunConfigFromMap_NilGetsDefaults(t *testing.T) {
	cfg, err := RunConfigFromMap(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultRunConfig(), cfg)
}

func TestRunConfigFromMap_PartialMapFillsDefaults(t *testing.T) {
	cfg, err := RunConfigFromMap(map[string]interface{}{
		"max_steps": float64(10),
		"model":     "claude-sonnet-4",
	})
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.MaxSteps)
	assert.Equal(t, "claude-sonnet-4", cfg.Model)
	assert.Equal(t, DefaultMaxCredits, cfg.MaxCredits)
	assert.Equal(t, DefaultTemperature, cfg.Temperature)
}

func TestRunConfigFromMap_UnknownKeyRejected(t *testing.T) {
	_, err := RunConfigFromMap(map[string]interface{}{
		"max_steps":  float64(10),
		"max_stepss": float64(99),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_stepss")
}

func TestRunConfigFromMap_OutOfBoundsRejected(t *testing.T) {
	_, err := RunConfigFromMap(map[string]interface{}{"temperature": float64(3)})
	require.Error(t, err)

	_, err = RunConfigFromMap(map[string]interface{}{"max_steps": float64(-1)})
	require.Error(t, err)
}

func TestRunConfigToolEnabled(t *testing.T) {
	cfg := DefaultRunConfig()
	assert.True(t, cfg.ToolEnabled("web_search"), "empty list allows every tool")

	cfg.ToolsEnabled = []string{"web_search", "file_read"}
	assert.True(t, cfg.ToolEnabled("file_read"))
	assert.False(t, cfg.ToolEnabled("shell_exec"))
}

func TestRunConfigRoundTripsThroughMap(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.ToolsEnabled = []string{"web_search"}

	m, err := cfg.ToMap()
	require.NoError(t, err)
	back, err := RunConfigFromMap(m)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
