package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "maestro.yaml"), []byte(content), 0o600))
	return dir
}

func TestInitialize_BuiltinsOnly(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.ProviderRegistry.Has("google"))
	assert.True(t, cfg.ProviderRegistry.Has("openai"))
	assert.True(t, cfg.ProviderRegistry.Has("anthropic"))
	assert.Equal(t, BuiltinDefaultModel, cfg.Defaults.Model)
	assert.Equal(t, BuiltinDefaultProvider, cfg.Defaults.Provider)
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
}

func TestInitialize_UserOverrides(t *testing.T) {
	dir := writeConfigFile(t, `
defaults:
  model: gpt-4o
  provider: openai
queue:
  worker_count: 12
  lease_duration: 5m
providers:
  local:
    format: openai
    api_base: http://localhost:8000/v1
    api_key_env: LOCAL_API_KEY
fallback_chains:
  local-model:
    primary:
      model: local-model
      provider: local
    max_retries: 1
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", cfg.Defaults.Model)
	assert.Equal(t, "openai", cfg.Defaults.Provider)
	// User values override, untouched fields keep defaults.
	assert.Equal(t, 12, cfg.Queue.WorkerCount)
	assert.Equal(t, 5*time.Minute, cfg.Queue.LeaseDuration)
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)

	p, err := cfg.GetProvider("local")
	require.NoError(t, err)
	assert.Equal(t, FormatOpenAI, p.Format)
	assert.Equal(t, "http://localhost:8000/v1", p.APIBase)

	chain, err := cfg.GetChain("local-model")
	require.NoError(t, err)
	assert.Equal(t, "local", chain.Primary.Provider)
	assert.Equal(t, 1, chain.MaxRetries)

	// Built-in chains survive the merge.
	assert.True(t, cfg.ChainRegistry.Has("gemini-2.0-flash"))
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_PROVIDER_BASE", "https://gateway.internal/v1")

	dir := writeConfigFile(t, `
providers:
  gateway:
    format: openai
    api_base: ${TEST_PROVIDER_BASE}
    api_key_env: GATEWAY_API_KEY
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	p, err := cfg.GetProvider("gateway")
	require.NoError(t, err)
	assert.Equal(t, "https://gateway.internal/v1", p.APIBase)
}

func TestInitialize_RejectsUnknownFormat(t *testing.T) {
	dir := writeConfigFile(t, `
providers:
  weird:
    format: soap
    api_key_env: WEIRD_KEY
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigInvalid)
}

func TestInitialize_RejectsChainWithUnknownProvider(t *testing.T) {
	dir := writeConfigFile(t, `
fallback_chains:
  mystery:
    primary:
      model: mystery
      provider: nowhere
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigInvalid)
}

func TestInitialize_RejectsHeartbeatLongerThanLease(t *testing.T) {
	dir := writeConfigFile(t, `
queue:
  lease_duration: 10s
  heartbeat_interval: 30s
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigInvalid)
}

func TestDefaults_ResolveCapability(t *testing.T) {
	d := &Defaults{
		Model:    "gemini-2.0-flash",
		Provider: "google",
		Tier:     "standard",
		CapabilityModels: map[string]map[string]ModelRef{
			"code_execution": {
				"standard": {Model: "gpt-4o", Provider: "openai"},
				"premium":  {Model: "claude-sonnet-4-20250514", Provider: "anthropic"},
			},
		},
	}

	ref := d.ResolveCapability("code_execution", "premium")
	assert.Equal(t, "claude-sonnet-4-20250514", ref.Model)

	// Unknown tier falls back to the default tier route.
	ref = d.ResolveCapability("code_execution", "enterprise")
	assert.Equal(t, "gpt-4o", ref.Model)

	// Unknown capability falls back to the system default.
	ref = d.ResolveCapability("telepathy", "standard")
	assert.Equal(t, "gemini-2.0-flash", ref.Model)
	assert.Equal(t, "google", ref.Provider)
}

func TestExpandEnv_PreservesBareDollar(t *testing.T) {
	t.Setenv("EXPAND_ME", "value")

	out := ExpandEnv([]byte("a: ${EXPAND_ME}\nb: cost$5\n"))
	assert.Equal(t, "a: value\nb: cost$5\n", string(out))
}
