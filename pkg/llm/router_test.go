package llm

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskfleet/maestro/pkg/config"
	"github.com/taskfleet/maestro/pkg/models"
)

// fakeAdapter scripts per-model outcomes and records call order.
type fakeAdapter struct {
	mu       sync.Mutex
	provider string
	fail     map[string]error
	calls    []string
}

func newFakeAdapter(provider string) *fakeAdapter {
	return &fakeAdapter{provider: provider, fail: make(map[string]error)}
}

func (f *fakeAdapter) failWith(model string, err error) *fakeAdapter {
	f.fail[model] = err
	return f
}

func (f *fakeAdapter) Chat(_ context.Context, model string, _ *ChatRequest) (*ChatResponse, error) {
	f.mu.Lock()
	f.calls = append(f.calls, model)
	f.mu.Unlock()

	if err, ok := f.fail[model]; ok {
		return nil, err
	}
	return &ChatResponse{
		ID:        "resp-1",
		Model:     model,
		Provider:  f.provider,
		Content:   "ok from " + model,
		Usage:     Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
		LatencyMS: 42,
	}, nil
}

func (f *fakeAdapter) called() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Defaults: &config.Defaults{
			Model:    "gemini-2.0-flash",
			Provider: "google",
			Tier:     "standard",
			CapabilityModels: map[string]map[string]config.ModelRef{
				"code_execution": {
					"standard": {Model: "gpt-4o", Provider: "openai"},
				},
			},
		},
		ProviderRegistry: config.NewProviderRegistry(map[string]*config.ProviderConfig{
			"google":    {Format: config.FormatGoogle, APIKeyEnv: "GOOGLE_API_KEY", APIBase: "http://localhost"},
			"openai":    {Format: config.FormatOpenAI, APIKeyEnv: "OPENAI_API_KEY"},
			"anthropic": {Format: config.FormatAnthropic, APIKeyEnv: "ANTHROPIC_API_KEY"},
		}),
		ChainRegistry: config.NewChainRegistry(map[string]*config.ChainConfig{
			"gemini-2.0-flash": {
				Primary: config.ModelRef{Model: "gemini-2.0-flash", Provider: "google"},
				Fallbacks: []config.ModelRef{
					{Model: "gpt-4o-mini", Provider: "openai"},
					{Model: "claude-3-5-haiku-latest", Provider: "anthropic"},
				},
			},
			"gpt-4o": {
				Primary:   config.ModelRef{Model: "gpt-4o", Provider: "openai"},
				Fallbacks: []config.ModelRef{{Model: "claude-sonnet-4-20250514", Provider: "anthropic"}},
			},
		}),
	}
}

func newTestRouter(t *testing.T, cfg *config.Config, adapters map[string]Adapter, opts ...RouterOption) *Router {
	t.Helper()
	all := make([]RouterOption, 0, len(adapters)+len(opts))
	for name, a := range adapters {
		all = append(all, WithAdapter(name, a))
	}
	all = append(all, opts...)
	r, err := NewRouter(cfg, NewHealthTracker(nil), all...)
	require.NoError(t, err)
	return r
}

func TestRouter_DefaultModelSelected(t *testing.T) {
	google := newFakeAdapter("google")
	r := newTestRouter(t, testConfig(t), map[string]Adapter{
		"google": google, "openai": newFakeAdapter("openai"), "anthropic": newFakeAdapter("anthropic"),
	})

	resp, err := r.Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", resp.Model)
	assert.Equal(t, "google", resp.Provider)
	assert.Equal(t, []string{"gemini-2.0-flash"}, google.called())
}

func TestRouter_CapabilityRouting(t *testing.T) {
	openai := newFakeAdapter("openai")
	r := newTestRouter(t, testConfig(t), map[string]Adapter{
		"google": newFakeAdapter("google"), "openai": openai, "anthropic": newFakeAdapter("anthropic"),
	})

	resp, err := r.Chat(context.Background(), &ChatRequest{
		Messages:   []Message{{Role: RoleUser, Content: "run this"}},
		Capability: "code_execution",
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", resp.Model)
	assert.Equal(t, []string{"gpt-4o"}, openai.called())
}

func TestRouter_UnknownExplicitModelRejected(t *testing.T) {
	r := newTestRouter(t, testConfig(t), map[string]Adapter{
		"google": newFakeAdapter("google"), "openai": newFakeAdapter("openai"), "anthropic": newFakeAdapter("anthropic"),
	})

	_, err := r.Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
		Model:    "no-such-model",
	})
	require.Error(t, err)
	assert.Equal(t, models.CodeInvalidRequest, models.AsAgentError(err).Code)
}

func TestRouter_FallbackOnProviderFailure(t *testing.T) {
	google := newFakeAdapter("google").failWith("gemini-2.0-flash",
		models.NewRecoverableError(models.CodeProviderUnavailable, "503"))
	openai := newFakeAdapter("openai")
	r := newTestRouter(t, testConfig(t), map[string]Adapter{
		"google": google, "openai": openai, "anthropic": newFakeAdapter("anthropic"),
	})

	resp, err := r.Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", resp.Model)
	assert.Equal(t, "openai", resp.Provider)

	// The failed primary is degraded, not unhealthy, after one failure.
	assert.Equal(t, StatusDegraded, r.Health().Status("gemini-2.0-flash"))
	assert.True(t, r.Health().Available("gemini-2.0-flash"))
}

func TestRouter_UnhealthyModelSkipped(t *testing.T) {
	google := newFakeAdapter("google")
	openai := newFakeAdapter("openai")
	r := newTestRouter(t, testConfig(t), map[string]Adapter{
		"google": google, "openai": openai, "anthropic": newFakeAdapter("anthropic"),
	})

	for i := 0; i < 3; i++ {
		r.Health().RecordFailure("gemini-2.0-flash", "google")
	}
	require.False(t, r.Health().Available("gemini-2.0-flash"))

	resp, err := r.Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", resp.Model)
	assert.Empty(t, google.called(), "unhealthy model must not be called")
}

func TestRouter_AllModelsFailed(t *testing.T) {
	providerDown := models.NewRecoverableError(models.CodeProviderUnavailable, "down")
	r := newTestRouter(t, testConfig(t), map[string]Adapter{
		"google":    newFakeAdapter("google").failWith("gemini-2.0-flash", providerDown),
		"openai":    newFakeAdapter("openai").failWith("gpt-4o-mini", providerDown),
		"anthropic": newFakeAdapter("anthropic").failWith("claude-3-5-haiku-latest", providerDown),
	})

	_, err := r.Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.Error(t, err)

	ae := models.AsAgentError(err)
	assert.Equal(t, models.CodeAllModelsFailed, ae.Code)
	assert.True(t, ae.Recoverable)
	assert.Equal(t, 3, ae.Details["attempted"])
	assert.Contains(t, ae.Details["last_error"], "down")
}

func TestRouter_MaxRetriesCapsCandidates(t *testing.T) {
	cfg := testConfig(t)
	cfg.ChainRegistry = config.NewChainRegistry(map[string]*config.ChainConfig{
		"gemini-2.0-flash": {
			Primary: config.ModelRef{Model: "gemini-2.0-flash", Provider: "google"},
			Fallbacks: []config.ModelRef{
				{Model: "gpt-4o-mini", Provider: "openai"},
				{Model: "claude-3-5-haiku-latest", Provider: "anthropic"},
			},
			MaxRetries: 1,
		},
	})

	providerDown := models.NewRecoverableError(models.CodeProviderUnavailable, "down")
	anthropic := newFakeAdapter("anthropic")
	r := newTestRouter(t, cfg, map[string]Adapter{
		"google":    newFakeAdapter("google").failWith("gemini-2.0-flash", providerDown),
		"openai":    newFakeAdapter("openai").failWith("gpt-4o-mini", providerDown),
		"anthropic": anthropic,
	})

	// max_retries=1 allows two candidates; the third (which would succeed)
	// is never reached.
	_, err := r.Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Equal(t, models.CodeAllModelsFailed, models.AsAgentError(err).Code)
	assert.Empty(t, anthropic.called())
}

type captureRecorder struct {
	mu    sync.Mutex
	resps []*ChatResponse
}

func (c *captureRecorder) RecordUsage(_ context.Context, _ *ChatRequest, resp *ChatResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resps = append(c.resps, resp)
}

func TestRouter_RecordsTokenUsage(t *testing.T) {
	rec := &captureRecorder{}
	r := newTestRouter(t, testConfig(t), map[string]Adapter{
		"google": newFakeAdapter("google"), "openai": newFakeAdapter("openai"), "anthropic": newFakeAdapter("anthropic"),
	}, WithUsageRecorder(rec))

	_, err := r.Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
		RunID:    "run-1",
	})
	require.NoError(t, err)
	require.Len(t, rec.resps, 1)
	assert.Equal(t, 15, rec.resps[0].Usage.TotalTokens)
}
