package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskfleet/maestro/pkg/config"
	"github.com/taskfleet/maestro/pkg/metrics"
	"github.com/taskfleet/maestro/pkg/models"
)

// UsageRecorder receives token accounting after each successful call.
// Recording is best effort and must not fail the chat.
type UsageRecorder interface {
	RecordUsage(ctx context.Context, req *ChatRequest, resp *ChatResponse)
}

// Router selects a model for each chat request and walks its fallback chain
// until a provider answers. Selection order: explicit model, capability
// routing, system default.
type Router struct {
	cfg      *config.Config
	adapters map[string]Adapter
	health   *HealthTracker
	usage    UsageRecorder
}

// RouterOption customizes router construction.
type RouterOption func(*Router)

// WithAdapter overrides the adapter for a provider. Used by tests and by
// deployments that front a provider with custom transport.
func WithAdapter(provider string, a Adapter) RouterOption {
	return func(r *Router) { r.adapters[provider] = a }
}

// WithUsageRecorder wires token usage persistence.
func WithUsageRecorder(rec UsageRecorder) RouterOption {
	return func(r *Router) { r.usage = rec }
}

// NewRouter builds adapters for every configured provider.
func NewRouter(cfg *config.Config, health *HealthTracker, opts ...RouterOption) (*Router, error) {
	r := &Router{
		cfg:      cfg,
		adapters: make(map[string]Adapter),
		health:   health,
	}
	for name, pc := range cfg.ProviderRegistry.GetAll() {
		adapter, err := buildAdapter(name, pc)
		if err != nil {
			return nil, fmt.Errorf("failed to build adapter: %w", err)
		}
		r.adapters[name] = adapter
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Health exposes the tracker for status endpoints.
func (r *Router) Health() *HealthTracker {
	return r.health
}

// Chat routes the request. On provider failure the next candidate in the
// fallback chain is tried; when every candidate fails the caller gets
// ALL_MODELS_FAILED carrying the last underlying error.
func (r *Router) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	candidates, err := r.candidates(req)
	if err != nil {
		return nil, err
	}

	var lastErr error
	attempted := 0
	for _, cand := range candidates {
		if !r.health.Available(cand.Model) {
			slog.Debug("Skipping unhealthy model", "model", cand.String())
			continue
		}
		adapter, ok := r.adapters[cand.Provider]
		if !ok {
			lastErr = fmt.Errorf("no adapter for provider %s", cand.Provider)
			continue
		}

		attempted++
		resp, err := adapter.Chat(ctx, cand.Model, req)
		if err != nil {
			r.health.RecordFailure(cand.Model, cand.Provider)
			metrics.ProviderCalls.WithLabelValues(cand.Provider, cand.Model, "failure").Inc()
			lastErr = err
			slog.Warn("Model call failed, trying next candidate",
				"model", cand.String(),
				"run_id", req.RunID,
				"error", err)
			continue
		}

		r.health.RecordSuccess(cand.Model, cand.Provider, resp.LatencyMS)
		metrics.ProviderCalls.WithLabelValues(cand.Provider, cand.Model, "success").Inc()
		metrics.ChatLatency.WithLabelValues(cand.Provider).Observe(float64(resp.LatencyMS) / 1000)
		if r.usage != nil {
			r.usage.RecordUsage(ctx, req, resp)
		}
		return resp, nil
	}

	ae := models.NewRecoverableError(models.CodeAllModelsFailed,
		fmt.Sprintf("all %d candidate models failed or were unavailable", len(candidates)))
	ae.Details = map[string]any{"attempted": attempted}
	if lastErr != nil {
		ae.Details["last_error"] = lastErr.Error()
	}
	return nil, ae
}

// candidates resolves the selected model and its deduplicated fallback list,
// capped at max_retries+1 distinct models.
func (r *Router) candidates(req *ChatRequest) ([]config.ModelRef, error) {
	selected, err := r.selectModel(req)
	if err != nil {
		return nil, err
	}

	refs := []config.ModelRef{selected}
	maxRetries := config.DefaultChainMaxRetries
	if chain, err := r.cfg.GetChain(selected.Model); err == nil {
		refs = append(refs, chain.Fallbacks...)
		if chain.MaxRetries > 0 {
			maxRetries = chain.MaxRetries
		}
	}

	seen := make(map[string]bool, len(refs))
	out := make([]config.ModelRef, 0, len(refs))
	for _, ref := range refs {
		key := ref.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ref)
	}

	if limit := maxRetries + 1; len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// selectModel picks the primary: explicit request model, then capability
// routing, then the system default.
func (r *Router) selectModel(req *ChatRequest) (config.ModelRef, error) {
	if req.Model != "" {
		if chain, err := r.cfg.GetChain(req.Model); err == nil {
			return chain.Primary, nil
		}
		return config.ModelRef{}, models.Errorf(models.CodeInvalidRequest,
			"unknown model %q: not in the model catalog", req.Model)
	}

	if req.Capability != "" {
		tier := req.Tier
		if tier == "" {
			tier = r.cfg.Defaults.Tier
		}
		return r.cfg.Defaults.ResolveCapability(req.Capability, tier), nil
	}

	return config.ModelRef{
		Model:    r.cfg.Defaults.Model,
		Provider: r.cfg.Defaults.Provider,
	}, nil
}
