package tools

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskfleet/maestro/pkg/config"
	"github.com/taskfleet/maestro/pkg/models"
)

func okHandler(output map[string]any) Handler {
	return func(_ context.Context, _ map[string]any, _ *ExecutionContext) (*Result, error) {
		return &Result{Success: true, Output: output}, nil
	}
}

func TestRouter_RegisterUnregisterList(t *testing.T) {
	r := NewRouter(NewCatalog(nil))

	r.Register("web_search", okHandler(nil))
	r.Register("file_read", okHandler(nil))
	assert.True(t, r.Has("web_search"))
	assert.Equal(t, []string{"file_read", "web_search"}, r.List())

	assert.True(t, r.Unregister("web_search"))
	assert.False(t, r.Unregister("web_search"))
	assert.False(t, r.Has("web_search"))
}

func TestRouter_ReplaceHandler(t *testing.T) {
	r := NewRouter(NewCatalog(nil))
	r.Register("web_search", okHandler(map[string]any{"v": 1}))
	r.Register("web_search", okHandler(map[string]any{"v": 2}))

	res := r.Execute(context.Background(), &Call{ToolName: "web_search"})
	require.True(t, res.Success)
	assert.Equal(t, 2, res.Output["v"])
}

func TestRouter_UnknownTool(t *testing.T) {
	r := NewRouter(NewCatalog(nil))

	res := r.Execute(context.Background(), &Call{ToolName: "nope"})
	require.False(t, res.Success)
	assert.Equal(t, models.CodeUnknownTool, res.Error.Code)
}

func TestRouter_DisabledTool(t *testing.T) {
	catalog := NewCatalog(map[string]*config.ToolOverride{
		"shell_exec": {Disabled: true},
	})
	r := NewRouter(catalog)
	r.Register("shell_exec", okHandler(nil))

	res := r.Execute(context.Background(), &Call{ToolName: "shell_exec"})
	require.False(t, res.Success)
	assert.Equal(t, models.CodeToolNotAllowed, res.Error.Code)
}

func TestRouter_TimeoutMeasuredAroundHandler(t *testing.T) {
	r := NewRouter(NewCatalog(nil))
	r.Register("web_search", func(ctx context.Context, _ map[string]any, _ *ExecutionContext) (*Result, error) {
		select {
		case <-time.After(5 * time.Second):
			return &Result{Success: true}, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})

	res := r.Execute(context.Background(), &Call{
		ToolName: "web_search",
		Context:  &ExecutionContext{Timeout: 50 * time.Millisecond},
	})
	require.False(t, res.Success)
	assert.Equal(t, models.CodeToolTimeout, res.Error.Code)
	assert.True(t, res.Error.Recoverable)
	assert.Less(t, res.DurationMS, 2000)
}

func TestRouter_PanicBecomesHandlerException(t *testing.T) {
	r := NewRouter(NewCatalog(nil))
	r.Register("web_search", func(_ context.Context, _ map[string]any, _ *ExecutionContext) (*Result, error) {
		panic("boom")
	})

	res := r.Execute(context.Background(), &Call{ToolName: "web_search"})
	require.False(t, res.Success)
	assert.Equal(t, models.CodeHandlerException, res.Error.Code)
	assert.False(t, res.Error.Recoverable)
	assert.Contains(t, res.Error.Message, "boom")
}

func TestRouter_RateLimited(t *testing.T) {
	catalog := NewCatalog(map[string]*config.ToolOverride{
		"image_generate": {RateLimit: &config.RateLimitSpec{PerMinute: 2, PerHour: 100, Concurrent: 2}},
	})
	r := NewRouter(catalog)

	var invocations atomic.Int32
	r.Register("image_generate", func(_ context.Context, _ map[string]any, _ *ExecutionContext) (*Result, error) {
		invocations.Add(1)
		return &Result{Success: true}, nil
	})

	call := &Call{ToolName: "image_generate", Context: &ExecutionContext{TenantID: "acme"}}
	require.True(t, r.Execute(context.Background(), call).Success)
	require.True(t, r.Execute(context.Background(), call).Success)

	res := r.Execute(context.Background(), call)
	require.False(t, res.Success)
	assert.Equal(t, models.CodeRateLimited, res.Error.Code)
	assert.True(t, res.Error.Recoverable)
	assert.Greater(t, res.Error.RetryAfterMS, int64(0))
	// The limited call never reached the handler.
	assert.Equal(t, int32(2), invocations.Load())

	// Windows are keyed per tenant.
	other := &Call{ToolName: "image_generate", Context: &ExecutionContext{TenantID: "globex"}}
	assert.True(t, r.Execute(context.Background(), other).Success)
}

func TestRouter_ExecuteBatchPreservesOrder(t *testing.T) {
	r := NewRouter(NewCatalog(nil))
	r.Register("file_read", func(_ context.Context, input map[string]any, _ *ExecutionContext) (*Result, error) {
		if input["path"] == "b" {
			time.Sleep(30 * time.Millisecond) // finish out of order
		}
		return &Result{Success: true, Output: map[string]any{"path": input["path"]}}, nil
	})

	calls := []*Call{
		{ToolName: "file_read", Input: map[string]any{"path": "a"}},
		{ToolName: "file_read", Input: map[string]any{"path": "b"}},
		{ToolName: "file_read", Input: map[string]any{"path": "c"}},
	}
	results := r.ExecuteBatch(context.Background(), calls)

	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].Output["path"])
	assert.Equal(t, "b", results[1].Output["path"])
	assert.Equal(t, "c", results[2].Output["path"])
}

func TestRouter_BatchBoundedByConcurrency(t *testing.T) {
	catalog := NewCatalog(map[string]*config.ToolOverride{
		"shell_exec": {RateLimit: &config.RateLimitSpec{PerMinute: 1000, PerHour: 10000, Concurrent: 1}},
	})
	r := NewRouter(catalog)

	var mu sync.Mutex
	inFlight, maxInFlight := 0, 0
	r.Register("shell_exec", func(_ context.Context, _ map[string]any, _ *ExecutionContext) (*Result, error) {
		mu.Lock()
		inFlight++
		if inFlight > maxInFlight {
			maxInFlight = inFlight
		}
		mu.Unlock()

		time.Sleep(10 * time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()
		return &Result{Success: true}, nil
	})

	calls := make([]*Call, 5)
	for i := range calls {
		calls[i] = &Call{ToolName: "shell_exec", Context: &ExecutionContext{TenantID: "acme"}}
	}
	for _, res := range r.ExecuteBatch(context.Background(), calls) {
		require.True(t, res.Success)
	}
	assert.Equal(t, 1, maxInFlight)
}

func TestCatalog_TwentyToolsWithOverrides(t *testing.T) {
	catalog := NewCatalog(map[string]*config.ToolOverride{
		"web_search": {TimeoutMS: 9000, CostCredits: 7},
	})

	assert.Len(t, catalog.Names(), 20)

	def, ok := catalog.Get("web_search")
	require.True(t, ok)
	assert.Equal(t, 9000, def.TimeoutMS)
	assert.Equal(t, 7, def.CostCredits)

	// Untouched entries keep builtin values.
	def, ok = catalog.Get("image_generate")
	require.True(t, ok)
	assert.Equal(t, 5, def.CostCredits)

	assert.Equal(t, 8, catalog.EstimateCost([]string{"web_search", "file_write", "unknown"}))
}

func TestRateLimiter_RetryAfter(t *testing.T) {
	l := newRateLimiter()
	base := time.Now()
	l.now = func() time.Time { return base }

	spec := config.RateLimitSpec{PerMinute: 1, PerHour: 10}
	_, ok := l.allow("t", "tool", spec)
	require.True(t, ok)

	wait, ok := l.allow("t", "tool", spec)
	require.False(t, ok)
	assert.Equal(t, time.Minute, wait)

	// After the window slides, the call is allowed again.
	l.now = func() time.Time { return base.Add(61 * time.Second) }
	_, ok = l.allow("t", "tool", spec)
	assert.True(t, ok)
}
