package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sort"
	"sync"
	"time"

	"github.com/taskfleet/maestro/pkg/metrics"
	"github.com/taskfleet/maestro/pkg/models"
)

// Router maps tool names to handlers and executes calls with the catalog's
// timeout, rate limit, and concurrency bounds applied uniformly.
type Router struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	sems     map[string]chan struct{}

	catalog *Catalog
	limiter *rateLimiter
}

// NewRouter creates an empty router over the catalog.
func NewRouter(catalog *Catalog) *Router {
	return &Router{
		handlers: make(map[string]Handler),
		sems:     make(map[string]chan struct{}),
		catalog:  catalog,
		limiter:  newRateLimiter(),
	}
}

// Register installs or replaces the handler for a tool name.
func (r *Router) Register(name string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, existed := r.handlers[name]; existed {
		slog.Debug("Replacing tool handler", "tool", name)
	}
	r.handlers[name] = h
}

// Unregister removes a handler, reporting whether it existed.
func (r *Router) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, existed := r.handlers[name]
	delete(r.handlers, name)
	return existed
}

// Has checks whether a handler is registered for the name.
func (r *Router) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.handlers[name]
	return ok
}

// List returns registered tool names, sorted.
func (r *Router) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Catalog returns the definition table backing the router.
func (r *Router) Catalog() *Catalog {
	return r.catalog
}

// Execute runs exactly one handler. Rate limits are checked before the
// handler is invoked; the timeout and duration_ms cover the handler only.
func (r *Router) Execute(ctx context.Context, call *Call) *Result {
	r.mu.RLock()
	h, ok := r.handlers[call.ToolName]
	r.mu.RUnlock()
	if !ok {
		return failure(models.Errorf(models.CodeUnknownTool,
			"no handler registered for tool %q", call.ToolName))
	}

	def, hasDef := r.catalog.Get(call.ToolName)
	if hasDef && def.Disabled {
		return failure(models.Errorf(models.CodeToolNotAllowed,
			"tool %q is disabled by configuration", call.ToolName))
	}

	ec := call.Context
	if ec == nil {
		ec = &ExecutionContext{}
	}

	if hasDef {
		if wait, allowed := r.limiter.allow(ec.TenantID, call.ToolName, def.RateLimit); !allowed {
			ae := models.NewRecoverableError(models.CodeRateLimited,
				fmt.Sprintf("tool %q rate limit exhausted for tenant %s", call.ToolName, ec.TenantID))
			ae.RetryAfterMS = wait.Milliseconds()
			return failure(ae)
		}
	}

	sem := r.semaphore(call.ToolName, def, hasDef)
	select {
	case sem <- struct{}{}:
		defer func() { <-sem }()
	case <-ctx.Done():
		return failure(models.NewRecoverableError(models.CodeToolFailed,
			fmt.Sprintf("context ended waiting for tool %q slot: %v", call.ToolName, ctx.Err())))
	}

	timeout := time.Duration(defaultTimeoutMS) * time.Millisecond
	if hasDef {
		timeout = time.Duration(def.TimeoutMS) * time.Millisecond
	}
	if ec.Timeout > 0 {
		timeout = ec.Timeout
	}

	return r.runHandler(ctx, h, call, ec, timeout)
}

// runHandler invokes the handler in its own goroutine so a timeout can
// abandon it. An abandoned handler's result is discarded; handlers must
// honor ctx to stop doing work.
func (r *Router) runHandler(ctx context.Context, h Handler, call *Call, ec *ExecutionContext, timeout time.Duration) *Result {
	hctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		res *Result
		err error
	}
	done := make(chan outcome, 1)

	start := time.Now()
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("Tool handler panicked",
					"tool", call.ToolName,
					"run_id", ec.RunID,
					"panic", rec,
					"stack", string(debug.Stack()))
				done <- outcome{err: models.Errorf(models.CodeHandlerException,
					"tool %q handler panicked: %v", call.ToolName, rec)}
			}
		}()
		res, err := h(hctx, call.Input, ec)
		done <- outcome{res: res, err: err}
	}()

	var res *Result
	select {
	case out := <-done:
		elapsed := int(time.Since(start).Milliseconds())
		if out.err != nil {
			res = failure(models.AsAgentError(out.err))
		} else if out.res == nil {
			res = &Result{Success: true}
		} else {
			res = out.res
		}
		res.DurationMS = elapsed

	case <-hctx.Done():
		res = failure(models.NewRecoverableError(models.CodeToolTimeout,
			fmt.Sprintf("tool %q exceeded its %s timeout", call.ToolName, timeout)))
		res.DurationMS = int(time.Since(start).Milliseconds())
	}

	label := "success"
	if !res.Success {
		label = res.Error.Code
	}
	metrics.ToolExecutions.WithLabelValues(call.ToolName, label).Inc()
	metrics.ToolDuration.WithLabelValues(call.ToolName).Observe(float64(res.DurationMS) / 1000)
	return res
}

// ExecuteBatch runs independent calls concurrently and returns results in
// input order. Per-tool concurrency is bounded by each tool's semaphore.
func (r *Router) ExecuteBatch(ctx context.Context, calls []*Call) []*Result {
	results := make([]*Result, len(calls))

	var wg sync.WaitGroup
	for i, call := range calls {
		wg.Add(1)
		go func(i int, call *Call) {
			defer wg.Done()
			results[i] = r.Execute(ctx, call)
		}(i, call)
	}
	wg.Wait()

	return results
}

// semaphore returns the per-tool concurrency gate, creating it on first use
// with the catalog's rate_limit.concurrent capacity.
func (r *Router) semaphore(name string, def *Definition, hasDef bool) chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()

	sem, ok := r.sems[name]
	if !ok {
		capacity := defaultConcurrent
		if hasDef && def.RateLimit.Concurrent > 0 {
			capacity = def.RateLimit.Concurrent
		}
		sem = make(chan struct{}, capacity)
		r.sems[name] = sem
	}
	return sem
}
