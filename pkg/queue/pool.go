package queue

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/taskfleet/maestro/ent"
	"github.com/taskfleet/maestro/ent/run"
	"github.com/taskfleet/maestro/pkg/config"
	"github.com/taskfleet/maestro/pkg/services"
)

// Pool runs the per-replica worker goroutines and the reaper.
type Pool struct {
	cfg     *config.QueueConfig
	client  *ent.Client
	workers []*Worker
	reaper  *Reaper

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// PoolHealth is the queue surface of the health endpoint.
type PoolHealth struct {
	Running    bool `json:"running"`
	Workers    int  `json:"workers"`
	QueueDepth int  `json:"queue_depth"`
	ActiveRuns int  `json:"active_runs"`
}

// NewPool creates the worker pool. Worker ids embed the hostname so a lease
// holder can be traced back to its pod.
func NewPool(cfg *config.QueueConfig, client *ent.Client, runs *services.RunService, exec Executor) *Pool {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "maestro"
	}
	suffix := uuid.New().String()[:8]

	workers := make([]*Worker, 0, cfg.WorkerCount)
	for i := 0; i < cfg.WorkerCount; i++ {
		id := fmt.Sprintf("%s-%s-w%d", host, suffix, i)
		workers = append(workers, NewWorker(id, client, exec, cfg))
	}
	return &Pool{
		cfg:     cfg,
		client:  client,
		workers: workers,
		reaper:  NewReaper(client, runs, cfg),
	}
}

// Start launches the workers and the reaper. The reaper's immediate first
// sweep recovers leases left behind by a previous incarnation of this
// deployment before any worker claims new work.
func (p *Pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return fmt.Errorf("pool already started")
	}

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	p.running = true

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		p.reaper.Run(runCtx)
	}()
	for _, w := range p.workers {
		wg.Add(1)
		go func(w *Worker) {
			defer wg.Done()
			w.Run(runCtx)
		}(w)
	}
	go func() {
		wg.Wait()
		close(p.done)
	}()

	slog.Info("Worker pool started",
		"workers", len(p.workers),
		"max_concurrent_runs", p.cfg.MaxConcurrentRuns,
		"lease_duration", p.cfg.LeaseDuration)
	return nil
}

// Stop cancels the workers and waits up to the graceful shutdown timeout for
// in-flight runs to reach a checkpoint. Runs still leased after the timeout
// are recovered by the reaper of the next incarnation.
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	cancel()
	select {
	case <-done:
		slog.Info("Worker pool stopped")
	case <-time.After(p.cfg.GracefulShutdownTimeout):
		slog.Warn("Worker pool shutdown timed out; leaving leases to the reaper",
			"timeout", p.cfg.GracefulShutdownTimeout)
	}
}

// Health reports queue depth and active run counts for the health endpoint.
func (p *Pool) Health(ctx context.Context) (*PoolHealth, error) {
	depth, err := p.client.Run.Query().
		Where(run.StatusEQ(run.StatusQueued)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count queued runs: %w", err)
	}
	active, err := p.client.Run.Query().
		Where(
			run.StatusIn(run.StatusPlanning, run.StatusExecuting),
			run.LeaseExpiresAtNotNil(),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active runs: %w", err)
	}

	p.mu.Lock()
	running := p.running
	p.mu.Unlock()
	return &PoolHealth{
		Running:    running,
		Workers:    len(p.workers),
		QueueDepth: depth,
		ActiveRuns: active,
	}, nil
}
