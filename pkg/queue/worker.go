// Package queue implements the dispatcher: a pool of workers that claim
// queued runs under row locks with visibility-timeout leases, plus the reaper
// that recovers expired leases and enforces run deadlines.
package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/taskfleet/maestro/ent"
	"github.com/taskfleet/maestro/ent/run"
	"github.com/taskfleet/maestro/pkg/config"
	"github.com/taskfleet/maestro/pkg/metrics"
)

// Executor processes one claimed run to completion or suspension.
// *supervisor.Supervisor satisfies it.
type Executor interface {
	Execute(ctx context.Context, r *ent.Run) error
}

// Worker polls for claimable runs and drives them through the executor while
// keeping the lease alive with heartbeats.
type Worker struct {
	id     string
	client *ent.Client
	exec   Executor
	cfg    *config.QueueConfig
}

// NewWorker creates a worker with a unique lease-holder id.
func NewWorker(id string, client *ent.Client, exec Executor, cfg *config.QueueConfig) *Worker {
	return &Worker{id: id, client: client, exec: exec, cfg: cfg}
}

// ID returns the worker's lease-holder id.
func (w *Worker) ID() string {
	return w.id
}

// Run polls until ctx is cancelled. A successful claim is processed and the
// next poll happens immediately; an empty queue backs off by the jittered
// poll interval.
func (w *Worker) Run(ctx context.Context) {
	slog.Info("Worker started", "worker_id", w.id)
	for {
		if ctx.Err() != nil {
			slog.Info("Worker stopped", "worker_id", w.id)
			return
		}

		r, err := w.Claim(ctx)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				slog.Error("Claim failed", "worker_id", w.id, "error", err)
			}
		} else if r != nil {
			w.process(ctx, r)
			continue
		}

		select {
		case <-time.After(w.pollDelay()):
		case <-ctx.Done():
		}
	}
}

// Claim atomically leases the next dispatchable run: highest priority first,
// oldest first within a priority. SKIP LOCKED keeps concurrent claimers from
// blocking on each other. Returns nil when nothing is claimable.
//
// Two populations are dispatchable: queued runs, and executing runs whose
// lease was cleared (resumed after waiting_user, or requeued by the reaper
// mid-plan). A queued run moves to planning; an executing one stays executing
// and the supervisor picks up from its stored plan.
func (w *Worker) Claim(ctx context.Context) (*ent.Run, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Global concurrency cap across all replicas, checked under the same
	// transaction that takes the row lock.
	active, err := tx.Run.Query().
		Where(
			run.StatusIn(run.StatusPlanning, run.StatusExecuting),
			run.LeaseExpiresAtNotNil(),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active runs: %w", err)
	}
	if active >= w.cfg.MaxConcurrentRuns {
		return nil, nil
	}

	r, err := tx.Run.Query().
		Where(
			run.Or(
				run.StatusEQ(run.StatusQueued),
				run.And(run.StatusEQ(run.StatusExecuting), run.LeaseExpiresAtIsNil()),
			),
		).
		Order(ent.Desc(run.FieldPriority), ent.Asc(run.FieldCreatedAt)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to select claimable run: %w", err)
	}

	status := run.StatusExecuting
	if r.Status == run.StatusQueued {
		status = run.StatusPlanning
	}
	claimed, err := tx.Run.UpdateOne(r).
		SetStatus(status).
		SetWorkerID(w.id).
		SetLeaseExpiresAt(time.Now().Add(w.cfg.LeaseDuration)).
		SetLastHeartbeatAt(time.Now()).
		AddVersion(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lease run %s: %w", r.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	slog.Info("Run claimed", "worker_id", w.id, "run_id", claimed.ID, "status", claimed.Status)
	return claimed, nil
}

// process executes the claimed run under a live heartbeat.
func (w *Worker) process(ctx context.Context, r *ent.Run) {
	metrics.RunsClaimed.Inc()
	metrics.ActiveRuns.Inc()
	defer metrics.ActiveRuns.Dec()

	hbCtx, stopHeartbeat := context.WithCancel(ctx)
	defer stopHeartbeat()
	go w.heartbeat(hbCtx, r.ID)

	err := w.exec.Execute(ctx, r)
	stopHeartbeat()
	switch {
	case err == nil:
		// Terminal or suspended; the transition already settled the lease.
	case errors.Is(err, context.Canceled):
		// Shutdown: the lease stays put and the reaper requeues it on expiry.
		slog.Info("Run interrupted by shutdown", "worker_id", w.id, "run_id", r.ID)
	default:
		slog.Error("Run execution failed, requeueing",
			"worker_id", w.id, "run_id", r.ID, "error", err)
		w.requeue(r.ID)
	}
}

// heartbeat extends the lease while the run executes. A zero-row update means
// the lease was lost (reaped or finished) and the heartbeat stops.
func (w *Worker) heartbeat(ctx context.Context, runID string) {
	ticker := time.NewTicker(w.cfg.HeartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		n, err := w.client.Run.Update().
			Where(
				run.IDEQ(runID),
				run.WorkerIDEQ(w.id),
				run.StatusIn(run.StatusPlanning, run.StatusExecuting),
			).
			SetLeaseExpiresAt(time.Now().Add(w.cfg.LeaseDuration)).
			SetLastHeartbeatAt(time.Now()).
			Save(ctx)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				slog.Warn("Heartbeat failed", "worker_id", w.id, "run_id", runID, "error", err)
			}
			continue
		}
		if n == 0 {
			slog.Warn("Lease lost, stopping heartbeat", "worker_id", w.id, "run_id", runID)
			return
		}
	}
}

// requeue hands a run this worker could not process back to the queue,
// provided the lease is still ours. Detached context: requeueing must happen
// even when the worker's context is gone.
func (w *Worker) requeue(runID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := w.client.Run.Update().
		Where(
			run.IDEQ(runID),
			run.WorkerIDEQ(w.id),
			run.StatusIn(run.StatusPlanning, run.StatusExecuting),
		).
		SetStatus(run.StatusQueued).
		ClearWorkerID().
		ClearLeaseExpiresAt().
		AddRetryCount(1).
		AddVersion(1).
		Save(ctx)
	if err != nil {
		slog.Error("Failed to requeue run", "worker_id", w.id, "run_id", runID, "error", err)
		return
	}
	if n > 0 {
		slog.Info("Run requeued", "worker_id", w.id, "run_id", runID)
	}
}

// pollDelay returns the jittered poll interval. Jitter decorrelates replicas
// so they do not hammer the queue in lockstep.
func (w *Worker) pollDelay() time.Duration {
	base := w.cfg.PollInterval
	jitter := w.cfg.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	d := base - jitter + time.Duration(rand.Int63n(int64(2*jitter)))
	if d < 0 {
		return 0
	}
	return d
}
