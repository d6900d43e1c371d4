package queue

import (
	"context"
	"log/slog"
	"time"

	"github.com/taskfleet/maestro/ent"
	"github.com/taskfleet/maestro/ent/run"
	"github.com/taskfleet/maestro/pkg/config"
	"github.com/taskfleet/maestro/pkg/metrics"
	"github.com/taskfleet/maestro/pkg/models"
	"github.com/taskfleet/maestro/pkg/services"
)

// Reaper recovers runs whose worker died (expired lease) and enforces each
// run's hard deadline. Lease recovery is a dispatcher concern: it rewinds the
// run to queued with a direct conditional write rather than a lifecycle edge,
// since the state machine only models forward progress.
type Reaper struct {
	client *ent.Client
	runs   *services.RunService
	cfg    *config.QueueConfig
}

// NewReaper creates the reaper.
func NewReaper(client *ent.Client, runs *services.RunService, cfg *config.QueueConfig) *Reaper {
	return &Reaper{client: client, runs: runs, cfg: cfg}
}

// Run sweeps on the configured interval until ctx is cancelled. The first
// sweep happens immediately, which doubles as startup recovery after a crash
// of the whole deployment.
func (rp *Reaper) Run(ctx context.Context) {
	slog.Info("Reaper started", "interval", rp.cfg.ReaperInterval)
	ticker := time.NewTicker(rp.cfg.ReaperInterval)
	defer ticker.Stop()

	for {
		if requeued, failed, timedOut, err := rp.Sweep(ctx); err != nil {
			slog.Error("Reaper sweep failed", "error", err)
		} else if requeued+failed+timedOut > 0 {
			slog.Info("Reaper sweep",
				"requeued", requeued, "failed", failed, "timed_out", timedOut)
		}

		select {
		case <-ctx.Done():
			slog.Info("Reaper stopped")
			return
		case <-ticker.C:
		}
	}
}

// Sweep performs one pass: expired leases first, then deadline enforcement.
func (rp *Reaper) Sweep(ctx context.Context) (requeued, failed, timedOut int, err error) {
	requeued, failed, err = rp.reapExpiredLeases(ctx)
	if err != nil {
		return requeued, failed, 0, err
	}
	timedOut, err = rp.enforceDeadlines(ctx)
	return requeued, failed, timedOut, err
}

// reapExpiredLeases returns expired-lease runs to the queue with a retry
// increment, or fails them once the retry budget is spent. The version
// predicate on the requeue write makes losing a race with a late heartbeat
// harmless.
func (rp *Reaper) reapExpiredLeases(ctx context.Context) (requeued, failed int, err error) {
	expired, err := rp.client.Run.Query().
		Where(
			run.StatusIn(run.StatusPlanning, run.StatusExecuting),
			run.LeaseExpiresAtNotNil(),
			run.LeaseExpiresAtLT(time.Now()),
		).
		All(ctx)
	if err != nil {
		return 0, 0, err
	}

	for _, r := range expired {
		if r.RetryCount >= r.MaxRetries {
			ae := models.Errorf(models.CodeLeaseExpiredExceeded,
				"lease expired %d times, retry budget exhausted", r.RetryCount)
			if _, terr := rp.runs.Transition(ctx, r, run.StatusFailed,
				&services.TransitionOptions{Error: ae}); terr != nil {
				slog.Warn("Failed to fail lease-exhausted run",
					"run_id", r.ID, "error", terr)
				continue
			}
			metrics.LeasesReaped.Inc()
			failed++
			continue
		}

		n, uerr := rp.client.Run.Update().
			Where(run.IDEQ(r.ID), run.VersionEQ(r.Version)).
			SetStatus(run.StatusQueued).
			ClearWorkerID().
			ClearLeaseExpiresAt().
			AddRetryCount(1).
			AddVersion(1).
			Save(ctx)
		if uerr != nil {
			slog.Warn("Failed to requeue expired lease", "run_id", r.ID, "error", uerr)
			continue
		}
		if n > 0 {
			slog.Warn("Lease expired, run requeued",
				"run_id", r.ID, "worker_id", r.WorkerID, "retry_count", r.RetryCount+1)
			metrics.LeasesReaped.Inc()
			requeued++
		}
	}
	return requeued, failed, nil
}

// enforceDeadlines times out runs past their timeout_at, including runs
// parked in waiting_user — an unanswered question does not suspend the clock.
// Leased runs are left to their own supervisor, which checks the deadline at
// every iteration boundary.
func (rp *Reaper) enforceDeadlines(ctx context.Context) (int, error) {
	overdue, err := rp.client.Run.Query().
		Where(
			run.Or(
				run.StatusEQ(run.StatusQueued),
				run.StatusEQ(run.StatusWaitingUser),
				run.And(run.StatusEQ(run.StatusExecuting), run.LeaseExpiresAtIsNil()),
			),
			run.TimeoutAtNotNil(),
			run.TimeoutAtLT(time.Now()),
		).
		All(ctx)
	if err != nil {
		return 0, err
	}

	timedOut := 0
	for _, r := range overdue {
		ae := models.Errorf(models.CodeRunTimeout,
			"run exceeded its %s deadline while %s", r.TimeoutAt.Format(time.RFC3339), r.Status)
		if _, terr := rp.runs.Transition(ctx, r, run.StatusTimeout,
			&services.TransitionOptions{Error: ae}); terr != nil {
			slog.Warn("Failed to time out run", "run_id", r.ID, "error", terr)
			continue
		}
		timedOut++
	}
	return timedOut, nil
}
