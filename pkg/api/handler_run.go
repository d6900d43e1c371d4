package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskfleet/maestro/ent"
	"github.com/taskfleet/maestro/ent/run"
	"github.com/taskfleet/maestro/pkg/models"
	"github.com/taskfleet/maestro/pkg/services"
)

// transitionRetries bounds the fresh-read retry loop on CONCURRENT_UPDATE.
// Cancel racing a supervisor's step write is the common case.
const transitionRetries = 3

type createRunRequest struct {
	Prompt     string           `json:"prompt" binding:"required"`
	ExternalID string           `json:"external_id"`
	Config     models.RunConfig `json:"config"`
	Priority   int              `json:"priority"`
}

type resumeRequest struct {
	Input string `json:"input"`
}

// CreateRun creates a run and enqueues it. When external_id matches an
// existing run for the tenant, that run is returned with 200 instead of
// creating a duplicate.
func (s *Server) CreateRun(c *gin.Context) {
	var req createRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    models.CodeInvalidRequest,
			"message": fmt.Sprintf("invalid request body: %v", err),
		})
		return
	}

	id := identity(c)
	r, created, err := s.runs.CreateRun(c.Request.Context(), &models.CreateRunRequest{
		ExternalID: req.ExternalID,
		TenantID:   id.TenantID,
		UserID:     id.UserID,
		Prompt:     req.Prompt,
		Config:     req.Config,
		Priority:   req.Priority,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if !created {
		c.JSON(http.StatusOK, runDetail(r))
		return
	}

	queued, err := s.runs.Enqueue(c.Request.Context(), r)
	if err != nil {
		// The run stays pending; the caller can top up credits and hit
		// /start without re-creating it.
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, runDetail(queued))
}

// ListRuns returns the tenant's runs, newest first.
func (s *Server) ListRuns(c *gin.Context) {
	var q struct {
		Status   string `form:"status"`
		Page     int    `form:"page"`
		PageSize int    `form:"page_size"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    models.CodeInvalidRequest,
			"message": fmt.Sprintf("invalid query: %v", err),
		})
		return
	}

	resp, err := s.runs.List(c.Request.Context(), models.RunFilters{
		TenantID: identity(c).TenantID,
		Status:   q.Status,
		Page:     q.Page,
		PageSize: q.PageSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetRun returns one run.
func (s *Server) GetRun(c *gin.Context) {
	r, err := s.scopedRun(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, runDetail(r))
}

// StartRun enqueues a pending run. Create normally does this itself; start
// exists for runs whose enqueue failed (INSUFFICIENT_CREDITS) and is
// idempotent for runs already queued.
func (s *Server) StartRun(c *gin.Context) {
	r, err := s.scopedRun(c)
	if err != nil {
		respondError(c, err)
		return
	}

	switch r.Status {
	case run.StatusQueued:
		c.JSON(http.StatusOK, runDetail(r))
	case run.StatusPending:
		queued, err := s.runs.Enqueue(c.Request.Context(), r)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, runDetail(queued))
	default:
		respondError(c, models.Errorf(models.CodeInvalidRequest,
			"run %s is %s; only pending or queued runs can be started", r.ID, r.Status))
	}
}

// CancelRun cancels a run in any non-terminal state. A run being actively
// stepped by a supervisor races with its writes; the fresh-read retry absorbs
// that.
func (s *Server) CancelRun(c *gin.Context) {
	s.transitionHandler(c, run.StatusCancelled, nil)
}

// PauseRun pauses an executing run. The lease is released so the run is
// neither claimable nor reaped while parked.
func (s *Server) PauseRun(c *gin.Context) {
	s.transitionHandler(c, run.StatusPaused, &services.TransitionOptions{
		Mutate: func(u *ent.RunUpdateOne) {
			u.ClearWorkerID().ClearLeaseExpiresAt()
		},
	})
}

// ResumeRun moves a paused or waiting_user run back to executing. For
// waiting_user, input carries the answer to the run's pending question.
func (s *Server) ResumeRun(c *gin.Context) {
	r, err := s.scopedRun(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req resumeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    models.CodeInvalidRequest,
				"message": fmt.Sprintf("invalid request body: %v", err),
			})
			return
		}
	}

	resumed, err := s.runs.Resume(c.Request.Context(), r.ID, req.Input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, runDetail(resumed))
}

// RetryRun creates a fresh run from a failed one and enqueues it.
func (s *Server) RetryRun(c *gin.Context) {
	r, err := s.scopedRun(c)
	if err != nil {
		respondError(c, err)
		return
	}

	fresh, err := s.runs.Retry(c.Request.Context(), r.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	queued, err := s.runs.Enqueue(c.Request.Context(), fresh)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, runDetail(queued))
}

// ListSteps returns the run's step history in sequence order.
func (s *Server) ListSteps(c *gin.Context) {
	r, err := s.scopedRun(c)
	if err != nil {
		respondError(c, err)
		return
	}

	steps, err := s.steps.History(c.Request.Context(), r.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]gin.H, 0, len(steps))
	for _, st := range steps {
		out = append(out, stepView(st))
	}
	c.JSON(http.StatusOK, gin.H{"run_id": r.ID, "steps": out})
}

// ListArtifacts returns the artifacts the run produced.
func (s *Server) ListArtifacts(c *gin.Context) {
	r, err := s.scopedRun(c)
	if err != nil {
		respondError(c, err)
		return
	}

	arts, err := s.artifacts.ForRun(c.Request.Context(), r.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]gin.H, 0, len(arts))
	for _, a := range arts {
		out = append(out, artifactView(a))
	}
	c.JSON(http.StatusOK, gin.H{"run_id": r.ID, "artifacts": out})
}

// scopedRun loads the :id run and enforces tenant scope. Cross-tenant reads
// report not-found rather than forbidden so run ids do not leak.
func (s *Server) scopedRun(c *gin.Context) (*ent.Run, error) {
	r, err := s.runs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		return nil, err
	}
	if r.TenantID != identity(c).TenantID {
		return nil, fmt.Errorf("%w: run %s", services.ErrNotFound, r.ID)
	}
	return r, nil
}

// transitionHandler applies a user-initiated transition with the fresh-read
// retry loop.
func (s *Server) transitionHandler(c *gin.Context, to run.Status, opts *services.TransitionOptions) {
	r, err := s.scopedRun(c)
	if err != nil {
		respondError(c, err)
		return
	}

	saved, err := s.transitionWithRetry(c.Request.Context(), r, to, opts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, runDetail(saved))
}

func (s *Server) transitionWithRetry(ctx context.Context, r *ent.Run, to run.Status, opts *services.TransitionOptions) (*ent.Run, error) {
	var lastErr error
	for attempt := 0; attempt < transitionRetries; attempt++ {
		if attempt > 0 {
			var err error
			if r, err = s.runs.Get(ctx, r.ID); err != nil {
				return nil, err
			}
		}
		saved, err := s.runs.Transition(ctx, r, to, opts)
		if err == nil {
			return saved, nil
		}
		ae := models.AsAgentError(err)
		if ae.Code != models.CodeConcurrentUpdate {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}
