package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskfleet/maestro/pkg/database"
	"github.com/taskfleet/maestro/pkg/version"
)

// HealthCheck reports database and worker pool health. Degraded dependencies
// turn the status code to 503 so load balancers stop routing here.
func (s *Server) HealthCheck(c *gin.Context) {
	ctx := c.Request.Context()
	healthy := true
	out := gin.H{"version": version.Full()}

	if s.db != nil {
		dbHealth, err := database.Health(ctx, s.db.DB())
		if err != nil {
			healthy = false
			out["database"] = gin.H{"healthy": false, "error": err.Error()}
		} else {
			out["database"] = dbHealth
		}
	}
	if s.pool != nil {
		poolHealth, err := s.pool.Health(ctx)
		if err != nil {
			healthy = false
			out["queue"] = gin.H{"error": err.Error()}
		} else {
			out["queue"] = poolHealth
			healthy = healthy && poolHealth.Running
		}
	}

	status := http.StatusOK
	if healthy {
		out["status"] = "ok"
	} else {
		out["status"] = "degraded"
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, out)
}

// QueueHealth reports queue depth and worker pool state.
func (s *Server) QueueHealth(c *gin.Context) {
	if s.pool == nil {
		c.JSON(http.StatusOK, gin.H{"running": false})
		return
	}
	health, err := s.pool.Health(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, health)
}

// ModelHealth reports the per-model availability the router tracks.
func (s *Server) ModelHealth(c *gin.Context) {
	if s.llmHealth == nil {
		c.JSON(http.StatusOK, gin.H{"models": []any{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"models": s.llmHealth.Snapshot()})
}
