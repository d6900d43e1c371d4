// Package api exposes the HTTP surface: run CRUD and lifecycle operations,
// the SSE event stream, and the health/metrics endpoints.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/taskfleet/maestro/pkg/config"
	"github.com/taskfleet/maestro/pkg/database"
	"github.com/taskfleet/maestro/pkg/events"
	"github.com/taskfleet/maestro/pkg/llm"
	"github.com/taskfleet/maestro/pkg/queue"
	"github.com/taskfleet/maestro/pkg/services"
)

// Server is the HTTP server over the run services.
type Server struct {
	cfg       *config.Config
	db        *database.Client
	runs      *services.RunService
	steps     *services.StepService
	artifacts *services.ArtifactService
	eventsSvc *services.EventService
	broker    *events.Broker
	pool      *queue.Pool
	llmHealth *llm.HealthTracker
	auth      *Authenticator

	engine *gin.Engine
	srv    *http.Server
}

// Deps carries the server's collaborators.
type Deps struct {
	Config    *config.Config
	DB        *database.Client
	Runs      *services.RunService
	Steps     *services.StepService
	Artifacts *services.ArtifactService
	Events    *services.EventService
	Broker    *events.Broker
	Pool      *queue.Pool
	LLMHealth *llm.HealthTracker
	Auth      *Authenticator
}

// NewServer builds the server and its route table.
func NewServer(deps Deps) *Server {
	s := &Server{
		cfg:       deps.Config,
		db:        deps.DB,
		runs:      deps.Runs,
		steps:     deps.Steps,
		artifacts: deps.Artifacts,
		eventsSvc: deps.Events,
		broker:    deps.Broker,
		pool:      deps.Pool,
		llmHealth: deps.LLMHealth,
		auth:      deps.Auth,
	}
	if s.auth == nil {
		s.auth = NewAuthenticatorFromEnv()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(), securityHeaders())

	engine.GET("/healthz", s.HealthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := engine.Group("/api/v1", s.auth.Middleware())
	{
		v1.POST("/runs", s.CreateRun)
		v1.GET("/runs", s.ListRuns)
		v1.GET("/runs/:id", s.GetRun)
		v1.POST("/runs/:id/start", s.StartRun)
		v1.POST("/runs/:id/cancel", s.CancelRun)
		v1.POST("/runs/:id/pause", s.PauseRun)
		v1.POST("/runs/:id/resume", s.ResumeRun)
		v1.POST("/runs/:id/retry", s.RetryRun)
		v1.GET("/runs/:id/steps", s.ListSteps)
		v1.GET("/runs/:id/artifacts", s.ListArtifacts)
		v1.GET("/runs/:id/events", s.StreamEvents)
		v1.GET("/system/models", s.ModelHealth)
		v1.GET("/queue/health", s.QueueHealth)
	}

	s.engine = engine
	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
