// Maestro orchestrator server — provides the HTTP API, manages queue
// workers, and supervises agent run execution.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/taskfleet/maestro/pkg/api"
	"github.com/taskfleet/maestro/pkg/config"
	"github.com/taskfleet/maestro/pkg/credits"
	"github.com/taskfleet/maestro/pkg/database"
	"github.com/taskfleet/maestro/pkg/events"
	"github.com/taskfleet/maestro/pkg/llm"
	"github.com/taskfleet/maestro/pkg/planner"
	"github.com/taskfleet/maestro/pkg/queue"
	"github.com/taskfleet/maestro/pkg/services"
	"github.com/taskfleet/maestro/pkg/supervisor"
	"github.com/taskfleet/maestro/pkg/tools"
	"github.com/taskfleet/maestro/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting Maestro",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (migrations run inside NewClient)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Streaming infrastructure: durable publisher, in-process broker, and
	// the dedicated LISTEN connection feeding it.
	publisher := events.NewPublisher(dbClient.DB())
	broker := events.NewBroker(cfg.Queue.EventBufferSize)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), broker)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	broker.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 4. LLM router with per-model health tracking
	healthTracker := llm.NewHealthTracker(dbClient.Client)
	router, err := llm.NewRouter(cfg, healthTracker,
		llm.WithUsageRecorder(services.NewUsageRecorder(dbClient.Client)))
	if err != nil {
		slog.Error("Failed to build LLM router", "error", err)
		os.Exit(1)
	}
	slog.Info("LLM router initialized", "providers", cfg.Stats().Providers)

	// 5. Tool catalog and router
	catalog := tools.NewCatalog(cfg.ToolOverrides)
	toolRouter := tools.NewRouter(catalog)
	tools.RegisterReferenceHandlers(toolRouter, router)
	slog.Info("Tool router initialized", "tools", len(toolRouter.List()))

	// 6. Domain services
	creditMgr := credits.NewManager(dbClient.Client)
	runService := services.NewRunService(dbClient.Client, publisher, creditMgr)
	stepService := services.NewStepService(dbClient.Client)
	artifactService := services.NewArtifactService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 7. Supervisor and worker pool. The reaper's first sweep requeues any
	// leases left behind by a previous incarnation before workers claim new
	// work.
	exec := supervisor.New(supervisor.Config{
		Runs:      runService,
		Steps:     stepService,
		Artifacts: artifactService,
		Events:    eventService,
		Publisher: publisher,
		Credits:   creditMgr,
		Planner:   planner.New(router),
		Chat:      router,
		Tools:     toolRouter,
	})
	pool := queue.NewPool(cfg.Queue, dbClient.Client, runService, exec)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. HTTP server (non-blocking start)
	httpServer := api.NewServer(api.Deps{
		Config:    cfg,
		DB:        dbClient,
		Runs:      runService,
		Steps:     stepService,
		Artifacts: artifactService,
		Events:    eventService,
		Broker:    broker,
		Pool:      pool,
		LLMHealth: healthTracker,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Maestro started successfully", "workers", cfg.Queue.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop claiming, drain in-flight runs, then stop
	// serving. Runs still leased afterwards are recovered by the next
	// incarnation's reaper.
	pool.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Maestro stopped")
}
