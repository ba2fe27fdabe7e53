// Agentplane control-plane server — serves the HTTP API, runs the task
// queue workers, and drives the periodic agent and cleanup schedules.
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
	"time"

	"github.com/joho/godotenv"

	"github.com/bookflow/agentplane/pkg/agent"
	"github.com/bookflow/agentplane/pkg/agent/concierge"
	"github.com/bookflow/agentplane/pkg/agent/gapfill"
	"github.com/bookflow/agentplane/pkg/api"
	"github.com/bookflow/agentplane/pkg/approval"
	"github.com/bookflow/agentplane/pkg/audit"
	"github.com/bookflow/agentplane/pkg/booking"
	"github.com/bookflow/agentplane/pkg/cache"
	"github.com/bookflow/agentplane/pkg/cleanup"
	"github.com/bookflow/agentplane/pkg/config"
	"github.com/bookflow/agentplane/pkg/database"
	"github.com/bookflow/agentplane/pkg/directory"
	"github.com/bookflow/agentplane/pkg/events"
	"github.com/bookflow/agentplane/pkg/guardrail"
	"github.com/bookflow/agentplane/pkg/llm"
	"github.com/bookflow/agentplane/pkg/outreach"
	"github.com/bookflow/agentplane/pkg/pipeline"
	"github.com/bookflow/agentplane/pkg/queue"
	"github.com/bookflow/agentplane/pkg/scheduler"
	"github.com/bookflow/agentplane/pkg/services"
	"github.com/bookflow/agentplane/pkg/slack"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// directoryAdapter narrows the directory client to the slice the
// orchestrator needs.
type directoryAdapter struct {
	lookup interface {
		Contact(ctx context.Context, tenantID, customerID string) (directory.Contact, error)
	}
}

func (d directoryAdapter) Contact(ctx context.Context, tenantID, customerID string) (gapfill.Contact, error) {
	c, err := d.lookup.Contact(ctx, tenantID, customerID)
	if err != nil {
		return gapfill.Contact{}, err
	}
	return gapfill.Contact{Name: c.Name, Phone: c.Phone}, nil
}

func main() {
	// Parse command-line flags
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
	podID := resolvePodID()
	logger := slog.Default()

	slog.Info("Starting agentplane",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
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

	// 3. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. Domain services and cross-cutting infrastructure
	decisions := services.NewDecisionService(dbClient.Client)
	gaps := services.NewGapService(dbClient.Client)
	scores := services.NewScoreService(dbClient.Client)
	publisher := events.NewPublisher(dbClient.DB())
	auditor := audit.NewWriter(dbClient.Client, logger)
	slog.Info("Services initialized")

	// 5. LLM gateway, response cache, guardrail
	llmClient := llm.New(cfg.Provider, logger)
	if !llmClient.Available() {
		slog.Warn("LLM provider API key not configured — agent message drafting degraded")
	}
	responseCache := cache.New(cfg.Cache, llmClient, logger)
	guard := guardrail.New()

	// 6. Agent runtime and state-machine services
	runtime := agent.NewRuntime(dbClient.Client, cfg, publisher, auditor, logger)
	approvals := approval.NewService(dbClient.Client, decisions, cfg.Approval, publisher, auditor, logger)
	if slackSvc := slack.NewService(slack.Config{
		Token:        os.Getenv("SLACK_BOT_TOKEN"),
		Channel:      os.Getenv("SLACK_APPROVALS_CHANNEL"),
		DashboardURL: os.Getenv("DASHBOARD_URL"),
	}); slackSvc != nil {
		approvals.SetNotifier(slackSvc)
		logger.Info("Slack approval notifications enabled")
	}
	outreaches := outreach.NewService(dbClient.Client, cfg.Outreach, publisher, logger)

	var provider outreach.Provider
	if sid, token := os.Getenv("TWILIO_ACCOUNT_SID"), os.Getenv("TWILIO_AUTH_TOKEN"); sid != "" && token != "" {
		provider = outreach.NewTwilioProvider(sid, token,
			os.Getenv("TWILIO_FROM_SMS"),
			os.Getenv("TWILIO_FROM_WHATSAPP"),
			os.Getenv("PROVIDER_STATUS_CALLBACK_URL"),
			logger)
		slog.Info("Twilio messaging provider configured")
	} else {
		provider = &outreach.LogProvider{Logger: logger}
		slog.Warn("No messaging credentials — outreach sends are logged only")
	}

	// 7. Scheduler, customer directory, gap-fill orchestrator
	sched := scheduler.New(dbClient.Client, runtime, cfg, logger)

	var dir gapfill.Directory
	if baseURL := os.Getenv("DIRECTORY_BASE_URL"); baseURL != "" {
		dir = directoryAdapter{lookup: directory.NewClient(baseURL, os.Getenv("DIRECTORY_API_TOKEN"), logger)}
	} else {
		dir = directoryAdapter{lookup: directory.Static{}}
		slog.Warn("No customer directory configured — gap-fill candidates cannot be contacted")
	}

	var bookings gapfill.Bookings
	if baseURL := os.Getenv("BOOKING_BASE_URL"); baseURL != "" {
		bookings = booking.NewClient(baseURL, os.Getenv("BOOKING_API_TOKEN"), logger)
	} else {
		slog.Warn("No scheduling service configured — accepted offers cannot be booked")
	}

	orchestrator := gapfill.New(gaps, scores, decisions, outreaches, approvals,
		runtime, llmClient, dir, bookings, sched, publisher, cfg, logger)

	// 8. Agent registry and decision pipeline
	registry := agent.NewRegistry()
	if err := registry.Register(concierge.New(llmClient)); err != nil {
		slog.Error("Failed to register agent", "error", err)
		os.Exit(1)
	}
	if err := registry.Register(gapfill.NewInvokeAgent(orchestrator)); err != nil {
		slog.Error("Failed to register agent", "error", err)
		os.Exit(1)
	}
	pipe := pipeline.New(registry, runtime, guard, responseCache, cfg, logger)

	// 9. Task queue: executor, handlers, worker pool
	executor := queue.NewExecutor(logger)
	handlers := queue.NewHandlers(orchestrator, outreaches, provider, approvals, decisions, runtime, sched, logger)
	handlers.RegisterAll(executor)

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 10. Recurring schedules
	ticker := scheduler.NewTicker(logger)
	ticker.Add("agent_tick", cfg.Sweep.TickInterval.String(), func(ctx context.Context) {
		if _, err := sched.ScheduleTick(ctx); err != nil {
			slog.Error("Agent tick sweep failed", "error", err)
		}
	})
	for _, kind := range []string{
		scheduler.CleanupExpiredApprovals,
		scheduler.CleanupExpiredOutreach,
		scheduler.CleanupExpiredGaps,
	} {
		kind := kind
		ticker.Add("cleanup_"+kind, cfg.Sweep.CleanupInterval.String(), func(ctx context.Context) {
			if err := sched.ScheduleCleanup(ctx, kind, ""); err != nil {
				slog.Error("Cleanup sweep not scheduled", "kind", kind, "error", err)
			}
		})
	}
	ticker.Add("score_recompute", cfg.Sweep.ScoreRecomputeCron, func(ctx context.Context) {
		refreshed, err := scores.RecomputeSweep(ctx, time.Now().UTC().Add(-24*time.Hour))
		if err != nil {
			slog.Error("Score recompute sweep failed", "error", err)
			return
		}
		slog.Info("Score recompute sweep finished", "refreshed", refreshed)
	})
	ticker.Start(ctx)

	retention := cleanup.NewService(cfg.Retention, dbClient.Client)
	retention.Start(ctx)

	// 11. Create HTTP server
	httpServer := api.NewServer(cfg, dbClient, pipe, decisions, approvals,
		outreaches, orchestrator, sched, workerPool, llmClient, responseCache, logger)

	// 12. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Agentplane started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount,
		"agents", registry.Names())

	// 13. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 14. Graceful shutdown: schedules first, then workers, then HTTP
	ticker.Stop()
	retention.Stop()
	slog.Info("Recurring schedules stopped")

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete tasks will be orphan-recovered")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
