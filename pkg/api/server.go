// Package api exposes the control plane over HTTP: agent invocation,
// provider webhooks, internal task endpoints, and the operator read
// surface (decisions, approvals, health, metrics).
package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bookflow/agentplane/pkg/agent/gapfill"
	"github.com/bookflow/agentplane/pkg/approval"
	"github.com/bookflow/agentplane/pkg/cache"
	"github.com/bookflow/agentplane/pkg/config"
	"github.com/bookflow/agentplane/pkg/database"
	"github.com/bookflow/agentplane/pkg/llm"
	"github.com/bookflow/agentplane/pkg/outreach"
	"github.com/bookflow/agentplane/pkg/pipeline"
	"github.com/bookflow/agentplane/pkg/queue"
	"github.com/bookflow/agentplane/pkg/scheduler"
	"github.com/bookflow/agentplane/pkg/services"
)

// InternalTokenEnv names the environment variable holding the shared
// secret for /internal/* endpoints.
const InternalTokenEnv = "QUEUE_INTERNAL_TOKEN"

// Server is the HTTP server. Construct with NewServer, then Start.
type Server struct {
	echo   *echo.Echo
	cfg    *config.Config
	logger *slog.Logger

	dbClient     *database.Client
	pipeline     *pipeline.Pipeline
	decisions    *services.DecisionService
	approvals    *approval.Service
	outreaches   *outreach.Service
	orchestrator *gapfill.Orchestrator
	sched        *scheduler.Scheduler
	workerPool   *queue.WorkerPool
	llmClient    *llm.Client
	cache        *cache.Cache

	internalToken string
	httpServer    *http.Server
}

// NewServer creates the server and registers all routes.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	p *pipeline.Pipeline,
	decisions *services.DecisionService,
	approvals *approval.Service,
	outreaches *outreach.Service,
	orchestrator *gapfill.Orchestrator,
	sched *scheduler.Scheduler,
	workerPool *queue.WorkerPool,
	llmClient *llm.Client,
	responseCache *cache.Cache,
	logger *slog.Logger,
) *Server {
	e := echo.New()

	s := &Server{
		echo:          e,
		cfg:           cfg,
		logger:        logger,
		dbClient:      dbClient,
		pipeline:      p,
		decisions:     decisions,
		approvals:     approvals,
		outreaches:    outreaches,
		orchestrator:  orchestrator,
		sched:         sched,
		workerPool:    workerPool,
		llmClient:     llmClient,
		cache:         responseCache,
		internalToken: os.Getenv(InternalTokenEnv),
	}

	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")
	v1.POST("/agents/:name/invoke", s.invokeAgentHandler)

	v1.GET("/decisions", s.listDecisionsHandler)
	v1.GET("/decisions/:id", s.getDecisionHandler)

	v1.GET("/approvals", s.listApprovalsHandler)
	v1.POST("/approvals/:id/approve", s.approveHandler)
	v1.POST("/approvals/:id/reject", s.rejectHandler)
	v1.POST("/approvals/:id/cancel", s.cancelApprovalHandler)

	v1.GET("/outreach/:id", s.getOutreachHandler)

	e.POST("/webhooks/provider/status", s.providerStatusHandler)
	e.POST("/webhooks/provider/incoming", s.providerIncomingHandler)

	internal := e.Group("/internal/tasks", s.requireInternalToken)
	internal.POST("/execute", s.taskExecuteHandler)
	internal.POST("/send-notification", s.taskSendNotificationHandler)
	internal.POST("/cleanup", s.taskCleanupHandler)

	return s
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
