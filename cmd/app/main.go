package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thj-dnt/clockwork-banker/internal/cart"
	"github.com/thj-dnt/clockwork-banker/internal/config"
	"github.com/thj-dnt/clockwork-banker/internal/database"
	"github.com/thj-dnt/clockwork-banker/internal/database/postgres"
	"github.com/thj-dnt/clockwork-banker/internal/event"
	"github.com/thj-dnt/clockwork-banker/internal/inventory"
	"github.com/thj-dnt/clockwork-banker/internal/metrics"
	"github.com/thj-dnt/clockwork-banker/internal/request"
	"github.com/thj-dnt/clockwork-banker/internal/scheduler"
	"github.com/thj-dnt/clockwork-banker/internal/server"
	"github.com/thj-dnt/clockwork-banker/internal/worker"
)

// Database pool tuning
const (
	dbMaxConns   = 10
	dbMaxIdle    = 5 * time.Minute
	dbMaxLife    = 30 * time.Minute
	shutdownWait = 10 * time.Second
)

// Background refresh keeps the index in sync with dumps uploaded outside
// the API, and picks up roster changes on the bank site.
const (
	refreshInterval    = 6 * time.Hour
	refreshTimeout     = 60 * time.Second
	backgroundWorkers  = 1
	backgroundQueueCap = 4
)

// @title Clockwork Banker API
// @version 1.0
// @description Guild bank inventory, cart, and request API for the Discord bot.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	if err := config.ValidateEnv(); err != nil {
		slog.Warn("Environment validation reported problems", "error", err)
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxIdle, dbMaxLife)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Event bus feeds the Prometheus business metrics
	eventBus := event.NewBus()
	metrics.NewEventMetricsCollector().Register(eventBus)

	// Repositories
	fileRepo := postgres.NewFileRepository(dbPool)
	requestRepo := postgres.NewRequestRepository(dbPool)

	// Services
	rosterLoader := inventory.NewRosterLoader(cfg.BankSiteURL, nil)
	inventoryService := inventory.NewService(fileRepo, rosterLoader, eventBus)
	cartService := cart.NewService(eventBus)
	requestService := request.NewService(cartService, inventoryService, requestRepo, eventBus)

	// Build the first index before accepting traffic; an empty bank is
	// a valid state so a failure only logs.
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 60*time.Second)
	if err := inventoryService.Refresh(startupCtx); err != nil {
		slog.Warn("Initial index build failed, starting with empty index", "error", err)
	}
	cancelStartup()

	// Periodic rebuilds run on a small background pool
	pool := worker.NewPool(backgroundWorkers, backgroundQueueCap)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(refreshInterval, worker.JobFunc(func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
		defer cancel()
		return inventoryService.Refresh(ctx)
	}))

	trustedProxies := []string{}
	if proxy := os.Getenv("TRUSTED_PROXY"); proxy != "" {
		trustedProxies = append(trustedProxies, proxy)
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, trustedProxies, dbPool, inventoryService, cartService, requestService, fileRepo)

	// Run the server until a signal arrives
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case s := <-sig:
		slog.Info("Shutdown signal received", "signal", s.String())
	}

	sched.Stop()
	pool.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownWait)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced shutdown", "error", err)
	}
	slog.Info("Server stopped")
}
