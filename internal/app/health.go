package app

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"freight-matching-platform/internal/config"
	"freight-matching-platform/internal/logx"
)

// healthService is the service name reported next to the overall ("") status.
const healthService = "freight.api"

const healthInterval = 5 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthServer serves grpc.health.v1 and mirrors database reachability.
type HealthServer struct {
	addr     string
	server   *grpc.Server
	health   *health.Server
	db       pinger
	logger   logx.Logger
	interval time.Duration
}

func newHealthServer(addr string, db pinger, logger logx.Logger) *HealthServer {
	hs := health.NewServer()
	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(healthService, healthpb.HealthCheckResponse_NOT_SERVING)
	return &HealthServer{
		addr:     addr,
		server:   srv,
		health:   hs,
		db:       db,
		logger:   logger,
		interval: healthInterval,
	}
}

// provideHealthServer returns nil when the health port is 0.
func provideHealthServer(cfg *config.Config, pool *pgxpool.Pool, logger logx.Logger) *HealthServer {
	if cfg.HealthPort == 0 {
		return nil
	}
	return newHealthServer(fmt.Sprintf(":%d", cfg.HealthPort), pool, logger)
}

func registerHealth(container *dig.Container) error {
	return provideAll(container, provideHealthServer)
}

// Start listens on the configured address and probes the database until ctx is done.
func (h *HealthServer) Start(ctx context.Context) error {
	if h == nil {
		return nil
	}
	lis, err := net.Listen("tcp", h.addr)
	if err != nil {
		return fmt.Errorf("health listen %s: %w", h.addr, err)
	}
	go func() {
		h.logger.Info("grpc health listening", logx.String("addr", lis.Addr().String()))
		if err := h.server.Serve(lis); err != nil {
			h.logger.Error("grpc health serve error", logx.Err(err))
		}
	}()
	go h.watch(ctx)
	return nil
}

func (h *HealthServer) watch(ctx context.Context) {
	h.check(ctx)
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.check(ctx)
		}
	}
}

func (h *HealthServer) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.db.Ping(pingCtx); err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		h.logger.Warn("db unreachable", logx.String("event", "health_check"), logx.Err(err))
	}
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(healthService, status)
}

// Stop marks every service NOT_SERVING and drains open RPCs.
func (h *HealthServer) Stop() {
	if h == nil {
		return
	}
	h.health.Shutdown()
	h.server.GracefulStop()
}
