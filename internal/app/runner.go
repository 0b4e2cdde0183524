package app

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"freight-matching-platform/internal/logx"
	"freight-matching-platform/internal/ports/eventbus"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the API process
type Runner struct {
	runFn func(*dig.Container) error
}

// NewRunner returns a new Runner
func NewRunner() *Runner {
	return &Runner{runFn: run}
}

// MustRun starts the API using the provided DI container and blocks until shutdown
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := containerLogger(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		_ = logger.Sync()
		log.Fatalf("run error: %v", err)
	}
}

func containerLogger(container *dig.Container) logx.Logger {
	var logger logx.Logger
	if err := container.Invoke(func(l logx.Logger) { logger = l }); err != nil || logger == nil {
		return logx.NewSlogAdapter(slog.Default())
	}
	return logger
}

type appIn struct {
	dig.In

	Ctx       context.Context
	Logger    logx.Logger
	Pool      *pgxpool.Pool
	Server    *http.Server
	Pprof     *http.Server       `name:"pprof_server" optional:"true"`
	Health    *HealthServer      `optional:"true"`
	Redis     *redis.Client      `optional:"true"`
	Publisher eventbus.Publisher `optional:"true"`
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

func appRun(in appIn) error {
	errCh := make(chan error, 2)
	startServer(in.Server, "api", in.Logger, errCh)
	if in.Pprof != nil {
		startServer(in.Pprof, "pprof", in.Logger, errCh)
	}
	if err := in.Health.Start(in.Ctx); err != nil {
		gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
		return err
	}

	var runErr error
	select {
	case <-in.Ctx.Done():
		in.Logger.Info("shutting down service-freight")
		runErr = in.Ctx.Err()
	case runErr = <-errCh:
		in.Logger.Error("server stopped unexpectedly", logx.Err(runErr))
	}

	gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
	if in.Pprof != nil {
		gracefulShutdown(in.Pprof, in.Logger, time.Second)
	}
	in.Health.Stop()
	closeResources(in.Logger, in.Pool, in.Redis, in.Publisher)
	return runErr
}

func startServer(server *http.Server, name string, logger logx.Logger, errCh chan<- error) {
	go func() {
		logger.Info("http listening", logx.String("server", name), logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.String("addr", srv.Addr), logx.Err(err))
	}
}

func closeResources(logger logx.Logger, pool *pgxpool.Pool, rdb *redis.Client, publisher eventbus.Publisher) {
	if c, ok := publisher.(io.Closer); ok {
		if err := c.Close(); err != nil {
			logger.Error("event publisher close error", logx.Err(err))
		}
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Error("redis close error", logx.Err(err))
		}
	}
	if pool != nil {
		pool.Close()
	}
	_ = logger.Sync()
}
