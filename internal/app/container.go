package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/dig"

	"freight-matching-platform/internal/auth"
	"freight-matching-platform/internal/config"
	"freight-matching-platform/internal/http/handlers"
	authmw "freight-matching-platform/internal/http/middleware"
	"freight-matching-platform/internal/http/middleware/ratelimit"
	"freight-matching-platform/internal/http/pprofserver"
	"freight-matching-platform/internal/http/router"
	"freight-matching-platform/internal/logx"
	"freight-matching-platform/internal/metrics"
	"freight-matching-platform/internal/ports/eventbus"
	"freight-matching-platform/internal/repository"
	"freight-matching-platform/internal/service/admin"
	"freight-matching-platform/internal/service/automatch"
	"freight-matching-platform/internal/service/dashboard"
	"freight-matching-platform/internal/service/identity"
	"freight-matching-platform/internal/service/listing"
	"freight-matching-platform/internal/service/location"
	"freight-matching-platform/internal/service/match"
)

type dbConnectFunc func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	loadConfig func() (*config.Config, error)
	dbConnect  dbConnectFunc
	logFatalf  func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		loadConfig: config.Load,
		dbConnect:  connectDbWithRetry,
		logFatalf:  log.Fatalf,
	}
}

// WithConfig replaces flag and environment loading with a fixed configuration
func (b *ContainerBuilder) WithConfig(cfg *config.Config) *ContainerBuilder {
	if cfg != nil {
		b.loadConfig = func() (*config.Config, error) { return cfg, nil }
	}
	return b
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns the API container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds and returns the worker container
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container, err := b.base(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	if err := registerHealth(container); err != nil {
		return nil, fmt.Errorf("health: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container, err := b.base(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) base(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerInfra(container); err != nil {
		return nil, fmt.Errorf("infra: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns the API container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds and returns the worker container
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context, loadConfig func() (*config.Config, error)) error {
	return provideAll(container,
		func() context.Context { return ctx },
		loadConfig,
		NewLogger,
		provideMetrics,
		func(cfg *config.Config) time.Duration { return cfg.Matching.OperationTimeout },
	)
}

type metricsOut struct {
	dig.Out

	Registry   *metrics.Registry
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// provideMetrics registers the service collectors on a private registry
// alongside the Go runtime and process collectors.
func provideMetrics() (metricsOut, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return metricsOut{}, fmt.Errorf("register go collector: %w", err)
	}
	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return metricsOut{}, fmt.Errorf("register process collector: %w", err)
	}
	m, err := metrics.New(reg)
	if err != nil {
		return metricsOut{}, fmt.Errorf("register service metrics: %w", err)
	}
	return metricsOut{Registry: m, Registerer: reg, Gatherer: reg}, nil
}

func registerDb(container *dig.Container, dbConnect dbConnectFunc) error {
	providerDB := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		pool, err := dbConnect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
		if err != nil {
			return nil, err
		}
		if err := migrateSchema(cfg, logger); err != nil {
			pool.Close()
			return nil, err
		}
		return pool, nil
	}
	return provideAll(container, providerDB)
}

func registerInfra(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) *auth.JWTService {
			return auth.NewJWTService(cfg.Auth.Secret, cfg.Auth.TTL)
		},
		provideRedis,
		provideBlacklist,
		providePublisher,
	)
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewUserRepo,
		repository.NewCarrierRepo,
		repository.NewListingRepo,
		repository.NewLocationRepo,
		repository.NewMatchRepo,
		repository.NewStatsRepo,
		func(
			repo *repository.UserRepo,
			tokens *auth.JWTService,
			blacklist auth.Blacklist,
			timeout time.Duration,
			logger logx.Logger,
		) *identity.Service {
			return identity.NewService(repo, tokens, blacklist, timeout, logger)
		},
		func(
			repo *repository.ListingRepo,
			carriers *repository.CarrierRepo,
			publisher eventbus.Publisher,
			timeout time.Duration,
			logger logx.Logger,
		) *listing.Service {
			return listing.NewService(repo, carriers, publisher, timeout, logger)
		},
		func(
			repo *repository.MatchRepo,
			publisher eventbus.Publisher,
			m *metrics.Registry,
			timeout time.Duration,
			logger logx.Logger,
		) *match.Service {
			return match.NewService(repo, publisher, m.MatchTransitions, timeout, logger)
		},
		func(
			repo *repository.MatchRepo,
			publisher eventbus.Publisher,
			m *metrics.Registry,
			timeout time.Duration,
			logger logx.Logger,
		) *automatch.Service {
			return automatch.NewService(repo, publisher, m.AutoMatchCreated, timeout, logger)
		},
		func(repo *repository.StatsRepo, timeout time.Duration, logger logx.Logger) *dashboard.Service {
			return dashboard.NewService(repo, timeout, logger)
		},
		func(
			repo *repository.LocationRepo,
			matches *repository.MatchRepo,
			timeout time.Duration,
			logger logx.Logger,
		) *location.Service {
			return location.NewService(repo, matches, timeout, logger)
		},
		func(
			users *repository.UserRepo,
			fleet *repository.CarrierRepo,
			stats *repository.StatsRepo,
			registrar *identity.Service,
			timeout time.Duration,
			logger logx.Logger,
		) *admin.Service {
			return admin.NewService(users, fleet, stats, registrar, timeout, logger)
		},
	)
}

type serversOut struct {
	dig.Out

	Main  *http.Server
	Pprof *http.Server `name:"pprof_server"`
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) serversOut {
		return serversOut{
			Main: &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.Port),
				Handler:           mux,
				ReadHeaderTimeout: 5 * time.Second,
				ReadTimeout:       15 * time.Second,
				WriteTimeout:      15 * time.Second,
				IdleTimeout:       60 * time.Second,
			},
			Pprof: pprofserver.New(cfg.Pprof),
		}
	}
	return provideAll(container,
		func(cfg *config.Config) handlers.Format {
			return handlers.Format{Currency: cfg.Matching.Currency}
		},
		handlers.New,
		func(logger logx.Logger, uc *identity.Service, f handlers.Format) *handlers.AuthHandler {
			return handlers.NewAuthHandler(logger, uc, f)
		},
		func(logger logx.Logger, uc *dashboard.Service, f handlers.Format) *handlers.DashboardHandler {
			return handlers.NewDashboardHandler(logger, uc, f)
		},
		func(logger logx.Logger, uc *listing.Service, f handlers.Format) *handlers.ListingHandler {
			return handlers.NewListingHandler(logger, uc, f)
		},
		func(logger logx.Logger, uc *match.Service, am *automatch.Service, f handlers.Format) *handlers.MatchHandler {
			return handlers.NewMatchHandler(logger, uc, am, f)
		},
		func(logger logx.Logger, uc *location.Service) *handlers.LocationHandler {
			return handlers.NewLocationHandler(logger, uc)
		},
		func(logger logx.Logger, uc *admin.Service, f handlers.Format) *handlers.AdminHandler {
			return handlers.NewAdminHandler(logger, uc, f)
		},
		func(s *identity.Service) authmw.Authenticator { return s },
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		serverProvider,
	)
}

type routerIn struct {
	dig.In

	Logger        logx.Logger
	Metrics       *metrics.Registry
	Gatherer      prometheus.Gatherer
	Authenticator authmw.Authenticator
	RateLimit     *ratelimit.Middleware

	Base      *handlers.Handlers
	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
	Listing   *handlers.ListingHandler
	Match     *handlers.MatchHandler
	Location  *handlers.LocationHandler
	Admin     *handlers.AdminHandler
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Handlers{
		Base:      in.Base,
		Auth:      in.Auth,
		Dashboard: in.Dashboard,
		Listing:   in.Listing,
		Match:     in.Match,
		Location:  in.Location,
		Admin:     in.Admin,
	}, router.Deps{
		Logger:        in.Logger,
		Authenticator: in.Authenticator,
		RateLimit:     in.RateLimit,
		Requests:      in.Metrics.HTTPRequests,
		Duration:      in.Metrics.HTTPDuration,
		Gatherer:      in.Gatherer,
	})
}
