package app

import (
	"go.uber.org/dig"

	"freight-matching-platform/internal/config"
	"freight-matching-platform/internal/http/middleware/ratelimit"
	"freight-matching-platform/internal/logx"
	"freight-matching-platform/internal/metrics"
)

func newRateLimiter(cfg *config.Config, clock ratelimit.Clock) ratelimit.Limiter {
	return ratelimit.FromConfig(cfg.RateLimit, clock)
}

func newRateLimitClock() ratelimit.Clock {
	return ratelimit.RealClock{}
}

type rateLimitIn struct {
	dig.In
	Logger  logx.Logger
	Metrics *metrics.Registry
	Limiter ratelimit.Limiter
}

func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	return ratelimit.New(in.Logger, in.Metrics.RateLimitExceeded, in.Limiter)
}
