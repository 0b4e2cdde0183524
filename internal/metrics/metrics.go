package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewMatchTransitionsTotal returns a counter of match lifecycle transitions by action and result.
// result is "ok" or the error code of the failure.
func NewMatchTransitionsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "match_transitions_total",
		Help: "Total number of match lifecycle transitions by action and result",
	}, []string{"action", "result"})
}

// NewAutoMatchCreatedTotal returns a counter of matches created by auto-match.
func NewAutoMatchCreatedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auto_match_created_total",
		Help: "Total number of matches created by auto-match",
	})
}

// NewKafkaEventsTotal returns a counter of consumed and published events by type and result.
func NewKafkaEventsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kafka_events_total",
		Help: "Total number of freight events by type and result",
	}, []string{"type", "result"})
}

// NewHTTPRequestsTotal returns a counter of served HTTP requests by method, route pattern and status.
func NewHTTPRequestsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
}

// NewHTTPRequestDuration returns a histogram of HTTP request latency.
func NewHTTPRequestDuration() *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
}

// Registry groups the service collectors so they can be registered once.
type Registry struct {
	RateLimitExceeded prometheus.Counter
	MatchTransitions  *prometheus.CounterVec
	AutoMatchCreated  prometheus.Counter
	KafkaEvents       *prometheus.CounterVec
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
}

// New creates every collector and registers it with reg.
func New(reg prometheus.Registerer) (*Registry, error) {
	r := &Registry{
		RateLimitExceeded: NewRateLimitExceededTotal(),
		MatchTransitions:  NewMatchTransitionsTotal(),
		AutoMatchCreated:  NewAutoMatchCreatedTotal(),
		KafkaEvents:       NewKafkaEventsTotal(),
		HTTPRequests:      NewHTTPRequestsTotal(),
		HTTPDuration:      NewHTTPRequestDuration(),
	}
	collectors := []prometheus.Collector{
		r.RateLimitExceeded, r.MatchTransitions, r.AutoMatchCreated, r.KafkaEvents,
		r.HTTPRequests, r.HTTPDuration,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}
