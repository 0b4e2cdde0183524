package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"freight-matching-platform/internal/http/handlers"
	authmw "freight-matching-platform/internal/http/middleware"
	"freight-matching-platform/internal/http/middleware/ratelimit"
	"freight-matching-platform/internal/logx"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Base      *handlers.Handlers
	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
	Listing   *handlers.ListingHandler
	Match     *handlers.MatchHandler
	Location  *handlers.LocationHandler
	Admin     *handlers.AdminHandler
}

// Deps are the cross-cutting pieces of the router.
type Deps struct {
	Logger        logx.Logger
	Authenticator authmw.Authenticator
	RateLimit     *ratelimit.Middleware
	Requests      *prometheus.CounterVec
	Duration      *prometheus.HistogramVec
	Gatherer      prometheus.Gatherer
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(h Handlers, d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(authmw.Observability(d.Logger, d.Requests, d.Duration))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))

	r.Get("/ping", h.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.Base.HealthcheckHead))
	if d.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}
	r.NotFound(h.Base.NotFound)
	r.MethodNotAllowed(h.Base.MethodNotAllowed)

	r.Group(func(r chi.Router) {
		if d.RateLimit != nil {
			r.Use(d.RateLimit.Handler())
		}

		r.Post("/login", h.Auth.Login)
		r.Post("/register", h.Auth.Register)
		r.Post("/logout", h.Auth.Logout)

		r.Route("/api", func(r chi.Router) {
			r.Get("/vocabulary", h.Base.Vocabulary)
			r.Get("/carriers", h.Listing.Carriers)

			r.Group(func(r chi.Router) {
				r.Use(authmw.Auth(d.Authenticator, d.Logger))

				r.Get("/dashboard", h.Dashboard.Get)

				r.Get("/tolerances", h.Listing.ListOffers)
				r.Post("/tolerances", h.Listing.CreateOffer)
				r.Get("/delivery-requests", h.Listing.ListRequests)
				r.Post("/delivery-requests", h.Listing.CreateRequest)

				r.Get("/matches", h.Match.List)
				r.Route("/matches/{id}", func(r chi.Router) {
					r.Get("/", h.Match.Get)
					r.Get("/capabilities", h.Match.Capabilities)
					r.Get("/events", h.Match.Events)
					r.Post("/accept", h.Match.Accept)
					r.Post("/reject", h.Match.Reject)
					r.Post("/start", h.Match.Start)
					r.Post("/complete", h.Match.Complete)
				})
				r.Post("/auto-match", h.Match.AutoMatch)

				r.Post("/location", h.Location.Update)
				r.Get("/location/path/{match_id}", h.Location.Path)

				r.Route("/admin", func(r chi.Router) {
					r.Get("/users", h.Admin.Users)
					r.Post("/users", h.Admin.CreateUser)
					r.Get("/carriers", h.Admin.Carriers)
					r.Post("/carriers", h.Admin.CreateCarrier)
					r.Get("/drivers", h.Admin.Drivers)
					r.Post("/drivers", h.Admin.CreateDriver)
					r.Get("/vehicles", h.Admin.Vehicles)
					r.Post("/vehicles", h.Admin.CreateVehicle)
					r.Get("/statistics", h.Admin.Statistics)
				})
			})
		})
	})

	return r
}
