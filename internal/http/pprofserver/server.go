package pprofserver

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"freight-matching-platform/internal/config"
)

const realm = "pprof"

// Config stores pprof credentials. Loopback clients never need them.
type Config struct {
	User string
	Pass string
}

// Handler serves /debug/pprof/* and /debug/vars behind authOrLocalOnly.
func Handler(cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler { return authOrLocalOnly(next, cfg) })
	r.Mount("/debug", chimw.Profiler())
	return r
}

// New returns the debug server, nil when pprof is disabled.
func New(cfg config.Pprof) *http.Server {
	if !cfg.Enabled {
		return nil
	}
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           Handler(Config{User: cfg.User, Pass: cfg.Pass}),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func authOrLocalOnly(next http.Handler, cfg Config) http.Handler {
	var authed http.Handler
	if cfg.User != "" && cfg.Pass != "" {
		authed = chimw.BasicAuth(realm, map[string]string{cfg.User: cfg.Pass})(next)
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case isLoopback(r.RemoteAddr):
			next.ServeHTTP(w, r)
		case authed == nil:
			w.Header().Set("WWW-Authenticate", `Basic realm="`+realm+`"`)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		default:
			authed.ServeHTTP(w, r)
		}
	})
}

func isLoopback(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	ip := net.ParseIP(strings.TrimSpace(host))
	return ip != nil && ip.IsLoopback()
}
