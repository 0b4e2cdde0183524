package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/auth"
	"freight-matching-platform/internal/lifecycle"
	"freight-matching-platform/internal/logx"
)

// Authenticator resolves a bearer token into the calling actor.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (lifecycle.Actor, *auth.Claims, error)
}

type ctxKey int

const (
	actorKey ctxKey = iota
	tokenKey
)

// WithActor stores the authenticated actor and its raw token in ctx.
func WithActor(ctx context.Context, actor lifecycle.Actor, token string) context.Context {
	ctx = context.WithValue(ctx, actorKey, actor)
	return context.WithValue(ctx, tokenKey, token)
}

// ActorFrom returns the actor stored by Auth.
func ActorFrom(ctx context.Context) (lifecycle.Actor, bool) {
	a, ok := ctx.Value(actorKey).(lifecycle.Actor)
	return a, ok
}

// TokenFrom returns the raw bearer token stored by Auth, empty when absent.
func TokenFrom(ctx context.Context) string {
	s, _ := ctx.Value(tokenKey).(string)
	return s
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Auth rejects requests without a valid bearer token and stores the resolved actor.
func Auth(authn Authenticator, logger logx.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logx.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				unauthenticated(w, logger, r, "missing bearer token")
				return
			}
			actor, _, err := authn.Authenticate(r.Context(), token)
			if err != nil {
				logger.Debug("token rejected",
					logx.String("path", r.URL.Path),
					logx.Err(err),
				)
				unauthenticated(w, logger, r, "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor, token)))
		})
	}
}

type authError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

func unauthenticated(w http.ResponseWriter, logger logx.Logger, r *http.Request, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="freight"`)
	w.WriteHeader(http.StatusUnauthorized)
	body := authError{Error: msg, Code: apperr.Code(apperr.Unauthenticated)}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Debug("auth response write failed",
			logx.String("path", r.URL.Path),
			logx.Err(err),
		)
	}
}
