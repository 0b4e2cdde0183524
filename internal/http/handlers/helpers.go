package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"freight-matching-platform/internal/apperr"
	authmw "freight-matching-platform/internal/http/middleware"
	"freight-matching-platform/internal/lifecycle"
	"freight-matching-platform/internal/logx"
)

const bodyLimit = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func reqID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return "-"
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func success(msg string) envelope { return envelope{Success: true, Message: msg} }

type errResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

func writeJSON(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		logger.Error("json encode failed",
			logx.String("req_id", reqID(r.Context())),
			logx.Err(err),
		)
	}
}

func writeError(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	fields := []logx.Field{
		logx.String("req_id", reqID(r.Context())),
		logx.Int("status", status),
		logx.String("code", code),
		logx.String("msg", msg),
	}
	if status >= http.StatusInternalServerError {
		logger.Error("http error", fields...)
	} else {
		logger.Debug("http error", fields...)
	}
	writeJSON(logger, w, r, status, errResponse{Error: msg, Code: code})
}

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.Invalid), errors.Is(err, apperr.MissingReason):
		return http.StatusBadRequest
	case errors.Is(err, apperr.Unauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.Unauthorized):
		return http.StatusForbidden
	case errors.Is(err, apperr.NotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.Conflict), errors.Is(err, apperr.InvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeAppError(logger logx.Logger, w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			logx.String("req_id", reqID(r.Context())),
			logx.String("path", r.URL.Path),
			logx.Err(err),
		)
		msg = "internal error"
	}
	writeError(logger, w, r, status, apperr.Code(err), msg)
}

func writeInvalid(logger logx.Logger, w http.ResponseWriter, r *http.Request, msg string) {
	writeError(logger, w, r, http.StatusBadRequest, apperr.Code(apperr.Invalid), msg)
}

// decodeJSON decodes and validates the body into dst. An empty body is
// accepted only when optional is set.
func decodeJSON[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, dst *T, optional bool) bool {
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return true
		}
		writeInvalid(logger, w, r, "invalid json")
		return false
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		writeInvalid(logger, w, r, "invalid json: trailing data")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeInvalid(logger, w, r, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid input"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "required_if":
			msgs = append(msgs, fe.Field()+" is required")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		case "min", "gte", "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is not a valid %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

func idFromURL(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

func optionalID(r *http.Request, name string) (*int64, error) {
	s := strings.TrimSpace(r.URL.Query().Get(name))
	if s == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("invalid %s", name)
	}
	return &id, nil
}

// actorFrom returns the authenticated actor or answers 401.
func actorFrom(logger logx.Logger, w http.ResponseWriter, r *http.Request) (lifecycle.Actor, bool) {
	a, found := authmw.ActorFrom(r.Context())
	if !found {
		writeError(logger, w, r, http.StatusUnauthorized, apperr.Code(apperr.Unauthenticated), "authentication required")
		return lifecycle.Actor{}, false
	}
	return a, true
}

// localeFrom prefers an explicit ?lang= over Accept-Language.
func localeFrom(r *http.Request) language.Tag {
	if l := r.URL.Query().Get("lang"); l != "" {
		return lifecycle.ParseLocale(l)
	}
	return lifecycle.ParseLocale(r.Header.Get("Accept-Language"))
}
