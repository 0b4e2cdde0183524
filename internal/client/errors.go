package client

import (
	"errors"
	"fmt"
	"net/http"

	"freight-matching-platform/internal/apperr"
)

// APIError is a failed API call. Kind is one of the apperr sentinels so
// callers can match with errors.Is.
type APIError struct {
	Status  int
	Code    string
	Message string
	Kind    error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

func (e *APIError) Unwrap() error { return e.Kind }

// serverMessage is shown when a 5xx or transport failure carries nothing usable.
const serverMessage = "server error, please try again later"

// kindFor prefers the server's machine code and falls back to the HTTP status.
func kindFor(status int, code string) error {
	if status >= http.StatusInternalServerError {
		return apperr.RemoteFailure
	}
	if k := apperr.FromCode(code); k != nil && !errors.Is(k, apperr.RemoteFailure) {
		return k
	}
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return apperr.Invalid
	case http.StatusUnauthorized:
		return apperr.Unauthenticated
	case http.StatusForbidden:
		return apperr.Unauthorized
	case http.StatusNotFound:
		return apperr.NotFound
	case http.StatusConflict:
		return apperr.Conflict
	default:
		return apperr.RemoteFailure
	}
}

func newAPIError(status int, code, message string) *APIError {
	kind := kindFor(status, code)
	if message == "" || status >= http.StatusInternalServerError {
		message = defaultMessage(kind)
	}
	return &APIError{Status: status, Code: apperr.Code(kind), Message: message, Kind: kind}
}

func transportError(err error) *APIError {
	return &APIError{
		Code:    apperr.Code(apperr.RemoteFailure),
		Message: fmt.Sprintf("%s: %v", serverMessage, err),
		Kind:    apperr.RemoteFailure,
	}
}

func defaultMessage(kind error) string {
	switch {
	case errors.Is(kind, apperr.MissingReason):
		return "a reason is required"
	case errors.Is(kind, apperr.Invalid):
		return "the request is invalid"
	case errors.Is(kind, apperr.Unauthenticated):
		return "please log in"
	case errors.Is(kind, apperr.Unauthorized):
		return "you are not allowed to do this"
	case errors.Is(kind, apperr.NotFound):
		return "not found"
	case errors.Is(kind, apperr.InvalidTransition):
		return "this action is not possible in the current status"
	case errors.Is(kind, apperr.Conflict):
		return "the data changed in the meantime, reload and try again"
	default:
		return serverMessage
	}
}
