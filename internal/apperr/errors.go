package apperr

import "errors"

// Invalid is returned when the input fails domain validation.
var Invalid = errors.New("invalid input")

// Unauthenticated indicates a missing, expired or revoked credential.
var Unauthenticated = errors.New("unauthenticated")

// Unauthorized indicates that the actor's role or ownership does not permit the action.
var Unauthorized = errors.New("unauthorized")

// Conflict indicates a uniqueness or state conflict (HTTP 409).
var Conflict = errors.New("conflict")

// NotFound indicates that the requested resource does not exist.
var NotFound = errors.New("not found")

// InvalidTransition is returned when the match state machine has no edge for the action.
var InvalidTransition = errors.New("invalid transition")

// MissingReason is returned when a match is rejected without a reason.
var MissingReason = errors.New("missing reason")

// RemoteFailure wraps network and HTTP-level failures talking to the API.
var RemoteFailure = errors.New("remote failure")

// Code returns a stable machine-readable code for err, used on the wire.
func Code(err error) string {
	switch {
	case errors.Is(err, Invalid):
		return "validation_failure"
	case errors.Is(err, MissingReason):
		return "missing_reason"
	case errors.Is(err, Unauthenticated):
		return "unauthenticated"
	case errors.Is(err, Unauthorized):
		return "unauthorized"
	case errors.Is(err, NotFound):
		return "not_found"
	case errors.Is(err, InvalidTransition):
		return "invalid_transition"
	case errors.Is(err, Conflict):
		return "conflict"
	case errors.Is(err, RemoteFailure):
		return "remote_failure"
	default:
		return "internal"
	}
}

// FromCode maps a wire code back to its sentinel. Unknown codes return nil.
func FromCode(code string) error {
	switch code {
	case "validation_failure":
		return Invalid
	case "missing_reason":
		return MissingReason
	case "unauthenticated":
		return Unauthenticated
	case "unauthorized":
		return Unauthorized
	case "not_found":
		return NotFound
	case "invalid_transition":
		return InvalidTransition
	case "conflict":
		return Conflict
	case "remote_failure":
		return RemoteFailure
	default:
		return nil
	}
}
