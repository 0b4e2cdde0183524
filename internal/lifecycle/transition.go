package lifecycle

import (
	"errors"
	"fmt"
	"strings"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/domain"
)

type edge struct {
	from   domain.MatchStatus
	action domain.MatchAction
}

var transitions = map[edge]domain.MatchStatus{
	{domain.MatchPending, domain.ActionPropose}:     domain.MatchProposed,
	{domain.MatchProposed, domain.ActionAccept}:     domain.MatchAccepted,
	{domain.MatchProposed, domain.ActionReject}:     domain.MatchRejected,
	{domain.MatchAccepted, domain.ActionStart}:      domain.MatchInProgress,
	{domain.MatchInProgress, domain.ActionComplete}: domain.MatchCompleted,
	{domain.MatchRejected, domain.ActionRepropose}:  domain.MatchPending,
}

// Next returns the status reached by applying action in status from.
func Next(from domain.MatchStatus, action domain.MatchAction) (domain.MatchStatus, bool) {
	to, ok := transitions[edge{from, action}]
	return to, ok
}

// Terminal reports whether no action leaves status s.
// Rejected is terminal unless the platform re-proposes it.
func Terminal(s domain.MatchStatus) bool {
	return s == domain.MatchCompleted || s == domain.MatchRejected
}

// TransitionError is returned when the state machine has no edge for the requested action.
type TransitionError struct {
	From   domain.MatchStatus
	Action domain.MatchAction
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a %s match", e.Action, e.From)
}

// Unwrap lets errors.Is match apperr.InvalidTransition.
func (e *TransitionError) Unwrap() error { return apperr.InvalidTransition }

// IsTransitionError reports whether err carries a TransitionError.
func IsTransitionError(err error) bool {
	var te *TransitionError
	return errors.As(err, &te)
}

// Options carries the inputs some actions need.
type Options struct {
	// Reason is required for reject.
	Reason string
	// DriverID assigns a driver on propose; the match's current driver is kept when nil.
	DriverID *int64
}

// ApplyTransition validates action against the current status of m and the
// actor's capabilities and returns the updated match. m is never modified.
//
// Checks run in order: missing reject reason, unknown edge, capability.
func ApplyTransition(m domain.MatchView, action domain.MatchAction, actor Actor, opts Options) (domain.MatchView, error) {
	reason := strings.TrimSpace(opts.Reason)
	if action == domain.ActionReject && reason == "" {
		return m, fmt.Errorf("%w: rejecting a match requires a reason", apperr.MissingReason)
	}

	to, ok := Next(m.Status, action)
	if !ok {
		return m, &TransitionError{From: m.Status, Action: action}
	}

	if err := Authorize(actor, MatchEntity(m), Action(action)); err != nil {
		return m, err
	}

	out := m
	out.Status = to
	switch action {
	case domain.ActionPropose:
		driver := m.DriverID
		if opts.DriverID != nil {
			driver = opts.DriverID
		}
		if driver == nil {
			return m, fmt.Errorf("%w: proposing a match requires a driver", apperr.Invalid)
		}
		id := *driver
		out.DriverID = &id
	case domain.ActionReject:
		out.RejectionReason = reason
	case domain.ActionRepropose:
		out.RejectionReason = ""
		out.DriverID = nil
	}
	return out, nil
}
