package lifecycle

import (
	"fmt"
	"sort"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/domain"
)

// Action is something an actor may do to an entity.
type Action string

// List of actions
const (
	ActionView           Action = "view"
	ActionCreate         Action = "create"
	ActionPropose        Action = Action(domain.ActionPropose)
	ActionAccept         Action = Action(domain.ActionAccept)
	ActionReject         Action = Action(domain.ActionReject)
	ActionStart          Action = Action(domain.ActionStart)
	ActionComplete       Action = Action(domain.ActionComplete)
	ActionRepropose      Action = Action(domain.ActionRepropose)
	ActionAutoMatch      Action = "auto_match"
	ActionViewStatistics Action = "view_statistics"
	ActionAdminister     Action = "administer"
)

// ActionSet is an immutable set of allowed actions.
type ActionSet struct {
	m map[Action]struct{}
}

func newActionSet(actions ...Action) ActionSet {
	m := make(map[Action]struct{}, len(actions))
	for _, a := range actions {
		m[a] = struct{}{}
	}
	return ActionSet{m: m}
}

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	_, ok := s.m[a]
	return ok
}

// Len returns the number of actions.
func (s ActionSet) Len() int { return len(s.m) }

// List returns the actions sorted by name.
func (s ActionSet) List() []Action {
	out := make([]Action, 0, len(s.m))
	for a := range s.m {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CapabilitiesFor returns the actions actor may perform on entity in its current status.
// It mirrors the policy the API enforces so a UI never offers an action the server rejects.
func CapabilitiesFor(actor Actor, entity Entity) ActionSet {
	if actor.IsSystem() {
		return systemCapabilities(entity)
	}
	switch actor.Role {
	case domain.RoleAdmin:
		return adminCapabilities(entity)
	case domain.RoleCarrier:
		return carrierCapabilities(actor, entity)
	case domain.RoleDriver:
		return driverCapabilities(actor, entity)
	default:
		return newActionSet()
	}
}

// Authorize returns apperr.Unauthorized when actor may not perform action on entity.
func Authorize(actor Actor, entity Entity, action Action) error {
	if CapabilitiesFor(actor, entity).Has(action) {
		return nil
	}
	return fmt.Errorf("%w: %s may not %s %s", apperr.Unauthorized, actorName(actor), action, entity.Kind)
}

func actorName(a Actor) string {
	if a.IsSystem() {
		return "system"
	}
	if a.Role == "" {
		return "anonymous"
	}
	return string(a.Role)
}

func systemCapabilities(e Entity) ActionSet {
	switch e.Kind {
	case KindPlatform:
		return newActionSet(ActionView, ActionAutoMatch)
	case KindMatch:
		return systemMatchCapabilities(domain.MatchStatus(e.Status))
	default:
		return newActionSet(ActionView)
	}
}

func systemMatchCapabilities(s domain.MatchStatus) ActionSet {
	switch s {
	case domain.MatchPending:
		return newActionSet(ActionView, ActionPropose)
	case domain.MatchRejected:
		return newActionSet(ActionView, ActionRepropose)
	case domain.MatchInProgress:
		return newActionSet(ActionView, ActionComplete)
	default:
		return newActionSet(ActionView)
	}
}

func adminCapabilities(e Entity) ActionSet {
	if e.Kind == KindPlatform {
		return newActionSet(ActionView, ActionAutoMatch, ActionViewStatistics, ActionAdminister)
	}
	return newActionSet(ActionView)
}

func carrierCapabilities(a Actor, e Entity) ActionSet {
	switch e.Kind {
	case KindOffer, KindRequest:
		if e.ownedBy(a.CarrierID) {
			return newActionSet(ActionView, ActionCreate)
		}
		return newActionSet(ActionCreate)
	case KindMatch:
		if !e.ownedBy(a.CarrierID) {
			return newActionSet()
		}
		if domain.MatchStatus(e.Status) == domain.MatchProposed {
			return newActionSet(ActionView, ActionAccept, ActionReject)
		}
		return newActionSet(ActionView)
	default:
		return newActionSet()
	}
}

func driverCapabilities(a Actor, e Entity) ActionSet {
	switch e.Kind {
	case KindOffer:
		if domain.OfferStatus(e.Status) == domain.OfferAvailable {
			return newActionSet(ActionView)
		}
		return newActionSet()
	case KindRequest:
		if domain.RequestStatus(e.Status) == domain.RequestPending {
			return newActionSet(ActionView)
		}
		return newActionSet()
	case KindMatch:
		if !e.assignedTo(a.DriverID) {
			return newActionSet()
		}
		switch domain.MatchStatus(e.Status) {
		case domain.MatchAccepted:
			return newActionSet(ActionView, ActionStart)
		case domain.MatchInProgress:
			return newActionSet(ActionView, ActionComplete)
		default:
			return newActionSet(ActionView)
		}
	default:
		return newActionSet()
	}
}
