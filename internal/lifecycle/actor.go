package lifecycle

import "freight-matching-platform/internal/domain"

// Actor is the caller on whose behalf a capability check or transition runs.
// It is passed explicitly; nothing in this package reads session state.
type Actor struct {
	Role      domain.Role
	UserID    int64
	CarrierID int64
	DriverID  int64

	system bool
}

// System returns the role-less actor used by background lifecycle steps
// (proposals, re-proposals, completion).
func System() Actor {
	return Actor{system: true}
}

// IsSystem reports whether a is the system actor.
func (a Actor) IsSystem() bool { return a.system }

// EntityKind names the kind of entity a capability applies to.
type EntityKind string

// List of entity kinds
const (
	KindOffer    EntityKind = "offer"
	KindRequest  EntityKind = "request"
	KindMatch    EntityKind = "match"
	KindPlatform EntityKind = "platform"
)

// Entity is the minimal description of an entity needed for capability checks.
// A zero Status with no owners describes the collection itself (used for create).
type Entity struct {
	Kind     EntityKind
	Owners   []int64
	Status   string
	DriverID *int64
}

// OfferEntity describes an offer.
func OfferEntity(o domain.Offer) Entity {
	return Entity{Kind: KindOffer, Owners: []int64{o.CarrierID}, Status: string(o.Status)}
}

// RequestEntity describes a delivery request.
func RequestEntity(r domain.DeliveryRequest) Entity {
	return Entity{Kind: KindRequest, Owners: []int64{r.CarrierID}, Status: string(r.Status)}
}

// MatchEntity describes a match; its owners are the carriers of the offer and the request.
func MatchEntity(m domain.MatchView) Entity {
	return Entity{
		Kind:     KindMatch,
		Owners:   []int64{m.OfferCarrierID, m.RequestCarrierID},
		Status:   string(m.Status),
		DriverID: m.DriverID,
	}
}

// Platform describes platform-wide operations (auto-match, statistics).
func Platform() Entity {
	return Entity{Kind: KindPlatform}
}

func (e Entity) ownedBy(carrierID int64) bool {
	if carrierID <= 0 {
		return false
	}
	for _, id := range e.Owners {
		if id == carrierID {
			return true
		}
	}
	return false
}

func (e Entity) assignedTo(driverID int64) bool {
	return driverID > 0 && e.DriverID != nil && *e.DriverID == driverID
}
