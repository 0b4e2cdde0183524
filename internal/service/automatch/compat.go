package automatch

import (
	"strings"

	"freight-matching-platform/internal/domain"
)

// Compatible reports whether offer o can carry request r: same route and
// container type, departure on the pickup day (UTC), enough containers, and
// a price within budget when both are set.
func Compatible(o domain.Offer, r domain.DeliveryRequest) bool {
	if !sameText(o.Origin, r.Origin) || !sameText(o.Destination, r.Destination) {
		return false
	}
	if !sameText(o.ContainerType, r.ContainerType) {
		return false
	}
	if !sameDay(o, r) {
		return false
	}
	if o.ContainerCount < r.ContainerCount {
		return false
	}
	if o.Price.IsPositive() && r.Budget.IsPositive() && o.Price.GreaterThan(r.Budget) {
		return false
	}
	return true
}

func sameText(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func sameDay(o domain.Offer, r domain.DeliveryRequest) bool {
	oy, om, od := o.DepartureTime.UTC().Date()
	ry, rm, rd := r.PickupTime.UTC().Date()
	return oy == ry && om == rm && od == rd
}
