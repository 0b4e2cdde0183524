package listing

import (
	"encoding/json"
	"fmt"
	"strings"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/domain"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{apperr.Invalid}, args...)...)
}

func validateRoute(origin, destination, containerType string) error {
	switch {
	case origin == "":
		return invalid("origin is required")
	case destination == "":
		return invalid("destination is required")
	case containerType == "":
		return invalid("container type is required")
	}
	return nil
}

func containerCount(n int) (int, error) {
	switch {
	case n == 0:
		return 1, nil
	case n < 0:
		return 0, invalid("container count must be at least 1")
	default:
		return n, nil
	}
}

func validateOffer(o *domain.Offer) error {
	o.Origin = strings.TrimSpace(o.Origin)
	o.Destination = strings.TrimSpace(o.Destination)
	o.ContainerType = strings.TrimSpace(o.ContainerType)
	o.SpecialRequirements = strings.TrimSpace(o.SpecialRequirements)
	if err := validateRoute(o.Origin, o.Destination, o.ContainerType); err != nil {
		return err
	}
	if o.DepartureTime.IsZero() || o.ArrivalTime.IsZero() {
		return invalid("departure and arrival times are required")
	}
	if o.ArrivalTime.Before(o.DepartureTime) {
		return invalid("arrival must not be before departure")
	}
	n, err := containerCount(o.ContainerCount)
	if err != nil {
		return err
	}
	o.ContainerCount = n
	if o.Price.IsNegative() {
		return invalid("price must not be negative")
	}
	return nil
}

func validateRequest(r *domain.DeliveryRequest) error {
	r.Origin = strings.TrimSpace(r.Origin)
	r.Destination = strings.TrimSpace(r.Destination)
	r.ContainerType = strings.TrimSpace(r.ContainerType)
	r.SpecialRequirements = strings.TrimSpace(r.SpecialRequirements)
	if err := validateRoute(r.Origin, r.Destination, r.ContainerType); err != nil {
		return err
	}
	if r.PickupTime.IsZero() || r.DeliveryTime.IsZero() {
		return invalid("pickup and delivery times are required")
	}
	if r.DeliveryTime.Before(r.PickupTime) {
		return invalid("delivery must not be before pickup")
	}
	n, err := containerCount(r.ContainerCount)
	if err != nil {
		return err
	}
	r.ContainerCount = n
	if r.Budget.IsNegative() {
		return invalid("budget must not be negative")
	}
	if len(r.CargoDetails) > 0 {
		var obj map[string]any
		if err := json.Unmarshal(r.CargoDetails, &obj); err != nil || obj == nil {
			return invalid("cargo details must be a JSON object")
		}
	}
	return nil
}
