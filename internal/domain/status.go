package domain

type (
	// Role is the closed set of platform roles.
	Role string
	// OfferStatus is the lifecycle status of a capacity offer (tolerance).
	OfferStatus string
	// RequestStatus is the lifecycle status of a delivery request.
	RequestStatus string
	// MatchStatus is the lifecycle status of a match.
	MatchStatus string
	// DriverStatus is the availability of a driver.
	DriverStatus string
	// VehicleStatus is the availability of a vehicle.
	VehicleStatus string
)

// List of roles
const (
	RoleAdmin   Role = "admin"
	RoleCarrier Role = "carrier"
	RoleDriver  Role = "driver"
)

// List of offer statuses
const (
	OfferAvailable OfferStatus = "available"
	OfferMatched   OfferStatus = "matched"
	OfferCompleted OfferStatus = "completed"
)

// List of request statuses
const (
	RequestPending   RequestStatus = "pending"
	RequestMatched   RequestStatus = "matched"
	RequestInTransit RequestStatus = "in_transit"
	RequestCompleted RequestStatus = "completed"
)

// List of match statuses
const (
	MatchPending    MatchStatus = "pending"
	MatchProposed   MatchStatus = "proposed"
	MatchAccepted   MatchStatus = "accepted"
	MatchRejected   MatchStatus = "rejected"
	MatchInProgress MatchStatus = "in_progress"
	MatchCompleted  MatchStatus = "completed"
)

// MatchStatusNone is reported on a driver dashboard when no match is active.
const MatchStatusNone MatchStatus = "none"

// List of driver statuses
const (
	DriverAvailable DriverStatus = "available"
	DriverBusy      DriverStatus = "busy"
	DriverOffline   DriverStatus = "offline"
)

// List of vehicle statuses
const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleBusy        VehicleStatus = "busy"
	VehicleMaintenance VehicleStatus = "maintenance"
)

var allowedRoles = [...]Role{RoleAdmin, RoleCarrier, RoleDriver}

var allowedOfferStatuses = [...]OfferStatus{OfferAvailable, OfferMatched, OfferCompleted}

var allowedRequestStatuses = [...]RequestStatus{
	RequestPending, RequestMatched, RequestInTransit, RequestCompleted,
}

var allowedMatchStatuses = [...]MatchStatus{
	MatchPending, MatchProposed, MatchAccepted, MatchRejected, MatchInProgress, MatchCompleted,
}

var allowedDriverStatuses = [...]DriverStatus{DriverAvailable, DriverBusy, DriverOffline}

var allowedVehicleStatuses = [...]VehicleStatus{VehicleAvailable, VehicleBusy, VehicleMaintenance}

// Valid checks if the Role is one of the known roles
func (r Role) Valid() bool {
	for _, v := range allowedRoles {
		if r == v {
			return true
		}
	}
	return false
}

// Valid checks if the OfferStatus is valid
func (s OfferStatus) Valid() bool {
	for _, v := range allowedOfferStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the RequestStatus is valid
func (s RequestStatus) Valid() bool {
	for _, v := range allowedRequestStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the MatchStatus is valid
func (s MatchStatus) Valid() bool {
	for _, v := range allowedMatchStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Active reports whether the match still binds its offer and request.
func (s MatchStatus) Active() bool {
	return s.Valid() && s != MatchRejected
}

// Valid checks if the DriverStatus is valid
func (s DriverStatus) Valid() bool {
	for _, v := range allowedDriverStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the VehicleStatus is valid
func (s VehicleStatus) Valid() bool {
	for _, v := range allowedVehicleStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// MatchStatuses returns every match status in lifecycle order.
func MatchStatuses() []MatchStatus {
	out := make([]MatchStatus, len(allowedMatchStatuses))
	copy(out, allowedMatchStatuses[:])
	return out
}

// OfferStatuses returns every offer status.
func OfferStatuses() []OfferStatus {
	out := make([]OfferStatus, len(allowedOfferStatuses))
	copy(out, allowedOfferStatuses[:])
	return out
}

// RequestStatuses returns every request status.
func RequestStatuses() []RequestStatus {
	out := make([]RequestStatus, len(allowedRequestStatuses))
	copy(out, allowedRequestStatuses[:])
	return out
}
