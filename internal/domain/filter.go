package domain

// ListingFilter narrows offer and request lists. Zero values mean "any".
type ListingFilter struct {
	CarrierID *int64
	Status    string
}

// MatchFilter narrows match lists. A carrier filter matches either side of the match.
type MatchFilter struct {
	CarrierID *int64
	DriverID  *int64
	Status    string
}
