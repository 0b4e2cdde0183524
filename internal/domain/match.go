package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Match binds exactly one offer to exactly one delivery request and
// optionally assigns a driver. Offer and request are referenced by id.
type Match struct {
	ID              int64
	OfferID         int64
	RequestID       int64
	DriverID        *int64
	Status          MatchStatus
	Price           decimal.Decimal
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MatchView is a match joined with the summaries the API shows next to it.
type MatchView struct {
	Match
	OfferCarrierID   int64
	RequestCarrierID int64
	Offer            Offer
	Request          DeliveryRequest
	DriverName       string
	VehicleNumber    string
}

// MatchAction names a lifecycle action on a match.
type MatchAction string

// List of match actions
const (
	ActionPropose   MatchAction = "propose"
	ActionAccept    MatchAction = "accept"
	ActionReject    MatchAction = "reject"
	ActionStart     MatchAction = "start"
	ActionComplete  MatchAction = "complete"
	ActionRepropose MatchAction = "repropose"
)

// MatchEvent is a row of match status history.
type MatchEvent struct {
	ID          int64
	MatchID     int64
	From        MatchStatus
	To          MatchStatus
	Action      MatchAction
	ActorUserID *int64
	Reason      string
	At          time.Time
}

// AutoMatchResult summarizes one auto-match run.
type AutoMatchResult struct {
	MatchesCreated int
	Proposed       int
}
