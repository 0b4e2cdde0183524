package domain

import "time"

// EventType names a freight event published on the event bus.
type EventType string

// List of event types
const (
	EventOfferCreated   EventType = "offer_created"
	EventRequestCreated EventType = "request_created"
	EventMatchCreated   EventType = "match_created"
)

// MatchEventType returns the event type published after a match action, e.g. "match_accepted".
func MatchEventType(to MatchStatus) EventType {
	return EventType("match_" + string(to))
}

// Event is a freight event. EntityID refers to the offer, request or match named by Type.
type Event struct {
	ID          string
	Type        EventType
	EntityID    int64
	Status      string
	ActorUserID int64
	Reason      string
	OccurredAt  time.Time
}
