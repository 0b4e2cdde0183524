package kafka

import (
	"strings"
	"time"

	"freight-matching-platform/internal/domain"
)

// EventDTO is the wire form of domain.Event.
type EventDTO struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	EntityID    int64     `json:"entity_id"`
	Status      string    `json:"status,omitempty"`
	ActorUserID int64     `json:"actor_user_id,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// ToDomain converts EventDTO to domain.Event
func ToDomain(dto EventDTO) domain.Event {
	return domain.Event{
		ID:          strings.TrimSpace(dto.ID),
		Type:        domain.EventType(strings.ToLower(strings.TrimSpace(dto.Type))),
		EntityID:    dto.EntityID,
		Status:      strings.TrimSpace(dto.Status),
		ActorUserID: dto.ActorUserID,
		Reason:      dto.Reason,
		OccurredAt:  dto.OccurredAt,
	}
}

// FromDomain converts domain.Event to EventDTO
func FromDomain(e domain.Event) EventDTO {
	return EventDTO{
		ID:          e.ID,
		Type:        string(e.Type),
		EntityID:    e.EntityID,
		Status:      e.Status,
		ActorUserID: e.ActorUserID,
		Reason:      e.Reason,
		OccurredAt:  e.OccurredAt.UTC(),
	}
}

// partitionKey keeps every event of one entity on one partition.
func partitionKey(e domain.Event) string {
	kind := "match"
	switch e.Type {
	case domain.EventOfferCreated:
		kind = "offer"
	case domain.EventRequestCreated:
		kind = "request"
	}
	return kind + "-" + formatID(e.EntityID)
}
