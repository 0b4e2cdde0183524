package events

import (
	"context"
	"strings"

	"freight-matching-platform/internal/domain"
)

type actionFunc func(context.Context, domain.Event) error

type actionFactory struct {
	byType map[domain.EventType]actionFunc
}

func newActionFactory(onListingCreated, onMatchRejected actionFunc) *actionFactory {
	f := &actionFactory{
		byType: map[domain.EventType]actionFunc{
			domain.EventOfferCreated:   onListingCreated,
			domain.EventRequestCreated: onListingCreated,
		},
	}
	if onMatchRejected != nil {
		f.byType[domain.MatchEventType(domain.MatchRejected)] = onMatchRejected
	}
	return f
}

func (f *actionFactory) get(t domain.EventType) (actionFunc, bool) {
	t = domain.EventType(strings.ToLower(strings.TrimSpace(string(t))))
	fn, ok := f.byType[t]
	return fn, ok
}
