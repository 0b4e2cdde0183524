package lifecycle_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/lifecycle"
)

func ptr[T any](v T) *T { return &v }

var allActions = []lifecycle.Action{
	lifecycle.ActionView,
	lifecycle.ActionCreate,
	lifecycle.ActionPropose,
	lifecycle.ActionAccept,
	lifecycle.ActionReject,
	lifecycle.ActionStart,
	lifecycle.ActionComplete,
	lifecycle.ActionRepropose,
	lifecycle.ActionAutoMatch,
	lifecycle.ActionViewStatistics,
	lifecycle.ActionAdminister,
}

func matchIn(status domain.MatchStatus, offerCarrier, requestCarrier int64, driver *int64) domain.MatchView {
	return domain.MatchView{
		Match:            domain.Match{ID: 1, OfferID: 10, RequestID: 20, Status: status, DriverID: driver},
		OfferCarrierID:   offerCarrier,
		RequestCarrierID: requestCarrier,
	}
}

func carrier(id int64) lifecycle.Actor {
	return lifecycle.Actor{Role: domain.RoleCarrier, UserID: 100 + id, CarrierID: id}
}

func driver(id int64) lifecycle.Actor {
	return lifecycle.Actor{Role: domain.RoleDriver, UserID: 200 + id, DriverID: id}
}

var admin = lifecycle.Actor{Role: domain.RoleAdmin, UserID: 1}

// granted lists every match action the policy allows; everything else must be excluded.
func granted(actor lifecycle.Actor, m domain.MatchView, a lifecycle.Action) bool {
	owns := actor.CarrierID != 0 && (m.OfferCarrierID == actor.CarrierID || m.RequestCarrierID == actor.CarrierID)
	assigned := actor.DriverID != 0 && m.DriverID != nil && *m.DriverID == actor.DriverID
	switch actor.Role {
	case domain.RoleAdmin:
		return a == lifecycle.ActionView
	case domain.RoleCarrier:
		if !owns {
			return false
		}
		if a == lifecycle.ActionView {
			return true
		}
		return m.Status == domain.MatchProposed && (a == lifecycle.ActionAccept || a == lifecycle.ActionReject)
	case domain.RoleDriver:
		if !assigned {
			return false
		}
		switch a {
		case lifecycle.ActionView:
			return true
		case lifecycle.ActionStart:
			return m.Status == domain.MatchAccepted
		case lifecycle.ActionComplete:
			return m.Status == domain.MatchInProgress
		}
	}
	return false
}

func TestCapabilitiesFor_MatchGrid(t *testing.T) {
	t.Parallel()

	actors := []lifecycle.Actor{admin, carrier(1), carrier(2), carrier(3), driver(7), driver(8), {Role: "guest"}}
	drivers := []*int64{nil, ptr(int64(7))}

	for _, status := range domain.MatchStatuses() {
		for _, d := range drivers {
			m := matchIn(status, 1, 2, d)
			for _, actor := range actors {
				caps := lifecycle.CapabilitiesFor(actor, lifecycle.MatchEntity(m))
				for _, a := range allActions {
					want := granted(actor, m, a)
					assert.Equal(t, want, caps.Has(a), "role=%s carrier=%d driver=%d status=%s action=%s",
						actor.Role, actor.CarrierID, actor.DriverID, status, a)
				}
			}
		}
	}
}

func TestCapabilitiesFor_Listings(t *testing.T) {
	t.Parallel()

	own := lifecycle.OfferEntity(domain.Offer{CarrierID: 1, Status: domain.OfferAvailable})
	foreign := lifecycle.OfferEntity(domain.Offer{CarrierID: 2, Status: domain.OfferAvailable})
	matched := lifecycle.OfferEntity(domain.Offer{CarrierID: 2, Status: domain.OfferMatched})
	pendingReq := lifecycle.RequestEntity(domain.DeliveryRequest{CarrierID: 2, Status: domain.RequestPending})

	assert.True(t, lifecycle.CapabilitiesFor(carrier(1), own).Has(lifecycle.ActionView))
	assert.False(t, lifecycle.CapabilitiesFor(carrier(1), foreign).Has(lifecycle.ActionView))
	assert.True(t, lifecycle.CapabilitiesFor(carrier(1), lifecycle.Entity{Kind: lifecycle.KindRequest}).Has(lifecycle.ActionCreate))
	assert.True(t, lifecycle.CapabilitiesFor(admin, foreign).Has(lifecycle.ActionView))
	assert.False(t, lifecycle.CapabilitiesFor(admin, foreign).Has(lifecycle.ActionCreate))
	assert.True(t, lifecycle.CapabilitiesFor(driver(7), foreign).Has(lifecycle.ActionView))
	assert.False(t, lifecycle.CapabilitiesFor(driver(7), matched).Has(lifecycle.ActionView))
	assert.True(t, lifecycle.CapabilitiesFor(driver(7), pendingReq).Has(lifecycle.ActionView))
	assert.False(t, lifecycle.CapabilitiesFor(driver(7), pendingReq).Has(lifecycle.ActionCreate))
}

func TestAuthorize_AutoMatch(t *testing.T) {
	t.Parallel()

	require.NoError(t, lifecycle.Authorize(admin, lifecycle.Platform(), lifecycle.ActionAutoMatch))
	require.NoError(t, lifecycle.Authorize(admin, lifecycle.Platform(), lifecycle.ActionViewStatistics))

	err := lifecycle.Authorize(driver(7), lifecycle.Platform(), lifecycle.ActionAutoMatch)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.Unauthorized))

	err = lifecycle.Authorize(carrier(1), lifecycle.Platform(), lifecycle.ActionViewStatistics)
	assert.ErrorIs(t, err, apperr.Unauthorized)

	require.NoError(t, lifecycle.Authorize(lifecycle.System(), lifecycle.Platform(), lifecycle.ActionAutoMatch))
	assert.ErrorIs(t, lifecycle.Authorize(lifecycle.System(), lifecycle.Platform(), lifecycle.ActionAdminister), apperr.Unauthorized)
}

func TestActionSet_List(t *testing.T) {
	t.Parallel()

	caps := lifecycle.CapabilitiesFor(carrier(1), lifecycle.MatchEntity(matchIn(domain.MatchProposed, 1, 2, nil)))
	assert.Equal(t, []lifecycle.Action{lifecycle.ActionAccept, lifecycle.ActionReject, lifecycle.ActionView}, caps.List())
	assert.Equal(t, 3, caps.Len())
}
