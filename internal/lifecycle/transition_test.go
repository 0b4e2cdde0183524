package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/lifecycle"
)

func TestApplyTransition_RoundTrip(t *testing.T) {
	t.Parallel()

	m := matchIn(domain.MatchPending, 1, 2, nil)

	m, err := lifecycle.ApplyTransition(m, domain.ActionPropose, lifecycle.System(), lifecycle.Options{DriverID: ptr(int64(7))})
	require.NoError(t, err)
	require.Equal(t, domain.MatchProposed, m.Status)
	require.NotNil(t, m.DriverID)

	m, err = lifecycle.ApplyTransition(m, domain.ActionAccept, carrier(2), lifecycle.Options{})
	require.NoError(t, err)
	require.Equal(t, domain.MatchAccepted, m.Status)

	m, err = lifecycle.ApplyTransition(m, domain.ActionStart, driver(7), lifecycle.Options{})
	require.NoError(t, err)
	require.Equal(t, domain.MatchInProgress, m.Status)

	m, err = lifecycle.ApplyTransition(m, domain.ActionComplete, driver(7), lifecycle.Options{})
	require.NoError(t, err)
	assert.Equal(t, domain.MatchCompleted, m.Status)
	assert.True(t, lifecycle.Terminal(m.Status))
}

func TestApplyTransition_SecondApplyIsInvalid(t *testing.T) {
	t.Parallel()

	m := matchIn(domain.MatchProposed, 1, 2, ptr(int64(7)))
	accepted, err := lifecycle.ApplyTransition(m, domain.ActionAccept, carrier(1), lifecycle.Options{})
	require.NoError(t, err)

	again, err := lifecycle.ApplyTransition(accepted, domain.ActionAccept, carrier(1), lifecycle.Options{})
	require.ErrorIs(t, err, apperr.InvalidTransition)
	assert.True(t, lifecycle.IsTransitionError(err))
	assert.Equal(t, accepted, again)
}

func TestApplyTransition_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	m := matchIn(domain.MatchProposed, 1, 2, ptr(int64(7)))
	_, err := lifecycle.ApplyTransition(m, domain.ActionReject, carrier(1), lifecycle.Options{Reason: "truck broke down"})
	require.NoError(t, err)
	assert.Equal(t, domain.MatchProposed, m.Status)
	assert.Empty(t, m.RejectionReason)
}

func TestApplyTransition_ForeignCarrierRejectIsUnauthorized(t *testing.T) {
	t.Parallel()

	m := matchIn(domain.MatchProposed, 2, 2, ptr(int64(7)))
	got, err := lifecycle.ApplyTransition(m, domain.ActionReject, carrier(1), lifecycle.Options{Reason: "not mine"})
	require.ErrorIs(t, err, apperr.Unauthorized)
	assert.Equal(t, domain.MatchProposed, got.Status)
}

func TestApplyTransition_RejectNeedsReason(t *testing.T) {
	t.Parallel()

	m := matchIn(domain.MatchProposed, 1, 2, ptr(int64(7)))
	for _, reason := range []string{"", "   "} {
		got, err := lifecycle.ApplyTransition(m, domain.ActionReject, carrier(1), lifecycle.Options{Reason: reason})
		require.ErrorIs(t, err, apperr.MissingReason)
		assert.Equal(t, domain.MatchProposed, got.Status)
	}

	got, err := lifecycle.ApplyTransition(m, domain.ActionReject, carrier(1), lifecycle.Options{Reason: " late pickup "})
	require.NoError(t, err)
	assert.Equal(t, domain.MatchRejected, got.Status)
	assert.Equal(t, "late pickup", got.RejectionReason)
}

func TestApplyTransition_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status domain.MatchStatus
		driver *int64
		action domain.MatchAction
		actor  lifecycle.Actor
		opts   lifecycle.Options
		want   error
	}{
		{"skip proposed", domain.MatchPending, nil, domain.ActionAccept, carrier(1), lifecycle.Options{}, apperr.InvalidTransition},
		{"start before accept", domain.MatchProposed, ptr(int64(7)), domain.ActionStart, driver(7), lifecycle.Options{}, apperr.InvalidTransition},
		{"complete from completed", domain.MatchCompleted, ptr(int64(7)), domain.ActionComplete, driver(7), lifecycle.Options{}, apperr.InvalidTransition},
		{"unknown action", domain.MatchProposed, nil, "cancel", carrier(1), lifecycle.Options{}, apperr.InvalidTransition},
		{"admin cannot accept", domain.MatchProposed, nil, domain.ActionAccept, admin, lifecycle.Options{}, apperr.Unauthorized},
		{"other driver start", domain.MatchAccepted, ptr(int64(7)), domain.ActionStart, driver(8), lifecycle.Options{}, apperr.Unauthorized},
		{"carrier start", domain.MatchAccepted, ptr(int64(7)), domain.ActionStart, carrier(1), lifecycle.Options{}, apperr.Unauthorized},
		{"system accept", domain.MatchProposed, nil, domain.ActionAccept, lifecycle.System(), lifecycle.Options{}, apperr.Unauthorized},
		{"carrier propose", domain.MatchPending, nil, domain.ActionPropose, carrier(1), lifecycle.Options{DriverID: ptr(int64(7))}, apperr.Unauthorized},
		{"propose without driver", domain.MatchPending, nil, domain.ActionPropose, lifecycle.System(), lifecycle.Options{}, apperr.Invalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := matchIn(tt.status, 1, 2, tt.driver)
			got, err := lifecycle.ApplyTransition(m, tt.action, tt.actor, tt.opts)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, m, got)
		})
	}
}

func TestApplyTransition_Repropose(t *testing.T) {
	t.Parallel()

	m := matchIn(domain.MatchRejected, 1, 2, ptr(int64(7)))
	m.RejectionReason = "late"

	got, err := lifecycle.ApplyTransition(m, domain.ActionRepropose, lifecycle.System(), lifecycle.Options{})
	require.NoError(t, err)
	assert.Equal(t, domain.MatchPending, got.Status)
	assert.Empty(t, got.RejectionReason)
	assert.Nil(t, got.DriverID)
}

func TestNext_OnlyListedEdges(t *testing.T) {
	t.Parallel()

	actions := []domain.MatchAction{
		domain.ActionPropose, domain.ActionAccept, domain.ActionReject,
		domain.ActionStart, domain.ActionComplete, domain.ActionRepropose,
	}
	count := 0
	for _, s := range domain.MatchStatuses() {
		for _, a := range actions {
			if _, ok := lifecycle.Next(s, a); ok {
				count++
			}
		}
	}
	assert.Equal(t, 6, count)
}
