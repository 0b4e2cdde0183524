package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/lifecycle"
)

func TestLabelFor_TotalOverVocabulary(t *testing.T) {
	t.Parallel()

	for _, locale := range []language.Tag{language.English, language.Korean} {
		vocab := lifecycle.Vocabulary(locale)
		require.Len(t, vocab, 3)
		require.Len(t, vocab[lifecycle.KindOffer], len(domain.OfferStatuses()))
		require.Len(t, vocab[lifecycle.KindRequest], len(domain.RequestStatuses()))
		require.Len(t, vocab[lifecycle.KindMatch], len(domain.MatchStatuses()))

		for kind, entries := range vocab {
			for _, e := range entries {
				assert.NotEmpty(t, e.Label, "%s/%s", kind, e.Status)
				assert.NotEqual(t, e.Status, e.Label, "%s/%s has no label", kind, e.Status)
				assert.NotEmpty(t, e.Badge)
				assert.Equal(t, e.Label, lifecycle.LabelFor(e.Status, locale), "deterministic")
			}
		}
	}
}

func TestLabelFor_UnknownFallsBack(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "teleported", lifecycle.LabelFor("teleported", language.English))
	assert.Equal(t, lifecycle.BadgeSecondary, lifecycle.BadgeClassFor("teleported"))
	assert.Equal(t, "", lifecycle.LabelFor(domain.MatchStatus(""), language.Korean))
	assert.Equal(t, lifecycle.BadgeSecondary, lifecycle.BadgeClassFor(domain.MatchStatus("")))
}

func TestLabelFor_Locales(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Proposed", lifecycle.LabelFor(domain.MatchProposed, language.English))
	assert.Equal(t, "제안됨", lifecycle.LabelFor(domain.MatchProposed, language.Korean))
	assert.Equal(t, "Proposed", lifecycle.LabelFor(domain.MatchProposed, language.French))
	assert.Equal(t, lifecycle.BadgeDanger, lifecycle.BadgeClassFor(domain.MatchRejected))
	assert.Equal(t, lifecycle.BadgeSecondary, lifecycle.BadgeClassFor(domain.MatchStatusNone))
}

func TestParseLocale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want language.Tag
	}{
		{"", language.English},
		{"ko-KR,ko;q=0.9,en;q=0.5", language.Korean},
		{"en-US", language.English},
		{"not a tag;;;", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got := lifecycle.ParseLocale(tt.in)
			base, _ := got.Base()
			wantBase, _ := tt.want.Base()
			assert.Equal(t, wantBase, base)
		})
	}
}

func TestRoleBadges(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lifecycle.BadgeDanger, lifecycle.RoleBadgeClassFor(domain.RoleAdmin))
	assert.Equal(t, lifecycle.BadgePrimary, lifecycle.RoleBadgeClassFor(domain.RoleCarrier))
	assert.Equal(t, lifecycle.BadgeSuccess, lifecycle.RoleBadgeClassFor(domain.RoleDriver))
	assert.Equal(t, lifecycle.BadgeSecondary, lifecycle.RoleBadgeClassFor("guest"))
	assert.Equal(t, "운송사", lifecycle.RoleLabelFor(domain.RoleCarrier, language.Korean))
	assert.Equal(t, "guest", lifecycle.RoleLabelFor("guest", language.English))
}
