package lifecycle

import (
	"golang.org/x/text/language"

	"freight-matching-platform/internal/domain"
)

// Badge classes rendered next to a status.
const (
	BadgeSuccess   = "bg-success"
	BadgeWarning   = "bg-warning"
	BadgeDanger    = "bg-danger"
	BadgeInfo      = "bg-info"
	BadgePrimary   = "bg-primary"
	BadgeSecondary = "bg-secondary"
)

var supportedLocales = []language.Tag{language.English, language.Korean}

var localeMatcher = language.NewMatcher(supportedLocales)

// DefaultLocale is used when nothing better can be negotiated.
var DefaultLocale = language.English

// ParseLocale negotiates a supported locale from an Accept-Language style string.
func ParseLocale(accept string) language.Tag {
	if accept == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No {
		return DefaultLocale
	}
	return supportedLocales[idx]
}

var statusLabels = map[language.Tag]map[string]string{
	language.English: {
		"available":   "Available",
		"pending":     "Pending",
		"matched":     "Matched",
		"proposed":    "Proposed",
		"accepted":    "Accepted",
		"rejected":    "Rejected",
		"in_progress": "In progress",
		"in_transit":  "In transit",
		"completed":   "Completed",
		"active":      "Active",
		"inactive":    "Inactive",
		"busy":        "Busy",
		"offline":     "Offline",
		"maintenance": "Maintenance",
		"none":        "No active match",
	},
	language.Korean: {
		"available":   "사용 가능",
		"pending":     "대기 중",
		"matched":     "매칭됨",
		"proposed":    "제안됨",
		"accepted":    "수락됨",
		"rejected":    "거절됨",
		"in_progress": "진행 중",
		"in_transit":  "운송 중",
		"completed":   "완료됨",
		"active":      "활성",
		"inactive":    "비활성",
		"busy":        "운행 중",
		"offline":     "오프라인",
		"maintenance": "정비 중",
		"none":        "배정 없음",
	},
}

var statusBadges = map[string]string{
	"available":   BadgeSuccess,
	"pending":     BadgeWarning,
	"matched":     BadgeInfo,
	"proposed":    BadgePrimary,
	"accepted":    BadgeSuccess,
	"rejected":    BadgeDanger,
	"in_progress": BadgeWarning,
	"in_transit":  BadgeWarning,
	"completed":   BadgeSuccess,
	"active":      BadgeSuccess,
	"inactive":    BadgeDanger,
	"busy":        BadgeWarning,
	"offline":     BadgeSecondary,
	"maintenance": BadgeDanger,
	"none":        BadgeSecondary,
}

var roleLabels = map[language.Tag]map[domain.Role]string{
	language.English: {
		domain.RoleAdmin:   "Administrator",
		domain.RoleCarrier: "Carrier",
		domain.RoleDriver:  "Driver",
	},
	language.Korean: {
		domain.RoleAdmin:   "관리자",
		domain.RoleCarrier: "운송사",
		domain.RoleDriver:  "기사",
	},
}

func labelsFor(locale language.Tag) map[string]string {
	if m, ok := statusLabels[locale]; ok {
		return m
	}
	return statusLabels[DefaultLocale]
}

// LabelFor returns the human-readable label of any status value.
// Unknown values are returned unchanged.
func LabelFor[S ~string](status S, locale language.Tag) string {
	if l, ok := labelsFor(locale)[string(status)]; ok {
		return l
	}
	return string(status)
}

// BadgeClassFor returns the badge class of any status value, BadgeSecondary when unknown.
func BadgeClassFor[S ~string](status S) string {
	if c, ok := statusBadges[string(status)]; ok {
		return c
	}
	return BadgeSecondary
}

// RoleLabelFor returns the localized role name, the raw value when unknown.
func RoleLabelFor(role domain.Role, locale language.Tag) string {
	m, ok := roleLabels[locale]
	if !ok {
		m = roleLabels[DefaultLocale]
	}
	if l, ok := m[role]; ok {
		return l
	}
	return string(role)
}

// RoleBadgeClassFor returns the badge class of a role.
func RoleBadgeClassFor(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return BadgeDanger
	case domain.RoleCarrier:
		return BadgePrimary
	case domain.RoleDriver:
		return BadgeSuccess
	default:
		return BadgeSecondary
	}
}

// VocabularyEntry is a status with its presentation.
type VocabularyEntry struct {
	Status string
	Label  string
	Badge  string
}

// Vocabulary lists every status the lifecycle can produce, grouped by entity kind.
func Vocabulary(locale language.Tag) map[EntityKind][]VocabularyEntry {
	out := make(map[EntityKind][]VocabularyEntry, 3)
	for _, s := range domain.OfferStatuses() {
		out[KindOffer] = append(out[KindOffer], entry(s, locale))
	}
	for _, s := range domain.RequestStatuses() {
		out[KindRequest] = append(out[KindRequest], entry(s, locale))
	}
	for _, s := range domain.MatchStatuses() {
		out[KindMatch] = append(out[KindMatch], entry(s, locale))
	}
	return out
}

func entry[S ~string](s S, locale language.Tag) VocabularyEntry {
	return VocabularyEntry{Status: string(s), Label: LabelFor(s, locale), Badge: BadgeClassFor(s)}
}
