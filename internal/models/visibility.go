package models

import "strings"

// Visibility is the tier a person chose at signup. It controls whether the
// profile is stored, searchable by employers, reachable by job alerts, or a
// campaign-only supporter record.
type Visibility string

const (
	// VisibilityVisible profiles are stored and listed to employers.
	VisibilityVisible Visibility = "visible"
	// VisibilityEmail profiles are stored but private; the person only
	// receives job alert emails.
	VisibilityEmail Visibility = "email"
	// VisibilityCampaignOnly records support the campaign headcount but are
	// treated as incomplete everywhere a full profile is required.
	VisibilityCampaignOnly Visibility = "campaign_only"
	// VisibilityUnset means the person never picked a tier.
	VisibilityUnset Visibility = ""
)

// NormalizeVisibility maps the raw stored or submitted value onto a canonical
// tier. Values arrive with inconsistent casing and sometimes the
// human-readable variant ("Campaign Only"), so every comparison in the
// codebase must go through here rather than comparing strings directly.
func NormalizeVisibility(raw string) Visibility {
	v := strings.ToLower(strings.TrimSpace(raw))
	v = strings.ReplaceAll(v, " ", "_")
	switch Visibility(v) {
	case VisibilityVisible, VisibilityEmail, VisibilityCampaignOnly:
		return Visibility(v)
	default:
		return VisibilityUnset
	}
}

// UnlocksProfile reports whether the tier counts as a complete profile.
// campaign_only is deliberately equivalent to having no profile at all: the
// person is steered back to finish signup.
func (v Visibility) UnlocksProfile() bool {
	switch NormalizeVisibility(string(v)) {
	case VisibilityVisible, VisibilityEmail:
		return true
	default:
		return false
	}
}

// StoresProfile reports whether a full signup submission with this tier
// writes a profile row. Campaign-only supporters and people who never picked
// a tier are not part of the searchable or emailable dataset.
func (v Visibility) StoresProfile() bool {
	return v.UnlocksProfile()
}
