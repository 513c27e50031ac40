// Package types provides type definitions for the profiles and match results exchanged by lingua-match.
//
//nolint:revive // types is a standard Go package name pattern
package types

// GenderPreference is who a user is willing to be shown, relative to their own gender.
type GenderPreference string

const (
	GenderPreferenceAll           GenderPreference = "all"
	GenderPreferenceSameOnly      GenderPreference = "same-only"
	GenderPreferenceDifferentOnly GenderPreference = "different-only"
)

// IsValid reports whether g is a known policy. The empty value is treated as "all".
func (g GenderPreference) IsValid() bool {
	switch g {
	case "", GenderPreferenceAll, GenderPreferenceSameOnly, GenderPreferenceDifferentOnly:
		return true
	default:
		return false
	}
}

// Accepts reports whether a user of gender own, holding this policy, accepts a user of gender other.
func (g GenderPreference) Accepts(own, other string) bool {
	switch g {
	case GenderPreferenceSameOnly:
		return own == other
	case GenderPreferenceDifferentOnly:
		return own != other
	default:
		return true
	}
}

// LocationPreference controls how a user's feed is constrained geographically.
type LocationPreference string

const (
	LocationAnywhere          LocationPreference = "anywhere"
	LocationMaxDistance       LocationPreference = "max-distance"
	LocationSpecificCountries LocationPreference = "specific-countries"
)

// IsValid reports whether l is a known policy. The empty value is treated as "anywhere".
func (l LocationPreference) IsValid() bool {
	switch l {
	case "", LocationAnywhere, LocationMaxDistance, LocationSpecificCountries:
		return true
	default:
		return false
	}
}

// IsAnywhere reports whether the policy places no geographic constraint.
func (l LocationPreference) IsAnywhere() bool {
	return l == "" || l == LocationAnywhere
}

// Relationship intent tags, highest priority first.
const (
	IntentOpenToDating         = "open to dating"
	IntentFriendship           = "friendship"
	IntentLanguagePracticeOnly = "language practice only"
)

// Age range applied when a profile leaves both bounds unset.
const (
	DefaultMinAge = 18
	DefaultMaxAge = 99
)

// TravelDestination is a place the user is travelling to.
type TravelDestination struct {
	City     string `json:"city,omitempty"`
	Country  string `json:"country,omitempty"`
	IsActive bool   `json:"is_active"`
}

// MatchingPreferences holds who a user wants to be matched with.
type MatchingPreferences struct {
	Gender             string             `json:"gender,omitempty"`
	GenderPreference   GenderPreference   `json:"gender_preference,omitempty"`
	MinAge             int                `json:"min_age" validate:"gte=0"`
	MaxAge             int                `json:"max_age" validate:"gte=0"`
	LocationPreference LocationPreference `json:"location_preference,omitempty"`
	MaxDistanceKm      *float64           `json:"max_distance_km,omitempty" validate:"omitempty,gt=0"`
	PreferredCountries []string           `json:"preferred_countries,omitempty" validate:"dive,len=2"`
	TravelDestination  *TravelDestination `json:"travel_destination,omitempty"`
	// RelationshipIntents are free-form tags; the known ones are the Intent* constants.
	RelationshipIntents []string `json:"relationship_intents,omitempty"`
	// RegionalLanguagePreferences maps a language code to the countries whose native
	// speakers of that language the user prefers.
	RegionalLanguagePreferences map[string][]string `json:"regional_language_preferences,omitempty"`
	AllowNonNativeMatches       bool                `json:"allow_non_native_matches"`
	MinProficiencyLevel         ProficiencyLevel    `json:"min_proficiency_level,omitempty"`
	MaxProficiencyLevel         ProficiencyLevel    `json:"max_proficiency_level,omitempty"`
}

// WithDefaults returns a copy with unset policies and ranges filled in.
func (p MatchingPreferences) WithDefaults() MatchingPreferences {
	if p.GenderPreference == "" {
		p.GenderPreference = GenderPreferenceAll
	}
	if p.LocationPreference == "" {
		p.LocationPreference = LocationAnywhere
	}
	if p.MinAge == 0 && p.MaxAge == 0 {
		p.MinAge = DefaultMinAge
		p.MaxAge = DefaultMaxAge
	}
	if p.MinProficiencyLevel == "" {
		p.MinProficiencyLevel = ProficiencyBeginner
	}
	if p.MaxProficiencyLevel == "" {
		p.MaxProficiencyLevel = ProficiencyNative
	}
	return p
}

// AcceptsAge reports whether age falls inside the inclusive [MinAge, MaxAge] range.
// An unset range (both zero) is the default range.
func (p MatchingPreferences) AcceptsAge(age int) bool {
	lo, hi := p.MinAge, p.MaxAge
	if lo == 0 && hi == 0 {
		lo, hi = DefaultMinAge, DefaultMaxAge
	}
	return age >= lo && age <= hi
}

// AcceptsProficiency reports whether level falls inside the proficiency acceptance range.
func (p MatchingPreferences) AcceptsProficiency(level ProficiencyLevel) bool {
	lo, hi := p.MinProficiencyLevel, p.MaxProficiencyLevel
	if lo == "" {
		lo = ProficiencyBeginner
	}
	if hi == "" {
		hi = ProficiencyNative
	}
	return level.Within(lo, hi)
}
