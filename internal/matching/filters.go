package matching

import (
	"strings"

	"github.com/jonathan/lingua-match/internal/geo"
	"github.com/jonathan/lingua-match/internal/types"
)

// Gate names a hard filter.
type Gate string

const (
	GateSelf     Gate = "self"
	GateLanguage Gate = "language"
	GateAge      Gate = "age"
	GateGender   Gate = "gender"
	GateLocation Gate = "location"
	GateIntent   Gate = "intent"
)

type gate struct {
	name  Gate
	check func(e *Engine, a, b *types.UserProfile) bool
}

// gates run in this order; each one is symmetric in a and b.
var gates = []gate{
	{GateLanguage, func(e *Engine, a, b *types.UserProfile) bool { return e.IsCompatible(*a, *b) }},
	{GateAge, func(_ *Engine, a, b *types.UserProfile) bool { return agesAccepted(a, b) }},
	{GateGender, func(_ *Engine, a, b *types.UserProfile) bool { return gendersAccepted(a, b) }},
	{GateLocation, func(e *Engine, a, b *types.UserProfile) bool { return e.locationAccepted(a, b) }},
	{GateIntent, func(_ *Engine, a, b *types.UserProfile) bool { return len(sharedIntents(a, b)) > 0 }},
}

// CanMatch reports whether a and b may be shown to each other.
// A user never matches itself.
func (e *Engine) CanMatch(a, b types.UserProfile) bool {
	_, failed := e.FailedGate(a, b)
	return !failed
}

// FailedGate returns the first hard filter that rejects the pair.
func (e *Engine) FailedGate(a, b types.UserProfile) (Gate, bool) {
	if a.ID == b.ID {
		return GateSelf, true
	}
	for _, g := range gates {
		if !g.check(e, &a, &b) {
			return g.name, true
		}
	}
	return "", false
}

// agesAccepted passes when either age is unknown; otherwise each age must fall in
// the other user's range.
func agesAccepted(a, b *types.UserProfile) bool {
	if a.Age == nil || b.Age == nil {
		return true
	}
	return a.Preferences.AcceptsAge(*b.Age) && b.Preferences.AcceptsAge(*a.Age)
}

func gendersAccepted(a, b *types.UserProfile) bool {
	pa, pb := a.Preferences, b.Preferences
	return pa.GenderPreference.Accepts(pa.Gender, pb.Gender) &&
		pb.GenderPreference.Accepts(pb.Gender, pa.Gender)
}

func (e *Engine) locationAccepted(a, b *types.UserProfile) bool {
	if a.Preferences.LocationPreference.IsAnywhere() || b.Preferences.LocationPreference.IsAnywhere() {
		return true
	}
	if d, ok := geo.DistanceBetween(a, b); ok {
		if exceedsMaxDistance(a, d) || exceedsMaxDistance(b, d) {
			return false
		}
	}
	return e.countryAccepted(a, b) && e.countryAccepted(b, a)
}

func exceedsMaxDistance(u *types.UserProfile, km float64) bool {
	limit := u.Preferences.MaxDistanceKm
	return limit != nil && km > *limit
}

// countryAccepted checks owner's country list against other. Missing location data
// on other is not a rejection.
func (e *Engine) countryAccepted(owner, other *types.UserProfile) bool {
	prefs := owner.Preferences
	if prefs.LocationPreference != types.LocationSpecificCountries || len(prefs.PreferredCountries) == 0 {
		return true
	}
	if !other.HasLocation() {
		return true
	}
	for _, code := range prefs.PreferredCountries {
		if e.inCountry(other, code) {
			return true
		}
	}
	return false
}

// sharedIntents returns the normalized intent tags both users hold, in a's order.
func sharedIntents(a, b *types.UserProfile) []string {
	theirs := make(map[string]bool, len(b.Preferences.RelationshipIntents))
	for _, tag := range b.Preferences.RelationshipIntents {
		theirs[normalizeIntent(tag)] = true
	}
	var shared []string
	for _, tag := range a.Preferences.RelationshipIntents {
		n := normalizeIntent(tag)
		if n != "" && theirs[n] {
			shared = append(shared, n)
			delete(theirs, n)
		}
	}
	return shared
}

func normalizeIntent(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
