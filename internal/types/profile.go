// Package types provides type definitions for the profiles and match results exchanged by lingua-match.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// LearningLanguage is a language a user is learning and their current level in it.
type LearningLanguage struct {
	Code  string           `json:"code" validate:"required"`
	Level ProficiencyLevel `json:"level" validate:"required"`
}

// Coordinates is a point on the globe in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

// UserProfile is the read-only view of a user that the matching engine consumes.
// Optional fields are pointers; a nil value means "unknown", never zero.
type UserProfile struct {
	ID                string             `json:"id" validate:"required"`
	Age               *int               `json:"age,omitempty" validate:"omitempty,gte=13,lte=120"`
	NativeLanguage    string             `json:"native_language" validate:"required"`
	LearningLanguages []LearningLanguage `json:"learning_languages" validate:"dive"`
	Location          string             `json:"location,omitempty"`
	// CountryCode is the ISO 3166-1 alpha-2 code of the user's country, when known.
	CountryCode string              `json:"country_code,omitempty" validate:"omitempty,len=2"`
	Coordinates *Coordinates        `json:"coordinates,omitempty"`
	IsOnline    bool                `json:"is_online"`
	Preferences MatchingPreferences `json:"preferences"`
}

// ProficiencyFor returns the user's level in the given learning language.
func (u *UserProfile) ProficiencyFor(code string) (ProficiencyLevel, bool) {
	for _, l := range u.LearningLanguages {
		if strings.EqualFold(l.Code, code) {
			return l.Level, true
		}
	}
	return "", false
}

// IsLearning reports whether code is one of the user's learning languages.
func (u *UserProfile) IsLearning(code string) bool {
	_, ok := u.ProficiencyFor(code)
	return ok
}

// LearningCodes returns the user's learning-language codes in declaration order.
func (u *UserProfile) LearningCodes() []string {
	codes := make([]string, 0, len(u.LearningLanguages))
	for _, l := range u.LearningLanguages {
		codes = append(codes, l.Code)
	}
	return codes
}

// HasLocation reports whether any location data is present.
func (u *UserProfile) HasLocation() bool {
	return u.CountryCode != "" || strings.TrimSpace(u.Location) != ""
}

// IntPtr is a convenience for building optional ages in fixtures.
func IntPtr(v int) *int {
	return &v
}

// Float64Ptr is a convenience for building optional distances in fixtures.
func Float64Ptr(v float64) *float64 {
	return &v
}
