// Package types provides type definitions for the profiles and match results exchanged by lingua-match.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(validatePreferences, MatchingPreferences{})
	v.RegisterStructValidation(validateLearningLanguage, LearningLanguage{})
	return v
}

// Validate checks a profile before it is handed to the matching engine.
// The engine itself never validates; callers are expected to.
func (u *UserProfile) Validate() error {
	return validate.Struct(u)
}

func validatePreferences(sl validator.StructLevel) {
	p := sl.Current().Interface().(MatchingPreferences)

	if p.MinAge > p.MaxAge {
		sl.ReportError(p.MinAge, "min_age", "MinAge", "ltefield", "MaxAge")
	}
	if !p.GenderPreference.IsValid() {
		sl.ReportError(p.GenderPreference, "gender_preference", "GenderPreference", "oneof", "all same-only different-only")
	}
	if !p.LocationPreference.IsValid() {
		sl.ReportError(p.LocationPreference, "location_preference", "LocationPreference", "oneof", "anywhere max-distance specific-countries")
	}
	if p.MinProficiencyLevel != "" && !p.MinProficiencyLevel.IsValid() {
		sl.ReportError(p.MinProficiencyLevel, "min_proficiency_level", "MinProficiencyLevel", "proficiency", "")
	}
	if p.MaxProficiencyLevel != "" && !p.MaxProficiencyLevel.IsValid() {
		sl.ReportError(p.MaxProficiencyLevel, "max_proficiency_level", "MaxProficiencyLevel", "proficiency", "")
	}
	if p.MinProficiencyLevel.IsValid() && p.MaxProficiencyLevel.IsValid() &&
		p.MinProficiencyLevel.Rank() > p.MaxProficiencyLevel.Rank() {
		sl.ReportError(p.MinProficiencyLevel, "min_proficiency_level", "MinProficiencyLevel", "ltefield", "MaxProficiencyLevel")
	}
}

func validateLearningLanguage(sl validator.StructLevel) {
	l := sl.Current().Interface().(LearningLanguage)
	if l.Level != "" && !l.Level.IsValid() {
		sl.ReportError(l.Level, "level", "Level", "proficiency", "")
	}
}
