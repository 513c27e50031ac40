package matching

import (
	"github.com/jonathan/lingua-match/internal/geo"
	"github.com/jonathan/lingua-match/internal/types"
)

var testCountries = geo.StaticCountryNames(map[string]string{
	"FR": "France",
	"DE": "Germany",
	"ES": "Spain",
	"MX": "Mexico",
	"US": "United States",
	"JP": "Japan",
})

func testEngine(opts ...Option) *Engine {
	return NewEngine(append([]Option{WithCountryNames(testCountries), WithWorkers(1)}, opts...)...)
}

// learner builds a profile with permissive preferences that tests narrow as needed.
func learner(id, native string, age int, learning ...types.LearningLanguage) types.UserProfile {
	return types.UserProfile{
		ID:                id,
		Age:               types.IntPtr(age),
		NativeLanguage:    native,
		LearningLanguages: learning,
		Preferences: types.MatchingPreferences{
			GenderPreference:    types.GenderPreferenceAll,
			MinAge:              18,
			MaxAge:              60,
			LocationPreference:  types.LocationAnywhere,
			RelationshipIntents: []string{types.IntentOpenToDating},
		},
	}
}

func lang(code string, level types.ProficiencyLevel) types.LearningLanguage {
	return types.LearningLanguage{Code: code, Level: level}
}

// exchangePair returns an English and a French speaker learning each other's language.
func exchangePair() (types.UserProfile, types.UserProfile) {
	a := learner("a", "en", 28, lang("fr", types.ProficiencyIntermediate))
	b := learner("b", "fr", 30, lang("en", types.ProficiencyIntermediate))
	return a, b
}
