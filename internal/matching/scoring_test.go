package matching

import (
	"testing"

	"github.com/jonathan/lingua-match/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_ExchangePair(t *testing.T) {
	e := testEngine()
	a, b := exchangePair()
	a.LearningLanguages = []types.LearningLanguage{lang("fr", types.ProficiencyBeginner)}
	b.LearningLanguages = []types.LearningLanguage{lang("en", types.ProficiencyBeginner)}

	require.True(t, e.CanMatch(a, b))
	score, reasons := e.Score(a, b)

	// 40 language + 0 proficiency + 10 age + 5 location + 10 intent + 5 gender.
	assert.Equal(t, 70, score)
	assert.GreaterOrEqual(t, score, 60)
	assert.Equal(t, []string{ReasonPerfectExchange, ReasonSimilarAge, ReasonOpenToDating}, reasons)
}

func TestBreakdown_FactorsInOrder(t *testing.T) {
	e := testEngine()
	a, b := exchangePair()

	bd := e.Breakdown(a, b)
	require.Len(t, bd.Factors, 8)

	want := []Factor{
		FactorLanguage, FactorProficiency, FactorAge, FactorLocation,
		FactorIntent, FactorGender, FactorTravel, FactorRegional,
	}
	maxTotal := 0
	for i, f := range bd.Factors {
		assert.Equal(t, want[i], f.Factor)
		assert.LessOrEqual(t, f.Score, f.Max)
		maxTotal += f.Max
	}
	assert.Equal(t, types.MaxScore, maxTotal)
	assert.Equal(t, MaxLanguageScore, bd.Get(FactorLanguage))
	assert.Equal(t, 0, bd.Get(Factor("unknown")))
}

func TestScore_SecondaryLanguage(t *testing.T) {
	e := testEngine()
	a := learner("a", "en", 28, lang("es", types.ProficiencyBeginner))
	a.Preferences.AllowNonNativeMatches = true
	a.Preferences.MinProficiencyLevel = types.ProficiencyBeginner
	a.Preferences.MaxProficiencyLevel = types.ProficiencyAdvanced
	b := learner("b", "de", 30, lang("es", types.ProficiencyIntermediate))

	bd := e.Breakdown(a, b)
	assert.Equal(t, secondaryLanguageScore, bd.Get(FactorLanguage))
	assert.Equal(t, 10, bd.Get(FactorProficiency))
	assert.Contains(t, bd.Reasons(), ReasonSameTargetLanguage)
	assert.Contains(t, bd.Reasons(), ReasonSimilarProficiency)
}

func TestProficiencyFactor_Monotone(t *testing.T) {
	levels := []types.ProficiencyLevel{
		types.ProficiencyBeginner,
		types.ProficiencyIntermediate,
		types.ProficiencyAdvanced,
		types.ProficiencyNative,
	}
	wantScores := []int{15, 10, 5, 0}

	a := learner("a", "en", 28, lang("es", types.ProficiencyBeginner))
	prev := MaxProficiencyScore + 1
	for i, level := range levels {
		b := learner("b", "de", 30, lang("es", level))
		fs := proficiencyFactor(&a, &b)
		assert.Equal(t, wantScores[i], fs.Score, "level %s", level)
		assert.LessOrEqual(t, fs.Score, prev)
		prev = fs.Score
	}
}

func TestProficiencyFactor_BestCommonLanguage(t *testing.T) {
	a := learner("a", "en", 28, lang("es", types.ProficiencyBeginner), lang("it", types.ProficiencyAdvanced))
	b := learner("b", "de", 30, lang("es", types.ProficiencyNative), lang("it", types.ProficiencyAdvanced))

	fs := proficiencyFactor(&a, &b)
	assert.Equal(t, MaxProficiencyScore, fs.Score)
	assert.Equal(t, []string{ReasonSimilarProficiency}, fs.Reasons)
}

func TestProficiencyFactor_NoReasonForLargeGap(t *testing.T) {
	a := learner("a", "en", 28, lang("es", types.ProficiencyBeginner))
	b := learner("b", "de", 30, lang("es", types.ProficiencyAdvanced))

	fs := proficiencyFactor(&a, &b)
	assert.Equal(t, 5, fs.Score)
	assert.Empty(t, fs.Reasons)
}

func TestAgeFactor(t *testing.T) {
	tests := []struct {
		name       string
		ageA, ageB int
		want       int
		reason     string
	}{
		{"same age", 30, 30, 10, ReasonSimilarAge},
		{"three years", 30, 33, 10, ReasonSimilarAge},
		{"five years", 30, 35, 8, ""},
		{"ten years", 30, 40, 5, ReasonCompatibleAge},
		{"fifteen years", 30, 45, 2, ""},
		{"sixteen years", 30, 46, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := learner("a", "en", tt.ageA)
			b := learner("b", "fr", tt.ageB)

			fs := ageFactor(&a, &b)
			assert.Equal(t, tt.want, fs.Score)
			if tt.reason == "" {
				assert.Empty(t, fs.Reasons)
			} else {
				assert.Equal(t, []string{tt.reason}, fs.Reasons)
			}
		})
	}
}

func TestAgeFactor_Neutral(t *testing.T) {
	a := learner("a", "en", 30)
	b := learner("b", "fr", 30)
	b.Age = nil

	fs := ageFactor(&a, &b)
	assert.Equal(t, NeutralAgeScore, fs.Score)
	assert.Empty(t, fs.Reasons)
}

func TestAgeFactor_RangeRejected(t *testing.T) {
	a := learner("a", "en", 30)
	b := learner("b", "fr", 31)
	a.Preferences.MaxAge = 30

	fs := ageFactor(&a, &b)
	assert.Equal(t, 0, fs.Score)
}

func TestLocationFactor(t *testing.T) {
	helsinki := &types.Coordinates{Lat: 60.1699, Lon: 24.9384}
	espoo := &types.Coordinates{Lat: 60.2055, Lon: 24.6559}
	tampere := &types.Coordinates{Lat: 61.4978, Lon: 23.7610}
	oulu := &types.Coordinates{Lat: 65.0121, Lon: 25.4651}
	paris := &types.Coordinates{Lat: 48.8566, Lon: 2.3522}

	tests := []struct {
		name   string
		a, b   *types.Coordinates
		want   int
		reason string
	}{
		{"local", helsinki, espoo, localScore, ReasonLocalMatch},
		{"same point", helsinki, helsinki, localScore, ReasonLocalMatch},
		{"regional", helsinki, tampere, regionalScore, ""},
		{"just past regional band", helsinki, oulu, distantScore, ""},
		{"distant", helsinki, paris, distantScore, ""},
		{"missing coordinates", helsinki, nil, NeutralLocationScore, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := learner("a", "en", 30)
			b := learner("b", "fr", 30)
			a.Coordinates, b.Coordinates = tt.a, tt.b
			a.Preferences.LocationPreference = types.LocationMaxDistance

			fs := locationFactor(&a, &b)
			assert.Equal(t, tt.want, fs.Score)
			if tt.reason == "" {
				assert.Empty(t, fs.Reasons)
			} else {
				assert.Equal(t, []string{tt.reason}, fs.Reasons)
			}
		})
	}
}

func TestLocationFactor_Nearby(t *testing.T) {
	a := learner("a", "en", 30)
	b := learner("b", "fr", 30)
	// Roughly 55 km apart along a meridian.
	a.Coordinates = &types.Coordinates{Lat: 50.0, Lon: 10.0}
	b.Coordinates = &types.Coordinates{Lat: 50.5, Lon: 10.0}
	b.Preferences.LocationPreference = types.LocationSpecificCountries

	fs := locationFactor(&a, &b)
	assert.Equal(t, nearbyScore, fs.Score)
	assert.Equal(t, []string{ReasonNearby}, fs.Reasons)
}

func TestLocationFactor_BothAnywhereIsNeutral(t *testing.T) {
	a := learner("a", "en", 30)
	b := learner("b", "fr", 30)
	// About 15 km apart, which would otherwise be a local match.
	a.Coordinates = &types.Coordinates{Lat: 60.1699, Lon: 24.9384}
	b.Coordinates = &types.Coordinates{Lat: 60.2055, Lon: 24.6559}

	fs := locationFactor(&a, &b)
	assert.Equal(t, NeutralLocationScore, fs.Score)
	assert.Empty(t, fs.Reasons)

	a.Preferences.LocationPreference = ""
	b.Preferences.LocationPreference = ""
	assert.Equal(t, NeutralLocationScore, locationFactor(&a, &b).Score)
}

func TestIntentFactor_Priority(t *testing.T) {
	tests := []struct {
		name   string
		a, b   []string
		want   int
		reason string
	}{
		{"dating wins", []string{types.IntentFriendship, types.IntentOpenToDating}, []string{types.IntentOpenToDating, types.IntentFriendship}, datingIntentScore, ReasonOpenToDating},
		{"friendship", []string{types.IntentFriendship, types.IntentLanguagePracticeOnly}, []string{types.IntentFriendship, types.IntentLanguagePracticeOnly}, friendshipIntentScore, ReasonFriendship},
		{"practice", []string{types.IntentLanguagePracticeOnly}, []string{"Language Practice Only"}, practiceIntentScore, ReasonLanguagePractice},
		{"no overlap", []string{types.IntentOpenToDating}, []string{types.IntentFriendship}, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := learner("a", "en", 30)
			b := learner("b", "fr", 30)
			a.Preferences.RelationshipIntents = tt.a
			b.Preferences.RelationshipIntents = tt.b

			fs := intentFactor(&a, &b)
			assert.Equal(t, tt.want, fs.Score)
			if tt.reason == "" {
				assert.Empty(t, fs.Reasons)
			} else {
				assert.Equal(t, []string{tt.reason}, fs.Reasons)
			}
		})
	}
}

func TestGenderFactor(t *testing.T) {
	a := learner("a", "en", 30)
	b := learner("b", "fr", 30)
	assert.Equal(t, MaxGenderScore, genderFactor(&a, &b).Score)

	a.Preferences.Gender, a.Preferences.GenderPreference = "female", types.GenderPreferenceSameOnly
	b.Preferences.Gender = "female"
	assert.Equal(t, MaxGenderScore, genderFactor(&a, &b).Score)

	b.Preferences.Gender = "male"
	assert.Equal(t, 0, genderFactor(&a, &b).Score)
}

func TestTravelFactor(t *testing.T) {
	a := learner("a", "en", 30)
	b := learner("b", "fr", 30)
	a.Location = "Boston, USA"
	b.Location = "Lyon, France"

	assert.Equal(t, 0, travelFactor(&a, &b).Score)

	a.Preferences.TravelDestination = &types.TravelDestination{City: "Lyon", IsActive: true}
	fs := travelFactor(&a, &b)
	assert.Equal(t, MaxTravelScore, fs.Score)
	assert.Equal(t, []string{ReasonInTravelDest}, fs.Reasons)

	b.Preferences.TravelDestination = &types.TravelDestination{City: "boston", IsActive: true}
	fs = travelFactor(&a, &b)
	assert.Equal(t, MaxTravelScore, fs.Score)
	assert.Equal(t, []string{ReasonInTravelDest, ReasonTravelingToYou}, fs.Reasons)
}

func TestTravelFactor_InactiveDestination(t *testing.T) {
	a := learner("a", "en", 30)
	b := learner("b", "fr", 30)
	b.Location = "Lyon, France"
	a.Preferences.TravelDestination = &types.TravelDestination{Country: "France", IsActive: false}

	assert.Equal(t, 0, travelFactor(&a, &b).Score)
}

func TestRegionalFactor(t *testing.T) {
	e := testEngine()
	a := learner("a", "en", 30, lang("es", types.ProficiencyBeginner))
	b := learner("b", "es", 30, lang("en", types.ProficiencyBeginner))
	b.CountryCode = "MX"
	a.Location = "Denver, United States"

	assert.Equal(t, 0, e.regionalFactor(&a, &b).Score)

	a.Preferences.RegionalLanguagePreferences = map[string][]string{"es": {"ES", "MX"}}
	fs := e.regionalFactor(&a, &b)
	assert.Equal(t, MaxRegionalScore, fs.Score)
	assert.Equal(t, []string{ReasonPreferredRegion}, fs.Reasons)

	// The reciprocal direction adds points without a reason; the total stays capped.
	b.Preferences.RegionalLanguagePreferences = map[string][]string{"en": {"US"}}
	fs = e.regionalFactor(&a, &b)
	assert.Equal(t, MaxRegionalScore, fs.Score)
	assert.Equal(t, []string{ReasonPreferredRegion}, fs.Reasons)

	a.Preferences.RegionalLanguagePreferences = nil
	fs = e.regionalFactor(&a, &b)
	assert.Equal(t, regionalMatchScore, fs.Score)
	assert.Empty(t, fs.Reasons)
}

func TestRegionalFactor_CaseInsensitiveKeys(t *testing.T) {
	e := testEngine()
	a := learner("a", "en", 30, lang("es", types.ProficiencyBeginner))
	b := learner("b", "es", 30, lang("en", types.ProficiencyBeginner))
	b.CountryCode = "MX"
	a.Preferences.RegionalLanguagePreferences = map[string][]string{"es": {"ES"}, "ES": {"MX"}}

	fs := e.regionalFactor(&a, &b)
	assert.Equal(t, MaxRegionalScore, fs.Score)
	assert.Equal(t, []string{ReasonPreferredRegion}, fs.Reasons)
}

func TestRegionalFactor_WrongNativeLanguage(t *testing.T) {
	e := testEngine()
	a := learner("a", "en", 30)
	b := learner("b", "fr", 30)
	b.CountryCode = "MX"
	a.Preferences.RegionalLanguagePreferences = map[string][]string{"es": {"MX"}}

	assert.Equal(t, 0, e.regionalFactor(&a, &b).Score)
}

func TestScore_Bounded(t *testing.T) {
	e := testEngine()
	a, b := exchangePair()
	a.LearningLanguages[0].Level = types.ProficiencyAdvanced
	b.LearningLanguages = append(b.LearningLanguages, lang("fr", types.ProficiencyAdvanced))
	a.Coordinates = &types.Coordinates{Lat: 48.85, Lon: 2.35}
	b.Coordinates = &types.Coordinates{Lat: 48.86, Lon: 2.36}
	a.Preferences.LocationPreference = types.LocationMaxDistance
	a.Location, b.Location = "Paris, France", "Paris, France"
	a.CountryCode, b.CountryCode = "FR", "FR"
	a.Preferences.TravelDestination = &types.TravelDestination{City: "Paris", IsActive: true}
	a.Preferences.RegionalLanguagePreferences = map[string][]string{"fr": {"FR"}}

	score, _ := e.Score(a, b)
	assert.Equal(t, types.MaxScore, score)
}
