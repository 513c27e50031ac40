package matching

import (
	"sort"
	"strings"

	"github.com/jonathan/lingua-match/internal/geo"
	"github.com/jonathan/lingua-match/internal/types"
)

// Factor names a scoring component.
type Factor string

const (
	FactorLanguage    Factor = "language"
	FactorProficiency Factor = "proficiency"
	FactorAge         Factor = "age"
	FactorLocation    Factor = "location"
	FactorIntent      Factor = "intent"
	FactorGender      Factor = "gender"
	FactorTravel      Factor = "travel"
	FactorRegional    Factor = "regional"
)

// Maximum points per factor. The caps sum to 100.
const (
	MaxLanguageScore    = 40
	MaxProficiencyScore = 15
	MaxAgeScore         = 10
	MaxLocationScore    = 10
	MaxIntentScore      = 10
	MaxGenderScore      = 5
	MaxTravelScore      = 5
	MaxRegionalScore    = 5
)

// Points awarded when data needed to score a factor is missing or indifferent.
const (
	NeutralAgeScore      = 5
	NeutralLocationScore = 5
)

const (
	secondaryLanguageScore = 25
	proficiencyStepPenalty = 5

	travelMatchScore   = 5
	regionalMatchScore = 5
)

// Distance bands for the location factor.
const (
	localRadiusKm    = 25.0
	nearbyRadiusKm   = 100.0
	regionalRadiusKm = 500.0

	localScore    = 10
	nearbyScore   = 8
	regionalScore = 5
	distantScore  = 2
)

// Intent scores, highest priority first.
const (
	datingIntentScore     = 10
	friendshipIntentScore = 8
	practiceIntentScore   = 5
)

// Reasons shown to users.
const (
	ReasonPerfectExchange    = "Perfect language exchange match!"
	ReasonSameTargetLanguage = "Learning the same language"
	ReasonSimilarProficiency = "Similar proficiency level"
	ReasonSimilarAge         = "Similar age"
	ReasonCompatibleAge      = "Compatible ages"
	ReasonLocalMatch         = "Local match"
	ReasonNearby             = "Nearby"
	ReasonOpenToDating       = "Both open to dating"
	ReasonFriendship         = "Both looking for friendship"
	ReasonLanguagePractice   = "Both focused on language practice"
	ReasonInTravelDest       = "Lives where you are traveling"
	ReasonTravelingToYou     = "Traveling to your area"
	ReasonPreferredRegion    = "Native speaker from your preferred region"
)

// FactorScore is one factor's contribution to a compatibility score.
type FactorScore struct {
	Factor  Factor   `json:"factor"`
	Score   int      `json:"score"`
	Max     int      `json:"max"`
	Reasons []string `json:"reasons,omitempty"`
}

// ScoreBreakdown is the per-factor view of a compatibility score.
type ScoreBreakdown struct {
	Factors []FactorScore `json:"factors"`
	Total   int           `json:"total"`
}

// Reasons returns every factor's reasons in evaluation order. Duplicates are kept.
func (b ScoreBreakdown) Reasons() []string {
	var reasons []string
	for _, f := range b.Factors {
		reasons = append(reasons, f.Reasons...)
	}
	return reasons
}

// Get returns the score of a single factor.
func (b ScoreBreakdown) Get(f Factor) int {
	for _, fs := range b.Factors {
		if fs.Factor == f {
			return fs.Score
		}
	}
	return 0
}

// Score returns b's compatibility with requester a in [0,100] and the reasons behind it.
// It assumes the pair already passed CanMatch.
func (e *Engine) Score(a, b types.UserProfile) (int, []string) {
	bd := e.Breakdown(a, b)
	return bd.Total, bd.Reasons()
}

// Breakdown scores each factor independently and sums them, clamped to 100.
func (e *Engine) Breakdown(a, b types.UserProfile) ScoreBreakdown {
	factors := []FactorScore{
		e.languageFactor(&a, &b),
		proficiencyFactor(&a, &b),
		ageFactor(&a, &b),
		locationFactor(&a, &b),
		intentFactor(&a, &b),
		genderFactor(&a, &b),
		travelFactor(&a, &b),
		e.regionalFactor(&a, &b),
	}

	total := 0
	for _, f := range factors {
		total += f.Score
	}
	return ScoreBreakdown{Factors: factors, Total: clampScore(total)}
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > types.MaxScore {
		return types.MaxScore
	}
	return s
}

func (e *Engine) languageFactor(a, b *types.UserProfile) FactorScore {
	fs := FactorScore{Factor: FactorLanguage, Max: MaxLanguageScore}
	switch e.Classify(*a, *b) {
	case CompatibilityPrimary:
		fs.Score = MaxLanguageScore
		fs.Reasons = []string{ReasonPerfectExchange}
	case CompatibilitySecondary:
		fs.Score = secondaryLanguageScore
		fs.Reasons = []string{ReasonSameTargetLanguage}
	}
	return fs
}

// proficiencyFactor rewards the closest level gap over the common learning languages.
func proficiencyFactor(a, b *types.UserProfile) FactorScore {
	fs := FactorScore{Factor: FactorProficiency, Max: MaxProficiencyScore}
	common := commonLearningLanguages(a, b)
	if len(common) == 0 {
		return fs
	}

	bestDiff := -1
	for _, code := range common {
		levelA, _ := a.ProficiencyFor(code)
		levelB, _ := b.ProficiencyFor(code)
		diff := types.ProficiencyDiff(levelA, levelB)
		if s := proficiencyPoints(diff); s > fs.Score || bestDiff < 0 {
			fs.Score = s
			bestDiff = diff
		}
	}
	if bestDiff <= 1 {
		fs.Reasons = []string{ReasonSimilarProficiency}
	}
	return fs
}

func proficiencyPoints(diff int) int {
	s := MaxProficiencyScore - proficiencyStepPenalty*diff
	if s < 0 {
		return 0
	}
	return s
}

func ageFactor(a, b *types.UserProfile) FactorScore {
	fs := FactorScore{Factor: FactorAge, Max: MaxAgeScore}
	if a.Age == nil || b.Age == nil {
		fs.Score = NeutralAgeScore
		return fs
	}
	if !agesAccepted(a, b) {
		return fs
	}

	diff := *a.Age - *b.Age
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff <= 3:
		fs.Score = 10
		fs.Reasons = []string{ReasonSimilarAge}
	case diff <= 5:
		fs.Score = 8
	case diff <= 10:
		fs.Score = 5
		fs.Reasons = []string{ReasonCompatibleAge}
	case diff <= 15:
		fs.Score = 2
	}
	return fs
}

// locationFactor checks the "both anywhere" neutral case before any distance band.
func locationFactor(a, b *types.UserProfile) FactorScore {
	fs := FactorScore{Factor: FactorLocation, Max: MaxLocationScore, Score: NeutralLocationScore}
	if a.Preferences.LocationPreference.IsAnywhere() && b.Preferences.LocationPreference.IsAnywhere() {
		return fs
	}
	d, ok := geo.DistanceBetween(a, b)
	if !ok {
		return fs
	}
	switch {
	case d <= localRadiusKm:
		fs.Score = localScore
		fs.Reasons = []string{ReasonLocalMatch}
	case d <= nearbyRadiusKm:
		fs.Score = nearbyScore
		fs.Reasons = []string{ReasonNearby}
	case d <= regionalRadiusKm:
		fs.Score = regionalScore
	default:
		fs.Score = distantScore
	}
	return fs
}

func intentFactor(a, b *types.UserProfile) FactorScore {
	fs := FactorScore{Factor: FactorIntent, Max: MaxIntentScore}
	shared := make(map[string]bool)
	for _, tag := range sharedIntents(a, b) {
		shared[tag] = true
	}
	switch {
	case shared[types.IntentOpenToDating]:
		fs.Score = datingIntentScore
		fs.Reasons = []string{ReasonOpenToDating}
	case shared[types.IntentFriendship]:
		fs.Score = friendshipIntentScore
		fs.Reasons = []string{ReasonFriendship}
	case shared[types.IntentLanguagePracticeOnly]:
		fs.Score = practiceIntentScore
		fs.Reasons = []string{ReasonLanguagePractice}
	}
	return fs
}

func genderFactor(a, b *types.UserProfile) FactorScore {
	fs := FactorScore{Factor: FactorGender, Max: MaxGenderScore}
	bothAll := isAllGenders(a.Preferences.GenderPreference) && isAllGenders(b.Preferences.GenderPreference)
	if bothAll || gendersAccepted(a, b) {
		fs.Score = MaxGenderScore
	}
	return fs
}

func isAllGenders(g types.GenderPreference) bool {
	return g == "" || g == types.GenderPreferenceAll
}

// travelFactor awards points in each direction independently, then caps the total.
func travelFactor(a, b *types.UserProfile) FactorScore {
	fs := FactorScore{Factor: FactorTravel, Max: MaxTravelScore}
	if travelingTo(a.Preferences.TravelDestination, b.Location) {
		fs.Score += travelMatchScore
		fs.Reasons = append(fs.Reasons, ReasonInTravelDest)
	}
	if travelingTo(b.Preferences.TravelDestination, a.Location) {
		fs.Score += travelMatchScore
		fs.Reasons = append(fs.Reasons, ReasonTravelingToYou)
	}
	fs.Score = min(fs.Score, MaxTravelScore)
	return fs
}

func travelingTo(dest *types.TravelDestination, location string) bool {
	if dest == nil || !dest.IsActive {
		return false
	}
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc == "" {
		return false
	}
	for _, place := range []string{dest.City, dest.Country} {
		place = strings.ToLower(strings.TrimSpace(place))
		if place != "" && strings.Contains(loc, place) {
			return true
		}
	}
	return false
}

// regionalFactor: only the requester's preferences produce a reason; the reciprocal
// direction adds points silently.
func (e *Engine) regionalFactor(a, b *types.UserProfile) FactorScore {
	fs := FactorScore{Factor: FactorRegional, Max: MaxRegionalScore}
	for range e.regionalHits(a, b) {
		fs.Score += regionalMatchScore
		fs.Reasons = append(fs.Reasons, ReasonPreferredRegion)
	}
	for range e.regionalHits(b, a) {
		fs.Score += regionalMatchScore
	}
	fs.Score = min(fs.Score, MaxRegionalScore)
	return fs
}

// regionalHits returns the owner's regional-preference languages that other satisfies,
// in sorted order.
func (e *Engine) regionalHits(owner, other *types.UserProfile) []string {
	prefs := owner.Preferences.RegionalLanguagePreferences
	if len(prefs) == 0 {
		return nil
	}
	// Keys differing only in case name the same language.
	countries := make(map[string][]string, len(prefs))
	for lang, codes := range prefs {
		key := strings.ToLower(strings.TrimSpace(lang))
		countries[key] = append(countries[key], codes...)
	}
	langs := make([]string, 0, len(countries))
	for lang := range countries {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	var hits []string
	for _, lang := range langs {
		if !strings.EqualFold(other.NativeLanguage, lang) {
			continue
		}
		for _, code := range countries[lang] {
			if e.inCountry(other, code) {
				hits = append(hits, lang)
				break
			}
		}
	}
	return hits
}
