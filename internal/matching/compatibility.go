package matching

import (
	"strings"

	"github.com/jonathan/lingua-match/internal/types"
)

// Compatibility describes how two users are linguistically compatible.
type Compatibility int

const (
	CompatibilityNone Compatibility = iota
	// CompatibilitySecondary: both learn a common language and a non-native acceptor's
	// proficiency range admits the other user's level in it.
	CompatibilitySecondary
	// CompatibilityPrimary: each user's native language is one the other is learning.
	CompatibilityPrimary
)

func (c Compatibility) String() string {
	switch c {
	case CompatibilityPrimary:
		return "primary"
	case CompatibilitySecondary:
		return "secondary"
	default:
		return "none"
	}
}

// Classify determines whether and how a and b are linguistically compatible.
// The filter stage and the scorer both go through Classify so they never disagree.
func (e *Engine) Classify(a, b types.UserProfile) Compatibility {
	if isPrimaryMatch(&a, &b) {
		return CompatibilityPrimary
	}
	if isSecondaryMatch(&a, &b) {
		return CompatibilitySecondary
	}
	return CompatibilityNone
}

// IsCompatible reports whether a and b have a primary or secondary match.
func (e *Engine) IsCompatible(a, b types.UserProfile) bool {
	return e.Classify(a, b) != CompatibilityNone
}

func isPrimaryMatch(a, b *types.UserProfile) bool {
	return a.NativeLanguage != "" && b.NativeLanguage != "" &&
		b.IsLearning(a.NativeLanguage) && a.IsLearning(b.NativeLanguage)
}

func isSecondaryMatch(a, b *types.UserProfile) bool {
	aAccepts := a.Preferences.AllowNonNativeMatches
	bAccepts := b.Preferences.AllowNonNativeMatches
	if !aAccepts && !bAccepts {
		return false
	}

	for _, code := range commonLearningLanguages(a, b) {
		levelA, _ := a.ProficiencyFor(code)
		levelB, _ := b.ProficiencyFor(code)
		if aAccepts && a.Preferences.AcceptsProficiency(levelB) {
			return true
		}
		if bAccepts && b.Preferences.AcceptsProficiency(levelA) {
			return true
		}
	}
	return false
}

// commonLearningLanguages returns the codes both users are learning, in a's order.
func commonLearningLanguages(a, b *types.UserProfile) []string {
	var common []string
	seen := make(map[string]bool, len(a.LearningLanguages))
	for _, l := range a.LearningLanguages {
		key := strings.ToLower(l.Code)
		if seen[key] {
			continue
		}
		seen[key] = true
		if b.IsLearning(l.Code) {
			common = append(common, l.Code)
		}
	}
	return common
}
