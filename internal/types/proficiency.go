// Package types provides type definitions for the profiles and match results exchanged by lingua-match.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// ProficiencyLevel is a learner's level in a language.
// Levels are ordered; compare them with Rank, never with the label.
type ProficiencyLevel string

const (
	ProficiencyBeginner     ProficiencyLevel = "beginner"
	ProficiencyIntermediate ProficiencyLevel = "intermediate"
	ProficiencyAdvanced     ProficiencyLevel = "advanced"
	ProficiencyNative       ProficiencyLevel = "native"
)

// proficiencyRank is the fixed ordering of levels. Unknown levels rank 0.
var proficiencyRank = map[ProficiencyLevel]int{
	ProficiencyBeginner:     1,
	ProficiencyIntermediate: 2,
	ProficiencyAdvanced:     3,
	ProficiencyNative:       4,
}

// Rank returns the ordinal position of the level (1 = beginner .. 4 = native), or 0 if unknown.
func (p ProficiencyLevel) Rank() int {
	return proficiencyRank[p]
}

// IsValid reports whether p is one of the known levels.
func (p ProficiencyLevel) IsValid() bool {
	return p.Rank() > 0
}

// Within reports whether p lies in the inclusive range [lo, hi].
func (p ProficiencyLevel) Within(lo, hi ProficiencyLevel) bool {
	r := p.Rank()
	return r > 0 && r >= lo.Rank() && r <= hi.Rank()
}

// ParseProficiencyLevel converts a label to a level, ignoring case and surrounding space.
func ParseProficiencyLevel(s string) (ProficiencyLevel, bool) {
	level := ProficiencyLevel(strings.ToLower(strings.TrimSpace(s)))
	return level, level.IsValid()
}

// ProficiencyDiff returns the absolute rank distance between two levels.
func ProficiencyDiff(a, b ProficiencyLevel) int {
	d := a.Rank() - b.Rank()
	if d < 0 {
		return -d
	}
	return d
}
