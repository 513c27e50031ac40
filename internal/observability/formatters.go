// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/lingua-match/internal/matching"
	"github.com/jonathan/lingua-match/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if runes := []rune(line); len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a short summary of a user's languages and preferences.
func (p *Printer) PrintProfile(profile *types.UserProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("User:     %s\n", profile.ID))
	if profile.Age != nil {
		sb.WriteString(fmt.Sprintf("Age:      %d\n", *profile.Age))
	}
	sb.WriteString(fmt.Sprintf("Native:   %s\n", profile.NativeLanguage))
	if len(profile.LearningLanguages) > 0 {
		sb.WriteString("Learning:\n")
		for _, l := range profile.LearningLanguages {
			sb.WriteString(fmt.Sprintf("  - %s (%s)\n", l.Code, l.Level))
		}
	}
	if profile.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", profile.Location))
	}

	prefs := profile.Preferences
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Ages %d-%d, gender %s, location %s\n",
		prefs.MinAge, prefs.MaxAge, orDash(string(prefs.GenderPreference)), orDash(string(prefs.LocationPreference))))
	if len(prefs.RelationshipIntents) > 0 {
		sb.WriteString(fmt.Sprintf("Intents: %s\n", strings.Join(prefs.RelationshipIntents, ", ")))
	}
	if prefs.AllowNonNativeMatches {
		sb.WriteString(fmt.Sprintf("Non-native partners: %s-%s\n", prefs.MinProficiencyLevel, prefs.MaxProficiencyLevel))
	}

	p.printBox("REQUESTER", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFilterSummary outputs how many candidates each hard filter rejected.
func (p *Printer) PrintFilterSummary(total int, rejected map[matching.Gate]int) {
	var sb strings.Builder
	kept := total
	for _, n := range rejected {
		kept -= n
	}
	sb.WriteString(fmt.Sprintf("Candidates: %d, eligible: %d\n", total, kept))

	if len(rejected) > 0 {
		gates := make([]string, 0, len(rejected))
		for g := range rejected {
			gates = append(gates, string(g))
		}
		sort.Strings(gates)

		sb.WriteString("\nRejected by:\n")
		for _, g := range gates {
			sb.WriteString(fmt.Sprintf("  %-10s %d\n", g, rejected[matching.Gate(g)]))
		}
	}

	p.printBox("HARD FILTERS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedFeed outputs the top entries of a ranked feed with their reasons.
func (p *Printer) PrintRankedFeed(feed *types.RankedFeed) {
	if feed == nil || len(feed.Results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matches for %s: %d\n\n", feed.RequesterID, len(feed.Results)))

	count := min(len(feed.Results), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := feed.Results[i]
		online := ""
		if entry.IsOnline {
			online = " (online)"
		}
		sb.WriteString(fmt.Sprintf("#%d  %s%s\n", i+1, entry.CandidateID, online))
		sb.WriteString(fmt.Sprintf("    Score: %d (%s)\n", entry.Score, entry.Quality))
		if len(entry.Reasons) > 0 {
			reasons := strings.Join(entry.Reasons, ", ")
			if len(reasons) > 44 {
				reasons = reasons[:41] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", reasons))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(feed.Results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(feed.Results)-maxItemsToShow))
	}

	p.printBox("RANKED FEED", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBreakdown outputs the eligibility verdict and per-factor scores for one pair.
func (p *Printer) PrintBreakdown(aID, bID string, gate matching.Gate, eligible bool, bd matching.ScoreBreakdown) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s -> %s\n", aID, bID))
	if eligible {
		sb.WriteString("Eligible: yes\n")
	} else {
		sb.WriteString(fmt.Sprintf("Eligible: no (failed %s filter)\n", gate))
	}
	sb.WriteString("\n")

	for _, f := range bd.Factors {
		sb.WriteString(fmt.Sprintf("%-12s %3d / %-3d\n", f.Factor, f.Score, f.Max))
		for _, r := range f.Reasons {
			sb.WriteString(fmt.Sprintf("  + %s\n", r))
		}
	}
	sb.WriteString(fmt.Sprintf("\nTotal: %d (%s)\n", bd.Total, types.QualityFor(bd.Total)))

	p.printBox("SCORE BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
