package main

import (
	"fmt"

	"github.com/jonathan/lingua-match/internal/observability"
	"github.com/jonathan/lingua-match/internal/profiles"
	"github.com/jonathan/lingua-match/internal/types"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Check and score a single pair of profiles",
	Long:  "Reports whether two profiles pass the hard filters, which filter rejects them if not, and their compatibility score.",
	RunE:  runScore,
}

var (
	scoreA       string
	scoreB       string
	scoreExplain bool
)

func init() {
	scoreCmd.Flags().StringVar(&scoreA, "a", "", "Path to the first profile JSON file (required)")
	scoreCmd.Flags().StringVar(&scoreB, "b", "", "Path to the second profile JSON file (required)")
	scoreCmd.Flags().BoolVar(&scoreExplain, "explain", false, "Print the per-factor breakdown")

	if err := scoreCmd.MarkFlagRequired("a"); err != nil {
		panic(fmt.Sprintf("failed to mark a flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("b"); err != nil {
		panic(fmt.Sprintf("failed to mark b flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	a, err := profiles.LoadProfile(scoreA)
	if err != nil {
		return fmt.Errorf("failed to load profile a: %w", err)
	}
	b, err := profiles.LoadProfile(scoreB)
	if err != nil {
		return fmt.Errorf("failed to load profile b: %w", err)
	}

	engine := newEngine()
	out := cmd.OutOrStdout()
	gate, failed := engine.FailedGate(*a, *b)

	_, _ = fmt.Fprintf(out, "Compatibility: %s\n", engine.Classify(*a, *b))
	if failed {
		_, _ = fmt.Fprintf(out, "Can match: no (rejected by %s filter)\n", gate)
		return nil
	}

	bd := engine.Breakdown(*a, *b)
	_, _ = fmt.Fprintf(out, "Can match: yes\n")
	_, _ = fmt.Fprintf(out, "Score: %d (%s)\n", bd.Total, types.QualityFor(bd.Total))
	for _, reason := range bd.Reasons() {
		_, _ = fmt.Fprintf(out, "  - %s\n", reason)
	}

	if scoreExplain || cfg.Verbose {
		observability.NewPrinter(out).PrintBreakdown(a.ID, b.ID, gate, true, bd)
	}
	return nil
}
