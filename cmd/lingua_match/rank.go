package main

import (
	"fmt"

	"github.com/jonathan/lingua-match/internal/logger"
	"github.com/jonathan/lingua-match/internal/matching"
	"github.com/jonathan/lingua-match/internal/observability"
	"github.com/jonathan/lingua-match/internal/profiles"
	"github.com/jonathan/lingua-match/internal/types"
	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidate profiles for a requester",
	Long:  "Applies the hard filters to every candidate, scores the survivors and writes the ranked feed as JSON, best match first.",
	RunE:  runRank,
}

var (
	rankRequester  string
	rankCandidates string
	rankOutput     string
	rankTop        int
)

func init() {
	rankCmd.Flags().StringVarP(&rankRequester, "requester", "r", "", "Path to the requester's profile JSON file (required)")
	rankCmd.Flags().StringVarP(&rankCandidates, "candidates", "c", "", "Path to a JSON array of candidate profiles (required)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output RankedFeed JSON file (default stdout)")
	rankCmd.Flags().IntVarP(&rankTop, "top", "n", 0, "Keep only the best N results (0 keeps all)")

	if err := rankCmd.MarkFlagRequired("requester"); err != nil {
		panic(fmt.Sprintf("failed to mark requester flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	if rankTop < 0 {
		return fmt.Errorf("--top must be non-negative, got %d", rankTop)
	}

	requester, err := profiles.LoadProfile(rankRequester)
	if err != nil {
		return fmt.Errorf("failed to load requester: %w", err)
	}
	candidates, err := profiles.LoadProfiles(rankCandidates)
	if err != nil {
		return fmt.Errorf("failed to load candidates: %w", err)
	}

	engine := newEngine()
	results := engine.TopN(*requester, candidates, rankTop)
	feed := types.NewRankedFeed(requester.ID, results)
	logger.Debug("Ranked candidates", "requester", requester.ID, "candidates", len(candidates), "results", len(results))

	if cfg.Verbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintProfile(requester)
		printer.PrintFilterSummary(len(candidates), rejectedByGate(engine, *requester, candidates))
		printer.PrintRankedFeed(&feed)
	}

	if err := writeJSON(cmd.OutOrStdout(), rankOutput, feed); err != nil {
		return err
	}
	if rankOutput != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully ranked %d of %d candidates to %s\n", len(feed.Results), len(candidates), rankOutput)
	}
	return nil
}

// rejectedByGate counts the candidates each hard filter turned away.
func rejectedByGate(engine *matching.Engine, requester types.UserProfile, candidates []types.UserProfile) map[matching.Gate]int {
	rejected := make(map[matching.Gate]int)
	for _, c := range candidates {
		if gate, failed := engine.FailedGate(requester, c); failed {
			rejected[gate]++
		}
	}
	return rejected
}
