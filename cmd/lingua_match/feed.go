package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/lingua-match/internal/db"
	"github.com/jonathan/lingua-match/internal/logger"
	"github.com/jonathan/lingua-match/internal/types"
	"github.com/spf13/cobra"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Rank stored candidates for a stored user",
	Long:  "Loads a user and every complete profile from Postgres (DATABASE_URL), ranks them and prints the feed as JSON.",
	RunE:  runFeed,
}

var (
	feedUser    string
	feedTop     int
	feedTimeout time.Duration
)

func init() {
	feedCmd.Flags().StringVarP(&feedUser, "user", "u", "", "User ID (UUID) to build the feed for (required)")
	feedCmd.Flags().IntVarP(&feedTop, "top", "n", 0, "Number of results (default from config feed_size)")
	feedCmd.Flags().DurationVar(&feedTimeout, "timeout", 30*time.Second, "Timeout for database work")

	if err := feedCmd.MarkFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}

	rootCmd.AddCommand(feedCmd)
}

func runFeed(cmd *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(feedUser)
	if err != nil {
		return fmt.Errorf("invalid user ID %q: %w", feedUser, err)
	}
	top := feedTop
	if top == 0 {
		top = cfg.FeedSize
	}
	if top < 0 {
		return fmt.Errorf("--top must be non-negative, got %d", top)
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable (or database_url in config) is required")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), feedTimeout)
	defer cancel()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	requester, err := database.GetProfile(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	candidates, err := database.ListCandidates(ctx, userID, cfg.CandidateLimit)
	if err != nil {
		return fmt.Errorf("failed to list candidates: %w", err)
	}

	results := newEngine().TopN(*requester, candidates, top)
	logger.Info("Feed built", "user_id", userID, "candidates", len(candidates), "results", len(results))

	return writeJSON(cmd.OutOrStdout(), "", types.NewRankedFeed(requester.ID, results))
}
