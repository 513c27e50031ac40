package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/lingua-match/internal/db"
	"github.com/jonathan/lingua-match/internal/logger"
	"github.com/jonathan/lingua-match/internal/profiles"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load profiles from a JSON file into Postgres",
	Long:  "Validates every profile in a JSON file and upserts it into the profiles table (DATABASE_URL). Profile IDs must be UUIDs.",
	RunE:  runImport,
}

var (
	importInput      string
	importIncomplete bool
)

func init() {
	importCmd.Flags().StringVarP(&importInput, "in", "i", "", "Path to a profile or an array of profiles (required)")
	importCmd.Flags().BoolVar(&importIncomplete, "incomplete", false, "Store profiles as incomplete so feeds skip them")

	if err := importCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	// Validate the whole file before touching the database.
	loaded, err := profiles.LoadProfiles(importInput)
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable (or database_url in config) is required")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to prepare database schema: %w", err)
	}
	for _, p := range loaded {
		if err := database.UpsertProfile(ctx, p, !importIncomplete); err != nil {
			return fmt.Errorf("failed to store profile %q: %w", p.ID, err)
		}
		logger.Debug("Stored profile", "user_id", p.ID)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully imported %d profiles\n", len(loaded))
	return nil
}
