package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/lingua-match/internal/db"
	"github.com/spf13/cobra"
)

var setOnlineCmd = &cobra.Command{
	Use:   "set-online",
	Short: "Mark a stored user online or offline",
	RunE:  runSetOnline,
}

var (
	setOnlineUser    string
	setOnlineOffline bool
)

func init() {
	setOnlineCmd.Flags().StringVarP(&setOnlineUser, "user", "u", "", "User ID (UUID) (required)")
	setOnlineCmd.Flags().BoolVar(&setOnlineOffline, "offline", false, "Mark the user offline instead")

	if err := setOnlineCmd.MarkFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}

	rootCmd.AddCommand(setOnlineCmd)
}

func runSetOnline(cmd *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(setOnlineUser)
	if err != nil {
		return fmt.Errorf("invalid user ID %q: %w", setOnlineUser, err)
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable (or database_url in config) is required")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.SetOnline(ctx, userID, !setOnlineOffline); err != nil {
		return fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	state := "online"
	if setOnlineOffline {
		state = "offline"
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "User %s is now %s\n", userID, state)
	return nil
}
