package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/lingua-match/internal/db"
	"github.com/jonathan/lingua-match/internal/logger"
	"github.com/jonathan/lingua-match/internal/server"
	"github.com/jonathan/lingua-match/internal/server/ratelimit"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the match check, score, rank and feed endpoints. The feed endpoint needs DATABASE_URL.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port := servePort
	if port == 0 {
		port = cfg.Port
	}

	var store server.ProfileStore
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to prepare database schema: %w", err)
		}
		store = database
	} else {
		logger.Warn("DATABASE_URL not set; feed endpoint disabled")
	}

	var rl *ratelimit.Config
	if rlc := ratelimit.LoadConfig(); rlc.Enabled {
		rl = rlc
	}

	srv := server.New(server.Config{
		Port:           port,
		FeedSize:       cfg.FeedSize,
		CandidateLimit: cfg.CandidateLimit,
		RateLimit:      rl,
	}, newEngine(), store)

	return srv.Start()
}
