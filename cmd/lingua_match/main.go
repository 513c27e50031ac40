// Package main provides the lingua_match CLI for ranking and scoring language-exchange candidates.
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/lingua-match/internal/config"
	"github.com/jonathan/lingua-match/internal/logger"
	"github.com/jonathan/lingua-match/internal/matching"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool

	// cfg is the merged configuration, populated before any subcommand runs.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:               "lingua_match",
	Short:             "Language-exchange candidate matching",
	Long:              "lingua_match filters, scores and ranks language-exchange partners from JSON profiles, a Postgres store or a REST API.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func loadConfig(_ *cobra.Command, _ []string) error {
	fileCfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		fileCfg = loaded
	}
	fileCfg.ApplyEnv()
	if err := fileCfg.Validate(); err != nil {
		return err
	}

	cfg = fileCfg.MergeWithDefaults(config.Defaults())
	if verbose {
		cfg.Verbose = true
		cfg.LogLevel = "debug"
	}
	logger.Init(cfg.LogLevel, cfg.Env)
	return nil
}

// newEngine builds the matching engine from the loaded configuration.
func newEngine() *matching.Engine {
	opts := []matching.Option{matching.WithParallelThreshold(cfg.ParallelThreshold)}
	if cfg.Workers > 0 {
		opts = append(opts, matching.WithWorkers(cfg.Workers))
	}
	return matching.NewEngine(opts...)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
