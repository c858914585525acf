// Package cmd wires the CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/opsdojo/internal/config"
	"github.com/abhisek/opsdojo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "opsdojo",
	Short: "Training dojo for operations agents",
	Long: "OpsDojo drills an AI agent on precise system-metric reporting: one question\n" +
		"at a time, strict literal answers, teacher feedback, five attempts per question.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides OPSDOJO_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to policy config file (default: opsdojo.yaml, ~/.opsdojo/config.yaml)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then OPSDOJO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the DB path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// loadConfig loads the policy config from --config or the default
// search path.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return config.Load(p)
	}
	return config.LoadDefault()
}
