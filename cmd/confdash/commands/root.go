package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is stamped at build time:
//
//	go build -ldflags "-X github.com/JonMunkholm/confdash/cmd/confdash/commands.version=v1.2.0"
var version = "dev"

var envFile string

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "confdash",
		Short: "Interactive conference program dashboard",
		Long: `confdash serves a browsable conference program: a sessions view
filtered by day, time window, sponsor, type, and keywords, and a talks
view filtered by fixed topic choices and keywords. The reference tables
load once at startup from CSV files, Postgres, or SQLite.`,
		Version:           version,
		PersistentPreRunE: loadEnvFile,
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment variables from this file before reading config")
	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewCheckCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadEnvFile applies a .env file before any command reads the
// environment. Overload overwrites variables that are already set, so
// the file wins over the inherited environment.
func loadEnvFile(cmd *cobra.Command, args []string) error {
	if envFile != "" {
		if err := godotenv.Overload(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		slog.Info("loaded env file", "path", envFile)
		return nil
	}

	// Without the flag the default .env is optional.
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}
	return nil
}
