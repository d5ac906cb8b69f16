package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lexidiff/internal/logging"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "lexidiff",
	Short: "lexidiff differentiates vocabulary terms through a definition graph",
	Long: `lexidiff compares two vocabulary terms by repeatedly expanding each
through a term→definition graph and cancelling repeated words under the
Great, Weak and Strong differentiation policies.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
}

// newLogger builds the stderr logger for the selected level.
func newLogger() *slog.Logger {
	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	return logging.New(level)
}
