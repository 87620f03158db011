package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "papertrade",
	Short: "A single-user paper-trading account simulator",
	Long: `Papertrade is a single-user trading-simulation ledger.

It tracks cash balance, share holdings, and a full transaction history,
and answers valuation and profit/loss queries against a pluggable price
source.

Available tools:
  - Running scripted trading sessions from a config file
  - A ready-made demo session
  - Journaling session activity to CSV or SQLite`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
}

// logger builds the console logger subcommands pass down to components.
func logger() (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	w := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
