// icetower is an endless ice-climbing arcade game for the terminal.
//
// Usage:
//
//	icetower                 - Start the mode picker menu
//	icetower play            - Climb alone
//	icetower coop            - Climb with a friend on one keyboard
//	icetower serve           - Start SSH server for remote play
//	icetower scores [mode]   - Show the best runs
//	icetower config          - Print the effective game config
//	icetower list            - List available modes
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.icetower/runs.db)
//	--verbose       - Log debug events to stderr
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pallasting/ICE-Climber/internal/games/climb"
	"github.com/pallasting/ICE-Climber/internal/platform/tui"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
	flagLogFile string
)

// logFile is the --log-file sink, closed after the command finishes.
var logFile *os.File

// logger is configured in the root PersistentPreRunE.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "icetower",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "icetower",
	Short: "Ice Tower - climb an endless frozen mountain in your terminal",
	Long: `Ice Tower is an endless vertical climber. Break the ice above you,
hammer yetis and birds, collect fruit and buy upgrades at checkpoints.
The camera only goes up: fall off the bottom and the climb is over.

Available commands:
  play     - Climb alone
  coop     - Two climbers on one keyboard
  serve    - Start SSH server for remote play
  scores   - View the best runs
  config   - Print the effective config
  list     - Show all modes

Examples:
  icetower
  icetower play --difficulty hard
  icetower coop --seed 42
  icetower serve --ssh :2222
  icetower scores climb_coop`,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
	Run:                runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.icetower/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug events")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to a file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(coopCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging points every package logger at the configured sink.
// The alternate screen owns the terminal during play, so game logs are
// dropped unless verbose or a log file is set.
func setupLogging(cmd *cobra.Command, _ []string) error {
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger.SetOutput(f)
	}
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	if flagVerbose || flagLogFile != "" || cmd.Name() == "serve" {
		tui.SetLogger(logger.WithPrefix("icetower-tui"))
		climb.SetLogger(logger.WithPrefix("climb"))
	}
	return nil
}

// closeLogging closes the --log-file sink and points the logger back at stderr.
func closeLogging(_ *cobra.Command, _ []string) error {
	if logFile == nil {
		return nil
	}
	logger.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	if err != nil {
		return fmt.Errorf("cannot close log file: %w", err)
	}
	return nil
}
