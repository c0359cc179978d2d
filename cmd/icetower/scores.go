package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pallasting/ICE-Climber/internal/platform/tui"
	"github.com/pallasting/ICE-Climber/internal/registry"
	"github.com/pallasting/ICE-Climber/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagTable  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs for a mode",
	Long: `Display the best runs for the given mode (default: climb).

Examples:
  icetower scores
  icetower scores climb_coop
  icetower scores --recent --limit 20
  icetower scores --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagTable, "tui", false, "Browse runs in an interactive table")
}

func runScores(_ *cobra.Command, args []string) {
	mode := "climb"
	if len(args) > 0 {
		mode = args[0]
	}

	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'icetower list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagTable {
		cfg := terminalConfig()
		if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	var runs []storage.Run
	heading := "Best Runs"
	if flagRecent {
		heading = "Recent Runs"
		runs, err = store.RecentRuns(mode, flagLimit)
	} else {
		runs, err = store.TopRuns(mode, flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'icetower play' to set the first record!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %-7s  %s\n", "Rank", "Score", "Altitude", "Players", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-7s  %s\n", "----", "-----", "--------", "-------", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8d  %-7d  %s\n", i+1, r.Score, r.Altitude, r.Players, dateStr)
	}

	fmt.Println()
	if stats, err := store.Stats(mode); err == nil {
		fmt.Printf("Runs: %d  Best score: %d  Best altitude: %d  Average: %.0f\n",
			stats.Runs, stats.BestScore, stats.BestAltitude, stats.AvgScore)
	}
}
