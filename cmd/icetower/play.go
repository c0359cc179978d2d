package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pallasting/ICE-Climber/internal/core"
	"github.com/pallasting/ICE-Climber/internal/games/climb"
	"github.com/pallasting/ICE-Climber/internal/platform/tui"
	"github.com/pallasting/ICE-Climber/internal/registry"
	"github.com/pallasting/ICE-Climber/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

const difficultyHelp = `Difficulty options:
  easy   - Start at the lowest difficulty, weaker boss, longer combos
  normal - Default progression
  hard   - Start at 70% difficulty, tougher boss
  fixed  - No progression, stays at the config's initial level`

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Climb alone",
	Long: `Start a solo climb.

Controls:
  A/D or Left/Right  - Move
  W/Up/Space         - Jump
  F/X                - Swing the hammer
  Enter              - Leave the checkpoint shop
  P/Esc              - Pause
  R                  - Restart (after game over)
  B                  - Back to menu (paused or game over)
  Q/Ctrl+C           - Quit

` + difficultyHelp + `

Examples:
  icetower play
  icetower play --difficulty easy
  icetower play --seed 42 --config ./my-climb.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		runClimb("climb")
	},
}

var coopCmd = &cobra.Command{
	Use:   "coop",
	Short: "Climb with a friend on one keyboard",
	Long: `Start a two-player climb on a shared screen.

Both climbers share one camera, one purse and one altitude. A fallen
climber turns into a ghost until the next checkpoint brings them back.

Controls:
  Player 1           - A/D move, W jump, F hammer
  Player 2           - Left/Right move, Up jump, L hammer
  Enter              - Leave the checkpoint shop
  P/Esc              - Pause
  R                  - Restart (after game over)
  Q/Ctrl+C           - Quit

` + difficultyHelp,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		runClimb("climb_coop")
	},
}

func init() {
	for _, c := range []*cobra.Command{playCmd, coopCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom climb config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the runs database; play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runClimb(mode string) {
	climb.SetConfigPath(flagConfig)
	climb.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	_, runErr := tui.Run(game, store, terminalConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runMenu loops between the mode picker, the run table and climbs.
func runMenu(_ *cobra.Command, _ []string) {
	climb.SetConfigPath(flagConfig)
	climb.SetDifficultyPreset(flagDifficulty)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if !goBack {
				return
			}

		default:
			game, err := registry.Create(result.GameID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
				return
			}
			backToMenu, err := tui.Run(game, store, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				return
			}
			if !backToMenu {
				return
			}
		}
	}
}
