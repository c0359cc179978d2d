package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pallasting/ICE-Climber/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective climb config",
	Long: `Print the climb configuration as YAML after the search order and the
difficulty preset are applied. Redirect it to a file to start a custom config:

  icetower config > ~/.icetower/configs/climb.yaml

Search order:
  --config path -> ~/.icetower/configs/climb.yaml -> ./configs/climb.yaml -> built-in`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom climb config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadClimb(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyClimbPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}

	data, err := config.Encode(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Nothing useful to do if stdout is gone
	os.Stdout.Write(data)
}
