package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid climb config")

const climbFile = "climb.yaml"

// LoadClimb loads the climb configuration.
// Search order: customPath -> ~/.icetower/configs/climb.yaml -> ./configs/climb.yaml -> embedded default.
// Files are decoded on top of the defaults, so partial overrides are allowed.
func LoadClimb(customPath string) (ClimbConfig, error) {
	cfg := DefaultClimbConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(climbFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultClimbConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, candidate.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", climbFile)); err == nil {
		candidate := DefaultClimbConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, candidate.Validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultClimbYAML, &cfg); err != nil {
		return DefaultClimbConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Encode renders a configuration as YAML.
func Encode(cfg ClimbConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".icetower", "configs", filename)
}

// Validate checks the invariants the generator and physics rely on.
func (c ClimbConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.TileSize > 0, "field.tile_size must be positive")
	check(c.Field.Columns() >= 4, "field must be at least 4 tiles wide, got %d", c.Field.Columns())
	check(c.Field.Height > 0, "field.height must be positive")
	check(c.Field.RowSpacing >= 2, "field.row_spacing must be at least 2")
	check(c.Physics.JumpForce < 0, "physics.jump_force must be negative (upward)")
	check(c.Physics.TerminalVelocity > 0, "physics.terminal_velocity must be positive")
	check(c.World.BlizzardLevel < c.World.AuroraLevel, "world.blizzard_level must be below world.aurora_level")
	check(c.World.BatchRows > 0, "world.batch_rows must be positive")
	check(c.World.CloudWidth > 0, "world.cloud_width must be positive")
	check(c.Boss.Level > 0, "boss.level must be above the start floor")
	check(c.Boss.HP > 0, "boss.hp must be positive")
	check(len(c.Boss.PhaseThresholds) == 2, "boss.phase_thresholds needs 2 entries, got %d", len(c.Boss.PhaseThresholds))
	check(len(c.Boss.FireIntervals) == 3, "boss.fire_intervals needs 3 entries, got %d", len(c.Boss.FireIntervals))
	check(len(c.Combat.Items) == 3, "combat.items needs 3 entries (low, mid, high), got %d", len(c.Combat.Items))
	check(c.Combo.Cap >= 1, "combo.cap must be at least 1")
	check(c.Combo.WindowTicks > 0, "combo.window_ticks must be positive")
	check(c.Run.CheckpointEvery > 0, "run.checkpoint_every must be positive")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// ApplyClimbPreset modifies the config based on a difficulty preset.
func ApplyClimbPreset(cfg *ClimbConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the fight and the scoring window based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Boss.HP = 200
		cfg.Combo.WindowTicks = 180
		cfg.Run.CheckpointEvery = 30
	case DifficultyHard:
		cfg.Boss.HP = 400
		cfg.Combo.WindowTicks = 90
		cfg.Yeti.BuildChance = 0.4
	}
}
