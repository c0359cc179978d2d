package config

import "math"

// DifficultyManager maps generator level to a difficulty in [0, 1] and
// derives the generation probabilities from it.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty (0.0 to 1.0) for a generator level.
// It is 0 at level 0 (plus the initial offset) and saturates at max_at.
func (d *DifficultyManager) Level(level int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "level" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	progress := clampF(float64(level)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// GapChance returns the probability that a column is left open.
func (d *DifficultyManager) GapChance(level int) float64 {
	return d.cfg.Scaling.GapChance.At(d.Level(level))
}

// UnbreakableChance returns the probability that a placed block is unbreakable.
func (d *DifficultyManager) UnbreakableChance(level int) float64 {
	return d.cfg.Scaling.UnbreakableChance.At(d.Level(level))
}

// SpikeChance returns the probability that a placed block is a spike.
func (d *DifficultyManager) SpikeChance(level int) float64 {
	return d.cfg.Scaling.SpikeChance.At(d.Level(level))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
