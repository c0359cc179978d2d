package sim

import (
	"math"

	"github.com/pallasting/ICE-Climber/internal/config"
)

// Combo is a decaying per-player streak that scales rewards.
type Combo struct {
	Count      int
	Timer      int // ticks until the streak resets
	Multiplier float64
}

// NewCombo returns a combo at baseline.
func NewCombo() Combo {
	return Combo{Multiplier: 1}
}

// Hit registers a scoring event and returns the multiplier to apply to it.
func (c *Combo) Hit(cfg config.ComboConfig) float64 {
	c.Count++
	c.Timer = cfg.WindowTicks
	c.Multiplier = math.Min(cfg.Cap, 1+float64(c.Count)*cfg.Rate)
	return c.Multiplier
}

// Tick advances the decay timer by one active tick.
func (c *Combo) Tick() {
	if c.Timer <= 0 {
		return
	}
	c.Timer--
	if c.Timer == 0 {
		*c = NewCombo()
	}
}

// scaled applies a multiplier to a base reward, rounding down.
// The epsilon keeps products like 100*1.3 from flooring to 129.
func scaled(base int, mult float64) int {
	return int(math.Floor(float64(base)*mult + 1e-9))
}
