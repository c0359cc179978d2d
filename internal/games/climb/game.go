// Package climb adapts the climb simulation to the platform: it maps
// abstract input frames to per-player intents, runs the checkpoint shop and
// draws snapshots into a screen buffer.
package climb

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/pallasting/ICE-Climber/internal/config"
	"github.com/pallasting/ICE-Climber/internal/core"
	"github.com/pallasting/ICE-Climber/internal/games/climb/sim"
	"github.com/pallasting/ICE-Climber/internal/registry"
)

// Mode selects how many local players share the run.
type Mode int

const (
	ModeSolo Mode = iota
	ModeCoop
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives run and event logs; silent unless the CLI sets one.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetLogger sets the logger used by every climb instance.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game implements registry.Game for the climb.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.ClimbConfig

	state *sim.State
	snap  sim.Snapshot
	latch *holdLatch

	paused  bool
	cursors map[core.PlayerID]int // shop selection per player
	shopMsg string

	banner      string
	bannerTicks int

	bestScore    int
	bestAltitude int

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a single-player climb.
func New() *Game {
	return &Game{mode: ModeSolo}
}

// NewCoop creates a two-player shared-screen climb.
func NewCoop() *Game {
	return &Game{mode: ModeCoop}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeCoop {
		return "climb_coop"
	}
	return "climb"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeCoop {
		return "Ice Tower (Co-op)"
	}
	return "Ice Tower"
}

// Reset initializes or restarts the run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadClimb(configPath)
	if err != nil {
		logger.Warn("falling back to default config", "err", err)
		cfg = config.DefaultClimbConfig()
	}
	if difficultyPreset != "" {
		config.ApplyClimbPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.minScreenW = 32
	g.minScreenH = 16
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	g.state = sim.New(cfg, runtime.Seed, g.mode == ModeCoop)
	g.snap = g.state.Snapshot()
	g.latch = newHoldLatch(cfg.Input.HoldTicks)
	g.paused = false
	g.cursors = make(map[core.PlayerID]int)
	g.shopMsg = ""
	g.banner = "Climb!"
	g.bannerTicks = 90

	logger.Debug("run started", "mode", g.ID(), "seed", runtime.Seed)
}

// Resize adapts to a new screen size while keeping the run.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < g.minScreenW || height < g.minScreenH
}

// players returns the local player slots of this mode.
func (g *Game) players() []core.PlayerID {
	if g.mode == ModeCoop {
		return []core.PlayerID{core.Player1, core.Player2}
	}
	return []core.PlayerID{core.Player1}
}

// Step advances the run by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.screenTooSmall || g.state == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Player1().Has(core.ActionPause) && g.snap.Phase == sim.PhasePlaying {
		g.paused = !g.paused
		g.latch.release()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.bannerTicks > 0 {
		g.bannerTicks--
	}

	if g.snap.Phase == sim.PhaseShop {
		g.handleShop(in)
		g.snap = g.state.Snapshot()
		return core.StepResult{State: g.State()}
	}

	g.snap = g.state.Step(g.latch.intents(in, g.players()))
	g.handleEvents(g.snap.Events)
	return core.StepResult{State: g.State()}
}

// handleShop moves each player's cursor, buys on attack and leaves on confirm.
func (g *Game) handleShop(in core.MultiInputFrame) {
	upgrades := g.state.Upgrades()
	n := len(upgrades)

	for _, id := range g.players() {
		frame := in.Player(id)
		cur := g.cursors[id]
		switch {
		case frame.Has(core.ActionLeft):
			cur = (cur + n - 1) % n
		case frame.Has(core.ActionRight):
			cur = (cur + 1) % n
		}
		g.cursors[id] = cur

		if frame.Has(core.ActionAttack) {
			u := upgrades[cur]
			if g.state.Buy(id, u) {
				g.shopMsg = fmt.Sprintf("%s bought %s", id, upgradeLabel(u))
				logger.Debug("upgrade bought", "player", id, "upgrade", u, "currency", g.state.Currency())
			} else {
				g.shopMsg = fmt.Sprintf("%s cannot buy %s", id, upgradeLabel(u))
			}
		}
	}

	for _, id := range g.players() {
		if in.Player(id).Has(core.ActionConfirm) {
			g.state.Resume()
			g.latch.release()
			g.shopMsg = ""
			return
		}
	}
}

// handleEvents logs notable moments and raises on-screen banners.
func (g *Game) handleEvents(events []sim.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case sim.BiomeEntered:
			g.showBanner(biomeTitle(e.Biome))
			logger.Debug("biome entered", "biome", e.Biome)
		case sim.CheckpointReached:
			logger.Debug("checkpoint", "altitude", e.Altitude, "revived", e.Revived)
		case sim.BossActivated:
			g.showBanner("The Yeti King awakens")
			logger.Debug("boss activated")
		case sim.BossPhaseChanged:
			g.showBanner(fmt.Sprintf("The Yeti King rages (phase %d)", e.Phase+1))
			logger.Debug("boss phase changed", "phase", e.Phase)
		case sim.BossDefeated:
			g.showBanner("The Yeti King falls")
			logger.Debug("boss defeated")
		case sim.PlayerDied:
			logger.Debug("player died", "player", e.Player, "cause", e.Cause)
		case sim.PlayerRevived:
			logger.Debug("player revived", "player", e.Player)
		case sim.GameOver:
			logger.Info("run over", "mode", g.ID(), "score", e.Score, "altitude", e.Altitude, "ticks", g.snap.Tick)
		}
	}
}

func (g *Game) showBanner(text string) {
	g.banner = text
	g.bannerTicks = 120
}

// State returns the current platform-level state.
func (g *Game) State() core.GameState {
	gs := g.snap.GameState()
	gs.Paused = gs.Paused || g.paused
	return gs
}

// Snapshot returns the latest simulation snapshot.
func (g *Game) Snapshot() sim.Snapshot {
	return g.snap
}

// SetRecord shows the stored best score and altitude in the HUD.
func (g *Game) SetRecord(bestScore, bestAltitude int) {
	g.bestScore = bestScore
	g.bestAltitude = bestAltitude
}

func init() {
	registry.Register("climb", func() registry.Game {
		return New()
	})
	registry.Register("climb_coop", func() registry.Game {
		return NewCoop()
	})
}
