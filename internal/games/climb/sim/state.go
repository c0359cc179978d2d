// Package sim is the climb simulation: world generation, physics, combat,
// enemy AI, camera and progression, advanced one fixed tick at a time.
// It performs no I/O; presentation reads the Snapshot returned by Step.
package sim

import (
	"github.com/pallasting/ICE-Climber/internal/config"
	"github.com/pallasting/ICE-Climber/internal/core"
)

// Phase gates the whole simulation.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseShop          // checkpoint pause, resumed by Resume
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseShop:
		return "shop"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State owns every collection of a run. Subsystems are methods on it and
// run only from Step, so there is a single writer.
type State struct {
	cfg  config.ClimbConfig
	diff *config.DifficultyManager
	rng  *SimpleRNG
	coop bool

	frame  int // every Step call
	tick   int // simulated ticks only
	phase  Phase
	freeze int // remaining hit-stop ticks

	players     []*Player
	blocks      []Block
	enemies     []*Enemy
	items       []*Item
	projectiles []*Projectile
	boss        Boss

	cameraY        float64
	originY        float64
	floorY         float64
	highestRowY    float64
	nextLevel      int
	nextGroup      int
	altitude       int
	biome          Biome
	nextCheckpoint int
	currency       int

	events []Event
}

// New creates a run with one player, or two in co-op.
func New(cfg config.ClimbConfig, seed int64, coop bool) *State {
	s := &State{
		cfg:  cfg,
		diff: config.NewDifficultyManager(cfg.Difficulty),
		rng:  NewSimpleRNG(seed),
		coop: coop,
	}

	f := cfg.Field
	s.floorY = f.Height - f.TileSize
	s.nextCheckpoint = cfg.Run.CheckpointStart

	ids := []core.PlayerID{core.Player1}
	if coop {
		ids = append(ids, core.Player2)
	}
	for i, id := range ids {
		x := f.Width*float64(i+1)/float64(len(ids)+1) - cfg.Player.Width/2
		s.players = append(s.players, s.newPlayer(id, x, s.floorY-cfg.Player.Height))
	}
	s.originY = s.floorY - cfg.Player.Height

	s.boss = s.newBoss()

	for range cfg.World.InitialRows {
		s.addRow()
	}
	return s
}

func (s *State) newPlayer(id core.PlayerID, x, y float64) *Player {
	facing := 1.0
	if id == core.Player2 {
		facing = -1
	}
	return &Player{
		Body: Body{
			X: x, Y: y,
			W: s.cfg.Player.Width, H: s.cfg.Player.Height,
			Facing:       facing,
			Grounded:     true,
			LastGrounded: 0,
		},
		ID:    id,
		Life:  LifeActive,
		Combo: NewCombo(),
	}
}

func (s *State) newBoss() Boss {
	bc := s.cfg.Boss
	arenaY := s.rowY(bc.Level)
	return Boss{
		Body: Body{
			X:      (s.cfg.Field.Width - bc.Width) / 2,
			Y:      arenaY - bc.HoverOffset,
			W:      bc.Width,
			H:      bc.Height,
			VX:     bc.Speed,
			Facing: 1,
		},
		HP:     bc.HP,
		MaxHP:  bc.HP,
		ArenaY: arenaY,
	}
}

// rowY returns the top of the tile row for a generator level.
func (s *State) rowY(level int) float64 {
	return s.floorY - float64(level)*s.cfg.Field.RowHeight()
}

// Config returns the configuration the run was created with.
func (s *State) Config() config.ClimbConfig {
	return s.cfg
}

// Phase returns the current simulation gate.
func (s *State) Phase() Phase {
	return s.phase
}

// Coop reports whether this is a shared two-player run.
func (s *State) Coop() bool {
	return s.coop
}

// player returns the player with the given id, or nil.
func (s *State) player(id core.PlayerID) *Player {
	for _, p := range s.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// leader returns the highest active player, or nil if none is active.
func (s *State) leader() *Player {
	var best *Player
	for _, p := range s.players {
		if !p.Alive() {
			continue
		}
		if best == nil || p.Y < best.Y {
			best = p
		}
	}
	return best
}

// totalScore sums every player's score.
func (s *State) totalScore() int {
	total := 0
	for _, p := range s.players {
		total += p.Score
	}
	return total
}

// emit records an event for this tick's snapshot.
func (s *State) emit(e Event) {
	s.events = append(s.events, e)
}

// hitStop requests a freeze; overlapping requests keep the longest.
func (s *State) hitStop(ticks int) {
	if ticks > s.freeze {
		s.freeze = ticks
	}
}
