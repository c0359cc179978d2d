package sim

import (
	"math"
	"slices"

	"github.com/pallasting/ICE-Climber/internal/core"
)

// BossStatus is the published view of the boss.
type BossStatus struct {
	Active   bool
	Defeated bool
	HP       int
	MaxHP    int
	Phase    int
	Box      core.Box
	ArenaY   float64
}

// Snapshot is a read-only copy of a run after one tick.
type Snapshot struct {
	Frame    int // every Step call
	Tick     int // simulated ticks
	Phase    Phase
	Freeze   int
	Coop     bool
	CameraY  float64
	Altitude int
	Biome    Biome
	Score    int // sum of player scores
	Currency int

	NextCheckpoint int

	Players     []Player
	Enemies     []Enemy
	Blocks      []Block
	Items       []Item
	Projectiles []Projectile
	Boss        BossStatus

	Events []Event
}

// Snapshot copies the current state.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:          s.frame,
		Tick:           s.tick,
		Phase:          s.phase,
		Freeze:         s.freeze,
		Coop:           s.coop,
		CameraY:        s.cameraY,
		Altitude:       s.altitude,
		Biome:          s.biome,
		Score:          s.totalScore(),
		Currency:       s.currency,
		NextCheckpoint: s.nextCheckpoint,
		Blocks:         slices.Clone(s.blocks),
		Events:         slices.Clone(s.events),
	}
	snap.Boss = BossStatus{
		Active:   s.boss.Active,
		Defeated: s.boss.Defeated,
		HP:       s.boss.HP,
		MaxHP:    s.boss.MaxHP,
		Phase:    s.boss.Phase,
		Box:      s.boss.Box(),
		ArenaY:   s.boss.ArenaY,
	}

	snap.Players = make([]Player, 0, len(s.players))
	for _, p := range s.players {
		snap.Players = append(snap.Players, *p)
	}
	for _, e := range s.enemies {
		if !e.Dead {
			snap.Enemies = append(snap.Enemies, *e)
		}
	}
	for _, it := range s.items {
		if !it.Collected {
			snap.Items = append(snap.Items, *it)
		}
	}
	for _, pr := range s.projectiles {
		if !pr.Dead {
			snap.Projectiles = append(snap.Projectiles, *pr)
		}
	}
	return snap
}

// Player returns the published copy of one player.
func (snap *Snapshot) Player(id core.PlayerID) (Player, bool) {
	for _, p := range snap.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// GameState derives the platform-level state record.
func (snap *Snapshot) GameState() core.GameState {
	return core.GameState{
		Score:    snap.Score,
		Altitude: snap.Altitude,
		Ticks:    snap.Tick,
		Players:  len(snap.Players),
		GameOver: snap.Phase == PhaseGameOver,
		Paused:   snap.Phase == PhaseShop,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Altitude)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Currency)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Boss.HP)     //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.Events)) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.CameraY)

	for _, p := range snap.Players {
		h = h*31 + math.Float64bits(p.X)
		h = h*31 + math.Float64bits(p.Y)
		h = h*31 + uint64(p.Life)*7 + uint64(p.Score) //#nosec G115 -- hash computation
	}
	for _, e := range snap.Enemies {
		h = h*31 + math.Float64bits(e.X)
		h = h*31 + math.Float64bits(e.Y)
		h = h*31 + uint64(e.State) //#nosec G115 -- hash computation
	}
	for _, b := range snap.Blocks {
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
		h = h*31 + uint64(b.Kind) //#nosec G115 -- hash computation
	}
	for _, it := range snap.Items {
		h = h*31 + math.Float64bits(it.X)
		h = h*31 + math.Float64bits(it.Y)
	}
	for _, pr := range snap.Projectiles {
		h = h*31 + math.Float64bits(pr.X)
		h = h*31 + math.Float64bits(pr.Y)
	}
	return h
}
