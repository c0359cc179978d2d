package sim

import (
	"math"
	"testing"

	"github.com/pallasting/ICE-Climber/internal/config"
	"github.com/pallasting/ICE-Climber/internal/core"
)

var idle = map[core.PlayerID]Intent{}

func newTestState(t *testing.T, coop bool) *State {
	t.Helper()
	return New(config.DefaultClimbConfig(), 42, coop)
}

// bare strips the world down to the floor row and stops streaming.
func bare(s *State) *State {
	s.blocks = s.GenerateRow(s.floorY, 0)
	s.enemies = nil
	s.items = nil
	s.projectiles = nil
	s.highestRowY = math.Inf(-1)
	return s
}

func (s *State) addBlock(x, y float64, kind BlockKind) {
	t := s.cfg.Field.TileSize
	s.blocks = append(s.blocks, Block{X: x, Y: y, W: t, H: t, Kind: kind})
}

func intents(id core.PlayerID, in Intent) map[core.PlayerID]Intent {
	return map[core.PlayerID]Intent{id: in}
}

// stepUntil steps with the given intents until cond holds, returning the
// matching snapshot.
func stepUntil(s *State, in map[core.PlayerID]Intent, limit int, cond func(Snapshot) bool) (Snapshot, bool) {
	var snap Snapshot
	for range limit {
		snap = s.Step(in)
		if cond(snap) {
			return snap, true
		}
	}
	return snap, false
}

func hasEvent[E Event](events []Event) (E, bool) {
	for _, e := range events {
		if v, ok := e.(E); ok {
			return v, true
		}
	}
	var zero E
	return zero, false
}

// script produces a deterministic pseudo-random input sequence.
func script(seed int64, n int, coop bool) []map[core.PlayerID]Intent {
	rng := NewSimpleRNG(seed)
	ids := []core.PlayerID{core.Player1}
	if coop {
		ids = append(ids, core.Player2)
	}
	dir := make(map[core.PlayerID]int)
	out := make([]map[core.PlayerID]Intent, n)
	for i := range n {
		frame := make(map[core.PlayerID]Intent, len(ids))
		for _, id := range ids {
			if i%12 == 0 {
				dir[id] = rng.Intn(3) - 1
			}
			frame[id] = Intent{
				Left:   dir[id] < 0,
				Right:  dir[id] > 0,
				Jump:   rng.Float64() < 0.3,
				Attack: rng.Float64() < 0.1,
			}
		}
		out[i] = frame
	}
	return out
}

// play feeds a script to the state, closing the shop whenever it opens.
func play(s *State, inputs []map[core.PlayerID]Intent, fn func(Snapshot)) {
	for _, in := range inputs {
		snap := s.Step(in)
		fn(snap)
		if snap.Phase == PhaseShop {
			s.Resume()
		}
		if snap.Phase == PhaseGameOver {
			return
		}
	}
}
