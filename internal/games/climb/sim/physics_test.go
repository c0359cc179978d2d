package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pallasting/ICE-Climber/internal/config"
	"github.com/pallasting/ICE-Climber/internal/core"
)

func TestLandingSnapsToTileTop(t *testing.T) {
	s := bare(newTestState(t, false))
	p := s.players[0]
	p.Y = 500
	p.Grounded = false

	impact := false
	snap, ok := stepUntil(s, idle, 120, func(sn Snapshot) bool {
		if _, hit := hasEvent[LandingImpact](sn.Events); hit {
			impact = true
		}
		return sn.Players[0].Grounded
	})
	require.True(t, ok, "player never landed")
	assert.Equal(t, s.floorY-p.H, snap.Players[0].Y)
	assert.Zero(t, snap.Players[0].VY)
	assert.True(t, impact, "a long fall should report a landing impact")
}

func TestJumpBreaksNormalTile(t *testing.T) {
	s := bare(newTestState(t, false))
	s.addBlock(280, 622, BlockNormal)

	s.Step(intents(core.Player1, Intent{Jump: true}))
	snap, ok := stepUntil(s, idle, 20, func(sn Snapshot) bool {
		_, hit := hasEvent[BlockBroken](sn.Events)
		return hit
	})
	require.True(t, ok, "tile was never broken")

	ev, _ := hasEvent[BlockBroken](snap.Events)
	assert.Equal(t, core.Player1, ev.Player)
	assert.Equal(t, 110, ev.Points)
	assert.Equal(t, -1, s.blockAt(280, 622))
	assert.Equal(t, s.cfg.HitStop.Break, snap.Freeze)
	assert.Equal(t, 662.0, snap.Players[0].Y, "head stops at the tile bottom")
}

func TestUnbreakableTileBonks(t *testing.T) {
	s := bare(newTestState(t, false))
	s.addBlock(280, 622, BlockUnbreakable)

	s.Step(intents(core.Player1, Intent{Jump: true}))
	for range 20 {
		snap := s.Step(idle)
		_, broke := hasEvent[BlockBroken](snap.Events)
		require.False(t, broke)
	}
	assert.GreaterOrEqual(t, s.blockAt(280, 622), 0)
}

func TestCornerCorrectionNudgesPastEdge(t *testing.T) {
	s := bare(newTestState(t, false))
	s.addBlock(280, 622, BlockNormal)
	p := s.players[0]
	p.X = 266 // ten pixels under the tile's left corner

	s.Step(intents(core.Player1, Intent{Jump: true}))
	for range 10 {
		snap := s.Step(idle)
		_, broke := hasEvent[BlockBroken](snap.Events)
		require.False(t, broke)
	}
	assert.InDelta(t, 280-p.W-1, p.X, 1e-9)
	assert.Less(t, p.Y, 622.0, "player rose past the tile")
}

func TestHeadHitUsesLargestOverlap(t *testing.T) {
	tests := []struct {
		name  string
		order []float64
	}{
		{"left tile listed first", []float64{240, 280}},
		{"right tile listed first", []float64{280, 240}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := bare(newTestState(t, false))
			for _, x := range tt.order {
				s.addBlock(x, 622, BlockNormal)
			}
			p := s.players[0]
			p.X = 275 // 5px under the left tile, 19px under the right one

			s.Step(intents(core.Player1, Intent{Jump: true}))
			snap, ok := stepUntil(s, idle, 20, func(sn Snapshot) bool {
				_, hit := hasEvent[BlockBroken](sn.Events)
				return hit
			})
			require.True(t, ok, "no tile was broken")

			ev, _ := hasEvent[BlockBroken](snap.Events)
			assert.Equal(t, 280.0, ev.X)
			assert.GreaterOrEqual(t, s.blockAt(240, 622), 0, "grazed tile survives")
			assert.Equal(t, 275.0, p.X, "no nudge past a large overlap")
		})
	}
}

func TestSpikeKillsWhileRising(t *testing.T) {
	s := bare(newTestState(t, false))
	s.addBlock(280, 622, BlockSpike)

	prev := s.Step(intents(core.Player1, Intent{Jump: true}))
	var died PlayerDied
	found := false
	for range 20 {
		snap := s.Step(idle)
		if ev, ok := hasEvent[PlayerDied](snap.Events); ok {
			died, found = ev, true
			break
		}
		prev = snap
	}
	require.True(t, found, "spike contact never killed the player")
	assert.Equal(t, CauseSpike, died.Cause)
	assert.Less(t, prev.Players[0].VY, 0.0, "player was moving up into the spike")
	assert.Equal(t, LifeDying, s.players[0].Life)
}

func TestSpikeKillsFromTheSide(t *testing.T) {
	s := bare(newTestState(t, false))
	s.addBlock(320, s.floorY-40, BlockSpike)

	_, ok := stepUntil(s, intents(core.Player1, Intent{Right: true}), 60, func(sn Snapshot) bool {
		ev, hit := hasEvent[PlayerDied](sn.Events)
		return hit && ev.Cause == CauseSpike
	})
	assert.True(t, ok)
}

func TestSpikeKillsWhenStraddlingTiles(t *testing.T) {
	tests := []struct {
		name  string
		kinds []BlockKind
		xs    []float64
	}{
		{"spike listed first", []BlockKind{BlockSpike, BlockNormal}, []float64{320, 280}},
		{"normal listed first", []BlockKind{BlockNormal, BlockSpike}, []float64{280, 320}},
		{"spike on the left", []BlockKind{BlockNormal, BlockSpike}, []float64{320, 280}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := bare(newTestState(t, false))
			for i, k := range tt.kinds {
				s.addBlock(tt.xs[i], 700, k)
			}
			p := s.players[0]
			p.X = 305 // 15px over the left tile, 9px over the right one
			p.Y = 700 - p.H - 5
			p.VY = 0
			p.Grounded = false

			snap, ok := stepUntil(s, idle, 20, func(sn Snapshot) bool {
				_, hit := hasEvent[PlayerDied](sn.Events)
				return hit
			})
			require.True(t, ok, "player landed on a spike and lived")
			ev, _ := hasEvent[PlayerDied](snap.Events)
			assert.Equal(t, CauseSpike, ev.Cause)
			assert.Equal(t, LifeDying, s.players[0].Life)
		})
	}
}

func TestJumpImpulseKeepsConfiguredForce(t *testing.T) {
	s := bare(newTestState(t, false))
	p := s.players[0]

	s.Step(intents(core.Player1, Intent{Jump: true}))
	assert.InDelta(t, s.cfg.Physics.JumpForce, p.VY, 1e-9)
}

func TestCoyoteJump(t *testing.T) {
	tests := []struct {
		name     string
		since    int
		wantJump bool
	}{
		{"just left the ledge", 0, true},
		{"edge of the window", -6, true},
		{"window expired", -10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := bare(newTestState(t, false))
			p := s.players[0]
			p.Y = 300
			p.Grounded = false
			p.LastGrounded = tt.since

			s.Step(intents(core.Player1, Intent{Jump: true}))
			assert.Equal(t, tt.wantJump, p.VY < 0, "vy = %v", p.VY)
		})
	}
}

func TestNoJumpWhileRising(t *testing.T) {
	s := bare(newTestState(t, false))
	p := s.players[0]
	p.Y = 300
	p.VY = -3
	p.Grounded = false
	p.LastGrounded = 0

	s.Step(intents(core.Player1, Intent{Jump: true}))
	assert.InDelta(t, -3+s.cfg.Physics.Gravity, p.VY, 1e-9)
}

func TestUpgradesChangeMovement(t *testing.T) {
	plain := bare(newTestState(t, false))
	boosted := bare(newTestState(t, false))
	boosted.players[0].Upgrades = Upgrades{JumpBoost: true, LowGravity: true}

	jump := intents(core.Player1, Intent{Jump: true})
	plain.Step(jump)
	boosted.Step(jump)
	assert.Less(t, boosted.players[0].VY, plain.players[0].VY)

	grip := bare(newTestState(t, false))
	grip.players[0].Upgrades.Grip = true
	plain = bare(newTestState(t, false))
	for _, s := range []*State{plain, grip} {
		s.players[0].VX = 5
		s.Step(idle)
	}
	assert.Less(t, grip.players[0].VX, plain.players[0].VX)
}

func TestCloudCarriesRider(t *testing.T) {
	s := bare(newTestState(t, false))
	s.blocks = append(s.blocks, Block{X: 280, Y: 600, W: 40, H: 40, Kind: BlockCloud, VX: 2, Group: 1})
	p := s.players[0]
	p.X, p.Y = 288, 600-p.H

	for range 10 {
		s.Step(idle)
	}
	assert.True(t, p.Grounded)
	assert.InDelta(t, 288+2*9, p.X, 1e-9)
}

func TestCloudsArePassableFromBelow(t *testing.T) {
	s := bare(newTestState(t, false))
	s.blocks = append(s.blocks, Block{X: 280, Y: 622, W: 40, H: 40, Kind: BlockCloud, Group: 1})

	s.Step(intents(core.Player1, Intent{Jump: true}))
	snap, ok := stepUntil(s, idle, 60, func(sn Snapshot) bool {
		return sn.Players[0].Grounded
	})
	require.True(t, ok)
	assert.Equal(t, 622-s.players[0].H, snap.Players[0].Y, "player rose through and landed on top")
}

func TestCloudGroupReversesTogether(t *testing.T) {
	s := bare(newTestState(t, false))
	s.blocks = []Block{
		{X: 480, Y: 400, W: 40, H: 40, Kind: BlockCloud, VX: 2, Group: 5},
		{X: 520, Y: 400, W: 40, H: 40, Kind: BlockCloud, VX: 2, Group: 5},
	}
	s.moveClouds()
	for _, b := range s.blocks {
		assert.Equal(t, -2.0, b.VX)
	}
	assert.Equal(t, 478.0, s.blocks[0].X)
	assert.Equal(t, 518.0, s.blocks[1].X)
}

func TestProjectilesDieOnSolidTiles(t *testing.T) {
	s := bare(newTestState(t, false))
	s.projectiles = []*Projectile{
		{Body: Body{X: 300, Y: s.floorY - 14, W: 12, H: 12, VY: 4}},
		{Body: Body{X: 300, Y: 100, W: 12, H: 12, VY: 4}},
	}
	s.moveProjectiles()
	assert.True(t, s.projectiles[0].Dead)
	assert.False(t, s.projectiles[1].Dead)
}

func TestCollisionSoundness(t *testing.T) {
	for _, coop := range []bool{false, true} {
		s := New(config.DefaultClimbConfig(), 2024, coop)
		limit := s.cfg.Physics.CornerCorrection

		play(s, script(77, 3000, coop), func(snap Snapshot) {
			for _, p := range snap.Players {
				if p.Life != LifeActive {
					continue
				}
				box := p.Box()
				for _, b := range snap.Blocks {
					if b.Kind != BlockNormal && b.Kind != BlockUnbreakable {
						continue
					}
					if !box.Intersects(b.Box()) {
						continue
					}
					depth := min(box.OverlapX(b.Box()), box.OverlapY(b.Box()))
					require.LessOrEqual(t, depth, limit, "tick %d: %s inside tile at (%v,%v)", snap.Tick, p.ID, b.X, b.Y)
				}
			}
		})
	}
}
