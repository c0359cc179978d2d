package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pallasting/ICE-Climber/internal/config"
	"github.com/pallasting/ICE-Climber/internal/core"
)

func TestCameraNeverScrollsDown(t *testing.T) {
	s := bare(newTestState(t, false))
	s.cameraY = -500

	s.updateCamera()
	assert.Equal(t, -500.0, s.cameraY)
}

func TestCameraEasesTowardLeader(t *testing.T) {
	s := bare(newTestState(t, false))
	s.players[0].Y = 0

	s.updateCamera()
	want := (0 - s.cfg.Field.Height*s.cfg.Camera.FollowRatio) * s.cfg.Camera.Lerp
	assert.InDelta(t, want, s.cameraY, 1e-9)
}

func TestCameraFramesActiveBoss(t *testing.T) {
	s := bare(newTestState(t, false))
	view := s.cfg.Field.Height
	s.cameraY = -1000
	s.boss.Active = true
	s.boss.Y = -1000
	s.players[0].Y = -900

	s.updateCamera()
	target := s.boss.CenterY() - view*s.cfg.Camera.BossRatio
	assert.InDelta(t, -1000+(target+1000)*s.cfg.Camera.Lerp, s.cameraY, 1e-9)
}

func TestFallingBelowViewKills(t *testing.T) {
	s := bare(newTestState(t, false))
	p := s.players[0]
	p.Y = s.cameraY + s.cfg.Field.Height + s.cfg.Camera.DeathMargin + 1

	s.updateProgression()
	assert.Equal(t, LifeDying, p.Life)
	ev, ok := hasEvent[PlayerDied](s.events)
	require.True(t, ok)
	assert.Equal(t, CauseFall, ev.Cause)
}

func TestSoloDeathEndsRun(t *testing.T) {
	s := bare(newTestState(t, false))
	s.killPlayer(s.players[0], CauseEnemy)

	snap, ok := stepUntil(s, idle, 200, func(sn Snapshot) bool {
		return sn.Phase == PhaseGameOver
	})
	require.True(t, ok)
	assert.Equal(t, LifeDead, snap.Players[0].Life)
	_, over := hasEvent[GameOver](snap.Events)
	assert.True(t, over)

	after := s.Step(idle)
	assert.Empty(t, after.Events, "game over is reported once")
	assert.Equal(t, snap.Tick, after.Tick)
}

func TestDeathFallHasGracePeriod(t *testing.T) {
	s := bare(newTestState(t, false))
	p := s.players[0]
	s.killPlayer(p, CauseEnemy)

	s.Step(idle)
	assert.Equal(t, LifeDying, p.Life)
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.NotZero(t, p.Rotation)
}

func TestCoopGameOverWaitsForBothPlayers(t *testing.T) {
	s := bare(newTestState(t, true))
	a := s.player(core.Player1)
	b := s.player(core.Player2)

	s.killPlayer(a, CauseEnemy)
	_, ok := stepUntil(s, idle, 200, func(sn Snapshot) bool {
		p, _ := sn.Player(core.Player1)
		return p.Life == LifeGhost
	})
	require.True(t, ok, "first player never became a ghost")
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, LifeActive, b.Life)

	s.killPlayer(b, CauseEnemy)
	for range 200 {
		snap := s.Step(idle)
		_, over := hasEvent[GameOver](snap.Events)
		p2, _ := snap.Player(core.Player2)
		if p2.Life == LifeDying {
			require.False(t, over, "game over before the death fall finished")
			continue
		}
		assert.Equal(t, LifeGhost, p2.Life)
		assert.True(t, over, "game over on the tick the last fall ends")
		return
	}
	t.Fatal("second player never finished falling")
}

func TestGhostStaysOnScreen(t *testing.T) {
	s := bare(newTestState(t, true))
	p := s.player(core.Player1)
	p.Life = LifeGhost

	for range 300 {
		s.Step(intents(core.Player1, Intent{Jump: true, Left: true}))
	}
	assert.Equal(t, 0.0, p.X)
	assert.Equal(t, s.cameraY, p.Y)
}

func TestAltitudeRatchetAndPoints(t *testing.T) {
	s := bare(newTestState(t, false))
	p := s.players[0]
	tile := s.cfg.Field.TileSize

	p.Y = s.originY - 5*tile
	s.updateProgression()
	assert.Equal(t, 5, s.altitude)
	assert.Equal(t, 5*s.cfg.Combat.AltitudePoints, p.Score)

	p.Y = s.originY - 2*tile
	s.updateProgression()
	assert.Equal(t, 5, s.altitude, "altitude never decreases")
	assert.Equal(t, 5*s.cfg.Combat.AltitudePoints, p.Score)
}

func TestCheckpointOpensShopAndRevivesGhosts(t *testing.T) {
	s := bare(newTestState(t, true))
	leader := s.player(core.Player1)
	ghost := s.player(core.Player2)
	ghost.Life = LifeGhost

	leader.Y = s.originY - float64(s.cfg.Run.CheckpointStart+1)*s.cfg.Field.TileSize
	s.updateProgression()

	assert.Equal(t, PhaseShop, s.Phase())
	assert.Equal(t, LifeActive, ghost.Life)
	assert.Equal(t, s.cfg.Run.CheckpointStart+s.cfg.Run.CheckpointEvery, s.nextCheckpoint)
	ev, ok := hasEvent[CheckpointReached](s.events)
	require.True(t, ok)
	assert.Equal(t, 1, ev.Revived)
	_, ok = hasEvent[PlayerRevived](s.events)
	assert.True(t, ok)

	for i := range s.blocks {
		assert.False(t, ghost.Box().Intersects(s.blocks[i].Box()), "revived inside a tile")
	}
}

func TestBiomeAnnouncement(t *testing.T) {
	s := bare(newTestState(t, false))
	p := s.players[0]
	level := s.cfg.World.BlizzardLevel * s.cfg.Field.RowSpacing

	p.Y = s.originY - float64(level)*s.cfg.Field.TileSize
	s.updateProgression()

	ev, ok := hasEvent[BiomeEntered](s.events)
	require.True(t, ok)
	assert.Equal(t, BiomeBlizzard, ev.Biome)
	assert.Greater(t, s.nextCheckpoint, s.altitude, "every crossed checkpoint is consumed")
}

func TestCameraAndAltitudeAreMonotonic(t *testing.T) {
	for _, coop := range []bool{false, true} {
		s := New(config.DefaultClimbConfig(), 555, coop)
		prev := s.Snapshot()
		play(s, script(9, 4000, coop), func(snap Snapshot) {
			require.LessOrEqual(t, snap.CameraY, prev.CameraY, "tick %d", snap.Tick)
			require.GreaterOrEqual(t, snap.Altitude, prev.Altitude, "tick %d", snap.Tick)
			prev = snap
		})
	}
}
