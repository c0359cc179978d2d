package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pallasting/ICE-Climber/internal/config"
)

func TestGenerateRowSafety(t *testing.T) {
	s := New(config.DefaultClimbConfig(), 7, false)
	cols := s.cfg.Field.Columns()
	tile := s.cfg.Field.TileSize
	boss := s.cfg.Boss.Level

	for level := 1; level < 300; level++ {
		if level == boss || level == boss+1 {
			continue
		}
		y := s.rowY(level)
		row := s.GenerateRow(y, level)

		solid := make(map[int]Block)
		for _, b := range row {
			require.Equal(t, y, b.Y, "level %d", level)
			if b.Kind != BlockCloud {
				solid[int(b.X/tile)] = b
			}
		}

		left, ok := solid[0]
		require.True(t, ok, "level %d: missing left wall", level)
		assert.Equal(t, BlockUnbreakable, left.Kind, "level %d", level)
		right, ok := solid[cols-1]
		require.True(t, ok, "level %d: missing right wall", level)
		assert.Equal(t, BlockUnbreakable, right.Kind, "level %d", level)

		open := 0
		for c := 1; c < cols-1; c++ {
			if _, ok := solid[c]; !ok {
				open++
			}
		}
		assert.GreaterOrEqual(t, open, 1, "level %d: row is sealed", level)
	}
}

func TestGenerateSpecialRows(t *testing.T) {
	s := New(config.DefaultClimbConfig(), 7, false)
	cols := s.cfg.Field.Columns()
	boss := s.cfg.Boss.Level

	floor := s.GenerateRow(s.rowY(0), 0)
	require.Len(t, floor, cols)
	for _, b := range floor {
		assert.Equal(t, BlockUnbreakable, b.Kind)
	}

	arena := s.GenerateRow(s.rowY(boss), boss)
	require.Len(t, arena, cols)
	for _, b := range arena {
		assert.Equal(t, BlockNormal, b.Kind)
	}

	corridor := s.GenerateRow(s.rowY(boss+1), boss+1)
	require.Len(t, corridor, 2)
	assert.Equal(t, 0.0, corridor[0].X)
	assert.Equal(t, float64(cols-1)*s.cfg.Field.TileSize, corridor[1].X)
}

func TestNoSpikesInIceCave(t *testing.T) {
	s := New(config.DefaultClimbConfig(), 99, false)
	for level := 1; level < s.cfg.World.BlizzardLevel; level++ {
		for _, b := range s.GenerateRow(s.rowY(level), level) {
			assert.NotEqual(t, BlockSpike, b.Kind, "level %d", level)
		}
	}
}

func TestCloudRowsMoveAsGroups(t *testing.T) {
	cfg := config.DefaultClimbConfig()
	cfg.World.CloudRowChance = 1
	s := New(cfg, 3, false)

	level := cfg.World.AuroraLevel + 1
	row := s.GenerateRow(s.rowY(level), level)

	groups := make(map[int][]Block)
	for _, b := range row {
		if b.Kind == BlockCloud {
			groups[b.Group] = append(groups[b.Group], b)
		}
	}
	require.GreaterOrEqual(t, len(groups), 2)
	require.LessOrEqual(t, len(groups), 3)
	for id, tiles := range groups {
		assert.Len(t, tiles, cfg.World.CloudWidth, "group %d", id)
		for _, b := range tiles {
			assert.Equal(t, tiles[0].VX, b.VX, "group %d", id)
			assert.NotZero(t, b.VX)
		}
	}
}

func TestEnemySpawnCaps(t *testing.T) {
	s := New(config.DefaultClimbConfig(), 11, false)
	s.enemies = nil
	for level := 1; level < s.cfg.World.SafeLevel; level++ {
		s.GenerateRow(s.rowY(level), level)
	}
	assert.Empty(t, s.enemies, "no enemies below the safe level")

	for level := s.cfg.World.SafeLevel; level < s.cfg.World.BlizzardLevel; level++ {
		s.GenerateRow(s.rowY(level), level)
		assert.LessOrEqual(t, s.liveEnemies(), s.cfg.World.CapFor(level))
	}
}

func TestGenerationIsDeterministic(t *testing.T) {
	a := New(config.DefaultClimbConfig(), 1234, false)
	b := New(config.DefaultClimbConfig(), 1234, false)
	require.Equal(t, a.blocks, b.blocks)
	require.Equal(t, len(a.enemies), len(b.enemies))
	require.Equal(t, len(a.items), len(b.items))

	c := New(config.DefaultClimbConfig(), 4321, false)
	assert.NotEqual(t, a.blocks, c.blocks)
}

func TestStreamGeneratesAndCulls(t *testing.T) {
	s := newTestState(t, false)
	before := s.nextLevel

	s.cameraY = -1000
	s.stream()

	assert.Equal(t, before+s.cfg.World.BatchRows, s.nextLevel)
	cutoff := s.cameraY + s.cfg.Field.Height*s.cfg.Camera.CullFactor
	for _, b := range s.blocks {
		assert.LessOrEqual(t, b.Y, cutoff)
	}
}

func TestRemoveBlockAt(t *testing.T) {
	s := bare(newTestState(t, false))
	n := len(s.blocks)

	require.True(t, s.removeBlockAt(40, s.floorY))
	assert.Len(t, s.blocks, n-1)
	assert.Equal(t, -1, s.blockAt(40, s.floorY))
	assert.False(t, s.removeBlockAt(40, s.floorY), "second removal is a no-op")
}
