package sim

import (
	"math"
	"slices"
)

// BiomeForLevel maps a generator level to its biome.
func (s *State) BiomeForLevel(level int) Biome {
	w := s.cfg.World
	switch {
	case level < w.BlizzardLevel:
		return BiomeIceCave
	case level < w.AuroraLevel:
		return BiomeBlizzard
	default:
		return BiomeAurora
	}
}

// GenerateRow builds the tiles of one row. Enemies and items seeded by the
// row are appended to the state directly.
func (s *State) GenerateRow(rowY float64, level int) []Block {
	biome := s.BiomeForLevel(level)
	boss := s.cfg.Boss.Level

	switch {
	case level == 0:
		return s.solidRow(rowY, biome, BlockUnbreakable)
	case level == boss:
		return s.solidRow(rowY, biome, BlockNormal)
	case level == boss+1:
		return s.wallsOnly(rowY, biome)
	case biome == BiomeAurora && s.rng.Float64() < s.cfg.World.CloudRowChance:
		return s.cloudRow(rowY, biome)
	default:
		return s.blockRow(rowY, level, biome)
	}
}

func (s *State) tile(col int, rowY float64, kind BlockKind, biome Biome) Block {
	t := s.cfg.Field.TileSize
	return Block{X: float64(col) * t, Y: rowY, W: t, H: t, Kind: kind, Biome: biome}
}

func (s *State) solidRow(rowY float64, biome Biome, kind BlockKind) []Block {
	cols := s.cfg.Field.Columns()
	row := make([]Block, 0, cols)
	for col := range cols {
		row = append(row, s.tile(col, rowY, kind, biome))
	}
	return row
}

func (s *State) wallsOnly(rowY float64, biome Biome) []Block {
	cols := s.cfg.Field.Columns()
	return []Block{
		s.tile(0, rowY, BlockUnbreakable, biome),
		s.tile(cols-1, rowY, BlockUnbreakable, biome),
	}
}

func (s *State) blockRow(rowY float64, level int, biome Biome) []Block {
	cols := s.cfg.Field.Columns()
	forced := 1 + s.rng.Intn(cols-2)
	gapChance := s.diff.GapChance(level)
	hardChance := s.diff.UnbreakableChance(level)
	spikeChance := 0.0
	if biome != BiomeIceCave {
		spikeChance = s.diff.SpikeChance(level)
	}

	row := make([]Block, 0, cols)
	for col := range cols {
		if col == 0 || col == cols-1 {
			row = append(row, s.tile(col, rowY, BlockUnbreakable, biome))
			continue
		}
		if col == forced || s.rng.Float64() < gapChance {
			s.maybeSpawnEnemy(col, rowY, level)
			continue
		}

		kind := BlockNormal
		switch {
		case s.rng.Float64() < spikeChance:
			kind = BlockSpike
		case s.rng.Float64() < hardChance:
			kind = BlockUnbreakable
		}
		row = append(row, s.tile(col, rowY, kind, biome))

		if kind == BlockNormal && s.rng.Float64() < s.cfg.World.ItemChance {
			s.spawnItem(col, rowY)
		}
	}
	return row
}

func (s *State) cloudRow(rowY float64, biome Biome) []Block {
	w := s.cfg.World
	cols := s.cfg.Field.Columns()
	row := s.wallsOnly(rowY, biome)

	count := 2 + s.rng.Intn(2)
	inner := cols - 2
	segment := inner / count
	width := min(w.CloudWidth, segment)

	for i := range count {
		start := 1 + i*segment + s.rng.Intn(segment-width+1)
		speed := w.CloudMinSpeed + s.rng.Float64()*(w.CloudMaxSpeed-w.CloudMinSpeed)
		vx := speed * s.rng.Sign()
		s.nextGroup++
		for c := start; c < start+width; c++ {
			b := s.tile(c, rowY, BlockCloud, biome)
			b.VX = vx
			b.Group = s.nextGroup
			row = append(row, b)
		}
	}
	return row
}

func (s *State) liveEnemies() int {
	n := 0
	for _, e := range s.enemies {
		if !e.Dead {
			n++
		}
	}
	return n
}

func (s *State) maybeSpawnEnemy(col int, rowY float64, level int) {
	w := s.cfg.World
	if s.liveEnemies() >= w.CapFor(level) {
		return
	}
	if s.rng.Float64() >= w.EnemyChance {
		return
	}

	kind := EnemyBird
	width, height, speed := s.cfg.Bird.Width, s.cfg.Bird.Height, s.cfg.Bird.Speed
	if s.rng.Float64() > w.YetiRoll {
		kind = EnemyYeti
		width, height, speed = s.cfg.Yeti.Width, s.cfg.Yeti.Height, s.cfg.Yeti.Speed
	}
	facing := s.rng.Sign()

	t := s.cfg.Field.TileSize
	y := rowY - height
	s.enemies = append(s.enemies, &Enemy{
		Body: Body{
			X: float64(col)*t + (t-width)/2, Y: y,
			W: width, H: height,
			VX: facing * speed, Facing: facing,
			LastGrounded: neverGrounded,
		},
		Kind:     kind,
		SpawnY:   y,
		BobPhase: s.rng.Float64() * 2 * math.Pi,
	})
}

func (s *State) spawnItem(col int, rowY float64) {
	w := s.cfg.World
	roll := s.rng.Float64()
	kind := ItemLow
	switch {
	case roll > w.HighItemRoll:
		kind = ItemHigh
	case roll > w.MidItemRoll:
		kind = ItemMid
	}

	t := s.cfg.Field.TileSize
	s.items = append(s.items, &Item{
		X:          float64(col)*t + (t-w.ItemSize)/2,
		Y:          rowY - w.ItemSize - w.ItemLift,
		W:          w.ItemSize,
		H:          w.ItemSize,
		Kind:       kind,
		FloatPhase: s.rng.Float64() * 2 * math.Pi,
	})
}

// addRow generates the next level above the highest row.
func (s *State) addRow() {
	y := s.rowY(s.nextLevel)
	s.blocks = append(s.blocks, s.GenerateRow(y, s.nextLevel)...)
	s.highestRowY = y
	s.nextLevel++
}

// stream generates a batch of rows when the top of the shaft comes within
// reach of the camera, and discards everything far below it.
func (s *State) stream() {
	view := s.cfg.Field.Height
	if s.highestRowY > s.cameraY-view*s.cfg.Camera.StreamAhead {
		for range s.cfg.World.BatchRows {
			s.addRow()
		}
	}

	cutoff := s.cameraY + view*s.cfg.Camera.CullFactor
	ceiling := s.cameraY - view
	s.blocks = slices.DeleteFunc(s.blocks, func(b Block) bool { return b.Y > cutoff })
	s.enemies = slices.DeleteFunc(s.enemies, func(e *Enemy) bool { return e.Dead || e.Y > cutoff })
	s.items = slices.DeleteFunc(s.items, func(it *Item) bool { return it.Collected || it.Y > cutoff })
	s.projectiles = slices.DeleteFunc(s.projectiles, func(p *Projectile) bool {
		return p.Dead || p.Y > cutoff || p.Bottom() < ceiling
	})
}

// blockAt returns the index of the tile at a grid position, or -1.
func (s *State) blockAt(x, y float64) int {
	return slices.IndexFunc(s.blocks, func(b Block) bool { return b.X == x && b.Y == y })
}

// removeBlockAt deletes the tile at a grid position. Missing tiles are ignored.
func (s *State) removeBlockAt(x, y float64) bool {
	i := s.blockAt(x, y)
	if i < 0 {
		return false
	}
	s.blocks = slices.Delete(s.blocks, i, i+1)
	return true
}
