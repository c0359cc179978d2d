package sim

import (
	"math"

	"github.com/pallasting/ICE-Climber/internal/core"
)

// updateAI evaluates every enemy state machine once.
func (s *State) updateAI() {
	for _, e := range s.enemies {
		if e.Dead {
			continue
		}
		switch e.Kind {
		case EnemyBird:
			s.updateBird(e)
		case EnemyYeti:
			s.updateYeti(e)
		}
	}
	s.updateBoss()
}

// nextBirdState returns the bird state given whether it sees a target.
// A dive never ends.
func nextBirdState(current EnemyState, sees bool) EnemyState {
	if current == EnemyDive || sees {
		return EnemyDive
	}
	return EnemyPatrol
}

func (s *State) updateBird(e *Enemy) {
	bc := s.cfg.Bird
	e.State = nextBirdState(e.State, s.birdSees(e))

	if e.State == EnemyDive {
		e.Aggro = true
		e.VY = math.Min(e.VY+bc.DiveAccel, s.cfg.Physics.TerminalVelocity)
	} else {
		e.BobPhase += bc.BobRate
		e.VY = e.SpawnY + math.Sin(e.BobPhase)*bc.BobAmplitude - e.Y
	}

	width := s.cfg.Field.Width
	if (e.X <= 0 && e.VX < 0) || (e.Right() >= width && e.VX > 0) {
		e.VX = -e.VX
		e.Facing = math.Copysign(1, e.VX)
	}
}

// birdSees reports whether an on-screen bird has a live player in its
// dive band: close horizontally and somewhere below.
func (s *State) birdSees(e *Enemy) bool {
	bc := s.cfg.Bird
	if e.Bottom() < s.cameraY || e.Y > s.cameraY+s.cfg.Field.Height {
		return false
	}
	for _, p := range s.players {
		if !p.Alive() {
			continue
		}
		dx := math.Abs(p.CenterX() - e.CenterX())
		dy := p.CenterY() - e.CenterY()
		if dx < bc.BandX && dy > 0 && dy < bc.BandY {
			return true
		}
	}
	return false
}

// nextYetiState returns the patrol decision for a yeti that may be at an
// edge. The roll is only consulted when building is possible.
func nextYetiState(aggro, blocked, cooldown bool, roll, chance float64) (EnemyState, bool) {
	if !blocked {
		return EnemyPatrol, false
	}
	if !aggro && !cooldown && roll < chance {
		return EnemyBuild, false
	}
	return EnemyPatrol, true
}

func (s *State) updateYeti(e *Enemy) {
	yc := s.cfg.Yeti
	if !e.Aggro && s.playerWithin(e, yc.AggroRange) {
		e.Aggro = true
	}
	if e.BuildCooldown > 0 {
		e.BuildCooldown--
	}

	switch e.State {
	case EnemyBuild:
		e.BuildTimer--
		e.Swing = math.Sin(float64(e.BuildTimer) * 0.4)
		if e.BuildTimer > 0 {
			return
		}
		s.buildAhead(e)
		e.State = EnemyPatrol
		e.BuildCooldown = yc.BuildCooldown
		e.Swing = 0

	default:
		if e.hitWall {
			s.reverse(e)
			break
		}
		if !e.Grounded {
			break
		}
		blocked := s.blockedAhead(e)
		roll := 1.0
		if blocked && !e.Aggro && e.BuildCooldown == 0 {
			roll = s.rng.Float64()
		}
		next, turn := nextYetiState(e.Aggro, blocked, e.BuildCooldown > 0, roll, yc.BuildChance)
		e.State = next
		if next == EnemyBuild {
			e.BuildTimer = yc.BuildTicks
		}
		if turn {
			s.reverse(e)
		}
	}

	if e.State == EnemyPatrol {
		speed := yc.Speed
		if e.Aggro {
			speed *= 2
		}
		e.VX = e.Facing * speed
	}
}

func (s *State) reverse(e *Enemy) {
	e.Facing = -e.Facing
	e.VX = -e.VX
	e.hitWall = false
}

// playerWithin reports whether any live player's center is within r of the enemy's.
func (s *State) playerWithin(e *Enemy, r float64) bool {
	for _, p := range s.players {
		if p.Alive() && math.Hypot(p.CenterX()-e.CenterX(), p.CenterY()-e.CenterY()) < r {
			return true
		}
	}
	return false
}

// blockedAhead probes one pixel past the leading edge for missing ground
// or a wall.
func (s *State) blockedAhead(e *Enemy) bool {
	ahead := e.Right() + 1
	if e.Facing < 0 {
		ahead = e.X - 1
	}
	if ahead <= 0 || ahead >= s.cfg.Field.Width {
		return true
	}
	foot := core.Box{X: ahead - 1, Y: e.Bottom() + 1, W: 2, H: 2}
	wall := core.Box{X: ahead - 1, Y: e.Y + 1, W: 2, H: e.H - 2}
	return !s.solidAt(foot) || s.solidAt(wall)
}

// solidAt reports whether any solid tile overlaps the box.
func (s *State) solidAt(box core.Box) bool {
	for i := range s.blocks {
		if s.blocks[i].Kind.Solid() && box.Intersects(s.blocks[i].Box()) {
			return true
		}
	}
	return false
}

// occupied reports whether any tile, live player or live enemy other than
// self overlaps the box.
func (s *State) occupied(box core.Box, self *Enemy) bool {
	for i := range s.blocks {
		if box.Intersects(s.blocks[i].Box()) {
			return true
		}
	}
	for _, p := range s.players {
		if p.Alive() && box.Intersects(p.Box()) {
			return true
		}
	}
	for _, e := range s.enemies {
		if e != self && !e.Dead && box.Intersects(e.Box()) {
			return true
		}
	}
	return false
}

// buildAhead places a Normal tile in the ground-level cell in front of a
// yeti. An obstructed or out-of-bounds cell is skipped.
func (s *State) buildAhead(e *Enemy) {
	t := s.cfg.Field.TileSize
	col := int(math.Floor(e.CenterX()/t)) + int(e.Facing)
	if col < 1 || col > s.cfg.Field.Columns()-2 {
		return
	}
	x := float64(col) * t
	y := math.Round(e.Bottom()/t) * t
	if s.occupied(core.Box{X: x, Y: y, W: t, H: t}, e) {
		return
	}

	level := int(math.Round((s.floorY - y) / s.cfg.Field.RowHeight()))
	s.blocks = append(s.blocks, Block{
		X: x, Y: y, W: t, H: t,
		Kind:  BlockNormal,
		Biome: s.BiomeForLevel(level),
	})
	s.emit(BlockBuilt{X: x, Y: y})
}
