package sim

import (
	"math"

	"github.com/pallasting/ICE-Climber/internal/core"
)

// skin ignores float-noise overlaps along the axis not being resolved.
const skin = 1e-6

// collision describes how a body interacts with tiles.
type collision struct {
	tolerance     float64 // landing slack above a tile's top
	cornerCorrect bool
	lethalSpikes  bool
	breaker       *Player // rising heads break Normal tiles when set
}

// contact reports what a resolution pass touched.
type contact struct {
	hitWall bool
	landed  bool
	impact  float64 // fall speed at landing
	spiked  bool
}

// spikeOverlap reports whether the box overlaps any spike tile.
func (s *State) spikeOverlap(box core.Box) bool {
	for i := range s.blocks {
		if s.blocks[i].Kind != BlockSpike {
			continue
		}
		blk := s.blocks[i].Box()
		if box.OverlapX(blk) >= skin && box.OverlapY(blk) >= skin {
			return true
		}
	}
	return false
}

// moveX applies horizontal velocity (plus cloud carry) and pushes the body
// out of solid tiles. Clouds are not solid from the side.
func (s *State) moveX(b *Body, c collision) contact {
	var out contact
	b.X += b.VX + b.CarryVX
	b.CarryVX = 0

	width := s.cfg.Field.Width
	if b.X < 0 {
		b.X, b.VX, out.hitWall = 0, 0, true
	}
	if b.Right() > width {
		b.X, b.VX, out.hitWall = width-b.W, 0, true
	}

	if c.lethalSpikes && s.spikeOverlap(b.Box()) {
		out.spiked = true
		return out
	}

	for i := range s.blocks {
		blk := s.blocks[i].Box()
		box := b.Box()
		if !box.Intersects(blk) || box.OverlapY(blk) < skin {
			continue
		}
		if !s.blocks[i].Kind.Solid() {
			continue
		}
		if box.CenterX() < blk.CenterX() {
			b.X = blk.X - b.W
		} else {
			b.X = blk.Right()
		}
		b.VX = 0
		out.hitWall = true
	}
	return out
}

// moveY applies vertical velocity, then resolves a landing or a head hit.
// Spike contact is checked before any snap.
func (s *State) moveY(b *Body, c collision) contact {
	var out contact
	prevBottom := b.Bottom()
	b.Y += b.VY
	b.Grounded = false

	if c.lethalSpikes && s.spikeOverlap(b.Box()) {
		out.spiked = true
		return out
	}

	switch {
	case b.VY > 0:
		s.land(b, c, prevBottom, &out)
	case b.VY < 0:
		s.rise(b, c)
	}
	return out
}

// land snaps a falling body onto the tiles it came down on.
func (s *State) land(b *Body, c collision, prevBottom float64, out *contact) {
	for i := range s.blocks {
		blk := s.blocks[i].Box()
		box := b.Box()
		if !box.Intersects(blk) || box.OverlapX(blk) < skin {
			continue
		}
		if prevBottom > blk.Y+c.tolerance {
			continue
		}
		out.impact = math.Max(out.impact, b.VY)
		out.landed = true
		b.Y = blk.Y - b.H
		b.VY = 0
		b.Grounded = true
		b.LastGrounded = s.tick
		if s.blocks[i].Kind == BlockCloud {
			b.CarryVX = s.blocks[i].VX
		}
	}
}

// rise resolves a rising body against the overhead tile it overlaps most.
// A corner nudge is tried only when that overlap is under the correction
// width; otherwise the head bonks and a Normal tile breaks.
func (s *State) rise(b *Body, c collision) {
	box := b.Box()
	best, bestOverlap := -1, 0.0
	for i := range s.blocks {
		if s.blocks[i].Kind == BlockCloud {
			continue
		}
		blk := s.blocks[i].Box()
		if !box.Intersects(blk) {
			continue
		}
		ov := box.OverlapX(blk)
		if ov < skin {
			continue
		}
		if best < 0 || ov > bestOverlap || (ov == bestOverlap && blk.X < s.blocks[best].X) {
			best, bestOverlap = i, ov
		}
	}
	if best < 0 {
		return
	}

	hit := s.blocks[best]
	blk := hit.Box()
	if c.cornerCorrect && bestOverlap < s.cfg.Physics.CornerCorrection {
		nudged := box
		if box.CenterX() < blk.CenterX() {
			nudged.X = blk.X - b.W - 1
		} else {
			nudged.X = blk.Right() + 1
		}
		if nudged.X >= 0 && nudged.Right() <= s.cfg.Field.Width && !s.solidAt(nudged) {
			b.X = nudged.X
			return
		}
	}

	b.Y = blk.Bottom()
	b.VY = 0
	if hit.Kind == BlockNormal && c.breaker != nil {
		s.breakBlock(c.breaker, hit.X, hit.Y)
	}
}

// breakBlock removes a Normal tile and credits the player who broke it.
func (s *State) breakBlock(p *Player, x, y float64) {
	if !s.removeBlockAt(x, y) {
		return
	}
	gained := s.award(p, s.cfg.Combat.BreakPoints, 0)
	s.hitStop(s.cfg.HitStop.Break)
	s.emit(BlockBroken{Player: p.ID, X: x, Y: y, Points: gained})
}

// movePlayer integrates one player for a tick.
func (s *State) movePlayer(p *Player, in Intent) {
	switch p.Life {
	case LifeDying:
		s.moveDying(p)
		return
	case LifeGhost:
		s.moveGhost(p, in)
		return
	case LifeDead:
		return
	}

	ph := s.cfg.Physics
	up := s.cfg.Upgrades

	gravity := ph.Gravity
	if p.Upgrades.LowGravity {
		gravity *= up.LowGravityFactor
	}

	target := 0.0
	if in.Left {
		target -= ph.RunSpeed
	}
	if in.Right {
		target += ph.RunSpeed
	}
	if target != 0 {
		p.Facing = math.Copysign(1, target)
		accel := ph.AirAccel
		if p.Grounded {
			accel = ph.GroundAccel
		}
		p.VX += (target - p.VX) * accel
	} else {
		friction := ph.AirFriction
		if p.Grounded {
			friction = ph.GroundFriction
			if p.Upgrades.Grip {
				friction *= up.GripFactor
			}
		}
		p.VX *= friction
		if math.Abs(p.VX) < 0.05 {
			p.VX = 0
		}
	}

	p.VY = math.Min(p.VY+gravity, ph.TerminalVelocity)

	canJump := p.Grounded || s.tick-p.LastGrounded <= ph.CoyoteTicks
	if in.Jump && p.VY >= 0 && canJump {
		force := ph.JumpForce
		if p.Upgrades.JumpBoost {
			force *= up.JumpBoostFactor
		}
		p.VY = force
		p.Grounded = false
		p.LastGrounded = neverGrounded
	}

	rules := collision{
		tolerance:     ph.LandingTolerance,
		cornerCorrect: true,
		lethalSpikes:  true,
		breaker:       p,
	}
	if c := s.moveX(&p.Body, rules); c.spiked {
		s.killPlayer(p, CauseSpike)
		return
	}
	c := s.moveY(&p.Body, rules)
	if c.spiked {
		s.killPlayer(p, CauseSpike)
		return
	}
	if c.landed && c.impact > ph.LandingImpact {
		s.emit(LandingImpact{Player: p.ID, Velocity: c.impact})
	}
	p.Motion = nextMotion(p.Body)
}

// moveDying drops a dead player through the world without collisions.
func (s *State) moveDying(p *Player) {
	p.VY = math.Min(p.VY+s.cfg.Physics.Gravity, s.cfg.Physics.TerminalVelocity)
	p.Y += p.VY
	p.Rotation += s.cfg.Player.DeathSpin
	p.DyingTicks++
}

// moveGhost flies a spectator freely inside the viewport.
func (s *State) moveGhost(p *Player, in Intent) {
	speed := s.cfg.Player.GhostSpeed
	p.VX, p.VY = 0, speed/4
	if in.Left {
		p.VX -= speed
	}
	if in.Right {
		p.VX += speed
	}
	if in.Jump {
		p.VY = -speed
	}
	p.X = math.Max(0, math.Min(p.X+p.VX, s.cfg.Field.Width-p.W))
	p.Y = math.Max(s.cameraY, math.Min(p.Y+p.VY, s.cameraY+s.cfg.Field.Height-p.H))
	p.Rotation += 0.05
}

// moveEnemy integrates an enemy. Yetis walk the tiles; birds fly freely.
func (s *State) moveEnemy(e *Enemy) {
	if e.Dead {
		return
	}
	switch e.Kind {
	case EnemyBird:
		e.X += e.VX
		e.Y += e.VY
	case EnemyYeti:
		if e.State == EnemyBuild {
			e.VX = 0
		}
		e.VY = math.Min(e.VY+s.cfg.Physics.Gravity, s.cfg.Physics.TerminalVelocity)
		rules := collision{tolerance: s.cfg.Yeti.LandingTolerance}
		e.hitWall = s.moveX(&e.Body, rules).hitWall
		s.moveY(&e.Body, rules)
	}
}

// moveBoss integrates the hovering boss.
func (s *State) moveBoss() {
	if !s.boss.Active {
		return
	}
	s.boss.X += s.boss.VX
	s.boss.Y += s.boss.VY
}

// moveProjectiles advances shots in straight lines. A shot that leaves the
// field or meets a Normal or Unbreakable tile is destroyed.
func (s *State) moveProjectiles() {
	width := s.cfg.Field.Width
	for _, pr := range s.projectiles {
		if pr.Dead {
			continue
		}
		pr.X += pr.VX
		pr.Y += pr.VY
		if pr.X < 0 || pr.Right() > width {
			pr.Dead = true
			continue
		}
		box := pr.Box()
		for i := range s.blocks {
			kind := s.blocks[i].Kind
			if (kind == BlockNormal || kind == BlockUnbreakable) && box.Intersects(s.blocks[i].Box()) {
				pr.Dead = true
				break
			}
		}
	}
}

// moveClouds slides every cloud platform; a platform reverses as a unit
// when its leading edge would cross the inner wall line.
func (s *State) moveClouds() {
	lo := s.cfg.Field.TileSize
	hi := s.cfg.Field.Width - s.cfg.Field.TileSize

	type extent struct{ minX, maxX, vx float64 }
	groups := make(map[int]*extent)
	for _, b := range s.blocks {
		if b.Kind != BlockCloud {
			continue
		}
		if e, ok := groups[b.Group]; ok {
			e.minX = math.Min(e.minX, b.X)
			e.maxX = math.Max(e.maxX, b.X+b.W)
			continue
		}
		groups[b.Group] = &extent{minX: b.X, maxX: b.X + b.W, vx: b.VX}
	}

	for i := range s.blocks {
		b := &s.blocks[i]
		if b.Kind != BlockCloud {
			continue
		}
		e := groups[b.Group]
		if e.minX+e.vx < lo || e.maxX+e.vx > hi {
			b.VX = -e.vx
		}
		b.X += b.VX
	}
}
