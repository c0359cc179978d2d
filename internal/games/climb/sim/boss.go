package sim

import "math"

// PhaseFor returns the boss phase for an HP value. Each threshold the HP
// fraction falls strictly below adds one phase.
func PhaseFor(hp, maxHP int, thresholds []float64) int {
	if maxHP <= 0 {
		return 0
	}
	frac := float64(hp) / float64(maxHP)
	phase := 0
	for _, t := range thresholds {
		if frac < t {
			phase++
		}
	}
	return phase
}

// fireInterval returns the volley period for the current phase.
func (s *State) fireInterval() int {
	intervals := s.cfg.Boss.FireIntervals
	if len(intervals) == 0 {
		return math.MaxInt32
	}
	return intervals[min(s.boss.Phase, len(intervals)-1)]
}

func (s *State) updateBoss() {
	b := &s.boss
	bc := s.cfg.Boss
	if b.Defeated {
		return
	}

	if !b.Active {
		if s.bossInRange() {
			b.Active = true
			b.FireTimer = s.fireInterval()
			s.emit(BossActivated{})
		}
		return
	}

	if b.HP <= 0 {
		s.defeatBoss()
		return
	}

	if phase := max(b.Phase, PhaseFor(b.HP, b.MaxHP, bc.PhaseThresholds)); phase != b.Phase {
		b.Phase = phase
		s.emit(BossPhaseChanged{Phase: phase})
	}

	lo := s.cfg.Field.TileSize
	hi := s.cfg.Field.Width - s.cfg.Field.TileSize
	speed := bc.Speed * (1 + bc.PhaseSpeedup*float64(b.Phase))
	b.VX = math.Copysign(speed, b.VX)
	if (b.X+b.VX < lo && b.VX < 0) || (b.Right()+b.VX > hi && b.VX > 0) {
		b.VX = -b.VX
	}
	b.Facing = math.Copysign(1, b.VX)

	b.MoveTimer++
	hover := b.ArenaY - bc.HoverOffset + math.Sin(float64(b.MoveTimer)*bc.HoverRate)*bc.HoverAmplitude
	b.VY = hover - b.Y

	b.FireTimer--
	if b.FireTimer <= 0 {
		s.fireVolley()
		b.FireTimer = s.fireInterval()
	}
}

// bossInRange reports whether a live player is within one viewport below
// the arena floor.
func (s *State) bossInRange() bool {
	for _, p := range s.players {
		if p.Alive() && p.Y < s.boss.ArenaY+s.cfg.Field.Height {
			return true
		}
	}
	return false
}

// nearestTarget returns the live player closest to the boss, or nil.
func (s *State) nearestTarget() *Player {
	var best *Player
	bestDist := math.Inf(1)
	for _, p := range s.players {
		if !p.Alive() {
			continue
		}
		d := math.Hypot(p.CenterX()-s.boss.CenterX(), p.CenterY()-s.boss.CenterY())
		if d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// fireVolley launches 1+phase shots aimed at the nearest live player.
func (s *State) fireVolley() {
	b := &s.boss
	bc := s.cfg.Boss
	target := s.nearestTarget()
	if target == nil {
		return
	}

	n := 1 + b.Phase
	dx := target.CenterX() - b.CenterX()
	size := bc.ProjectileSize
	for i := range n {
		spread := (float64(i) - float64(n-1)/2) * bc.Spread
		s.projectiles = append(s.projectiles, &Projectile{
			Body: Body{
				X: b.CenterX() - size/2, Y: b.Bottom(),
				W: size, H: size,
				VX:           dx*bc.AimFactor + spread,
				VY:           bc.ProjectileSpeed,
				LastGrounded: neverGrounded,
			},
			Damage: bc.ProjectileDamage,
		})
	}
}

// defeatBoss retires the boss for the rest of the run and drops its reward.
func (s *State) defeatBoss() {
	b := &s.boss
	b.Active = false
	b.Defeated = true
	b.VX, b.VY = 0, 0
	s.emit(BossDefeated{X: b.CenterX(), Y: b.CenterY()})

	n := s.cfg.Boss.RewardItems
	size := s.cfg.World.ItemSize
	for i := range n {
		offset := (float64(i) - float64(n-1)/2) * size * 1.5
		s.items = append(s.items, &Item{
			X:          b.CenterX() + offset - size/2,
			Y:          b.CenterY(),
			W:          size,
			H:          size,
			Kind:       ItemHigh,
			FloatPhase: float64(i),
		})
	}
	for _, pr := range s.projectiles {
		if !pr.Reflected {
			pr.Dead = true
		}
	}
}
