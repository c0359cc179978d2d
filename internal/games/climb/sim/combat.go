package sim

import (
	"math"

	"github.com/pallasting/ICE-Climber/internal/config"
	"github.com/pallasting/ICE-Climber/internal/core"
)

// award increments the player's combo, then credits points and currency
// scaled by the new multiplier. It returns the points gained.
func (s *State) award(p *Player, points, currency int) int {
	mult := p.Combo.Hit(s.cfg.Combo)
	gained := scaled(points, mult)
	p.Score += gained
	s.currency += scaled(currency, mult)
	return gained
}

// AttackBox returns the forward swing hitbox of a player.
func (s *State) AttackBox(p *Player) core.Box {
	reach := s.cfg.Combat.Reach
	if p.Upgrades.Power {
		reach += s.cfg.Combat.PowerReach
	}
	x := p.Right()
	if p.Facing < 0 {
		x = p.X - reach
	}
	return core.Box{X: x, Y: p.Y, W: reach, H: p.H}
}

// updateAttack advances swing timers and starts a swing on a fresh press.
func (s *State) updateAttack(p *Player, in Intent) {
	c := s.cfg.Combat
	pressed := in.Attack && !p.attackHeld
	p.attackHeld = in.Attack

	if p.AttackCooldown > 0 {
		p.AttackCooldown--
	}
	if p.Attacking {
		p.AttackTimer--
		if p.AttackTimer <= 0 {
			p.Attacking = false
		}
	}
	if pressed && !p.Attacking && p.AttackCooldown == 0 {
		p.Attacking = true
		p.AttackTimer = c.AttackDuration
		p.AttackCooldown = c.AttackCooldown
	}
}

// resolveCombat runs swings, boss damage and body contacts for the tick.
func (s *State) resolveCombat() {
	for _, p := range s.players {
		if p.Alive() && p.Attacking {
			s.swing(p)
		}
	}
	s.damageBoss()
	for _, p := range s.players {
		if p.Alive() {
			s.touch(p)
		}
	}
}

// swing tests a player's hitbox against enemies and hostile shots.
func (s *State) swing(p *Player) {
	c := s.cfg.Combat
	hit := s.AttackBox(p)

	for _, e := range s.enemies {
		if e.Dead || !hit.Intersects(e.Box()) {
			continue
		}
		e.Dead = true
		gained := s.award(p, c.EnemyPoints, c.EnemyCurrency)
		s.hitStop(s.cfg.HitStop.Kill)
		s.emit(EnemyKilled{Player: p.ID, Kind: e.Kind, Points: gained})
	}

	for _, pr := range s.projectiles {
		if pr.Dead || pr.Reflected || !hit.Intersects(pr.Box()) {
			continue
		}
		pr.Reflected = true
		pr.Owner = p.ID
		pr.VY = -math.Abs(pr.VY) * c.ReflectBoost
		pr.VX = (s.rng.Float64()*2 - 1) * c.ReflectKick
		s.hitStop(s.cfg.HitStop.Reflect)
		s.emit(ProjectileReflected{Player: p.ID})
	}
}

// damageBoss applies reflected shots that reached the boss.
func (s *State) damageBoss() {
	b := &s.boss
	if !b.Active {
		return
	}
	for _, pr := range s.projectiles {
		if pr.Dead || !pr.Reflected || !pr.Box().Intersects(b.Box()) {
			continue
		}
		pr.Dead = true
		b.HP = max(0, b.HP-pr.Damage)
	}
}

// touch resolves a live player's contact with items, shots and enemies.
func (s *State) touch(p *Player) {
	box := p.Box()

	for _, it := range s.items {
		if it.Collected || !box.Intersects(it.Box()) {
			continue
		}
		it.Collected = true
		v := s.ItemValue(it.Kind)
		gained := s.award(p, v.Points, v.Currency)
		s.emit(ItemCollected{Player: p.ID, Kind: it.Kind, Points: gained})
	}

	for _, pr := range s.projectiles {
		if pr.Dead || pr.Reflected || !box.Intersects(pr.Box()) {
			continue
		}
		pr.Dead = true
		s.killPlayer(p, CauseProjectile)
		return
	}

	for _, e := range s.enemies {
		if e.Dead || !box.Intersects(e.Box()) {
			continue
		}
		s.killPlayer(p, CauseEnemy)
		return
	}
}

// ItemValue returns the reward for an item kind.
func (s *State) ItemValue(k ItemKind) config.ItemValue {
	items := s.cfg.Combat.Items
	if int(k) < 0 || int(k) >= len(items) {
		return config.ItemValue{}
	}
	return items[k]
}

// killPlayer starts the death fall of an active player.
func (s *State) killPlayer(p *Player, cause DeathCause) {
	if !p.Alive() {
		return
	}
	p.Life = LifeDying
	p.VX = 0
	p.VY = s.cfg.Player.DeathHop
	p.Grounded = false
	p.Attacking = false
	p.AttackTimer = 0
	p.DyingTicks = 0
	s.emit(PlayerDied{Player: p.ID, Cause: cause})
}
