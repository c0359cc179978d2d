package sim

import (
	"math"

	"github.com/pallasting/ICE-Climber/internal/core"
)

// cameraTarget returns where the camera wants to be, or false when no
// player is active.
func (s *State) cameraTarget() (float64, bool) {
	lead := s.leader()
	if lead == nil {
		return 0, false
	}
	view := s.cfg.Field.Height
	target := lead.Y - view*s.cfg.Camera.FollowRatio
	if s.boss.Active {
		// Framing the boss must not scroll the leader off the bottom.
		target = math.Max(target, s.boss.CenterY()-view*s.cfg.Camera.BossRatio)
	}
	return target, true
}

// updateCamera eases the camera toward its target, upward only.
func (s *State) updateCamera() {
	target, ok := s.cameraTarget()
	if !ok || target >= s.cameraY {
		return
	}
	s.cameraY += (target - s.cameraY) * s.cfg.Camera.Lerp
}

// updateProgression handles deaths, altitude, checkpoints and game over.
func (s *State) updateProgression() {
	view := s.cfg.Field.Height
	deathLine := s.cameraY + view + s.cfg.Camera.DeathMargin
	cullLine := s.cameraY + view*s.cfg.Camera.CullFactor

	for _, p := range s.players {
		switch p.Life {
		case LifeActive:
			if p.Y > deathLine {
				s.killPlayer(p, CauseFall)
			}
		case LifeDying:
			if p.Y > cullLine || p.DyingTicks >= s.cfg.Run.DeathFallTicks {
				s.finishDeath(p)
			}
		}
	}

	s.updateAltitude()

	if s.phase != PhaseGameOver && s.allOut() {
		s.phase = PhaseGameOver
		s.emit(GameOver{Score: s.totalScore(), Altitude: s.altitude})
	}
}

// updateAltitude ratchets altitude from the leader and fires the biome and
// checkpoint transitions it crosses.
func (s *State) updateAltitude() {
	lead := s.leader()
	if lead == nil {
		return
	}
	alt := int(math.Floor((s.originY - lead.Y) / s.cfg.Field.TileSize))
	if alt <= s.altitude {
		return
	}
	lead.Score += (alt - s.altitude) * s.cfg.Combat.AltitudePoints
	s.altitude = alt

	if biome := s.BiomeForLevel(alt / s.cfg.Field.RowSpacing); biome != s.biome {
		s.biome = biome
		s.emit(BiomeEntered{Biome: biome})
	}
	if s.altitude >= s.nextCheckpoint {
		s.checkpoint()
	}
}

// finishDeath ends a death fall: a ghost in co-op, out of the run otherwise.
func (s *State) finishDeath(p *Player) {
	p.VX, p.VY = 0, 0
	p.Rotation = 0
	if !s.coop {
		p.Life = LifeDead
		return
	}
	p.Life = LifeGhost
	view := s.cfg.Field.Height
	p.Y = s.cameraY + view/2
	p.X = math.Max(0, math.Min(p.X, s.cfg.Field.Width-p.W))
	s.emit(PlayerGhosted{Player: p.ID})
}

// allOut reports whether no player is active or still falling.
func (s *State) allOut() bool {
	for _, p := range s.players {
		if p.Life == LifeActive || p.Life == LifeDying {
			return false
		}
	}
	return true
}

// checkpoint pauses for the shop and revives fallen players.
func (s *State) checkpoint() {
	every := max(1, s.cfg.Run.CheckpointEvery)
	for s.nextCheckpoint <= s.altitude {
		s.nextCheckpoint += every
	}

	revived := 0
	for i, p := range s.players {
		if p.Life != LifeDying && p.Life != LifeGhost {
			continue
		}
		s.revive(p, i)
		revived++
	}
	s.phase = PhaseShop
	s.emit(CheckpointReached{Altitude: s.altitude, Revived: revived})
}

// revive returns a fallen player to play in mid-air near the top of the view.
func (s *State) revive(p *Player, slot int) {
	f := s.cfg.Field
	spread := 0.0
	if len(s.players) > 1 {
		spread = (float64(slot) - float64(len(s.players)-1)/2) * f.TileSize * 2
	}
	x := f.Width/2 + spread - p.W/2
	y := s.cameraY + f.Height*s.cfg.Run.ReviveRatio
	p.X, p.Y = s.safeSpot(x, y, p.W, p.H)

	p.Life = LifeActive
	p.Motion = MotionFall
	p.VX, p.VY = 0, 0
	p.CarryVX = 0
	p.Rotation = 0
	p.DyingTicks = 0
	p.Grounded = false
	p.LastGrounded = neverGrounded
	s.emit(PlayerRevived{Player: p.ID})
}

// safeSpot moves a spawn box up one tile at a time until no tile overlaps it.
func (s *State) safeSpot(x, y, w, h float64) (float64, float64) {
	for range 8 {
		if !s.occupiedByTile(core.Box{X: x, Y: y, W: w, H: h}) {
			break
		}
		y -= s.cfg.Field.TileSize
	}
	return x, y
}

func (s *State) occupiedByTile(box core.Box) bool {
	for i := range s.blocks {
		if box.Intersects(s.blocks[i].Box()) {
			return true
		}
	}
	return false
}
