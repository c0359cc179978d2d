package sim

import "github.com/pallasting/ICE-Climber/internal/core"

// Event is something notable that happened during a tick.
// Events are published in the snapshot for presentation and logging.
type Event interface {
	simEvent()
}

// DeathCause explains a PlayerDied event.
type DeathCause int

const (
	CauseSpike DeathCause = iota
	CauseEnemy
	CauseProjectile
	CauseFall
)

// String returns the cause name.
func (c DeathCause) String() string {
	switch c {
	case CauseSpike:
		return "spike"
	case CauseEnemy:
		return "enemy"
	case CauseProjectile:
		return "projectile"
	case CauseFall:
		return "fall"
	default:
		return "unknown"
	}
}

// BlockBroken is emitted when a player breaks a Normal tile.
type BlockBroken struct {
	Player core.PlayerID
	X, Y   float64
	Points int
}

func (BlockBroken) simEvent() {}

// BlockBuilt is emitted when a yeti places a tile.
type BlockBuilt struct {
	X, Y float64
}

func (BlockBuilt) simEvent() {}

// EnemyKilled is emitted when a swing lands on an enemy.
type EnemyKilled struct {
	Player core.PlayerID
	Kind   EnemyKind
	Points int
}

func (EnemyKilled) simEvent() {}

// ItemCollected is emitted when a player picks up an item.
type ItemCollected struct {
	Player core.PlayerID
	Kind   ItemKind
	Points int
}

func (ItemCollected) simEvent() {}

// ProjectileReflected is emitted when a swing turns a boss shot around.
type ProjectileReflected struct {
	Player core.PlayerID
}

func (ProjectileReflected) simEvent() {}

// LandingImpact is emitted on a hard landing.
type LandingImpact struct {
	Player   core.PlayerID
	Velocity float64
}

func (LandingImpact) simEvent() {}

// PlayerDied is emitted when an active player is killed.
type PlayerDied struct {
	Player core.PlayerID
	Cause  DeathCause
}

func (PlayerDied) simEvent() {}

// PlayerGhosted is emitted when a co-op player finishes the death fall.
type PlayerGhosted struct {
	Player core.PlayerID
}

func (PlayerGhosted) simEvent() {}

// PlayerRevived is emitted when a checkpoint brings a player back.
type PlayerRevived struct {
	Player core.PlayerID
}

func (PlayerRevived) simEvent() {}

// BiomeEntered is emitted when altitude crosses a biome boundary.
type BiomeEntered struct {
	Biome Biome
}

func (BiomeEntered) simEvent() {}

// CheckpointReached is emitted when the run pauses for the shop.
type CheckpointReached struct {
	Altitude int
	Revived  int
}

func (CheckpointReached) simEvent() {}

// BossActivated is emitted once when the boss wakes up.
type BossActivated struct{}

func (BossActivated) simEvent() {}

// BossPhaseChanged is emitted on the tick the boss enters a new phase.
type BossPhaseChanged struct {
	Phase int
}

func (BossPhaseChanged) simEvent() {}

// BossDefeated is emitted when boss HP reaches zero.
type BossDefeated struct {
	X, Y float64
}

func (BossDefeated) simEvent() {}

// GameOver is emitted once when the run ends.
type GameOver struct {
	Score    int
	Altitude int
}

func (GameOver) simEvent() {}
