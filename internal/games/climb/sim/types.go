package sim

import (
	"github.com/pallasting/ICE-Climber/internal/core"
)

// BlockKind is the material of a tile.
type BlockKind int

const (
	BlockNormal      BlockKind = iota // breakable from below
	BlockUnbreakable                  // walls and hard ice
	BlockCloud                        // one-way moving platform
	BlockSpike                        // lethal on contact
)

// String returns the block kind name.
func (k BlockKind) String() string {
	switch k {
	case BlockNormal:
		return "normal"
	case BlockUnbreakable:
		return "unbreakable"
	case BlockCloud:
		return "cloud"
	case BlockSpike:
		return "spike"
	default:
		return "unknown"
	}
}

// Solid reports whether the kind stops bodies from every side.
func (k BlockKind) Solid() bool {
	return k != BlockCloud
}

// Biome is an altitude band that changes generation and palette.
type Biome int

const (
	BiomeIceCave Biome = iota
	BiomeBlizzard
	BiomeAurora
)

// String returns the biome tag published to the presentation layer.
func (b Biome) String() string {
	switch b {
	case BiomeIceCave:
		return "ice_cave"
	case BiomeBlizzard:
		return "blizzard"
	case BiomeAurora:
		return "aurora"
	default:
		return "unknown"
	}
}

// Block is one tile of the shaft. Identity is positional.
type Block struct {
	X, Y  float64
	W, H  float64
	Kind  BlockKind
	Biome Biome
	VX    float64 // cloud tiles only
	Group int     // cloud platform id, 0 for static tiles
}

// Box returns the tile bounds.
func (b Block) Box() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// neverGrounded marks a body that cannot use coyote time.
const neverGrounded = -1 << 30

// Body is the shape shared by players, enemies, the boss and projectiles.
type Body struct {
	X, Y, W, H float64
	VX, VY     float64
	Facing     float64 // +1 right, -1 left

	Grounded     bool
	LastGrounded int     // simulation tick of the last landing
	CarryVX      float64 // cloud velocity applied on the next horizontal pass

	Attacking      bool
	AttackTimer    int
	AttackCooldown int
}

// Box returns the body bounds.
func (b *Body) Box() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Right returns the x-coordinate of the right edge.
func (b *Body) Right() float64 { return b.X + b.W }

// Bottom returns the y-coordinate of the bottom edge.
func (b *Body) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal center.
func (b *Body) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center.
func (b *Body) CenterY() float64 { return b.Y + b.H/2 }

// Life is the player's participation state.
type Life int

const (
	LifeActive Life = iota
	LifeDying       // death hop and spin, no collisions
	LifeGhost       // co-op spectator awaiting a checkpoint
	LifeDead        // solo run finished
)

// String returns the life state name.
func (l Life) String() string {
	switch l {
	case LifeActive:
		return "active"
	case LifeDying:
		return "dying"
	case LifeGhost:
		return "ghost"
	case LifeDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Motion is the animation state of an active player.
type Motion int

const (
	MotionIdle Motion = iota
	MotionRun
	MotionJump
	MotionFall
)

// String returns the motion state name.
func (m Motion) String() string {
	switch m {
	case MotionIdle:
		return "idle"
	case MotionRun:
		return "run"
	case MotionJump:
		return "jump"
	case MotionFall:
		return "fall"
	default:
		return "unknown"
	}
}

// nextMotion derives the motion state from a resolved body.
func nextMotion(b Body) Motion {
	switch {
	case !b.Grounded && b.VY < 0:
		return MotionJump
	case !b.Grounded:
		return MotionFall
	case b.VX > 0.5 || b.VX < -0.5:
		return MotionRun
	default:
		return MotionIdle
	}
}

// Upgrades are the shop purchases owned by a player.
type Upgrades struct {
	Grip       bool
	LowGravity bool
	Power      bool
	JumpBoost  bool
}

// Player is a climber controlled by one local input.
type Player struct {
	Body
	ID         core.PlayerID
	Life       Life
	Motion     Motion
	Rotation   float64 // death and ghost spin, radians
	DyingTicks int
	Score      int
	Combo      Combo
	Upgrades   Upgrades

	attackHeld bool
}

// Alive reports whether the player interacts with the world.
func (p *Player) Alive() bool {
	return p.Life == LifeActive
}

// EnemyKind is the enemy archetype.
type EnemyKind int

const (
	EnemyYeti EnemyKind = iota
	EnemyBird
)

// String returns the enemy kind name.
func (k EnemyKind) String() string {
	if k == EnemyBird {
		return "bird"
	}
	return "yeti"
}

// EnemyState is the AI state of an enemy.
type EnemyState int

const (
	EnemyPatrol EnemyState = iota
	EnemyDive              // bird only, irreversible
	EnemyBuild             // yeti only, repairing the path ahead
)

// String returns the enemy state name.
func (s EnemyState) String() string {
	switch s {
	case EnemyPatrol:
		return "patrol"
	case EnemyDive:
		return "dive"
	case EnemyBuild:
		return "build"
	default:
		return "unknown"
	}
}

// Enemy is a yeti or a bird.
type Enemy struct {
	Body
	Kind  EnemyKind
	State EnemyState
	Dead  bool
	Aggro bool

	SpawnY        float64 // bob reference for birds
	BobPhase      float64
	BuildTimer    int
	BuildCooldown int
	Swing         float64 // cosmetic tool angle while building

	hitWall bool // set by the horizontal pass, read by the AI
}

// Boss is the mid-run guardian of the arena level.
type Boss struct {
	Body
	HP, MaxHP int
	Phase     int
	Active    bool
	Defeated  bool
	ArenaY    float64
	MoveTimer int
	FireTimer int
}

// Projectile is a boss shot, or one a player has swung back.
type Projectile struct {
	Body
	Reflected bool
	Damage    int
	Owner     core.PlayerID // reflecting player
	Dead      bool
}

// ItemKind is the value tier of a collectible.
type ItemKind int

const (
	ItemLow ItemKind = iota
	ItemMid
	ItemHigh
)

// String returns the item kind name.
func (k ItemKind) String() string {
	switch k {
	case ItemLow:
		return "low"
	case ItemMid:
		return "mid"
	case ItemHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Item is a floating collectible.
type Item struct {
	X, Y, W, H float64
	Kind       ItemKind
	Collected  bool
	FloatPhase float64
}

// Box returns the item bounds.
func (it *Item) Box() core.Box {
	return core.Box{X: it.X, Y: it.Y, W: it.W, H: it.H}
}

// Intent is one player's abstract input for a tick.
type Intent struct {
	Left   bool
	Right  bool
	Jump   bool
	Attack bool
}
