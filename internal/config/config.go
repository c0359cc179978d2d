// Package config provides YAML-based configuration loading and difficulty
// management for the climb.
package config

// ClimbConfig contains every tunable of the climb simulation.
// Distances are world pixels, durations are simulation ticks.
type ClimbConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	World      WorldConfig      `yaml:"world"`
	Yeti       YetiConfig       `yaml:"yeti"`
	Bird       BirdConfig       `yaml:"bird"`
	Boss       BossConfig       `yaml:"boss"`
	Combat     CombatConfig     `yaml:"combat"`
	Combo      ComboConfig      `yaml:"combo"`
	HitStop    HitStopConfig    `yaml:"hit_stop"`
	Camera     CameraConfig     `yaml:"camera"`
	Run        RunConfig        `yaml:"run"`
	Upgrades   UpgradeConfig    `yaml:"upgrades"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the play field and tile grid.
type FieldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"` // viewport height
	TileSize   float64 `yaml:"tile_size"`
	RowSpacing int     `yaml:"row_spacing"` // tiles between generated rows
}

// Columns returns the number of tile columns across the field.
func (f FieldConfig) Columns() int {
	if f.TileSize <= 0 {
		return 0
	}
	return int(f.Width / f.TileSize)
}

// RowHeight returns the vertical distance between two generated rows.
func (f FieldConfig) RowHeight() float64 {
	return f.TileSize * float64(f.RowSpacing)
}

// PhysicsConfig defines player integration parameters.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	GroundFriction   float64 `yaml:"ground_friction"`
	AirFriction      float64 `yaml:"air_friction"`
	GroundAccel      float64 `yaml:"ground_accel"`
	AirAccel         float64 `yaml:"air_accel"`
	RunSpeed         float64 `yaml:"run_speed"`
	JumpForce        float64 `yaml:"jump_force"` // negative, upward
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	CoyoteTicks      int     `yaml:"coyote_ticks"`
	CornerCorrection float64 `yaml:"corner_correction"`
	LandingTolerance float64 `yaml:"landing_tolerance"`
	LandingImpact    float64 `yaml:"landing_impact"`
}

// PlayerConfig defines player body and death animation parameters.
type PlayerConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	DeathHop   float64 `yaml:"death_hop"`
	DeathSpin  float64 `yaml:"death_spin"` // radians per tick
	GhostSpeed float64 `yaml:"ghost_speed"`
}

// WorldConfig defines procedural generation parameters.
type WorldConfig struct {
	BlizzardLevel  int        `yaml:"blizzard_level"`
	AuroraLevel    int        `yaml:"aurora_level"`
	InitialRows    int        `yaml:"initial_rows"`
	BatchRows      int        `yaml:"batch_rows"`
	CloudRowChance float64    `yaml:"cloud_row_chance"`
	CloudWidth     int        `yaml:"cloud_width"` // tiles per cloud platform
	CloudMinSpeed  float64    `yaml:"cloud_min_speed"`
	CloudMaxSpeed  float64    `yaml:"cloud_max_speed"`
	ItemChance     float64    `yaml:"item_chance"`
	MidItemRoll    float64    `yaml:"mid_item_roll"`
	HighItemRoll   float64    `yaml:"high_item_roll"`
	ItemLift       float64    `yaml:"item_lift"`
	ItemSize       float64    `yaml:"item_size"`
	EnemyChance    float64    `yaml:"enemy_chance"`
	YetiRoll       float64    `yaml:"yeti_roll"` // roll above this spawns a yeti
	SafeLevel      int        `yaml:"safe_level"`
	EnemyCaps      []EnemyCap `yaml:"enemy_caps"`
}

// EnemyCap bounds live enemies while generating rows below a level.
// The last entry applies to every level above it.
type EnemyCap struct {
	BelowLevel int `yaml:"below_level"`
	Max        int `yaml:"max"`
}

// CapFor returns the enemy cap for a generator level.
func (w WorldConfig) CapFor(level int) int {
	if level < w.SafeLevel || len(w.EnemyCaps) == 0 {
		return 0
	}
	for _, c := range w.EnemyCaps {
		if level < c.BelowLevel {
			return c.Max
		}
	}
	return w.EnemyCaps[len(w.EnemyCaps)-1].Max
}

// YetiConfig defines the ground walker.
type YetiConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Speed            float64 `yaml:"speed"`
	AggroRange       float64 `yaml:"aggro_range"`
	BuildChance      float64 `yaml:"build_chance"`
	BuildTicks       int     `yaml:"build_ticks"`
	BuildCooldown    int     `yaml:"build_cooldown"`
	LandingTolerance float64 `yaml:"landing_tolerance"`
}

// BirdConfig defines the flying diver.
type BirdConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BobAmplitude float64 `yaml:"bob_amplitude"`
	BobRate      float64 `yaml:"bob_rate"` // radians per tick
	BandX        float64 `yaml:"band_x"`
	BandY        float64 `yaml:"band_y"`
	DiveAccel    float64 `yaml:"dive_accel"`
}

// BossConfig defines the mid-run boss fight.
type BossConfig struct {
	Level            int       `yaml:"level"` // generator row of the arena floor
	HP               int       `yaml:"hp"`
	Width            float64   `yaml:"width"`
	Height           float64   `yaml:"height"`
	HoverOffset      float64   `yaml:"hover_offset"` // arena floor to boss top
	HoverAmplitude   float64   `yaml:"hover_amplitude"`
	HoverRate        float64   `yaml:"hover_rate"`
	Speed            float64   `yaml:"speed"`
	PhaseSpeedup     float64   `yaml:"phase_speedup"`
	PhaseThresholds  []float64 `yaml:"phase_thresholds"`
	FireIntervals    []int     `yaml:"fire_intervals"`
	ProjectileSpeed  float64   `yaml:"projectile_speed"`
	ProjectileSize   float64   `yaml:"projectile_size"`
	ProjectileDamage int       `yaml:"projectile_damage"`
	AimFactor        float64   `yaml:"aim_factor"`
	Spread           float64   `yaml:"spread"`
	RewardItems      int       `yaml:"reward_items"`
}

// CombatConfig defines melee and scoring values.
type CombatConfig struct {
	AttackDuration int         `yaml:"attack_duration"`
	AttackCooldown int         `yaml:"attack_cooldown"`
	Reach          float64     `yaml:"reach"`
	PowerReach     float64     `yaml:"power_reach"`
	BreakPoints    int         `yaml:"break_points"`
	EnemyPoints    int         `yaml:"enemy_points"`
	EnemyCurrency  int         `yaml:"enemy_currency"`
	Items          []ItemValue `yaml:"items"` // low, mid, high
	ReflectBoost   float64     `yaml:"reflect_boost"`
	ReflectKick    float64     `yaml:"reflect_kick"`
	AltitudePoints int         `yaml:"altitude_points"`
}

// ItemValue is the reward for one collectible kind.
type ItemValue struct {
	Points   int `yaml:"points"`
	Currency int `yaml:"currency"`
}

// ComboConfig defines the decaying score multiplier.
type ComboConfig struct {
	WindowTicks int     `yaml:"window_ticks"`
	Rate        float64 `yaml:"rate"`
	Cap         float64 `yaml:"cap"`
}

// HitStopConfig defines freeze lengths after impactful events.
type HitStopConfig struct {
	Break   int `yaml:"break"`
	Kill    int `yaml:"kill"`
	Reflect int `yaml:"reflect"`
}

// CameraConfig defines scrolling and streaming windows, as viewport fractions.
type CameraConfig struct {
	FollowRatio float64 `yaml:"follow_ratio"`
	BossRatio   float64 `yaml:"boss_ratio"`
	Lerp        float64 `yaml:"lerp"`
	DeathMargin float64 `yaml:"death_margin"` // pixels below the viewport bottom
	CullFactor  float64 `yaml:"cull_factor"`
	StreamAhead float64 `yaml:"stream_ahead"`
}

// RunConfig defines checkpoints and death handling.
type RunConfig struct {
	CheckpointStart int     `yaml:"checkpoint_start"`
	CheckpointEvery int     `yaml:"checkpoint_every"`
	DeathFallTicks  int     `yaml:"death_fall_ticks"`
	ReviveRatio     float64 `yaml:"revive_ratio"`
}

// UpgradeConfig defines shop prices and upgrade strengths.
type UpgradeConfig struct {
	GripCost         int     `yaml:"grip_cost"`
	LowGravityCost   int     `yaml:"low_gravity_cost"`
	PowerCost        int     `yaml:"power_cost"`
	JumpBoostCost    int     `yaml:"jump_boost_cost"`
	GripFactor       float64 `yaml:"grip_factor"`
	LowGravityFactor float64 `yaml:"low_gravity_factor"`
	JumpBoostFactor  float64 `yaml:"jump_boost_factor"`
}

// InputConfig defines how terminal key repeats become held intents.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases with altitude.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // generator level at which max difficulty is reached
}

// ScalingConfig defines generation probabilities at difficulty 0 and the
// bonus added at difficulty 1.
type ScalingConfig struct {
	GapChance         Ramp `yaml:"gap_chance"`
	UnbreakableChance Ramp `yaml:"unbreakable_chance"`
	SpikeChance       Ramp `yaml:"spike_chance"`
}

// Ramp is a probability that grows linearly with difficulty.
type Ramp struct {
	Base  float64 `yaml:"base"`
	Bonus float64 `yaml:"bonus"`
}

// At returns the ramp value at a difficulty level in [0, 1].
func (r Ramp) At(level float64) float64 {
	return clampF(r.Base+level*r.Bonus, 0, 1)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
