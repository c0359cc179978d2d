package config

import (
	_ "embed"
)

//go:embed defaults/climb.yaml
var defaultClimbYAML []byte

// DefaultClimbConfig returns the default climb configuration.
// It mirrors defaults/climb.yaml and is the fallback if the embed cannot be parsed.
func DefaultClimbConfig() ClimbConfig {
	return ClimbConfig{
		Field: FieldConfig{
			Width:      600,
			Height:     800,
			TileSize:   40,
			RowSpacing: 4,
		},
		Physics: PhysicsConfig{
			Gravity:          0.65,
			GroundFriction:   0.84,
			AirFriction:      0.998,
			GroundAccel:      0.8,
			AirAccel:         0.04,
			RunSpeed:         6,
			JumpForce:        -16.5,
			TerminalVelocity: 16,
			CoyoteTicks:      7, // ~120ms at 60 ticks/s
			CornerCorrection: 14,
			LandingTolerance: 16,
			LandingImpact:    10,
		},
		Player: PlayerConfig{
			Width:      24,
			Height:     38,
			DeathHop:   -8,
			DeathSpin:  0.2,
			GhostSpeed: 4,
		},
		World: WorldConfig{
			BlizzardLevel:  20,
			AuroraLevel:    50,
			InitialRows:    8,
			BatchRows:      5,
			CloudRowChance: 0.3,
			CloudWidth:     2,
			CloudMinSpeed:  1.0,
			CloudMaxSpeed:  2.5,
			ItemChance:     0.15,
			MidItemRoll:    0.6,
			HighItemRoll:   0.9,
			ItemLift:       5,
			ItemSize:       20,
			EnemyChance:    0.08,
			YetiRoll:       0.6,
			SafeLevel:      5,
			EnemyCaps: []EnemyCap{
				{BelowLevel: 20, Max: 2},
				{BelowLevel: 50, Max: 3},
				{BelowLevel: 1000000, Max: 5},
			},
		},
		Yeti: YetiConfig{
			Width:            30,
			Height:           30,
			Speed:            1.2,
			AggroRange:       200,
			BuildChance:      0.25,
			BuildTicks:       90,
			BuildCooldown:    120,
			LandingTolerance: 10,
		},
		Bird: BirdConfig{
			Width:        28,
			Height:       20,
			Speed:        2.2,
			BobAmplitude: 15,
			BobRate:      0.08,
			BandX:        120,
			BandY:        320,
			DiveAccel:    0.35,
		},
		Boss: BossConfig{
			Level:            25,
			HP:               300,
			Width:            72,
			Height:           64,
			HoverOffset:      220,
			HoverAmplitude:   30,
			HoverRate:        0.03,
			Speed:            2,
			PhaseSpeedup:     0.5,
			PhaseThresholds:  []float64{0.6, 0.3},
			FireIntervals:    []int{120, 90, 60},
			ProjectileSpeed:  4,
			ProjectileSize:   12,
			ProjectileDamage: 20,
			AimFactor:        0.01,
			Spread:           1.2,
			RewardItems:      6,
		},
		Combat: CombatConfig{
			AttackDuration: 10,
			AttackCooldown: 24,
			Reach:          40,
			PowerReach:     20,
			BreakPoints:    100,
			EnemyPoints:    200,
			EnemyCurrency:  5,
			Items: []ItemValue{
				{Points: 50, Currency: 1},
				{Points: 150, Currency: 3},
				{Points: 500, Currency: 10},
			},
			ReflectBoost:   1.5,
			ReflectKick:    2,
			AltitudePoints: 10,
		},
		Combo: ComboConfig{
			WindowTicks: 120,
			Rate:        0.1,
			Cap:         3.0,
		},
		HitStop: HitStopConfig{
			Break:   3,
			Kill:    4,
			Reflect: 3,
		},
		Camera: CameraConfig{
			FollowRatio: 0.6,
			BossRatio:   0.4,
			Lerp:        0.1,
			DeathMargin: 50,
			CullFactor:  1.5,
			StreamAhead: 1.0,
		},
		Run: RunConfig{
			CheckpointStart: 40,
			CheckpointEvery: 40,
			DeathFallTicks:  90,
			ReviveRatio:     0.3,
		},
		Upgrades: UpgradeConfig{
			GripCost:         20,
			LowGravityCost:   30,
			PowerCost:        25,
			JumpBoostCost:    30,
			GripFactor:       0.7,
			LowGravityFactor: 0.8,
			JumpBoostFactor:  1.12,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				GapChance:         Ramp{Base: 0.25, Bonus: 0.2},
				UnbreakableChance: Ramp{Base: 0.1, Bonus: 0.2},
				SpikeChance:       Ramp{Base: 0.05, Bonus: 0.1},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultClimbYAML
}
