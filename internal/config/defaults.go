package config

import (
	_ "embed"
)

//go:embed defaults/highway.yaml
var defaultHighwayYAML []byte

// DefaultHighwayConfig returns the default Highway Runner configuration.
// It mirrors defaults/highway.yaml and is used when the embedded file
// cannot be parsed.
func DefaultHighwayConfig() HighwayConfig {
	return HighwayConfig{
		Track: TrackConfig{
			Lanes:         3,
			StartLane:     1,
			LaneOffset:    120,
			LaneLerpSpeed: 10,
		},
		Speed: SpeedConfig{
			Base:          1.2,
			BoostBonus:    1.8, // 3.0 while boosting
			TickScale:     60,
			TimeRampRate:  0.01,
			ScoreRampRate: 0.05,
			MaxBase:       2.6,
		},
		Spawn: SpawnConfig{
			LeadDistance:    800,
			MinSpacing:      120,
			RetireMargin:    150,
			InitialInterval: 1.2,
			IntervalDecay:   0.02,
			MinInterval:     0.4,
			Weights: SpawnWeights{
				Car:         4,
				Barrier:     3,
				Collectible: 4,
				PowerUp:     1,
			},
		},
		Collision: CollisionConfig{
			PlayerHazard: Extents{HalfWidth: 25, HalfLength: 40},
			PlayerPickup: Extents{HalfWidth: 15, HalfLength: 30},
			Hazard:       Extents{HalfWidth: 25, HalfLength: 40},
			Collectible:  Extents{HalfWidth: 8, HalfLength: 8},
			PowerUp:      Extents{HalfWidth: 10, HalfLength: 10},
		},
		Rewards: RewardsConfig{
			Collectible:  10,
			DestroyBonus: 25,
		},
		Timers: TimersConfig{
			Shield:        5,
			CrashFlash:    1.5,
			ShootInterval: 0.4,
		},
		Projectile: ProjectileConfig{
			Speed:        8,
			Offset:       50,
			HitTolerance: 45,
		},
		Scoring: ScoringConfig{
			DistanceScale: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			RampHorizon:  120,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "highway", "highway_autofire":
		return defaultHighwayYAML
	default:
		return nil
	}
}
