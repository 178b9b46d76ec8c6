// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// HighwayConfig contains all tuning for the Highway Runner simulation.
// Distances are world units, times are seconds, speeds are world units per
// reference frame (multiplied by Speed.TickScale and dt each tick).
type HighwayConfig struct {
	Track      TrackConfig      `yaml:"track"`
	Speed      SpeedConfig      `yaml:"speed"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Collision  CollisionConfig  `yaml:"collision"`
	Rewards    RewardsConfig    `yaml:"rewards"`
	Timers     TimersConfig     `yaml:"timers"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TrackConfig describes the lanes.
type TrackConfig struct {
	Lanes         int     `yaml:"lanes"`
	StartLane     int     `yaml:"start_lane"`
	LaneOffset    float64 `yaml:"lane_offset"`     // Distance between lane centers
	LaneLerpSpeed float64 `yaml:"lane_lerp_speed"` // Lateral smoothing rate per second
}

// SpeedConfig defines the speed ramp.
type SpeedConfig struct {
	Base          float64 `yaml:"base"`
	BoostBonus    float64 `yaml:"boost_bonus"`
	TickScale     float64 `yaml:"tick_scale"`      // Reference frames per second
	TimeRampRate  float64 `yaml:"time_ramp_rate"`  // Added per second of play
	ScoreRampRate float64 `yaml:"score_ramp_rate"` // Added per 100 points
	MaxBase       float64 `yaml:"max_base"`
}

// SpawnConfig defines spawn cadence, placement and the kind weights.
type SpawnConfig struct {
	LeadDistance    float64      `yaml:"lead_distance"`
	MinSpacing      float64      `yaml:"min_spacing"`
	RetireMargin    float64      `yaml:"retire_margin"`
	InitialInterval float64      `yaml:"initial_interval"`
	IntervalDecay   float64      `yaml:"interval_decay"` // Seconds removed per second of play
	MinInterval     float64      `yaml:"min_interval"`
	Weights         SpawnWeights `yaml:"weights"`
}

// SpawnWeights are relative weights for the spawn kind draw.
type SpawnWeights struct {
	Car         int `yaml:"car"`
	Barrier     int `yaml:"barrier"`
	Collectible int `yaml:"collectible"`
	PowerUp     int `yaml:"power_up"`
}

// Total returns the sum of all weights.
func (w SpawnWeights) Total() int {
	return w.Car + w.Barrier + w.Collectible + w.PowerUp
}

// Extents are the half width (lateral) and half length (longitudinal) of a
// collision box.
type Extents struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfLength float64 `yaml:"half_length"`
}

// CollisionConfig holds every collision box. The player uses a tighter box
// against pickups so they are not collected from a neighbouring lane.
type CollisionConfig struct {
	PlayerHazard Extents `yaml:"player_hazard"`
	PlayerPickup Extents `yaml:"player_pickup"`
	Hazard       Extents `yaml:"hazard"`
	Collectible  Extents `yaml:"collectible"`
	PowerUp      Extents `yaml:"power_up"`
}

// RewardsConfig defines score awards.
type RewardsConfig struct {
	Collectible  int `yaml:"collectible"`
	DestroyBonus int `yaml:"destroy_bonus"`
}

// TimersConfig defines timed effect durations.
type TimersConfig struct {
	Shield        float64 `yaml:"shield"`
	CrashFlash    float64 `yaml:"crash_flash"`
	ShootInterval float64 `yaml:"shoot_interval"`
}

// ProjectileConfig defines auto-fire projectiles.
type ProjectileConfig struct {
	Speed        float64 `yaml:"speed"`
	Offset       float64 `yaml:"offset"`        // Spawn distance ahead of the player
	HitTolerance float64 `yaml:"hit_tolerance"` // Longitudinal hit window against hazards
}

// ScoringConfig defines the distance score.
type ScoringConfig struct {
	DistanceScale float64 `yaml:"distance_scale"` // World units per distance point
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	RampHorizon  float64 `yaml:"ramp_horizon"`  // Seconds of play covered by level 0..1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values return "" so the
// config file decides.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

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
