package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the tuning for values the simulation cannot run with.
// Zero ramp rates and zero rewards are legal; negative sizes are not.
func (c HighwayConfig) Validate() error {
	switch {
	case c.Track.Lanes < 1:
		return invalid("track.lanes must be at least 1, got %d", c.Track.Lanes)
	case c.Track.StartLane < 0 || c.Track.StartLane >= c.Track.Lanes:
		return invalid("track.start_lane %d outside [0, %d)", c.Track.StartLane, c.Track.Lanes)
	case c.Track.LaneOffset <= 0:
		return invalid("track.lane_offset must be positive")
	case c.Track.LaneLerpSpeed <= 0:
		return invalid("track.lane_lerp_speed must be positive")
	case c.Speed.TickScale <= 0:
		return invalid("speed.tick_scale must be positive")
	case c.Speed.Base < 0 || c.Speed.BoostBonus < 0:
		return invalid("speed.base and speed.boost_bonus must not be negative")
	case c.Speed.MaxBase < c.Speed.Base:
		return invalid("speed.max_base %.2f below speed.base %.2f", c.Speed.MaxBase, c.Speed.Base)
	case c.Speed.TimeRampRate < 0 || c.Speed.ScoreRampRate < 0:
		return invalid("speed ramp rates must not be negative")
	case c.Spawn.LeadDistance <= 0:
		return invalid("spawn.lead_distance must be positive")
	case c.Spawn.MinSpacing < 0 || c.Spawn.RetireMargin < 0:
		return invalid("spawn.min_spacing and spawn.retire_margin must not be negative")
	case c.Spawn.MinInterval <= 0:
		return invalid("spawn.min_interval must be positive")
	case c.Spawn.InitialInterval < c.Spawn.MinInterval:
		return invalid("spawn.initial_interval %.2f below spawn.min_interval %.2f",
			c.Spawn.InitialInterval, c.Spawn.MinInterval)
	case c.Spawn.IntervalDecay < 0:
		return invalid("spawn.interval_decay must not be negative")
	case c.Spawn.Weights.Car < 0 || c.Spawn.Weights.Barrier < 0 ||
		c.Spawn.Weights.Collectible < 0 || c.Spawn.Weights.PowerUp < 0:
		return invalid("spawn.weights must not be negative")
	case c.Spawn.Weights.Total() == 0:
		return invalid("spawn.weights must not all be zero")
	case c.Timers.Shield < 0 || c.Timers.CrashFlash < 0:
		return invalid("timer durations must not be negative")
	case c.Timers.ShootInterval <= 0:
		return invalid("timers.shoot_interval must be positive")
	case c.Projectile.Speed < 0 || c.Projectile.HitTolerance < 0:
		return invalid("projectile speed and hit_tolerance must not be negative")
	case c.Scoring.DistanceScale <= 0:
		return invalid("scoring.distance_scale must be positive")
	case c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1:
		return invalid("difficulty.initial_level must be within [0, 1]")
	case c.Difficulty.RampHorizon < 0:
		return invalid("difficulty.ramp_horizon must not be negative")
	}

	for name, e := range map[string]Extents{
		"player_hazard": c.Collision.PlayerHazard,
		"player_pickup": c.Collision.PlayerPickup,
		"hazard":        c.Collision.Hazard,
		"collectible":   c.Collision.Collectible,
		"power_up":      c.Collision.PowerUp,
	} {
		if e.HalfWidth < 0 || e.HalfLength < 0 {
			return invalid("collision.%s extents must not be negative", name)
		}
	}

	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
