package config

import "math"

// DifficultyManager turns session time and score into the current speed and
// spawn cadence. Presets shift the starting point along the time ramp.
type DifficultyManager struct {
	speed        SpeedConfig
	spawn        SpawnConfig
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a difficulty manager for a highway config.
func NewDifficultyManager(c HighwayConfig) *DifficultyManager {
	return &DifficultyManager{
		speed:        c.Speed,
		spawn:        c.Spawn,
		cfg:          c.Difficulty,
		initialLevel: clampF(c.Difficulty.InitialLevel, 0.0, 1.0),
	}
}

// rampTime returns the ramp clock in seconds: play time plus the preset head
// start. With progression disabled the clock stays at the head start.
func (d *DifficultyManager) rampTime(elapsed float64) float64 {
	head := d.initialLevel * d.cfg.RampHorizon
	if !d.cfg.Enabled {
		return head
	}
	return head + math.Max(elapsed, 0)
}

// BaseSpeed returns the speed before boost:
// base + t*timeRamp + (total/100)*scoreRamp, capped at MaxBase.
// The score term is dropped when progression is disabled.
func (d *DifficultyManager) BaseSpeed(elapsed float64, total int) float64 {
	s := d.speed.Base + d.rampTime(elapsed)*d.speed.TimeRampRate
	if d.cfg.Enabled {
		s += float64(total) / 100 * d.speed.ScoreRampRate
	}
	return math.Min(s, d.speed.MaxBase)
}

// Speed returns the effective speed with the boost bonus applied.
func (d *DifficultyManager) Speed(elapsed float64, total int, boosting bool) float64 {
	s := d.BaseSpeed(elapsed, total)
	if boosting {
		s += d.speed.BoostBonus
	}
	return s
}

// SpawnInterval returns the seconds between spawn attempts. It shrinks with
// the ramp clock and never drops below MinInterval.
func (d *DifficultyManager) SpawnInterval(elapsed float64) float64 {
	interval := d.spawn.InitialInterval - d.rampTime(elapsed)*d.spawn.IntervalDecay
	return math.Max(interval, d.spawn.MinInterval)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
