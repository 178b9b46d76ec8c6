package sim

import (
	"github.com/vovakirdan/tui-highway/internal/config"
	"github.com/vovakirdan/tui-highway/internal/core"
)

// Player is the vehicle state. Lane input changes TargetLane only;
// LateralX follows it through the motion model.
type Player struct {
	TargetLane int
	LateralX   float64
	Z          float64
	Speed      float64
	Boosting   bool
}

// Track converts lane indices to lateral positions.
type Track struct {
	cfg config.TrackConfig
}

// LaneX returns the lateral center of lane i. Lanes are mirrored around the
// middle so lane 0 is on the left when seen from behind the vehicle.
func (t Track) LaneX(i int) float64 {
	mid := float64(t.cfg.Lanes-1) / 2
	return (mid - float64(i)) * t.cfg.LaneOffset
}

// Lanes returns the lane count.
func (t Track) Lanes() int {
	return t.cfg.Lanes
}

// steer moves the target lane by delta, ignoring moves past either edge.
func (p *Player) steer(delta int, lanes int) {
	next := p.TargetLane + delta
	if next < 0 || next >= lanes {
		return
	}
	p.TargetLane = next
}

// move advances the player by dt seconds at speed.
func (p *Player) move(dt, speed, tickScale, lerpSpeed float64, track Track) {
	target := track.LaneX(p.TargetLane)
	factor := core.ClampF(lerpSpeed*dt, 0, 1)
	if factor >= 1 {
		p.LateralX = target
	} else {
		p.LateralX += (target - p.LateralX) * factor
	}

	p.Speed = speed
	p.Z += speed * tickScale * dt
}
