package sim

import (
	"math"

	"github.com/vovakirdan/tui-highway/internal/config"
	"github.com/vovakirdan/tui-highway/internal/core"
)

// entityBox returns the collision box of e.
func (s *State) entityBox(e *Entity) core.Box {
	var ext config.Extents
	switch e.Kind {
	case KindHazard:
		ext = s.cfg.Collision.Hazard
	case KindCollectible:
		ext = s.cfg.Collision.Collectible
	case KindPowerUp:
		ext = s.cfg.Collision.PowerUp
	case KindProjectile:
		return core.NewBox(s.track.LaneX(e.Lane), e.Z, 0, 0)
	}
	return core.NewBox(s.track.LaneX(e.Lane), e.Z, ext.HalfWidth, ext.HalfLength)
}

// playerBox returns the player box used against entities of kind k.
func (s *State) playerBox(k Kind) core.Box {
	ext := s.cfg.Collision.PlayerPickup
	if k == KindHazard {
		ext = s.cfg.Collision.PlayerHazard
	}
	return core.NewBox(s.player.LateralX, s.player.Z, ext.HalfWidth, ext.HalfLength)
}

// shootHazards removes every hazard hit by a projectile. Each projectile
// takes out at most one hazard.
func (s *State) shootHazards(res *Result) {
	tol := s.cfg.Projectile.HitTolerance
	for i := range s.reg.Len() {
		p := s.reg.At(i)
		if p.Kind != KindProjectile || s.reg.Marked(i) {
			continue
		}
		for j := range s.reg.Len() {
			h := s.reg.At(j)
			if h.Kind != KindHazard || s.reg.Marked(j) {
				continue
			}
			if h.Lane == p.Lane && math.Abs(h.Z-p.Z) < tol {
				s.reg.Mark(i)
				s.reg.Mark(j)
				s.score.Collected += s.cfg.Rewards.DestroyBonus
				res.HazardsShot++
				break
			}
		}
	}
}

// resolve runs the collision pass: projectiles first, then the player
// against every remaining entity in registry order. Entities that fell
// outside the active window are retired in the same pass. It reports
// whether the run ended.
func (s *State) resolve(res *Result) bool {
	s.shootHazards(res)

	behind := s.player.Z - s.cfg.Spawn.RetireMargin
	ahead := s.player.Z + s.cfg.Spawn.LeadDistance + s.cfg.Spawn.RetireMargin

	crashed := false
	for i := range s.reg.Len() {
		if s.reg.Marked(i) {
			continue
		}
		e := s.reg.At(i)

		if e.Z <= behind {
			s.reg.Mark(i)
			continue
		}
		if e.Kind == KindProjectile {
			if e.Z > ahead {
				s.reg.Mark(i)
			}
			continue
		}

		if !s.playerBox(e.Kind).Overlaps(s.entityBox(e)) {
			continue
		}

		switch e.Kind {
		case KindCollectible:
			s.score.Collected += s.cfg.Rewards.Collectible
			s.reg.Mark(i)
			res.Collected++
		case KindPowerUp:
			s.shield.Start()
			s.reg.Mark(i)
			res.ShieldsGained++
		case KindHazard:
			switch {
			case s.shield.Active():
				s.shield.Clear()
				s.score.Collected += s.cfg.Rewards.DestroyBonus
				s.reg.Mark(i)
				res.ShieldsBroken++
			case s.cheat:
				// Invulnerable: the hazard passes through.
			default:
				s.mode = ModeGameOver
				s.flash.Start()
				res.Crashed = true
				crashed = true
			}
		case KindProjectile:
		}
		if crashed {
			break
		}
	}

	s.reg.Compact()
	return crashed
}
