package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-highway/internal/config"
)

// Spawner decides when and what to place ahead of the player.
type Spawner struct {
	rng      *rand.Rand
	cfg      config.SpawnConfig
	lanes    int
	timer    float64 // Seconds accumulated towards the next attempt
	interval float64 // Current spawn interval
}

// NewSpawner creates a spawner with a seeded RNG.
func NewSpawner(seed int64, lanes int, cfg config.SpawnConfig) *Spawner {
	return &Spawner{
		rng:      rand.New(rand.NewSource(seed)),
		cfg:      cfg,
		lanes:    lanes,
		interval: cfg.InitialInterval,
	}
}

// Reset zeroes the spawn timer and restores the initial interval. The RNG
// stream continues so a restarted run gets a fresh layout.
func (sp *Spawner) Reset() {
	sp.timer = 0
	sp.interval = sp.cfg.InitialInterval
}

// Interval returns the current spawn interval in seconds.
func (sp *Spawner) Interval() float64 {
	return sp.interval
}

// Update accumulates dt and, once the interval is reached, attempts one
// spawn at playerZ + LeadDistance. It returns the entity and true when
// something was added to reg.
func (sp *Spawner) Update(dt, interval, playerZ float64, reg *Registry) (Entity, bool) {
	sp.interval = interval
	sp.timer += dt
	if sp.timer < sp.interval {
		return Entity{}, false
	}
	sp.timer = 0

	z := playerZ + sp.cfg.LeadDistance
	if sp.crowded(z, reg) {
		return Entity{}, false
	}

	e := sp.roll()
	e.Lane = sp.rng.Intn(sp.lanes)
	e.Z = z
	reg.Add(e)
	return e, true
}

// crowded reports whether a live non-projectile entity sits within
// MinSpacing of z.
func (sp *Spawner) crowded(z float64, reg *Registry) bool {
	for i := range reg.Len() {
		e := reg.At(i)
		if e.Kind == KindProjectile || reg.Marked(i) {
			continue
		}
		if math.Abs(e.Z-z) < sp.cfg.MinSpacing {
			return true
		}
	}
	return false
}

// roll draws the kind and variant using the configured weights.
func (sp *Spawner) roll() Entity {
	w := sp.cfg.Weights
	n := sp.rng.Intn(w.Total())
	switch {
	case n < w.Car:
		return Entity{Kind: KindHazard, Variant: VariantCar}
	case n < w.Car+w.Barrier:
		return Entity{Kind: KindHazard, Variant: VariantBarrier}
	case n < w.Car+w.Barrier+w.Collectible:
		return Entity{Kind: KindCollectible}
	default:
		return Entity{Kind: KindPowerUp}
	}
}
