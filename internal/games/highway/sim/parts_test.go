package sim

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-highway/internal/config"
)

func TestClockDelta(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	c := NewClockWithSource(func() time.Time { return now })

	if d := c.Delta(); d != 0 {
		t.Errorf("first delta should be 0, got %v", d)
	}

	now = base.Add(250 * time.Millisecond)
	if d := c.Delta(); d != 0.25 {
		t.Errorf("expected 0.25, got %v", d)
	}

	now = base // Source jumped backwards
	if d := c.Delta(); d != 0 {
		t.Errorf("backward jump should yield 0, got %v", d)
	}

	now = base.Add(time.Second)
	c.Reset()
	if d := c.Delta(); d != 0 {
		t.Errorf("delta after reset should be 0, got %v", d)
	}
}

func TestTimer(t *testing.T) {
	tm := NewTimer(2)
	if tm.Active() || tm.Fraction() != 0 {
		t.Error("new timer should be expired")
	}

	tm.Start()
	tm.Decay(0.5)
	if !tm.Active() || tm.Fraction() != 0.75 {
		t.Errorf("expected 0.75 left, got %v", tm.Fraction())
	}

	tm.Decay(-1)
	if tm.Remaining != 1.5 {
		t.Errorf("negative dt should be ignored, got %v", tm.Remaining)
	}

	tm.Decay(100)
	if tm.Remaining != 0 || tm.Active() {
		t.Errorf("timer should clamp at zero, got %v", tm.Remaining)
	}

	zero := NewTimer(0)
	zero.Start()
	if zero.Fraction() != 0 {
		t.Error("zero-length timer should report 0")
	}
}

func TestRegistryCompactKeepsOrder(t *testing.T) {
	r := NewRegistry(4)
	for i := range 5 {
		r.Add(Entity{Kind: KindHazard, Lane: i})
	}

	r.Mark(1)
	r.Mark(3)
	if got := len(r.Entities()); got != 3 {
		t.Errorf("Entities() should skip marked, got %d", got)
	}

	r.Compact()
	if r.Len() != 3 {
		t.Fatalf("expected 3 entities, got %d", r.Len())
	}
	for i, want := range []int{0, 2, 4} {
		if r.At(i).Lane != want {
			t.Errorf("index %d: lane %d, expected %d", i, r.At(i).Lane, want)
		}
	}

	r.Clear()
	if r.Len() != 0 || len(r.Entities()) != 0 {
		t.Error("Clear should empty the registry")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindHazard, "hazard"},
		{KindCollectible, "collectible"},
		{KindPowerUp, "power_up"},
		{KindProjectile, "projectile"},
		{Kind(99), "unknown"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.kind.String(); got != tc.want {
				t.Errorf("got %q", got)
			}
		})
	}
}

func TestSpawnerCadenceAndPlacement(t *testing.T) {
	cfg := config.DefaultHighwayConfig().Spawn
	sp := NewSpawner(3, 3, cfg)
	r := NewRegistry(8)

	if _, ok := sp.Update(0.5, 1, 0, r); ok {
		t.Fatal("should not spawn before the interval")
	}
	e, ok := sp.Update(0.5, 1, 100, r)
	if !ok {
		t.Fatal("expected a spawn once the interval is reached")
	}
	if e.Z != 900 {
		t.Errorf("expected spawn at player + lead (900), got %v", e.Z)
	}
	if e.Lane < 0 || e.Lane > 2 {
		t.Errorf("lane %d out of range", e.Lane)
	}
	if r.Len() != 1 {
		t.Errorf("expected 1 entity, got %d", r.Len())
	}
}

func TestSpawnerRejectsCrowdedSpot(t *testing.T) {
	cfg := config.DefaultHighwayConfig().Spawn
	sp := NewSpawner(3, 3, cfg)
	r := NewRegistry(8)
	r.Add(Entity{Kind: KindCollectible, Lane: 0, Z: 850})

	if _, ok := sp.Update(1, 1, 0, r); ok {
		t.Error("spawn within min spacing should be rejected")
	}
	if r.Len() != 1 {
		t.Errorf("rejected attempt must not add entities, got %d", r.Len())
	}
	// The timer was reset by the rejected attempt.
	if _, ok := sp.Update(0.5, 1, 0, r); ok {
		t.Error("timer should restart after a rejected attempt")
	}

	// Projectiles do not block spawns.
	r.Clear()
	r.Add(Entity{Kind: KindProjectile, Lane: 0, Z: 800})
	if _, ok := sp.Update(1, 1, 0, r); !ok {
		t.Error("projectile should not block a spawn")
	}
}

func TestSpawnerWeights(t *testing.T) {
	tests := []struct {
		name    string
		weights config.SpawnWeights
		kind    Kind
		variant Variant
	}{
		{"cars only", config.SpawnWeights{Car: 1}, KindHazard, VariantCar},
		{"barriers only", config.SpawnWeights{Barrier: 2}, KindHazard, VariantBarrier},
		{"collectibles only", config.SpawnWeights{Collectible: 1}, KindCollectible, VariantNone},
		{"power-ups only", config.SpawnWeights{PowerUp: 5}, KindPowerUp, VariantNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultHighwayConfig().Spawn
			cfg.Weights = tc.weights
			sp := NewSpawner(9, 3, cfg)
			for range 20 {
				e := sp.roll()
				if e.Kind != tc.kind || e.Variant != tc.variant {
					t.Fatalf("got %s/%s", e.Kind, e.Variant)
				}
			}
		})
	}
}

func TestSpawnerMixesKinds(t *testing.T) {
	sp := NewSpawner(11, 3, config.DefaultHighwayConfig().Spawn)
	counts := map[Kind]int{}
	for range 1200 {
		counts[sp.roll().Kind]++
	}
	if counts[KindHazard] <= counts[KindCollectible] || counts[KindPowerUp] == 0 {
		t.Errorf("unexpected mix: %v", counts)
	}
}
