package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML HighwayConfig
	if err := yaml.Unmarshal(defaultHighwayYAML, &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(fromYAML, DefaultHighwayConfig()) {
		t.Errorf("embedded YAML and DefaultHighwayConfig() disagree:\nyaml: %+v\ngo:   %+v",
			fromYAML, DefaultHighwayConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultHighwayConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestLoadHighwayCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "highway.yaml")
	data := []byte("speed:\n  base: 2.0\n  max_base: 4.0\nrewards:\n  collectible: 50\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHighway(path)
	if err != nil {
		t.Fatalf("LoadHighway() failed: %v", err)
	}

	if cfg.Speed.Base != 2.0 || cfg.Rewards.Collectible != 50 {
		t.Errorf("overrides not applied: base=%v collectible=%d", cfg.Speed.Base, cfg.Rewards.Collectible)
	}
	// Keys absent from the file keep their defaults
	if cfg.Track.Lanes != 3 || cfg.Spawn.LeadDistance != 800 {
		t.Errorf("partial file should keep defaults, got lanes=%d lead=%v", cfg.Track.Lanes, cfg.Spawn.LeadDistance)
	}
}

func TestLoadHighwayErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadHighway(filepath.Join(dir, "nope.yaml")); err == nil {
			t.Error("expected error for missing custom config")
		}
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("track: [unclosed"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadHighway(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(path, []byte("track:\n  lanes: 0\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		_, err := LoadHighway(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *HighwayConfig)
	}{
		{"start lane out of range", func(c *HighwayConfig) { c.Track.StartLane = 3 }},
		{"zero tick scale", func(c *HighwayConfig) { c.Speed.TickScale = 0 }},
		{"max below base", func(c *HighwayConfig) { c.Speed.MaxBase = 0.5 }},
		{"floor above initial interval", func(c *HighwayConfig) { c.Spawn.MinInterval = 2 }},
		{"no spawn weights", func(c *HighwayConfig) { c.Spawn.Weights = SpawnWeights{} }},
		{"negative extents", func(c *HighwayConfig) { c.Collision.Hazard.HalfWidth = -1 }},
		{"zero shoot interval", func(c *HighwayConfig) { c.Timers.ShootInterval = 0 }},
		{"initial level above one", func(c *HighwayConfig) { c.Difficulty.InitialLevel = 1.5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHighwayConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyHighwayPreset(t *testing.T) {
	cfg := DefaultHighwayConfig()
	ApplyHighwayPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%v", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}

	ApplyHighwayPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	before := cfg
	ApplyHighwayPreset(&cfg, ParsePreset("bogus"))
	if cfg != before {
		t.Error("unknown preset should leave the config untouched")
	}
}

func TestDifficultyBaseSpeed(t *testing.T) {
	cfg := DefaultHighwayConfig()
	d := NewDifficultyManager(cfg)

	// base + t*rate + (total/100)*scoreRate
	got := d.BaseSpeed(10, 200)
	want := 1.2 + 10*0.01 + 2*0.05
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("BaseSpeed(10, 200) = %v, expected %v", got, want)
	}

	if got := d.BaseSpeed(1e6, 1e6); got != cfg.Speed.MaxBase {
		t.Errorf("BaseSpeed should cap at %v, got %v", cfg.Speed.MaxBase, got)
	}

	if got := d.Speed(0, 0, true); math.Abs(got-3.0) > 1e-9 {
		t.Errorf("boosted speed at start = %v, expected 3.0", got)
	}
}

func TestDifficultySpawnIntervalFloor(t *testing.T) {
	cfg := DefaultHighwayConfig()
	d := NewDifficultyManager(cfg)

	if got := d.SpawnInterval(0); got != cfg.Spawn.InitialInterval {
		t.Errorf("SpawnInterval(0) = %v, expected %v", got, cfg.Spawn.InitialInterval)
	}

	prev := d.SpawnInterval(0)
	for _, elapsed := range []float64{1, 10, 40, 100, 1e4, 1e9, math.MaxFloat64} {
		got := d.SpawnInterval(elapsed)
		if got < cfg.Spawn.MinInterval {
			t.Errorf("SpawnInterval(%v) = %v, below floor %v", elapsed, got, cfg.Spawn.MinInterval)
		}
		if got > prev {
			t.Errorf("SpawnInterval should not increase: %v then %v", prev, got)
		}
		prev = got
	}
}

func TestDifficultyFixedAndHeadStart(t *testing.T) {
	cfg := DefaultHighwayConfig()
	cfg.Difficulty.InitialLevel = 0.5
	d := NewDifficultyManager(cfg)

	// Head start of 0.5 * 120s on the time ramp
	want := 1.2 + 60*0.01
	if got := d.BaseSpeed(0, 0); math.Abs(got-want) > 1e-9 {
		t.Errorf("BaseSpeed with head start = %v, expected %v", got, want)
	}

	cfg.Difficulty.Enabled = false
	d = NewDifficultyManager(cfg)
	if d.BaseSpeed(500, 10000) != d.BaseSpeed(0, 0) {
		t.Error("fixed difficulty should not ramp with time or score")
	}
	if d.SpawnInterval(500) != d.SpawnInterval(0) {
		t.Error("fixed difficulty should keep the spawn interval constant")
	}
}
