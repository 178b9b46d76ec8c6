// Package highway implements Highway Runner, an endless three-lane runner.
// The simulation lives in the sim subpackage; this package adapts it to the
// arcade host: actions become sim inputs, tick outcomes become cues, and
// snapshots are drawn into the screen buffer.
package highway

import (
	"github.com/vovakirdan/tui-highway/internal/config"
	"github.com/vovakirdan/tui-highway/internal/core"
	"github.com/vovakirdan/tui-highway/internal/games/highway/sim"
	"github.com/vovakirdan/tui-highway/internal/registry"
)

// Game IDs.
const (
	ID         = "highway"
	AutoFireID = "highway_autofire"
)

// maxFrameDelta caps a single host frame so a stalled terminal cannot move
// hazards past the player in one step. After a stall the run falls behind
// wall time: distance and the time ramp advance by at most this much per
// frame. The sim itself accepts any dt.
const maxFrameDelta = 0.1

// Camera is the renderer's viewpoint.
type Camera int

const (
	CameraChase Camera = iota // Third person, behind the vehicle
	CameraHood                // First person, on the hood
)

// String returns the camera name shown on the HUD.
func (c Camera) String() string {
	if c == CameraHood {
		return "hood"
	}
	return "chase"
}

// Game implements registry.Game for Highway Runner.
type Game struct {
	id       string
	title    string
	autoFire bool // Auto-fire on at start

	runtime core.RuntimeConfig
	cfg     config.HighwayConfig
	sim     *sim.State
	clock   *sim.Clock
	camera  Camera
	events  []sim.Input
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset; unknown names fall back
// to the config file.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates the classic mode.
func New() *Game {
	return &Game{id: ID, title: "Highway Runner", clock: sim.NewClock()}
}

// NewAutoFire creates the mode with auto-fire switched on.
func NewAutoFire() *Game {
	return &Game{id: AutoFireID, title: "Highway Runner: Armed", autoFire: true, clock: sim.NewClock()}
}

// SetClock replaces the frame clock. Tests use a fake time source.
func (g *Game) SetClock(c *sim.Clock) {
	g.clock = c
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.autoFire {
		return "Endless lanes, your car shoots what's ahead"
	}
	return "Dodge traffic, grab coins, ride the shield"
}

// Reset starts a fresh run. The camera choice is kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadHighway(configPath)
	if err != nil {
		cfg = config.DefaultHighwayConfig()
	}
	config.ApplyHighwayPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	g.sim = sim.New(cfg, runtime.Seed)
	g.sim.SetAutoFire(g.autoFire)
	g.events = g.events[:0]
	g.clock.Reset()
}

// Step maps the frame's actions to simulation inputs and advances the
// simulation by the wall time since the previous step.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]
	for _, a := range in.Actions {
		ev, ok := inputFor(a)
		if !ok {
			continue
		}
		if ev == sim.InputToggleCamera {
			g.toggleCamera()
		}
		g.events = append(g.events, ev)
	}

	dt := g.clock.Delta()
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	res := g.sim.Tick(dt, g.events)
	return core.StepResult{State: g.State(), Cues: cuesFor(res)}
}

func (g *Game) toggleCamera() {
	if g.camera == CameraChase {
		g.camera = CameraHood
	} else {
		g.camera = CameraChase
	}
}

// inputFor maps a platform action to a simulation input.
func inputFor(a core.Action) (sim.Input, bool) {
	switch a {
	case core.ActionLeft:
		return sim.InputLaneLeft, true
	case core.ActionRight:
		return sim.InputLaneRight, true
	case core.ActionBoost:
		return sim.InputBoostOn, true
	case core.ActionCruise:
		return sim.InputBoostOff, true
	case core.ActionPause:
		return sim.InputTogglePause, true
	case core.ActionRestart:
		return sim.InputRestart, true
	case core.ActionCheat:
		return sim.InputToggleCheat, true
	case core.ActionFire:
		return sim.InputToggleAutoFire, true
	case core.ActionCamera:
		return sim.InputToggleCamera, true
	}
	return 0, false
}

// cuesFor lists the outcomes of a tick as platform cues.
func cuesFor(res sim.Result) []core.Cue {
	var cues []core.Cue
	add := func(n int, c core.Cue) {
		for range n {
			cues = append(cues, c)
		}
	}
	add(res.Fired, core.CueShot)
	add(res.HazardsShot, core.CueHazardShot)
	add(res.Collected, core.CuePickup)
	add(res.ShieldsGained, core.CueShield)
	add(res.ShieldsBroken, core.CueShieldBreak)
	if res.Crashed {
		cues = append(cues, core.CueCrash)
	}
	return cues
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	sc := g.sim.Score()
	mode := g.sim.Mode()
	return core.GameState{
		Score:     sc.Total,
		Distance:  sc.Distance,
		Collected: sc.Collected,
		GameOver:  mode == sim.ModeGameOver,
		Paused:    mode == sim.ModePaused,
	}
}

// Snapshot exposes the simulation snapshot for hosts that log or inspect
// runs.
func (g *Game) Snapshot() sim.Snapshot {
	if g.sim == nil {
		return sim.Snapshot{}
	}
	return g.sim.Snapshot()
}

// Camera returns the current viewpoint.
func (g *Game) Camera() Camera {
	return g.camera
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
	registry.Register(AutoFireID, func() registry.Game {
		return NewAutoFire()
	})
}
