package highway

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-highway/internal/core"
	"github.com/vovakirdan/tui-highway/internal/games/highway/sim"
	"github.com/vovakirdan/tui-highway/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}
}

// fakeClock advances by step on every reading.
func fakeClock(step time.Duration) *sim.Clock {
	now := time.Unix(0, 0)
	return sim.NewClockWithSource(func() time.Time {
		now = now.Add(step)
		return now
	})
}

func newTestGame(t *testing.T, g *Game) *Game {
	t.Helper()
	g.SetClock(fakeClock(time.Second / 60))
	g.Reset(testRuntime())
	return g
}

// useConfig points the loader at a temporary YAML file for one test.
func useConfig(t *testing.T, yaml string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "highway.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{ID, AutoFireID} {
		if !registry.Exists(id) {
			t.Errorf("%s should be registered", id)
		}
	}

	g, err := registry.Create(AutoFireID)
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Highway Runner: Armed" {
		t.Errorf("unexpected title %q", g.Title())
	}
}

func TestInputFor(t *testing.T) {
	tests := []struct {
		action core.Action
		want   sim.Input
		ok     bool
	}{
		{core.ActionLeft, sim.InputLaneLeft, true},
		{core.ActionRight, sim.InputLaneRight, true},
		{core.ActionBoost, sim.InputBoostOn, true},
		{core.ActionCruise, sim.InputBoostOff, true},
		{core.ActionPause, sim.InputTogglePause, true},
		{core.ActionRestart, sim.InputRestart, true},
		{core.ActionCheat, sim.InputToggleCheat, true},
		{core.ActionFire, sim.InputToggleAutoFire, true},
		{core.ActionCamera, sim.InputToggleCamera, true},
		{core.ActionConfirm, 0, false},
		{core.ActionQuit, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			got, ok := inputFor(tc.action)
			if got != tc.want || ok != tc.ok {
				t.Errorf("inputFor(%s) = %v, %v; expected %v, %v", tc.action, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestCuesFor(t *testing.T) {
	cues := cuesFor(sim.Result{Fired: 1, Collected: 2, ShieldsBroken: 1, Crashed: true})
	want := []core.Cue{core.CueShot, core.CuePickup, core.CuePickup, core.CueShieldBreak, core.CueCrash}
	if !slices.Equal(cues, want) {
		t.Errorf("cuesFor() = %v, expected %v", cues, want)
	}

	if cues := cuesFor(sim.Result{}); len(cues) != 0 {
		t.Errorf("empty result should give no cues, got %v", cues)
	}
}

func TestLaneChange(t *testing.T) {
	g := newTestGame(t, New())

	g.Step(frame(core.ActionLeft, core.ActionLeft))
	if lane := g.Snapshot().Lane; lane != 0 {
		t.Errorf("two lefts should reach lane 0, got %d", lane)
	}

	g.Step(frame(core.ActionRight))
	if lane := g.Snapshot().Lane; lane != 1 {
		t.Errorf("expected lane 1, got %d", lane)
	}
}

func TestCrashAndRestart(t *testing.T) {
	// One lane, cars only: the first spawn is a guaranteed crash.
	useConfig(t, `
track:
  lanes: 1
  start_lane: 0
spawn:
  weights:
    car: 1
    barrier: 0
    collectible: 0
    power_up: 0
`)
	g := newTestGame(t, New())
	g.Step(frame(core.ActionCheat, core.ActionCamera))
	g.Step(frame(core.ActionCheat))

	var crashed bool
	for range 5000 {
		res := g.Step(frame())
		if res.State.GameOver {
			crashed = true
			if !slices.Contains(res.Cues, core.CueCrash) {
				t.Error("crash step should report CueCrash")
			}
			if res.State.Score != res.State.Distance+res.State.Collected {
				t.Errorf("score %d != %d + %d", res.State.Score, res.State.Distance, res.State.Collected)
			}
			break
		}
	}
	if !crashed {
		t.Fatal("expected a crash")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over banner missing")
	}

	res := g.Step(frame(core.ActionRestart))
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("restart should start a clean run, got %+v", res.State)
	}
	if g.Camera() != CameraHood {
		t.Error("camera choice should survive restart")
	}
}

func TestAutoFireModeShoots(t *testing.T) {
	g := newTestGame(t, NewAutoFire())

	res := g.Step(frame())
	if !slices.Contains(res.Cues, core.CueShot) {
		t.Errorf("armed mode should fire on the first step, cues=%v", res.Cues)
	}
	if !g.Snapshot().AutoFire {
		t.Error("auto-fire flag should be set")
	}

	g.Step(frame(core.ActionFire))
	if g.Snapshot().AutoFire {
		t.Error("fire action should toggle auto-fire off")
	}
}

func TestFrameDeltaCapped(t *testing.T) {
	g := New()
	g.SetClock(fakeClock(10 * time.Second))
	g.Reset(testRuntime())

	g.Step(frame()) // First reading
	g.Step(frame())

	snap := g.Snapshot()
	limit := snap.Speed * g.cfg.Speed.TickScale * maxFrameDelta
	if snap.PlayerZ > limit+1e-9 {
		t.Errorf("one frame moved %v, expected at most %v", snap.PlayerZ, limit)
	}
}

func TestPauseState(t *testing.T) {
	g := newTestGame(t, New())

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause banner missing")
	}
}

func TestRenderHUDAndCamera(t *testing.T) {
	g := newTestGame(t, New())
	g.Step(frame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if hud := screen.Row(0); !strings.Contains(hud, "SCORE 0") || !strings.Contains(hud, "CAM chase") {
		t.Errorf("unexpected HUD %q", hud)
	}
	if !strings.Contains(screen.String(), playerTop) {
		t.Error("chase view should draw the car")
	}

	g.Step(frame(core.ActionCamera))
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "CAM hood") {
		t.Error("HUD should show the hood camera")
	}
	if !strings.ContainsRune(screen.Row(screen.Height()-2), HoodChar) {
		t.Error("hood view should draw the hood on the last road row")
	}
}

func TestRenderSmallTerminal(t *testing.T) {
	g := newTestGame(t, New())
	screen := core.NewScreen(20, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected a size warning")
	}
}
