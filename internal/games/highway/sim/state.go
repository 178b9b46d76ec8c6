// Package sim is the Highway Runner simulation engine: a single State
// advanced by Tick once per frame. It is deterministic for a given seed
// and dt sequence and holds no locks; each host owns its State.
package sim

import (
	"math"

	"github.com/vovakirdan/tui-highway/internal/config"
)

// Mode is the top-level game mode.
type Mode uint8

const (
	ModePlaying Mode = iota
	ModePaused
	ModeGameOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game_over"
	}
	return "unknown"
}

// Input is a discrete input event applied at the start of a tick.
type Input uint8

const (
	InputLaneLeft Input = iota + 1
	InputLaneRight
	InputBoostOn
	InputBoostOff
	InputTogglePause
	InputRestart
	InputToggleCheat
	InputToggleAutoFire
	InputToggleCamera // Renderer only
)

// Result lists what happened during one tick.
type Result struct {
	Spawned       int
	Fired         int
	Collected     int
	ShieldsGained int
	ShieldsBroken int
	HazardsShot   int
	Crashed       bool
}

// State is the whole simulation. The zero value is not usable; call New.
type State struct {
	cfg   config.HighwayConfig
	diff  *config.DifficultyManager
	track Track

	player  Player
	reg     *Registry
	spawner *Spawner
	score   Score
	mode    Mode
	elapsed float64

	shield Timer
	flash  Timer
	shoot  Timer

	cheat    bool
	autoFire bool
}

// New creates a simulation in Playing mode. cfg must have passed Validate.
func New(cfg config.HighwayConfig, seed int64) *State {
	s := &State{
		cfg:     cfg,
		diff:    config.NewDifficultyManager(cfg),
		track:   Track{cfg: cfg.Track},
		reg:     NewRegistry(32),
		spawner: NewSpawner(seed, cfg.Track.Lanes, cfg.Spawn),
		shield:  NewTimer(cfg.Timers.Shield),
		flash:   NewTimer(cfg.Timers.CrashFlash),
		shoot:   NewTimer(cfg.Timers.ShootInterval),
	}
	s.reset()
	return s
}

// reset restores everything except the cheat and auto-fire settings.
func (s *State) reset() {
	s.player = Player{
		TargetLane: s.cfg.Track.StartLane,
		LateralX:   s.track.LaneX(s.cfg.Track.StartLane),
		Speed:      s.diff.BaseSpeed(0, 0),
	}
	s.reg.Clear()
	s.spawner.Reset()
	s.score = Score{}
	s.elapsed = 0
	s.shield.Clear()
	s.flash.Clear()
	s.shoot.Clear()
	s.mode = ModePlaying
}

// Restart begins a new run after a crash. It does nothing unless the run
// is over.
func (s *State) Restart() {
	if s.mode != ModeGameOver {
		return
	}
	s.reset()
}

// SetAutoFire turns auto-fire on or off.
func (s *State) SetAutoFire(on bool) {
	s.autoFire = on
}

// SetCheat turns invulnerability on or off.
func (s *State) SetCheat(on bool) {
	s.cheat = on
}

// Mode returns the current mode.
func (s *State) Mode() Mode {
	return s.mode
}

// Score returns the current score.
func (s *State) Score() Score {
	return s.score
}

// Player returns the player state.
func (s *State) Player() Player {
	return s.player
}

// Track returns the lane geometry.
func (s *State) Track() Track {
	return s.track
}

// Tick advances the simulation by dt seconds after applying events in
// order. Negative or NaN dt counts as 0.
//
// Order: events, mode gate, player motion, spawner, entity advance,
// collision with retirement, timer decay, scoring. While not Playing only
// the crash flash decays.
func (s *State) Tick(dt float64, events []Input) Result {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	var res Result

	for _, ev := range events {
		s.apply(ev)
	}

	if s.mode != ModePlaying {
		s.flash.Decay(dt)
		return res
	}

	s.elapsed += dt

	speed := s.diff.Speed(s.elapsed, s.score.Total, s.player.Boosting)
	s.player.move(dt, speed, s.cfg.Speed.TickScale, s.cfg.Track.LaneLerpSpeed, s.track)

	if _, ok := s.spawner.Update(dt, s.diff.SpawnInterval(s.elapsed), s.player.Z, s.reg); ok {
		res.Spawned++
	}
	if s.autoFire && !s.shoot.Active() {
		s.reg.Add(Entity{
			Kind: KindProjectile,
			Lane: s.player.TargetLane,
			Z:    s.player.Z + s.cfg.Projectile.Offset,
		})
		s.shoot.Start()
		res.Fired++
	}

	s.advance(dt, speed)

	if s.resolve(&res) {
		// The crash freezes the run: the flash starts at full strength.
		s.score.recompute(s.player.Z, s.cfg.Scoring.DistanceScale)
		return res
	}

	s.shield.Decay(dt)
	s.flash.Decay(dt)
	s.shoot.Decay(dt)

	s.score.recompute(s.player.Z, s.cfg.Scoring.DistanceScale)
	return res
}

// advance moves every entity along the track.
func (s *State) advance(dt, speed float64) {
	scale := s.cfg.Speed.TickScale * dt
	for i := range s.reg.Len() {
		e := s.reg.At(i)
		switch e.Kind {
		case KindProjectile:
			e.Z += s.cfg.Projectile.Speed * scale
		case KindHazard, KindCollectible, KindPowerUp:
			e.Z -= speed * scale
		}
	}
}

// apply handles one input event. Steering and boost only work while
// Playing; settings toggles work in any mode.
func (s *State) apply(ev Input) {
	switch ev {
	case InputLaneLeft:
		if s.mode == ModePlaying {
			s.player.steer(-1, s.track.Lanes())
		}
	case InputLaneRight:
		if s.mode == ModePlaying {
			s.player.steer(1, s.track.Lanes())
		}
	case InputBoostOn:
		if s.mode == ModePlaying {
			s.player.Boosting = true
		}
	case InputBoostOff:
		if s.mode == ModePlaying {
			s.player.Boosting = false
		}
	case InputTogglePause:
		switch s.mode {
		case ModePlaying:
			s.mode = ModePaused
		case ModePaused:
			s.mode = ModePlaying
		case ModeGameOver:
		}
	case InputRestart:
		s.Restart()
	case InputToggleCheat:
		s.cheat = !s.cheat
	case InputToggleAutoFire:
		s.autoFire = !s.autoFire
	case InputToggleCamera:
	}
}
