package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-highway/internal/core"
	"github.com/vovakirdan/tui-highway/internal/registry"
	"github.com/vovakirdan/tui-highway/internal/storage"
)

// CuePlayer plays tick outcomes, typically as sound.
type CuePlayer interface {
	Play(c core.Cue)
}

// RunHook is called once per finished run with the record that was (or
// would have been) saved.
type RunHook func(run storage.Run)

// Option configures a GameModel.
type Option func(*GameModel)

// WithCuePlayer plays every cue reported by the game.
func WithCuePlayer(p CuePlayer) Option {
	return func(m *GameModel) {
		m.cues = p
	}
}

// WithRunHook registers a callback for finished runs.
func WithRunHook(h RunHook) Option {
	return func(m *GameModel) {
		m.onRun = h
	}
}

// WithMenuReturn lets the back key leave a paused or finished game.
func WithMenuReturn() Option {
	return func(m *GameModel) {
		m.menuReturn = true
	}
}

// WithRenderer sets the lipgloss renderer, used for SSH sessions.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *GameModel) {
		m.renderer = NewRenderer(r)
	}
}

// GameModel is the Bubble Tea model that hosts one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	renderer   *Renderer
	keyMapper  *KeyMapper
	help       help.Model
	cues       CuePlayer
	onRun      RunHook
	inputFrame core.InputFrame
	gameState  core.GameState
	playTicks  int // Ticks spent playing in the current run
	menuReturn bool
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been recorded
}

// NewGameModel creates a model for game. The last terminal row is kept
// for the help line.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.renderer == nil {
		m.renderer = NewRenderer(nil)
	}
	return m
}

func gameRows(h int) int {
	return max(h-1, 0)
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = gameRows(cfg.ScreenH)
	m.game.Reset(cfg)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := m.keyMapper.MapMouse(msg); a != core.ActionNone {
			m.inputFrame.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The game draws to whatever size the screen has; no reset needed.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, gameRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.menuReturn && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if wasOver && !m.gameState.GameOver {
		// Restarted
		m.runSaved = false
		m.playTicks = 0
	}
	if !m.gameState.GameOver && !m.gameState.Paused {
		m.playTicks++
	}

	if m.cues != nil {
		for _, c := range result.Cues {
			m.cues.Play(c)
		}
	}

	if m.gameState.GameOver && !m.runSaved {
		m.recordRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the finished run once.
func (m *GameModel) recordRun() {
	m.runSaved = true
	run := storage.Run{
		GameID:    m.game.ID(),
		Score:     m.gameState.Score,
		Distance:  m.gameState.Distance,
		Collected: m.gameState.Collected,
		Duration:  float64(m.playTicks) / float64(max(m.config.TickRate, 1)),
	}

	if m.store != nil && run.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveRun(run)
	}
	if m.onRun != nil {
		m.onRun(run)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen) + "\n" + m.help.View(m.keyMapper.Game)
}

// State returns the last reported game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewGameModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Right click toggles the camera
	)

	_, err := p.Run()
	return err
}

// RunUntilBack runs game until the player quits or goes back to the menu.
// quit reports whether the player asked to leave entirely.
func RunUntilBack(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) (quit bool, err error) {
	model := NewGameModel(game, store, cfg, append(opts, WithMenuReturn())...)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return true, err
	}
	gm, ok := final.(GameModel)
	return !ok || !gm.BackToMenu(), nil
}
