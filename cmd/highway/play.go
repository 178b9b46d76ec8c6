package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-highway/internal/config"
	"github.com/vovakirdan/tui-highway/internal/games/highway"
	"github.com/vovakirdan/tui-highway/internal/platform/sound"
	"github.com/vovakirdan/tui-highway/internal/platform/tui"
	"github.com/vovakirdan/tui-highway/internal/registry"
	"github.com/vovakirdan/tui-highway/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: highway).

Controls:
  A/D, Left/Right  - Change lane
  W/Up             - Boost
  S/Down           - Normal speed
  F                - Toggle auto-fire
  I                - Toggle invulnerability
  C, right click   - Toggle camera
  P/Space          - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at base speed, ramps up over time
  normal - Start 30% up the ramp
  hard   - Start 70% up the ramp
  fixed  - No ramp, speed and spawn rate stay constant

Examples:
  highway play
  highway play highway_autofire
  highway play --difficulty hard --sound
  highway play --config ./my-highway.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := highway.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'highway list' to see available modes", gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts, closeSound := soundOptions()
	defer closeSound()

	if err := tui.Run(game, store, runtimeConfig(), opts...); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// applyGameFlags checks --config and --difficulty and hands them to the
// game package before any mode is created.
func applyGameFlags() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.LoadHighway(flagConfig); err != nil {
			return err
		}
	}
	highway.SetConfigPath(flagConfig)
	highway.SetDifficultyPreset(flagDifficulty)
	return nil
}

// openStore opens the scores database. The game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// soundOptions returns the model options for --sound and a cleanup func.
func soundOptions() ([]tui.Option, func()) {
	if !flagSound {
		return nil, func() {}
	}
	player := sound.NewPlayer()
	if err := player.Init(); err != nil {
		logger.Warn("audio unavailable, playing without sound", "error", err)
		return nil, func() {}
	}
	return []tui.Option{tui.WithCuePlayer(player)}, player.Close
}

