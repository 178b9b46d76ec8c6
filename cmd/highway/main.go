// highway is an endless lane-runner for the terminal.
//
// Usage:
//
//	highway play [mode]      - Play a mode (default: highway)
//	highway list             - List available modes
//	highway menu             - Pick modes interactively
//	highway serve            - Start SSH server for remote play
//	highway scores [mode]    - Show best runs
//	highway config           - Print the default tuning YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-highway/internal/core"
	// Import modes to register them
	_ "github.com/vovakirdan/tui-highway/internal/games/highway"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "highway"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "highway",
	Short: "Highway Runner - dodge traffic in your terminal",
	Long: `Highway Runner is an endless lane-runner played in the terminal.
Switch lanes to dodge cars and barriers, pick up coins and shields,
and see how far you get.

Available commands:
  play     - Play a mode directly
  list     - Show all modes
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View best runs
  config   - Print the default tuning file

Examples:
  highway play
  highway play highway_autofire --difficulty hard
  highway menu
  highway serve --ssh :2222
  highway scores highway`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the host config from the terminal size and global
// flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
