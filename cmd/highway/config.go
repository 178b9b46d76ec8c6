package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-highway/internal/config"
	"github.com/vovakirdan/tui-highway/internal/games/highway"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default tuning YAML",
	Long: `Print the built-in tuning file. Save it to
~/.arcade/configs/highway.yaml or ./configs/highway.yaml to override the
defaults, or pass it to 'highway play --config'.

Examples:
  highway config > ~/.arcade/configs/highway.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		data := config.GetDefaultYAML(highway.ID)
		if data == nil {
			return fmt.Errorf("no default config for %q", highway.ID)
		}
		_, err := os.Stdout.Write(data)
		return err
	},
}
