package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-highway/internal/games/highway"
	"github.com/vovakirdan/tui-highway/internal/registry"
	"github.com/vovakirdan/tui-highway/internal/storage"
)

var (
	flagScoresStats bool
	flagScoresClear bool
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best runs for a mode",
	Long: `Display the top 10 runs for the specified mode (default: highway).

Examples:
  highway scores
  highway scores highway_autofire
  highway scores --stats
  highway scores --all
  highway scores highway --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show per-mode statistics instead of top runs")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs for the mode")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every run instead of the top 10")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := highway.ID
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'highway list' to see available modes", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all runs for %s.\n", gameID)
		return nil
	case flagScoresStats:
		return printStats(store)
	}

	heading := "Best runs"
	var runs []storage.Run
	if flagScoresAll {
		heading = "All runs"
		runs, err = store.AllRuns(gameID)
	} else {
		runs, err = store.TopRuns(gameID, 10)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s\n", heading, gameID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'highway play %s' to set the first score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %-7s  %s\n", "Rank", "Score", "Distance", "Bonus", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %-7s  %s\n", "----", "-----", "--------", "-----", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8d  %-6d  %-7s  %s\n",
			i+1, r.Score, r.Distance, r.Collected,
			formatDuration(r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

func printStats(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Printf("  %-18s  %-5s  %-6s  %-8s  %-9s  %s\n", "Mode", "Runs", "Best", "Average", "Farthest", "Last played")
	fmt.Printf("  %-18s  %-5s  %-6s  %-8s  %-9s  %s\n", "----", "----", "----", "-------", "--------", "-----------")

	for _, info := range registry.List() {
		st, ok := all[info.ID]
		if !ok {
			fmt.Printf("  %-18s  %-5d  %-6s  %-8s  %-9s  %s\n", info.ID, 0, "-", "-", "-", "never")
			continue
		}
		fmt.Printf("  %-18s  %-5d  %-6d  %-8.1f  %-9d  %s\n",
			info.ID, st.RunsCount, st.HighScore, st.AvgScore, st.BestDistance,
			st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// formatDuration renders run seconds as m:ss.
func formatDuration(secs float64) string {
	d := time.Duration(secs * float64(time.Second)).Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
