package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chubbycorn/internal/games/chubbycorn"
	"github.com/vovakirdan/chubbycorn/internal/platform/tui"
	"github.com/vovakirdan/chubbycorn/internal/registry"
	"github.com/vovakirdan/chubbycorn/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs for a mode",
	Long: `Display the best runs for a mode, with how each run ended.

Examples:
  chubbycorn scores
  chubbycorn scores chubbycorn_classic
  chubbycorn scores -i
  chubbycorn scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs of the mode")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := chubbycorn.IDCanonical
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'chubbycorn list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		cfg := terminalConfig()
		if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared all runs of %s.\n", gameID)
		return
	}

	printScores(store, gameID)
}

func printScores(store *storage.Store, gameID string) {
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		return
	}

	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'chubbycorn play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-7s  %-9s  %-6s  %-12s  %s\n", "Rank", "Score", "Ended", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-7s  %-9s  %-6s  %-12s  %s\n", "----", "-----", "-----", "----", "------", "----")

	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-7d  %-9s  %-6s  %-12s  %s\n",
			i+1, r.Score, r.EndReason, r.Duration.Round(time.Second), player,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	totals, err := store.GetRunTotals(gameID)
	if err == nil && totals.Runs > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Cupcakes: %d  Carrots: %d  Longest: %s  Top speed: %.1f\n",
			totals.Runs, totals.GoodCollected, totals.BadCollected,
			totals.LongestRun.Round(time.Second), totals.PeakHazardSpeed)
	}
}
