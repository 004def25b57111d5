package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chubbycorn/internal/core"
	"github.com/vovakirdan/chubbycorn/internal/games/chubbycorn"
	"github.com/vovakirdan/chubbycorn/internal/storage"
)

var (
	flagSimDuration   time.Duration
	flagSimClassic    bool
	flagSimRuns       int
	flagSimSave       bool
	flagSimDifficulty string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Fly headless runs with the autopilot",
	Long: `Play runs without a terminal using the built-in autopilot and print
how each one went. Useful for checking tuning changes.

A run still going when --duration elapses is ended without a cause.

Examples:
  chubbycorn simulate
  chubbycorn simulate --runs 10 --duration 5m
  chubbycorn simulate --classic --seed 42
  chubbycorn simulate --config ./tuning.yaml --difficulty hard --save`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().DurationVar(&flagSimDuration, "duration", 2*time.Minute, "Longest game time per run")
	simulateCmd.Flags().BoolVar(&flagSimClassic, "classic", false, "Simulate the classic looping mode")
	simulateCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the runs in the scores database")
	simulateCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSimulate(_ *cobra.Command, _ []string) {
	var store *storage.Store
	if flagSimSave {
		store = openStore()
		if store != nil {
			defer store.Close()
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fmt.Printf("  %-4s  %-7s  %-5s  %-9s  %-7s  %-5s  %s\n", "Run", "Score", "Lives", "Ended", "Time", "Speed", "Cupcakes/Carrots")

	var best core.RunSummary
	for i := range max(flagSimRuns, 1) {
		g := chubbycorn.New()
		if flagSimClassic {
			g = chubbycorn.NewClassic()
		}
		g.SetDifficulty(flagSimDifficulty)
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed + int64(i)})

		sum := chubbycorn.Simulate(g, chubbycorn.NewAutopilot(), flagSimDuration)
		fmt.Printf("  %-4d  %-7d  %-5d  %-9s  %-7s  %-5.1f  %d/%d\n",
			i+1, sum.Score, sum.LivesLeft, sum.EndReason, sum.Duration.Round(time.Second),
			sum.PeakHazardSpeed, sum.GoodCollected, sum.BadCollected)

		if sum.Score > best.Score {
			best = sum
		}

		if store != nil {
			rec := storage.NewRunRecord(g.ID(), "autopilot", sum)
			if _, err := store.SaveRun(rec); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not save run: %v\n", err)
			}
		}
	}

	if flagSimRuns > 1 {
		fmt.Println()
		fmt.Printf("Best: %d\n", best.Score)
	}
}
