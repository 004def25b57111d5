package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/chubbycorn/internal/core"
	"github.com/vovakirdan/chubbycorn/internal/games/chubbycorn"
	"github.com/vovakirdan/chubbycorn/internal/platform/tui"
	"github.com/vovakirdan/chubbycorn/internal/registry"
	"github.com/vovakirdan/chubbycorn/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing. Without a mode the standard game starts.

Controls:
  Space/Up/Click - Flap
  Enter          - Start / play again
  P/Esc          - Pause
  R              - Restart (after game over)
  B              - Back (on title, pause or game over)
  Ctrl+S         - Save a screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Five lives, speed grows half as fast
  normal - Values from the config
  hard   - Two lives, faster start, speed grows twice as fast
  fixed  - Speed never grows

Examples:
  chubbycorn play
  chubbycorn play chubbycorn_classic
  chubbycorn play --difficulty hard
  chubbycorn play --config ./my-chubbycorn.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
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

// openStore opens the scores database. Failure only disables recording.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := chubbycorn.IDCanonical
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'chubbycorn list' to see available modes.")
		os.Exit(1)
	}

	chubbycorn.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, terminalConfig(), tui.WithPlayer(os.Getenv("USER")))

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
