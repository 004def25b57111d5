// chubbycorn is an endless side-scroller for the terminal: keep a flying
// unicorn in the air, collect cupcakes, avoid carrots and pillars.
//
// Usage:
//
//	chubbycorn list              - List available modes
//	chubbycorn play [mode]       - Play a mode
//	chubbycorn menu              - Pick modes and difficulty interactively
//	chubbycorn serve             - Start SSH server for remote play
//	chubbycorn scores [mode]     - Show best runs for a mode
//	chubbycorn simulate          - Run the autopilot headlessly
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.chubbycorn/scores.db)
//	--config <path>    - Load tuning from a YAML file
//	--log-file <path>  - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/chubbycorn/internal/games/chubbycorn"
)

var (
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
)

// logFile is closed after the command finishes.
var logFile *os.File

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chubbycorn",
	Short: "Chubbycorn - an endless unicorn flyer for your terminal",
	Long: `Chubbycorn is an endless side-scroller played in the terminal.
Flap to stay in the sky, collect cupcakes for points, avoid carrots that
cost a life and never touch a pillar. The world speeds up as you go.

Available commands:
  list      - Show all modes
  play      - Play a mode directly
  menu      - Interactive mode and difficulty picker
  serve     - Start SSH server for remote play
  scores    - View best runs
  simulate  - Let the autopilot fly and report the run

Examples:
  chubbycorn play
  chubbycorn play chubbycorn_classic --difficulty hard
  chubbycorn menu
  chubbycorn serve --ssh :2222
  chubbycorn simulate --duration 2m`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chubbycorn/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setupLogging points the game logger at --log-file. The terminal belongs
// to the game, so logs are discarded without one.
func setupLogging(_ *cobra.Command, _ []string) error {
	chubbycorn.SetConfigPath(flagConfig)

	if flagLogFile == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	chubbycorn.SetLogger(log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "chubbycorn",
	}))
	return nil
}
