// dragon is Flappy Dragon, a one-button side-scroller for the terminal.
//
// Usage:
//
//	dragon play      - Play in the current terminal
//	dragon window    - Play in a desktop window
//	dragon serve     - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Settings file (default search: ~/.dragon, ./configs)
//	--fps <rate>        - Set frame rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible walls
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dragon",
	Short: "Flappy Dragon - keep the dragon in the air",
	Long: `Flappy Dragon is a side-scrolling reflex game. Flap to stay airborne
and fly through the gaps in the walls. Every wall passed scores a point
and makes the next gap a little narrower.

Available commands:
  play     - Play in the current terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play

Examples:
  dragon play
  dragon play --seed 42
  dragon window --fps 30
  dragon serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
}
