package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Flappy Dragon in a desktop window.

The window uses the same controls as the terminal. Closing the window
quits the game.

Examples:
  dragon window
  dragon window --seed 42`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	err = gui.Run(newGame(cfg), gui.Options{
		FPS:      cfg.Display.FPS,
		Scale:    cfg.Display.Scale,
		Controls: cfg.Controls,
		Logger:   logger,
	})
	if err != nil {
		closeLog()
		fail("%v", err)
	}
}
