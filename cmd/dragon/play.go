package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/platform/tui"
)

// Terminal cells needed for the world plus the help footer.
const (
	minTermWidth  = dragon.ScreenWidth
	minTermHeight = dragon.ScreenHeight/2 + 1
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Flappy Dragon in the current terminal.

Controls:
  Space/Up/W - Flap
  P          - Play (from the menu or after dying)
  Q          - Quit (from the menu or after dying)
  Ctrl+S     - Save a text screenshot to ~/.dragon/screenshots
  Ctrl+C     - Exit at any time

Examples:
  dragon play
  dragon play --seed 42
  dragon play --log-file ~/.dragon/dragon.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		fail("%v", err)
	}

	// The TUI owns stdout, so logs only go to a file.
	logger, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < minTermWidth || h < minTermHeight {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs at least %dx%d\n",
				w, h, minTermWidth, minTermHeight)
		}
	}

	game := newGame(cfg)
	logger.Info("starting", "seed", cfg.Seed, "fps", cfg.Display.FPS)

	err = tui.Run(game, tui.Options{
		FPS:    cfg.Display.FPS,
		Keys:   tui.NewKeyMap(cfg.Controls),
		Logger: logger,
	})
	if err != nil {
		closeLog()
		fail("%v", err)
	}

	logger.Info("finished", "score", game.Score())
}
