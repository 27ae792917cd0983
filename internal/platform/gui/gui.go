// Package gui provides a desktop window host for Flappy Dragon on Ebitengine.
// It draws the same layers as the terminal host, one filled square per
// world cell, with the console text on top.
package gui

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
)

// Pixel size of one world cell. A console row covers two world rows.
const (
	cellSize = 8
	fontSize = 8
)

var palette = map[core.Color]color.Color{
	core.ColorBlack:  colornames.Black,
	core.ColorNavy:   colornames.Navy,
	core.ColorRed:    colornames.Red,
	core.ColorGreen:  colornames.Green,
	core.ColorYellow: colornames.Yellow,
	core.ColorWhite:  colornames.White,
	core.ColorOrange: colornames.Orange,
	core.ColorBrown:  colornames.Saddlebrown,
	core.ColorGray:   colornames.Gray,
}

// Options configures the window host.
type Options struct {
	FPS      int                   // Updates per second
	Scale    int                   // Window pixels per game pixel
	Controls config.ControlsConfig // Key names bound to game actions
	Logger   *log.Logger
}

// Window adapts a core.Game to ebiten.Game.
type Window struct {
	game     core.Game
	ctx      *core.Context
	keys     map[ebiten.Key]core.Action
	face     *text.GoTextFace
	logger   *log.Logger
	lastTick time.Time
	status   core.Status
}

// NewWindow creates a window host for the given game.
func NewWindow(game core.Game, opts Options) (*Window, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("gui: load font: %w", err)
	}

	keys := make(map[ebiten.Key]core.Action)
	bind := func(names []string, action core.Action) {
		for _, name := range names {
			k, ok := ebitenKey(name)
			if !ok {
				opts.Logger.Warn("key not available in window mode", "key", name, "action", action)
				continue
			}
			keys[k] = action
		}
	}
	bind(opts.Controls.Flap, core.ActionFlap)
	bind(opts.Controls.Play, core.ActionPlay)
	bind(opts.Controls.Quit, core.ActionQuit)

	return &Window{
		game:   game,
		ctx:    core.NewContext(dragon.ScreenWidth, dragon.ScreenHeight),
		keys:   keys,
		face:   &text.GoTextFace{Source: src, Size: fontSize},
		logger: opts.Logger,
		status: game.Status(),
	}, nil
}

// keyAliases maps terminal key names to Ebitengine key names.
var keyAliases = map[string]string{
	" ":     "Space",
	"up":    "ArrowUp",
	"down":  "ArrowDown",
	"left":  "ArrowLeft",
	"right": "ArrowRight",
	"esc":   "Escape",
}

func ebitenKey(name string) (ebiten.Key, bool) {
	if name == "" {
		return 0, false
	}
	if alias, ok := keyAliases[strings.ToLower(name)]; ok {
		name = alias
	} else {
		// Ebitengine names are capitalised: "P", "Enter", "Space".
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, false
	}
	return k, true
}

// Update runs one game frame.
func (w *Window) Update() error {
	now := time.Now()
	if !w.lastTick.IsZero() {
		w.ctx.FrameTimeMs = float64(now.Sub(w.lastTick)) / float64(time.Millisecond)
	}
	w.lastTick = now

	for k, action := range w.keys {
		if inpututil.IsKeyJustPressed(k) {
			w.ctx.Key = action
			break
		}
	}

	w.game.Tick(w.ctx)
	w.ctx.ResetInput()

	if status := w.game.Status(); status != w.status {
		if status.Over && !w.status.Over {
			w.logger.Info("run ended", "score", status.Score)
		}
		w.status = status
	}

	if w.ctx.Quitting {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the walls, then the dragon, then the console text.
func (w *Window) Draw(screen *ebiten.Image) {
	if c, ok := palette[w.ctx.Background]; ok {
		screen.Fill(c)
	} else {
		screen.Fill(colornames.Black)
	}

	for _, layer := range []*core.Screen{w.ctx.Walls, w.ctx.Sprites} {
		for y := 0; y < layer.Height(); y++ {
			for x := 0; x < layer.Width(); x++ {
				cell := layer.GetCell(x, y)
				if cell.Rune == ' ' {
					continue
				}
				vector.DrawFilledRect(screen,
					float32(x*cellSize), float32(y*cellSize),
					cellSize, cellSize, colorOf(cell.Color), false)
			}
		}
	}

	for y := 0; y < w.ctx.Console.Height(); y++ {
		row := w.ctx.Console.Row(y)
		if strings.TrimSpace(row) == "" {
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(0, float64(y*2*cellSize+(2*cellSize-fontSize)/2))
		op.ColorScale.ScaleWithColor(colornames.White)
		text.Draw(screen, row, w.face, op)
	}
}

// Layout returns the fixed logical size of the world.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.ctx.Sprites.Width() * cellSize, w.ctx.Sprites.Height() * cellSize
}

func colorOf(c core.Color) color.Color {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return colornames.White
}

// Run opens a window and plays the game until it quits or the window closes.
func Run(game core.Game, opts Options) error {
	w, err := NewWindow(game, opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = config.Default().Display.Scale
	}
	width, height := w.Layout(0, 0)
	ebiten.SetWindowSize(width*scale, height*scale)
	ebiten.SetWindowTitle(game.Title())
	if opts.FPS > 0 {
		ebiten.SetTPS(opts.FPS)
	}

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
