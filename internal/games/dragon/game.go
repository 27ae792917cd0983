// Package dragon implements Flappy Dragon, a side-scrolling reflex game.
// The player keeps a falling dragon airborne with a single flap action
// while passing through the gaps in a procession of walls.
package dragon

import (
	"fmt"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// World and timing constants
const (
	ScreenWidth   = 80   // World columns visible at once
	ScreenHeight  = 50   // World rows; falling below this is death
	FrameDuration = 50.0 // Milliseconds of real time per physics tick
	StartX        = 5    // Player world column on restart
	StartY        = 25.0 // Player world row on restart
)

// Console rows used by the menus, in text-console coordinates
const (
	titleRow    = 5
	subtitleRow = 6
	playRow     = 8
	quitRow     = 9
)

// Mode selects which per-frame handler runs.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeEnd
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeEnd:
		return "end"
	default:
		return "unknown"
	}
}

// State is the whole game: one player, one obstacle, the score, the
// physics time debt and the current mode.
type State struct {
	player    Player
	frameTime float64 // Real milliseconds accumulated towards the next tick
	obstacle  Obstacle
	mode      Mode
	score     int
	rng       RandomSource
}

// New creates a game sitting on the main menu. rng draws the gap positions;
// pass a seeded source for reproducible runs.
func New(rng RandomSource) *State {
	return &State{
		player:   NewPlayer(StartX, StartY),
		obstacle: NewObstacle(ScreenWidth, 0, rng),
		mode:     ModeMenu,
		rng:      rng,
	}
}

// Title returns the display name for this game.
func (s *State) Title() string {
	return "Flappy Dragon"
}

// Restart begins a fresh run from any mode.
func (s *State) Restart() {
	s.player = NewPlayer(StartX, StartY)
	s.frameTime = 0
	s.obstacle = NewObstacle(ScreenWidth, 0, s.rng)
	s.score = 0
	s.mode = ModePlaying
}

// Tick runs one frame for the current mode.
func (s *State) Tick(ctx *core.Context) {
	switch s.mode {
	case ModeMenu:
		s.mainMenu(ctx)
	case ModeEnd:
		s.dead(ctx)
	case ModePlaying:
		s.play(ctx)
	}
}

// play runs one frame of a live run. Physics is throttled to one tick per
// FrameDuration; input and rendering happen every frame.
func (s *State) play(ctx *core.Context) {
	ctx.ClsBG(core.ColorNavy)

	s.frameTime += ctx.FrameTimeMs
	if s.frameTime > FrameDuration {
		s.frameTime = 0
		s.player.GravityAndMove()
	}

	if ctx.Key == core.ActionFlap {
		s.player.Flap()
	}

	s.player.Render(ctx.Sprites)

	ctx.Console.DrawText(0, 0, "Press SPACE to flap.")
	ctx.Console.DrawText(0, 1, fmt.Sprintf("Score: %d", s.score))

	s.obstacle.Render(ctx.Walls, s.player.X)

	if s.player.X > s.obstacle.X {
		s.score++
		s.obstacle = NewObstacle(s.player.X+ScreenWidth, s.score, s.rng)
	}

	if int(s.player.Y) > ScreenHeight || s.obstacle.HitObstacle(s.player) {
		s.mode = ModeEnd
	}
}

func (s *State) mainMenu(ctx *core.Context) {
	ctx.ClsAll()
	ctx.Console.DrawTextCentered(titleRow, "Welcome to Flappy Dragon")
	ctx.Console.DrawTextCentered(playRow, "(P) Play Game")
	ctx.Console.DrawTextCentered(quitRow, "(Q) Quit Game")

	s.handleMenuKey(ctx)
}

func (s *State) dead(ctx *core.Context) {
	ctx.ClsAll()
	ctx.Console.DrawTextCentered(titleRow, "You are dead!")
	ctx.Console.DrawTextCentered(subtitleRow, fmt.Sprintf("You earned %d points", s.score))
	ctx.Console.DrawTextCentered(playRow, "(P) Play Again")
	ctx.Console.DrawTextCentered(quitRow, "(Q) Quit Game")

	s.handleMenuKey(ctx)
}

// handleMenuKey is shared by the menu and the death screen.
func (s *State) handleMenuKey(ctx *core.Context) {
	switch ctx.Key {
	case core.ActionPlay:
		s.Restart()
	case core.ActionQuit:
		ctx.Quitting = true
	}
}

// Mode returns the current mode.
func (s *State) Mode() Mode {
	return s.mode
}

// Score returns the number of obstacles passed since the last restart.
func (s *State) Score() int {
	return s.score
}

// Player returns a copy of the player.
func (s *State) Player() Player {
	return s.player
}

// Obstacle returns a copy of the live obstacle.
func (s *State) Obstacle() Obstacle {
	return s.obstacle
}

// FrameTime returns the milliseconds accumulated towards the next tick.
func (s *State) FrameTime() float64 {
	return s.frameTime
}

// Status returns the current mode and score for the host.
func (s *State) Status() core.Status {
	return core.Status{
		Mode:  s.mode.String(),
		Score: s.score,
		Over:  s.mode == ModeEnd,
	}
}

var _ core.Game = (*State)(nil)
