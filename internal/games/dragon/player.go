package dragon

import (
	"math"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Physics constants, applied once per tick
const (
	Gravity          = 0.2  // Velocity added per tick while below terminal velocity
	TerminalVelocity = 2.0  // Velocity is never raised above this
	FlapImpulse      = -2.0 // Velocity set by a flap (negative = up)
	FlapCycleStart   = 3.9  // Animation phase set by a flap
)

// Player is the dragon: a world position, a vertical velocity and a wing
// animation phase.
type Player struct {
	X         int     // World column, advances one per tick
	Y         float64 // World row of the sprite centre, never negative
	Velocity  float64 // Rows per tick, positive is down
	FlapCycle float64 // Animation phase in [0, FlapCycleStart]
}

// NewPlayer creates a resting player at the given position.
func NewPlayer(x int, y float64) Player {
	return Player{X: x, Y: y}
}

// GravityAndMove advances the player by one physics tick.
func (p *Player) GravityAndMove() {
	if p.Velocity < TerminalVelocity {
		p.Velocity = math.Min(snap(p.Velocity+Gravity), TerminalVelocity)
	}

	p.Y += p.Velocity
	p.X++
	if p.Y < 0 {
		p.Y = 0
	}

	// Fast snap out of the flap, a lingering mid pose, then a quick settle.
	switch {
	case p.FlapCycle > 3.0:
		p.FlapCycle = snap(p.FlapCycle - 0.4)
	case p.FlapCycle > 2.0:
		p.FlapCycle = snap(p.FlapCycle - 0.1)
	case p.FlapCycle > 0.0:
		p.FlapCycle = snap(p.FlapCycle - 0.5)
	}
	if p.FlapCycle < 0 {
		p.FlapCycle = 0
	}
}

// Flap gives the player an upward impulse and restarts the wing animation.
func (p *Player) Flap() {
	p.Velocity = FlapImpulse
	p.FlapCycle = FlapCycleStart
}

// Frame returns the animation frame index for the current flap phase.
func (p Player) Frame() int {
	return core.Clamp(int(p.FlapCycle), 0, len(dragonFrames)-1)
}

// Render draws the dragon at the left edge of the layer. The world scrolls
// past it through the obstacle's offset instead.
func (p Player) Render(dst *core.Screen) {
	dst.Clear()
	renderY := int(p.Y) - PlayerSpriteHeight/2
	dst.DrawSprite(0, renderY, dragonFrames[p.Frame()], DragonColor)
}

// HitBox returns the shrunk collision box: full sprite width, half the
// sprite height, centred on Y. The trimmed rows are wing tips and padding.
func (p Player) HitBox() core.Rect {
	hitBoxHeight := PlayerSpriteHeight / 2
	top := int(p.Y) - hitBoxHeight/2
	return core.WithExact(p.X, top, p.X+PlayerSpriteWidth, top+hitBoxHeight)
}

// snap rounds to the 0.1 grid all physics steps live on, so repeated
// steps land exactly on their bounds.
func snap(v float64) float64 {
	return math.Round(v*10) / 10
}
