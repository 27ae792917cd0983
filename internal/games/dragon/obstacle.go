package dragon

import (
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Obstacle constants
const (
	GapMin      = 10 // Lowest gap centre (inclusive)
	GapMax      = 40 // Highest gap centre (exclusive)
	BaseGapSize = 20 // Gap height at score 0
	MinGapSize  = 8  // Gap height never shrinks below this
)

// RandomSource draws gap positions. *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Obstacle is a wall with one passable gap.
type Obstacle struct {
	X    int // World column of the wall
	GapY int // World row of the gap centre
	Size int // Total gap height
}

// NewObstacle creates a wall at world column x. The gap centre is drawn
// uniformly from [GapMin, GapMax) and the gap narrows by one row per point
// of score, down to MinGapSize.
func NewObstacle(x, score int, rng RandomSource) Obstacle {
	return Obstacle{
		X:    x,
		GapY: GapMin + rng.Intn(GapMax-GapMin),
		Size: max(MinGapSize, BaseGapSize-score),
	}
}

// UpperBound returns the first open row of the gap.
func (o Obstacle) UpperBound() int {
	return o.GapY - o.Size/2
}

// LowerBound returns the first wall row below the gap.
func (o Obstacle) LowerBound() int {
	return o.GapY + o.Size/2
}

// Render draws the wall relative to the player's scroll position. Blocks are
// snapped to the wall sprite grid so they line up from frame to frame.
func (o Obstacle) Render(dst *core.Screen, playerX int) {
	dst.Clear()

	screenX := o.X - playerX
	upper := o.UpperBound()
	lower := o.LowerBound()

	// Start above the screen when needed so the last block ends on the gap.
	for y := -(upper % WallSpriteHeight); y < upper; y += WallSpriteHeight {
		drawBlock(dst, screenX, y)
	}
	for y := lower; y < dst.Height(); y += WallSpriteHeight {
		drawBlock(dst, screenX, y)
	}
}

func drawBlock(dst *core.Screen, x, y int) {
	dst.DrawRect(core.NewRect(x, y, WallSpriteWidth, WallSpriteHeight), core.SpriteRune, WallColor)
}

// HitObstacle reports whether the player's hit box overlaps the wall column
// and pokes out of the gap.
func (o Obstacle) HitObstacle(p Player) bool {
	box := p.HitBox()
	return box.CrossesColumn(o.X) && box.LeavesBand(o.UpperBound(), o.LowerBound())
}
