package dragon

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// fixedGap is a RandomSource that always centres the gap on the same row.
type fixedGap int

func (g fixedGap) Intn(n int) int {
	return (int(g) - GapMin) % n
}

func TestNewObstacleSize(t *testing.T) {
	tests := []struct {
		score    int
		expected int
	}{
		{0, 20},
		{1, 19},
		{5, 15},
		{12, 8},
		{13, 8},
		{100, 8},
	}

	for _, tc := range tests {
		o := NewObstacle(ScreenWidth, tc.score, fixedGap(25))
		if o.Size != tc.expected {
			t.Errorf("score %d: Size = %d, expected %d", tc.score, o.Size, tc.expected)
		}
		if o.X != ScreenWidth {
			t.Errorf("score %d: X = %d, expected %d", tc.score, o.X, ScreenWidth)
		}
	}
}

func TestNewObstacleGapRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[int]bool)

	for i := 0; i < 2000; i++ {
		o := NewObstacle(0, 0, rng)
		if o.GapY < GapMin || o.GapY >= GapMax {
			t.Fatalf("GapY = %d, outside [%d, %d)", o.GapY, GapMin, GapMax)
		}
		seen[o.GapY] = true
	}

	if len(seen) != GapMax-GapMin {
		t.Errorf("expected every gap row to appear, saw %d of %d", len(seen), GapMax-GapMin)
	}
}

func TestNewObstacleUsesInjectedSource(t *testing.T) {
	o := NewObstacle(ScreenWidth, 0, fixedGap(33))
	if o.GapY != 33 {
		t.Errorf("GapY = %d, expected 33", o.GapY)
	}
}

func TestHitObstacle(t *testing.T) {
	wall := Obstacle{X: 22, GapY: 25, Size: 8} // gap rows [21, 29]

	tests := []struct {
		name     string
		player   Player
		expected bool
	}{
		{"centred in gap", Player{X: 20, Y: 25}, false},
		{"far above gap", Player{X: 20, Y: 10}, true},
		{"far below gap", Player{X: 20, Y: 40}, true},
		{"hit box touching top edge", Player{X: 20, Y: 23}, false},
		{"hit box crossing top edge", Player{X: 20, Y: 22}, true},
		{"hit box touching bottom edge", Player{X: 20, Y: 27}, false},
		{"hit box crossing bottom edge", Player{X: 20, Y: 28}, true},
		{"wall at far edge of sprite", Player{X: 14, Y: 10}, true},
		{"wall just beyond sprite", Player{X: 13, Y: 10}, false},
		{"wall at player column", Player{X: 22, Y: 10}, false},
		{"already passed", Player{X: 30, Y: 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := wall.HitObstacle(tc.player); got != tc.expected {
				box := tc.player.HitBox()
				t.Errorf("HitObstacle() = %v, expected %v (hit box x=[%d,%d] y=[%d,%d])",
					got, tc.expected, box.X, box.Right(), box.Y, box.Bottom())
			}
		})
	}
}

func TestObstacleBounds(t *testing.T) {
	o := Obstacle{X: 0, GapY: 25, Size: 8}
	if o.UpperBound() != 21 || o.LowerBound() != 29 {
		t.Errorf("bounds = [%d, %d), expected [21, 29)", o.UpperBound(), o.LowerBound())
	}

	o = Obstacle{X: 0, GapY: 30, Size: 15}
	if o.UpperBound() != 23 || o.LowerBound() != 37 {
		t.Errorf("odd size bounds = [%d, %d), expected [23, 37)", o.UpperBound(), o.LowerBound())
	}
}

func TestObstacleRender(t *testing.T) {
	tests := []struct {
		name string
		gapY int
		size int
	}{
		{"odd upper bound", 25, 8},
		{"even upper bound", 24, 8},
		{"wide gap", 30, 20},
		{"gap near top", 10, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			screen := core.NewScreen(ScreenWidth, ScreenHeight)
			screen.SetCell(70, 3, 'x', core.ColorRed)

			o := Obstacle{X: 30, GapY: tc.gapY, Size: tc.size}
			o.Render(screen, 10)
			screenX := 20

			if screen.Filled(70, 3) {
				t.Error("Render should clear its layer first")
			}

			for y := 0; y < ScreenHeight; y++ {
				inGap := y >= o.UpperBound() && y < o.LowerBound()
				for x := screenX; x < screenX+WallSpriteWidth; x++ {
					if screen.Filled(x, y) == inGap {
						t.Errorf("cell (%d, %d): filled=%v, gap=[%d, %d)", x, y, screen.Filled(x, y), o.UpperBound(), o.LowerBound())
					}
				}
				if screen.Filled(screenX-1, y) || screen.Filled(screenX+WallSpriteWidth, y) {
					t.Errorf("row %d: wall drawn outside its columns", y)
				}
			}

			if c := screen.GetCell(screenX, ScreenHeight-1); c.Color != WallColor {
				t.Errorf("wall color = %v, expected %v", c.Color, WallColor)
			}
		})
	}
}

func TestObstacleRenderScrolls(t *testing.T) {
	o := Obstacle{X: 80, GapY: 25, Size: 8}
	screen := core.NewScreen(ScreenWidth, ScreenHeight)

	o.Render(screen, 5)
	if !screen.Filled(75, 0) {
		t.Error("wall should be drawn at X - playerX")
	}

	o.Render(screen, 6)
	if !screen.Filled(74, 0) || screen.Filled(76, 0) {
		t.Error("wall should move one column left as the player advances")
	}

	// Entirely off screen is fine
	o.Render(screen, 200)
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			if screen.Filled(x, y) {
				t.Fatalf("off-screen wall drew at (%d, %d)", x, y)
			}
		}
	}
}
