package dragon

import (
	"math"
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

func TestGravityVelocityCurve(t *testing.T) {
	for n := 0; n <= 25; n++ {
		p := NewPlayer(StartX, StartY)
		for i := 0; i < n; i++ {
			p.GravityAndMove()
		}

		expected := math.Min(TerminalVelocity, float64(2*n)/10)
		if p.Velocity != expected {
			t.Errorf("after %d ticks velocity = %v, expected %v", n, p.Velocity, expected)
		}
		if n >= 10 && p.Velocity != 2.0 {
			t.Errorf("after %d ticks velocity should sit exactly at 2.0, got %v", n, p.Velocity)
		}
	}
}

func TestGravityMovesRightAndDown(t *testing.T) {
	p := NewPlayer(StartX, StartY)

	p.GravityAndMove()

	if p.X != StartX+1 {
		t.Errorf("X = %d, expected %d", p.X, StartX+1)
	}
	if p.Y <= StartY {
		t.Errorf("Gravity should pull player down, Y is still %f", p.Y)
	}

	for i := 0; i < 10; i++ {
		prevX := p.X
		p.GravityAndMove()
		if p.X != prevX+1 {
			t.Fatalf("X should advance by exactly 1 per tick, went %d -> %d", prevX, p.X)
		}
	}
}

func TestFlap(t *testing.T) {
	tests := []struct {
		name  string
		start Player
	}{
		{"resting", NewPlayer(5, 25)},
		{"falling fast", Player{X: 40, Y: 44, Velocity: 2.0, FlapCycle: 0}},
		{"mid flap", Player{X: 12, Y: 3, Velocity: -1.2, FlapCycle: 2.4}},
		{"just flapped", Player{X: 7, Y: 0, Velocity: -2.0, FlapCycle: 3.9}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.start
			p.Flap()

			if p.Velocity != -2.0 {
				t.Errorf("Velocity = %v, expected -2.0", p.Velocity)
			}
			if p.FlapCycle != 3.9 {
				t.Errorf("FlapCycle = %v, expected 3.9", p.FlapCycle)
			}
			if p.X != tc.start.X || p.Y != tc.start.Y {
				t.Error("Flap should not move the player")
			}
		})
	}
}

func TestFlapCycleDecaySequence(t *testing.T) {
	p := NewPlayer(StartX, StartY)
	p.Flap()

	expected := []float64{3.5, 3.1, 2.7, 2.6, 2.5, 2.4, 2.3, 2.2, 2.1, 2.0, 1.5, 1.0, 0.5, 0, 0}
	for i, want := range expected {
		p.GravityAndMove()
		if p.FlapCycle != want {
			t.Fatalf("tick %d: FlapCycle = %v, expected %v", i+1, p.FlapCycle, want)
		}
	}
}

// maxSettleTicks is the slowest decay: 3.8 takes two fast steps to land on
// 3.0, ten slow steps to 2.0 and four settle steps to 0.
const maxSettleTicks = 16

func TestFlapCycleSlowestSettle(t *testing.T) {
	p := NewPlayer(StartX, StartY)
	p.FlapCycle = 3.8

	want := []float64{3.4, 3.0, 2.9, 2.8, 2.7, 2.6, 2.5, 2.4, 2.3, 2.2, 2.1, 2.0, 1.5, 1.0, 0.5, 0}
	for i, w := range want {
		p.GravityAndMove()
		if p.FlapCycle != w {
			t.Fatalf("tick %d: FlapCycle = %v, want %v", i+1, p.FlapCycle, w)
		}
	}
	if len(want) != maxSettleTicks {
		t.Errorf("slowest settle is %d ticks, maxSettleTicks is %d", len(want), maxSettleTicks)
	}
}

func TestFlapCycleSettles(t *testing.T) {
	for tenths := 0; tenths <= 39; tenths++ {
		p := NewPlayer(StartX, StartY)
		p.FlapCycle = float64(tenths) / 10

		ticks := 0
		for p.FlapCycle > 0 && ticks < 100 {
			p.GravityAndMove()
			if p.FlapCycle < 0 {
				t.Fatalf("start %v: FlapCycle went negative", float64(tenths)/10)
			}
			ticks++
		}

		if p.FlapCycle != 0 {
			t.Errorf("start %v: FlapCycle did not settle, got %v", float64(tenths)/10, p.FlapCycle)
		}
		if ticks > maxSettleTicks {
			t.Errorf("start %v: took %d ticks to settle, expected at most %d", float64(tenths)/10, ticks, maxSettleTicks)
		}

		p.GravityAndMove()
		if p.FlapCycle != 0 {
			t.Errorf("start %v: FlapCycle should stay at 0, got %v", float64(tenths)/10, p.FlapCycle)
		}
	}
}

func TestYNeverNegative(t *testing.T) {
	p := NewPlayer(StartX, 3)

	for i := 0; i < 50; i++ {
		p.Flap()
		p.GravityAndMove()
		if p.Y < 0 {
			t.Fatalf("tick %d: Y = %v, should be clamped at 0", i, p.Y)
		}
	}
	if p.Y != 0 {
		t.Errorf("Continuous flapping should pin the player to the top, Y = %v", p.Y)
	}
}

func TestPlayerFrame(t *testing.T) {
	tests := []struct {
		cycle    float64
		expected int
	}{
		{0, 0},
		{0.5, 0},
		{1.0, 1},
		{2.7, 2},
		{3.1, 3},
		{3.9, 3},
	}

	for _, tc := range tests {
		p := Player{FlapCycle: tc.cycle}
		if got := p.Frame(); got != tc.expected {
			t.Errorf("Frame() with cycle %v = %d, expected %d", tc.cycle, got, tc.expected)
		}
	}
}

func TestPlayerRender(t *testing.T) {
	screen := core.NewScreen(ScreenWidth, ScreenHeight)
	screen.SetCell(70, 40, 'x', core.ColorRed)

	p := NewPlayer(StartX, StartY)
	p.Render(screen)

	if screen.Filled(70, 40) {
		t.Error("Render should clear its layer first")
	}

	top := int(StartY) - PlayerSpriteHeight/2
	drawn := 0
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if !screen.Filled(x, y) {
				continue
			}
			drawn++
			if x >= PlayerSpriteWidth || y < top || y >= top+PlayerSpriteHeight {
				t.Errorf("sprite pixel at (%d, %d) outside the %dx%d box at row %d", x, y, PlayerSpriteWidth, PlayerSpriteHeight, top)
			}
			if c := screen.GetCell(x, y); c.Color != DragonColor {
				t.Errorf("sprite pixel at (%d, %d) has color %v", x, y, c.Color)
			}
		}
	}
	if drawn == 0 {
		t.Error("Render should draw the dragon")
	}
}

func TestPlayerRenderAnimates(t *testing.T) {
	resting := core.NewScreen(ScreenWidth, ScreenHeight)
	flapping := core.NewScreen(ScreenWidth, ScreenHeight)

	p := NewPlayer(StartX, StartY)
	p.Render(resting)
	p.Flap()
	p.Render(flapping)

	if resting.String() == flapping.String() {
		t.Error("A fresh flap should show a different animation frame")
	}
}

func TestHitBox(t *testing.T) {
	p := Player{X: 20, Y: 25.7}
	box := p.HitBox()

	if box.X != 20 || box.Right() != 28 {
		t.Errorf("hit box x span = [%d, %d], expected [20, 28]", box.X, box.Right())
	}
	if box.Y != 23 || box.Bottom() != 27 {
		t.Errorf("hit box y span = [%d, %d], expected [23, 27]", box.Y, box.Bottom())
	}
}
