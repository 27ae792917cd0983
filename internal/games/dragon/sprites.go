package dragon

import "github.com/vovakirdan/flappy-dragon/internal/core"

// Sprite dimensions in world cells
const (
	PlayerSpriteWidth  = 8
	PlayerSpriteHeight = 8
	WallSpriteWidth    = 2
	WallSpriteHeight   = 2
)

// Sprite colors
const (
	DragonColor = core.ColorOrange
	WallColor   = core.ColorBrown
)

// dragonFrames holds the wing animation, indexed by int(FlapCycle):
// 0 is wings down and 3 is the top of a fresh flap.
var dragonFrames = [4]core.Sprite{
	core.MustSprite(
		"........",
		"......#.",
		"##...###",
		".#######",
		"..#####.",
		"..###...",
		"...#....",
		"........",
	),
	core.MustSprite(
		"........",
		"......#.",
		"#....###",
		"########",
		".######.",
		"...##...",
		"........",
		"........",
	),
	core.MustSprite(
		"........",
		"..##..#.",
		"...#.###",
		".#######",
		"#.#####.",
		"...#....",
		"........",
		"........",
	),
	core.MustSprite(
		".##.....",
		"..##..#.",
		"...#####",
		".#######",
		"#.####..",
		"...#....",
		"........",
		"........",
	),
}
