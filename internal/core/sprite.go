package core

import "fmt"

// SpriteRune is written into a layer for every opaque sprite pixel.
const SpriteRune = '█'

// Sprite is a fixed-size monochrome bitmap.
type Sprite struct {
	w, h int
	rows [][]bool
}

// NewSprite builds a sprite from text rows. '.' and ' ' are transparent,
// every other character is opaque. All rows must have the same width.
func NewSprite(rows ...string) (Sprite, error) {
	sp := Sprite{h: len(rows)}
	for i, row := range rows {
		runes := []rune(row)
		if i == 0 {
			sp.w = len(runes)
		} else if len(runes) != sp.w {
			return Sprite{}, fmt.Errorf("core: sprite row %d is %d wide, want %d", i, len(runes), sp.w)
		}
		bits := make([]bool, len(runes))
		for j, r := range runes {
			bits[j] = r != '.' && r != ' '
		}
		sp.rows = append(sp.rows, bits)
	}
	return sp, nil
}

// MustSprite is like NewSprite but panics on malformed rows.
// Intended for package-level sprite tables.
func MustSprite(rows ...string) Sprite {
	sp, err := NewSprite(rows...)
	if err != nil {
		panic(err)
	}
	return sp
}

// Width returns the sprite width in pixels.
func (sp Sprite) Width() int { return sp.w }

// Height returns the sprite height in pixels.
func (sp Sprite) Height() int { return sp.h }

// Opaque reports whether the pixel at (x, y) is drawn.
func (sp Sprite) Opaque(x, y int) bool {
	if y < 0 || y >= sp.h || x < 0 || x >= sp.w {
		return false
	}
	return sp.rows[y][x]
}
