package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes in the terminal host and RGB in the window host.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorNavy
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorOrange
	ColorBrown
	ColorGray
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlack:
		return "black"
	case ColorNavy:
		return "navy"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorWhite:
		return "white"
	case ColorOrange:
		return "orange"
	case ColorBrown:
		return "brown"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
