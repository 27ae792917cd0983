package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Half-block glyphs used to fold two world rows into one terminal row.
const (
	glyphUpper = '▀'
	glyphLower = '▄'
	glyphFull  = '█'
)

// ansiColors maps core.Color to ANSI 256-color codes.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorBlack:  lipgloss.Color("0"),
	core.ColorNavy:   lipgloss.Color("17"),
	core.ColorRed:    lipgloss.Color("9"),
	core.ColorGreen:  lipgloss.Color("2"),
	core.ColorYellow: lipgloss.Color("11"),
	core.ColorWhite:  lipgloss.Color("15"),
	core.ColorOrange: lipgloss.Color("208"),
	core.ColorBrown:  lipgloss.Color("94"),
	core.ColorGray:   lipgloss.Color("245"),
}

// glyph is one composited terminal cell.
type glyph struct {
	r  rune
	fg core.Color
	bg core.Color
}

// Styles caches one lipgloss style per foreground/background pair.
type Styles struct {
	renderer *lipgloss.Renderer
	cache    map[[2]core.Color]lipgloss.Style
}

// NewStyles creates styles bound to a renderer. SSH sessions pass the
// session's renderer so colors match the remote terminal.
func NewStyles(r *lipgloss.Renderer) *Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Styles{
		renderer: r,
		cache:    make(map[[2]core.Color]lipgloss.Style),
	}
}

func (s *Styles) style(fg, bg core.Color) lipgloss.Style {
	k := [2]core.Color{fg, bg}
	if st, ok := s.cache[k]; ok {
		return st
	}
	st := s.renderer.NewStyle()
	if c, ok := ansiColors[fg]; ok {
		st = st.Foreground(c)
	}
	if c, ok := ansiColors[bg]; ok {
		st = st.Background(c)
	}
	s.cache[k] = st
	return st
}

// composite flattens the context's layers into terminal cells. Each
// terminal row shows two world rows of the sprite layers as half blocks;
// console text sits on top at one text row per terminal row.
func composite(ctx *core.Context) [][]glyph {
	rows := make([][]glyph, ctx.Console.Height())
	width := ctx.Console.Width()

	for ty := range rows {
		row := make([]glyph, width)
		for x := 0; x < width; x++ {
			if text := ctx.Console.GetCell(x, ty); text.Rune != ' ' {
				row[x] = glyph{r: text.Rune, fg: text.Color, bg: ctx.Background}
				continue
			}
			top, topOK := pixelAt(ctx, x, ty*2)
			bottom, bottomOK := pixelAt(ctx, x, ty*2+1)
			row[x] = foldCells(top, topOK, bottom, bottomOK, ctx.Background)
		}
		rows[ty] = row
	}
	return rows
}

// pixelAt returns the topmost sprite-layer cell at a world position.
func pixelAt(ctx *core.Context, x, y int) (core.Color, bool) {
	if c := ctx.Sprites.GetCell(x, y); c.Rune != ' ' {
		return c.Color, true
	}
	if c := ctx.Walls.GetCell(x, y); c.Rune != ' ' {
		return c.Color, true
	}
	return core.ColorDefault, false
}

func foldCells(top core.Color, topOK bool, bottom core.Color, bottomOK bool, bg core.Color) glyph {
	switch {
	case topOK && bottomOK && top == bottom:
		return glyph{r: glyphFull, fg: top, bg: bg}
	case topOK && bottomOK:
		return glyph{r: glyphUpper, fg: top, bg: bottom}
	case topOK:
		return glyph{r: glyphUpper, fg: top, bg: bg}
	case bottomOK:
		return glyph{r: glyphLower, fg: bottom, bg: bg}
	default:
		return glyph{r: ' ', fg: core.ColorDefault, bg: bg}
	}
}

// RenderContext converts a frame's layers to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderContext(ctx *core.Context, styles *Styles) string {
	rows := composite(ctx)

	var sb strings.Builder
	sb.Grow(len(rows) * (ctx.Console.Width()*2 + 1))

	for y, row := range rows {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < len(row) {
			start := row[x]

			var run strings.Builder
			for x < len(row) && row[x].fg == start.fg && row[x].bg == start.bg {
				run.WriteRune(row[x].r)
				x++
			}
			sb.WriteString(styles.style(start.fg, start.bg).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderPlain converts a frame's layers to uncolored text.
func RenderPlain(ctx *core.Context) string {
	rows := composite(ctx)

	var sb strings.Builder
	for y, row := range rows {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, g := range row {
			sb.WriteRune(g.r)
		}
	}
	return sb.String()
}
