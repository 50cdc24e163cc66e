package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// RenderBuffer is the frame compositor, flushed to the screen in one pass
// Draw calls outside the bounds are dropped
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Fill(' ', tcell.StyleDefault)
}

// Size returns the buffer dimensions
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

// Fill sets every cell, using exponential copy
func (b *RenderBuffer) Fill(r rune, style tcell.Style) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: r, Style: style}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one cell
func (b *RenderBuffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// SetFg recolors the glyph of a cell, keeping its background
func (b *RenderBuffer) SetFg(x, y int, r rune, fg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Style = c.Style.Foreground(fg)
}

// Get reads one cell, the zero Cell outside the bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetString writes s from x, advancing by display width, and returns the end column
func (b *RenderBuffer) SetString(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		b.Set(x, y, r, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
	return x
}

// SetStringCentered writes s centered on row y
func (b *RenderBuffer) SetStringCentered(y int, s string, style tcell.Style) {
	x := (b.width - runewidth.StringWidth(s)) / 2
	b.SetString(max(x, 0), y, s, style)
}

// Row returns the runes of row y as a string, for tests and logs
func (b *RenderBuffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	rs := make([]rune, b.width)
	for x := 0; x < b.width; x++ {
		rs[x] = b.cells[y*b.width+x].Rune
	}
	return string(rs)
}

// Flush copies the buffer to the screen and shows it
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	screen.Show()
}
