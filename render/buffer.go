package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/reverb/core"
)

// Cell is one terminal cell before conversion to tcell styles
type Cell struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB
}

// Buffer is a compositor over a flat cell array, flushed to a tcell screen once per frame
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
}

// Size returns the buffer dimensions
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Fill resets all cells to an empty cell on bg using exponential copy
func (b *Buffer) Fill(bg core.RGB) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: bg, Bg: bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// inBounds returns true if in buffer bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), zero value when out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetWithBg writes a cell with explicit fg and bg colors
func (b *Buffer) SetWithBg(x, y int, r rune, fg, bg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg}
}

// SetFgOnly writes rune and foreground while preserving the background
func (b *Buffer) SetFgOnly(x, y int, r rune, fg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
}

// SetBgOnly replaces the background and clears the rune
func (b *Buffer) SetBgOnly(x, y int, bg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = ' '
	dst.Bg = bg
}

// Text writes s left to right from (x, y) and returns the column after the last rune
func (b *Buffer) Text(x, y int, s string, fg, bg core.RGB) int {
	for _, r := range s {
		b.SetWithBg(x, y, r, fg, bg)
		x++
	}
	return x
}

// Flush writes the buffer to screen; the caller shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			style := tcell.StyleDefault.Foreground(tcellColor(c.Fg)).Background(tcellColor(c.Bg))
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
}

func tcellColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// FromTcell converts a tcell color to RGB, false for palette-less colors such as ColorDefault
func FromTcell(c tcell.Color) (core.RGB, bool) {
	if !c.Valid() {
		return core.RGB{}, false
	}
	r, g, bl := c.RGB()
	if r < 0 {
		return core.RGB{}, false
	}
	return core.RGB{R: uint8(r), G: uint8(g), B: uint8(bl)}, true
}
