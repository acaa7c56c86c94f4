package render

import (
	"github.com/lixenwraith/reverb/constant"
	"github.com/lixenwraith/reverb/core"
	"github.com/lixenwraith/reverb/vmath"
)

// cellSpan returns the cell rectangle covering the square around center
func cellSpan(vp Viewport, center vmath.Point, radius float64) (x0, y0, x1, y1 int) {
	x0, y0 = vp.ToCell(vmath.Point{X: center.X - radius, Y: center.Y + radius})
	x1, y1 = vp.ToCell(vmath.Point{X: center.X + radius, Y: center.Y - radius})
	return x0, y0, x1, y1
}

// FillCircle paints the background of every cell whose center lies inside the circle
func (b *Buffer) FillCircle(vp Viewport, center vmath.Point, radius float64, bg core.RGB) {
	x0, y0, x1, y1 := cellSpan(vp, center, radius)
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, b.width-1), min(y1, b.height-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if vmath.InCircle(vp.ToCanvas(x, y), center, radius) {
				b.SetBgOnly(x, y, bg)
			}
		}
	}
}

// Disc draws a filled circle with a one-cell outline in stroke.
// A circle smaller than a cell is drawn as a single glyph
func (b *Buffer) Disc(vp Viewport, center vmath.Point, radius float64, fill, stroke core.RGB) {
	if radius <= 0 {
		return
	}

	inside := func(x, y int) bool {
		return vmath.InCircle(vp.ToCanvas(x, y), center, radius)
	}

	covered := false
	x0, y0, x1, y1 := cellSpan(vp, center, radius)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !inside(x, y) {
				continue
			}
			covered = true
			if inside(x-1, y) && inside(x+1, y) && inside(x, y-1) && inside(x, y+1) {
				b.SetBgOnly(x, y, fill)
			} else {
				b.SetBgOnly(x, y, stroke)
			}
		}
	}

	if !covered {
		x, y := vp.ToCell(center)
		b.SetFgOnly(x, y, constant.NodeGlyph, fill)
	}
}

// Line draws glyph along the cells from (x0, y0) to (x1, y1), Bresenham
func (b *Buffer) Line(x0, y0, x1, y1 int, glyph rune, fg core.RGB) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		b.SetFgOnly(x0, y0, glyph, fg)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
