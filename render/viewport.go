package render

import (
	"math"

	"github.com/lixenwraith/reverb/physics"
	"github.com/lixenwraith/reverb/vmath"
)

// Viewport maps the y-up canvas onto a grid of terminal cells with row 0 at the top
type Viewport struct {
	Canvas physics.Bounds
	Cols   int
	Rows   int
}

// NewViewport clamps the grid to at least one cell
func NewViewport(canvas physics.Bounds, cols, rows int) Viewport {
	return Viewport{Canvas: canvas, Cols: max(cols, 1), Rows: max(rows, 1)}
}

// CellWidth returns canvas units per column
func (v Viewport) CellWidth() float64 {
	return v.Canvas.Width / float64(v.Cols)
}

// CellHeight returns canvas units per row
func (v Viewport) CellHeight() float64 {
	return v.Canvas.Height / float64(v.Rows)
}

// ToCell returns the cell containing p; points off the canvas map outside the grid
func (v Viewport) ToCell(p vmath.Point) (x, y int) {
	x = int(math.Floor(p.X / v.CellWidth()))
	y = int(math.Floor((v.Canvas.Height - p.Y) / v.CellHeight()))
	return x, y
}

// ToCanvas returns the canvas point at the center of cell (x, y)
func (v Viewport) ToCanvas(x, y int) vmath.Point {
	return vmath.Point{
		X: (float64(x) + 0.5) * v.CellWidth(),
		Y: v.Canvas.Height - (float64(y)+0.5)*v.CellHeight(),
	}
}
