package physics

import (
	"github.com/lixenwraith/reverb/constant"
	"github.com/lixenwraith/reverb/vmath"
)

// Bounds is the canvas extent, positions are valid in [0, Width] x [0, Height]
type Bounds struct {
	Width, Height float64
}

// Body is a point mass with implicit velocity: velocity is the displacement
// from Prev to Pos, damped by Friction on every Move
type Body struct {
	Pos  vmath.Point
	Prev vmath.Point
}

// NewBody places a body at pos with Prev offset by (jx, jy) so it starts moving
func NewBody(pos vmath.Point, jx, jy float64) Body {
	return Body{Pos: pos, Prev: vmath.Point{X: pos.X + jx, Y: pos.Y + jy}}
}

// Velocity returns the per-tick displacement Move would apply
func (b *Body) Velocity() vmath.Point {
	return vmath.Point{
		X: (b.Pos.X - b.Prev.X) / constant.Friction,
		Y: (b.Pos.Y - b.Prev.Y) / constant.Friction,
	}
}

// Move integrates one tick and reflects off the bounds
func (b *Body) Move(bounds Bounds) {
	v := b.Velocity()
	b.Prev = b.Pos
	b.Pos.X += v.X
	b.Pos.Y += v.Y

	b.ReflectX(bounds.Width)
	b.ReflectY(bounds.Height)
}

// Place teleports the body without touching Prev; the jump becomes velocity on the next Move
func (b *Body) Place(p vmath.Point) {
	b.Pos = p
}

// Nudge shifts position only, used by constraint corrections
func (b *Body) Nudge(dx, dy float64) {
	b.Pos.X += dx
	b.Pos.Y += dy
}

// ReflectX handles horizontal boundary collision, returns true if reflection occurred.
// Prev becomes the unclamped position plus the damped impact velocity, which reverses
// the implicit velocity on the next Move
func (b *Body) ReflectX(width float64) bool {
	if b.Pos.X <= width && b.Pos.X >= 0 {
		return false
	}
	before := b.Pos.X
	b.Pos.X = vmath.Clamp(b.Pos.X, 0, width)
	v := (b.Pos.X - b.Prev.X) / constant.Friction * constant.BounceStrength
	b.Prev.X = before + v
	return true
}

// ReflectY handles vertical boundary collision, returns true if reflection occurred
func (b *Body) ReflectY(height float64) bool {
	if b.Pos.Y <= height && b.Pos.Y >= 0 {
		return false
	}
	before := b.Pos.Y
	b.Pos.Y = vmath.Clamp(b.Pos.Y, 0, height)
	v := (b.Pos.Y - b.Prev.Y) / constant.Friction * constant.BounceStrength
	b.Prev.Y = before + v
	return true
}
