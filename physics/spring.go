package physics

import (
	"math"

	"github.com/lixenwraith/reverb/constant"
)

// Relax nudges a and b toward rest separation.
// Each endpoint receives a quarter of its half-share of the error, so a link
// converges over many ticks and overshoots against the bodies' own motion.
// Coincident bodies have no direction to push along; returns false and leaves both untouched
func Relax(a, b *Body, rest float64) bool {
	dx := a.Pos.X - b.Pos.X
	dy := a.Pos.Y - b.Pos.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return false
	}

	fraction := (rest - dist) / dist / 2
	ox := dx * fraction / constant.LinkCorrectionDivisor
	oy := dy * fraction / constant.LinkCorrectionDivisor

	a.Nudge(ox, oy)
	b.Nudge(-ox, -oy)
	return true
}

// RestLength caps the initial separation of a new link
func RestLength(a, b *Body) float64 {
	dx := a.Pos.X - b.Pos.X
	dy := a.Pos.Y - b.Pos.Y
	return math.Min(math.Sqrt(dx*dx+dy*dy), constant.MaxLinkLength)
}
