package scene

import (
	"github.com/lixenwraith/reverb/constant"
	"github.com/lixenwraith/reverb/physics"
	"github.com/lixenwraith/reverb/vmath"
)

// BlackHole is the fixed circular deletion region
type BlackHole struct {
	Center vmath.Point
	Radius float64
}

// DefaultBlackHole centers the region horizontally, mostly below the canvas bottom edge
func DefaultBlackHole(bounds physics.Bounds) BlackHole {
	return BlackHole{
		Center: vmath.Pt(bounds.Width/2, constant.BlackHoleOffsetY),
		Radius: constant.BlackHoleRadius,
	}
}

// Contains reports whether p is strictly inside the region
func (b BlackHole) Contains(p vmath.Point) bool {
	return vmath.InCircle(p, b.Center, b.Radius)
}
