package vmath

import "math"

// Point is a float64 2D coordinate in canvas space
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// DistSq returns squared euclidean distance without sqrt
func DistSq(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Dist returns euclidean distance between a and b
func Dist(a, b Point) float64 {
	return math.Sqrt(DistSq(a, b))
}

// InCircle reports whether p lies strictly inside the circle (center, radius)
func InCircle(p, center Point, radius float64) bool {
	return DistSq(p, center) < radius*radius
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
