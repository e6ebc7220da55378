// Package physics provides vector math, shape overlap tests and a
// broad-phase grid for the arena.
package physics

import "math"

// Vector2 is a 2D point or displacement. Values are never mutated in place.
type Vector2 struct {
	X, Y float64
}

// Add returns a + b.
func (a Vector2) Add(b Vector2) Vector2 {
	return Vector2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a - b.
func (a Vector2) Sub(b Vector2) Vector2 {
	return Vector2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale multiplies both components by f.
func (a Vector2) Scale(f float64) Vector2 {
	return Vector2{X: a.X * f, Y: a.Y * f}
}

// Dot returns the dot product of a and b.
func (a Vector2) Dot(b Vector2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Rotate rotates a around the origin by angle radians.
func (a Vector2) Rotate(angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	return Vector2{
		X: a.X*cos - a.Y*sin,
		Y: a.X*sin + a.Y*cos,
	}
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Vector2) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b Vector2) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// CirclesTouch reports whether two circles overlap or touch.
// Touching at exactly r1+r2 counts as a hit.
func CirclesTouch(c1 Vector2, r1 float64, c2 Vector2, r2 float64) bool {
	return Distance(c1, c2) <= r1+r2
}

// CircleIntersectsRect tests a circle against an axis-aligned rectangle
// given by its center and full width/height.
//
// The corner case keeps the arena's historical formula, which subtracts the
// squared y term instead of adding it. Near the corners this reports hits
// that a textbook test would reject.
func CircleIntersectsRect(center Vector2, radius float64, rectCenter Vector2, width, height float64) bool {
	halfW := width / 2
	halfH := height / 2

	d := center.Sub(rectCenter)
	dx := math.Abs(d.X)
	dy := math.Abs(d.Y)

	if dx > halfW+radius || dy > halfH+radius {
		return false
	}
	if dx <= halfW || dy <= halfH {
		return true
	}

	cornerSq := (dx-halfW)*(dx-halfW) - (dy-halfH)*(dy-halfH)
	return cornerSq <= radius*radius
}
