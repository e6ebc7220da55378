package object

import (
	"math"

	"github.com/tomz197/rockfall/internal/physics"
)

// Rect is an axis-aligned rectangle anchored at its center. Width and
// Height are full extents.
type Rect struct {
	Body
	Kind   Kind
	Width  float64
	Height float64
}

// NewRect creates a resting rectangle.
func NewRect(kind Kind, center physics.Vector2, width, height float64, color Color, image Image) Rect {
	return Rect{
		Body: Body{
			Center: center,
			Color:  color,
			Image:  image,
		},
		Kind:   kind,
		Width:  width,
		Height: height,
	}
}

// DrawingOrigin returns the top-left corner relative to the center,
// rounded to whole units.
func (r *Rect) DrawingOrigin() physics.Vector2 {
	return physics.Vector2{
		X: -math.Round(r.Width / 2),
		Y: -math.Round(r.Height / 2),
	}
}

// Left returns the x coordinate of the left edge.
func (r *Rect) Left() float64 { return r.Center.X - r.Width/2 }

// Right returns the x coordinate of the right edge.
func (r *Rect) Right() float64 { return r.Center.X + r.Width/2 }

// Top returns the y coordinate of the top edge.
func (r *Rect) Top() float64 { return r.Center.Y - r.Height/2 }
