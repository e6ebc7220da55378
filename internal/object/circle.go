package object

import "github.com/tomz197/rockfall/internal/physics"

// Circle is a round body with hit points. Rocks and bullets are circles.
type Circle struct {
	Body
	Kind     Kind
	Radius   float64
	Strength int // Current hit points

	originalStrength int  // Hit points at spawn
	destroyed        bool // Marked for removal at the end of the current pass
}

// NewCircle creates a circle whose original strength is its starting strength.
func NewCircle(kind Kind, center physics.Vector2, radius float64, velocity, acceleration physics.Vector2, strength int, color Color, image Image) Circle {
	return Circle{
		Body: Body{
			Center:       center,
			Velocity:     velocity,
			Acceleration: acceleration,
			Color:        color,
			Image:        image,
		},
		Kind:             kind,
		Radius:           radius,
		Strength:         strength,
		originalStrength: strength,
	}
}

// OriginalStrength returns the hit points the circle spawned with.
func (c *Circle) OriginalStrength() int {
	return c.originalStrength
}

// CollidesWithCircle reports whether the two circles overlap or touch.
func (c *Circle) CollidesWithCircle(other *Circle) bool {
	return physics.CirclesTouch(c.Center, c.Radius, other.Center, other.Radius)
}

// CollidesWithRect reports whether the circle overlaps the rectangle.
func (c *Circle) CollidesWithRect(r *Rect) bool {
	return physics.CircleIntersectsRect(c.Center, c.Radius, r.Center, r.Width, r.Height)
}

// Hit removes damage hit points.
func (c *Circle) Hit(damage int) {
	c.Strength -= damage
}

// IsDepleted returns true once the circle has no hit points left.
func (c *Circle) IsDepleted() bool {
	return c.Strength <= 0
}

// MarkDestroyed marks the circle for removal on the next compaction.
func (c *Circle) MarkDestroyed() {
	c.destroyed = true
}

// IsDestroyed returns true if the circle is marked for removal.
func (c *Circle) IsDestroyed() bool {
	return c.destroyed
}

// Top returns the y coordinate of the circle's highest point.
func (c *Circle) Top() float64 { return c.Center.Y - c.Radius }

// Left returns the x coordinate of the circle's leftmost point.
func (c *Circle) Left() float64 { return c.Center.X - c.Radius }

// Right returns the x coordinate of the circle's rightmost point.
func (c *Circle) Right() float64 { return c.Center.X + c.Radius }
