package object

import (
	"math"

	"github.com/tomz197/rockfall/internal/physics"
)

// splitRadiusDivisor shrinks a child rock's radius relative to its parent.
const splitRadiusDivisor = 1.4

// NewRock creates a rock.
func NewRock(center physics.Vector2, radius float64, velocity, acceleration physics.Vector2, strength int, color Color, image Image) Circle {
	return NewCircle(KindRock, center, radius, velocity, acceleration, strength, color, image)
}

// Split returns the two fragments of a destroyed rock. They sit at the
// parent's left and right edges, move apart horizontally, head upwards and
// carry half the parent's original strength. Color, image and acceleration
// are inherited.
func (c *Circle) Split() [2]Circle {
	radius := math.Round(c.Radius / splitRadiusDivisor)
	strength := int(math.Round(float64(c.originalStrength) / 2))
	vy := -math.Abs(c.Velocity.Y)

	left := NewRock(
		physics.Vector2{X: c.Center.X - radius, Y: c.Center.Y},
		radius,
		physics.Vector2{X: -c.Velocity.X, Y: vy},
		c.Acceleration,
		strength, c.Color, c.Image,
	)
	right := NewRock(
		physics.Vector2{X: c.Center.X + radius, Y: c.Center.Y},
		radius,
		physics.Vector2{X: c.Velocity.X, Y: vy},
		c.Acceleration,
		strength, c.Color, c.Image,
	)
	return [2]Circle{left, right}
}
