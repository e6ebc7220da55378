package object

import "github.com/tomz197/rockfall/internal/physics"

// NewBullet creates a bullet. Bullets fly at constant velocity.
func NewBullet(center physics.Vector2, radius float64, velocity physics.Vector2, strength int, color Color, image Image) Circle {
	return NewCircle(KindBullet, center, radius, velocity, physics.Vector2{}, strength, color, image)
}

// IsAboveArena reports whether the bullet's center has left the top edge.
func (c *Circle) IsAboveArena() bool {
	return c.Center.Y < 0
}
