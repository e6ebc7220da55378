// Package object defines the arena's bodies: the moving body every entity
// shares, circles (rocks and bullets) and rectangles (cannon and surface).
package object

import "github.com/tomz197/rockfall/internal/physics"

// Kind tags what an entity is in the game.
type Kind int

const (
	KindRock Kind = iota
	KindBullet
	KindCannon
	KindSurface
	KindBackground
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRock:
		return "rock"
	case KindBullet:
		return "bullet"
	case KindCannon:
		return "cannon"
	case KindSurface:
		return "surface"
	case KindBackground:
		return "background"
	default:
		return "unknown"
	}
}

// Color is a display color name or "#rrggbb" value. The simulation only
// carries it; renderers interpret it.
type Color string

// Image is an opaque handle supplied by the asset loader. Empty means none.
type Image string

// Body is the moving part shared by every entity.
type Body struct {
	Center       physics.Vector2
	Velocity     physics.Vector2
	Acceleration physics.Vector2
	Color        Color
	Image        Image
}

// Integrate advances the body by one tick with explicit Euler steps:
// velocity first, then position with the new velocity.
func (b *Body) Integrate() {
	b.Velocity = b.Velocity.Add(b.Acceleration)
	b.Center = b.Center.Add(b.Velocity)
}
