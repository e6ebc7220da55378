package sim

import "github.com/tomz197/rockfall/internal/physics"

// Direction is a horizontal cannon movement command.
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// Press starts moving the cannon in a direction at the configured speed.
// Unknown directions stop it.
func (s *Simulation) Press(d Direction) {
	var vx float64
	switch d {
	case DirectionLeft:
		vx = -s.cfg.CannonSpeed
	case DirectionRight:
		vx = s.cfg.CannonSpeed
	}
	s.cannon.Velocity = physics.Vector2{X: vx}
}

// Release stops the cannon.
func (s *Simulation) Release() {
	s.cannon.Velocity = physics.Vector2{}
}
