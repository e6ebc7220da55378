package sim

import (
	"slices"

	"github.com/tomz197/rockfall/internal/object"
)

// Snapshot is an immutable copy of the game state, safe to hand to another
// goroutine for rendering.
type Snapshot struct {
	Width, Height float64

	Cannon  object.Rect
	Surface object.Rect
	Rocks   []object.Circle
	Bullets []object.Circle

	Background  object.Image
	Score       int
	LevelFactor int
	Tick        int
}

// Snapshot copies the current state.
func (s *Simulation) Snapshot() *Snapshot {
	return &Snapshot{
		Width:       s.cfg.Width,
		Height:      s.cfg.Height,
		Cannon:      s.cannon,
		Surface:     s.surface,
		Rocks:       slices.Clone(s.rocks),
		Bullets:     slices.Clone(s.bullets),
		Background:  s.images[object.KindBackground],
		Score:       s.score,
		LevelFactor: s.levelFactor,
		Tick:        s.tick,
	}
}

// Score returns the current score.
func (s *Simulation) Score() int { return s.score }

// LevelFactor returns the current level, starting at 0.
func (s *Simulation) LevelFactor() int { return s.levelFactor }

// TickCount returns the ticks elapsed since the last rock spawn.
func (s *Simulation) TickCount() int { return s.tick }

// Cannon returns a copy of the cannon.
func (s *Simulation) Cannon() object.Rect { return s.cannon }

// Surface returns a copy of the ground surface.
func (s *Simulation) Surface() object.Rect { return s.surface }

// Rocks returns a copy of the live rocks.
func (s *Simulation) Rocks() []object.Circle { return slices.Clone(s.rocks) }

// Bullets returns a copy of the live bullets.
func (s *Simulation) Bullets() []object.Circle { return slices.Clone(s.bullets) }
