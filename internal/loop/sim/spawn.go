package sim

import (
	"math"

	"github.com/tomz197/rockfall/internal/object"
	"github.com/tomz197/rockfall/internal/physics"
)

// spawnBullets fires a pair of bullets from the cannon's top edge, one at
// each quarter of its width. Bullets get stronger with every level.
func (s *Simulation) spawnBullets() {
	strength := s.cfg.BulletStrength << s.levelFactor
	offset := math.Round(s.cannon.Width / 4)
	y := s.cannon.Center.Y - math.Round(s.cannon.Height/2)
	color, image := s.cfg.Colors.Bullet, s.images[object.KindBullet]

	s.bullets = append(s.bullets,
		object.NewBullet(physics.Vector2{X: s.cannon.Center.X + offset, Y: y}, s.cfg.BulletRadius, s.cfg.BulletVelocity, strength, color, image),
		object.NewBullet(physics.Vector2{X: s.cannon.Center.X - offset, Y: y}, s.cfg.BulletRadius, s.cfg.BulletVelocity, strength, color, image),
	)
}

// spawnRock drops a new rock in from a random side wall, somewhere in the
// upper half of the arena, drifting away from the wall it entered by.
func (s *Simulation) spawnRock() {
	r := s.cfg.RockRadius

	fromLeft := s.rng.Float64() > 0.5
	y := math.Round(s.rng.Float64()*(s.cfg.Height/2-r)) + r
	vx := (0.5 + s.rng.Float64()/2) * s.cfg.MaxRockVelocity.X
	vy := (2*s.rng.Float64() - 1) * s.cfg.MaxRockVelocity.Y

	x := r
	if !fromLeft {
		x = s.cfg.Width - r
		vx = -vx
	}

	s.rocks = append(s.rocks, object.NewRock(
		physics.Vector2{X: x, Y: y},
		r,
		physics.Vector2{X: vx, Y: vy},
		physics.Vector2{Y: s.cfg.Gravity},
		s.cfg.MinRockStrength<<s.levelFactor,
		s.randomRockColor(),
		s.images[object.KindRock],
	))
}

func (s *Simulation) randomRockColor() object.Color {
	colors := s.cfg.Colors.Rocks
	if len(colors) == 0 {
		return ""
	}
	return colors[s.rng.IntN(len(colors))]
}
