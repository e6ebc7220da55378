// Package sim is the game's simulation: it owns every entity and advances
// the arena one tick at a time. It is passive; hosts call Tick on their own
// schedule and read state through snapshots.
package sim

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/tomz197/rockfall/internal/loop/config"
	"github.com/tomz197/rockfall/internal/object"
	"github.com/tomz197/rockfall/internal/physics"
)

// Images maps entity kinds to the opaque image handles the asset loader
// produced. Missing kinds get no image.
type Images map[object.Kind]object.Image

// TickResult summarizes what happened during one tick.
type TickResult struct {
	Reset       bool // A rock reached the cannon and the game restarted
	RockSpawned bool
	LeveledUp   bool
	Hits        int // Bullets absorbed by rocks
	Splits      int // Rocks that broke into fragments
	Destroyed   int // Rocks removed after running out of strength
}

// Simulation holds the complete game state.
type Simulation struct {
	cfg    config.Tunables
	images Images
	rng    *rand.Rand

	cannon  object.Rect
	surface object.Rect
	rocks   []object.Circle
	bullets []object.Circle

	score       int
	tick        int
	levelFactor int

	// Broad phase for rock-bullet tests, rebuilt each tick.
	bulletGrid *physics.SpatialGrid
	candidates []int
}

// New creates a simulation in its starting state. Equal seeds and equal
// input give identical games.
func New(cfg config.Tunables, images Images, seed uint64) *Simulation {
	if images == nil {
		images = Images{}
	}
	s := &Simulation{
		cfg:        cfg,
		images:     images,
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		bulletGrid: physics.NewSpatialGrid(cfg.Width, cfg.Height, cfg.RockRadius+cfg.BulletRadius),
	}
	s.Reset()
	return s
}

// Reset puts the game back to its starting state: score, tick counter and
// level return to zero, rocks and bullets are cleared, and the cannon and
// surface are rebuilt at their home positions.
func (s *Simulation) Reset() {
	w, h := s.cfg.Width, s.cfg.Height

	s.score = 0
	s.tick = 0
	s.levelFactor = 0

	s.surface = object.NewRect(
		object.KindSurface,
		physics.Vector2{X: math.Round(w / 2), Y: math.Round(h * 11 / 12)},
		w, math.Round(h/6),
		s.cfg.Colors.Surface, s.images[object.KindSurface],
	)
	s.cannon = object.NewRect(
		object.KindCannon,
		physics.Vector2{X: math.Round(w / 2), Y: math.Round(h * 5 / 6)},
		math.Round(w/6), math.Round(h/18),
		s.cfg.Colors.Cannon, s.images[object.KindCannon],
	)

	s.rocks = s.rocks[:0]
	s.bullets = s.bullets[:0]
}

// Tick advances the game by one step.
func (s *Simulation) Tick() TickResult {
	var res TickResult

	s.updateBullets()
	if s.updateRocks(&res) {
		res.Reset = true
		return res
	}

	s.cannon.Integrate()
	s.clampCannon()

	s.tick++
	if s.tick%s.cfg.BulletSpawnInterval == 0 {
		s.spawnBullets()
	}
	if s.tick == s.cfg.RockSpawnInterval {
		s.spawnRock()
		s.tick = 0
		res.RockSpawned = true
	}

	if s.score == s.cfg.LevelScore<<s.levelFactor {
		s.levelFactor++
		res.LeveledUp = true
	}

	return res
}

// updateBullets moves every bullet and drops the ones that left the arena
// through the top or were used up, then indexes the survivors.
func (s *Simulation) updateBullets() {
	for i := range s.bullets {
		b := &s.bullets[i]
		b.Integrate()
		if b.IsAboveArena() || b.IsDepleted() {
			b.MarkDestroyed()
		}
	}
	s.bullets = compact(s.bullets)

	s.bulletGrid.Clear()
	for i := range s.bullets {
		s.bulletGrid.Insert(s.bullets[i].Center, i)
	}
}

// updateRocks runs the rock pass in storage order. Fragments are appended
// to the end and visited later in the same pass. Removals are only marked
// during the pass and compacted afterwards, so every rock is visited
// exactly once. Returns true if a rock hit the cannon and the game was reset.
func (s *Simulation) updateRocks(res *TickResult) bool {
	for i := 0; i < len(s.rocks); i++ {
		r := &s.rocks[i]
		r.Integrate()

		res.Hits += s.absorbBullets(r)

		if r.IsDepleted() {
			r.MarkDestroyed()
			res.Destroyed++
			if s.shouldSplit(r) {
				fragments := r.Split()
				s.rocks = append(s.rocks, fragments[:]...)
				res.Splits++
			}
			continue
		}

		if r.CollidesWithRect(&s.cannon) {
			s.Reset()
			return true
		}

		if r.CollidesWithRect(&s.surface) || r.Top() < 0 {
			r.Velocity.Y = -r.Velocity.Y
		}
		if r.Left() < 0 || r.Right() > s.cfg.Width {
			r.Velocity.X = -r.Velocity.X
		}
	}

	s.rocks = compact(s.rocks)
	s.bullets = compact(s.bullets)
	return false
}

// absorbBullets applies every live bullet touching r: the rock loses the
// bullet's strength, the score gains it and the bullet is spent.
func (s *Simulation) absorbBullets(r *object.Circle) int {
	s.candidates = s.candidates[:0]
	if r.Radius+s.cfg.BulletRadius <= s.bulletGrid.CellSize() {
		s.bulletGrid.QueryAround(r.Center, func(i int) bool {
			s.candidates = append(s.candidates, i)
			return false
		})
		slices.Sort(s.candidates)
	} else {
		for i := range s.bullets {
			s.candidates = append(s.candidates, i)
		}
	}

	hits := 0
	for _, i := range s.candidates {
		b := &s.bullets[i]
		if b.IsDestroyed() || !r.CollidesWithCircle(b) {
			continue
		}
		r.Hit(b.Strength)
		s.score += b.Strength
		b.MarkDestroyed()
		hits++
	}
	return hits
}

// shouldSplit reports whether a depleted rock is big enough, for the
// current level, to break into fragments.
func (s *Simulation) shouldSplit(r *object.Circle) bool {
	original := float64(r.OriginalStrength())
	minStrength := float64(s.cfg.MinRockStrength)
	return original >= minStrength*math.Pow(2, float64(s.levelFactor-3)) &&
		original >= 2*minStrength
}

// clampCannon pushes the cannon back inside the arena when an edge crosses
// a side wall.
func (s *Simulation) clampCannon() {
	half := math.Round(s.cannon.Width / 2)
	if s.cannon.Left() < 0 {
		s.cannon.Center.X = half
	}
	if s.cannon.Right() > s.cfg.Width {
		s.cannon.Center.X = s.cfg.Width - half
	}
}

// compact drops circles marked for removal, reusing the backing array.
func compact(circles []object.Circle) []object.Circle {
	kept := circles[:0]
	for _, c := range circles {
		if !c.IsDestroyed() {
			kept = append(kept, c)
		}
	}
	clear(circles[len(kept):])
	return kept
}
