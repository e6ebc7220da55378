// Package config centralizes all tunable game parameters.
package config

import (
	"math"
	"time"

	"github.com/tomz197/rockfall/internal/object"
	"github.com/tomz197/rockfall/internal/physics"
)

// Arena dimensions in logical units. Rendering scales to fit the terminal.
const (
	ArenaWidth  = 500
	ArenaHeight = 500
)

// Simulation speed
const (
	DefaultFPS = 90 // Simulation ticks per second; 0 means as fast as possible
	MaxFPS     = 1000
)

// Client rendering
const (
	ClientTargetFPS       = 30
	ClientTargetFrameTime = time.Second / ClientTargetFPS
	MaxTermWidth          = 120 // Render area is clamped and centered beyond this
	MaxTermHeight         = 60
)

// Input
const (
	InputBufferSize = 64 // Direction events queued between ticks
)

// Palette holds the display colors of each entity kind.
type Palette struct {
	Cannon  object.Color
	Bullet  object.Color
	Surface object.Color
	Rocks   []object.Color // A new rock picks one at random
}

// Tunables are the fixed parameters of one simulation.
type Tunables struct {
	Width  float64
	Height float64

	LevelScore      int // Score needed for the first level-up; doubles each level
	MinRockStrength int // Strength of a rock spawned at level 0

	RockRadius        float64
	MaxRockVelocity   physics.Vector2
	Gravity           float64
	RockSpawnInterval int // Ticks between rock spawns

	BulletRadius        float64
	BulletVelocity      physics.Vector2
	BulletStrength      int // Strength of a bullet at level 0
	BulletSpawnInterval int // Ticks between bullet pairs

	CannonSpeed float64 // Horizontal speed while a direction is held

	Colors Palette
}

// Default returns the standard tunables for the default arena.
func Default() Tunables {
	return ForArena(ArenaWidth, ArenaHeight)
}

// ForArena returns the standard tunables scaled to an arena.
func ForArena(width, height float64) Tunables {
	return Tunables{
		Width:  width,
		Height: height,

		LevelScore:      200,
		MinRockStrength: 50,

		RockRadius:        math.Round(width / 10),
		MaxRockVelocity:   physics.Vector2{X: 1, Y: 1},
		Gravity:           0.02,
		RockSpawnInterval: 270,

		BulletRadius:        3,
		BulletVelocity:      physics.Vector2{X: 0, Y: -3},
		BulletStrength:      2,
		BulletSpawnInterval: 5,

		CannonSpeed: 2,

		Colors: Palette{
			Cannon:  "red",
			Bullet:  "black",
			Surface: "green",
			Rocks: []object.Color{
				"#264b96",
				"#27b376",
				"#006f3c",
				"#f9a73e",
				"#bf212f",
			},
		},
	}
}

// FPSForDigit maps a speed key to a tick rate: 0 is unthrottled and
// 1..9 select 10..90 ticks per second.
func FPSForDigit(d int) int {
	if d <= 0 {
		return 0
	}
	if d > 9 {
		d = 9
	}
	return d * 10
}
