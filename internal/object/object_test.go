package object

import (
	"testing"

	"github.com/tomz197/rockfall/internal/physics"
	"pgregory.net/rapid"
)

func TestBody_Integrate(t *testing.T) {
	b := Body{
		Center:       physics.Vector2{X: 10, Y: 20},
		Velocity:     physics.Vector2{X: 1, Y: -1},
		Acceleration: physics.Vector2{X: 0, Y: 0.5},
	}
	b.Integrate()

	if b.Velocity != (physics.Vector2{X: 1, Y: -0.5}) {
		t.Errorf("velocity = %v, want {1 -0.5}", b.Velocity)
	}
	if b.Center != (physics.Vector2{X: 11, Y: 19.5}) {
		t.Errorf("center = %v, want {11 19.5}", b.Center)
	}
}

func TestBody_IntegrateLaw(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		draw := func(label string) float64 { return rapid.Float64Range(-1e3, 1e3).Draw(t, label) }
		b := Body{
			Center:       physics.Vector2{X: draw("cx"), Y: draw("cy")},
			Velocity:     physics.Vector2{X: draw("vx"), Y: draw("vy")},
			Acceleration: physics.Vector2{X: draw("ax"), Y: draw("ay")},
		}
		before := b
		b.Integrate()

		wantV := before.Velocity.Add(before.Acceleration)
		if b.Velocity != wantV {
			t.Fatalf("velocity = %v, want %v", b.Velocity, wantV)
		}
		if want := before.Center.Add(wantV); b.Center != want {
			t.Fatalf("center = %v, want %v", b.Center, want)
		}
	})
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		KindRock:       "rock",
		KindBullet:     "bullet",
		KindCannon:     "cannon",
		KindSurface:    "surface",
		KindBackground: "background",
		Kind(42):       "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
