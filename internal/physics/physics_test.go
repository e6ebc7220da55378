package physics

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

const eps = 1e-9

func TestVector2_Arithmetic(t *testing.T) {
	a := Vector2{X: 3, Y: 4}
	b := Vector2{X: 1, Y: -2}

	if got := a.Add(b); got != (Vector2{X: 4, Y: 2}) {
		t.Errorf("Add() = %v, want {4 2}", got)
	}
	if got := a.Sub(b); got != (Vector2{X: 2, Y: 6}) {
		t.Errorf("Sub() = %v, want {2 6}", got)
	}
	if got := a.Scale(0.5); got != (Vector2{X: 1.5, Y: 2}) {
		t.Errorf("Scale() = %v, want {1.5 2}", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot() = %v, want -5", got)
	}
	if got := Distance(a, Vector2{}); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
}

func TestVector2_Rotate(t *testing.T) {
	tests := []struct {
		name  string
		in    Vector2
		angle float64
		want  Vector2
	}{
		{"quarter_turn", Vector2{X: 1, Y: 0}, math.Pi / 2, Vector2{X: 0, Y: 1}},
		{"half_turn", Vector2{X: 2, Y: 1}, math.Pi, Vector2{X: -2, Y: -1}},
		{"no_turn", Vector2{X: 2, Y: 1}, 0, Vector2{X: 2, Y: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Rotate(tt.angle)
			if math.Abs(got.X-tt.want.X) > eps || math.Abs(got.Y-tt.want.Y) > eps {
				t.Errorf("Rotate(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestCirclesTouch(t *testing.T) {
	tests := []struct {
		name     string
		c1       Vector2
		r1       float64
		c2       Vector2
		r2       float64
		expected bool
	}{
		{"touching_counts", Vector2{}, 5, Vector2{X: 10}, 5, true},
		{"overlapping", Vector2{}, 5, Vector2{X: 5}, 5, true},
		{"apart", Vector2{}, 5, Vector2{X: 15}, 5, false},
		{"same_center", Vector2{}, 3, Vector2{}, 2, true},
		{"diagonal", Vector2{}, 2, Vector2{X: 3, Y: 4}, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesTouch(tt.c1, tt.r1, tt.c2, tt.r2); got != tt.expected {
				t.Errorf("CirclesTouch() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestCircleIntersectsRect(t *testing.T) {
	rect := Vector2{}
	const w, h = 20.0, 10.0

	tests := []struct {
		name     string
		center   Vector2
		radius   float64
		expected bool
	}{
		{"inside", Vector2{X: 1, Y: 1}, 1, true},
		{"left_of_rect", Vector2{X: -16, Y: 0}, 5, false},
		{"below_rect", Vector2{X: 0, Y: 11}, 5, false},
		{"overlapping_top_edge", Vector2{X: 3, Y: -9}, 5, true},
		{"overlapping_side_edge", Vector2{X: 14, Y: 2}, 5, true},
		// Textbook corner test gives 4^2+4^2 = 32 > 25 here; the arena's
		// formula gives 16-16 = 0 and reports a hit.
		{"corner_uses_difference", Vector2{X: 14, Y: 9}, 5, true},
		{"corner_far", Vector2{X: 15.1, Y: 5.5}, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CircleIntersectsRect(tt.center, tt.radius, rect, w, h)
			if got != tt.expected {
				t.Errorf("CircleIntersectsRect(%v, %v) = %v, expected %v", tt.center, tt.radius, got, tt.expected)
			}
		})
	}
}

func TestCirclesTouch_Symmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c1 := Vector2{X: rapid.Float64Range(-500, 500).Draw(t, "x1"), Y: rapid.Float64Range(-500, 500).Draw(t, "y1")}
		c2 := Vector2{X: rapid.Float64Range(-500, 500).Draw(t, "x2"), Y: rapid.Float64Range(-500, 500).Draw(t, "y2")}
		r1 := rapid.Float64Range(0, 100).Draw(t, "r1")
		r2 := rapid.Float64Range(0, 100).Draw(t, "r2")

		if CirclesTouch(c1, r1, c2, r2) != CirclesTouch(c2, r2, c1, r1) {
			t.Fatalf("asymmetric result for %v/%v and %v/%v", c1, r1, c2, r2)
		}
	})
}

func TestVector2_RotatePreservesLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := Vector2{X: rapid.Float64Range(-1000, 1000).Draw(t, "x"), Y: rapid.Float64Range(-1000, 1000).Draw(t, "y")}
		angle := rapid.Float64Range(-10, 10).Draw(t, "angle")

		before := Distance(v, Vector2{})
		after := Distance(v.Rotate(angle), Vector2{})
		if math.Abs(before-after) > 1e-6 {
			t.Fatalf("length changed from %v to %v", before, after)
		}
	})
}
