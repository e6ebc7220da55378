package physics

import (
	"testing"

	"pgregory.net/rapid"
)

func TestSpatialGrid_QueryAround(t *testing.T) {
	g := NewSpatialGrid(100, 100, 10)
	g.Insert(Vector2{X: 5, Y: 5}, 0)
	g.Insert(Vector2{X: 15, Y: 5}, 1)
	g.Insert(Vector2{X: 95, Y: 95}, 2)
	g.Insert(Vector2{X: -30, Y: 200}, 3) // clamped into the bottom-left cell

	seen := map[int]int{}
	g.QueryAround(Vector2{X: 8, Y: 8}, func(i int) bool {
		seen[i]++
		return false
	})

	if seen[0] != 1 || seen[1] != 1 {
		t.Errorf("expected neighbours 0 and 1 once each, got %v", seen)
	}
	if _, ok := seen[2]; ok {
		t.Error("far item 2 should not be visited")
	}

	seen = map[int]int{}
	g.QueryAround(Vector2{X: 2, Y: 98}, func(i int) bool {
		seen[i]++
		return false
	})
	if seen[3] != 1 {
		t.Errorf("clamped item 3 not found: %v", seen)
	}
}

func TestSpatialGrid_StopEarly(t *testing.T) {
	g := NewSpatialGrid(50, 50, 10)
	for i := 0; i < 5; i++ {
		g.Insert(Vector2{X: 1, Y: 1}, i)
	}

	calls := 0
	g.QueryAround(Vector2{X: 1, Y: 1}, func(int) bool {
		calls++
		return true
	})
	if calls != 1 {
		t.Errorf("expected 1 call after early stop, got %d", calls)
	}
}

func TestSpatialGrid_Clear(t *testing.T) {
	g := NewSpatialGrid(50, 50, 10)
	g.Insert(Vector2{X: 1, Y: 1}, 7)
	g.Clear()

	g.QueryAround(Vector2{X: 1, Y: 1}, func(i int) bool {
		t.Errorf("unexpected item %d after Clear", i)
		return false
	})
}

// Every point within one cell size of the query must be reported exactly
// once, including points outside the arena.
func TestSpatialGrid_MatchesBruteForce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cell := rapid.Float64Range(5, 40).Draw(t, "cell")
		g := NewSpatialGrid(100, 80, cell)

		n := rapid.IntRange(0, 40).Draw(t, "n")
		points := make([]Vector2, n)
		for i := range points {
			points[i] = Vector2{
				X: rapid.Float64Range(-30, 130).Draw(t, "px"),
				Y: rapid.Float64Range(-30, 110).Draw(t, "py"),
			}
			g.Insert(points[i], i)
		}

		q := Vector2{X: rapid.Float64Range(-30, 130).Draw(t, "qx"), Y: rapid.Float64Range(-30, 110).Draw(t, "qy")}
		seen := make(map[int]int)
		g.QueryAround(q, func(i int) bool {
			seen[i]++
			return false
		})

		for i, p := range points {
			if seen[i] > 1 {
				t.Fatalf("index %d visited %d times", i, seen[i])
			}
			if Distance(p, q) <= cell && seen[i] == 0 {
				t.Fatalf("point %d at %v within %v of %v was missed", i, p, cell, q)
			}
		}
	})
}
