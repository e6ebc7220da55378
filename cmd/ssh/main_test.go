package main

import "testing"

func TestSizeTracker(t *testing.T) {
	s := newSizeTracker(80, 24)

	w, h, err := s.getSize()
	if err != nil || w != 80 || h != 24 {
		t.Fatalf("getSize() = (%d, %d, %v), want (80, 24, nil)", w, h, err)
	}

	s.update(120, 40)
	w, h, _ = s.getSize()
	if w != 120 || h != 40 {
		t.Errorf("after update getSize() = (%d, %d), want (120, 40)", w, h)
	}
}
