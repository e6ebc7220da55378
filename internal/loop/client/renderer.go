package client

//go:generate go tool mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks

import "github.com/tomz197/rockfall/internal/loop/sim"

// Status is host state shown alongside a snapshot.
type Status struct {
	FPS    int
	Paused bool
}

// Renderer draws one frame from a snapshot. It never feeds anything back
// into the simulation.
type Renderer interface {
	Render(snap *sim.Snapshot, status Status) error
}
