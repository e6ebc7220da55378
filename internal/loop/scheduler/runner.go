package scheduler

//go:generate go tool mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/tomz197/rockfall/internal/loop/config"
	"github.com/tomz197/rockfall/internal/loop/sim"
)

// Controller is the interface clients use to drive a running game.
// Decouples the Client from the Runner so tests can stand in a fake.
type Controller interface {
	Press(d sim.Direction)
	Release()
	SetFPS(fps int)
	FPS() int
	TogglePause() bool
	Paused() bool
	Snapshot() *sim.Snapshot
}

// Compile-time check that Runner implements Controller.
var _ Controller = (*Runner)(nil)

// Command is a cannon input queued for the next tick.
type Command struct {
	Release   bool
	Direction sim.Direction
}

// Options configures a Runner.
type Options struct {
	Scheduler Scheduler   // Defaults to a Timer
	Logger    *log.Logger // Defaults to the global logger
	FPS       int         // Initial tick rate; 0 runs unthrottled
}

// Runner owns a Simulation and ticks it on its own goroutine. All other
// goroutines talk to it through queued commands and published snapshots.
type Runner struct {
	sim      *sim.Simulation
	sched    Scheduler
	logger   *log.Logger
	snapshot atomic.Pointer[sim.Snapshot]
	inputCh  chan Command
	fps      atomic.Int64
	paused   atomic.Bool

	// Direction the client holds, owned by the Run goroutine
	holding bool
	held    sim.Direction
}

// NewRunner creates a runner for s. The simulation must not be used
// directly once Run has been called.
func NewRunner(s *sim.Simulation, opts Options) *Runner {
	if opts.Scheduler == nil {
		opts.Scheduler = NewTimer()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	r := &Runner{
		sim:     s,
		sched:   opts.Scheduler,
		logger:  opts.Logger,
		inputCh: make(chan Command, config.InputBufferSize),
	}
	r.SetFPS(opts.FPS)
	r.snapshot.Store(s.Snapshot())
	return r
}

// Run ticks the simulation until the context is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Debug("simulation started", "fps", r.FPS())
	defer r.logger.Debug("simulation stopped")

	for {
		if err := r.sched.Next(ctx, Interval(r.FPS())); err != nil {
			if errors.Is(err, ErrStopped) {
				return nil
			}
			return err
		}

		// Inputs still apply while paused so a held key takes effect on resume
		r.collectInputs()
		if r.paused.Load() {
			continue
		}

		r.step()
	}
}

// step runs one tick and publishes the result.
func (r *Runner) step() {
	score, level := r.sim.Score(), r.sim.LevelFactor()

	res := r.sim.Tick()
	switch {
	case res.Reset:
		r.logger.Debug("cannon hit, game reset", "score", score, "level", level)
		// The new cannon starts at rest; a key still held keeps steering it
		if r.holding {
			r.sim.Press(r.held)
		}
	case res.LeveledUp:
		r.logger.Info("level up", "level", r.sim.LevelFactor(), "score", r.sim.Score())
	}
	if res.RockSpawned {
		r.logger.Debug("rock spawned", "rocks", len(r.sim.Rocks()))
	}
	if res.Splits > 0 {
		r.logger.Debug("rock split", "count", res.Splits)
	}

	r.snapshot.Store(r.sim.Snapshot())
}

// collectInputs applies all pending commands in arrival order.
func (r *Runner) collectInputs() {
	for {
		select {
		case cmd := <-r.inputCh:
			if cmd.Release {
				r.sim.Release()
			} else {
				r.sim.Press(cmd.Direction)
			}
			r.holding, r.held = !cmd.Release, cmd.Direction
		default:
			return
		}
	}
}

func (r *Runner) send(cmd Command) {
	select {
	case r.inputCh <- cmd:
	default:
		// Input channel full, drop input
	}
}

// Press queues a direction press for the next tick.
func (r *Runner) Press(d sim.Direction) {
	r.send(Command{Direction: d})
}

// Release queues a cannon stop for the next tick.
func (r *Runner) Release() {
	r.send(Command{Release: true})
}

// SetFPS changes the tick rate, clamped to [0, config.MaxFPS].
func (r *Runner) SetFPS(fps int) {
	fps = max(0, min(fps, config.MaxFPS))
	if old := r.fps.Swap(int64(fps)); old != int64(fps) {
		r.logger.Debug("tick rate changed", "fps", fps)
	}
}

// FPS returns the current tick rate.
func (r *Runner) FPS() int {
	return int(r.fps.Load())
}

// TogglePause pauses or resumes ticking and returns the new state.
func (r *Runner) TogglePause() bool {
	for {
		old := r.paused.Load()
		if r.paused.CompareAndSwap(old, !old) {
			r.logger.Debug("pause toggled", "paused", !old)
			return !old
		}
	}
}

// Paused reports whether ticking is paused.
func (r *Runner) Paused() bool {
	return r.paused.Load()
}

// Snapshot returns the latest published state.
func (r *Runner) Snapshot() *sim.Snapshot {
	return r.snapshot.Load()
}
