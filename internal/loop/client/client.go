// Package client runs the terminal front end: it turns key presses into
// cannon commands and draws the latest snapshot on its own frame clock.
package client

import (
	"bufio"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/rockfall/internal/input"
	"github.com/tomz197/rockfall/internal/loop/config"
	"github.com/tomz197/rockfall/internal/loop/scheduler"
	"github.com/tomz197/rockfall/internal/loop/sim"
)

// Options configures the client.
type Options struct {
	FrameTime time.Duration // Defaults to config.ClientTargetFrameTime
	Logger    *log.Logger   // Defaults to the global logger
}

// Client handles rendering and input for a single player.
type Client struct {
	ctrl        scheduler.Controller
	renderer    Renderer
	inputStream *input.Stream
	frameTime   time.Duration
	logger      *log.Logger

	// Direction last sent to the controller
	moving    bool
	direction sim.Direction
}

// NewClient creates a client reading keys from r and driving ctrl.
func NewClient(ctrl scheduler.Controller, r *bufio.Reader, renderer Renderer, opts Options) *Client {
	if opts.FrameTime <= 0 {
		opts.FrameTime = config.ClientTargetFrameTime
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	return &Client{
		ctrl:        ctrl,
		renderer:    renderer,
		inputStream: input.StartStream(r),
		frameTime:   opts.FrameTime,
		logger:      opts.Logger,
	}
}

// Run starts the client loop. Blocks until the player quits, the input
// closes or the context is cancelled.
func (c *Client) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		frameStart := time.Now()

		inp := input.ReadInput(c.inputStream)
		if inp.Quit || inp.Closed {
			c.logger.Debug("client quit", "closed", inp.Closed)
			return nil
		}
		c.handleInput(inp)

		status := Status{FPS: c.ctrl.FPS(), Paused: c.ctrl.Paused()}
		if err := c.renderer.Render(c.ctrl.Snapshot(), status); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}

		// Frame timing
		if wait := c.frameTime - time.Since(frameStart); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil
			case <-timer.C:
			}
		}
	}
}

// handleInput forwards the frame's keys to the controller.
func (c *Client) handleInput(inp input.Input) {
	switch {
	case inp.Left && !inp.Right:
		c.steer(true, sim.DirectionLeft)
	case inp.Right && !inp.Left:
		c.steer(true, sim.DirectionRight)
	default:
		c.steer(false, 0)
	}

	if inp.Number >= 0 {
		fps := config.FPSForDigit(inp.Number)
		c.ctrl.SetFPS(fps)
		c.logger.Debug("speed key", "digit", inp.Number, "fps", fps)
	}

	if inp.Pause {
		paused := c.ctrl.TogglePause()
		c.logger.Debug("pause key", "paused", paused)
	}
}

// steer sends a press or release only when the held direction changes.
func (c *Client) steer(moving bool, d sim.Direction) {
	if moving == c.moving && (!moving || d == c.direction) {
		return
	}
	if moving {
		c.ctrl.Press(d)
	} else {
		c.ctrl.Release()
	}
	c.moving, c.direction = moving, d
}
