// Package loop wires one game session together: assets, simulation,
// tick scheduler and terminal client.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/rockfall/internal/assets"
	"github.com/tomz197/rockfall/internal/draw"
	"github.com/tomz197/rockfall/internal/loop/client"
	"github.com/tomz197/rockfall/internal/loop/config"
	"github.com/tomz197/rockfall/internal/loop/scheduler"
	"github.com/tomz197/rockfall/internal/loop/sim"
)

// Options configures a session.
type Options struct {
	Logger       *log.Logger        // Defaults to the global logger
	Seed         uint64             // Rock spawn seed; 0 picks one from the clock
	FPS          int                // Initial tick rate; 0 runs unthrottled
	FrameTime    time.Duration      // Client frame time; defaults to config.ClientTargetFrameTime
	TermSizeFunc draw.TermSizeFunc  // Defaults to the size of os.Stdout
	Lipgloss     *lipgloss.Renderer // Defaults to one detected from w
	Loader       assets.Loader      // Defaults to the built-in glyphs
	Background   string             // Arena color; empty keeps the terminal's own
}

// Run plays one game reading keys from r and drawing to w. It returns when
// the player quits, the input closes or ctx is cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Loader == nil {
		opts.Loader = assets.Glyphs()
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	logger := opts.Logger

	set, err := opts.Loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}

	game := sim.New(config.Default(), set.Images, opts.Seed)
	runner := scheduler.NewRunner(game, scheduler.Options{
		Logger: logger,
		FPS:    opts.FPS,
	})
	renderer := client.NewTerminalRenderer(w, client.RendererOptions{
		TermSizeFunc: opts.TermSizeFunc,
		Lipgloss:     opts.Lipgloss,
		Sprites:      set.Sprites,
		Background:   opts.Background,
	})
	c := client.NewClient(runner, r, renderer, client.Options{
		FrameTime: opts.FrameTime,
		Logger:    logger,
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return runner.Run(ctx)
	})
	eg.Go(func() error {
		// Stop the simulation once the player is gone
		defer cancel()

		renderer.Begin()
		defer renderer.End()
		return c.Run(ctx)
	})

	logger.Info("game started", "seed", opts.Seed, "fps", opts.FPS)
	err = eg.Wait()
	snap := runner.Snapshot()
	logger.Info("game ended", "score", snap.Score, "level", snap.LevelFactor)
	return err
}
