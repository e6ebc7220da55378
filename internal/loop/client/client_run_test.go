package client_test

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"go.uber.org/mock/gomock"

	"github.com/tomz197/rockfall/internal/loop/client"
	"github.com/tomz197/rockfall/internal/loop/client/mocks"
	schedmocks "github.com/tomz197/rockfall/internal/loop/scheduler/mocks"
	"github.com/tomz197/rockfall/internal/loop/sim"
)

func newGame(t *testing.T) (*schedmocks.MockController, *mocks.MockRenderer) {
	ctrl := gomock.NewController(t)
	game := schedmocks.NewMockController(ctrl)
	game.EXPECT().Snapshot().Return(&sim.Snapshot{}).AnyTimes()
	game.EXPECT().FPS().Return(90).AnyTimes()
	game.EXPECT().Paused().Return(false).AnyTimes()
	return game, mocks.NewMockRenderer(ctrl)
}

func runClient(t *testing.T, ctx context.Context, c *client.Client) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	return done
}

func waitRun(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("client did not stop")
		return nil
	}
}

var opts = client.Options{FrameTime: time.Millisecond, Logger: log.New(io.Discard)}

func TestRun_QuitKey(t *testing.T) {
	game, renderer := newGame(t)
	renderer.EXPECT().Render(gomock.Any(), client.Status{FPS: 90}).Return(nil).AnyTimes()

	c := client.NewClient(game, bufio.NewReader(strings.NewReader("q")), renderer, opts)
	if err := waitRun(t, runClient(t, context.Background(), c)); err != nil {
		t.Errorf("Run() = %v, want nil", err)
	}
}

func TestRun_SteersThenQuits(t *testing.T) {
	game, renderer := newGame(t)
	renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	pressed := make(chan struct{})
	game.EXPECT().Press(sim.DirectionRight).Do(func(sim.Direction) { close(pressed) })
	game.EXPECT().Release().AnyTimes()

	pr, pw := io.Pipe()
	defer pw.Close()
	c := client.NewClient(game, bufio.NewReader(pr), renderer, opts)
	done := runClient(t, context.Background(), c)

	if _, err := pw.Write([]byte("d")); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case <-pressed:
	case <-time.After(5 * time.Second):
		t.Fatal("no press reached the controller")
	}

	if _, err := pw.Write([]byte("q")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := waitRun(t, done); err != nil {
		t.Errorf("Run() = %v, want nil", err)
	}
}

func TestRun_ContextCancel(t *testing.T) {
	game, renderer := newGame(t)
	renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	pr, pw := io.Pipe()
	defer pw.Close()
	ctx, cancel := context.WithCancel(context.Background())
	c := client.NewClient(game, bufio.NewReader(pr), renderer, opts)
	done := runClient(t, ctx, c)

	time.Sleep(20 * time.Millisecond)
	cancel()
	if err := waitRun(t, done); err != nil {
		t.Errorf("Run() = %v, want nil", err)
	}
}

func TestRun_RenderError(t *testing.T) {
	game, renderer := newGame(t)
	boom := errors.New("broken pipe")
	renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(boom)

	pr, pw := io.Pipe()
	defer pw.Close()
	c := client.NewClient(game, bufio.NewReader(pr), renderer, opts)

	err := waitRun(t, runClient(t, context.Background(), c))
	if !errors.Is(err, boom) {
		t.Errorf("Run() = %v, want %v", err, boom)
	}
}
