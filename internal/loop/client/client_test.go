package client

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"go.uber.org/mock/gomock"

	"github.com/tomz197/rockfall/internal/input"
	"github.com/tomz197/rockfall/internal/loop/scheduler/mocks"
	"github.com/tomz197/rockfall/internal/loop/sim"
)

func newInputClient(t *testing.T) (*Client, *mocks.MockController) {
	ctrl := mocks.NewMockController(gomock.NewController(t))
	return &Client{ctrl: ctrl, logger: log.New(io.Discard)}, ctrl
}

func TestHandleInput_Steering(t *testing.T) {
	c, ctrl := newInputClient(t)
	gomock.InOrder(
		ctrl.EXPECT().Press(sim.DirectionLeft),
		ctrl.EXPECT().Press(sim.DirectionRight),
		ctrl.EXPECT().Release(),
		ctrl.EXPECT().Press(sim.DirectionLeft),
		ctrl.EXPECT().Release(),
	)

	frames := []input.Input{
		{Left: true, Number: -1},
		{Left: true, Number: -1}, // Still held, nothing sent
		{Right: true, Number: -1},
		{Number: -1},
		{Number: -1},
		{Left: true, Number: -1},
		{Left: true, Right: true, Number: -1}, // Both held cancel out
	}
	for _, f := range frames {
		c.handleInput(f)
	}
}

func TestHandleInput_SpeedKeys(t *testing.T) {
	tests := []struct {
		digit int
		fps   int
	}{
		{0, 0},
		{1, 10},
		{9, 90},
	}

	for _, tt := range tests {
		c, ctrl := newInputClient(t)
		ctrl.EXPECT().SetFPS(tt.fps)
		c.handleInput(input.Input{Number: tt.digit})
	}
}

func TestHandleInput_Pause(t *testing.T) {
	c, ctrl := newInputClient(t)
	ctrl.EXPECT().TogglePause().Return(true)

	c.handleInput(input.Input{Pause: true, Number: -1})
}
