package input

import (
	"bufio"
	"reflect"
	"strings"
	"testing"
	"time"
)

func newTestStream(now *time.Time) *Stream {
	return &Stream{
		ch:  make(chan byte, 128),
		now: func() time.Time { return *now },
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected Input
	}{
		{"nothing", "", Input{Number: -1}},
		{"left_letter", "a", Input{Left: true, Number: -1}},
		{"right_letter", "l", Input{Right: true, Number: -1}},
		{"left_arrow", "\x1b[D", Input{Left: true, Number: -1}},
		{"right_arrow", "\x1b[C", Input{Right: true, Number: -1}},
		{"app_mode_arrow", "\x1bOC", Input{Right: true, Number: -1}},
		{"up_arrow_ignored", "\x1b[A", Input{Number: -1}},
		{"both_directions", "ad", Input{Left: true, Right: true, Number: -1}},
		{"quit", "q", Input{Quit: true, Number: -1}},
		{"ctrl_c", "\x03", Input{Quit: true, Number: -1}},
		{"pause", "p", Input{Pause: true, Number: -1}},
		{"digit", "7", Input{Number: 7}},
		{"last_digit_wins", "30", Input{Number: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Unix(1000, 0)
			s := newTestStream(&now)

			got := s.decode([]byte(tt.in))
			got.Pressed = nil
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("decode(%q) = %+v, want %+v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestDecode_SplitEscapeSequence(t *testing.T) {
	tests := []struct {
		name      string
		reads     []string
		wantLeft  bool
		wantRight bool
		wantQuit  bool
	}{
		{"csi_split_before_final", []string{"\x1b[", "D"}, true, false, false},
		{"csi_split_after_escape", []string{"\x1b", "[C"}, false, true, false},
		{"ss3_split", []string{"x\x1bO", "D"}, true, false, false},
		{"lone_escape_then_key", []string{"\x1b", "q"}, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Unix(1000, 0)
			s := newTestStream(&now)

			first := s.decode([]byte(tt.reads[0]))
			if first.Left || first.Right {
				t.Fatalf("partial sequence decoded as a key: %+v", first)
			}

			got := s.decode([]byte(tt.reads[1]))
			if got.Left != tt.wantLeft || got.Right != tt.wantRight || got.Quit != tt.wantQuit {
				t.Errorf("decode = left %v right %v quit %v, want %v %v %v",
					got.Left, got.Right, got.Quit, tt.wantLeft, tt.wantRight, tt.wantQuit)
			}
		})
	}
}

func TestDecode_DirectionHold(t *testing.T) {
	now := time.Unix(1000, 0)
	s := newTestStream(&now)

	s.decode([]byte("d"))

	now = now.Add(directionHoldDuration / 2)
	if !s.decode(nil).Right {
		t.Error("right released before the hold window ended")
	}

	now = now.Add(directionHoldDuration)
	if s.decode(nil).Right {
		t.Error("right still held after the hold window")
	}
}

func TestDecode_TogglesAreEdgeTriggered(t *testing.T) {
	now := time.Unix(1000, 0)
	s := newTestStream(&now)

	if !s.decode([]byte("p5")).Pause {
		t.Fatal("expected pause")
	}
	next := s.decode(nil)
	if next.Pause || next.Number != -1 {
		t.Errorf("toggle repeated on an empty frame: %+v", next)
	}
}

func TestReadInput_Closed(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("q")))

	deadline := time.Now().Add(5 * time.Second)
	var sawQuit bool
	for time.Now().Before(deadline) {
		in := ReadInput(s)
		sawQuit = sawQuit || in.Quit
		if in.Closed {
			break
		}
		time.Sleep(time.Millisecond)
	}

	if !sawQuit {
		t.Error("quit key lost")
	}
	if !ReadInput(s).Closed {
		t.Error("expected closed stream")
	}
}
