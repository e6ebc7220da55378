// Package input decodes raw terminal bytes into game keys.
package input

import (
	"bufio"
	"time"
)

// directionHoldDuration is how long a direction key counts as held after its
// last byte. Terminals send no key-up events, so a held key is only visible
// through auto-repeat, which fires well within this window.
const directionHoldDuration = 120 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Left    bool // Held
	Right   bool // Held
	Quit    bool // Pressed this frame
	Pause   bool // Pressed this frame
	Number  int  // Digit pressed this frame, or -1
	Closed  bool // The underlying reader is exhausted
	Pressed []byte
}

// keyState tracks the last time each direction key was seen.
type keyState struct {
	left  time.Time
	right time.Time
}

// Stream delivers input bytes via a channel and tracks held keys.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
	now    func() time.Time

	// Start of an escape sequence cut off by the end of the last read
	pending []byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:  make(chan byte, 128),
		now: time.Now,
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// decodes them, including arrow-key escape sequences.
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	return s.decode(buf)
}

// decode updates key state from buf and builds the frame's Input.
func (s *Stream) decode(buf []byte) Input {
	now := s.now()
	input := Input{Number: -1, Closed: s.closed, Pressed: buf}

	if len(s.pending) > 0 {
		buf = append(s.pending, buf...)
		s.pending = nil
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI (ESC [) and SS3 (ESC O) arrow sequences
		if b == '\x1b' {
			rest := buf[i+1:]
			if len(rest) == 0 || (len(rest) == 1 && isIntroducer(rest[0])) {
				s.pending = append([]byte(nil), buf[i:]...)
				break
			}
			if isIntroducer(rest[0]) {
				switch rest[1] {
				case 'C':
					s.state.right = now
				case 'D':
					s.state.left = now
				}
				i += 2
				continue
			}
		}

		switch b {
		case 'q', 'Q', '\x03': // Ctrl+C arrives as a byte in raw mode
			input.Quit = true
		case 'p', 'P':
			input.Pause = true
		case 'a', 'A', 'h', 'H', 'j', 'J':
			s.state.left = now
		case 'd', 'D', 'l', 'L':
			s.state.right = now
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			input.Number = int(b - '0')
		}
	}

	input.Left = now.Sub(s.state.left) < directionHoldDuration
	input.Right = now.Sub(s.state.right) < directionHoldDuration
	return input
}

func isIntroducer(b byte) bool {
	return b == '[' || b == 'O'
}
