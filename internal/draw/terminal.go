package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	seqClearScreen  = "\033[H\033[2J"
	seqHideCursor   = "\033[?25l"
	seqShowCursor   = "\033[?25h"
	seqEnterAltScrn = "\033[?1049h"
	seqExitAltScrn  = "\033[?1049l"
)

// maxChunkSize caps a single write so a frame leaves in packet-sized pieces
// over SSH instead of one large burst.
const maxChunkSize = 1400

// FrameWriter queues one frame of text and cursor moves and sends it on
// Flush. Positions are 1-based canvas cells shifted by the centering offset.
type FrameWriter struct {
	frame   strings.Builder
	out     *bufio.Writer
	scratch [20]byte
	offCol  int
	offRow  int
}

var _ io.Writer = (*FrameWriter)(nil)

// NewFrameWriter creates a FrameWriter sending frames to w.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{out: bufio.NewWriterSize(w, 8192)}
}

// SetOffset shifts every later position by col columns and row rows.
func (f *FrameWriter) SetOffset(col, row int) {
	f.offCol, f.offRow = col, row
}

// Write queues p as is.
func (f *FrameWriter) Write(p []byte) (int, error) {
	return f.frame.Write(p)
}

// ClearScreen queues a clear of the whole terminal.
func (f *FrameWriter) ClearScreen() {
	f.frame.WriteString(seqClearScreen)
}

// Text queues s at canvas cell (col, row).
func (f *FrameWriter) Text(col, row int, s string) {
	cursorTo(&f.frame, f.scratch[:0], col+f.offCol, row+f.offRow)
	f.frame.WriteString(s)
}

// Pending returns the number of queued bytes.
func (f *FrameWriter) Pending() int {
	return f.frame.Len()
}

// Flush sends the queued frame and starts an empty one.
func (f *FrameWriter) Flush() error {
	data := f.frame.String()
	f.frame.Reset()
	if err := writeChunks(f.out, data); err != nil {
		return err
	}
	return f.out.Flush()
}

// cursorTo appends the move to a 1-based terminal position. scratch avoids
// an allocation per number.
func cursorTo(b *strings.Builder, scratch []byte, col, row int) {
	b.WriteString("\033[")
	b.Write(strconv.AppendInt(scratch, int64(row), 10))
	b.WriteByte(';')
	b.Write(strconv.AppendInt(scratch, int64(col), 10))
	b.WriteByte('H')
}

func writeChunks(w io.Writer, data string) error {
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := io.WriteString(w, data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// TermSizeFunc reports the terminal size in cells.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc reads the size of the local terminal.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen blanks the terminal and homes the cursor.
func ClearScreen(w io.Writer) { _, _ = io.WriteString(w, seqClearScreen) }

// HideCursor stops the cursor from flickering over the arena.
func HideCursor(w io.Writer) { _, _ = io.WriteString(w, seqHideCursor) }

// ShowCursor restores the cursor.
func ShowCursor(w io.Writer) { _, _ = io.WriteString(w, seqShowCursor) }

// EnterAltScreen draws on the alternate buffer, leaving scrollback intact.
func EnterAltScreen(w io.Writer) { _, _ = io.WriteString(w, seqEnterAltScrn) }

// ExitAltScreen returns to the main buffer.
func ExitAltScreen(w io.Writer) { _, _ = io.WriteString(w, seqExitAltScrn) }
