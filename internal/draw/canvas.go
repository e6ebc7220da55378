// Package draw renders the arena to a terminal using colored half-block
// characters, two sub-pixels per terminal cell.
package draw

import (
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Point is a position in logical arena coordinates.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
	BlockEmpty     = ' '
)

// maxInks is the number of distinct colors a canvas can hold, background included.
const maxInks = 256

// cellKey identifies what a terminal cell shows: the inks of its two sub-pixels.
type cellKey struct {
	top, bottom uint8
}

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
// Render only rewrites cells that changed since the previous frame.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []uint8 // Flat slice: [y * termWidth + x] ink index, 0 is background

	// What each terminal cell showed after the last Render
	shown []cellKey
	dirty []bool

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderer *lipgloss.Renderer
	inks     []string         // Ink index to color; inks[0] is the background
	inkIndex map[string]uint8 // Color to ink index
	cells    map[cellKey]string

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by the arena.
// termWidth/Height are the actual terminal dimensions. Colors are rendered
// for the renderer's color profile.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64, renderer *lipgloss.Renderer) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		renderer:      renderer,
		inks:          []string{""},
		inkIndex:      map[string]uint8{"": 0},
		cells:         make(map[cellKey]string),
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 0)
	termHeight = max(termHeight, 0)
	subPixelHeight := termHeight * 2

	// Reallocate if size changed
	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.pixels = make([]uint8, subPixelHeight*termWidth)
		c.shown = make([]cellKey, termHeight*termWidth)
		c.dirty = make([]bool, termHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
		c.ForceRedraw()
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.ForceRedraw()
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// SetBackground sets the color of undrawn pixels. An empty color leaves
// the terminal's own background showing.
func (c *Canvas) SetBackground(color string) {
	if c.inks[0] == color {
		return
	}
	delete(c.inkIndex, c.inks[0])
	c.inks[0] = color
	c.inkIndex[color] = 0
	clear(c.cells)
	c.ForceRedraw()
}

// ForceRedraw makes the next Render rewrite every cell.
func (c *Canvas) ForceRedraw() {
	for i := range c.dirty {
		c.dirty[i] = true
	}
}

// MarkTextDirty flags n cells starting at a 1-based canvas position as
// overwritten by text, so the next Render restores them.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	if row < 1 || row > c.termHeight {
		return
	}
	rowOffset := (row - 1) * c.termWidth
	for x := max(col-1, 0); x < min(col-1+n, c.termWidth); x++ {
		c.dirty[rowOffset+x] = true
	}
}

// Clear resets all pixels to the background.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ink returns the index of color, registering it on first use. Once the
// canvas is full, new colors draw with the last registered ink.
func (c *Canvas) ink(color string) uint8 {
	if idx, ok := c.inkIndex[color]; ok {
		return idx
	}
	if len(c.inks) >= maxInks {
		return uint8(maxInks - 1)
	}
	idx := uint8(len(c.inks))
	c.inks = append(c.inks, color)
	c.inkIndex[color] = idx
	return idx
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, ink uint8) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = ink
	}
}

// Pixel returns the color at sub-pixel (x, y), or "" outside the canvas.
func (c *Canvas) Pixel(x, y int) string {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return ""
	}
	return c.inks[c.pixels[y*c.termWidth+x]]
}

// FillRect fills an axis-aligned rectangle given by its top-left corner
// and size in logical coordinates.
func (c *Canvas) FillRect(x, y, width, height float64, color string) {
	ink := c.ink(color)
	x0 := int(math.Round(x * c.scaleX))
	x1 := int(math.Round((x + width) * c.scaleX))
	y0 := int(math.Round(y * c.scaleY))
	y1 := int(math.Round((y + height) * c.scaleY))

	x0, x1 = max(x0, 0), min(x1, c.termWidth)
	y0, y1 = max(y0, 0), min(y1, c.subPixelHeight)
	for py := y0; py < y1; py++ {
		row := c.pixels[py*c.termWidth : (py+1)*c.termWidth]
		for px := x0; px < x1; px++ {
			row[px] = ink
		}
	}
}

// FillCircle fills every pixel whose center lies inside the circle. Circles
// smaller than a pixel still cover the pixel under their center.
func (c *Canvas) FillCircle(center Point, radius float64, color string) {
	ink := c.ink(color)

	x0 := int(math.Floor((center.X - radius) * c.scaleX))
	x1 := int(math.Ceil((center.X + radius) * c.scaleX))
	y0 := int(math.Floor((center.Y - radius) * c.scaleY))
	y1 := int(math.Ceil((center.Y + radius) * c.scaleY))
	r2 := radius * radius

	filled := false
	for py := max(y0, 0); py <= min(y1, c.subPixelHeight-1); py++ {
		ly := (float64(py)+0.5)/c.scaleY - center.Y
		for px := max(x0, 0); px <= min(x1, c.termWidth-1); px++ {
			lx := (float64(px)+0.5)/c.scaleX - center.X
			if lx*lx+ly*ly <= r2 {
				c.pixels[py*c.termWidth+px] = ink
				filled = true
			}
		}
	}

	if !filled {
		c.setPixel(int(center.X*c.scaleX), int(center.Y*c.scaleY), ink)
	}
}

// Render outputs the changed cells to the writer using half-block characters.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth
		contiguous := false

		for col := 0; col < c.termWidth; col++ {
			i := row*c.termWidth + col
			key := cellKey{top: c.pixels[topOffset+col], bottom: c.pixels[bottomOffset+col]}
			if !c.dirty[i] && c.shown[i] == key {
				contiguous = false
				continue
			}

			if !contiguous {
				c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			}
			c.renderBuf.WriteString(c.cell(key))
			c.shown[i] = key
			c.dirty[i] = false
			contiguous = true
		}
	}

	return writeChunks(w, c.renderBuf.String())
}

func (c *Canvas) moveCursor(col, row int) {
	cursorTo(&c.renderBuf, c.numBuf[:0], col, row)
}

// cell returns the styled text for a terminal cell, cached per ink pair.
func (c *Canvas) cell(key cellKey) string {
	if s, ok := c.cells[key]; ok {
		return s
	}

	bg := c.inks[0]
	var ch rune
	var fg, back string
	switch {
	case key.top == 0 && key.bottom == 0:
		ch, back = BlockEmpty, bg
	case key.top == key.bottom:
		ch, fg = BlockFull, c.inks[key.top]
	case key.bottom == 0:
		ch, fg, back = BlockUpperHalf, c.inks[key.top], bg
	case key.top == 0:
		ch, fg, back = BlockLowerHalf, c.inks[key.bottom], bg
	default:
		ch, fg, back = BlockUpperHalf, c.inks[key.top], c.inks[key.bottom]
	}

	style := c.renderer.NewStyle()
	if fg != "" {
		style = style.Foreground(lipgloss.Color(ColorHex(fg)))
	}
	if back != "" {
		style = style.Background(lipgloss.Color(ColorHex(back)))
	}
	s := style.Render(string(ch))
	c.cells[key] = s
	return s
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return nil
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	c.renderBuf.Reset()
	if hasV {
		if hasH {
			c.moveCursor(left, top)
			c.renderBuf.WriteString("┌" + line + "┐")
			c.moveCursor(left, bottom)
			c.renderBuf.WriteString("└" + line + "┘")
		} else {
			c.moveCursor(c.offsetCol+1, top)
			c.renderBuf.WriteString(line)
			c.moveCursor(c.offsetCol+1, bottom)
			c.renderBuf.WriteString(line)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			c.moveCursor(left, row)
			c.renderBuf.WriteString("│")
			c.moveCursor(right, row)
			c.renderBuf.WriteString("│")
		}
	}

	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

// LogicalWidth returns the logical width (target resolution).
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height (target resolution).
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based canvas position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}
