package client

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/rockfall/internal/assets"
	"github.com/tomz197/rockfall/internal/draw"
	"github.com/tomz197/rockfall/internal/loop/config"
	"github.com/tomz197/rockfall/internal/loop/sim"
	"github.com/tomz197/rockfall/internal/object"
)

// RendererOptions configures a TerminalRenderer.
type RendererOptions struct {
	TermSizeFunc draw.TermSizeFunc  // Defaults to the size of os.Stdout
	Lipgloss     *lipgloss.Renderer // Color profile of the output; defaults to one detected from w
	Sprites      assets.Library     // Sprites behind image handles
	Background   string             // Arena color; empty keeps the terminal's own
}

// hudStyles are the text styles of the overlay.
type hudStyles struct {
	score  lipgloss.Style
	info   lipgloss.Style
	paused lipgloss.Style
	title  lipgloss.Style
}

// TerminalRenderer draws snapshots to an ANSI terminal.
type TerminalRenderer struct {
	out          io.Writer
	frame        *draw.FrameWriter // Queues one frame of output
	canvas       *draw.Canvas      // Created on the first frame, sized to the arena
	termSizeFunc draw.TermSizeFunc
	lipgloss     *lipgloss.Renderer
	sprites      assets.Library
	background   string
	styles       hudStyles
}

var _ Renderer = (*TerminalRenderer)(nil)

// NewTerminalRenderer creates a renderer writing to w.
func NewTerminalRenderer(w io.Writer, opts RendererOptions) *TerminalRenderer {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Lipgloss == nil {
		opts.Lipgloss = lipgloss.NewRenderer(w)
	}

	lr := opts.Lipgloss
	return &TerminalRenderer{
		out:          w,
		frame:        draw.NewFrameWriter(w),
		termSizeFunc: opts.TermSizeFunc,
		lipgloss:     lr,
		sprites:      opts.Sprites,
		background:   opts.Background,
		styles: hudStyles{
			score:  lr.NewStyle().Bold(true),
			info:   lr.NewStyle().Faint(true),
			paused: lr.NewStyle().Bold(true).Reverse(true).Padding(0, 1),
			title:  lr.NewStyle().Faint(true),
		},
	}
}

// Begin prepares the terminal for drawing.
func (r *TerminalRenderer) Begin() {
	draw.EnterAltScreen(r.out)
	draw.HideCursor(r.out)
	draw.ClearScreen(r.out)
}

// End restores the terminal.
func (r *TerminalRenderer) End() {
	draw.ClearScreen(r.out)
	draw.ShowCursor(r.out)
	draw.ExitAltScreen(r.out)
}

// Render implements Renderer.
func (r *TerminalRenderer) Render(snap *sim.Snapshot, status Status) error {
	if snap == nil {
		return nil
	}
	if err := r.updateScreen(snap); err != nil {
		return err
	}
	c := r.canvas
	c.Clear()

	r.fillRect(&snap.Surface)
	r.fillRect(&snap.Cannon)
	for i := range snap.Rocks {
		rock := &snap.Rocks[i]
		c.FillCircle(draw.Point{X: rock.Center.X, Y: rock.Center.Y}, rock.Radius, string(rock.Color))
	}
	for i := range snap.Bullets {
		b := &snap.Bullets[i]
		c.FillCircle(draw.Point{X: b.Center.X, Y: b.Center.Y}, b.Radius, string(b.Color))
	}

	if err := c.Render(r.frame); err != nil {
		return err
	}
	if err := c.RenderBorder(r.frame); err != nil {
		return err
	}

	r.drawSprites(snap)
	r.drawRockLabels(snap.Rocks)
	r.drawHUD(snap, status)

	return r.frame.Flush()
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (r *TerminalRenderer) updateScreen(snap *sim.Snapshot) error {
	termWidth, termHeight, err := r.termSizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if r.canvas == nil {
		r.canvas = draw.NewScaledCanvas(renderWidth, renderHeight, snap.Width, snap.Height, r.lipgloss)
		r.canvas.SetBackground(r.background)
	} else if renderWidth != r.canvas.TerminalWidth() || renderHeight != r.canvas.TerminalHeight() ||
		offsetCol != r.canvas.OffsetCol() || offsetRow != r.canvas.OffsetRow() {
		r.frame.ClearScreen()
		r.canvas.ForceRedraw()
	}

	r.canvas.Resize(renderWidth, renderHeight)
	r.canvas.SetOffset(offsetCol, offsetRow)
	r.frame.SetOffset(offsetCol, offsetRow)
	return nil
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

func (r *TerminalRenderer) fillRect(rect *object.Rect) {
	origin := rect.DrawingOrigin()
	r.canvas.FillRect(rect.Center.X+origin.X, rect.Center.Y+origin.Y, rect.Width, rect.Height, string(rect.Color))
}

// text writes s at a 1-based canvas position if it fits, and marks the
// cells so the canvas repaints them on the next frame.
func (r *TerminalRenderer) text(col, row, width int, s string) {
	if row < 1 || row > r.canvas.TerminalHeight() || col < 1 || col+width-1 > r.canvas.TerminalWidth() {
		return
	}
	r.frame.Text(col, row, s)
	r.canvas.MarkTextDirty(col, row, width)
}

// drawSprites overlays the sprite of every entity carrying an image.
func (r *TerminalRenderer) drawSprites(snap *sim.Snapshot) {
	if len(r.sprites) == 0 {
		return
	}

	if s, ok := r.sprites[snap.Background]; ok {
		for i, line := range s.Lines {
			col := (r.canvas.TerminalWidth()-s.Width)/2 + 1
			r.text(col, 2+i, s.Width, r.styles.title.Render(line))
		}
	}

	r.drawSprite(&snap.Surface.Body)
	r.drawSprite(&snap.Cannon.Body)
	for i := range snap.Rocks {
		r.drawSprite(&snap.Rocks[i].Body)
	}
	for i := range snap.Bullets {
		r.drawSprite(&snap.Bullets[i].Body)
	}
}

func (r *TerminalRenderer) drawSprite(body *object.Body) {
	s, ok := r.sprites[body.Image]
	if !ok || len(s.Lines) == 0 {
		return
	}

	style := r.lipgloss.NewStyle().Foreground(lipgloss.Color(draw.ColorHex(string(body.Color))))
	col, row := r.canvas.LogicalToTerminal(body.Center.X, body.Center.Y)
	col -= s.Width / 2
	row -= len(s.Lines) / 2
	for i, line := range s.Lines {
		r.text(col, row+i, s.Width, style.Render(line))
	}
}

// drawRockLabels writes each rock's remaining strength at its center.
func (r *TerminalRenderer) drawRockLabels(rocks []object.Circle) {
	for i := range rocks {
		rock := &rocks[i]
		label := strconv.Itoa(rock.Strength)
		color := string(rock.Color)
		style := r.lipgloss.NewStyle().
			Foreground(lipgloss.Color(draw.ContrastText(color))).
			Background(lipgloss.Color(draw.ColorHex(color)))

		col, row := r.canvas.LogicalToTerminal(rock.Center.X, rock.Center.Y)
		col -= len(label) / 2
		r.text(col, row, len(label), style.Render(label))
	}
}

// drawHUD draws the score, level and speed, plus a banner while paused.
func (r *TerminalRenderer) drawHUD(snap *sim.Snapshot, status Status) {
	width := r.canvas.TerminalWidth()

	score := fmt.Sprintf("Score : %d", snap.Score)
	r.text(2, 1, len(score), r.styles.score.Render(score))

	fps := "max"
	if status.FPS > 0 {
		fps = strconv.Itoa(status.FPS)
	}
	info := fmt.Sprintf("Level %d  FPS %s", snap.LevelFactor, fps)
	r.text(width-len(info), 1, len(info), r.styles.info.Render(info))

	if status.Paused {
		banner := "PAUSED - p to resume"
		bannerWidth := len(banner) + 2 // Padding
		r.text((width-bannerWidth)/2+1, r.canvas.TerminalHeight()/2, bannerWidth, r.styles.paused.Render(banner))
	}
}
