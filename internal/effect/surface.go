package effect

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	showreelerrors "github.com/alexisbeaulieu97/showreel/pkg/errors"
)

// Surface is where a renderer draws. It is owned by exactly one renderer.
type Surface interface {
	Open(width, height int) error
	Resize(width, height int)
	Draw(f Frame)
	Hide()
	Close()
}

// Canvas is a terminal surface. It rasterises frames into a glyph grid that the TUI
// places over the slide stage.
type Canvas struct {
	profile    termenv.Profile
	background colorful.Color

	width   int
	height  int
	frame   Frame
	visible bool
	open    bool
}

// NewCanvas creates a canvas for a terminal with the given colour profile. Glyph colours
// are blended toward background as they fade.
func NewCanvas(profile termenv.Profile, background colorful.Color) *Canvas {
	return &Canvas{profile: profile, background: background}
}

// Open fails when the terminal cannot show colour; a monochrome particle field would
// only be noise over the text.
func (c *Canvas) Open(width, height int) error {
	if c.profile == termenv.Ascii {
		return showreelerrors.NewSurfaceError("canvas", "terminal has no colour support", nil)
	}
	c.width, c.height = max(width, 0), max(height, 0)
	c.open = true
	return nil
}

// Resize changes the grid size used by the next View.
func (c *Canvas) Resize(width, height int) {
	c.width, c.height = max(width, 0), max(height, 0)
}

// Draw records f and makes the canvas visible.
func (c *Canvas) Draw(f Frame) {
	if !c.open {
		return
	}
	c.frame = f
	c.visible = true
}

// Hide makes the canvas invisible until the next Draw.
func (c *Canvas) Hide() {
	c.visible = false
}

// Close releases the canvas.
func (c *Canvas) Close() {
	c.open = false
	c.visible = false
}

// Visible reports whether the canvas currently shows a frame.
func (c *Canvas) Visible() bool {
	return c.open && c.visible
}

// Size returns the grid size.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// View renders the last frame as width×height lines, or "" when hidden.
func (c *Canvas) View() string {
	if !c.Visible() || c.width == 0 || c.height == 0 {
		return ""
	}

	grid := Rasterize(c.frame, c.width, c.height)
	var b strings.Builder
	for y, row := range grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			if cell.Glyph == 0 {
				b.WriteByte(' ')
				continue
			}
			colour := c.background.BlendLab(c.frame.Color, cell.Alpha).Clamped()
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(colour.Hex()))
			b.WriteString(style.Render(string(cell.Glyph)))
		}
	}
	return b.String()
}
