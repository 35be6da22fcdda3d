package effect

import (
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	showreelerrors "github.com/alexisbeaulieu97/showreel/pkg/errors"
)

func TestCanvasRefusesAsciiTerminals(t *testing.T) {
	c := NewCanvas(termenv.Ascii, colorful.Color{})
	err := c.Open(80, 24)

	var surfaceErr *showreelerrors.SurfaceError
	require.ErrorAs(t, err, &surfaceErr)
	assert.Equal(t, "canvas", surfaceErr.Surface)
}

func TestCanvasViewLifecycle(t *testing.T) {
	c := NewCanvas(termenv.TrueColor, colorful.Color{})
	require.NoError(t, c.Open(20, 6))
	assert.Empty(t, c.View(), "nothing drawn yet")

	c.Draw(Frame{Kind: KindHearts, Alpha: 1, Color: colorful.Color{R: 1}, Sprites: []Sprite{{X: 0.5, Y: 0.5, Size: 30, Alpha: 0.9}}})
	view := c.View()
	require.NotEmpty(t, view)
	assert.Len(t, strings.Split(view, "\n"), 6)
	assert.Contains(t, view, "♥")

	c.Resize(10, 3)
	assert.Len(t, strings.Split(c.View(), "\n"), 3)

	c.Hide()
	assert.Empty(t, c.View())

	c.Close()
	c.Draw(Frame{Kind: KindHearts})
	assert.False(t, c.Visible())
}

func TestRasterizeSprites(t *testing.T) {
	f := Frame{Kind: KindBurst, Sprites: []Sprite{
		{X: 0.05, Y: 0.05, Size: 50, Alpha: 0.9},
		{X: 0.95, Y: 0.95, Size: 10, Alpha: 0.5},
		{X: 2, Y: 0.5, Size: 50, Alpha: 1},
		{X: 0.5, Y: 0.5, Size: 50, Alpha: 0.01},
	}}
	grid := Rasterize(f, 10, 10)

	assert.Equal(t, '●', grid[0][0].Glyph)
	assert.Equal(t, '·', grid[9][9].Glyph)
	assert.Zero(t, grid[5][5].Glyph, "faint sprites are dropped")
}

func TestRasterizeRippleRing(t *testing.T) {
	f := Frame{Kind: KindRipple, Progress: 0.5, Alpha: fade(KindRipple, 0.5, 0.6), Center: Point{X: 0.5, Y: 0.5}}
	grid := Rasterize(f, 40, 20)

	lit := 0
	for _, row := range grid {
		for _, cell := range row {
			if cell.Glyph != 0 {
				lit++
				assert.Contains(t, "░▒▓", string(cell.Glyph))
			}
		}
	}
	assert.Positive(t, lit)
	assert.Less(t, lit, 40*20)
}

func TestRasterizeEmptyGrid(t *testing.T) {
	assert.Empty(t, Rasterize(Frame{Kind: KindBurst}, 0, 0))
}

func TestRasterizeNegativeSize(t *testing.T) {
	f := Frame{Kind: KindBurst, Sprites: []Sprite{{X: 0.5, Y: 0.5, Size: 30, Alpha: 1}}}

	assert.Empty(t, Rasterize(f, -1, -1))

	grid := Rasterize(f, -4, 3)
	assert.Len(t, grid, 3)
	for _, row := range grid {
		assert.Empty(t, row)
	}
}
