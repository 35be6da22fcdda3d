package effect

import (
	"math"
)

// Cell is one rasterised grid position. A zero Glyph is empty.
type Cell struct {
	Glyph rune
	Alpha float64
}

// minVisibleAlpha drops cells too faint to read in a terminal.
const minVisibleAlpha = 0.05

// Rasterize maps a frame onto a width×height grid of cells. Negative sizes give an
// empty grid.
func Rasterize(f Frame, width, height int) [][]Cell {
	width, height = max(width, 0), max(height, 0)
	grid := make([][]Cell, height)
	for y := range grid {
		grid[y] = make([]Cell, width)
	}
	if width == 0 || height == 0 {
		return grid
	}

	switch f.Kind {
	case KindBurst, KindHearts:
		for _, s := range f.Sprites {
			if s.Alpha < minVisibleAlpha || s.Size <= 0 {
				continue
			}
			x := int(math.Floor(s.X * float64(width)))
			y := int(math.Floor(s.Y * float64(height)))
			if x < 0 || x >= width || y < 0 || y >= height {
				continue
			}
			if grid[y][x].Alpha >= s.Alpha {
				continue
			}
			grid[y][x] = Cell{Glyph: spriteGlyph(f.Kind, s.Size), Alpha: s.Alpha}
		}
	case KindRipple:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				u := (float64(x) + 0.5) / float64(width)
				v := (float64(y) + 0.5) / float64(height)
				d := math.Hypot(u-f.Center.X, v-f.Center.Y)
				alpha := rippleIntensity(d, f.Progress) * f.Alpha
				if alpha < minVisibleAlpha {
					continue
				}
				grid[y][x] = Cell{Glyph: shadeGlyph(alpha), Alpha: alpha}
			}
		}
	}
	return grid
}

func spriteGlyph(kind Kind, size float64) rune {
	if kind == KindHearts {
		return '♥'
	}
	switch {
	case size > 40:
		return '●'
	case size > 20:
		return '•'
	default:
		return '·'
	}
}

func shadeGlyph(alpha float64) rune {
	switch {
	case alpha > 0.4:
		return '▓'
	case alpha > 0.2:
		return '▒'
	default:
		return '░'
	}
}
