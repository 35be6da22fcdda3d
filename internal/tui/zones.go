package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

type zoneKind int

const (
	zonePrevious zoneKind = iota
	zoneNext
	zoneSlide
	zoneBooking
	zoneEnter
)

// zone is a clickable screen rectangle. Bounds are half-open.
type zone struct {
	kind   zoneKind
	index  int
	x0, x1 int
	y0, y1 int
}

func (z zone) contains(x, y int) bool {
	return x >= z.x0 && x < z.x1 && y >= z.y0 && y < z.y1
}

func (z zone) shift(dx, dy int) zone {
	z.x0, z.x1 = z.x0+dx, z.x1+dx
	z.y0, z.y1 = z.y0+dy, z.y1+dy
	return z
}

func hit(zones []zone, x, y int) (zone, bool) {
	for _, z := range zones {
		if z.contains(x, y) {
			return z, true
		}
	}
	return zone{}, false
}

// row lays pieces out left to right and records a zone for every piece that has a kind.
type row struct {
	text  string
	x     int
	zones []zone
}

func (r *row) add(s string) {
	r.text += s
	r.x += lipgloss.Width(s)
}

func (r *row) addZone(s string, kind zoneKind, index int) {
	w := lipgloss.Width(s)
	r.zones = append(r.zones, zone{kind: kind, index: index, x0: r.x, x1: r.x + w, y0: 0, y1: 1})
	r.add(s)
}

// centerOffset mirrors how lipgloss centres a block of size inner inside outer.
func centerOffset(outer, inner int) int {
	gap := outer - inner
	if gap <= 0 {
		return 0
	}
	return gap - int(math.Round(float64(gap)*0.5))
}

// joinOffset mirrors how lipgloss.JoinVertical centres a narrower line.
func joinOffset(outer, inner int) int {
	gap := outer - inner
	if gap < 1 {
		return 0
	}
	return int(math.Round(float64(gap) * 0.5))
}
