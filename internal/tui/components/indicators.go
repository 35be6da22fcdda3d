package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showreel/internal/deck"
)

// Separators between indicator cells.
const (
	DotGap   = " "
	LabelGap = "  "
)

// IndicatorEntry is one slide indicator.
type IndicatorEntry struct {
	Label  string
	Active bool
}

// Indicators renders the row of per-slide indicators.
type Indicators struct {
	entries []IndicatorEntry
}

// NewIndicators builds indicators for slides with current highlighted.
func NewIndicators(slides []deck.Slide, current int) Indicators {
	entries := make([]IndicatorEntry, 0, len(slides))
	for i, s := range slides {
		entries = append(entries, IndicatorEntry{Label: s.Label, Active: i == current})
	}
	return Indicators{entries: entries}
}

// Entries returns the ordered indicators.
func (in Indicators) Entries() []IndicatorEntry {
	clone := make([]IndicatorEntry, len(in.entries))
	copy(clone, in.entries)
	return clone
}

// DotCells renders one ● or ○ per slide, in order.
func (in Indicators) DotCells(active, inactive lipgloss.Style) []string {
	cells := make([]string, 0, len(in.entries))
	for _, e := range in.entries {
		if e.Active {
			cells = append(cells, active.Render("●"))
			continue
		}
		cells = append(cells, inactive.Render("○"))
	}
	return cells
}

// LabelCells renders one label per slide, in order.
func (in Indicators) LabelCells(active, inactive lipgloss.Style) []string {
	cells := make([]string, 0, len(in.entries))
	for _, e := range in.entries {
		if e.Active {
			cells = append(cells, active.Render(e.Label))
			continue
		}
		cells = append(cells, inactive.Render(e.Label))
	}
	return cells
}
