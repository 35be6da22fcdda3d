package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress renders the slide counter and the fill bar under the stage.
type Progress struct {
	bar   progress.Model
	total int
}

// NewProgress creates a progress component for a deck of total slides. The bar is drawn
// in a gradient between the two hex colours.
func NewProgress(total int, from, to string) Progress {
	bar := progress.New(progress.WithGradient(from, to), progress.WithoutPercentage())
	bar.Width = 30
	return Progress{bar: bar, total: total}
}

// WithWidth returns a copy with a bar of the given width.
func (p Progress) WithWidth(width int) Progress {
	p.bar.Width = max(width, 4)
	return p
}

// Counter formats the zero-padded "NN / NN" label for the slide at index.
func (p Progress) Counter(index int) string {
	return fmt.Sprintf("%02d / %02d", index+1, p.total)
}

// View renders the counter and the bar filled to (index+1)/total.
func (p Progress) View(index int) string {
	ratio := 0.0
	if p.total > 0 {
		ratio = math.Min(1.0, float64(index+1)/float64(p.total))
	}
	label := lipgloss.NewStyle().Bold(true).Render(p.Counter(index))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(ratio))
}
