package tui

import "github.com/charmbracelet/lipgloss"

var (
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
)

// palette is the per-deck style set derived from the configured colours.
type palette struct {
	primary lipgloss.Color
	accent  lipgloss.Color
	text    lipgloss.Color

	title    lipgloss.Style
	subtitle lipgloss.Style
	stage    lipgloss.Style
	number   lipgloss.Style
	label    lipgloss.Style
	heading  lipgloss.Style
	tagline  lipgloss.Style
	body     lipgloss.Style
	active   lipgloss.Style
	inactive lipgloss.Style
	control  lipgloss.Style
}

func newPalette(primary, accent, text string) palette {
	p := palette{
		primary: lipgloss.Color(primary),
		accent:  lipgloss.Color(accent),
		text:    lipgloss.Color(text),
	}

	p.title = lipgloss.NewStyle().Bold(true).Foreground(p.accent).PaddingLeft(1)
	p.subtitle = lipgloss.NewStyle().Italic(true).Foreground(p.text).PaddingLeft(1)
	p.stage = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.accent).
		Padding(0, 2)
	p.number = lipgloss.NewStyle().Bold(true).Foreground(p.accent)
	p.label = lipgloss.NewStyle().Foreground(p.accent)
	p.heading = lipgloss.NewStyle().Bold(true).Foreground(p.text)
	p.tagline = lipgloss.NewStyle().Italic(true).Foreground(p.accent)
	p.body = lipgloss.NewStyle().Foreground(p.text)
	p.active = lipgloss.NewStyle().Bold(true).Foreground(p.accent)
	p.inactive = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	p.control = lipgloss.NewStyle().Foreground(p.text)
	return p
}
