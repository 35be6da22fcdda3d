package components

import "github.com/charmbracelet/lipgloss"

// Button is a keyboard-activated call to action.
type Button struct {
	label  string
	hotkey string
	focus  bool
}

// NewButton creates a button showing hotkey next to label.
func NewButton(label, hotkey string) Button {
	return Button{label: label, hotkey: hotkey}
}

// WithFocus sets the focus state.
func (b Button) WithFocus(focus bool) Button {
	b.focus = focus
	return b
}

// View renders the button in the accent colour, filled when focused.
func (b Button) View(accent, text lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Foreground(text)
	if b.focus {
		style = style.Border(lipgloss.ThickBorder()).Bold(true)
	}

	label := b.label
	if b.hotkey != "" {
		label = "[" + b.hotkey + "] " + label
	}
	return style.Render(label)
}
