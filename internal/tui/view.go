package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/showreel/internal/deck"
	"github.com/alexisbeaulieu97/showreel/internal/tui/components"
	"github.com/alexisbeaulieu97/showreel/internal/widget"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeWelcome {
		return m.welcomeView()
	}
	return m.slideshowView()
}

func (m Model) slideshowView() string {
	st := m.show.State()
	l := m.layout()
	p := m.palette

	var sections []string
	sections = append(sections, p.title.Render(st.Title), p.subtitle.Render(st.Subtitle))

	innerW, innerH := m.stageInner()
	body := ""
	if m.canvas != nil && m.canvas.Visible() {
		body = m.canvas.View()
	} else if st.Index < len(st.Slides) {
		body = slideCard(st.Slides[st.Index], innerW, p)
	}
	sections = append(sections, p.stage.Width(max(m.width-2, 1)).Height(innerH).MaxHeight(l.stageHeight).Render(body))

	sections = append(sections, controlRow(st, p).text)

	progress := components.NewProgress(st.Count, string(p.accent), string(p.text)).WithWidth(m.width - 12)
	sections = append(sections, " "+progress.View(st.Index))

	if l.pageHeight > 0 {
		sections = append(sections, m.page.View())
	}

	footer := helpStyle.Render(m.help.View(m.keys))
	if m.notice != "" {
		footer = warningStyle.Render("config: " + m.notice)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// controlRow is the prev button, one indicator per slide and the next button.
func controlRow(st widget.State, p palette) row {
	in := components.NewIndicators(st.Slides, st.Index)
	cells, gap := in.DotCells(p.active, p.inactive), components.DotGap
	if st.Variant == deck.Journey {
		cells, gap = in.LabelCells(p.active, p.inactive), components.LabelGap
	}

	var r row
	r.add(" ")
	r.addZone(p.control.Render("‹ prev"), zonePrevious, 0)
	r.add("   ")
	for i, cell := range cells {
		if i > 0 {
			r.add(gap)
		}
		r.addZone(cell, zoneSlide, i)
	}
	r.add("   ")
	r.addZone(p.control.Render("next ›"), zoneNext, 0)
	return r
}

func slideCard(s deck.Slide, width int, p palette) string {
	lines := []string{
		p.number.Render(s.Number) + "  " + p.label.Render(s.Label),
		p.heading.Render(s.Title),
		p.tagline.Render(s.Tagline),
		"",
		p.body.Width(max(width, 1)).Render(s.Description),
	}
	if s.Image != "" {
		lines = append(lines, "", mutedStyle.Render("▣ "+s.Image))
	}
	return strings.Join(lines, "\n")
}

// pageContent is the scrollable page the slideshow is embedded in.
func pageContent(st widget.State, p palette) string {
	var b strings.Builder
	b.WriteString(mutedStyle.Render("Scroll past the first or last slide to move this page."))
	for _, s := range st.Slides {
		b.WriteString("\n")
		b.WriteString(p.number.Render(s.Number) + "  " + p.heading.Render(s.Title))
		if s.Tagline != "" {
			b.WriteString("\n    " + p.tagline.Render(s.Tagline))
		}
	}
	return b.String()
}

func (m Model) welcomeView() string {
	st := m.welcome.State()
	if m.canvas != nil && m.canvas.Visible() {
		return m.canvas.View()
	}

	switch st.Phase {
	case widget.PhaseHidden:
		return mutedStyle.Render("Welcome already seen.")
	case widget.PhaseDone:
		if m.outcome != nil {
			return mutedStyle.Render("→ " + m.outcome.Target)
		}
		return ""
	}

	content, _ := m.welcomeContent(st)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// welcomeContent renders the overlay card. The zones of its two buttons are relative to
// the card's top-left corner.
func (m Model) welcomeContent(st widget.WelcomeState) (string, []zone) {
	text := m.palette.text
	accent := m.palette.accent
	if st.Phase == widget.PhaseFading {
		text = fade(st.Colors.Primary, st.Colors.Text, st.Opacity)
		accent = fade(st.Colors.Primary, st.Colors.Accent, st.Opacity)
	}

	width := min(64, max(m.width-4, 10))
	title := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(st.Content.Title)
	message := lipgloss.NewStyle().Foreground(text).Width(width).Align(lipgloss.Center).Render(st.Content.Message)
	book := components.NewButton(st.Content.BookingText, "b").View(accent, text)
	enter := components.NewButton(st.Content.EnterText, "enter").WithFocus(true).View(accent, text)
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, book, "  ", enter)

	content := lipgloss.JoinVertical(lipgloss.Center, title, "", message, "", buttons, "", helpStyle.Render(m.help.View(m.keys)))

	x := joinOffset(lipgloss.Width(content), lipgloss.Width(buttons))
	y := lipgloss.Height(title) + 1 + lipgloss.Height(message) + 1
	h := lipgloss.Height(buttons)
	bw := lipgloss.Width(book)
	zones := []zone{
		{kind: zoneBooking, x0: x, x1: x + bw, y0: y, y1: y + h},
		{kind: zoneEnter, x0: x + bw + 2, x1: x + lipgloss.Width(buttons), y0: y, y1: y + h},
	}
	return content, zones
}

// fade blends to toward from as opacity drops to zero.
func fade(from, to string, opacity float64) lipgloss.Color {
	a, errA := colorful.Hex(from)
	b, errB := colorful.Hex(to)
	if errA != nil || errB != nil {
		return lipgloss.Color(to)
	}
	return lipgloss.Color(a.BlendLab(b, opacity).Clamped().Hex())
}
