package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/showreel/internal/input"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case frameMsg:
		return m.handleFrame(msg)

	case ReloadMsg:
		m.reload(msg.Data)
		return m, nil

	case tea.FocusMsg:
		if in := m.input(); in != nil {
			in.SetVisible(true)
		}
		return m, nil

	case tea.BlurMsg:
		if in := m.input(); in != nil {
			in.SetVisible(false)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m *Model) resize() {
	m.help.Width = m.width
	if m.mode == modeWelcome {
		m.welcome.Resize(m.width, m.height)
		return
	}

	w, h := m.stageInner()
	m.show.Resize(w, h)
	m.page.Width = m.width
	m.page.Height = m.layout().pageHeight
}

func (m Model) handleFrame(msg frameMsg) (tea.Model, tea.Cmd) {
	now := timeOf(msg)
	if !m.lastFrame.IsZero() {
		dt := now.Sub(m.lastFrame)
		dt = min(max(dt, 0), maxFrameStep)
		m.loop.Advance(dt)
	}
	m.lastFrame = now

	if m.mode == modeWelcome && m.outcome != nil && m.outcome.Navigated {
		m.log.WithFields(map[string]any{"target": m.outcome.Target}).Info("welcome navigated")
		m.quitting = true
		return m, tea.Quit
	}
	return m, frameCmd()
}

func (m *Model) reload(data []byte) {
	var err error
	if m.mode == modeWelcome {
		err = m.welcome.ConfigChange(data)
	} else {
		err = m.show.ConfigChange(data)
	}

	m.notice = ""
	if err != nil {
		m.notice = err.Error()
	}
	m.refresh()
	m.resize()
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.mode == modeWelcome {
		switch {
		case key.Matches(msg, m.keys.Enter):
			m.welcome.CloseEnter()
		case key.Matches(msg, m.keys.Book):
			m.welcome.CloseBooking()
		}
		return m, nil
	}

	in := m.input()
	if in == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Previous):
		in.Previous()
	case key.Matches(msg, m.keys.Next):
		in.Next()
	case key.Matches(msg, m.keys.Select):
		in.Select(slideIndex(msg.String()))
	case key.Matches(msg, m.keys.ScrollUp):
		m.scroll(-1)
	case key.Matches(msg, m.keys.ScrollDown):
		m.scroll(1)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	click := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	if m.mode == modeWelcome {
		if !click {
			return m, nil
		}
		if z, ok := hit(m.welcomeZones(), msg.X, msg.Y); ok {
			m.activate(nil, z)
		}
		return m, nil
	}

	in := m.input()
	if in == nil {
		return m, nil
	}
	if m.overStage(msg.Y) {
		in.PointerEnter()
	} else {
		in.PointerLeave()
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scroll(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scroll(1)
	case click:
		if z, ok := hit(m.controlZones(), msg.X, msg.Y); ok {
			m.activate(in, z)
			return m, nil
		}
		if m.overStage(msg.Y) {
			m.swiping = true
			m.swipeY = msg.Y
			in.TouchStart(float64(msg.Y * rowPixels))
		}
	case msg.Action == tea.MouseActionRelease && m.swiping:
		m.swiping = false
		if !in.TouchEnd(float64(msg.Y * rowPixels)) {
			m.scrollPage(m.swipeY - msg.Y)
		}
	}
	return m, nil
}

func (m *Model) activate(in *input.Adapter, z zone) {
	switch z.kind {
	case zonePrevious:
		in.Previous()
	case zoneNext:
		in.Next()
	case zoneSlide:
		in.Select(z.index)
	case zoneBooking:
		m.welcome.CloseBooking()
	case zoneEnter:
		m.welcome.CloseEnter()
	}
}

// scroll offers one wheel unit to the slideshow and scrolls the page with it when the
// slideshow passes.
func (m *Model) scroll(dir int) {
	if in := m.input(); in != nil && in.Wheel(float64(dir)) {
		return
	}
	m.scrollPage(dir * pageStep)
}

func (m *Model) scrollPage(lines int) {
	switch {
	case lines > 0:
		m.page.LineDown(lines)
	case lines < 0:
		m.page.LineUp(-lines)
	}
}
