package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showreel/internal/clock"
	"github.com/alexisbeaulieu97/showreel/internal/effect"
	"github.com/alexisbeaulieu97/showreel/internal/input"
	"github.com/alexisbeaulieu97/showreel/internal/logger"
	"github.com/alexisbeaulieu97/showreel/internal/widget"
)

const (
	headerHeight = 2
	navHeight    = 2
	helpHeight   = 1
	minStage     = 7

	// rowPixels converts terminal rows into the pixel units swipe thresholds use.
	rowPixels = 16
	// pageStep is how many lines one unconsumed wheel unit scrolls the page.
	pageStep = 3
)

// Outcome records where a closed welcome overlay asked to go.
type Outcome struct {
	Target    string
	Navigated bool
}

// Navigate is the welcome widget's navigation hook.
func (o *Outcome) Navigate(target string) {
	o.Target = target
	o.Navigated = true
}

type mode int

const (
	modeSlideshow mode = iota
	modeWelcome
)

// Model hosts one widget in a Bubbletea program and drives its clock from the frame
// tick. All widget calls happen on the Update goroutine.
type Model struct {
	mode    mode
	loop    *clock.Loop
	show    *widget.Slideshow
	welcome *widget.Welcome
	canvas  *effect.Canvas
	outcome *Outcome
	log     *logger.Logger

	keys    keyMap
	help    help.Model
	page    viewport.Model
	palette palette

	width     int
	height    int
	lastFrame time.Time
	swiping   bool
	swipeY    int
	notice    string
	quitting  bool
}

// NewSlideshowModel hosts an attached slideshow. canvas may be nil when effects are off.
func NewSlideshowModel(loop *clock.Loop, show *widget.Slideshow, canvas *effect.Canvas, log *logger.Logger) Model {
	m := Model{
		mode:   modeSlideshow,
		loop:   loop,
		show:   show,
		canvas: canvas,
		log:    log,
		keys:   newKeyMap(false),
		help:   help.New(),
		page:   viewport.New(80, 6),
		width:  80,
		height: 24,
	}
	m.refresh()
	return m
}

// NewWelcomeModel hosts an attached welcome overlay. outcome must be the navigation hook
// the overlay was built with.
func NewWelcomeModel(loop *clock.Loop, welcome *widget.Welcome, canvas *effect.Canvas, outcome *Outcome, log *logger.Logger) Model {
	m := Model{
		mode:    modeWelcome,
		loop:    loop,
		welcome: welcome,
		canvas:  canvas,
		outcome: outcome,
		log:     log,
		keys:    newKeyMap(true),
		help:    help.New(),
		width:   80,
		height:  24,
	}
	m.refresh()
	return m
}

// Init starts the frame tick.
func (m Model) Init() tea.Cmd {
	return frameCmd()
}

func frameCmd() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Quitting reports whether the model asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Notice returns the last configuration problem shown in the footer.
func (m Model) Notice() string {
	return m.notice
}

// refresh re-derives everything that depends on the widget configuration.
func (m *Model) refresh() {
	if m.mode == modeWelcome {
		s := m.welcome.Settings()
		m.palette = newPalette(s.Colors.Primary, s.Colors.Accent, s.Colors.Text)
		return
	}
	s := m.show.Settings()
	m.palette = newPalette(s.Colors.Primary, s.Colors.Accent, s.Colors.Text)
	m.page.SetContent(pageContent(m.show.State(), m.palette))
	m.page.GotoTop()
}

type layout struct {
	stageTop    int
	stageHeight int
	pageHeight  int
}

func (m Model) layout() layout {
	page := max(3, m.height/4)
	stage := m.height - headerHeight - navHeight - helpHeight - page
	if stage < minStage {
		stage = minStage
		page = max(0, m.height-headerHeight-navHeight-helpHeight-stage)
	}
	return layout{stageTop: headerHeight, stageHeight: stage, pageHeight: page}
}

// stageInner is the cell size inside the stage border and padding, which is also the
// effect canvas size.
func (m Model) stageInner() (int, int) {
	l := m.layout()
	return max(m.width-6, 1), max(l.stageHeight-2, 1)
}

func (m Model) overStage(y int) bool {
	l := m.layout()
	return y >= l.stageTop && y < l.stageTop+l.stageHeight
}

// controlZones locates the prev/next buttons and the slide indicators on screen. The
// control row sits directly below the stage.
func (m Model) controlZones() []zone {
	r := controlRow(m.show.State(), m.palette)
	y := headerHeight + m.layout().stageHeight
	zones := make([]zone, len(r.zones))
	for i, z := range r.zones {
		zones[i] = z.shift(0, y)
	}
	return zones
}

// welcomeZones locates the welcome buttons once the card is centred on screen.
func (m Model) welcomeZones() []zone {
	content, zones := m.welcomeContent(m.welcome.State())
	dx := centerOffset(m.width, lipgloss.Width(content))
	dy := centerOffset(m.height, lipgloss.Height(content))
	for i := range zones {
		zones[i] = zones[i].shift(dx, dy)
	}
	return zones
}

func (m Model) input() *input.Adapter {
	if m.show == nil {
		return nil
	}
	return m.show.Input()
}

func timeOf(msg frameMsg) time.Time {
	return time.Time(msg)
}
