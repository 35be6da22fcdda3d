// Package input turns raw interaction events into navigation calls.
//
// Buttons and indicators always belong to the widget. Scroll-style input (wheel ticks
// and vertical swipes) is shared with the surrounding page: the widget only takes it
// while its gate is open, and gives it back at either end of the deck so the page can
// keep scrolling.
package input

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/alexisbeaulieu97/showreel/internal/clock"
	"github.com/alexisbeaulieu97/showreel/internal/deck"
	"github.com/alexisbeaulieu97/showreel/internal/transition"
)

// DefaultSwipeThreshold is the vertical travel, in input units, that counts as a swipe.
const DefaultSwipeThreshold = 50

// Navigator is the slice of the transition engine the adapter drives.
type Navigator interface {
	Advance(dir int) transition.Result
	GoTo(index int) transition.Result
	Current() int
	Count() int
}

// Config fixes an adapter's gating policy.
type Config struct {
	Gate deck.Gate
	// Debounce is the window after an accepted scroll unit during which further scroll
	// units are swallowed. It normally equals the animation speed.
	Debounce       time.Duration
	SwipeThreshold float64
	// Scroll enables wheel and swipe handling. When false both are passed through.
	Scroll bool
}

// Option configures optional hooks.
type Option func(*Adapter)

// WithInteraction registers a hook that runs after every manual navigation that moved
// the deck. Widgets use it to restart autoplay.
func WithInteraction(fn func()) Option {
	return func(a *Adapter) {
		a.onInteract = fn
	}
}

// Adapter maps events to navigation.
type Adapter struct {
	nav   Navigator
	clock clock.Clock
	cfg   Config

	pointerOver bool
	visible     bool
	limiter     *rate.Limiter

	touching    bool
	touchStartY float64

	onInteract func()
}

// New creates an adapter. The pointer starts outside the widget and the widget starts
// visible.
func New(nav Navigator, c clock.Clock, cfg Config, opts ...Option) *Adapter {
	if cfg.SwipeThreshold <= 0 {
		cfg.SwipeThreshold = DefaultSwipeThreshold
	}
	limit := rate.Inf
	if cfg.Debounce > 0 {
		limit = rate.Every(cfg.Debounce)
	}
	a := &Adapter{
		nav:     nav,
		clock:   c,
		cfg:     cfg,
		visible: true,
		limiter: rate.NewLimiter(limit, 1),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Next handles the "next" control. Control input is always consumed.
func (a *Adapter) Next() bool {
	a.navigate(a.nav.Advance(1))
	return true
}

// Previous handles the "previous" control.
func (a *Adapter) Previous() bool {
	a.navigate(a.nav.Advance(-1))
	return true
}

// Select handles a direct index indicator.
func (a *Adapter) Select(index int) bool {
	a.navigate(a.nav.GoTo(index))
	return true
}

func (a *Adapter) navigate(res transition.Result) transition.Result {
	if res == transition.Moved && a.onInteract != nil {
		a.onInteract()
	}
	return res
}

// PointerEnter marks the pointer as over the widget.
func (a *Adapter) PointerEnter() { a.pointerOver = true }

// PointerLeave marks the pointer as outside the widget.
func (a *Adapter) PointerLeave() { a.pointerOver = false }

// SetVisible records whether the widget intersects the viewport.
func (a *Adapter) SetVisible(visible bool) { a.visible = visible }

// CopyGate takes over the pointer and visibility state of another adapter, so a widget
// that rebuilds its adapter on reconfiguration keeps its gate.
func (a *Adapter) CopyGate(from *Adapter) {
	a.pointerOver = from.pointerOver
	a.visible = from.visible
}

// PointerOver reports whether the pointer is over the widget.
func (a *Adapter) PointerOver() bool { return a.pointerOver }

// Gated reports whether scroll-style input currently belongs to the widget.
func (a *Adapter) Gated() bool {
	if !a.cfg.Scroll {
		return false
	}
	if a.cfg.Gate == deck.GateViewport {
		return a.visible
	}
	return a.pointerOver
}

// Wheel handles one wheel event. Positive deltaY scrolls forward. It reports whether the
// event was consumed; an unconsumed event should scroll the page instead.
func (a *Adapter) Wheel(deltaY float64) bool {
	switch {
	case deltaY > 0:
		return a.scroll(1)
	case deltaY < 0:
		return a.scroll(-1)
	default:
		return false
	}
}

// TouchStart records the start of a vertical gesture.
func (a *Adapter) TouchStart(y float64) {
	a.touching = true
	a.touchStartY = y
}

// TouchEnd completes a gesture started with TouchStart. Swiping up past the threshold
// moves forward, swiping down moves back. It reports whether the gesture was consumed.
func (a *Adapter) TouchEnd(y float64) bool {
	if !a.touching {
		return false
	}
	a.touching = false
	if !a.cfg.Scroll {
		return false
	}

	delta := a.touchStartY - y
	switch {
	case delta > a.cfg.SwipeThreshold:
		return a.unit(1)
	case -delta > a.cfg.SwipeThreshold:
		return a.unit(-1)
	default:
		return false
	}
}

func (a *Adapter) scroll(dir int) bool {
	if !a.Gated() {
		return false
	}
	return a.unit(dir)
}

// unit applies one scroll unit: boundary pass-through first, then the debounce window,
// then navigation.
func (a *Adapter) unit(dir int) bool {
	current, last := a.nav.Current(), a.nav.Count()-1
	if (current == 0 && dir < 0) || (current == last && dir > 0) {
		return false
	}
	if !a.limiter.AllowN(a.clock.Now(), 1) {
		return true
	}
	a.navigate(a.nav.Advance(dir))
	return true
}
