// Package transition owns the "which slide is showing" state of a widget.
//
// The engine is a two-state machine:
//
//	          Advance/GoTo accepted
//	Idle ─────────────────────────────► Transitioning
//	  ▲                                      │
//	  └──────── guard timer (Hold) ──────────┘
//
// Requests that arrive while Transitioning are dropped, never queued.
package transition

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/showreel/internal/clock"
	"github.com/alexisbeaulieu97/showreel/internal/deck"
)

// Result describes what a navigation request did.
type Result int

const (
	// Moved means the request was accepted and a transition started.
	Moved Result = iota
	// Busy means a transition was already running; the request was dropped.
	Busy
	// Unmoved means the request resolved to the current slide: a clamp boundary, a
	// single-slide deck, or an explicit request for the slide already showing.
	Unmoved
	// Rejected means the request itself was invalid (bad direction or index).
	Rejected
)

// Consumed reports whether the caller should treat its input as handled. Unmoved and
// Rejected requests leave the input to the surrounding page.
func (r Result) Consumed() bool {
	return r == Moved || r == Busy
}

func (r Result) String() string {
	switch r {
	case Moved:
		return "moved"
	case Busy:
		return "busy"
	case Unmoved:
		return "unmoved"
	case Rejected:
		return "rejected"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Config fixes an engine's policies. Count must already be clamped into the widget's
// bounds; New still forces it to at least one.
type Config struct {
	Count  int
	Policy deck.IndexPolicy
	Hold   time.Duration
	Apply  deck.ApplyMode
}

// State is the declarative snapshot handed to the presentation layer.
type State struct {
	Index         int
	Count         int
	Transitioning bool
}

// Ratio is the progress-indicator fill, (index+1)/count.
func (s State) Ratio() float64 {
	if s.Count <= 0 {
		return 0
	}
	return float64(s.Index+1) / float64(s.Count)
}

// Trigger starts a decorative effect. It must never influence navigation.
type Trigger interface {
	Trigger()
}

// Option configures optional collaborators.
type Option func(*Engine)

// WithEffect attaches an effect that is triggered on every accepted transition.
func WithEffect(t Trigger) Option {
	return func(e *Engine) {
		e.effect = t
	}
}

// WithObserver registers the render step. It runs whenever the visible index changes
// and whenever the guard opens or closes.
func WithObserver(fn func(State)) Option {
	return func(e *Engine) {
		e.observer = fn
	}
}

// Engine is the single authority for the current slide index.
type Engine struct {
	clock clock.Clock
	cfg   Config

	current       int
	transitioning bool
	guard         clock.Timer

	effect   Trigger
	observer func(State)
}

// New constructs an engine showing slide 0.
func New(c clock.Clock, cfg Config, opts ...Option) *Engine {
	if cfg.Count < 1 {
		cfg.Count = 1
	}
	if cfg.Hold < 0 {
		cfg.Hold = 0
	}
	e := &Engine{clock: c, cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Advance moves one slide in direction dir, which must be -1 or +1.
func (e *Engine) Advance(dir int) Result {
	if dir != -1 && dir != 1 {
		return Rejected
	}
	if e.transitioning {
		return Busy
	}

	next := e.current + dir
	switch e.cfg.Policy {
	case deck.Clamp:
		next = min(max(next, 0), e.cfg.Count-1)
	default:
		next = (next + e.cfg.Count) % e.cfg.Count
	}
	if next == e.current {
		return Unmoved
	}

	e.begin(next)
	return Moved
}

// GoTo jumps to index.
func (e *Engine) GoTo(index int) Result {
	if index < 0 || index >= e.cfg.Count {
		return Rejected
	}
	if e.transitioning {
		return Busy
	}
	if index == e.current {
		return Unmoved
	}

	e.begin(index)
	return Moved
}

func (e *Engine) begin(target int) {
	e.transitioning = true
	if e.effect != nil {
		e.effect.Trigger()
	}

	if e.cfg.Apply == deck.ApplyImmediate {
		e.current = target
	}
	e.render()

	e.guard = e.clock.AfterFunc(e.cfg.Hold, func() {
		e.guard = nil
		if e.cfg.Apply == deck.ApplyDeferred {
			e.current = target
		}
		e.transitioning = false
		e.render()
	})
}

// Current returns the visible slide index.
func (e *Engine) Current() int {
	return e.current
}

// Count returns the number of slides.
func (e *Engine) Count() int {
	return e.cfg.Count
}

// Policy returns the boundary policy.
func (e *Engine) Policy() deck.IndexPolicy {
	return e.cfg.Policy
}

// Transitioning reports whether the guard is closed.
func (e *Engine) Transitioning() bool {
	return e.transitioning
}

// State returns the current snapshot.
func (e *Engine) State() State {
	return State{Index: e.current, Count: e.cfg.Count, Transitioning: e.transitioning}
}

// Reset cancels any pending guard release and returns to slide 0 without a transition.
func (e *Engine) Reset() {
	e.Close()
	e.current = 0
	e.render()
}

// Close cancels the pending guard release, if any, and reopens the guard. A deferred
// index change that has not been applied yet is discarded.
func (e *Engine) Close() {
	if e.guard != nil {
		e.guard.Stop()
		e.guard = nil
	}
	e.transitioning = false
}

func (e *Engine) render() {
	if e.observer != nil {
		e.observer(e.State())
	}
}
