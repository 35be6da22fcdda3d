package widget

import (
	"time"

	"github.com/alexisbeaulieu97/showreel/internal/clock"
	"github.com/alexisbeaulieu97/showreel/internal/config"
	"github.com/alexisbeaulieu97/showreel/internal/deck"
	"github.com/alexisbeaulieu97/showreel/internal/effect"
	"github.com/alexisbeaulieu97/showreel/internal/logger"
)

// FadeDuration is how long the overlay fades after the closing effect before the host
// navigates away.
const FadeDuration = 500 * time.Millisecond

// SeenStore remembers whether the overlay was already dismissed.
type SeenStore interface {
	Seen(key string) (bool, bool)
	MarkSeen(key string) error
}

// Phase is the welcome overlay lifecycle.
type Phase int

const (
	// PhaseHidden means the overlay is not shown, either before Attach or because it was
	// already seen.
	PhaseHidden Phase = iota
	PhaseShowing
	// PhaseClosing runs the closing effect.
	PhaseClosing
	// PhaseFading waits out the overlay fade.
	PhaseFading
	// PhaseDone means navigation has been requested.
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseShowing:
		return "showing"
	case PhaseClosing:
		return "closing"
	case PhaseFading:
		return "fading"
	case PhaseDone:
		return "done"
	default:
		return "hidden"
	}
}

// WelcomeState is the overlay snapshot for the presentation layer.
type WelcomeState struct {
	Phase   Phase
	Content config.Welcome
	Colors  config.Colors
	// Opacity drops from 1 to 0 during PhaseFading.
	Opacity      float64
	Effect       effect.Frame
	EffectActive bool
}

// Welcome is a one-time overlay that bursts away and then hands a navigation target to
// the host.
type Welcome struct {
	clock    clock.Clock
	loader   *config.Loader
	opts     options
	log      *logger.Logger
	store    SeenStore
	navigate func(target string)

	settings config.Settings
	attached bool
	phase    Phase

	renderer  *effect.Renderer
	frames    *frameLoop
	fade      clock.Timer
	fadeStart time.Time
	target    string
	navigated bool

	observer func(WelcomeState)
}

// NewWelcome creates a detached overlay. navigate receives the target of the button
// that closed it, exactly once.
func NewWelcome(c clock.Clock, store SeenStore, navigate func(target string), opts ...Option) (*Welcome, error) {
	o := buildOptions(opts)
	w := &Welcome{
		clock:    c,
		loader:   config.NewLoader(deck.Welcome),
		opts:     o,
		log:      o.log.ForInstance(string(deck.Welcome)),
		store:    store,
		navigate: navigate,
	}

	settings, err := config.Resolve(w.loader.Current())
	if err != nil {
		return nil, err
	}
	w.settings = settings
	return w, nil
}

// OnRender registers a hook that runs after every phase change.
func (w *Welcome) OnRender(fn func(WelcomeState)) {
	w.observer = fn
}

// Attach shows the overlay unless it is show-once and has been seen before.
func (w *Welcome) Attach() {
	if w.attached {
		return
	}
	w.attached = true
	w.build()
}

func (w *Welcome) build() {
	w.renderer = effect.New(effectParams(w.settings, w.opts.noEffects), w.opts.surface, w.opts.rendererOptions()...)
	w.frames = &frameLoop{clock: w.clock, renderer: w.renderer, onFrame: w.render, onDone: w.startFade}

	if w.settings.ShowOnce() && w.seen() {
		w.phase = PhaseHidden
		w.log.Debug("welcome already seen, staying hidden")
		w.render()
		return
	}

	w.renderer.Open(w.opts.width, w.opts.height)
	w.phase = PhaseShowing
	w.render()
}

func (w *Welcome) seen() bool {
	if w.store == nil {
		return false
	}
	seen, _ := w.store.Seen(w.settings.Welcome.SeenKey)
	return seen
}

// Detach cancels the closing effect and fade. A navigation that has not happened yet
// is dropped.
func (w *Welcome) Detach() {
	if !w.attached {
		return
	}
	w.attached = false
	w.teardown()
}

func (w *Welcome) teardown() {
	w.frames.stop()
	if w.fade != nil {
		w.fade.Stop()
		w.fade = nil
	}
	w.renderer.Close()
}

// ConfigChange applies a new raw document, falling back to the last good one on error.
// An overlay that is already closing keeps going with its old content.
func (w *Welcome) ConfigChange(raw []byte) error {
	doc, err := w.loader.Load(raw)
	if err != nil {
		w.log.Warn(err, "invalid welcome configuration, keeping last good settings")
	}

	settings, rerr := config.Resolve(doc)
	if rerr != nil {
		w.log.Error(rerr, "failed to resolve welcome configuration")
		return rerr
	}
	w.settings = settings

	if w.attached && (w.phase == PhaseShowing || w.phase == PhaseHidden) {
		w.teardown()
		w.build()
	}
	return err
}

// Close dismisses the overlay towards target. It reports false when the overlay is not
// showing, which makes repeated clicks harmless.
func (w *Welcome) Close(target string) bool {
	if !w.attached || w.phase != PhaseShowing {
		return false
	}

	if w.settings.ShowOnce() && w.store != nil {
		if err := w.store.MarkSeen(w.settings.Welcome.SeenKey); err != nil {
			w.log.Warn(err, "failed to record welcome as seen")
		}
	}

	w.target = target
	w.phase = PhaseClosing
	w.renderer.Trigger()
	w.log.WithFields(map[string]any{"target": target, "effect": w.renderer.Enabled()}).Info("welcome closing")

	w.frames.start()
	if w.frames.running() {
		w.render()
		return true
	}
	w.startFade()
	return true
}

// CloseBooking closes towards the booking link.
func (w *Welcome) CloseBooking() bool {
	return w.Close(w.settings.Welcome.BookingLink)
}

// CloseEnter closes towards the enter link.
func (w *Welcome) CloseEnter() bool {
	return w.Close(w.settings.Welcome.EnterLink)
}

func (w *Welcome) startFade() {
	w.phase = PhaseFading
	w.fadeStart = w.clock.Now()
	w.fade = w.clock.AfterFunc(FadeDuration, w.finish)
	w.render()
}

func (w *Welcome) finish() {
	w.fade = nil
	w.phase = PhaseDone
	w.render()

	if w.navigated {
		return
	}
	w.navigated = true
	if w.navigate != nil && w.target != "" {
		w.navigate(w.target)
	}
}

func (w *Welcome) render() {
	if w.observer != nil {
		w.observer(w.State())
	}
}

// State returns the current snapshot.
func (w *Welcome) State() WelcomeState {
	st := WelcomeState{
		Phase:   w.phase,
		Content: w.settings.Welcome,
		Colors:  w.settings.Colors,
	}

	switch w.phase {
	case PhaseShowing, PhaseClosing:
		st.Opacity = 1
	case PhaseFading:
		elapsed := w.clock.Now().Sub(w.fadeStart)
		st.Opacity = max(0, 1-float64(elapsed)/float64(FadeDuration))
	}

	if w.renderer != nil && w.renderer.Active() {
		st.Effect = w.renderer.Frame()
		st.EffectActive = true
	}
	return st
}

// Phase returns the lifecycle phase.
func (w *Welcome) Phase() Phase {
	return w.phase
}

// Settings returns the resolved configuration.
func (w *Welcome) Settings() config.Settings {
	return w.settings
}

// Resize forwards a new container size to the effect surface.
func (w *Welcome) Resize(width, height int) {
	w.opts.width, w.opts.height = width, height
	if w.renderer != nil {
		w.renderer.Resize(width, height)
	}
}
