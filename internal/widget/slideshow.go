package widget

import (
	"errors"

	"github.com/alexisbeaulieu97/showreel/internal/autoplay"
	"github.com/alexisbeaulieu97/showreel/internal/clock"
	"github.com/alexisbeaulieu97/showreel/internal/config"
	"github.com/alexisbeaulieu97/showreel/internal/deck"
	"github.com/alexisbeaulieu97/showreel/internal/effect"
	"github.com/alexisbeaulieu97/showreel/internal/input"
	"github.com/alexisbeaulieu97/showreel/internal/logger"
	"github.com/alexisbeaulieu97/showreel/internal/transition"
)

var errWelcomeVariant = errors.New("the welcome variant is hosted by Welcome, not Slideshow")

// State is everything the presentation layer needs to draw a slideshow.
type State struct {
	Variant       deck.Name
	Title         string
	Subtitle      string
	Colors        config.Colors
	Slides        []deck.Slide
	Index         int
	Count         int
	Ratio         float64
	Transitioning bool
	Effect        effect.Frame
	EffectActive  bool
}

// Slideshow is a slide widget. All methods must be called from the goroutine that
// advances its clock.
type Slideshow struct {
	clock  clock.Clock
	loader *config.Loader
	opts   options
	log    *logger.Logger

	settings config.Settings
	attached bool

	engine   *transition.Engine
	renderer *effect.Renderer
	frames   *frameLoop
	autoplay *autoplay.Scheduler
	input    *input.Adapter

	// lastInput carries pointer and visibility state across rebuilds.
	lastInput *input.Adapter

	observer func(State)
}

// NewSlideshow creates a detached slideshow of the given variant configured with its
// defaults.
func NewSlideshow(c clock.Clock, variant deck.Name, opts ...Option) (*Slideshow, error) {
	if variant == deck.Welcome {
		return nil, errWelcomeVariant
	}
	o := buildOptions(opts)
	s := &Slideshow{
		clock:  c,
		loader: config.NewLoader(variant),
		opts:   o,
		log:    o.log.ForInstance(string(variant)),
	}

	settings, err := config.Resolve(s.loader.Current())
	if err != nil {
		return nil, err
	}
	s.settings = settings
	return s, nil
}

// OnRender registers a hook that runs after every state change the engine reports.
func (s *Slideshow) OnRender(fn func(State)) {
	s.observer = fn
}

// Attach renders the slides and starts the engine, effect surface and autoplay. A
// second Attach is a no-op.
func (s *Slideshow) Attach() {
	if s.attached {
		return
	}
	s.attached = true
	s.build()
	s.log.WithFields(map[string]any{
		"slides":   s.settings.Slides.Len(),
		"autoplay": s.autoplay.Interval().String(),
		"effect":   string(s.renderer.Kind()),
	}).Info("slideshow attached")
}

// Detach stops autoplay, the frame loop and any pending guard release. It leaves no
// timers behind.
func (s *Slideshow) Detach() {
	if !s.attached {
		return
	}
	s.attached = false
	s.teardown()
	s.log.Debug("slideshow detached")
}

// ConfigChange applies a new raw document. A document that fails to parse or validate
// is logged and the last good configuration is used instead. Either way the widget
// re-renders from slide 0.
func (s *Slideshow) ConfigChange(raw []byte) error {
	doc, err := s.loader.Load(raw)
	if err != nil {
		s.log.Warn(err, "invalid slideshow configuration, keeping last good settings")
	}

	settings, rerr := config.Resolve(doc)
	if rerr != nil {
		s.log.Error(rerr, "failed to resolve slideshow configuration")
		return rerr
	}
	s.settings = settings

	if s.attached {
		s.teardown()
		s.build()
	}
	return err
}

func (s *Slideshow) build() {
	set := s.settings
	gate := set.Gate
	if s.opts.gate != nil {
		gate = *s.opts.gate
	}

	s.renderer = effect.New(effectParams(set, s.opts.noEffects), s.opts.surface, s.opts.rendererOptions()...)
	s.renderer.Open(s.opts.width, s.opts.height)
	s.frames = &frameLoop{clock: s.clock, renderer: s.renderer, onFrame: s.render}

	s.engine = transition.New(s.clock, transition.Config{
		Count:  set.Slides.Len(),
		Policy: set.Variant.Policy,
		Hold:   set.Hold,
		Apply:  set.Variant.Apply,
	},
		transition.WithEffect(triggerFunc(s.triggerEffect)),
		transition.WithObserver(func(transition.State) { s.render() }),
	)

	s.autoplay = autoplay.New(s.clock, s.autoAdvance)

	s.input = input.New(s.engine, s.clock, input.Config{
		Gate:     gate,
		Debounce: set.Speed,
		Scroll:   set.Variant.ScrollInput,
	}, input.WithInteraction(s.autoplay.Restart))
	if s.lastInput != nil {
		s.input.CopyGate(s.lastInput)
	}

	s.autoplay.Start(set.AutoplayDelay)
	s.render()
}

func (s *Slideshow) teardown() {
	s.autoplay.Stop()
	s.frames.stop()
	s.engine.Close()
	s.renderer.Close()
	s.lastInput, s.input = s.input, nil
}

func (s *Slideshow) triggerEffect() {
	s.renderer.Trigger()
	s.frames.start()
}

// autoAdvance is the autoplay tick. Clamped decks start over from the first slide
// instead of stalling on the last one.
func (s *Slideshow) autoAdvance() {
	if s.engine.Policy() == deck.Clamp && s.engine.Current() == s.engine.Count()-1 {
		s.engine.GoTo(0)
		return
	}
	s.engine.Advance(1)
}

func (s *Slideshow) render() {
	if s.observer != nil {
		s.observer(s.State())
	}
}

// State returns the current snapshot.
func (s *Slideshow) State() State {
	st := State{
		Variant:  s.settings.Variant.Name,
		Title:    s.settings.Title,
		Subtitle: s.settings.Subtitle,
		Colors:   s.settings.Colors,
		Slides:   s.settings.Slides.All(),
		Count:    s.settings.Slides.Len(),
	}
	if s.engine != nil {
		es := s.engine.State()
		st.Index = es.Index
		st.Count = es.Count
		st.Transitioning = es.Transitioning
	}
	st.Ratio = transition.State{Index: st.Index, Count: st.Count}.Ratio()
	if s.renderer != nil && s.renderer.Active() {
		st.Effect = s.renderer.Frame()
		st.EffectActive = true
	}
	return st
}

// Input returns the adapter for the current configuration, or nil while detached. It
// changes when the configuration does, so callers should not hold on to it.
func (s *Slideshow) Input() *input.Adapter {
	return s.input
}

// Settings returns the resolved configuration.
func (s *Slideshow) Settings() config.Settings {
	return s.settings
}

// Attached reports whether the widget is live.
func (s *Slideshow) Attached() bool {
	return s.attached
}

// Resize forwards a new container size to the effect surface.
func (s *Slideshow) Resize(width, height int) {
	s.opts.width, s.opts.height = width, height
	if s.renderer != nil {
		s.renderer.Resize(width, height)
	}
}

type triggerFunc func()

func (f triggerFunc) Trigger() { f() }
