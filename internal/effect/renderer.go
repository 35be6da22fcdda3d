// Package effect renders the decorative overlay that plays while a slide changes.
//
// A Renderer is driven by one scalar, progress, which runs from 0 to 1 after each
// Trigger. Every trigger reseeds the particles, so no two runs look the same. The
// renderer never reports back to navigation: when its surface cannot be opened it logs
// once and stays inactive, and the slides keep working.
package effect

import (
	"math/rand/v2"
	"time"

	"github.com/alexisbeaulieu97/showreel/internal/logger"
)

const completionEpsilon = 1e-9

// Option configures a Renderer.
type Option func(*Renderer)

// WithRand replaces the random source used to seed particles.
func WithRand(rng *rand.Rand) Option {
	return func(r *Renderer) {
		r.rng = rng
	}
}

// WithLogger sets the logger used to report surface failures.
func WithLogger(log *logger.Logger) Option {
	return func(r *Renderer) {
		r.log = log
	}
}

// Renderer owns one effect and the surface it draws on.
type Renderer struct {
	params  Params
	surface Surface
	rng     *rand.Rand
	log     *logger.Logger

	opened   bool
	disabled bool

	active    bool
	progress  float64
	center    Point
	particles []Particle
	width     int
	height    int
}

// New creates a renderer. The surface is not opened until Open is called. A nil surface
// or KindNone yields a renderer that never activates.
func New(params Params, surface Surface, opts ...Option) *Renderer {
	r := &Renderer{
		params:  params,
		surface: surface,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		center:  params.Center,
	}
	for _, opt := range opts {
		opt(r)
	}
	if params.Kind == KindNone || params.Kind == "" {
		r.disabled = true
	}
	return r
}

// Open brings up the surface at the given container size. On failure the renderer is
// disabled for the rest of its life and the error is logged once.
func (r *Renderer) Open(width, height int) {
	if r.disabled || r.opened {
		return
	}
	if r.surface == nil {
		r.disable(nil, "effect surface unavailable, continuing without effect")
		return
	}
	if err := r.surface.Open(width, height); err != nil {
		r.disable(err, "effect surface failed to open, continuing without effect")
		return
	}
	r.opened = true
	r.width, r.height = width, height
}

func (r *Renderer) disable(err error, msg string) {
	r.disabled = true
	r.active = false
	r.log.WithFields(map[string]any{"effect": string(r.params.Kind)}).Warn(err, msg)
}

// Trigger starts a run from the configured centre.
func (r *Renderer) Trigger() {
	r.TriggerAt(r.params.Center)
}

// TriggerAt starts a run centred on c. A run already in progress is restarted.
func (r *Renderer) TriggerAt(c Point) {
	if !r.Enabled() {
		return
	}
	p := r.params
	p.Center = c
	r.center = c
	r.progress = 0
	r.active = true
	r.particles = seedParticles(r.rng, p)
}

// Tick advances one frame by the fixed step. It reports whether this tick finished the
// run.
func (r *Renderer) Tick() bool {
	if !r.active {
		return false
	}
	return r.advance(r.params.Step)
}

// Advance moves progress forward by elapsed wall-clock time, independent of frame rate.
// It reports whether the run finished.
func (r *Renderer) Advance(dt time.Duration) bool {
	if !r.active {
		return false
	}
	total := r.params.TotalDuration()
	if total <= 0 {
		return r.advance(1)
	}
	return r.advance(float64(dt) / float64(total))
}

func (r *Renderer) advance(delta float64) bool {
	if delta < 0 {
		delta = 0
	}
	r.progress += delta
	done := r.progress >= 1-completionEpsilon
	if done {
		r.progress = 1
	}

	r.surface.Draw(r.Frame())

	if done {
		r.active = false
		r.progress = 0
		r.surface.Hide()
	}
	return done
}

// Resize matches the surface to a new container size.
func (r *Renderer) Resize(width, height int) {
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	if r.opened && !r.disabled {
		r.surface.Resize(width, height)
	}
}

// Close releases the surface and stops any run.
func (r *Renderer) Close() {
	r.active = false
	r.progress = 0
	if r.opened {
		r.surface.Close()
		r.opened = false
	}
}

// Frame computes the current uniforms.
func (r *Renderer) Frame() Frame {
	return buildFrame(r.params, r.center, r.particles, r.progress)
}

// Active reports whether a run is in progress.
func (r *Renderer) Active() bool {
	return r.active
}

// Progress returns the current progress in [0,1].
func (r *Renderer) Progress() float64 {
	return r.progress
}

// Enabled reports whether the renderer can run at all.
func (r *Renderer) Enabled() bool {
	return r.opened && !r.disabled
}

// Kind returns the configured effect kind.
func (r *Renderer) Kind() Kind {
	return r.params.Kind
}

// Particles returns a copy of the particles seeded by the last trigger.
func (r *Renderer) Particles() []Particle {
	return append([]Particle(nil), r.particles...)
}
