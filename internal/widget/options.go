// Package widget hosts the transition engine, effect renderer, autoplay scheduler and
// input adapter behind the attach/detach/configure lifecycle of an embeddable widget.
package widget

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/showreel/internal/config"
	"github.com/alexisbeaulieu97/showreel/internal/deck"
	"github.com/alexisbeaulieu97/showreel/internal/effect"
	"github.com/alexisbeaulieu97/showreel/internal/logger"
)

// Option configures a Slideshow or a Welcome.
type Option func(*options)

type options struct {
	log       *logger.Logger
	surface   effect.Surface
	noEffects bool
	gate      *deck.Gate
	rng       *rand.Rand
	width     int
	height    int
}

func buildOptions(opts []Option) options {
	o := options{width: 80, height: 24}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the widget logger.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithSurface provides the effect surface. Without one the widget runs without effects.
func WithSurface(s effect.Surface) Option {
	return func(o *options) {
		o.surface = s
	}
}

// WithoutEffects disables effects regardless of configuration.
func WithoutEffects() Option {
	return func(o *options) {
		o.noEffects = true
	}
}

// WithGate overrides the configured scroll gate.
func WithGate(g deck.Gate) Option {
	return func(o *options) {
		o.gate = &g
	}
}

// WithRand makes particle seeding deterministic.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSize sets the initial container size in cells.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

// effectParams tunes the variant's effect to the configured palette.
func effectParams(s config.Settings, noEffects bool) effect.Params {
	kind, err := effect.ParseKind(s.Variant.Effect)
	if err != nil || noEffects || !s.Effects {
		kind = effect.KindNone
	}

	p := effect.ParamsFor(kind)
	if c, err := colorful.Hex(s.Colors.Accent); err == nil {
		p.Color = c
	}
	if kind == effect.KindRipple {
		if c, err := colorful.Hex(s.Colors.Primary); err == nil {
			p.Secondary = c
		}
	}
	return p
}

func (o options) rendererOptions() []effect.Option {
	opts := []effect.Option{effect.WithLogger(o.log)}
	if o.rng != nil {
		opts = append(opts, effect.WithRand(o.rng))
	}
	return opts
}
