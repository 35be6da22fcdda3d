package effect

import (
	"fmt"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Kind names an effect style.
type Kind string

const (
	KindNone   Kind = "none"
	KindBurst  Kind = "burst"
	KindRipple Kind = "ripple"
	KindHearts Kind = "hearts"
)

// ParseKind maps a configuration string to a Kind. The empty string is KindNone.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "", KindNone:
		return KindNone, nil
	case KindBurst, KindRipple, KindHearts:
		return Kind(s), nil
	default:
		return KindNone, fmt.Errorf("unknown effect %q", s)
	}
}

// Point is a position in unit space: (0,0) top-left, (1,1) bottom-right.
type Point struct {
	X float64
	Y float64
}

// refreshRate converts a per-frame step into a wall-clock duration.
const refreshRate = 60

// Params describes one effect.
type Params struct {
	Kind  Kind
	Count int

	// Step is the per-frame progress increment used by Tick.
	Step float64
	// Duration is the time-to-completion used by Advance. Zero derives it from Step.
	Duration time.Duration

	Center    Point
	Color     colorful.Color
	Secondary colorful.Color
	BaseAlpha float64
}

// ParamsFor returns the tuned defaults for kind.
func ParamsFor(kind Kind) Params {
	gold := colorful.Color{R: 0.83, G: 0.69, B: 0.22}
	switch kind {
	case KindBurst:
		return Params{
			Kind:      KindBurst,
			Count:     400,
			Step:      0.01,
			Center:    Point{X: 0.5, Y: 0.5},
			Color:     gold,
			Secondary: colorful.Color{R: 1, G: 1, B: 1},
			BaseAlpha: 1,
		}
	case KindRipple:
		return Params{
			Kind:      KindRipple,
			Step:      0.012,
			Center:    Point{X: 0.5, Y: 0.5},
			Color:     gold,
			Secondary: colorful.Color{R: 0.04, G: 0.1, B: 0.18},
			BaseAlpha: 0.6,
		}
	case KindHearts:
		return Params{
			Kind:      KindHearts,
			Count:     50,
			Step:      0.008,
			Center:    Point{X: 0.5, Y: 0.5},
			Color:     colorful.Color{R: 0.72, G: 0.43, B: 0.47},
			BaseAlpha: 1,
		}
	default:
		return Params{Kind: KindNone}
	}
}

// TotalDuration is how long one run lasts under elapsed-time stepping.
func (p Params) TotalDuration() time.Duration {
	if p.Duration > 0 {
		return p.Duration
	}
	if p.Step <= 0 {
		return 0
	}
	frames := math.Ceil(1/p.Step - completionEpsilon)
	return time.Duration(frames * float64(time.Second) / refreshRate)
}
