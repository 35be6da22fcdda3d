package effect

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Sprite is one particle's position and look at a given progress.
type Sprite struct {
	X     float64
	Y     float64
	Size  float64
	Alpha float64
}

// Frame is the declarative output of a renderer for one progress value.
type Frame struct {
	Kind     Kind
	Progress float64
	Alpha    float64
	Center   Point
	Radius   float64
	Color    colorful.Color
	Sprites  []Sprite
}

func smoothstep(edge0, edge1, x float64) float64 {
	t := (x - edge0) / (edge1 - edge0)
	t = math.Max(0, math.Min(1, t))
	return t * t * (3 - 2*t)
}

// fade is the global alpha envelope for kind at progress p.
func fade(kind Kind, p, base float64) float64 {
	switch kind {
	case KindBurst:
		return base * (1 - p*p)
	case KindHearts:
		return base * (1 - p)
	case KindRipple:
		return base * (1 - p*0.8) * smoothstep(0, 0.2, p) * smoothstep(1, 0.8, p)
	default:
		return 0
	}
}

func buildFrame(params Params, center Point, particles []Particle, p float64) Frame {
	f := Frame{
		Kind:     params.Kind,
		Progress: p,
		Alpha:    fade(params.Kind, p, params.BaseAlpha),
		Center:   center,
		Color:    params.Color,
	}

	switch params.Kind {
	case KindBurst:
		f.Color = params.Color.BlendRgb(params.Secondary, p)
		f.Sprites = make([]Sprite, len(particles))
		for i, pt := range particles {
			f.Sprites[i] = burstSprite(pt, center, p)
		}
	case KindHearts:
		f.Sprites = make([]Sprite, len(particles))
		for i, pt := range particles {
			f.Sprites[i] = Sprite{
				X:     pt.X + math.Sin(p*2*math.Pi+pt.Y*10)*0.05,
				Y:     pt.Y - p*pt.Speed*1.5,
				Size:  pt.Size,
				Alpha: pt.Alpha * (1 - p),
			}
		}
	case KindRipple:
		f.Radius = p * 1.2
	}
	return f
}

// burstSprite spirals a particle away from the centre while it shrinks and fades.
func burstSprite(pt Particle, center Point, p float64) Sprite {
	dx, dy := pt.X-center.X, pt.Y-center.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		dx, dy, length = 1, 0, 1
	}
	dx, dy = dx/length, dy/length

	angle := pt.Phase + p*2*math.Pi
	cos, sin := math.Cos(angle), math.Sin(angle)
	dx, dy = dx*cos-dy*sin, dx*sin+dy*cos

	distance := p * pt.Speed * 2.5
	x := pt.X + dx*distance + math.Sin(p*2*math.Pi+pt.Phase)*0.05*p
	y := pt.Y + dy*distance + math.Cos(p*2*math.Pi+pt.Phase)*0.05*p

	return Sprite{
		X:     x,
		Y:     y,
		Size:  pt.Size * math.Sin(p*math.Pi) * 1.5,
		Alpha: pt.Alpha * (1 - p*p),
	}
}

// rippleIntensity is the ring strength at distance d from the centre.
func rippleIntensity(d, p float64) float64 {
	r1 := math.Sin((d - p*1.5) * 15)
	r2 := math.Sin((d - p*1.2) * 20)
	ripple := (r1 + r2) * 0.5
	ripple *= smoothstep(1, 0, math.Abs(d-p*1.2)*2.5)
	return math.Abs(ripple)
}
