package effect

import (
	"math"
	"math/rand/v2"
)

// Particle holds the per-instance attributes drawn when an effect is triggered.
type Particle struct {
	X     float64
	Y     float64
	Size  float64
	Alpha float64
	Phase float64
	Speed float64
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// seedParticles draws a fresh batch. Distributions are uniform over the ranges each
// kind was tuned with.
func seedParticles(rng *rand.Rand, p Params) []Particle {
	if p.Count <= 0 {
		return nil
	}
	out := make([]Particle, p.Count)
	for i := range out {
		switch p.Kind {
		case KindBurst:
			out[i] = Particle{
				X:     p.Center.X + uniform(rng, -0.05, 0.05),
				Y:     p.Center.Y + uniform(rng, -0.05, 0.05),
				Size:  uniform(rng, 15, 55),
				Alpha: uniform(rng, 0.2, 1.0),
				Phase: uniform(rng, 0, 2*math.Pi),
				Speed: uniform(rng, 0.7, 1.2),
			}
		case KindHearts:
			out[i] = Particle{
				X:     uniform(rng, 0, 1),
				Y:     uniform(rng, 1.0, 1.2),
				Size:  uniform(rng, 20, 60),
				Alpha: uniform(rng, 0.3, 0.9),
				Phase: uniform(rng, 0, 2*math.Pi),
				Speed: uniform(rng, 0.5, 0.8),
			}
		}
	}
	return out
}
