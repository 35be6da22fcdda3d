package deck

import (
	"fmt"
	"time"
)

// Name identifies one of the widget variants.
type Name string

const (
	Ripple  Name = "ripple"
	Hearts  Name = "hearts"
	Journey Name = "journey"
	Welcome Name = "welcome"
)

// Variant bundles the navigation policy and defaults of one widget. Policies are kept
// per variant on purpose: each widget keeps the wrap/clamp and guard behaviour it was
// designed with.
type Variant struct {
	Name          Name
	Bounds        Bounds
	DefaultCount  int
	Speed         time.Duration
	AutoplayDelay time.Duration
	Policy        IndexPolicy
	Guard         GuardPolicy
	Apply         ApplyMode
	Effect        string
	ScrollInput   bool
	Gate          Gate
}

var variants = map[Name]Variant{
	Ripple: {
		Name:          Ripple,
		Bounds:        Bounds{Min: 1, Max: 10},
		DefaultCount:  4,
		Speed:         1200 * time.Millisecond,
		AutoplayDelay: 6 * time.Second,
		Policy:        Wrap,
		Guard:         GuardFull,
		Apply:         ApplyImmediate,
		Effect:        "ripple",
	},
	Hearts: {
		Name:          Hearts,
		Bounds:        Bounds{Min: 1, Max: 8},
		DefaultCount:  6,
		Speed:         1200 * time.Millisecond,
		AutoplayDelay: 5 * time.Second,
		Policy:        Wrap,
		Guard:         GuardCapped,
		Apply:         ApplyDeferred,
		Effect:        "hearts",
	},
	Journey: {
		Name:          Journey,
		Bounds:        Bounds{Min: 1, Max: 8},
		DefaultCount:  5,
		Speed:         800 * time.Millisecond,
		AutoplayDelay: 5 * time.Second,
		Policy:        Clamp,
		Guard:         GuardFull,
		Apply:         ApplyImmediate,
		Effect:        "none",
		ScrollInput:   true,
		Gate:          GatePointer,
	},
	Welcome: {
		Name:         Welcome,
		Bounds:       Bounds{Min: 1, Max: 1},
		DefaultCount: 1,
		Effect:       "burst",
	},
}

// Lookup returns the preset for name.
func Lookup(name Name) (Variant, error) {
	v, ok := variants[name]
	if !ok {
		return Variant{}, fmt.Errorf("unknown variant %q", name)
	}
	return v, nil
}

// Names lists the known variants in a stable order.
func Names() []Name {
	return []Name{Ripple, Hearts, Journey, Welcome}
}

// Hold returns the guard window for the given animation speed.
func (v Variant) Hold(speed time.Duration) time.Duration {
	return v.Guard.Hold(speed)
}
