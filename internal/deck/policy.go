package deck

import (
	"fmt"
	"time"
)

// IndexPolicy decides what happens when navigation runs past either end of the deck.
type IndexPolicy int

const (
	// Wrap cycles from the last slide to the first and back.
	Wrap IndexPolicy = iota
	// Clamp stops at either end and reports the request as not consumed.
	Clamp
)

func (p IndexPolicy) String() string {
	switch p {
	case Wrap:
		return "wrap"
	case Clamp:
		return "clamp"
	default:
		return fmt.Sprintf("IndexPolicy(%d)", int(p))
	}
}

// GuardPolicy decides how long the transition guard stays closed.
type GuardPolicy int

const (
	// GuardFull holds the guard for the whole animation speed.
	GuardFull GuardPolicy = iota
	// GuardCapped holds the guard for min(animation speed, GuardCap).
	GuardCapped
)

// GuardCap is the upper bound applied by GuardCapped.
const GuardCap = 300 * time.Millisecond

// Hold resolves the guard window for the given animation speed.
func (g GuardPolicy) Hold(speed time.Duration) time.Duration {
	if g == GuardCapped && speed > GuardCap {
		return GuardCap
	}
	return speed
}

func (g GuardPolicy) String() string {
	if g == GuardCapped {
		return "capped"
	}
	return "full"
}

// ApplyMode decides when an accepted index change becomes visible.
type ApplyMode int

const (
	// ApplyImmediate changes the index inside the navigation call.
	ApplyImmediate ApplyMode = iota
	// ApplyDeferred changes the index when the guard releases.
	ApplyDeferred
)

// Gate decides when scroll-style input belongs to the widget rather than the page.
type Gate int

const (
	// GatePointer intercepts scroll input only while the pointer is over the widget.
	GatePointer Gate = iota
	// GateViewport intercepts scroll input while the widget is visible.
	GateViewport
)

func (g Gate) String() string {
	if g == GateViewport {
		return "viewport"
	}
	return "pointer"
}

// ParseGate maps a configuration string to a Gate.
func ParseGate(s string) (Gate, error) {
	switch s {
	case "", "pointer":
		return GatePointer, nil
	case "viewport":
		return GateViewport, nil
	default:
		return GatePointer, fmt.Errorf("unknown gate %q", s)
	}
}
