package transition

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showreel/internal/clock"
	"github.com/alexisbeaulieu97/showreel/internal/deck"
)

var epoch = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type countingTrigger struct{ calls int }

func (c *countingTrigger) Trigger() { c.calls++ }

func newEngine(count int, policy deck.IndexPolicy, hold time.Duration, opts ...Option) (*Engine, *clock.Loop) {
	loop := clock.NewLoop(epoch)
	return New(loop, Config{Count: count, Policy: policy, Hold: hold}, opts...), loop
}

func TestWrapPolicyCyclesBothWays(t *testing.T) {
	e, loop := newEngine(4, deck.Wrap, 300*time.Millisecond)

	require.Equal(t, Moved, e.Advance(-1))
	assert.Equal(t, 3, e.Current())

	loop.Advance(300 * time.Millisecond)

	require.Equal(t, Moved, e.Advance(1))
	assert.Equal(t, 0, e.Current())
}

func TestClampPolicyStopsAtEnds(t *testing.T) {
	e, loop := newEngine(5, deck.Clamp, 300*time.Millisecond)

	res := e.Advance(-1)
	assert.Equal(t, Unmoved, res)
	assert.False(t, res.Consumed())
	assert.False(t, e.Transitioning(), "a boundary no-op must not close the guard")

	require.Equal(t, Moved, e.GoTo(4))
	loop.Advance(300 * time.Millisecond)

	res = e.Advance(1)
	assert.Equal(t, Unmoved, res)
	assert.False(t, res.Consumed())
	assert.Equal(t, 4, e.Current())
}

func TestGuardDropsRequestsInsideWindow(t *testing.T) {
	e, loop := newEngine(4, deck.Wrap, 300*time.Millisecond)

	require.Equal(t, Moved, e.Advance(1))
	loop.Advance(100 * time.Millisecond)

	res := e.Advance(1)
	assert.Equal(t, Busy, res)
	assert.True(t, res.Consumed())
	assert.Equal(t, 1, e.Current())
	assert.Equal(t, Busy, e.GoTo(3))

	loop.Advance(199 * time.Millisecond)
	assert.True(t, e.Transitioning())

	loop.Advance(time.Millisecond)
	assert.False(t, e.Transitioning())
	assert.Equal(t, Moved, e.Advance(1))
	assert.Equal(t, 2, e.Current())
}

func TestGoToValidation(t *testing.T) {
	e, _ := newEngine(3, deck.Wrap, time.Second)

	assert.Equal(t, Rejected, e.GoTo(-1))
	assert.Equal(t, Rejected, e.GoTo(3))
	assert.Equal(t, Unmoved, e.GoTo(0))
	assert.False(t, e.Transitioning())
	assert.Equal(t, Moved, e.GoTo(2))
	assert.Equal(t, 2, e.Current())
}

func TestAdvanceRejectsBadDirection(t *testing.T) {
	e, _ := newEngine(3, deck.Wrap, time.Second)
	assert.Equal(t, Rejected, e.Advance(0))
	assert.Equal(t, Rejected, e.Advance(2))
	assert.Equal(t, 0, e.Current())
}

func TestSingleSlideWrapIsUnmoved(t *testing.T) {
	e, _ := newEngine(1, deck.Wrap, time.Second)
	assert.Equal(t, Unmoved, e.Advance(1))
	assert.Equal(t, Unmoved, e.Advance(-1))
}

func TestNewForcesPositiveCount(t *testing.T) {
	e, _ := newEngine(0, deck.Clamp, time.Second)
	assert.Equal(t, 1, e.Count())
}

func TestDeferredApplyChangesIndexWhenGuardReleases(t *testing.T) {
	loop := clock.NewLoop(epoch)
	effect := &countingTrigger{}
	var states []State
	e := New(loop, Config{Count: 6, Policy: deck.Wrap, Hold: 300 * time.Millisecond, Apply: deck.ApplyDeferred},
		WithEffect(effect),
		WithObserver(func(s State) { states = append(states, s) }))

	require.Equal(t, Moved, e.Advance(1))
	assert.Equal(t, 1, effect.calls, "effect fires with the request, not the apply")
	assert.Equal(t, 0, e.Current())

	loop.Advance(300 * time.Millisecond)
	assert.Equal(t, 1, e.Current())
	require.Len(t, states, 2)
	assert.Equal(t, State{Index: 0, Count: 6, Transitioning: true}, states[0])
	assert.Equal(t, State{Index: 1, Count: 6, Transitioning: false}, states[1])
}

func TestObserverSeesRatio(t *testing.T) {
	var last State
	e, _ := newEngine(4, deck.Wrap, time.Second, WithObserver(func(s State) { last = s }))
	e.GoTo(1)
	assert.InDelta(t, 0.5, last.Ratio(), 1e-9)
}

func TestCloseCancelsGuard(t *testing.T) {
	e, loop := newEngine(4, deck.Wrap, time.Second)
	e.Advance(1)
	require.Equal(t, 1, loop.Pending())

	e.Close()
	assert.Equal(t, 0, loop.Pending())
	assert.False(t, e.Transitioning())
}

func TestResetReturnsToFirstSlide(t *testing.T) {
	e, loop := newEngine(4, deck.Wrap, time.Second)
	e.GoTo(3)
	e.Reset()
	assert.Equal(t, 0, e.Current())
	assert.Equal(t, 0, loop.Pending())
	assert.Equal(t, Moved, e.Advance(1))
}

// Random call sequences must keep the index in range and never overlap two guard
// windows.
func TestInvariantsUnderRandomNavigation(t *testing.T) {
	for _, policy := range []deck.IndexPolicy{deck.Wrap, deck.Clamp} {
		for _, apply := range []deck.ApplyMode{deck.ApplyImmediate, deck.ApplyDeferred} {
			rng := rand.New(rand.NewPCG(uint64(policy)+1, uint64(apply)+7))
			loop := clock.NewLoop(epoch)
			hold := 300 * time.Millisecond
			count := rng.IntN(8) + 1
			e := New(loop, Config{Count: count, Policy: policy, Hold: hold, Apply: apply})

			var lastAccepted time.Time
			accepted := false
			for i := 0; i < 2000; i++ {
				var res Result
				if rng.IntN(3) == 0 {
					res = e.GoTo(rng.IntN(count+2) - 1)
				} else {
					res = e.Advance([]int{-1, 1}[rng.IntN(2)])
				}
				if res == Moved {
					if accepted {
						require.GreaterOrEqual(t, loop.Now().Sub(lastAccepted), hold)
					}
					lastAccepted = loop.Now()
					accepted = true
				}
				require.GreaterOrEqual(t, e.Current(), 0)
				require.Less(t, e.Current(), count)

				loop.Advance(time.Duration(rng.IntN(200)) * time.Millisecond)
				require.GreaterOrEqual(t, e.Current(), 0)
				require.Less(t, e.Current(), count)
			}
		}
	}
}

// The same input sequence produces the same index sequence with or without an effect.
func TestEffectDoesNotChangeNavigation(t *testing.T) {
	run := func(withEffect bool) []int {
		loop := clock.NewLoop(epoch)
		var opts []Option
		if withEffect {
			opts = append(opts, WithEffect(&countingTrigger{}))
		}
		e := New(loop, Config{Count: 5, Policy: deck.Clamp, Hold: 200 * time.Millisecond}, opts...)
		rng := rand.New(rand.NewPCG(42, 42))
		var seen []int
		for i := 0; i < 500; i++ {
			e.Advance([]int{-1, 1}[rng.IntN(2)])
			loop.Advance(time.Duration(rng.IntN(400)) * time.Millisecond)
			seen = append(seen, e.Current())
		}
		return seen
	}

	assert.Equal(t, run(false), run(true))
}

func TestResultStrings(t *testing.T) {
	assert.Equal(t, "moved", Moved.String())
	assert.Equal(t, "unmoved", Unmoved.String())
	assert.Contains(t, Result(99).String(), "99")
}
