package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showreel/internal/clock"
	"github.com/alexisbeaulieu97/showreel/internal/deck"
	"github.com/alexisbeaulieu97/showreel/internal/transition"
)

var epoch = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

const speed = 800 * time.Millisecond

type fixture struct {
	loop     *clock.Loop
	engine   *transition.Engine
	adapter  *Adapter
	interact int
}

func newFixture(t *testing.T, count int, policy deck.IndexPolicy, gate deck.Gate) *fixture {
	t.Helper()
	f := &fixture{loop: clock.NewLoop(epoch)}
	f.engine = transition.New(f.loop, transition.Config{Count: count, Policy: policy, Hold: speed})
	f.adapter = New(f.engine, f.loop, Config{Gate: gate, Debounce: speed, Scroll: true},
		WithInteraction(func() { f.interact++ }))
	return f
}

func TestControlsAreAlwaysConsumed(t *testing.T) {
	f := newFixture(t, 5, deck.Clamp, deck.GatePointer)

	assert.True(t, f.adapter.Previous(), "boundary no-op is still consumed")
	assert.Equal(t, 0, f.engine.Current())
	assert.Zero(t, f.interact)

	assert.True(t, f.adapter.Next())
	assert.Equal(t, 1, f.engine.Current())
	assert.Equal(t, 1, f.interact)

	assert.True(t, f.adapter.Select(3), "busy request is consumed")
	assert.Equal(t, 1, f.engine.Current())
	assert.Equal(t, 1, f.interact)

	f.loop.Advance(speed)
	assert.True(t, f.adapter.Select(3))
	assert.Equal(t, 3, f.engine.Current())
	assert.Equal(t, 2, f.interact)
}

func TestWheelRequiresOpenGate(t *testing.T) {
	f := newFixture(t, 5, deck.Clamp, deck.GatePointer)

	assert.False(t, f.adapter.Wheel(120))
	assert.Equal(t, 0, f.engine.Current())

	f.adapter.PointerEnter()
	assert.True(t, f.adapter.Wheel(120))
	assert.Equal(t, 1, f.engine.Current())
	assert.Equal(t, 1, f.interact)

	f.loop.Advance(speed)
	f.adapter.PointerLeave()
	assert.False(t, f.adapter.Wheel(120))
	assert.Equal(t, 1, f.engine.Current())
}

func TestViewportGateFollowsVisibility(t *testing.T) {
	f := newFixture(t, 5, deck.Clamp, deck.GateViewport)

	assert.True(t, f.adapter.Gated())
	f.adapter.SetVisible(false)
	assert.False(t, f.adapter.Wheel(120))

	f.adapter.SetVisible(true)
	assert.True(t, f.adapter.Wheel(120))
	assert.Equal(t, 1, f.engine.Current())
}

func TestWheelPassesThroughAtBoundaries(t *testing.T) {
	f := newFixture(t, 5, deck.Clamp, deck.GatePointer)
	f.adapter.PointerEnter()

	assert.False(t, f.adapter.Wheel(-120), "scrolling back from the first slide belongs to the page")

	require.Equal(t, transition.Moved, f.engine.GoTo(4))
	f.loop.Advance(speed)
	assert.False(t, f.adapter.Wheel(120), "scrolling past the last slide belongs to the page")
	assert.Equal(t, 4, f.engine.Current())

	assert.True(t, f.adapter.Wheel(-120))
	assert.Equal(t, 3, f.engine.Current())
}

func TestWheelDebounceSwallowsBurst(t *testing.T) {
	f := newFixture(t, 5, deck.Clamp, deck.GatePointer)
	f.adapter.PointerEnter()

	require.True(t, f.adapter.Wheel(120))
	for range 10 {
		f.loop.Advance(50 * time.Millisecond)
		assert.True(t, f.adapter.Wheel(120), "events inside the window are consumed")
	}
	assert.Equal(t, 1, f.engine.Current(), "one burst yields one move")

	f.loop.Advance(speed)
	require.True(t, f.adapter.Wheel(120))
	assert.Equal(t, 2, f.engine.Current())
}

func TestWheelZeroDeltaIgnored(t *testing.T) {
	f := newFixture(t, 5, deck.Clamp, deck.GatePointer)
	f.adapter.PointerEnter()

	assert.False(t, f.adapter.Wheel(0))
	assert.Equal(t, 0, f.engine.Current())
}

func TestScrollDisabledPassesEverythingThrough(t *testing.T) {
	loop := clock.NewLoop(epoch)
	engine := transition.New(loop, transition.Config{Count: 4, Policy: deck.Wrap, Hold: speed})
	a := New(engine, loop, Config{Gate: deck.GatePointer, Debounce: speed})
	a.PointerEnter()

	assert.False(t, a.Gated())
	assert.False(t, a.Wheel(120))
	a.TouchStart(300)
	assert.False(t, a.TouchEnd(100))
	assert.Equal(t, 0, engine.Current())
}

func TestSwipe(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		from, to float64
		consumed bool
		want     int
	}{
		{name: "up past threshold moves forward", start: 1, from: 300, to: 200, consumed: true, want: 2},
		{name: "down past threshold moves back", start: 1, from: 200, to: 300, consumed: true, want: 0},
		{name: "short swipe ignored", start: 1, from: 300, to: 260, consumed: false, want: 1},
		{name: "exactly threshold ignored", start: 1, from: 300, to: 250, consumed: false, want: 1},
		{name: "forward at last slide passes through", start: 4, from: 300, to: 100, consumed: false, want: 4},
		{name: "back at first slide passes through", start: 0, from: 100, to: 300, consumed: false, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 5, deck.Clamp, deck.GatePointer)
			if tt.start > 0 {
				require.Equal(t, transition.Moved, f.engine.GoTo(tt.start))
				f.loop.Advance(speed)
			}

			f.adapter.TouchStart(tt.from)
			assert.Equal(t, tt.consumed, f.adapter.TouchEnd(tt.to))
			assert.Equal(t, tt.want, f.engine.Current())
		})
	}
}

func TestTouchEndWithoutStart(t *testing.T) {
	f := newFixture(t, 5, deck.Clamp, deck.GatePointer)

	assert.False(t, f.adapter.TouchEnd(0))
	assert.Equal(t, 0, f.engine.Current())
}

func TestSwipeSharesDebounceWithWheel(t *testing.T) {
	f := newFixture(t, 5, deck.Clamp, deck.GatePointer)
	f.adapter.PointerEnter()

	require.True(t, f.adapter.Wheel(120))
	f.adapter.TouchStart(300)
	assert.True(t, f.adapter.TouchEnd(100))
	assert.Equal(t, 1, f.engine.Current())
}
