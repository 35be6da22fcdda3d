package autoplay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showreel/internal/clock"
)

var epoch = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestStartFiresEveryInterval(t *testing.T) {
	loop := clock.NewLoop(epoch)
	fired := 0
	s := New(loop, func() { fired++ })

	s.Start(5 * time.Second)
	loop.Advance(4999 * time.Millisecond)
	assert.Zero(t, fired)

	loop.Advance(time.Millisecond)
	assert.Equal(t, 1, fired)

	loop.Advance(10 * time.Second)
	assert.Equal(t, 3, fired)
	assert.Equal(t, 1, loop.Pending())
	assert.Equal(t, 5*time.Second, s.Interval())
}

func TestStartTwiceKeepsOneTimer(t *testing.T) {
	loop := clock.NewLoop(epoch)
	fired := 0
	s := New(loop, func() { fired++ })

	s.Start(time.Second)
	s.Start(time.Second)

	assert.Equal(t, 1, loop.Pending())
	loop.Advance(time.Second)
	assert.Equal(t, 1, fired)
	loop.Advance(3 * time.Second)
	assert.Equal(t, 4, fired)
}

func TestStopIsIdempotent(t *testing.T) {
	loop := clock.NewLoop(epoch)
	s := New(loop, func() { t.Fatal("stopped scheduler fired") })

	s.Stop()
	s.Start(time.Second)
	s.Stop()
	s.Stop()

	assert.False(t, s.Running())
	assert.Equal(t, 0, loop.Pending())
	loop.Advance(time.Minute)
}

func TestNonPositiveIntervalDisables(t *testing.T) {
	loop := clock.NewLoop(epoch)
	s := New(loop, func() { t.Fatal("disabled scheduler fired") })

	s.Start(0)
	assert.False(t, s.Running())
	s.Start(-time.Second)
	assert.False(t, s.Running())
	s.Restart()
	assert.False(t, s.Running())

	loop.Advance(time.Hour)
}

func TestResetRestartsCadence(t *testing.T) {
	loop := clock.NewLoop(epoch)
	var at []time.Duration
	s := New(loop, func() { at = append(at, loop.Now().Sub(epoch)) })

	s.Start(5 * time.Second)
	loop.Advance(4 * time.Second)
	s.Restart()
	loop.Advance(5 * time.Second)

	require.Len(t, at, 1)
	assert.Equal(t, 9*time.Second, at[0])
}

func TestResetFromInsideFireLeavesOneTimer(t *testing.T) {
	loop := clock.NewLoop(epoch)
	var s *Scheduler
	fired := 0
	s = New(loop, func() {
		fired++
		s.Reset(time.Second)
	})

	s.Start(time.Second)
	loop.Advance(time.Second)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 1, loop.Pending())

	loop.Advance(2 * time.Second)
	assert.Equal(t, 3, fired)
	assert.Equal(t, 1, loop.Pending())
}

func TestStopFromInsideFire(t *testing.T) {
	loop := clock.NewLoop(epoch)
	var s *Scheduler
	s = New(loop, func() { s.Stop() })

	s.Start(time.Second)
	loop.Advance(5 * time.Second)
	assert.False(t, s.Running())
	assert.Equal(t, 0, loop.Pending())
}
