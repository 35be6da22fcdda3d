// Package autoplay advances a widget on a fixed interval.
package autoplay

import (
	"time"

	"github.com/alexisbeaulieu97/showreel/internal/clock"
)

// Scheduler holds at most one live repeating timer.
type Scheduler struct {
	clock    clock.Clock
	fire     func()
	timer    clock.Timer
	interval time.Duration
}

// New creates a stopped scheduler that calls fire on every tick.
func New(c clock.Clock, fire func()) *Scheduler {
	return &Scheduler{clock: c, fire: fire}
}

// Start replaces any running timer with one that fires every interval. A non-positive
// interval leaves autoplay off.
func (s *Scheduler) Start(interval time.Duration) {
	s.Stop()
	s.interval = interval
	if interval <= 0 {
		return
	}
	s.arm()
}

func (s *Scheduler) arm() {
	var timer clock.Timer
	timer = s.clock.AfterFunc(s.interval, func() {
		if s.timer != timer {
			return
		}
		// Re-arm before firing so a Reset inside fire replaces this tick's successor.
		s.arm()
		if s.fire != nil {
			s.fire()
		}
	})
	s.timer = timer
}

// Stop cancels the timer. It is safe to call when nothing is scheduled.
func (s *Scheduler) Stop() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Reset restarts the cadence from now with the given interval.
func (s *Scheduler) Reset(interval time.Duration) {
	s.Stop()
	s.Start(interval)
}

// Restart restarts the cadence with the interval last passed to Start. It does nothing
// when autoplay is off.
func (s *Scheduler) Restart() {
	if s.interval <= 0 {
		return
	}
	s.Reset(s.interval)
}

// Running reports whether a timer is scheduled.
func (s *Scheduler) Running() bool {
	return s.timer != nil
}

// Interval returns the interval last passed to Start.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}
