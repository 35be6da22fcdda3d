// Package clock provides the timer queue that every showreel widget runs on.
//
// Widgets never touch time.AfterFunc directly. They schedule callbacks on a [Clock], and
// the host decides when those callbacks run. [Loop] is the only implementation: a
// virtual-time queue whose callbacks fire inside [Loop.AdvanceTo] on the caller's
// goroutine. The terminal UI advances it from its frame tick, which keeps every state
// mutation on bubbletea's single Update goroutine; tests advance it by hand.
package clock

import "time"

// Clock schedules callbacks against a time source.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a handle to one scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the callback was still pending.
	Stop() bool
}

// Loop is a single-threaded timer queue. It is not safe for concurrent use; all calls
// must come from the goroutine that advances it.
type Loop struct {
	now     time.Time
	seq     uint64
	pending []*loopTimer
}

type loopTimer struct {
	loop *Loop
	when time.Time
	seq  uint64
	fn   func()
	done bool
}

// NewLoop creates a loop whose virtual time starts at start.
func NewLoop(start time.Time) *Loop {
	return &Loop{now: start}
}

// Now returns the loop's current virtual time.
func (l *Loop) Now() time.Time {
	return l.now
}

// AfterFunc schedules f to run once the loop has advanced by d. Negative durations are
// treated as zero; the callback still waits for the next advance.
func (l *Loop) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	l.seq++
	t := &loopTimer{loop: l, when: l.now.Add(d), seq: l.seq, fn: f}
	l.pending = append(l.pending, t)
	return t
}

// Advance moves virtual time forward by d and runs every callback that falls due.
func (l *Loop) Advance(d time.Duration) int {
	return l.AdvanceTo(l.now.Add(d))
}

// AdvanceTo moves virtual time to t, running due callbacks in deadline order. Timers
// scheduled by a callback fire in the same call if they fall due before t. Time never
// moves backwards. It returns the number of callbacks run.
func (l *Loop) AdvanceTo(t time.Time) int {
	fired := 0
	for {
		next := l.nextDue(t)
		if next == nil {
			break
		}
		l.remove(next)
		next.done = true
		if next.when.After(l.now) {
			l.now = next.when
		}
		next.fn()
		fired++
	}
	if t.After(l.now) {
		l.now = t
	}
	return fired
}

// Pending reports the number of callbacks still scheduled.
func (l *Loop) Pending() int {
	return len(l.pending)
}

func (l *Loop) nextDue(t time.Time) *loopTimer {
	var best *loopTimer
	for _, candidate := range l.pending {
		if candidate.when.After(t) {
			continue
		}
		if best == nil || candidate.when.Before(best.when) ||
			(candidate.when.Equal(best.when) && candidate.seq < best.seq) {
			best = candidate
		}
	}
	return best
}

func (l *Loop) remove(target *loopTimer) {
	for i, candidate := range l.pending {
		if candidate == target {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			return
		}
	}
}

func (t *loopTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.loop.remove(t)
	return true
}
