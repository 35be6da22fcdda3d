package widget

import (
	"time"

	"github.com/alexisbeaulieu97/showreel/internal/clock"
	"github.com/alexisbeaulieu97/showreel/internal/effect"
)

// FrameInterval is the effect animation cadence.
const FrameInterval = time.Second / 60

// frameLoop steps an effect renderer by elapsed time while a run is active. It holds at
// most one pending timer and none once the run ends.
type frameLoop struct {
	clock    clock.Clock
	renderer *effect.Renderer
	timer    clock.Timer
	last     time.Time

	onFrame func()
	onDone  func()
}

func (f *frameLoop) start() {
	if f.timer != nil || !f.renderer.Active() {
		return
	}
	f.last = f.clock.Now()
	f.arm()
}

func (f *frameLoop) arm() {
	f.timer = f.clock.AfterFunc(FrameInterval, f.step)
}

func (f *frameLoop) step() {
	now := f.clock.Now()
	dt := now.Sub(f.last)
	f.last = now

	done := f.renderer.Advance(dt)
	if f.onFrame != nil {
		f.onFrame()
	}

	f.timer = nil
	if done {
		if f.onDone != nil {
			f.onDone()
		}
		return
	}
	if f.renderer.Active() {
		f.arm()
	}
}

func (f *frameLoop) stop() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

func (f *frameLoop) running() bool {
	return f.timer != nil
}
