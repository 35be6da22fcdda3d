package tui

import "time"

// FrameInterval is the TUI refresh cadence. Every frame advances the widget clock.
const FrameInterval = time.Second / 30

// maxFrameStep bounds how far one frame may move the clock, so a suspended terminal
// does not replay minutes of autoplay at once.
const maxFrameStep = 250 * time.Millisecond

type frameMsg time.Time

// ReloadMsg carries a new raw configuration document for the hosted widget.
type ReloadMsg struct {
	Data []byte
}
