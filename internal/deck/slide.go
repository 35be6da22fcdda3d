package deck

import "fmt"

// Slide is one content unit of a deck. Fields are opaque to the transition engine.
type Slide struct {
	Number      string
	Label       string
	Title       string
	Tagline     string
	Description string
	Image       string
}

// Bounds is the inclusive slide-count range a variant accepts.
type Bounds struct {
	Min int
	Max int
}

// Clamp forces n into the range. A zero-value Bounds is treated as [1, 1].
func (b Bounds) Clamp(n int) int {
	lo, hi := b.Min, b.Max
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// SlideSet is an immutable ordered sequence of slides with at least one entry.
type SlideSet struct {
	slides []Slide
}

// NewSlideSet builds a set of exactly bounds.Clamp(count) slides. Supplied slides beyond
// that count are dropped; missing ones are produced by placeholder, which receives the
// 1-based slide number.
func NewSlideSet(slides []Slide, count int, bounds Bounds, placeholder func(n int) Slide) SlideSet {
	n := bounds.Clamp(count)
	if placeholder == nil {
		placeholder = DefaultPlaceholder
	}

	out := make([]Slide, n)
	for i := 0; i < n; i++ {
		if i < len(slides) {
			out[i] = fillSlide(slides[i], placeholder(i+1))
			continue
		}
		out[i] = placeholder(i + 1)
	}
	return SlideSet{slides: out}
}

// DefaultPlaceholder mirrors the labels an unconfigured slide shows.
func DefaultPlaceholder(n int) Slide {
	return Slide{
		Number:      fmt.Sprintf("%02d", n),
		Label:       fmt.Sprintf("SLIDE %d", n),
		Title:       fmt.Sprintf("Slide %d", n),
		Tagline:     "Your Tagline Here",
		Description: "Your description here.",
	}
}

func fillSlide(s, fallback Slide) Slide {
	if s.Number == "" {
		s.Number = fallback.Number
	}
	if s.Label == "" {
		s.Label = fallback.Label
	}
	if s.Title == "" {
		s.Title = fallback.Title
	}
	if s.Tagline == "" {
		s.Tagline = fallback.Tagline
	}
	if s.Description == "" {
		s.Description = fallback.Description
	}
	if s.Image == "" {
		s.Image = fallback.Image
	}
	return s
}

// Len returns the number of slides.
func (s SlideSet) Len() int {
	return len(s.slides)
}

// At returns the slide at index i. It panics on an out-of-range index like a slice would.
func (s SlideSet) At(i int) Slide {
	return s.slides[i]
}

// All returns a copy of the slides.
func (s SlideSet) All() []Slide {
	return append([]Slide(nil), s.slides...)
}
