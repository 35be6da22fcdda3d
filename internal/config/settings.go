package config

import (
	"time"

	"github.com/alexisbeaulieu97/showreel/internal/deck"
	showreelerrors "github.com/alexisbeaulieu97/showreel/pkg/errors"
)

// Settings is a document resolved against its variant preset: everything a widget needs
// to build its engine, scheduler and input adapter.
type Settings struct {
	Variant  deck.Variant
	Title    string
	Subtitle string
	Slides   deck.SlideSet

	Speed         time.Duration
	Hold          time.Duration
	AutoplayDelay time.Duration
	Gate          deck.Gate
	Effects       bool

	Colors  Colors
	Welcome Welcome
}

// ShowOnce reports whether the welcome overlay is suppressed after its first dismissal.
func (s Settings) ShowOnce() bool {
	return s.Welcome.ShowOnce == nil || *s.Welcome.ShowOnce
}

// Resolve derives Settings from a validated document.
func Resolve(doc *Document) (Settings, error) {
	if doc == nil {
		return Settings{}, showreelerrors.NewValidationError("document", "document is nil", nil)
	}

	v, err := deck.Lookup(deck.Name(doc.Variant))
	if err != nil {
		return Settings{}, showreelerrors.NewValidationError("variant", err.Error(), err)
	}
	gate, err := deck.ParseGate(doc.Gate)
	if err != nil {
		return Settings{}, showreelerrors.NewValidationError("gate", err.Error(), err)
	}

	slides := make([]deck.Slide, 0, len(doc.Slides))
	for _, s := range doc.Slides {
		slides = append(slides, deck.Slide{
			Number:      s.Number,
			Label:       s.Label,
			Title:       s.Title,
			Tagline:     s.Tagline,
			Description: s.Description,
			Image:       s.Image,
		})
	}

	speed := time.Duration(doc.AnimationSpeedMS) * time.Millisecond
	autoplay := v.AutoplayDelay
	if doc.AutoplayDelayMS != nil {
		autoplay = time.Duration(max(*doc.AutoplayDelayMS, 0)) * time.Millisecond
	}

	s := Settings{
		Variant:       v,
		Title:         doc.Title,
		Subtitle:      doc.Subtitle,
		Slides:        deck.NewSlideSet(slides, doc.SlideCount, v.Bounds, nil),
		Speed:         speed,
		Hold:          v.Hold(speed),
		AutoplayDelay: autoplay,
		Gate:          gate,
		Effects:       doc.Effects == nil || *doc.Effects,
		Colors:        doc.Colors,
	}
	if doc.Welcome != nil {
		s.Welcome = *doc.Welcome
	}
	if s.Welcome.SeenKey == "" {
		s.Welcome.SeenKey = DefaultSeenKey
	}
	return s, nil
}
