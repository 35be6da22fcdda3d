package widget

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/alexisbeaulieu97/showreel/internal/clock"
	"github.com/alexisbeaulieu97/showreel/internal/effect"
)

var epoch = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type recordingSurface struct {
	openErr error
	opens   int
	draws   int
	hides   int
	closes  int
}

func (s *recordingSurface) Open(int, int) error { s.opens++; return s.openErr }
func (s *recordingSurface) Resize(int, int)     {}
func (s *recordingSurface) Draw(effect.Frame)   { s.draws++ }
func (s *recordingSurface) Hide()               { s.hides++ }
func (s *recordingSurface) Close()              { s.closes++ }

var errNoColour = errors.New("terminal has no colour support")

func newLoop() *clock.Loop {
	return clock.NewLoop(epoch)
}

func seeded() Option {
	return WithRand(rand.New(rand.NewPCG(7, 11)))
}
