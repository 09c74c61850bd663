// Package motion drives the spring animations of the content area:
// smooth anchor scrolling and the fade-in of cards entering the viewport.
package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/lucasb-eyer/go-colorful"
)

// FPS is the animation frame rate
const FPS = 60

// FrameInterval is the delay between animation frames
const FrameInterval = time.Second / FPS

const (
	scrollFrequency = 7.0
	revealFrequency = 5.0
	criticalDamping = 1.0
	settleEpsilon   = 0.01
)

// Scroller eases a viewport offset toward a target line
type Scroller struct {
	spring  harmonica.Spring
	pos     float64
	vel     float64
	target  float64
	active  bool
	enabled bool
}

// NewScroller creates a scroller; when disabled ScrollTo jumps immediately
func NewScroller(enabled bool) *Scroller {
	return &Scroller{
		spring:  harmonica.NewSpring(harmonica.FPS(FPS), scrollFrequency, criticalDamping),
		enabled: enabled,
	}
}

// ScrollTo starts a smooth scroll from current to target
func (s *Scroller) ScrollTo(current, target int) {
	s.pos = float64(current)
	s.vel = 0
	s.target = float64(target)
	s.active = current != target
	if !s.enabled {
		s.pos = s.target
		s.active = false
	}
}

// Active reports whether frames are still needed
func (s *Scroller) Active() bool {
	return s.active
}

// Offset returns the current whole-line offset
func (s *Scroller) Offset() int {
	return int(math.Round(s.pos))
}

// Step advances one frame and returns the offset to show
func (s *Scroller) Step() int {
	if !s.active {
		return s.Offset()
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < 0.5 && math.Abs(s.vel) < 0.5 {
		s.pos = s.target
		s.vel = 0
		s.active = false
	}
	return s.Offset()
}

// Stop abandons the animation where it is
func (s *Scroller) Stop() {
	s.active = false
	s.vel = 0
}

// Span is the vertical extent of a card in content lines
type Span struct {
	Start int
	Lines int
}

// Intersects reports whether at least 10% of span is inside the viewport
// [top, top+height) shrunk by a one-line bottom margin.
func Intersects(span Span, top, height int) bool {
	if span.Lines <= 0 || height <= 0 {
		return false
	}
	bottom := top + height - 1
	if bottom <= top {
		bottom = top + 1
	}
	lo := max(span.Start, top)
	hi := min(span.Start+span.Lines, bottom)
	visible := hi - lo
	if visible <= 0 {
		return false
	}
	return float64(visible)/float64(span.Lines) >= 0.1
}

type fade struct {
	pos float64
	vel float64
}

// Reveal tracks which cards have been revealed and how far their fade is.
// A revealed card never hides again.
type Reveal struct {
	spring  harmonica.Spring
	cards   map[int]*fade
	enabled bool
}

// NewReveal creates a tracker; when disabled cards appear fully at once
func NewReveal(enabled bool) *Reveal {
	return &Reveal{
		spring:  harmonica.NewSpring(harmonica.FPS(FPS), revealFrequency, criticalDamping),
		cards:   make(map[int]*fade),
		enabled: enabled,
	}
}

// Reset forgets all cards, for a new page
func (r *Reveal) Reset() {
	r.cards = make(map[int]*fade)
}

// Observe starts the fade of every card newly inside the viewport.
// It returns true when at least one fade started.
func (r *Reveal) Observe(spans []Span, top, height int) bool {
	started := false
	for i, span := range spans {
		if _, seen := r.cards[i]; seen {
			continue
		}
		if !Intersects(span, top, height) {
			continue
		}
		f := &fade{}
		if !r.enabled {
			f.pos = 1
		}
		r.cards[i] = f
		started = true
	}
	return started
}

// Step advances every running fade; it returns true while any is unfinished
func (r *Reveal) Step() bool {
	running := false
	for _, f := range r.cards {
		if f.pos >= 1 {
			continue
		}
		f.pos, f.vel = r.spring.Update(f.pos, f.vel, 1)
		if 1-f.pos < settleEpsilon {
			f.pos = 1
			f.vel = 0
			continue
		}
		running = true
	}
	return running
}

// Revealed reports whether card i has entered the viewport
func (r *Reveal) Revealed(i int) bool {
	_, ok := r.cards[i]
	return ok
}

// Progress returns the fade of card i in [0, 1]
func (r *Reveal) Progress(i int) float64 {
	f, ok := r.cards[i]
	if !ok {
		return 0
	}
	return math.Max(0, math.Min(1, f.pos))
}

// Blend mixes two hex colours; t=0 gives from, t=1 gives to
func Blend(from, to string, t float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return to
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return to
	}
	switch {
	case t <= 0:
		return a.Hex()
	case t >= 1:
		return b.Hex()
	}
	return a.BlendLab(b, t).Clamped().Hex()
}
