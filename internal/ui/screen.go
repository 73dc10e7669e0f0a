package ui

import (
	"time"

	"deckctl/internal/present"
)

// reveal tracks a running staggered animation on one slide.
type reveal struct {
	start time.Time
	plan  []present.Reveal
}

// screen is the terminal present.Display. It only records what the
// controller asked for; View reads it back.
type screen struct {
	now        func() time.Time
	chrome     present.ChromeView
	theme      present.Theme
	viewing    int // slide shown in scroll mode
	active     int // slide shown in presentation mode, -1 for none
	fullscreen bool
	anims      map[int]reveal
}

func newScreen(now func() time.Time) *screen {
	if now == nil {
		now = time.Now
	}
	return &screen{now: now, active: -1, anims: map[int]reveal{}}
}

func (s *screen) ApplyChrome(v present.ChromeView) { s.chrome = v }
func (s *screen) ApplyTheme(t present.Theme)       { s.theme = t }
func (s *screen) ScrollTo(i int)                   { s.viewing = i }
func (s *screen) SetActive(i int)                  { s.active = i }
func (s *screen) ResetAnimation(i int)             { delete(s.anims, i) }

func (s *screen) PlayAnimation(i int, plan []present.Reveal) {
	s.anims[i] = reveal{start: s.now(), plan: plan}
}

// RequestFullscreen hides the sidebar and header; a terminal has nothing
// else to enlarge.
func (s *screen) RequestFullscreen() error {
	s.fullscreen = true
	return nil
}

func (s *screen) ExitFullscreen() { s.fullscreen = false }

// revealed is the number of blocks of slide i currently visible. A slide
// with no recorded animation shows nothing until it is played.
func (s *screen) revealed(i int) int {
	a, ok := s.anims[i]
	if !ok {
		return 0
	}
	return present.Revealed(a.plan, s.now().Sub(a.start))
}

// animating reports whether any reveal still has blocks to show.
func (s *screen) animating() bool {
	for i, a := range s.anims {
		if s.revealed(i) < len(a.plan) {
			return true
		}
	}
	return false
}

// shown is the slide drawn in the main pane.
func (s *screen) shown(presenting bool) int {
	if presenting {
		return s.active
	}
	return s.viewing
}
