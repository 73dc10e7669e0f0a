package present

import (
	"errors"
	"sort"
	"time"
)

type fixedSlides []int

func (s fixedSlides) Len() int { return len(s) }
func (s fixedSlides) Animatable(i int) int {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

// evenSlides builds n slides with three animatable elements each.
func evenSlides(n int) fixedSlides {
	s := make(fixedSlides, n)
	for i := range s {
		s[i] = 3
	}
	return s
}

type recordingDisplay struct {
	chrome      ChromeView
	chromeCount int
	theme       Theme
	scrolled    []int
	active      map[int]bool
	resets      []int
	plays       []int
	lastPlan    []Reveal
	fullscreen  bool
	fsErr       error
}

func newRecordingDisplay() *recordingDisplay {
	return &recordingDisplay{active: map[int]bool{}}
}

func (d *recordingDisplay) ApplyChrome(v ChromeView) { d.chrome = v; d.chromeCount++ }
func (d *recordingDisplay) ApplyTheme(t Theme)       { d.theme = t }
func (d *recordingDisplay) ScrollTo(i int)           { d.scrolled = append(d.scrolled, i) }
func (d *recordingDisplay) SetActive(i int) {
	d.active = map[int]bool{}
	if i >= 0 {
		d.active[i] = true
	}
}
func (d *recordingDisplay) ResetAnimation(i int) { d.resets = append(d.resets, i) }
func (d *recordingDisplay) PlayAnimation(i int, plan []Reveal) {
	d.plays = append(d.plays, i)
	d.lastPlan = plan
}
func (d *recordingDisplay) RequestFullscreen() error {
	if d.fsErr != nil {
		return d.fsErr
	}
	d.fullscreen = true
	return nil
}
func (d *recordingDisplay) ExitFullscreen() { d.fullscreen = false }

func (d *recordingDisplay) activeCount() int { return len(d.active) }

type task struct {
	key int
	due time.Duration
	seq int
	fn  func()
}

// manualScheduler runs callbacks only when the test advances its clock.
type manualScheduler struct {
	now   time.Duration
	seq   int
	tasks []*task
}

func (s *manualScheduler) After(key int, d time.Duration, fn func()) {
	s.seq++
	s.tasks = append(s.tasks, &task{key: key, due: s.now + d, seq: s.seq, fn: fn})
}

func (s *manualScheduler) Cancel(key int) {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.key != key {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
}

func (s *manualScheduler) CancelAll() { s.tasks = nil }

// Advance moves the clock in steps, running each task at its due time.
// Tasks scheduled by a running callback are picked up in the same call.
func (s *manualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		sort.SliceStable(s.tasks, func(i, j int) bool {
			if s.tasks[i].due == s.tasks[j].due {
				return s.tasks[i].seq < s.tasks[j].seq
			}
			return s.tasks[i].due < s.tasks[j].due
		})
		if len(s.tasks) == 0 || s.tasks[0].due > target {
			s.now = target
			return
		}
		t := s.tasks[0]
		s.tasks = s.tasks[1:]
		s.now = t.due
		t.fn()
	}
}

type memThemes struct {
	theme   Theme
	has     bool
	saves   int
	saveErr error
}

func (m *memThemes) LoadTheme() (Theme, error) {
	if !m.has {
		return "", errors.New("no theme stored")
	}
	return m.theme, nil
}

func (m *memThemes) SaveTheme(t Theme) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.theme, m.has = t, true
	m.saves++
	return nil
}
