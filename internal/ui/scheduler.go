package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timerMsg fires a task scheduled through teaScheduler.
type timerMsg struct{ id uint64 }

type teaTask struct {
	key int
	fn  func()
}

// teaScheduler implements present.Scheduler on Bubble Tea's runtime: every
// After becomes a tea.Tick command and the callback runs inside Update when
// its timerMsg arrives, so it never races with the controller.
type teaScheduler struct {
	next uint64
	live map[uint64]teaTask
	cmds []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{live: map[uint64]teaTask{}}
}

func (s *teaScheduler) After(key int, d time.Duration, fn func()) {
	s.next++
	id := s.next
	s.live[id] = teaTask{key: key, fn: fn}
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg { return timerMsg{id: id} }))
}

func (s *teaScheduler) Cancel(key int) {
	for id, t := range s.live {
		if t.key == key {
			delete(s.live, id)
		}
	}
}

func (s *teaScheduler) CancelAll() { clear(s.live) }

// fire runs a task that is still pending and reports whether it ran.
func (s *teaScheduler) fire(id uint64) bool {
	t, ok := s.live[id]
	if !ok {
		return false
	}
	delete(s.live, id)
	t.fn()
	return true
}

// drain returns the ticks queued since the last call.
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

func (s *teaScheduler) pending() int { return len(s.live) }
