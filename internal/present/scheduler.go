package present

import (
	"sync"
	"time"
)

// Scheduler runs delayed callbacks keyed by slide index. Callbacks must run
// on the session's event loop, never concurrently with controller methods.
type Scheduler interface {
	After(key int, d time.Duration, fn func())
	Cancel(key int)
	CancelAll()
}

// Timers is a Scheduler backed by time.AfterFunc. Fired timers hand their
// callback to dispatch, which posts it onto the owning loop. A task cancelled
// after its timer fired but before the loop ran it is dropped.
type Timers struct {
	mu       sync.Mutex
	dispatch func(func())
	next     uint64
	tasks    map[int]map[uint64]*time.Timer
}

// NewTimers returns a Scheduler whose callbacks go through dispatch.
func NewTimers(dispatch func(func())) *Timers {
	return &Timers{dispatch: dispatch, tasks: map[int]map[uint64]*time.Timer{}}
}

func (t *Timers) After(key int, d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.next
	t.next++
	if t.tasks[key] == nil {
		t.tasks[key] = map[uint64]*time.Timer{}
	}
	t.tasks[key][id] = time.AfterFunc(d, func() {
		t.dispatch(func() {
			if t.take(key, id) {
				fn()
			}
		})
	})
}

// take unregisters a task and reports whether it was still pending.
func (t *Timers) take(key int, id uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	byID := t.tasks[key]
	if _, ok := byID[id]; !ok {
		return false
	}
	delete(byID, id)
	if len(byID) == 0 {
		delete(t.tasks, key)
	}
	return true
}

func (t *Timers) Cancel(key int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, tm := range t.tasks[key] {
		tm.Stop()
	}
	delete(t.tasks, key)
}

func (t *Timers) CancelAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for key, byID := range t.tasks {
		for _, tm := range byID {
			tm.Stop()
		}
		delete(t.tasks, key)
	}
}

// Pending reports the number of scheduled tasks.
func (t *Timers) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, byID := range t.tasks {
		n += len(byID)
	}
	return n
}
