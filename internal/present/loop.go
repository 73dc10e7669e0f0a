package present

import (
	"context"
	"sync"
)

// Loop serializes work for one session. Everything posted runs on the
// goroutine that calls Run, one function at a time.
type Loop struct {
	ch   chan func()
	done chan struct{}
	once sync.Once
}

// NewLoop returns a loop with a queue of size buf.
func NewLoop(buf int) *Loop {
	if buf < 1 {
		buf = 1
	}
	return &Loop{ch: make(chan func(), buf), done: make(chan struct{})}
}

// Post queues fn, blocking while the queue is full. It reports false once
// the loop is closed.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.ch <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Run executes posted functions until ctx is done or Close is called.
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.done:
			return
		case fn := <-l.ch:
			fn()
		}
	}
}

// Close stops the loop. Queued functions that have not started are dropped.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.done) })
}

// Done is closed by Close.
func (l *Loop) Done() <-chan struct{} { return l.done }
