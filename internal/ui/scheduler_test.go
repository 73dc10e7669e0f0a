package ui

import (
	"testing"
	"time"
)

func TestTeaScheduler_CancelledTasksDoNotRun(t *testing.T) {
	s := newTeaScheduler()
	var ran []int
	s.After(1, time.Millisecond, func() { ran = append(ran, 1) })
	s.After(2, time.Millisecond, func() { ran = append(ran, 2) })
	if s.drain() == nil {
		t.Fatalf("expected tick commands")
	}
	if s.drain() != nil {
		t.Fatalf("drain should reset the queue")
	}
	s.Cancel(1)
	for id := uint64(1); id <= 2; id++ {
		s.fire(id)
	}
	if len(ran) != 1 || ran[0] != 2 {
		t.Fatalf("ran = %v want [2]", ran)
	}
	s.After(3, time.Millisecond, func() { ran = append(ran, 3) })
	s.CancelAll()
	if s.fire(3) || s.pending() != 0 {
		t.Fatalf("CancelAll should drop pending tasks")
	}
}

func TestTeaScheduler_TickDeliversTimerMsg(t *testing.T) {
	s := newTeaScheduler()
	s.After(0, time.Millisecond, func() {})
	cmd := s.cmds[0]
	msg, ok := cmd().(timerMsg)
	if !ok || msg.id != 1 {
		t.Fatalf("unexpected message %#v", msg)
	}
}
