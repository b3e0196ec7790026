package catch

import (
	"container/heap"
	"time"
)

// TimerID identifies a pending timer so it can be cancelled.
type TimerID uint64

type timer struct {
	id    TimerID
	due   time.Duration
	seq   uint64 // insertion order, breaks ties between equal due times
	fn    func()
	index int
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Scheduler is a deferred timer queue driven by the game clock.
// It is not safe for concurrent use; timers fire from RunDue on the
// goroutine that owns the game.
type Scheduler struct {
	timers  timerHeap
	pending map[TimerID]*timer
	nextID  TimerID
	seq     uint64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		pending: make(map[TimerID]*timer),
	}
}

// After schedules fn to run once the clock reaches now+delay.
// A negative delay is treated as zero.
func (s *Scheduler) After(now, delay time.Duration, fn func()) TimerID {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	s.seq++
	t := &timer{
		id:  s.nextID,
		due: now + delay,
		seq: s.seq,
		fn:  fn,
	}
	heap.Push(&s.timers, t)
	s.pending[t.id] = t
	return t.id
}

// Cancel removes a pending timer. It reports whether the timer was still pending.
func (s *Scheduler) Cancel(id TimerID) bool {
	t, ok := s.pending[id]
	if !ok {
		return false
	}
	heap.Remove(&s.timers, t.index)
	delete(s.pending, id)
	return true
}

// RunDue fires every timer due at or before now, earliest first, and
// returns how many fired. Timers scheduled by a callback run in the same
// call if they are already due.
func (s *Scheduler) RunDue(now time.Duration) int {
	fired := 0
	for len(s.timers) > 0 && s.timers[0].due <= now {
		t := heap.Pop(&s.timers).(*timer)
		delete(s.pending, t.id)
		t.fn()
		fired++
	}
	return fired
}

// Len returns the number of pending timers.
func (s *Scheduler) Len() int {
	return len(s.timers)
}

// Next returns the due time of the earliest pending timer.
func (s *Scheduler) Next() (time.Duration, bool) {
	if len(s.timers) == 0 {
		return 0, false
	}
	return s.timers[0].due, true
}

// Clear drops every pending timer without running it.
func (s *Scheduler) Clear() {
	for i := range s.timers {
		s.timers[i] = nil
	}
	s.timers = s.timers[:0]
	clear(s.pending)
}
