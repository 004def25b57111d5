// Package clock provides a virtual-time scheduler for game timers.
// Time only moves when the owner calls Advance, so timers pause with the
// game, never fire concurrently, and replay identically under test.
package clock

import (
	"fmt"
	"time"
)

// TimerID identifies a scheduled timer. The zero value is never issued.
type TimerID uint64

type timer struct {
	id    TimerID
	due   time.Duration // Scheduler time at which the timer fires
	every time.Duration // Repeat interval, 0 for one-shot timers
	seq   uint64        // Tie-breaker for timers due at the same instant
	fn    func()
}

// Scheduler runs periodic and one-shot callbacks against a virtual clock.
// It is not safe for concurrent use; the owning game loop serializes access.
type Scheduler struct {
	now    time.Duration
	timers map[TimerID]*timer
	nextID TimerID
	seq    uint64
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{
		timers: make(map[TimerID]*timer),
	}
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once, d after the current virtual time.
func (s *Scheduler) After(d time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	return s.add(d, 0, fn)
}

// Every schedules fn to run every d. Panics on a non-positive interval,
// which would otherwise spin forever inside Advance.
func (s *Scheduler) Every(d time.Duration, fn func()) TimerID {
	if d <= 0 {
		panic(fmt.Sprintf("clock: non-positive interval %v", d))
	}
	return s.add(d, d, fn)
}

func (s *Scheduler) add(delay, every time.Duration, fn func()) TimerID {
	s.nextID++
	s.seq++
	t := &timer{
		id:    s.nextID,
		due:   s.now + delay,
		every: every,
		seq:   s.seq,
		fn:    fn,
	}
	s.timers[t.id] = t
	return t.id
}

// Cancel stops a timer. Returns false if the timer had already fired
// (one-shot) or was cancelled before.
func (s *Scheduler) Cancel(id TimerID) bool {
	if _, ok := s.timers[id]; !ok {
		return false
	}
	delete(s.timers, id)
	return true
}

// CancelAll stops every pending timer.
func (s *Scheduler) CancelAll() {
	for id := range s.timers {
		delete(s.timers, id)
	}
}

// Len returns the number of pending timers.
func (s *Scheduler) Len() int {
	return len(s.timers)
}

// Advance moves virtual time forward by d, firing due timers in deadline
// order. A periodic timer that fell several intervals behind fires once per
// interval. Callbacks may schedule or cancel timers, including themselves.
func (s *Scheduler) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	target := s.now + d

	for {
		next := s.earliest()
		if next == nil || next.due > target {
			break
		}

		s.now = next.due
		if next.every > 0 {
			s.seq++
			next.due += next.every
			next.seq = s.seq
		} else {
			delete(s.timers, next.id)
		}
		next.fn()
	}

	s.now = target
}

// earliest returns the pending timer with the smallest deadline.
// Timer counts are tiny (one per timer kind), so a scan beats a heap.
func (s *Scheduler) earliest() *timer {
	var best *timer
	for _, t := range s.timers {
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}
