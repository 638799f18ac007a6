// Package schedule provides a frame-driven list of delayed and repeating
// tasks. Tasks only run from Update, so they never race the frame loop and
// can be listed or cancelled when their owner goes away.
package schedule

import "sort"

// TaskID identifies a scheduled task. The zero value is never issued.
type TaskID uint64

type task struct {
	id       TaskID
	due      float64
	interval float64 // 0 for one-shot
	fn       func()
	order    uint64
}

// Scheduler runs tasks against an accumulated clock.
type Scheduler struct {
	now    float64
	nextID TaskID
	seq    uint64
	tasks  []*task
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run once, delay seconds from now.
func (s *Scheduler) After(delay float64, fn func()) TaskID {
	return s.add(delay, 0, fn)
}

// Every schedules fn to run every interval seconds, first after one interval.
// Non-positive intervals are treated as one frame.
func (s *Scheduler) Every(interval float64, fn func()) TaskID {
	if interval <= 0 {
		interval = 1.0 / 60.0
	}
	return s.add(interval, interval, fn)
}

func (s *Scheduler) add(delay, interval float64, fn func()) TaskID {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	s.seq++
	s.tasks = append(s.tasks, &task{
		id:       s.nextID,
		due:      s.now + delay,
		interval: interval,
		fn:       fn,
		order:    s.seq,
	})
	return s.nextID
}

// Cancel removes a pending task. Returns false if it was not pending.
func (s *Scheduler) Cancel(id TaskID) bool {
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Pending reports whether id is still scheduled.
func (s *Scheduler) Pending(id TaskID) bool {
	for _, t := range s.tasks {
		if t.id == id {
			return true
		}
	}
	return false
}

// Clear drops every pending task.
func (s *Scheduler) Clear() {
	s.tasks = nil
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Now returns the scheduler clock in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Update advances the clock by dt and runs every task that became due, in
// due-time order. Tasks added while firing wait for the next Update.
// A repeating task runs at most once per Update.
func (s *Scheduler) Update(dt float64) {
	if dt > 0 {
		s.now += dt
	}

	var due []*task
	for _, t := range s.tasks {
		if t.due <= s.now {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].order < due[j].order
	})

	for _, t := range due {
		// an earlier task may have cancelled this one
		if !s.Pending(t.id) {
			continue
		}
		if t.interval > 0 {
			t.due += t.interval
			if t.due <= s.now {
				t.due = s.now + t.interval
			}
		} else {
			s.Cancel(t.id)
		}
		t.fn()
	}
}
