package game

// scheduler is a tick-driven deferred task queue. It replaces wall-clock
// timer callbacks so deferred work stays on the game's single timeline and
// can be cancelled when a session ends or restarts before it fires.
type scheduler struct {
	tasks []*Task
}

// Task is a pending deferred call. Cancel prevents it from ever firing.
type Task struct {
	remaining int
	fn        func()
	cancelled bool
}

// Cancel marks the task so it will be dropped instead of run.
func (t *Task) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// After schedules fn to run once delayTicks ticks from now. A delay of zero
// or less fires on the next advance.
func (s *scheduler) After(delayTicks int, fn func()) *Task {
	t := &Task{remaining: delayTicks, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// advance counts every pending task down one tick and runs the ones that
// expire. Tasks scheduled by a running callback start counting on the next
// advance.
func (s *scheduler) advance() {
	due := s.tasks[:0]
	var run []*Task
	for _, t := range s.tasks {
		if t.cancelled {
			continue
		}
		t.remaining--
		if t.remaining <= 0 {
			run = append(run, t)
			continue
		}
		due = append(due, t)
	}
	s.tasks = due
	for _, t := range run {
		t.fn()
	}
}

// cancelAll drops every pending task.
func (s *scheduler) cancelAll() {
	for _, t := range s.tasks {
		t.cancelled = true
	}
	s.tasks = s.tasks[:0]
}
