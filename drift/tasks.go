package drift

// Task is a one-shot callback due at a frame time. It is created by
// Tasks.Schedule and may be cancelled any time before it runs.
type Task struct {
	due       float64
	fn        func(now float64)
	cancelled bool
	done      bool
}

// Cancel prevents the task from running. Safe to call on a nil, finished or
// already cancelled task.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
	t.fn = nil
}

// Pending reports whether the task will still run.
func (t *Task) Pending() bool {
	return t != nil && !t.cancelled && !t.done
}

// Due returns the frame time at which the task runs.
func (t *Task) Due() float64 {
	return t.due
}

// Tasks is a queue of delayed callbacks driven by frame timestamps rather
// than wall-clock timers. Tasks run from Run on the caller's goroutine, in due
// order, ties in scheduling order.
type Tasks struct {
	queue []*Task
}

// Schedule queues fn to run on the first Run call with now >= due.
func (q *Tasks) Schedule(due float64, fn func(now float64)) *Task {
	t := &Task{due: due, fn: fn}
	// Insert keeping the queue sorted; the queue is short (at most one task
	// per particle) so a linear scan from the back is enough.
	i := len(q.queue)
	for i > 0 && q.queue[i-1].due > due {
		i--
	}
	q.queue = append(q.queue, nil)
	copy(q.queue[i+1:], q.queue[i:])
	q.queue[i] = t
	return t
}

// Run executes every pending task due at or before now and drops cancelled
// ones. It returns the number of tasks that ran.
func (q *Tasks) Run(now float64) int {
	n := 0
	for len(q.queue) > 0 {
		t := q.queue[0]
		if !t.cancelled && t.due > now {
			break
		}
		copy(q.queue, q.queue[1:])
		q.queue[len(q.queue)-1] = nil
		q.queue = q.queue[:len(q.queue)-1]
		if t.cancelled {
			continue
		}
		t.done = true
		fn := t.fn
		t.fn = nil
		fn(now)
		n++
	}
	return n
}

// Len returns the number of queued tasks, including cancelled ones not yet
// swept by Run.
func (q *Tasks) Len() int {
	return len(q.queue)
}

// Pending returns the number of queued tasks that will still run.
func (q *Tasks) Pending() int {
	n := 0
	for _, t := range q.queue {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// CancelAll cancels and drops every queued task.
func (q *Tasks) CancelAll() {
	for i, t := range q.queue {
		t.Cancel()
		q.queue[i] = nil
	}
	q.queue = q.queue[:0]
}
