package intrographics

import (
	"container/heap"
	"time"
)

// InputKind identifies a raw event delivered by a platform.
type InputKind uint8

const (
	InputPointerDown InputKind = iota
	InputPointerMove
	InputPointerUp
	InputKey
	// InputClose is a request from the host to close the window, such as a
	// click on the title bar's close button.
	InputClose
)

// InputEvent is a raw event addressed to the window shown in Frame.
// Coordinates are relative to the window's top-left corner.
type InputEvent struct {
	Kind   InputKind
	Frame  Frame
	X, Y   int
	Button MouseButton
	// Key is the key symbol, e.g. "a", "Return", "BackSpace".
	Key string
	// Char is the character the key types, or zero.
	Char rune
}

// Task is a one-shot callback scheduled on a RunLoop.
type Task struct {
	due      time.Duration
	seq      uint64
	pass     uint64
	armedAt  time.Duration
	fn       func()
	index    int
	canceled bool
}

// Cancel prevents the task from running. Canceling a task that already ran
// has no effect.
func (t *Task) Cancel() {
	t.canceled = true
}

// Due returns the loop time at which the task runs.
func (t *Task) Due() time.Duration {
	return t.due
}

type taskHeap []*Task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}
func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *taskHeap) Push(x any) {
	t := x.(*Task)
	t.index = len(*h)
	*h = append(*h, t)
}
func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// RunLoop is the single-threaded scheduler every callback runs on. It keeps
// a virtual clock, a FIFO queue of input events and a queue of one-shot
// tasks ordered by due time. Platforms drive it by calling Advance.
type RunLoop struct {
	now      time.Duration
	seq      uint64
	pass     uint64
	tasks    taskHeap
	events   []InputEvent
	dispatch func(InputEvent)
	stopped  bool
	debug    bool
}

// NewRunLoop creates a loop at time zero. Input events are passed to
// dispatch in arrival order.
func NewRunLoop(dispatch func(InputEvent)) *RunLoop {
	return &RunLoop{dispatch: dispatch}
}

// Now returns the loop's virtual time.
func (l *RunLoop) Now() time.Duration {
	return l.now
}

// After schedules fn to run once, d after the current loop time. A task
// armed with no delay from inside a pass runs in the next pass, so a
// callback that re-arms itself immediately cannot starve the loop.
func (l *RunLoop) After(d time.Duration, fn func()) *Task {
	l.seq++
	t := &Task{
		due:     l.now + max(d, 0),
		seq:     l.seq,
		pass:    l.pass,
		armedAt: l.now,
		fn:      fn,
	}
	heap.Push(&l.tasks, t)
	return t
}

// Post queues an input event for the next pass.
func (l *RunLoop) Post(ev InputEvent) {
	l.events = append(l.events, ev)
}

// Pending returns the number of queued input events.
func (l *RunLoop) Pending() int {
	return len(l.events)
}

// NextDue returns the due time of the earliest scheduled task.
func (l *RunLoop) NextDue() (time.Duration, bool) {
	for len(l.tasks) > 0 && l.tasks[0].canceled {
		heap.Pop(&l.tasks)
	}
	if len(l.tasks) == 0 {
		return 0, false
	}
	return l.tasks[0].due, true
}

// Idle reports whether there is nothing left to do.
func (l *RunLoop) Idle() bool {
	_, ok := l.NextDue()
	return !ok && len(l.events) == 0
}

// Stop ends the loop. Later calls to Advance do nothing.
func (l *RunLoop) Stop() {
	l.stopped = true
}

// Stopped reports whether Stop has been called.
func (l *RunLoop) Stopped() bool {
	return l.stopped
}

// SetDebug enables per-pass statistics logging.
func (l *RunLoop) SetDebug(enabled bool) {
	l.debug = enabled
}

// Advance runs one pass: it dispatches all queued input events, then runs
// every task due within d of the current time in due order, moving the clock
// forward to each task as it runs. The clock ends at now+d.
func (l *RunLoop) Advance(d time.Duration) {
	if l.stopped {
		return
	}
	l.pass++
	var stats debugStats
	var start time.Time
	if l.debug {
		start = time.Now()
	}

	for len(l.events) > 0 && !l.stopped {
		ev := l.events[0]
		copy(l.events, l.events[1:])
		l.events[len(l.events)-1] = InputEvent{}
		l.events = l.events[:len(l.events)-1]
		if l.dispatch != nil {
			l.dispatch(ev)
		}
		stats.events++
	}

	target := l.now + max(d, 0)
	var deferred []*Task
	for !l.stopped && len(l.tasks) > 0 && l.tasks[0].due <= target {
		t := heap.Pop(&l.tasks).(*Task)
		if t.canceled {
			continue
		}
		if t.pass == l.pass && t.due <= t.armedAt {
			deferred = append(deferred, t)
			continue
		}
		l.now = max(l.now, t.due)
		t.fn()
		stats.tasks++
	}
	for _, t := range deferred {
		heap.Push(&l.tasks, t)
	}
	if !l.stopped {
		l.now = target
	}

	if l.debug {
		stats.elapsed = time.Since(start)
		stats.log(l.now)
	}
}
