package intrographics

import "time"

// Timer is a repeating callback registered with Window.StartTimer. The
// handle identifies the registration for StopTimer.
type Timer struct {
	win      *Window
	interval time.Duration
	fn       func()
	active   bool
	fired    int
}

// Interval returns the delay between firings.
func (t *Timer) Interval() time.Duration { return t.interval }

// Active reports whether the timer is still registered.
func (t *Timer) Active() bool { return t.active }

// Fired returns how many times the callback has run.
func (t *Timer) Fired() int { return t.fired }

// StartTimer calls fn every interval milliseconds while the window is open.
// The first call happens one interval after the timer starts. A timer
// started before Open keeps time but only begins calling fn once the window
// is open.
func (w *Window) StartTimer(interval int, fn func()) (*Timer, error) {
	const op = "window.startTimer(interval,function)"
	if fn == nil {
		return nil, w.fail(missingArgument(op, "function"))
	}
	if err := requireAtLeast(op, "interval", interval, 0); err != nil {
		return nil, w.fail(err)
	}
	if w.Closed() {
		return nil, nil
	}
	t := &Timer{
		win:      w,
		interval: time.Duration(interval) * time.Millisecond,
		fn:       fn,
		active:   true,
	}
	w.timers = append(w.timers, t)
	w.armTimer(t)
	Logger().Debug("timer started", "interval", t.interval, "window", w.title)
	return t, nil
}

// StopTimer unregisters a timer. The pending firing sees the timer is no
// longer registered and does nothing. Stopping a timer twice, or on a closed
// window, does nothing.
func (w *Window) StopTimer(t *Timer) error {
	const op = "window.stopTimer(timer)"
	if t == nil {
		return w.fail(missingArgument(op, "timer"))
	}
	if w.Closed() {
		return nil
	}
	if t.win != w {
		return w.fail(newError(op, KindOwnership, "timer belongs to another window"))
	}
	if !t.active {
		return nil
	}
	t.active = false
	for i, cur := range w.timers {
		if cur == t {
			copy(w.timers[i:], w.timers[i+1:])
			w.timers[len(w.timers)-1] = nil
			w.timers = w.timers[:len(w.timers)-1]
			break
		}
	}
	return nil
}

// Timers returns the window's registered timers.
func (w *Window) Timers() []*Timer {
	return append([]*Timer(nil), w.timers...)
}

func (w *Window) armTimer(t *Timer) {
	w.sess.loop.After(t.interval, func() { w.fireTimer(t) })
}

// fireTimer runs one tick: it stops silently once the window is closed or
// the timer unregistered, calls the function only while the window is open,
// and re-arms for the next interval.
func (w *Window) fireTimer(t *Timer) {
	if w.Closed() || !t.active {
		return
	}
	if w.Opened() {
		t.fired++
		t.fn()
	}
	if w.Closed() || !t.active {
		return
	}
	w.armTimer(t)
}
