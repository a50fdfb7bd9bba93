package intrographics

// InjectPress queues a pointer press at window coordinates (x, y). Like
// real input, it is dispatched on the next loop pass.
func (w *Window) InjectPress(x, y int, button MouseButton) {
	w.post(InputEvent{Kind: InputPointerDown, X: x, Y: y, Button: button})
}

// InjectMove queues pointer motion to (x, y). Between InjectPress and
// InjectRelease this is a drag.
func (w *Window) InjectMove(x, y int) {
	w.post(InputEvent{Kind: InputPointerMove, X: x, Y: y})
}

// InjectRelease queues a pointer release at (x, y).
func (w *Window) InjectRelease(x, y int, button MouseButton) {
	w.post(InputEvent{Kind: InputPointerUp, X: x, Y: y, Button: button})
}

// InjectClick queues a left press followed by a release at (x, y).
func (w *Window) InjectClick(x, y int) {
	w.InjectPress(x, y, MouseButtonLeft)
	w.InjectRelease(x, y, MouseButtonLeft)
}

// InjectRightClick queues a right press followed by a release at (x, y).
func (w *Window) InjectRightClick(x, y int) {
	w.InjectPress(x, y, MouseButtonRight)
	w.InjectRelease(x, y, MouseButtonRight)
}

// InjectDrag queues a full left-button drag: a press at (fromX, fromY),
// steps evenly spaced moves ending at (toX, toY), and a release there.
// At least one move is always queued.
func (w *Window) InjectDrag(fromX, fromY, toX, toY, steps int) {
	steps = max(steps, 1)
	w.InjectPress(fromX, fromY, MouseButtonLeft)
	for i := 1; i <= steps; i++ {
		x := fromX + (toX-fromX)*i/steps
		y := fromY + (toY-fromY)*i/steps
		w.InjectMove(x, y)
	}
	w.InjectRelease(toX, toY, MouseButtonLeft)
}

// InjectKey queues a key press. Single-character symbols also type that
// character, and "space" types a blank.
func (w *Window) InjectKey(key string) {
	w.post(InputEvent{Kind: InputKey, Key: key, Char: charOf(key)})
}

// InjectClose queues a close request from the host, as if the user had
// clicked the window's close button.
func (w *Window) InjectClose() {
	w.post(InputEvent{Kind: InputClose})
}

func (w *Window) post(ev InputEvent) {
	if w.Closed() {
		return
	}
	ev.Frame = w.frame
	w.sess.loop.Post(ev)
}

// charOf returns the character typed by a key symbol, or zero.
func charOf(key string) rune {
	if key == "space" {
		return ' '
	}
	r := []rune(key)
	if len(r) == 1 {
		return r[0]
	}
	return 0
}
