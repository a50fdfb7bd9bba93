package intrographics

// pointerState tracks the button held since the last press.
type pointerState struct {
	down    bool
	button  MouseButton
	pressed *Button
}

// dispatcher holds one handler per event class for a window, plus the
// pointer and focus state needed to translate raw events.
type dispatcher struct {
	pointer [4]PointerHandler
	key     KeyHandler
	ptr     pointerState
	focus   *Field
}

// OnLeftClick installs the handler for left button presses, replacing any
// earlier one.
func (w *Window) OnLeftClick(fn PointerHandler) error {
	return w.bindPointer("window.onLeftClick(function)", ClassLeftClick, fn)
}

// OnLeftDrag installs the handler for pointer motion with the left button
// held.
func (w *Window) OnLeftDrag(fn PointerHandler) error {
	return w.bindPointer("window.onLeftDrag(function)", ClassLeftDrag, fn)
}

// OnRightClick installs the handler for right button presses.
func (w *Window) OnRightClick(fn PointerHandler) error {
	return w.bindPointer("window.onRightClick(function)", ClassRightClick, fn)
}

// OnRightDrag installs the handler for pointer motion with the right button
// held.
func (w *Window) OnRightDrag(fn PointerHandler) error {
	return w.bindPointer("window.onRightDrag(function)", ClassRightDrag, fn)
}

func (w *Window) bindPointer(op string, class EventClass, fn PointerHandler) error {
	if fn == nil {
		return w.fail(missingArgument(op, "function"))
	}
	if w.Closed() {
		return nil
	}
	w.input.pointer[class] = fn
	return nil
}

// OnKey installs the handler for key presses. It receives the key symbol.
func (w *Window) OnKey(fn KeyHandler) error {
	const op = "window.onKey(function)"
	if fn == nil {
		return w.fail(missingArgument(op, "function"))
	}
	if w.Closed() {
		return nil
	}
	w.input.key = fn
	return nil
}

// FocusedField returns the field holding the keyboard focus, or nil.
func (w *Window) FocusedField() *Field {
	return w.input.focus
}

func clickClass(b MouseButton) (EventClass, bool) {
	switch b {
	case MouseButtonLeft:
		return ClassLeftClick, true
	case MouseButtonRight:
		return ClassRightClick, true
	}
	return 0, false
}

func dragClass(b MouseButton) (EventClass, bool) {
	switch b {
	case MouseButtonLeft:
		return ClassLeftDrag, true
	case MouseButtonRight:
		return ClassRightDrag, true
	}
	return 0, false
}

// handleInput translates a raw event into handler calls. Runs on the loop.
func (w *Window) handleInput(ev InputEvent) {
	if w.Closed() {
		return
	}
	switch ev.Kind {
	case InputPointerDown:
		w.pointerDown(ev)
	case InputPointerMove:
		w.pointerMove(ev)
	case InputPointerUp:
		w.pointerUp(ev)
	case InputKey:
		w.keyDown(ev)
	case InputClose:
		_ = w.Close()
	}
}

func (w *Window) pointerDown(ev InputEvent) {
	p := &w.input.ptr
	p.down = true
	p.button = ev.Button
	p.pressed = nil

	target := w.topmostAt(ev.X, ev.Y)
	if ev.Button == MouseButtonLeft {
		switch t := target.(type) {
		case *Button:
			p.pressed = t
		case *Field:
			w.focusField(t)
		}
	}
	if class, ok := clickClass(ev.Button); ok {
		w.firePointer(class, ev, target)
	}
}

func (w *Window) pointerMove(ev InputEvent) {
	p := &w.input.ptr
	if !p.down {
		return
	}
	ev.Button = p.button
	if class, ok := dragClass(p.button); ok {
		w.firePointer(class, ev, w.topmostAt(ev.X, ev.Y))
	}
}

func (w *Window) pointerUp(ev InputEvent) {
	p := w.input.ptr
	w.input.ptr = pointerState{}
	if !p.down || p.pressed == nil || p.pressed.Deleted() {
		return
	}
	if w.topmostAt(ev.X, ev.Y) != Shape(p.pressed) {
		return
	}
	Logger().Debug("button pressed", "message", p.pressed.message)
	p.pressed.Press()
	w.mgr.emit(InteractionEvent{
		Type: ClassPress, Window: w, Target: p.pressed,
		X: ev.X, Y: ev.Y, Button: ev.Button,
	})
}

func (w *Window) keyDown(ev InputEvent) {
	if f := w.input.focus; f != nil && !f.Deleted() {
		f.edit(ev.Key, ev.Char)
	}
	if fn := w.input.key; fn != nil {
		fn(ev.Key)
	}
	w.mgr.emit(InteractionEvent{Type: ClassKey, Window: w, Key: ev.Key})
}

func (w *Window) firePointer(class EventClass, ev InputEvent, target Shape) {
	Logger().Debug("dispatch", "class", class, "x", ev.X, "y", ev.Y)
	if fn := w.input.pointer[class]; fn != nil {
		fn(ev.X, ev.Y)
	}
	w.mgr.emit(InteractionEvent{
		Type: class, Window: w, Target: target,
		X: ev.X, Y: ev.Y, Button: ev.Button,
	})
}

// focusField moves the keyboard focus to f. Gaining focus clears the
// field's text.
func (w *Window) focusField(f *Field) {
	if w.input.focus == f {
		return
	}
	w.input.focus = f
	f.Rewrite("")
}
