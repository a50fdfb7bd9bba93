// Package intrographics is a small 2D graphics library for learning to
// program: a window holds shapes that can be moved, resized and repainted,
// timers drive animation, and mouse and keyboard handlers make programs
// interactive.
//
// # Quick start
//
// Every program starts from a [Manager] bound to a [Platform]. The desktop
// platform in intrographics/desktop opens a real window; [NewHeadless] runs
// the same program against a virtual clock, which is what the tests use.
//
//	m := intrographics.NewManager(desktop.New(cfg))
//	w, _ := m.NewWindow(400, 400)
//	ball, _ := w.AddOval(0, 0, 30, 30)
//	ball.Paint("blue")
//	w.StartTimer(30, func() { ball.Move(3, 5) })
//	w.Open("bounce")
//
// The first window created is the primary window. Opening it runs the event
// loop and blocks until it is closed. Windows created later are dependents:
// they open without blocking and close together with the primary window.
//
// # Shapes
//
// Rectangles and ovals are box shapes positioned by their top-left corner
// and sized by width and height. Polygons and lines are point-list shapes.
// Text, buttons, fields and images are anchored at their top-left corner and
// take their size from their content. Every shape reports its bounding box
// through [Shape.Left], [Shape.Top], [Shape.Right] and [Shape.Bottom], which
// are kept current after every change and cannot be assigned.
//
// # Errors
//
// Invalid calls return an [*Error] whose Kind says what went wrong, and the
// package-level sentinels work with [errors.Is]:
//
//	if _, err := w.AddOval(0, 0, 0, 10); errors.Is(err, intrographics.ErrRestrictedValue) {
//		...
//	}
//
// Operations on closed windows and removed shapes are silently ignored.
// Use [ExitOnError] with [WithErrorHandler] to stop the program at the first
// mistake instead.
//
// # Timers and input
//
// [Window.StartTimer] calls a function repeatedly while the window is open.
// [Window.OnLeftClick], [Window.OnLeftDrag], [Window.OnRightClick],
// [Window.OnRightDrag] and [Window.OnKey] install one handler per kind of
// event, replacing any earlier handler. All callbacks run on the event loop
// one at a time, so they never need locks.
package intrographics
