package intrographics

import (
	"context"
	"fmt"

	"github.com/phanxgames/intrographics/canvas"
	"github.com/phanxgames/intrographics/codec"
)

// Window is a drawing area holding an ordered list of shapes. Shapes added
// later draw on top. A Window is created by Manager.NewWindow, becomes
// visible with Open and is finished with Close; after closing, every
// operation is silently ignored.
type Window struct {
	mgr     *Manager
	sess    *session
	frame   Frame
	surface Surface

	width, height int
	x, y          int
	title         string
	state         State

	shapes []Shape
	timers []*Timer
	input  dispatcher
	attrs  map[string]any
}

func newWindow(m *Manager, s *session, frame Frame, width, height int) *Window {
	w := &Window{
		mgr:     m,
		sess:    s,
		frame:   frame,
		surface: frame.Surface(),
		width:   width,
		height:  height,
		title:   m.cfg.Title,
	}
	bg, err := ResolveColor("config.background", m.cfg.Background, m.lookupColor)
	if err != nil {
		bg = canvas.White
	}
	w.surface.SetBackground(bg)
	w.place()
	return w
}

func (w *Window) place() {
	w.frame.SetGeometry(w.x, w.y, w.width+1, w.height+1)
	w.surface.Resize(w.width+1, w.height+1)
}

// Manager returns the manager that created the window.
func (w *Window) Manager() *Manager { return w.mgr }

// Width returns the width of the drawing area.
func (w *Window) Width() int { return w.width }

// Height returns the height of the drawing area.
func (w *Window) Height() int { return w.height }

// X returns the screen x position of the window.
func (w *Window) X() int { return w.x }

// Y returns the screen y position of the window.
func (w *Window) Y() int { return w.y }

// Title returns the title set by Open.
func (w *Window) Title() string { return w.title }

// State returns the lifecycle state.
func (w *Window) State() State { return w.state }

// Opened reports whether the window has been opened and not yet closed.
func (w *Window) Opened() bool { return w.state == StateOpened }

// Closed reports whether the window has been closed.
func (w *Window) Closed() bool { return w.state == StateClosed }

// Primary reports whether this is the primary window of its session.
func (w *Window) Primary() bool { return w.sess.primary == w }

// Loop returns the run loop the window's callbacks run on.
func (w *Window) Loop() *RunLoop { return w.sess.loop }

func (w *Window) fail(err error) error {
	return w.mgr.report(err)
}

func (w *Window) resolveColor(op string, v any) (RGB, error) {
	return ResolveColor(op, v, w.mgr.lookupColor)
}

// Fill sets the background color.
func (w *Window) Fill(color any) error {
	const op = "window.fill(color)"
	if w.Closed() {
		return nil
	}
	c, err := w.resolveColor(op, color)
	if err != nil {
		return w.fail(err)
	}
	w.surface.SetBackground(c)
	return nil
}

// Relocate moves the window to screen position (x, y).
func (w *Window) Relocate(x, y int) {
	if w.Closed() {
		return
	}
	w.x, w.y = x, y
	w.place()
}

// Resize changes the size of the drawing area. Both dimensions must be at
// least 1.
func (w *Window) Resize(width, height int) error {
	const op = "window.resize(width,height)"
	if err := requireAtLeast(op, "width", width, 1); err != nil {
		return w.fail(err)
	}
	if err := requireAtLeast(op, "height", height, 1); err != nil {
		return w.fail(err)
	}
	if w.Closed() {
		return nil
	}
	w.width, w.height = width, height
	w.place()
	return nil
}

func (w *Window) add(s Shape) {
	w.shapes = append(w.shapes, s)
	debugCheckShapeCount(w)
}

// AddRectangle adds a rectangle with its top-left corner at (x, y). It
// returns nil without error if the window is closed.
func (w *Window) AddRectangle(x, y, width, height int) (*Rectangle, error) {
	const op = "window.addRectangle(x,y,width,height)"
	if err := checkSize(op, width, height); err != nil {
		return nil, w.fail(err)
	}
	if w.Closed() {
		return nil, nil
	}
	r := &Rectangle{}
	r.init(w, ShapeRectangle, r, x, y, width, height, canvas.Style{
		Outline: canvas.ColorPtr(canvas.Black),
		Width:   1,
	})
	w.add(r)
	return r, nil
}

// AddOval adds the oval inscribed in the given box. It returns nil without
// error if the window is closed.
func (w *Window) AddOval(x, y, width, height int) (*Oval, error) {
	const op = "window.addOval(x,y,width,height)"
	if err := checkSize(op, width, height); err != nil {
		return nil, w.fail(err)
	}
	if w.Closed() {
		return nil, nil
	}
	o := &Oval{}
	o.init(w, ShapeOval, o, x, y, width, height, canvas.Style{
		Outline: canvas.ColorPtr(canvas.Black),
		Width:   1,
	})
	w.add(o)
	return o, nil
}

func checkSize(op string, width, height int) error {
	if err := requireAtLeast(op, "width", width, 1); err != nil {
		return err
	}
	return requireAtLeast(op, "height", height, 1)
}

// AddPolygon adds a closed polygon through at least three points.
func (w *Window) AddPolygon(points ...Point) (*Polygon, error) {
	const op = "window.addPolygon(points)"
	if len(points) < 3 {
		return nil, w.fail(newError(op, KindMissingArgument, "needs at least 3 points, got %d", len(points)))
	}
	if w.Closed() {
		return nil, nil
	}
	p := &Polygon{}
	p.init(w, ShapePolygon, p, points, canvas.Style{Fill: canvas.ColorPtr(canvas.Black)})
	w.add(p)
	return p, nil
}

// AddLine adds an open polyline through at least two points.
func (w *Window) AddLine(points ...Point) (*Line, error) {
	const op = "window.addLine(points)"
	if len(points) < 2 {
		return nil, w.fail(newError(op, KindMissingArgument, "needs at least 2 points, got %d", len(points)))
	}
	if w.Closed() {
		return nil, nil
	}
	l := &Line{}
	l.init(w, ShapeLine, l, points, canvas.Style{Fill: canvas.ColorPtr(canvas.Black), Width: 1})
	w.add(l)
	return l, nil
}

// AddText adds a text label with its top-left corner at (x, y), in the
// configured default font.
func (w *Window) AddText(x, y int, message string) (*Text, error) {
	if w.Closed() {
		return nil, nil
	}
	t := &Text{}
	t.init(w, ShapeText, t, x, y, message, canvas.Style{
		Fill: canvas.ColorPtr(canvas.Black),
		Font: canvas.Font{Family: w.mgr.cfg.Font.Family, Size: w.mgr.cfg.Font.Size},
	})
	w.add(t)
	return t, nil
}

// AddButton adds a push button labeled with message.
func (w *Window) AddButton(x, y int, message string) (*Button, error) {
	if w.Closed() {
		return nil, nil
	}
	b := &Button{}
	b.init(w, ShapeButton, b, x, y, message, canvas.Style{
		Fill:       canvas.ColorPtr(canvas.Black),
		Background: canvas.ColorPtr(canvas.WidgetGray),
	})
	w.add(b)
	return b, nil
}

// AddField adds a one-line text entry, optionally holding an initial
// message.
func (w *Window) AddField(x, y int, message ...string) (*Field, error) {
	const op = "window.addField(x,y,message)"
	msg, err := checkOptional(op, message, "")
	if err != nil {
		return nil, w.fail(err)
	}
	if w.Closed() {
		return nil, nil
	}
	f := &Field{}
	f.init(w, ShapeField, f, x, y, msg, canvas.Style{
		Fill:       canvas.ColorPtr(canvas.Black),
		Background: canvas.ColorPtr(canvas.White),
	})
	w.add(f)
	return f, nil
}

// AddImage loads an image file and places its top-left corner at (x, y).
// PNG, GIF, JPEG, BMP, TIFF and WebP files are supported.
func (w *Window) AddImage(x, y int, filename string) (*Image, error) {
	const op = "window.addImage(x,y,filename)"
	if filename == "" {
		return nil, w.fail(missingArgument(op, "filename"))
	}
	if w.Closed() {
		return nil, nil
	}
	pix, err := codec.Decode(filename)
	if err != nil {
		return nil, w.fail(&Error{Op: op, Kind: KindInvalidArgument, Msg: "cannot load " + filename, Err: err})
	}
	im := &Image{pix: pix, filename: filename}
	im.init(w, ShapeImage, im, x, y, canvas.Style{Image: pix})
	w.add(im)
	return im, nil
}

// Shapes returns the window's shapes in drawing order.
func (w *Window) Shapes() []Shape {
	return append([]Shape(nil), w.shapes...)
}

// Len returns the number of shapes in the window.
func (w *Window) Len() int {
	return len(w.shapes)
}

// Under returns the shapes whose drawn area covers (x, y), bottom first.
func (w *Window) Under(x, y int) []Shape {
	if w.Closed() {
		return nil
	}
	return w.overlapping(canvas.RectAt(x, y), nil)
}

// Touching returns every other shape whose drawn area overlaps the bounding
// box of s, bottom first.
func (w *Window) Touching(s Shape) ([]Shape, error) {
	const op = "window.touching(shape)"
	if isNilShape(s) {
		return nil, w.fail(missingArgument(op, "shape"))
	}
	if w.Closed() || s.Deleted() {
		return nil, nil
	}
	b := s.base()
	return w.overlapping(b.bounds, s), nil
}

func (w *Window) overlapping(r canvas.Rect, exclude Shape) []Shape {
	ids := w.surface.FindOverlapping(r)
	if len(ids) == 0 {
		return nil
	}
	hit := make(map[canvas.ID]bool, len(ids))
	for _, id := range ids {
		hit[id] = true
	}
	var out []Shape
	for _, s := range w.shapes {
		if s != exclude && hit[s.base().id] {
			out = append(out, s)
		}
	}
	return out
}

// topmostAt returns the highest shape covering (x, y), or nil.
func (w *Window) topmostAt(x, y int) Shape {
	under := w.Under(x, y)
	if len(under) == 0 {
		return nil
	}
	return under[len(under)-1]
}

// Remove deletes shapes from the window. Every shape must belong to this
// window; if any does not, nothing is removed.
func (w *Window) Remove(shapes ...Shape) error {
	const op = "window.remove(shapes)"
	if len(shapes) == 0 {
		return w.fail(missingArgument(op, "shape"))
	}
	for i, s := range shapes {
		if isNilShape(s) {
			return w.fail(missingArgument(op, fmt.Sprintf("shape %d", i+1)))
		}
	}
	if w.Closed() {
		return nil
	}
	for _, s := range shapes {
		if !w.owns(s) {
			return w.fail(newError(op, KindOwnership, "%s is not in this window", s.Kind()))
		}
	}
	for _, s := range shapes {
		w.removeShape(s)
	}
	return nil
}

func (w *Window) owns(s Shape) bool {
	if s.base().win != w {
		return false
	}
	for _, cur := range w.shapes {
		if cur == s {
			return true
		}
	}
	return false
}

func (w *Window) removeShape(s Shape) {
	for i, cur := range w.shapes {
		if cur == s {
			copy(w.shapes[i:], w.shapes[i+1:])
			w.shapes[len(w.shapes)-1] = nil
			w.shapes = w.shapes[:len(w.shapes)-1]
			break
		}
	}
	if f, ok := s.(*Field); ok && w.input.focus == f {
		w.input.focus = nil
	}
	s.base().delete()
}

// Open shows the window with an optional title. Opening the primary window
// runs the event loop and returns only after the window is closed. Opening a
// window twice, or after it was closed, does nothing.
func (w *Window) Open(title ...string) error {
	return w.OpenContext(context.Background(), title...)
}

// OpenContext is like Open but stops the event loop when ctx is done.
func (w *Window) OpenContext(ctx context.Context, title ...string) error {
	const op = "window.open(title)"
	t, err := checkOptional(op, title, w.mgr.cfg.Title)
	if err != nil {
		return w.fail(err)
	}
	if w.state != StateConstructed {
		return nil
	}
	w.state = StateOpened
	w.title = t
	w.frame.SetTitle(t)
	w.frame.Show()
	Logger().Info("window opened", "title", t, "width", w.width, "height", w.height, "primary", w.Primary())
	if !w.Primary() {
		return nil
	}
	return w.mgr.run(ctx, w.sess)
}

// Close removes every shape, stops the window's timers and hides it, then
// writes output and a newline to the manager's output. Closing the primary
// window also closes every dependent window and ends the event loop. Closing
// a window that is not open does nothing.
func (w *Window) Close(output ...string) error {
	const op = "window.close(output)"
	out, err := checkOptional(op, output, "")
	if err != nil {
		return w.fail(err)
	}
	if w.state != StateOpened {
		return nil
	}
	w.teardown()
	_, _ = fmt.Fprintln(w.mgr.out, out)
	return nil
}

// teardown closes the window regardless of its state.
func (w *Window) teardown() {
	if w.state == StateClosed {
		return
	}
	for _, s := range w.shapes {
		s.base().delete()
	}
	w.shapes = nil
	for _, t := range w.timers {
		t.active = false
	}
	w.timers = nil
	w.input = dispatcher{}
	w.state = StateClosed
	w.frame.Destroy()
	Logger().Info("window closed", "title", w.title, "primary", w.Primary())
	w.mgr.windowClosed(w)
}

var windowReadOnly = map[string]bool{"width": true, "height": true}

// Attr returns a client attribute, or the window's width, height, x, y or
// title under those names.
func (w *Window) Attr(name string) (any, bool) {
	switch name {
	case "width":
		return w.width, true
	case "height":
		return w.height, true
	case "x":
		return w.x, true
	case "y":
		return w.y, true
	case "title":
		return w.title, true
	}
	v, ok := w.attrs[name]
	return v, ok
}

// SetAttr stores a client attribute on the window. The width and height
// cannot be assigned; use Resize.
func (w *Window) SetAttr(name string, v any) error {
	op := fmt.Sprintf("window.%s = value", name)
	if name == "" {
		return w.fail(missingArgument("window.setAttr(name,value)", "name"))
	}
	if windowReadOnly[name] {
		return w.fail(immutableAttribute(op, name))
	}
	switch name {
	case "x", "y":
		n, err := coerceInt(op, name, v)
		if err != nil {
			return w.fail(err)
		}
		if name == "x" {
			w.Relocate(n, w.y)
		} else {
			w.Relocate(w.x, n)
		}
		return nil
	case "title":
		s, err := coerceString(op, name, v)
		if err != nil {
			return w.fail(err)
		}
		w.title = s
		w.frame.SetTitle(s)
		return nil
	}
	if w.attrs == nil {
		w.attrs = make(map[string]any)
	}
	w.attrs[name] = v
	return nil
}
