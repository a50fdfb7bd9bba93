package intrographics

import (
	"fmt"
	"reflect"

	"github.com/phanxgames/intrographics/canvas"
)

// Shape is implemented by every drawable object in a window. The bounding
// box accessors always reflect the shape's current geometry and satisfy
// Right() == Left()+Width() and Bottom() == Top()+Height().
//
// Once a shape has been removed from its window, mutating methods do
// nothing and queries return the last known values.
type Shape interface {
	Kind() ShapeKind
	Window() *Window
	Left() int
	Top() int
	Right() int
	Bottom() int
	Width() int
	Height() int
	// Move shifts the shape by (dx, dy).
	Move(dx, dy int)
	// Relocate moves the shape so its top-left corner is at (x, y).
	Relocate(x, y int)
	// Deleted reports whether the shape has been removed from its window.
	Deleted() bool
	Attr(name string) (any, bool)
	SetAttr(name string, v any) error

	base() *shape
}

// shape holds the state shared by all shape types.
type shape struct {
	win     *Window
	self    Shape
	id      canvas.ID
	kind    ShapeKind
	deleted bool
	bounds  canvas.Rect
	attrs   map[string]any
}

func (s *shape) create(w *Window, kind ShapeKind, self Shape, coords []Point, style canvas.Style) {
	s.win = w
	s.self = self
	s.kind = kind
	s.id = w.surface.Create(kind, coords, style)
	s.sync()
}

func (s *shape) base() *shape { return s }

// Kind returns the shape's type.
func (s *shape) Kind() ShapeKind { return s.kind }

// Window returns the window the shape was added to.
func (s *shape) Window() *Window { return s.win }

func (s *shape) Left() int   { return s.bounds.Left }
func (s *shape) Top() int    { return s.bounds.Top }
func (s *shape) Right() int  { return s.bounds.Right }
func (s *shape) Bottom() int { return s.bounds.Bottom }
func (s *shape) Width() int  { return s.bounds.Width() }
func (s *shape) Height() int { return s.bounds.Height() }

// Deleted reports whether the shape has been removed.
func (s *shape) Deleted() bool { return s.deleted }

// sync refreshes the cached bounding box from the surface.
func (s *shape) sync() {
	s.bounds = s.win.surface.BBox(s.id)
}

func (s *shape) setCoords(coords []Point) {
	s.win.surface.SetCoords(s.id, coords)
	s.sync()
}

func (s *shape) style() canvas.Style {
	st, _ := s.win.surface.Style(s.id)
	return st
}

func (s *shape) setStyle(st canvas.Style) {
	s.win.surface.SetStyle(s.id, st)
	s.sync()
}

func (s *shape) delete() {
	if s.deleted {
		return
	}
	s.deleted = true
	s.win.surface.Delete(s.id)
}

func (s *shape) fail(err error) error {
	return s.win.fail(err)
}

func (s *shape) op(call string) string {
	return s.kind.String() + "." + call
}

// readOnly lists the derived attributes no shape allows to be assigned.
var readOnly = map[string]bool{
	"left": true, "top": true, "right": true, "bottom": true,
	"width": true, "height": true, "kind": true,
	"rows": true, "columns": true,
}

// Attr returns a client attribute, or the value of a derived attribute
// (left, top, right, bottom, width, height, kind).
func (s *shape) Attr(name string) (any, bool) {
	switch name {
	case "left":
		return s.Left(), true
	case "top":
		return s.Top(), true
	case "right":
		return s.Right(), true
	case "bottom":
		return s.Bottom(), true
	case "width":
		return s.Width(), true
	case "height":
		return s.Height(), true
	case "kind":
		return s.kind.String(), true
	}
	v, ok := s.attrs[name]
	return v, ok
}

// SetAttr stores client data on the shape, such as a velocity used by an
// animation. Derived attributes cannot be assigned.
func (s *shape) SetAttr(name string, v any) error {
	if name == "" {
		return s.fail(missingArgument(s.op("setAttr(name,value)"), "name"))
	}
	if readOnly[name] {
		return s.fail(immutableAttribute(fmt.Sprintf("%s.%s = value", s.kind, name), name))
	}
	if s.attrs == nil {
		s.attrs = make(map[string]any)
	}
	s.attrs[name] = v
	return nil
}

// isNilShape reports whether s is nil or a typed nil pointer.
func isNilShape(s Shape) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
