package intrographics

import (
	"fmt"

	"github.com/phanxgames/intrographics/canvas"
)

// Point is an integer pixel coordinate within a window.
type Point = canvas.Point

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return canvas.Pt(x, y) }

// RGB is a canonical opaque color.
type RGB = canvas.RGB

// ShapeKind identifies the concrete type of a [Shape].
type ShapeKind = canvas.Kind

// Shape kinds, as returned by Shape.Kind.
const (
	ShapeRectangle = canvas.KindRectangle
	ShapeOval      = canvas.KindOval
	ShapePolygon   = canvas.KindPolygon
	ShapeLine      = canvas.KindLine
	ShapeText      = canvas.KindText
	ShapeButton    = canvas.KindButton
	ShapeField     = canvas.KindField
	ShapeImage     = canvas.KindImage
)

// State is a window's position in its lifecycle. Windows move forward only:
// constructed, opened, closed.
type State uint8

const (
	StateConstructed State = iota
	StateOpened
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConstructed:
		return "constructed"
	case StateOpened:
		return "opened"
	case StateClosed:
		return "closed"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// EventClass is a kind of user interaction a window can handle.
type EventClass uint8

const (
	ClassLeftClick EventClass = iota
	ClassLeftDrag
	ClassRightClick
	ClassRightDrag
	ClassKey
	ClassPress
	numClasses
)

var classNames = [numClasses]string{
	ClassLeftClick:  "leftClick",
	ClassLeftDrag:   "leftDrag",
	ClassRightClick: "rightClick",
	ClassRightDrag:  "rightDrag",
	ClassKey:        "key",
	ClassPress:      "press",
}

func (c EventClass) String() string {
	if c < numClasses {
		return classNames[c]
	}
	return fmt.Sprintf("class(%d)", uint8(c))
}

// PointerHandler receives the window coordinates of a click or drag.
type PointerHandler func(x, y int)

// KeyHandler receives the symbol of a pressed key, such as "a", "Return"
// or "Up".
type KeyHandler func(key string)

// Default window and text settings.
const (
	DefaultTitle    = "intrographics"
	DefaultFont     = "Helvetica"
	DefaultFontSize = 16
)
