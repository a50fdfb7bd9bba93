package intrographics

import "github.com/phanxgames/intrographics/canvas"

// boxShape is a shape defined by a top-left corner and a size.
type boxShape struct {
	shape
	x, y          int
	width, height int
}

func (b *boxShape) init(w *Window, kind ShapeKind, self Shape, x, y, width, height int, st canvas.Style) {
	b.x, b.y, b.width, b.height = x, y, width, height
	b.create(w, kind, self, b.corners(), st)
}

func (b *boxShape) corners() []Point {
	return []Point{{X: b.x, Y: b.y}, {X: b.x + b.width, Y: b.y + b.height}}
}

// Move shifts the shape by (dx, dy).
func (b *boxShape) Move(dx, dy int) {
	if b.deleted {
		return
	}
	b.x += dx
	b.y += dy
	b.setCoords(b.corners())
}

// Relocate moves the top-left corner to (x, y).
func (b *boxShape) Relocate(x, y int) {
	if b.deleted {
		return
	}
	b.x, b.y = x, y
	b.setCoords(b.corners())
}

// Resize changes the size while keeping the top-left corner in place. Both
// dimensions must be at least 1.
func (b *boxShape) Resize(width, height int) error {
	if err := checkSize(b.op("resize(width,height)"), width, height); err != nil {
		return b.fail(err)
	}
	if b.deleted {
		return nil
	}
	b.width, b.height = width, height
	b.setCoords(b.corners())
	return nil
}

// Paint sets the interior color and, through options, the outline.
//
//	r.Paint("red")
//	r.Paint("red", intrographics.BorderWidth(3), intrographics.BorderColor("blue"))
func (b *boxShape) Paint(fill any, opts ...PaintOption) error {
	return b.paintFilled(fill, opts)
}

// Rectangle is an axis-aligned box. New rectangles have a black outline and
// no fill.
type Rectangle struct {
	boxShape
}

// Oval is the ellipse inscribed in a box. New ovals have a black outline
// and no fill.
type Oval struct {
	boxShape
}
