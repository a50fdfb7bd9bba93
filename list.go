package intrographics

import "github.com/phanxgames/intrographics/canvas"

// listShape is a shape defined by a list of points.
type listShape struct {
	shape
	points []Point
}

func (l *listShape) init(w *Window, kind ShapeKind, self Shape, points []Point, st canvas.Style) {
	l.points = append([]Point(nil), points...)
	l.create(w, kind, self, l.points, st)
}

// Points returns a copy of the shape's points.
func (l *listShape) Points() []Point {
	return append([]Point(nil), l.points...)
}

// Move shifts every point by (dx, dy).
func (l *listShape) Move(dx, dy int) {
	if l.deleted {
		return
	}
	for i := range l.points {
		l.points[i].X += dx
		l.points[i].Y += dy
	}
	l.setCoords(l.points)
}

// Relocate translates the shape so the top-left corner of its bounding box
// is at (x, y).
func (l *listShape) Relocate(x, y int) {
	l.Move(x-l.Left(), y-l.Top())
}

// Polygon is a closed shape through three or more points. New polygons are
// filled black with no outline.
type Polygon struct {
	listShape
}

// Paint sets the interior color and, through options, the outline. With
// BorderWidth(0) no outline is drawn at all.
func (p *Polygon) Paint(fill any, opts ...PaintOption) error {
	return p.paintFilled(fill, opts)
}

// Line is an open polyline through two or more points. New lines are black
// and one pixel wide.
type Line struct {
	listShape
}

// Paint sets the line color and, with LineWidth, its width (at least 1).
func (l *Line) Paint(color any, opts ...PaintOption) error {
	const op = "line.paint(color,width)"
	cfg := collectPaint(opts)
	if cfg.borderWidthSet || cfg.borderColorSet {
		return l.fail(newError(op, KindExtraArguments, "line.paint takes only a color and a width"))
	}
	if color == nil {
		return l.fail(missingArgument(op, "color"))
	}
	if err := requireAtLeast(op, "width", cfg.lineWidth, 1); err != nil {
		return l.fail(err)
	}
	if l.deleted {
		return nil
	}
	c, err := l.win.resolveColor(op, color)
	if err != nil {
		return l.fail(err)
	}
	st := l.style()
	st.Fill = canvas.ColorPtr(c)
	st.Width = cfg.lineWidth
	l.setStyle(st)
	return nil
}
