// Package canvas implements a retained drawing surface: an ordered list of
// items (rectangles, ovals, polygons, lines, text, widgets and images) that
// can be moved, restyled, hit-tested and rasterized in software.
//
// Items are kept in stacking order. Newer items draw above older ones and
// FindOverlapping reports matches bottom-first.
package canvas

import (
	"fmt"
	"image"
)

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Rect is a closed axis-aligned box. Right and Bottom are inclusive edges,
// so a Rect{0, 0, 0, 0} still covers the single pixel at the origin.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Width returns Right - Left.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Contains reports whether p lies inside or on the edge of r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Overlaps reports whether the two closed boxes share at least one point.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left <= o.Right && o.Left <= r.Right && r.Top <= o.Bottom && o.Top <= r.Bottom
}

// RectAt returns the degenerate rect covering a single point.
func RectAt(x, y int) Rect {
	return Rect{Left: x, Top: y, Right: x, Bottom: y}
}

// boundsOf returns the min/max box around pts.
func boundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Left: pts[0].X, Top: pts[0].Y, Right: pts[0].X, Bottom: pts[0].Y}
	for _, p := range pts[1:] {
		r.Left = min(r.Left, p.X)
		r.Top = min(r.Top, p.Y)
		r.Right = max(r.Right, p.X)
		r.Bottom = max(r.Bottom, p.Y)
	}
	return r
}

// RGB is an opaque 8-bit color. It satisfies color.Color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return uint32(c.R) * 0x101, uint32(c.G) * 0x101, uint32(c.B) * 0x101, 0xffff
}

// Hex formats the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string { return c.Hex() }

// Common colors used for item defaults.
var (
	Black      = RGB{0, 0, 0}
	White      = RGB{255, 255, 255}
	WidgetGray = RGB{0xd9, 0xd9, 0xd9}
)

// Kind identifies the type of a canvas item.
type Kind uint8

const (
	KindRectangle Kind = iota + 1
	KindOval
	KindPolygon
	KindLine
	KindText
	KindButton
	KindField
	KindImage
)

var kindNames = [...]string{
	KindRectangle: "rectangle",
	KindOval:      "oval",
	KindPolygon:   "polygon",
	KindLine:      "line",
	KindText:      "text",
	KindButton:    "button",
	KindField:     "field",
	KindImage:     "image",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// ID identifies an item on one Canvas. Zero is never assigned.
type ID uint32

// Style holds the drawing attributes of an item. A nil color means the
// corresponding part is not drawn.
type Style struct {
	// Fill is the interior color. Lines use it as the stroke color and text
	// items as the glyph color.
	Fill *RGB
	// Outline is the border color of rectangles, ovals and polygons.
	Outline *RGB
	// Width is the border width, or the stroke width of a line.
	Width int
	// Text is the message drawn by text, button and field items.
	Text string
	Font Font
	// Background is the face color of button and field widgets.
	Background *RGB
	Image      image.Image
}

// ColorPtr returns a pointer to a copy of c, for use in Style literals.
func ColorPtr(c RGB) *RGB {
	return &c
}

type item struct {
	id     ID
	kind   Kind
	coords []Point
	style  Style
	bbox   Rect
}

// Canvas is a single-threaded retained surface.
type Canvas struct {
	width, height int
	background    RGB
	items         []*item
	index         map[ID]*item
	nextID        ID
	version       uint64
}

// New creates an empty canvas of the given pixel size with a white background.
func New(width, height int) *Canvas {
	return &Canvas{
		width:      max(width, 1),
		height:     max(height, 1),
		background: White,
		index:      make(map[ID]*item),
	}
}

// Size returns the pixel size of the canvas.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Resize changes the pixel size. Items keep their coordinates.
func (c *Canvas) Resize(width, height int) {
	c.width, c.height = max(width, 1), max(height, 1)
	c.version++
}

// SetBackground sets the color the canvas is cleared to before drawing.
func (c *Canvas) SetBackground(col RGB) {
	c.background = col
	c.version++
}

// Background returns the current background color.
func (c *Canvas) Background() RGB {
	return c.background
}

// Version increases on every visible change. Renderers compare it to skip
// redundant rasterization.
func (c *Canvas) Version() uint64 {
	return c.version
}

// Len returns the number of live items.
func (c *Canvas) Len() int {
	return len(c.items)
}

// Create adds an item above all existing items and returns its ID. The
// coords slice is copied.
func (c *Canvas) Create(kind Kind, coords []Point, style Style) ID {
	c.nextID++
	it := &item{
		id:     c.nextID,
		kind:   kind,
		coords: append([]Point(nil), coords...),
		style:  style,
	}
	it.bbox = c.measure(it)
	c.items = append(c.items, it)
	c.index[it.id] = it
	c.version++
	return it.id
}

// Exists reports whether id names a live item.
func (c *Canvas) Exists(id ID) bool {
	_, ok := c.index[id]
	return ok
}

// Kind returns the kind of the item, or zero if it does not exist.
func (c *Canvas) Kind(id ID) Kind {
	if it, ok := c.index[id]; ok {
		return it.kind
	}
	return 0
}

// Coords returns a copy of the item's coordinates.
func (c *Canvas) Coords(id ID) []Point {
	it, ok := c.index[id]
	if !ok {
		return nil
	}
	return append([]Point(nil), it.coords...)
}

// SetCoords replaces the item's coordinates and recomputes its bounds.
func (c *Canvas) SetCoords(id ID, coords []Point) {
	it, ok := c.index[id]
	if !ok {
		return
	}
	it.coords = append(it.coords[:0], coords...)
	it.bbox = c.measure(it)
	c.version++
}

// Style returns the item's current style.
func (c *Canvas) Style(id ID) (Style, bool) {
	it, ok := c.index[id]
	if !ok {
		return Style{}, false
	}
	return it.style, true
}

// SetStyle replaces the item's style and recomputes its bounds, since text
// and font changes alter the measured extent.
func (c *Canvas) SetStyle(id ID, style Style) {
	it, ok := c.index[id]
	if !ok {
		return
	}
	it.style = style
	it.bbox = c.measure(it)
	c.version++
}

// BBox returns the item's bounding box.
func (c *Canvas) BBox(id ID) Rect {
	if it, ok := c.index[id]; ok {
		return it.bbox
	}
	return Rect{}
}

// Delete removes the item. Unknown IDs are ignored.
func (c *Canvas) Delete(id ID) {
	it, ok := c.index[id]
	if !ok {
		return
	}
	delete(c.index, id)
	for i, cur := range c.items {
		if cur == it {
			copy(c.items[i:], c.items[i+1:])
			c.items[len(c.items)-1] = nil
			c.items = c.items[:len(c.items)-1]
			break
		}
	}
	c.version++
}

// FindOverlapping returns the IDs of all items whose drawn shape overlaps r,
// in stacking order (bottom first).
func (c *Canvas) FindOverlapping(r Rect) []ID {
	var ids []ID
	for _, it := range c.items {
		if !it.bbox.Overlaps(r) {
			continue
		}
		if it.overlaps(r) {
			ids = append(ids, it.id)
		}
	}
	return ids
}

// measure computes the bounding box of an item from its coordinates and,
// for point items, the measured extent of its content.
func (c *Canvas) measure(it *item) Rect {
	if len(it.coords) == 0 {
		return Rect{}
	}
	switch it.kind {
	case KindRectangle, KindOval, KindPolygon, KindLine:
		return boundsOf(it.coords)
	}
	at := it.coords[0]
	w, h := c.extent(it)
	return Rect{Left: at.X, Top: at.Y, Right: at.X + w, Bottom: at.Y + h}
}

// extent returns the pixel size of a point item's content.
func (c *Canvas) extent(it *item) (w, h int) {
	switch it.kind {
	case KindText:
		return MeasureText(it.style.Font, it.style.Text)
	case KindButton:
		tw, th := MeasureText(it.style.Font, it.style.Text)
		return tw + 2*ButtonPadX, th + 2*ButtonPadY
	case KindField:
		cw, th := MeasureText(it.style.Font, "0")
		return FieldChars*cw + 2*FieldPad, th + 2*FieldPad
	case KindImage:
		if it.style.Image == nil {
			return 0, 0
		}
		b := it.style.Image.Bounds()
		return b.Dx(), b.Dy()
	}
	return 0, 0
}

// Widget geometry.
const (
	ButtonPadX = 9
	ButtonPadY = 4
	FieldPad   = 3
	FieldChars = 20
)
