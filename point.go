package intrographics

import (
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/phanxgames/intrographics/canvas"
)

// pointShape is a shape anchored at its top-left corner whose size comes
// from its content.
type pointShape struct {
	shape
	x, y int
}

func (p *pointShape) init(w *Window, kind ShapeKind, self Shape, x, y int, st canvas.Style) {
	p.x, p.y = x, y
	p.create(w, kind, self, []Point{{X: x, Y: y}}, st)
}

// Move shifts the shape by (dx, dy).
func (p *pointShape) Move(dx, dy int) {
	p.Relocate(p.x+dx, p.y+dy)
}

// Relocate moves the top-left corner to (x, y).
func (p *pointShape) Relocate(x, y int) {
	if p.deleted {
		return
	}
	p.x, p.y = x, y
	p.setCoords([]Point{{X: x, Y: y}})
}

// textual is a point shape that displays a message.
type textual struct {
	pointShape
	message string
}

func (t *textual) init(w *Window, kind ShapeKind, self Shape, x, y int, message string, st canvas.Style) {
	t.message = message
	st.Text = message
	t.pointShape.init(w, kind, self, x, y, st)
}

// String returns the current message.
func (t *textual) String() string {
	return t.message
}

// Int parses the message as a base-10 integer, ignoring surrounding space.
func (t *textual) Int() (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(t.message))
	if err != nil {
		return 0, t.fail(&Error{
			Op:   t.op("int()"),
			Kind: KindConversion,
			Msg:  strconv.Quote(t.message) + " is not an integer",
			Err:  err,
		})
	}
	return n, nil
}

// Float parses the message as a floating-point number.
func (t *textual) Float() (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(t.message), 64)
	if err != nil {
		return 0, t.fail(&Error{
			Op:   t.op("float()"),
			Kind: KindConversion,
			Msg:  strconv.Quote(t.message) + " is not a number",
			Err:  err,
		})
	}
	return f, nil
}

// Rewrite replaces the message. The shape's extent follows the new text.
func (t *textual) Rewrite(message string) {
	if t.deleted {
		return
	}
	t.message = message
	st := t.style()
	st.Text = message
	t.setStyle(st)
}

// Text is a label. New labels use the configured font and are black.
type Text struct {
	textual
}

// Format sets the font family, size and color of the label.
func (t *Text) Format(font string, size int, color any) error {
	const op = "text.format(font,size,color)"
	if strings.TrimSpace(font) == "" {
		return t.fail(missingArgument(op, "font"))
	}
	if err := requireAtLeast(op, "size", size, 1); err != nil {
		return t.fail(err)
	}
	if t.deleted {
		return nil
	}
	c, err := t.win.resolveColor(op, color)
	if err != nil {
		return t.fail(err)
	}
	st := t.style()
	st.Font = canvas.Font{Family: font, Size: size}
	st.Fill = canvas.ColorPtr(c)
	t.setStyle(st)
	return nil
}

// Font returns the label's font family and size.
func (t *Text) Font() (family string, size int) {
	st := t.style()
	return st.Font.Family, st.Font.Size
}

// Button is a push button. A press happens when the left mouse button is
// released over the button it went down on.
type Button struct {
	textual
	onPress func(reflect.Value)
}

var buttonType = reflect.TypeOf((*Button)(nil))

// OnPress installs the press handler, replacing any earlier one. The
// handler must be a func() or a func(*Button), which receives the pressed
// button.
func (b *Button) OnPress(handler any) error {
	const op = "button.onPress(function)"
	call, err := callbackOf(op, handler, buttonType)
	if err != nil {
		return b.fail(err)
	}
	if b.deleted {
		return nil
	}
	b.onPress = call
	return nil
}

// Press invokes the press handler as if the button had been clicked.
func (b *Button) Press() {
	if b.deleted || b.onPress == nil {
		return
	}
	b.onPress(reflect.ValueOf(b))
}

// Field is a one-line text entry. Clicking a field gives it the keyboard
// focus and clears its text; typed characters are appended to the message
// and BackSpace removes the last one.
type Field struct {
	textual
}

// Focused reports whether the field has the keyboard focus.
func (f *Field) Focused() bool {
	return !f.deleted && f.win.input.focus == f
}

// edit applies a key event to the message.
func (f *Field) edit(key string, ch rune) {
	switch {
	case key == "BackSpace":
		if f.message == "" {
			return
		}
		_, size := utf8.DecodeLastRuneInString(f.message)
		f.Rewrite(f.message[:len(f.message)-size])
	case ch >= ' ' && ch != utf8.RuneError && ch != 0x7f:
		f.Rewrite(f.message + string(ch))
	}
}
