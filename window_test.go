package intrographics

import (
	"testing"
)

func TestShapeBoundingBoxes(t *testing.T) {
	w, _, _ := newTestWindow(t, 200, 200)

	r, err := w.AddRectangle(10, 20, 30, 40)
	if err != nil {
		t.Fatal(err)
	}
	wantBounds(t, r, 10, 20, 40, 60)

	o, err := w.AddOval(0, 0, 30, 30)
	if err != nil {
		t.Fatal(err)
	}
	wantBounds(t, o, 0, 0, 30, 30)

	p, err := w.AddPolygon(Pt(50, 10), Pt(90, 40), Pt(60, 70))
	if err != nil {
		t.Fatal(err)
	}
	wantBounds(t, p, 50, 10, 90, 70)

	l, err := w.AddLine(Pt(5, 100), Pt(25, 90))
	if err != nil {
		t.Fatal(err)
	}
	wantBounds(t, l, 5, 90, 25, 100)

	if w.Len() != 4 {
		t.Errorf("Len = %d, want 4", w.Len())
	}
}

func TestShapeMoveAndRelocate(t *testing.T) {
	w, _, _ := newTestWindow(t, 200, 200)
	r, _ := w.AddRectangle(10, 10, 20, 10)
	r.Move(5, -5)
	wantBounds(t, r, 15, 5, 35, 15)
	r.Relocate(0, 0)
	wantBounds(t, r, 0, 0, 20, 10)

	p, _ := w.AddPolygon(Pt(10, 10), Pt(30, 10), Pt(20, 30))
	p.Relocate(100, 100)
	wantBounds(t, p, 100, 100, 120, 120)
	if pts := p.Points(); pts[2] != Pt(110, 120) {
		t.Errorf("third point = %v, want (110,120)", pts[2])
	}
}

func TestTextExtentFollowsMessage(t *testing.T) {
	w, _, _ := newTestWindow(t, 300, 100)
	txt, err := w.AddText(10, 10, "hi")
	if err != nil {
		t.Fatal(err)
	}
	short := txt.Width()
	if short <= 0 || txt.Height() <= 0 {
		t.Fatalf("text extent %dx%d should be positive", txt.Width(), txt.Height())
	}
	txt.Rewrite("a much longer message")
	if txt.Width() <= short {
		t.Errorf("width %d should grow past %d", txt.Width(), short)
	}
	wantBounds(t, txt, 10, 10, 10+txt.Width(), 10+txt.Height())
	if txt.String() != "a much longer message" {
		t.Errorf("String = %q", txt.String())
	}
}

func TestShapeSizeRestrictions(t *testing.T) {
	w, _, _ := newTestWindow(t, 100, 100)
	_, err := w.AddRectangle(0, 0, 0, 10)
	wantKind(t, err, KindRestrictedValue)
	_, err = w.AddOval(0, 0, 10, -1)
	wantKind(t, err, KindRestrictedValue)
	_, err = w.AddPolygon(Pt(0, 0), Pt(1, 1))
	wantKind(t, err, KindMissingArgument)
	_, err = w.AddLine(Pt(0, 0))
	wantKind(t, err, KindMissingArgument)

	r, _ := w.AddRectangle(0, 0, 10, 10)
	wantKind(t, r.Resize(0, 5), KindRestrictedValue)
	if err := r.Resize(20, 5); err != nil {
		t.Fatal(err)
	}
	wantBounds(t, r, 0, 0, 20, 5)
	if w.Len() != 1 {
		t.Errorf("rejected calls added shapes: Len = %d", w.Len())
	}
}

func TestPaintValidation(t *testing.T) {
	w, _, _ := newTestWindow(t, 100, 100)
	r, _ := w.AddRectangle(0, 0, 10, 10)
	wantKind(t, r.Paint(nil), KindMissingArgument)
	wantKind(t, r.Paint("red", BorderWidth(-1)), KindRestrictedValue)
	wantKind(t, r.Paint("red", LineWidth(2)), KindExtraArguments)
	wantKind(t, r.Paint("red", BorderColor("nope")), KindInvalidColor)
	if err := r.Paint("red", BorderWidth(3), BorderColor("blue")); err != nil {
		t.Fatal(err)
	}

	l, _ := w.AddLine(Pt(0, 0), Pt(10, 10))
	wantKind(t, l.Paint("red", LineWidth(0)), KindRestrictedValue)
	wantKind(t, l.Paint("red", BorderWidth(1)), KindExtraArguments)
	if err := l.Paint("green", LineWidth(4)); err != nil {
		t.Fatal(err)
	}
}

func TestBorderlessPolygonDrawsNoOutline(t *testing.T) {
	w, _, _ := newTestWindow(t, 60, 60)
	p, _ := w.AddPolygon(Pt(10, 10), Pt(50, 10), Pt(50, 50), Pt(10, 50))
	if err := p.Paint("red", BorderWidth(0), BorderColor("blue")); err != nil {
		t.Fatal(err)
	}
	img, err := w.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c := img.RGBAAt(x, y); c.B > 150 && c.R < 100 {
				t.Fatalf("pixel (%d,%d) = %v looks like a blue outline", x, y, c)
			}
		}
	}
	if c := img.RGBAAt(30, 30); c.R < 200 || c.G > 50 {
		t.Errorf("interior = %v, want red", c)
	}
}

func TestUnderAndTouching(t *testing.T) {
	w, _, _ := newTestWindow(t, 200, 200)
	a, _ := w.AddRectangle(0, 0, 50, 50)
	b, _ := w.AddOval(25, 25, 50, 50)
	c, _ := w.AddRectangle(150, 150, 10, 10)

	under := w.Under(40, 40)
	if len(under) != 2 || under[0] != Shape(a) || under[1] != Shape(b) {
		t.Fatalf("Under(40,40) = %v, want [a b]", under)
	}
	if got := w.Under(100, 100); len(got) != 0 {
		t.Errorf("Under(100,100) = %v, want none", got)
	}
	// The oval's bounding box covers (27, 27) but the ellipse does not.
	if got := w.Under(27, 27); len(got) != 1 || got[0] != Shape(a) {
		t.Errorf("Under(27,27) = %v, want [a]", got)
	}

	touching, err := w.Touching(a)
	if err != nil {
		t.Fatal(err)
	}
	if len(touching) != 1 || touching[0] != Shape(b) {
		t.Errorf("Touching(a) = %v, want [b]", touching)
	}
	if got, _ := w.Touching(c); len(got) != 0 {
		t.Errorf("Touching(c) = %v, want none", got)
	}
	_, err = w.Touching(nil)
	wantKind(t, err, KindMissingArgument)
}

func TestRemove(t *testing.T) {
	w, _, _ := newTestWindow(t, 100, 100)
	a, _ := w.AddRectangle(0, 0, 10, 10)
	b, _ := w.AddRectangle(5, 5, 10, 10)

	if err := w.Remove(a); err != nil {
		t.Fatal(err)
	}
	if !a.Deleted() || w.Len() != 1 {
		t.Fatalf("Deleted = %v, Len = %d", a.Deleted(), w.Len())
	}
	if got := w.Under(2, 2); len(got) != 0 {
		t.Errorf("removed shape still found: %v", got)
	}

	// Removed shapes ignore mutation and keep their last geometry.
	a.Move(50, 50)
	if err := a.Paint("red"); err != nil {
		t.Errorf("paint on removed shape: %v", err)
	}
	wantBounds(t, a, 0, 0, 10, 10)

	wantKind(t, w.Remove(a), KindOwnership)
	wantKind(t, w.Remove(), KindMissingArgument)

	other, _, _ := newTestWindow(t, 10, 10)
	wantKind(t, other.Remove(b), KindOwnership)
	if b.Deleted() {
		t.Error("failed remove deleted the shape")
	}
}

func TestRemoveIsAllOrNothing(t *testing.T) {
	w, _, _ := newTestWindow(t, 100, 100)
	a, _ := w.AddRectangle(0, 0, 10, 10)
	b, _ := w.AddRectangle(0, 0, 10, 10)
	_ = w.Remove(b)
	wantKind(t, w.Remove(a, b), KindOwnership)
	if a.Deleted() {
		t.Error("a was removed although the call failed")
	}
}

func TestShapeAttributes(t *testing.T) {
	w, _, _ := newTestWindow(t, 100, 100)
	o, _ := w.AddOval(10, 10, 20, 20)

	if err := o.SetAttr("vx", 3); err != nil {
		t.Fatal(err)
	}
	if v, ok := o.Attr("vx"); !ok || v != 3 {
		t.Errorf("vx = %v, %v", v, ok)
	}
	if v, _ := o.Attr("right"); v != 30 {
		t.Errorf("right = %v, want 30", v)
	}
	for _, name := range []string{"left", "top", "right", "bottom", "width", "height"} {
		wantKind(t, o.SetAttr(name, 1), KindImmutableAttribute)
	}
	wantKind(t, o.SetAttr("", 1), KindMissingArgument)
}

func TestWindowAttributes(t *testing.T) {
	w, _, _ := newTestWindow(t, 100, 80)
	wantKind(t, w.SetAttr("width", 10), KindImmutableAttribute)
	wantKind(t, w.SetAttr("height", 10), KindImmutableAttribute)
	if err := w.SetAttr("x", "40"); err != nil {
		t.Fatal(err)
	}
	if w.X() != 40 {
		t.Errorf("X = %d, want 40", w.X())
	}
	wantKind(t, w.SetAttr("y", "down"), KindInvalidArgument)
	if v, _ := w.Attr("height"); v != 80 {
		t.Errorf("height = %v, want 80", v)
	}
	if err := w.SetAttr("score", 7); err != nil {
		t.Fatal(err)
	}
	if v, _ := w.Attr("score"); v != 7 {
		t.Errorf("score = %v, want 7", v)
	}
}

func TestWindowGeometry(t *testing.T) {
	w, h, _ := newTestWindow(t, 120, 90)
	f := h.Frames()[0]
	if f.Width != 121 || f.Height != 91 {
		t.Errorf("frame = %dx%d, want 121x91", f.Width, f.Height)
	}
	w.Relocate(300, 200)
	if f.X != 300 || f.Y != 200 {
		t.Errorf("frame at (%d,%d), want (300,200)", f.X, f.Y)
	}
	wantKind(t, w.Resize(0, 10), KindRestrictedValue)
	if err := w.Resize(50, 60); err != nil {
		t.Fatal(err)
	}
	if cw, _ := f.Canvas().Size(); w.Width() != 50 || f.Width != 51 || cw != 51 {
		t.Errorf("resize not applied: window %d, frame %d", w.Width(), f.Width)
	}
}

func TestOpenAndClose(t *testing.T) {
	w, h, out := newTestWindow(t, 100, 100)
	r, _ := w.AddRectangle(0, 0, 10, 10)

	// Closing before opening does nothing.
	if err := w.Close("early"); err != nil {
		t.Fatal(err)
	}
	if w.State() != StateConstructed || out.Len() != 0 {
		t.Fatalf("state = %v, output = %q", w.State(), out.String())
	}

	if err := w.Open("Demo"); err != nil {
		t.Fatal(err)
	}
	f := h.Frames()[0]
	if f.Title != "Demo" || !f.Visible {
		t.Errorf("frame title %q, visible %v", f.Title, f.Visible)
	}
	_, err := w.AddText(0, 0, "x")
	if err != nil {
		t.Fatal(err)
	}

	wantKind(t, w.Close("a", "b"), KindExtraArguments)
	if err := w.Close("Goodbye"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "Goodbye\n" {
		t.Errorf("output = %q, want Goodbye", out.String())
	}
	if !w.Closed() || !r.Deleted() || w.Len() != 0 || !f.Destroyed {
		t.Errorf("close incomplete: state %v, deleted %v, len %d", w.State(), r.Deleted(), w.Len())
	}
	if got := w.Under(5, 5); got != nil {
		t.Errorf("Under after close = %v", got)
	}

	// Everything on a closed window is ignored.
	if s, err := w.AddOval(0, 0, 5, 5); s != nil || err != nil {
		t.Errorf("AddOval after close = %v, %v", s, err)
	}
	if err := w.Close("again"); err != nil || out.String() != "Goodbye\n" {
		t.Errorf("second close wrote output: %q", out.String())
	}
	if err := w.Open(); err != nil || w.Opened() {
		t.Error("reopen should be ignored")
	}
}

func TestClosedWindowStillValidates(t *testing.T) {
	w, _, _ := newTestWindow(t, 10, 10)
	openIdle(t, w)
	_ = w.Close()
	_, err := w.AddRectangle(0, 0, -1, 5)
	wantKind(t, err, KindRestrictedValue)
}

func TestTextConversions(t *testing.T) {
	w, _, _ := newTestWindow(t, 100, 100)
	txt, _ := w.AddText(0, 0, " 42 ")
	if n, err := txt.Int(); err != nil || n != 42 {
		t.Errorf("Int = %d, %v", n, err)
	}
	txt.Rewrite("2.5")
	if f, err := txt.Float(); err != nil || f != 2.5 {
		t.Errorf("Float = %v, %v", f, err)
	}
	_, err := txt.Int()
	wantKind(t, err, KindConversion)
	txt.Rewrite("")
	_, err = txt.Float()
	wantKind(t, err, KindConversion)
}

func TestTextFormat(t *testing.T) {
	w, _, _ := newTestWindow(t, 300, 100)
	txt, _ := w.AddText(0, 0, "Hello")
	h := txt.Height()
	if err := txt.Format("Courier", 32, "red"); err != nil {
		t.Fatal(err)
	}
	if family, size := txt.Font(); family != "Courier" || size != 32 {
		t.Errorf("Font = %s %d", family, size)
	}
	if txt.Height() <= h {
		t.Errorf("height %d should grow past %d", txt.Height(), h)
	}
	wantKind(t, txt.Format("", 12, "red"), KindMissingArgument)
	wantKind(t, txt.Format("Courier", 0, "red"), KindRestrictedValue)
	wantKind(t, txt.Format("Courier", 12, "nope"), KindInvalidColor)
}

func TestButtonOnPress(t *testing.T) {
	w, _, _ := newTestWindow(t, 100, 100)
	b, _ := w.AddButton(10, 10, "Go")

	calls := 0
	if err := b.OnPress(func() { calls++ }); err != nil {
		t.Fatal(err)
	}
	b.Press()

	var got *Button
	if err := b.OnPress(func(pressed *Button) { got = pressed }); err != nil {
		t.Fatal(err)
	}
	b.Press()
	if calls != 1 || got != b {
		t.Errorf("calls = %d, got = %v", calls, got)
	}

	wantKind(t, b.OnPress(func(a, c *Button) {}), KindHandlerArity)
	wantKind(t, b.OnPress(func(s string) {}), KindInvalidArgument)
	wantKind(t, b.OnPress("press"), KindInvalidArgument)
	wantKind(t, b.OnPress(nil), KindMissingArgument)
}

func TestWidgetExtents(t *testing.T) {
	w, _, _ := newTestWindow(t, 300, 100)
	txt, _ := w.AddText(0, 0, "OK")
	b, _ := w.AddButton(0, 0, "OK")
	if b.Width() <= txt.Width() || b.Height() <= txt.Height() {
		t.Errorf("button %dx%d should pad text %dx%d", b.Width(), b.Height(), txt.Width(), txt.Height())
	}
	f1, _ := w.AddField(0, 0)
	f2, _ := w.AddField(0, 0, "a long initial value")
	if f1.Width() != f2.Width() {
		t.Errorf("field width depends on content: %d vs %d", f1.Width(), f2.Width())
	}
	_, err := w.AddField(0, 0, "a", "b")
	wantKind(t, err, KindExtraArguments)
}

func TestShapeKinds(t *testing.T) {
	w, _, _ := newTestWindow(t, 200, 200)
	rect, _ := w.AddRectangle(0, 0, 5, 5)
	oval, _ := w.AddOval(0, 0, 5, 5)
	poly, _ := w.AddPolygon(Pt(0, 0), Pt(5, 0), Pt(0, 5))
	line, _ := w.AddLine(Pt(0, 0), Pt(5, 5))
	text, _ := w.AddText(0, 0, "hi")
	button, _ := w.AddButton(0, 0, "ok")
	field, _ := w.AddField(0, 0)
	img, _ := w.AddImage(0, 0, writeTestImage(t, "k.png", 2, 2))

	tests := []struct {
		s    Shape
		want ShapeKind
		name string
	}{
		{rect, ShapeRectangle, "rectangle"},
		{oval, ShapeOval, "oval"},
		{poly, ShapePolygon, "polygon"},
		{line, ShapeLine, "line"},
		{text, ShapeText, "text"},
		{button, ShapeButton, "button"},
		{field, ShapeField, "field"},
		{img, ShapeImage, "image"},
	}
	for _, tt := range tests {
		if got := tt.s.Kind(); got != tt.want || got.String() != tt.name {
			t.Errorf("Kind() = %v, want %s", got, tt.name)
		}
	}
}
