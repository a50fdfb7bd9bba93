package canvas

import (
	"errors"
	"image"
	"image/draw"

	"github.com/gogpu/gg"
)

// Render rasterizes all items in stacking order onto a fresh image the size
// of the canvas. Items that fail to rasterize are skipped and their errors
// joined into the returned error; the image is always usable.
func (c *Canvas) Render() (*image.RGBA, error) {
	dc := gg.NewContext(c.width, c.height)
	defer dc.Close()
	dc.ClearWithColor(gg.FromColor(c.background))

	var errs []error
	for _, it := range c.items {
		if err := drawItem(dc, it); err != nil {
			errs = append(errs, err)
		}
	}

	img := dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, errors.Join(errs...)
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba, errors.Join(errs...)
}

func drawItem(dc *gg.Context, it *item) error {
	if len(it.coords) == 0 {
		return nil
	}
	st := it.style
	switch it.kind {
	case KindRectangle:
		b := it.bbox
		dc.DrawRectangle(float64(b.Left), float64(b.Top), float64(b.Width()), float64(b.Height()))
		return fillAndStroke(dc, st.Fill, st.Outline, st.Width)
	case KindOval:
		b := it.bbox
		rx, ry := float64(b.Width())/2, float64(b.Height())/2
		dc.DrawEllipse(float64(b.Left)+rx, float64(b.Top)+ry, rx, ry)
		return fillAndStroke(dc, st.Fill, st.Outline, st.Width)
	case KindPolygon:
		tracePath(dc, it.coords)
		dc.ClosePath()
		return fillAndStroke(dc, st.Fill, st.Outline, st.Width)
	case KindLine:
		tracePath(dc, it.coords)
		return fillAndStroke(dc, nil, st.Fill, max(st.Width, 1))
	case KindText:
		return drawText(dc, st, it.coords[0], 0, 0)
	case KindButton:
		return drawWidget(dc, it, ButtonPadX, ButtonPadY, 2)
	case KindField:
		return drawWidget(dc, it, FieldPad, FieldPad, 1)
	case KindImage:
		if st.Image == nil {
			return nil
		}
		at := it.coords[0]
		dc.DrawImage(gg.ImageBufFromImage(st.Image), float64(at.X), float64(at.Y))
	}
	return nil
}

func tracePath(dc *gg.Context, pts []Point) {
	dc.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	for _, p := range pts[1:] {
		dc.LineTo(float64(p.X), float64(p.Y))
	}
}

// fillAndStroke paints the current path. A nil fill or outline, or a zero
// width, skips that part.
func fillAndStroke(dc *gg.Context, fill, outline *RGB, width int) error {
	stroke := outline != nil && width > 0
	if fill != nil {
		dc.SetColor(*fill)
		var err error
		if stroke {
			err = dc.FillPreserve()
		} else {
			err = dc.Fill()
		}
		if err != nil {
			dc.ClearPath()
			return err
		}
	}
	if !stroke {
		dc.ClearPath()
		return nil
	}
	dc.SetColor(*outline)
	dc.SetLineWidth(float64(width))
	return dc.Stroke()
}

// drawWidget draws a button or field: a face, a border and the message inset
// by the padding.
func drawWidget(dc *gg.Context, it *item, padX, padY, border int) error {
	st := it.style
	b := it.bbox
	bg := WidgetGray
	if st.Background != nil {
		bg = *st.Background
	}
	dc.DrawRectangle(float64(b.Left), float64(b.Top), float64(b.Width()), float64(b.Height()))
	if err := fillAndStroke(dc, &bg, ColorPtr(RGB{0x80, 0x80, 0x80}), border); err != nil {
		return err
	}
	return drawText(dc, st, it.coords[0], padX, padY)
}

func drawText(dc *gg.Context, st Style, at Point, dx, dy int) error {
	if st.Text == "" {
		return nil
	}
	face, err := Face(st.Font)
	if err != nil {
		return err
	}
	col := Black
	if st.Fill != nil {
		col = *st.Fill
	}
	dc.SetFont(face)
	dc.SetColor(col)
	dc.DrawString(st.Text, float64(at.X+dx), float64(at.Y+dy)+ascent(face))
	return nil
}
