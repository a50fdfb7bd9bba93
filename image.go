package intrographics

import (
	"fmt"
	"image"
	"image/color"

	"github.com/phanxgames/intrographics/codec"
)

// Image is a picture loaded from a file. Its pixels can be read, changed
// and saved.
type Image struct {
	pointShape
	pix      *image.NRGBA
	filename string
}

// Filename returns the file the image was loaded from.
func (im *Image) Filename() string { return im.filename }

// Columns returns the image width in pixels.
func (im *Image) Columns() int { return im.pix.Rect.Dx() }

// Rows returns the image height in pixels.
func (im *Image) Rows() int { return im.pix.Rect.Dy() }

// Attr adds the read-only rows and columns attributes to the shape ones.
func (im *Image) Attr(name string) (any, bool) {
	switch name {
	case "rows":
		return im.Rows(), true
	case "columns":
		return im.Columns(), true
	}
	return im.shape.Attr(name)
}

func (im *Image) checkPixel(op string, col, row int) error {
	if im.deleted {
		return newError(op, KindDeletedShape, "image was removed from its window")
	}
	if col < 0 || col >= im.Columns() {
		return restrictedValue(op, "column", col, fmt.Sprintf("must be in 0..%d", im.Columns()-1))
	}
	if row < 0 || row >= im.Rows() {
		return restrictedValue(op, "row", row, fmt.Sprintf("must be in 0..%d", im.Rows()-1))
	}
	return nil
}

// Pixel returns the color at (col, row).
func (im *Image) Pixel(col, row int) (RGB, error) {
	const op = "image[column,row]"
	if err := im.checkPixel(op, col, row); err != nil {
		return RGB{}, im.fail(err)
	}
	c := im.pix.NRGBAAt(col, row)
	return RGB{R: c.R, G: c.G, B: c.B}, nil
}

// SetPixel changes the color at (col, row).
func (im *Image) SetPixel(col, row int, c any) error {
	const op = "image[column,row] = color"
	if err := im.checkPixel(op, col, row); err != nil {
		return im.fail(err)
	}
	rgb, err := im.win.resolveColor(op, c)
	if err != nil {
		return im.fail(err)
	}
	im.pix.SetNRGBA(col, row, color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xff})
	im.setStyle(im.style())
	return nil
}

// SaveAs writes the image to filename in the format named by its extension.
func (im *Image) SaveAs(filename string) error {
	const op = "image.saveAs(filename)"
	if filename == "" {
		return im.fail(missingArgument(op, "filename"))
	}
	if im.deleted {
		return im.fail(newError(op, KindDeletedShape, "image was removed from its window"))
	}
	if err := codec.Encode(filename, im.pix); err != nil {
		return im.fail(&Error{Op: op, Kind: KindInvalidArgument, Msg: "cannot save " + filename, Err: err})
	}
	return nil
}
