// Package codec loads and saves raster images, choosing the format from the
// file extension.
//
// Decoding supports PNG, GIF, JPEG, BMP, TIFF and WebP. Encoding supports
// every format except WebP.
package codec

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned for file extensions the codec cannot
// handle in the requested direction.
var ErrUnsupportedFormat = errors.New("codec: unsupported image format")

// Format names an image encoding.
type Format string

const (
	PNG  Format = "png"
	GIF  Format = "gif"
	JPEG Format = "jpeg"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	WebP Format = "webp"
)

var extensions = map[string]Format{
	".png":  PNG,
	".gif":  GIF,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".bmp":  BMP,
	".tif":  TIFF,
	".tiff": TIFF,
	".webp": WebP,
}

// FormatOf returns the format implied by the file extension of path.
func FormatOf(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := extensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return f, nil
}

// Decode reads the image file at path into an NRGBA buffer whose bounds
// start at the origin.
func Decode(path string) (*image.NRGBA, error) {
	if _, err := FormatOf(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("codec: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("codec: decode %s: %w", path, err)
	}
	return ToNRGBA(img), nil
}

// Encode writes img to path in the format implied by its extension.
func Encode(path string, img image.Image) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	if format == WebP {
		return fmt.Errorf("%w: webp encoding", ErrUnsupportedFormat)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("codec: create %s: %w", path, err)
	}
	if err := EncodeTo(f, format, img); err != nil {
		f.Close()
		return fmt.Errorf("codec: encode %s: %w", path, err)
	}
	return f.Close()
}

// EncodeTo writes img to w in the given format.
func EncodeTo(w io.Writer, format Format, img image.Image) error {
	switch format {
	case PNG:
		return png.Encode(w, img)
	case GIF:
		if p, ok := exactPaletted(img); ok {
			img = p
		}
		return gif.Encode(w, img, &gif.Options{NumColors: 256})
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

// exactPaletted converts img to a paletted image holding exactly its
// colors. It reports false when img has more than 256 distinct colors, in
// which case the GIF encoder quantizes it.
func exactPaletted(img image.Image) (*image.Paletted, bool) {
	if p, ok := img.(*image.Paletted); ok {
		return p, true
	}
	src := ToNRGBA(img)
	b := src.Bounds()
	index := make(map[color.NRGBA]uint8)
	var palette color.Palette
	out := image.NewPaletted(b, nil)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := src.NRGBAAt(x, y)
			i, ok := index[c]
			if !ok {
				if len(palette) == 256 {
					return nil, false
				}
				i = uint8(len(palette))
				index[c] = i
				palette = append(palette, c)
			}
			out.SetColorIndex(x, y, i)
		}
	}
	out.Palette = palette
	return out, true
}

// ToNRGBA returns img as an NRGBA buffer anchored at the origin, copying
// only when necessary.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
