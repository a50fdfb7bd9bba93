package intrographics

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/phanxgames/intrographics/codec"
)

func writeTestImage(t *testing.T, name string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), B: 50, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), name)
	if err := codec.Encode(path, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAddImage(t *testing.T) {
	w, _, _ := newTestWindow(t, 100, 100)
	path := writeTestImage(t, "grid.png", 8, 6)
	im, err := w.AddImage(20, 30, path)
	if err != nil {
		t.Fatal(err)
	}
	if im.Columns() != 8 || im.Rows() != 6 || im.Filename() != path {
		t.Errorf("image %dx%d from %q", im.Columns(), im.Rows(), im.Filename())
	}
	wantBounds(t, im, 20, 30, 28, 36)

	if v, _ := im.Attr("rows"); v != 6 {
		t.Errorf("rows attr = %v", v)
	}
	wantKind(t, im.SetAttr("columns", 3), KindImmutableAttribute)

	snap, err := w.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if c := snap.RGBAAt(23, 32); c.R != 30 || c.G != 20 || c.B != 50 {
		t.Errorf("rendered pixel = %v, want (30,20,50)", c)
	}
}

func TestImagePixels(t *testing.T) {
	w, _, _ := newTestWindow(t, 100, 100)
	im, _ := w.AddImage(0, 0, writeTestImage(t, "px.png", 4, 4))

	c, err := im.Pixel(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if c != (RGB{R: 20, G: 30, B: 50}) {
		t.Errorf("Pixel(2,3) = %v", c)
	}
	if err := im.SetPixel(2, 3, "red"); err != nil {
		t.Fatal(err)
	}
	if c, _ := im.Pixel(2, 3); c != (RGB{R: 255}) {
		t.Errorf("after SetPixel = %v, want red", c)
	}

	_, err = im.Pixel(4, 0)
	wantKind(t, err, KindRestrictedValue)
	_, err = im.Pixel(0, -1)
	wantKind(t, err, KindRestrictedValue)
	wantKind(t, im.SetPixel(0, 0, "nope"), KindInvalidColor)

	_ = w.Remove(im)
	_, err = im.Pixel(0, 0)
	wantKind(t, err, KindDeletedShape)
	wantKind(t, im.SaveAs(filepath.Join(t.TempDir(), "x.png")), KindDeletedShape)
}

func TestImageSaveRoundTrip(t *testing.T) {
	w, _, _ := newTestWindow(t, 100, 100)
	im, _ := w.AddImage(0, 0, writeTestImage(t, "src.png", 5, 5))
	_ = im.SetPixel(1, 1, [3]int{1, 2, 3})

	for _, name := range []string{"copy.png", "copy.bmp", "copy.tiff", "copy.gif"} {
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), name)
			if err := im.SaveAs(out); err != nil {
				t.Fatal(err)
			}
			back, err := w.AddImage(50, 50, out)
			if err != nil {
				t.Fatal(err)
			}
			if c, _ := back.Pixel(1, 1); c != (RGB{1, 2, 3}) {
				t.Errorf("reloaded pixel = %v", c)
			}
		})
	}
	wantKind(t, im.SaveAs(""), KindMissingArgument)
	wantKind(t, im.SaveAs(filepath.Join(t.TempDir(), "x.webp")), KindInvalidArgument)
}

func TestImageGIFRoundTrip(t *testing.T) {
	colors := []color.NRGBA{{1, 2, 3, 255}, {200, 100, 17, 255}, {9, 250, 77, 255}}
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range 16 {
		src.SetNRGBA(i%4, i/4, colors[i%len(colors)])
	}
	path := filepath.Join(t.TempDir(), "src.gif")
	if err := codec.Encode(path, src); err != nil {
		t.Fatal(err)
	}

	w, _, _ := newTestWindow(t, 100, 100)
	im, err := w.AddImage(0, 0, path)
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "out.gif")
	if err := im.SaveAs(out); err != nil {
		t.Fatal(err)
	}
	back, err := w.AddImage(10, 10, out)
	if err != nil {
		t.Fatal(err)
	}
	for row := range 4 {
		for col := range 4 {
			c := colors[(row*4+col)%len(colors)]
			want := RGB{c.R, c.G, c.B}
			if got, _ := im.Pixel(col, row); got != want {
				t.Errorf("loaded pixel (%d,%d) = %v, want %v", col, row, got, want)
			}
			if got, _ := back.Pixel(col, row); got != want {
				t.Errorf("reloaded pixel (%d,%d) = %v, want %v", col, row, got, want)
			}
		}
	}
}

func TestAddImageErrors(t *testing.T) {
	w, _, _ := newTestWindow(t, 100, 100)
	_, err := w.AddImage(0, 0, "")
	wantKind(t, err, KindMissingArgument)
	_, err = w.AddImage(0, 0, filepath.Join(t.TempDir(), "missing.png"))
	wantKind(t, err, KindInvalidArgument)
	_, err = w.AddImage(0, 0, "picture.xyz")
	wantKind(t, err, KindInvalidArgument)
}
