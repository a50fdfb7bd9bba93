package desktop

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	ig "github.com/phanxgames/intrographics"
	"github.com/phanxgames/intrographics/canvas"
)

// frame is a window's canvas plus the texture it was last uploaded to.
type frame struct {
	canvas  *canvas.Canvas
	primary bool

	title         string
	x, y          int
	width, height int
	visible       bool

	img     *ebiten.Image
	version uint64
}

func (f *frame) Surface() ig.Surface { return f.canvas }

func (f *frame) SetGeometry(x, y, width, height int) {
	f.x, f.y, f.width, f.height = x, y, width, height
	if f.primary && f.visible {
		f.apply()
	}
}

func (f *frame) SetTitle(title string) {
	f.title = title
	if f.primary && f.visible {
		ebiten.SetWindowTitle(title)
	}
}

func (f *frame) Show() {
	f.visible = true
}

func (f *frame) Destroy() {
	f.visible = false
	if f.img != nil {
		f.img.Deallocate()
		f.img = nil
	}
}

// apply pushes the primary frame's geometry and title to the OS window.
func (f *frame) apply() {
	ebiten.SetWindowTitle(f.title)
	ebiten.SetWindowSize(f.width, f.height)
	ebiten.SetWindowPosition(f.x, f.y)
}

// texture returns the frame's image, re-rendering the canvas only when it
// changed since the last upload.
func (f *frame) texture() *ebiten.Image {
	v := f.canvas.Version()
	if f.img != nil && v == f.version {
		return f.img
	}
	rgba, err := f.canvas.Render()
	if err != nil {
		ig.Logger().Warn("render failed", "title", f.title, "err", err)
	}
	if rgba == nil {
		return f.img
	}
	f.upload(rgba)
	f.version = v
	return f.img
}

func (f *frame) upload(rgba *image.RGBA) {
	b := rgba.Bounds()
	if f.img != nil {
		if sz := f.img.Bounds().Size(); sz == b.Size() && rgba.Stride == 4*b.Dx() {
			f.img.WritePixels(rgba.Pix)
			return
		}
		f.img.Deallocate()
	}
	f.img = ebiten.NewImageFromImage(rgba)
}
