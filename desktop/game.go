package desktop

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	ig "github.com/phanxgames/intrographics"
)

var mouseButtons = [...]struct {
	eb ebiten.MouseButton
	ig ig.MouseButton
}{
	{ebiten.MouseButtonLeft, ig.MouseButtonLeft},
	{ebiten.MouseButtonRight, ig.MouseButtonRight},
	{ebiten.MouseButtonMiddle, ig.MouseButtonMiddle},
}

// game implements ebiten.Game. Update turns Ebitengine input into loop
// events and advances the loop by the real time elapsed.
type game struct {
	p    *Platform
	loop *ig.RunLoop
	ctx  context.Context
	last time.Time
	err  error

	// pointer grab: the frame and button of the current press.
	grab   *frame
	button ig.MouseButton
	lastX  int
	lastY  int

	keys  []ebiten.Key
	chars []rune
	fps   *fpsOverlay
}

func (g *game) Update() error {
	if g.loop.Stopped() {
		return ebiten.Termination
	}
	if err := g.ctx.Err(); err != nil {
		g.err = err
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		g.loop.Post(ig.InputEvent{Kind: ig.InputClose, Frame: g.p.primary})
	}
	g.pollPointer()
	g.pollKeys()

	now := time.Now()
	dt := now.Sub(g.last)
	g.last = now
	g.loop.Advance(dt)
	if g.fps != nil {
		g.fps.update(dt)
	}
	if g.loop.Stopped() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) pollPointer() {
	mx, my := ebiten.CursorPosition()
	if g.grab == nil {
		for _, b := range mouseButtons {
			if !inpututil.IsMouseButtonJustPressed(b.eb) {
				continue
			}
			f, x, y := g.p.frameAt(mx, my)
			g.grab, g.button = f, b.ig
			g.lastX, g.lastY = mx, my
			g.loop.Post(ig.InputEvent{Kind: ig.InputPointerDown, Frame: f, X: x, Y: y, Button: b.ig})
			return
		}
		return
	}

	ox, oy := g.p.offset(g.grab)
	if mx != g.lastX || my != g.lastY {
		g.lastX, g.lastY = mx, my
		g.loop.Post(ig.InputEvent{Kind: ig.InputPointerMove, Frame: g.grab, X: mx - ox, Y: my - oy})
	}
	for _, b := range mouseButtons {
		if b.ig == g.button && inpututil.IsMouseButtonJustReleased(b.eb) {
			g.loop.Post(ig.InputEvent{Kind: ig.InputPointerUp, Frame: g.grab, X: mx - ox, Y: my - oy, Button: b.ig})
			g.grab = nil
			return
		}
	}
}

// pollKeys posts typed characters and the non-printing keys pressed this
// tick. Keys with a printable character arrive through the character
// stream, so they are not posted twice.
func (g *game) pollKeys() {
	f := g.focusFrame()
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		g.loop.Post(ig.InputEvent{Kind: ig.InputKey, Frame: f, Key: keysymOfChar(r), Char: r})
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		sym, ok := keysym(k)
		if !ok || printable(k) {
			continue
		}
		g.loop.Post(ig.InputEvent{Kind: ig.InputKey, Frame: f, Key: sym})
	}
}

// focusFrame is the frame keyboard input goes to: the one under the cursor.
func (g *game) focusFrame() *frame {
	if g.grab != nil {
		return g.grab
	}
	mx, my := ebiten.CursorPosition()
	f, _, _ := g.p.frameAt(mx, my)
	return f
}

func (g *game) Draw(screen *ebiten.Image) {
	for _, f := range g.p.frames {
		if !f.visible && !f.primary {
			continue
		}
		img := f.texture()
		if img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		ox, oy := g.p.offset(f)
		op.GeoM.Translate(float64(ox), float64(oy))
		screen.DrawImage(img, op)
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return max(g.p.primary.width, 1), max(g.p.primary.height, 1)
}
