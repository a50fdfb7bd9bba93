// Package desktop runs intrographics programs in a real window using
// Ebitengine.
//
// The primary window of a session becomes the Ebitengine window. Dependent
// windows are drawn as panels on top of it, placed by their position
// relative to the primary window, and receive the input that lands on them.
//
//	cfg, _ := intrographics.LoadDefaultConfig()
//	m := intrographics.NewManager(desktop.New(cfg))
//
// Ebitengine runs its loop only once per process, so a program gets one
// desktop session.
package desktop

import (
	"context"
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	ig "github.com/phanxgames/intrographics"
	"github.com/phanxgames/intrographics/canvas"
)

// ErrAlreadyRan is returned by Run after the first session has ended.
var ErrAlreadyRan = errors.New("desktop: the event loop can only run once per process")

// Platform is an intrographics.Platform backed by Ebitengine.
type Platform struct {
	cfg     ig.Config
	primary *frame
	frames  []*frame
	ran     bool
}

// New creates a desktop platform. The config supplies the tick rate and
// whether to draw the frame rate overlay.
func New(cfg ig.Config) *Platform {
	return &Platform{cfg: cfg}
}

// NewFrame implements intrographics.Platform.
func (p *Platform) NewFrame(primary bool) ig.Frame {
	f := &frame{canvas: canvas.New(1, 1), primary: primary}
	if primary {
		p.primary = f
		p.frames = p.frames[:0]
	}
	p.frames = append(p.frames, f)
	return f
}

// LookupColor implements intrographics.Platform with the X11/SVG names.
func (p *Platform) LookupColor(name string) (ig.RGB, bool) {
	return ig.LookupColorName(name)
}

// Run implements intrographics.Platform. It blocks in ebiten.RunGame until
// the loop stops, the window is closed or ctx is done.
func (p *Platform) Run(ctx context.Context, loop *ig.RunLoop) error {
	if p.ran {
		return ErrAlreadyRan
	}
	p.ran = true
	if p.primary == nil {
		return errors.New("desktop: no primary window")
	}

	ebiten.SetTPS(p.cfg.TPS)
	ebiten.SetWindowClosingHandled(true)
	p.primary.apply()

	g := &game{
		p:    p,
		loop: loop,
		ctx:  ctx,
		last: time.Now(),
	}
	if p.cfg.ShowFPS {
		g.fps = &fpsOverlay{}
	}
	ig.Logger().Debug("desktop loop starting", "tps", p.cfg.TPS)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return g.err
}

// frameAt returns the topmost visible frame at screen point (x, y) relative
// to the primary window, with the point translated into that frame.
func (p *Platform) frameAt(x, y int) (*frame, int, int) {
	for i := len(p.frames) - 1; i >= 0; i-- {
		f := p.frames[i]
		if f.primary || !f.visible {
			continue
		}
		ox, oy := p.offset(f)
		if x >= ox && y >= oy && x < ox+f.width && y < oy+f.height {
			return f, x - ox, y - oy
		}
	}
	return p.primary, x, y
}

// offset is where f is drawn inside the primary window.
func (p *Platform) offset(f *frame) (int, int) {
	if f.primary || p.primary == nil {
		return 0, 0
	}
	return f.x - p.primary.x, f.y - p.primary.y
}
