package intrographics

import (
	"context"
	"time"

	"github.com/phanxgames/intrographics/canvas"
)

// Headless is a Platform without a display. Its Run advances the loop's
// virtual clock straight to the next due task, so timer-driven programs run
// as fast as the CPU allows and always produce the same result. Frames keep
// a canvas that can still be rendered to images.
type Headless struct {
	limit  time.Duration
	frames []*HeadlessFrame
}

// HeadlessOption configures a Headless platform.
type HeadlessOption func(*Headless)

// WithTimeLimit makes Run return once the virtual clock reaches d. Without
// a limit, Run returns only when the loop stops or has nothing left to do.
func WithTimeLimit(d time.Duration) HeadlessOption {
	return func(h *Headless) { h.limit = d }
}

// NewHeadless creates a headless platform.
func NewHeadless(opts ...HeadlessOption) *Headless {
	h := &Headless{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SetTimeLimit changes the limit used by later calls to Run.
func (h *Headless) SetTimeLimit(d time.Duration) {
	h.limit = d
}

// NewFrame implements Platform.
func (h *Headless) NewFrame(primary bool) Frame {
	f := &HeadlessFrame{canvas: canvas.New(1, 1), Primary: primary}
	h.frames = append(h.frames, f)
	return f
}

// Frames returns every frame created so far, including destroyed ones.
func (h *Headless) Frames() []*HeadlessFrame {
	return append([]*HeadlessFrame(nil), h.frames...)
}

// LookupColor implements Platform using the X11/SVG color names.
func (h *Headless) LookupColor(name string) (RGB, bool) {
	return LookupColorName(name)
}

// minHeadlessStep keeps the clock moving when tasks re-arm with no delay.
const minHeadlessStep = time.Millisecond

// Run implements Platform. Each iteration dispatches pending input, then
// jumps the clock to the next due task, never past the time limit.
func (h *Headless) Run(ctx context.Context, loop *RunLoop) error {
	for !loop.Stopped() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if h.limit > 0 && loop.Now() >= h.limit {
			return nil
		}
		if loop.Pending() > 0 {
			loop.Advance(0)
			continue
		}
		next, ok := loop.NextDue()
		if !ok {
			return nil
		}
		if h.limit > 0 && next > h.limit {
			loop.Advance(h.limit - loop.Now())
			return nil
		}
		loop.Advance(max(next-loop.Now(), minHeadlessStep))
	}
	return nil
}

// HeadlessFrame records what a frame would show.
type HeadlessFrame struct {
	canvas    *canvas.Canvas
	Primary   bool
	Title     string
	X, Y      int
	Width     int
	Height    int
	Visible   bool
	Destroyed bool
}

// Surface implements Frame.
func (f *HeadlessFrame) Surface() Surface { return f.canvas }

// Canvas returns the frame's canvas.
func (f *HeadlessFrame) Canvas() *canvas.Canvas { return f.canvas }

// SetGeometry implements Frame.
func (f *HeadlessFrame) SetGeometry(x, y, width, height int) {
	f.X, f.Y, f.Width, f.Height = x, y, width, height
}

// SetTitle implements Frame.
func (f *HeadlessFrame) SetTitle(title string) { f.Title = title }

// Show implements Frame.
func (f *HeadlessFrame) Show() { f.Visible = true }

// Destroy implements Frame.
func (f *HeadlessFrame) Destroy() {
	f.Visible = false
	f.Destroyed = true
}
