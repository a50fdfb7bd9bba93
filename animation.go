package intrographics

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Resizer is implemented by shapes with an adjustable size: rectangles
// and ovals.
type Resizer interface {
	Shape
	Resize(width, height int) error
}

// TweenGroup animates two values of a shape at once, such as its position
// or size. Create one with TweenPosition or TweenSize and either call
// Update yourself or hand it to Window.Animate. If the shape is removed the
// group stops immediately.
type TweenGroup struct {
	tweens [2]*gween.Tween
	apply  func(a, b int)
	target Shape
	Done   bool
}

// Update advances the tweens by dt and applies the rounded values to the
// shape.
func (g *TweenGroup) Update(dt time.Duration) {
	if g.Done {
		return
	}
	if g.target.Deleted() {
		g.Done = true
		return
	}
	step := float32(dt.Seconds())
	a, doneA := g.tweens[0].Update(step)
	b, doneB := g.tweens[1].Update(step)
	g.apply(round(a), round(b))
	g.Done = doneA && doneB
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}

// TweenPosition moves a shape's top-left corner to (toX, toY) over duration
// using the easing function, e.g. ease.OutQuad.
func TweenPosition(s Shape, toX, toY int, duration time.Duration, fn ease.TweenFunc) *TweenGroup {
	d := float32(duration.Seconds())
	return &TweenGroup{
		tweens: [2]*gween.Tween{
			gween.New(float32(s.Left()), float32(toX), d, fn),
			gween.New(float32(s.Top()), float32(toY), d, fn),
		},
		apply:  func(x, y int) { s.Relocate(x, y) },
		target: s,
	}
}

// TweenSize resizes a rectangle or oval to toW by toH over duration. Sizes
// never drop below 1.
func TweenSize(s Resizer, toW, toH int, duration time.Duration, fn ease.TweenFunc) *TweenGroup {
	d := float32(duration.Seconds())
	return &TweenGroup{
		tweens: [2]*gween.Tween{
			gween.New(float32(s.Width()), float32(toW), d, fn),
			gween.New(float32(s.Height()), float32(toH), d, fn),
		},
		apply:  func(w, h int) { _ = s.Resize(max(w, 1), max(h, 1)) },
		target: s,
	}
}

// Animate runs the tween group on a timer that fires every interval
// milliseconds and stops itself when the group is done.
func (w *Window) Animate(interval int, g *TweenGroup) (*Timer, error) {
	const op = "window.animate(interval,tween)"
	if g == nil {
		return nil, w.fail(missingArgument(op, "tween"))
	}
	if err := requireAtLeast(op, "interval", interval, 1); err != nil {
		return nil, w.fail(err)
	}
	var t *Timer
	t, err := w.StartTimer(interval, func() {
		g.Update(t.Interval())
		if g.Done {
			_ = w.StopTimer(t)
		}
	})
	return t, err
}
