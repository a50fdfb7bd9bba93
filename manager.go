package intrographics

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/phanxgames/intrographics/canvas"
)

// Surface is the drawing backend behind a window: a retained list of items
// that can be restyled, hit-tested and rasterized. *canvas.Canvas
// implements it.
type Surface interface {
	Create(kind canvas.Kind, coords []canvas.Point, style canvas.Style) canvas.ID
	SetCoords(id canvas.ID, coords []canvas.Point)
	Style(id canvas.ID) (canvas.Style, bool)
	SetStyle(id canvas.ID, style canvas.Style)
	BBox(id canvas.ID) canvas.Rect
	Delete(id canvas.ID)
	FindOverlapping(r canvas.Rect) []canvas.ID
	SetBackground(c canvas.RGB)
	Resize(width, height int)
	Render() (*image.RGBA, error)
}

// Frame is a host window. Geometry is in screen pixels and includes the
// one-pixel margin that keeps shapes touching the right and bottom edges
// visible.
type Frame interface {
	Surface() Surface
	SetGeometry(x, y, width, height int)
	SetTitle(title string)
	Show()
	Destroy()
}

// Platform connects the library to a host: it creates frames, names colors
// and drives the run loop.
type Platform interface {
	// NewFrame creates a hidden frame. The first frame of a session is the
	// primary one.
	NewFrame(primary bool) Frame
	// LookupColor resolves a color name from the host's color table.
	LookupColor(name string) (RGB, bool)
	// Run drives loop until it is stopped or ctx is done, then returns.
	Run(ctx context.Context, loop *RunLoop) error
}

// EntityStore is the interface for optional ECS integration. When set on a
// Manager, every dispatched interaction is forwarded to it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent describes a user interaction after dispatch.
type InteractionEvent struct {
	Type   EventClass
	Window *Window
	// Target is the topmost shape under the pointer, or the pressed button.
	// Nil for key events and clicks on empty space.
	Target Shape
	X, Y   int
	Button MouseButton
	Key    string
}

// Option configures a Manager.
type Option func(*Manager)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(m *Manager) { m.cfg = cfg }
}

// WithOutput sets where Window.Close writes its output. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(m *Manager) { m.out = w }
}

// WithErrorHandler installs a handler that sees every usage error.
func WithErrorHandler(h ErrorHandler) Option {
	return func(m *Manager) { m.onError = h }
}

// WithEntityStore forwards interaction events to store.
func WithEntityStore(store EntityStore) Option {
	return func(m *Manager) { m.store = store }
}

// Manager owns the windows of a program. At most one session is active at a
// time: the first window created starts a session and becomes its primary
// window, later windows are its dependents, and closing the primary window
// closes the dependents and ends the session. The next NewWindow starts a
// fresh session.
type Manager struct {
	platform Platform
	cfg      Config
	out      io.Writer
	onError  ErrorHandler
	store    EntityStore
	sess     *session
	sessions int
}

type session struct {
	id         int
	loop       *RunLoop
	primary    *Window
	dependents []*Window
}

// NewManager creates a manager for the given platform.
func NewManager(p Platform, opts ...Option) *Manager {
	m := &Manager{
		platform: p,
		cfg:      DefaultConfig(),
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.onError == nil && m.cfg.FailFast {
		m.onError = ExitOnError(os.Stderr)
	}
	return m
}

// Config returns the manager's configuration.
func (m *Manager) Config() Config {
	return m.cfg
}

// SetEntityStore sets the optional ECS bridge.
func (m *Manager) SetEntityStore(store EntityStore) {
	m.store = store
}

// NewWindow creates a window whose drawing area is width by height pixels.
// The window is not visible until it is opened.
func (m *Manager) NewWindow(width, height int) (*Window, error) {
	const op = "Window(width,height)"
	if err := requireAtLeast(op, "width", width, 1); err != nil {
		return nil, m.report(err)
	}
	if err := requireAtLeast(op, "height", height, 1); err != nil {
		return nil, m.report(err)
	}

	s := m.session()
	frame := m.platform.NewFrame(s.primary == nil)
	w := newWindow(m, s, frame, width, height)
	if s.primary == nil {
		s.primary = w
	} else {
		s.dependents = append(s.dependents, w)
	}
	return w, nil
}

// Primary returns the primary window of the current session, or nil.
func (m *Manager) Primary() *Window {
	if m.sess == nil {
		return nil
	}
	return m.sess.primary
}

// Dependents returns the dependent windows of the current session.
func (m *Manager) Dependents() []*Window {
	if m.sess == nil {
		return nil
	}
	return append([]*Window(nil), m.sess.dependents...)
}

// Loop returns the run loop of the current session, or nil.
func (m *Manager) Loop() *RunLoop {
	if m.sess == nil {
		return nil
	}
	return m.sess.loop
}

// session returns the active session, starting one if needed.
func (m *Manager) session() *session {
	if m.sess != nil {
		return m.sess
	}
	m.sessions++
	s := &session{id: m.sessions}
	s.loop = NewRunLoop(func(ev InputEvent) { m.dispatch(s, ev) })
	s.loop.SetDebug(m.cfg.Debug)
	m.sess = s
	Logger().Info("session started", "session", s.id)
	return s
}

// dispatch routes a raw event to the window shown in its frame.
func (m *Manager) dispatch(s *session, ev InputEvent) {
	if w := s.windowFor(ev.Frame); w != nil {
		w.handleInput(ev)
	}
}

func (s *session) windowFor(f Frame) *Window {
	if s.primary != nil && s.primary.frame == f {
		return s.primary
	}
	for _, w := range s.dependents {
		if w.frame == f {
			return w
		}
	}
	return nil
}

// run blocks in the platform until the session's loop stops.
func (m *Manager) run(ctx context.Context, s *session) error {
	Logger().Debug("run loop starting", "session", s.id)
	err := m.platform.Run(ctx, s.loop)
	Logger().Debug("run loop returned", "session", s.id, "err", err)
	return err
}

// windowClosed unlinks a closed window. Closing the primary window closes
// every dependent, stops the loop and ends the session. Each dependent that
// was open writes an empty output line, as if closed with Close().
func (m *Manager) windowClosed(w *Window) {
	s := w.sess
	if s.primary != w {
		for i, d := range s.dependents {
			if d == w {
				s.dependents = append(s.dependents[:i], s.dependents[i+1:]...)
				break
			}
		}
		return
	}
	deps := s.dependents
	s.dependents = nil
	for _, d := range deps {
		opened := d.Opened()
		d.teardown()
		if opened {
			_, _ = fmt.Fprintln(m.out)
		}
	}
	s.loop.Stop()
	if m.sess == s {
		m.sess = nil
	}
	Logger().Info("session ended", "session", s.id)
}

// report passes a usage error to the error handler and returns it.
func (m *Manager) report(err error) error {
	if err == nil {
		return nil
	}
	Logger().Debug("call rejected", "err", err)
	if m.onError != nil {
		m.onError(err)
	}
	return err
}

func (m *Manager) emit(ev InteractionEvent) {
	if m.store != nil {
		m.store.EmitEvent(ev)
	}
}

func (m *Manager) lookupColor(name string) (RGB, bool) {
	return m.platform.LookupColor(name)
}
