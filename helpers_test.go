package intrographics

import (
	"bytes"
	"errors"
	"testing"
)

// newTestManager returns a headless manager that writes Close output to the
// returned buffer and screenshots to a temporary directory.
func newTestManager(t *testing.T, opts ...Option) (*Manager, *Headless, *bytes.Buffer) {
	t.Helper()
	h := NewHeadless()
	var out bytes.Buffer
	cfg := DefaultConfig()
	cfg.ScreenshotDir = t.TempDir()
	opts = append([]Option{WithConfig(cfg), WithOutput(&out)}, opts...)
	return NewManager(h, opts...), h, &out
}

func newTestWindow(t *testing.T, width, height int) (*Window, *Headless, *bytes.Buffer) {
	t.Helper()
	m, h, out := newTestManager(t)
	w, err := m.NewWindow(width, height)
	if err != nil {
		t.Fatalf("NewWindow(%d, %d): %v", width, height, err)
	}
	return w, h, out
}

// openIdle opens a window with nothing scheduled, so the headless loop
// returns at once and the test can drive the loop itself.
func openIdle(t *testing.T, w *Window) {
	t.Helper()
	if err := w.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !w.Opened() {
		t.Fatalf("state = %v, want opened", w.State())
	}
}

// pump dispatches queued input.
func pump(w *Window) {
	w.Loop().Advance(0)
}

func wantKind(t *testing.T, err error, want ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if e.Kind != want {
		t.Fatalf("kind = %v, want %v (%v)", e.Kind, want, err)
	}
}

func wantBounds(t *testing.T, s Shape, left, top, right, bottom int) {
	t.Helper()
	if s.Left() != left || s.Top() != top || s.Right() != right || s.Bottom() != bottom {
		t.Errorf("bounds = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
			s.Left(), s.Top(), s.Right(), s.Bottom(), left, top, right, bottom)
	}
	if s.Right() != s.Left()+s.Width() || s.Bottom() != s.Top()+s.Height() {
		t.Errorf("inconsistent extent: right=%d left=%d width=%d bottom=%d top=%d height=%d",
			s.Right(), s.Left(), s.Width(), s.Bottom(), s.Top(), s.Height())
	}
}
