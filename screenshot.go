package intrographics

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/phanxgames/intrographics/codec"
)

// Snapshot renders the window's current contents.
func (w *Window) Snapshot() (*image.RGBA, error) {
	img, err := w.surface.Render()
	if err != nil {
		Logger().Warn("render failed", "title", w.title, "err", err)
	}
	return img, err
}

// Screenshot renders the window and writes it as a PNG file to the
// configured screenshot directory, named with a timestamp and the label.
// It returns the path written.
func (w *Window) Screenshot(label string) (string, error) {
	if w.Closed() {
		return "", nil
	}
	dir := w.mgr.cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		Logger().Warn("screenshot failed", "dir", dir, "err", err)
		return "", fmt.Errorf("screenshot: mkdir %s: %w", dir, err)
	}
	img, err := w.Snapshot()
	if img == nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
	if err := codec.Encode(path, img); err != nil {
		Logger().Warn("screenshot failed", "path", path, "err", err)
		return "", fmt.Errorf("screenshot: %w", err)
	}
	Logger().Debug("screenshot written", "path", path)
	return path, nil
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
