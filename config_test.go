package intrographics

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Title != DefaultTitle || cfg.Font.Family != DefaultFont || cfg.Font.Size != DefaultFontSize {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestParseConfigKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("title: Bounce\nfont:\n  size: 20\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "Bounce" {
		t.Errorf("Title = %q, want Bounce", cfg.Title)
	}
	if cfg.Font.Size != 20 || cfg.Font.Family != DefaultFont {
		t.Errorf("Font = %+v, want %s 20", cfg.Font, DefaultFont)
	}
	if cfg.TPS != 60 || cfg.Background != "white" {
		t.Errorf("unset keys lost their defaults: %+v", cfg)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name, yaml, want string
	}{
		{"font size", "font: {size: 0}", "font.size"},
		{"font family", "font: {family: ' '}", "font.family"},
		{"tps", "tps: 0", "tps"},
		{"background", "background: blurple", "background"},
		{"log level", "log_level: loud", "log_level"},
		{"syntax", "title: [", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("background: '#102030'\nfail_fast: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Background != "#102030" || !cfg.FailFast {
		t.Errorf("config = %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadDefaultConfigFallsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := LoadDefaultConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.NewLogger(&buf).Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("off logger wrote %q", buf.String())
	}

	cfg.LogLevel = "warn"
	l := cfg.NewLogger(&buf)
	l.Info("hidden")
	l.Warn("shown", "n", 1)
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn logger output = %q", buf.String())
	}
}

func TestWindowUsesConfiguredBackground(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Background = "black"
	m := NewManager(NewHeadless(), WithConfig(cfg))
	w, err := m.NewWindow(20, 20)
	if err != nil {
		t.Fatal(err)
	}
	img, err := w.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if c := img.RGBAAt(5, 5); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("background = %v, want black", c)
	}
}
