package intrographics

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FontConfig names the default typeface for text shapes.
type FontConfig struct {
	Family string `yaml:"family"`
	Size   int    `yaml:"size"`
}

// Config holds program-wide settings. The zero value is not usable; start
// from DefaultConfig or one of the loaders.
type Config struct {
	// Title is used by Open when no title is passed.
	Title string `yaml:"title"`
	// Background is the initial fill color of new windows.
	Background string     `yaml:"background"`
	Font       FontConfig `yaml:"font"`
	// TPS is the number of loop updates per second on the desktop platform.
	TPS int `yaml:"tps"`
	// ScreenshotDir is where Window.Screenshot writes PNG files.
	ScreenshotDir string `yaml:"screenshot_dir"`
	// LogLevel is one of debug, info, warn, error or off.
	LogLevel string `yaml:"log_level"`
	// FailFast ends the program at the first usage error.
	FailFast bool `yaml:"fail_fast"`
	// ShowFPS draws a frame rate overlay on the desktop platform.
	ShowFPS bool `yaml:"show_fps"`
	// Debug logs per-pass loop statistics.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Title:         DefaultTitle,
		Background:    "white",
		Font:          FontConfig{Family: DefaultFont, Size: DefaultFontSize},
		TPS:           60,
		ScreenshotDir: "screenshots",
		LogLevel:      "off",
	}
}

// DefaultConfigPath returns ~/.config/intrographics/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "intrographics", "config.yaml"), nil
}

// LoadConfig reads a YAML file at path. Keys absent from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefaultConfig reads the file at DefaultConfigPath, falling back to
// DefaultConfig when it does not exist.
func LoadDefaultConfig() (Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}
	cfg, err := LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// ParseConfig decodes YAML over the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Font.Size < 1 {
		return fmt.Errorf("invalid font.size %d: must be at least 1", c.Font.Size)
	}
	if strings.TrimSpace(c.Font.Family) == "" {
		return fmt.Errorf("invalid font.family: must not be empty")
	}
	if c.TPS < 1 {
		return fmt.Errorf("invalid tps %d: must be at least 1", c.TPS)
	}
	if _, err := ResolveColor("config.background", c.Background, LookupColorName); err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		return fmt.Errorf("invalid log_level %q: want debug, info, warn, error or off", c.LogLevel)
	}
	return nil
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	case "", "off", "none":
		return 0, true
	}
	return 0, false
}

// NewLogger builds a text logger writing to w at the configured level, or a
// silent logger when LogLevel is off.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, ok := parseLevel(c.LogLevel)
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "off", "none":
		ok = false
	}
	if !ok {
		return newNopLogger()
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
