package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is read from the working directory at startup
const DefaultPath = "viewport.toml"

// Config is the runtime configuration loaded from TOML
type Config struct {
	Window WindowConfig `toml:"window"`
	Scene  SceneConfig  `toml:"scene"`
	Log    LogConfig    `toml:"log"`
}

// WindowConfig controls the host window
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	// Fullscreen only applies to native builds; web builds fit the canvas
	Fullscreen bool `toml:"fullscreen"`
}

// SceneConfig controls scene setup and movement
type SceneConfig struct {
	ClearColor string  `toml:"clear_color"`
	Gap        float64 `toml:"gap"`
	// Speed is in world units per frame
	Speed float64 `toml:"speed"`
}

// LogConfig controls the logger
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Window",
			Width:      ResolutionWidth,
			Height:     ResolutionHeight,
			Fullscreen: true,
		},
		Scene: SceneConfig{
			ClearColor: "#313131",
			Gap:        150.0,
			Speed:      1.0,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file yields Default().
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data into cfg and validates the result
func Parse(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Scene.Speed < 0 {
		return fmt.Errorf("speed must not be negative, got %v", c.Scene.Speed)
	}
	if _, err := c.ClearColor(); err != nil {
		return err
	}
	return nil
}

// ClearColor parses the scene clear color
func (c *Config) ClearColor() (color.Color, error) {
	return ParseHexColor(c.Scene.ClearColor)
}

// ParseHexColor parses "#rrggbb" into an opaque color
func ParseHexColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("clear color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
