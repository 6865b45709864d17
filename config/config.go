package config

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Config holds runtime settings for the watermark window and renderer.
// Fields may be loaded from a JSON file; the app never writes it back.
type Config struct {
	Debug bool `json:"debug"`

	// Window and preview box
	WindowWidth    int `json:"window_width"`
	WindowHeight   int `json:"window_height"`
	PreviewMarginW int `json:"preview_margin_w"`
	PreviewMarginH int `json:"preview_margin_h"`

	// Watermark rendering
	Inset       int     `json:"inset"`
	FontPath    string  `json:"font_path"` // empty selects the built-in font
	FontSize    float64 `json:"font_size"`
	Color       string  `json:"color"` // #rrggbb or a CSS color name
	Opacity     int     `json:"opacity"`
	DefaultText string  `json:"default_text"`

	// Output
	Suffix      string `json:"suffix"`
	JPEGQuality int    `json:"jpeg_quality"`
}

const (
	defaultWindowWidth  = 1200
	defaultWindowHeight = 600
	defaultColor        = "#e2979c"
)

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:          false,
		WindowWidth:    defaultWindowWidth,
		WindowHeight:   defaultWindowHeight,
		PreviewMarginW: 50,
		PreviewMarginH: 30,
		Inset:          10,
		FontPath:       "",
		FontSize:       25,
		Color:          defaultColor,
		Opacity:        255,
		DefaultText:    "Python",
		Suffix:         "_wtm",
		JPEGQuality:    95,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.WindowWidth < 200 {
		c.WindowWidth = defaultWindowWidth
	}
	if c.WindowHeight < 150 {
		c.WindowHeight = defaultWindowHeight
	}
	if c.PreviewMarginW < 0 || c.PreviewMarginW >= c.WindowWidth {
		c.PreviewMarginW = 50
	}
	if c.PreviewMarginH < 0 || c.PreviewMarginH >= c.WindowHeight {
		c.PreviewMarginH = 30
	}
	if c.Inset < 0 {
		c.Inset = 10
	}
	if c.FontSize <= 0 {
		c.FontSize = 25
	}
	if _, err := ParseColor(c.Color); err != nil {
		c.Color = defaultColor
	}
	if c.Opacity < 0 || c.Opacity > 255 {
		c.Opacity = 255
	}
	if c.Suffix == "" {
		c.Suffix = "_wtm"
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		c.JPEGQuality = 95
	}
	return nil
}

// PreviewBox returns the area available to the preview image.
func (c *Config) PreviewBox() image.Point {
	return image.Pt(c.WindowWidth-c.PreviewMarginW, c.WindowHeight-c.PreviewMarginH)
}

// WindowOrigin returns the top-left position that centres the window on a
// screen of the given size. Offsets never go negative.
func (c *Config) WindowOrigin(screenW, screenH int) image.Point {
	return image.Pt(max(screenW/2-c.WindowWidth/2, 0), max(screenH/2-c.WindowHeight/2, 0))
}

// WatermarkColor resolves Color and Opacity into a single color.
func (c *Config) WatermarkColor() color.NRGBA {
	col, err := ParseColor(c.Color)
	if err != nil {
		col, _ = ParseColor(defaultColor)
	}
	col.A = uint8(c.Opacity)
	return col
}

// ParseColor accepts "#rrggbb", "#rgb" or a CSS color name such as "pink".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if rgba, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: 0xff}, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// DefaultPath returns the settings file location inside the user config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(dir, "watermark-desktop", "config.json")
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}
