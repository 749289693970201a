package prefs

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Color is an RGB colour.
type Color struct {
	R, G, B uint8
}

// DefaultBackgroundColor is dark sea green.
var DefaultBackgroundColor = Color{R: 143, G: 188, B: 143}

// String returns the stored form, "r,g,b".
func (c Color) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// Hex returns the colour as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses "r,g,b". A fourth (alpha) component must be in range
// like the others and is then ignored.
func ParseColor(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("colour %q: want 3 comma-separated components, got %d", s, len(parts))
	}
	var rgb [3]uint8
	for i, part := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("colour %q: component %d: %w", s, i+1, err)
		}
		if i < len(rgb) {
			rgb[i] = uint8(n)
		}
	}
	return Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
}

func (p *Preferences) TitleFontSize() float64 {
	return p.readFloat(KeyTitleFontSize, DefaultTitleFontSize)
}

func (p *Preferences) SetTitleFontSize(size float64) error {
	return p.write(KeyTitleFontSize, formatFloat(size))
}

func (p *Preferences) TitleFontName() string {
	return p.readString(KeyTitleFontName, DefaultFontName)
}

func (p *Preferences) SetTitleFontName(name string) error {
	return p.write(KeyTitleFontName, name)
}

func (p *Preferences) TableFontSize() float64 {
	return p.readFloat(KeyTableFontSize, DefaultTableFontSize)
}

func (p *Preferences) SetTableFontSize(size float64) error {
	return p.write(KeyTableFontSize, formatFloat(size))
}

func (p *Preferences) TableFontName() string {
	return p.readString(KeyTableFontName, DefaultFontName)
}

func (p *Preferences) SetTableFontName(name string) error {
	return p.write(KeyTableFontName, name)
}

// BackgroundColor returns the window background colour. Malformed stored
// values fall back to DefaultBackgroundColor.
func (p *Preferences) BackgroundColor() Color {
	raw := p.readString(KeyBackgroundColor, "")
	if raw == "" {
		return DefaultBackgroundColor
	}
	c, err := ParseColor(raw)
	if err != nil {
		p.logFallback(KeyBackgroundColor, raw, DefaultBackgroundColor, err)
		return DefaultBackgroundColor
	}
	return c
}

func (p *Preferences) SetBackgroundColor(c Color) error {
	return p.write(KeyBackgroundColor, c.String())
}

// PixelSize is the size of a pixel in microns.
func (p *Preferences) PixelSize() float64 {
	return p.readFloat(KeyPixelSize, DefaultPixelSize)
}

func (p *Preferences) SetPixelSize(size float64) error {
	return p.write(KeyPixelSize, formatFloat(size))
}

func (p *Preferences) DefaultColormap() string {
	return p.readString(KeyColormap, DefaultColormap)
}

func (p *Preferences) SetDefaultColormap(name string) error {
	return p.write(KeyColormap, name)
}

func (p *Preferences) readFloat(key string, def float64) float64 {
	raw := p.readString(key, "")
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		p.logFallback(key, raw, def, err)
		return def
	}
	return f
}

func (p *Preferences) logFallback(key, raw string, def any, err error) {
	p.logger.Warn("Invalid stored setting, using default",
		zap.String("key", key),
		zap.String("stored", raw),
		zap.Any("default", def),
		zap.Error(err),
	)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
