package sprig

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrBadColor is returned for color strings that are neither a known name nor
// a hex literal.
var ErrBadColor = errors.New("sprig: unrecognized color")

// namedColors are the literal color names a theme entry may refer to, in
// addition to hex literals.
var namedColors = map[string]Color{
	"white":     ColorWhite,
	"black":     ColorBlack,
	"crimson":   rgb(220, 20, 60),
	"seagreen":  rgb(46, 139, 87),
	"steelblue": rgb(70, 130, 180),
	"amber":     rgb(255, 191, 0),
	"orange":    rgb(255, 165, 0),
	"purple":    rgb(128, 0, 128),
	"teal":      rgb(0, 128, 128),
	"yellow":    rgb(255, 255, 0),
	"pink":      rgb(255, 192, 203),
}

func rgb(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// Theme is the flat color-name table widgets resolve their color fields
// through. Names missing from the table are parsed as color literals.
type Theme struct {
	colors map[string]Color
	// base holds the colors primary and accent had before any palette override.
	base map[string]Color
}

// NewTheme returns a theme holding the default table.
func NewTheme() *Theme {
	t := &Theme{colors: make(map[string]Color), base: make(map[string]Color)}
	defaults := map[string]string{
		"primary": "#6200EE",
		"accent":  "#03DAC6",
		"error":   "#B00020",
		"white":   "#FFFFFF",
		"black":   "#000000",
		"gray":    "#9E9E9E",
		"red":     "crimson",
		"green":   "seagreen",
		"blue":    "steelblue",
	}
	for name, lit := range defaults {
		c, _ := ParseColor(lit)
		t.colors[name] = c
	}
	t.base["primary"] = t.colors["primary"]
	t.base["accent"] = t.colors["accent"]
	return t
}

// Set stores c under name, replacing any previous entry.
func (t *Theme) Set(name string, c Color) {
	t.colors[strings.ToLower(name)] = c
}

// Lookup resolves name through the table, then as a literal.
func (t *Theme) Lookup(name string) (Color, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := t.colors[key]; ok {
		return c, true
	}
	c, err := ParseColor(key)
	return c, err == nil
}

// Resolve is Lookup with a black fallback. Unresolvable names are reported in
// debug mode.
func (t *Theme) Resolve(name string) Color {
	c, ok := t.Lookup(name)
	if !ok {
		if globalDebug {
			logf("warning: unknown color %q", name)
		}
		return ColorBlack
	}
	return c
}

// SetPrimaryPalette remaps "primary" to another table entry or literal,
// e.g. "Blue" or "#3F51B5". An empty palette restores the default.
func (t *Theme) SetPrimaryPalette(palette string) error {
	return t.setPalette("primary", palette)
}

// SetAccentPalette remaps "accent" the same way SetPrimaryPalette remaps
// "primary".
func (t *Theme) SetAccentPalette(palette string) error {
	return t.setPalette("accent", palette)
}

func (t *Theme) setPalette(slot, palette string) error {
	if palette == "" {
		t.colors[slot] = t.base[slot]
		return nil
	}
	c, ok := t.Lookup(palette)
	if !ok {
		return fmt.Errorf("%s palette %q: %w", slot, palette, ErrBadColor)
	}
	t.colors[slot] = c
	return nil
}

// ParseColor parses "#RGB", "#RRGGBB", "#RRGGBBAA" or a known color name.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Color{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// themeFile is the on-disk form of a theme.
type themeFile struct {
	PrimaryPalette string            `toml:"primary_palette"`
	AccentPalette  string            `toml:"accent_palette"`
	Colors         map[string]string `toml:"colors"`
}

// ParseTheme builds a theme from TOML data. Entries under [colors] are added
// on top of the defaults; palettes are applied last.
//
//	primary_palette = "blue"
//
//	[colors]
//	surface = "#FAFAFA"
func ParseTheme(data []byte) (*Theme, error) {
	var f themeFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}

	t := NewTheme()
	for name, lit := range f.Colors {
		c, ok := t.Lookup(lit)
		if !ok {
			return nil, fmt.Errorf("theme color %s: %q: %w", name, lit, ErrBadColor)
		}
		t.Set(name, c)
		if key := strings.ToLower(name); key == "primary" || key == "accent" {
			t.base[key] = c
		}
	}
	if err := t.SetPrimaryPalette(f.PrimaryPalette); err != nil {
		return nil, err
	}
	if err := t.SetAccentPalette(f.AccentPalette); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadTheme reads a TOML theme file. A missing file yields the default theme.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewTheme(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	t, err := ParseTheme(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
