package diagram

import (
	"fmt"
	"strings"

	"github.com/matzehuels/netdraw/pkg/errors"
)

// Palette selects the fill tones of a block. The zero value is [Blue].
type Palette uint8

const (
	Blue Palette = iota
	Yellow
	Red
	Green
	// Gray is reserved for the first block and cannot be selected by name.
	Gray
)

// Tones holds the three fills of an isometric block.
type Tones struct {
	Front string
	Side  string
	Top   string
}

var paletteTones = [...]Tones{
	Blue:   {"#60a2c5", "#316884", "#bdd1dc"},
	Yellow: {"#c59860", "#6a5526", "#cec0ae"},
	Red:    {"#c44747", "#7e2828", "#ba8c8c"},
	Green:  {"#499744", "#2d5d2a", "#8cb98a"},
	Gray:   {"#757575", "#505050", "#b0b0b0"},
}

var paletteNames = [...]string{
	Blue:   "blue",
	Yellow: "yellow",
	Red:    "red",
	Green:  "green",
	Gray:   "gray",
}

// Palettes lists the selectable palettes in their canonical order.
var Palettes = []Palette{Red, Green, Blue, Yellow}

// ParsePalette maps a color name to its palette. Names are case-insensitive.
// Unknown names, and the reserved "gray", fail with INVALID_COLOR.
func ParsePalette(name string) (Palette, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, p := range Palettes {
		if paletteNames[p] == n {
			return p, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidColor,
		"invalid color: %q (must be one of: red, green, blue, yellow)", name)
}

// Selectable reports whether p may be configured as the diagram color.
func (p Palette) Selectable() bool {
	return p < Gray
}

// Tones returns the fills for p. Out-of-range values fall back to Gray.
func (p Palette) Tones() Tones {
	if int(p) >= len(paletteTones) {
		return paletteTones[Gray]
	}
	return paletteTones[p]
}

func (p Palette) String() string {
	if int(p) >= len(paletteNames) {
		return fmt.Sprintf("Palette(%d)", uint8(p))
	}
	return paletteNames[p]
}

// MarshalText implements encoding.TextMarshaler.
func (p Palette) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so config files can name
// the color directly. Unlike ParsePalette it accepts "gray", which
// Options.Validate then rejects as a diagram color.
func (p *Palette) UnmarshalText(text []byte) error {
	n := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range paletteNames {
		if name == n {
			*p = Palette(i)
			return nil
		}
	}
	_, err := ParsePalette(string(text))
	return err
}
