package diagram

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/matzehuels/netdraw/pkg/errors"
)

// Default values for [Options]. DefaultOptions is the single source of truth;
// the CLI and pipeline read these instead of repeating the literals.
const (
	DefaultSpacing    = 30.0
	DefaultOffX       = 50.0
	DefaultOffY       = 200.0
	DefaultMinWidth   = 10.0
	DefaultFontSize   = 8.0
	DefaultScale      = 150.0
	DefaultScaleWidth = 1.0
	DefaultArrowSize  = 0.0
	DefaultColor      = Blue
)

// ExampleChannels and ExamplePool describe a small four-layer encoder used in
// documentation and examples.
var (
	ExampleChannels = [][]int{{1}, {8}, {32}, {64}}
	ExamplePool     = []float64{2, 2, 1, 1}
)

// Point is a 2D coordinate. It decodes from a two-element array.
type Point struct {
	X, Y float64
}

// Connection is a skip connection between two flattened block indices.
// It decodes from a two-element array: [start, end].
type Connection struct {
	Start, End int
}

// Options is the complete, immutable description of a diagram.
// Build never modifies the slices it is given.
type Options struct {
	Channels    [][]int      `toml:"channels" json:"channels"`
	Pool        []float64    `toml:"pool" json:"pool,omitempty"`
	Sizes       []int        `toml:"sizes" json:"sizes,omitempty"`
	Connections []Connection `toml:"connections" json:"connections,omitempty"`

	Spacing    float64 `toml:"spacing" json:"spacing"`
	Off        Point   `toml:"off" json:"off"`
	LogWidth   bool    `toml:"log_width" json:"log_width,omitempty"`
	MinWidth   float64 `toml:"min_width" json:"min_width"`
	SqrtHeight bool    `toml:"sqrt_height" json:"sqrt_height,omitempty"`
	FontSize   float64 `toml:"font_size" json:"font_size"`
	Scale      float64 `toml:"scale" json:"scale"`
	ScaleWidth float64 `toml:"scale_width" json:"scale_width"`
	Color      Palette `toml:"color" json:"color"`
	ArrowSize  float64 `toml:"arrow_size" json:"arrow_size,omitempty"`
}

// DefaultOptions returns a fresh Options value with every default applied and
// no channels.
func DefaultOptions() Options {
	return Options{
		Spacing:    DefaultSpacing,
		Off:        Point{X: DefaultOffX, Y: DefaultOffY},
		MinWidth:   DefaultMinWidth,
		FontSize:   DefaultFontSize,
		Scale:      DefaultScale,
		ScaleWidth: DefaultScaleWidth,
		Color:      DefaultColor,
		ArrowSize:  DefaultArrowSize,
	}
}

// BlockCount returns the number of blocks the channel groups flatten to.
func (o Options) BlockCount() int {
	n := 0
	for _, g := range o.Channels {
		n += len(g)
	}
	return n
}

// Clone returns a deep copy of o.
func (o Options) Clone() Options {
	c := o
	c.Channels = make([][]int, len(o.Channels))
	for i, g := range o.Channels {
		c.Channels[i] = slices.Clone(g)
	}
	c.Pool = slices.Clone(o.Pool)
	c.Sizes = slices.Clone(o.Sizes)
	c.Connections = slices.Clone(o.Connections)
	return c
}

// Validate checks o and returns the first problem found as an *errors.Error.
func (o Options) Validate() error {
	if len(o.Channels) == 0 {
		return errors.New(errors.ErrCodeInvalidChannels, "at least one channel group is required")
	}
	maxC := 0
	for gi, g := range o.Channels {
		if len(g) == 0 {
			return errors.New(errors.ErrCodeInvalidChannels, "channel group %d is empty", gi)
		}
		for _, c := range g {
			if c <= 0 {
				return errors.New(errors.ErrCodeInvalidChannels, "channel counts must be positive, got %d in group %d", c, gi)
			}
			maxC = max(maxC, c)
		}
	}
	if o.LogWidth && maxC <= 1 {
		return errors.New(errors.ErrCodeInvalidChannels, "log width requires a channel count above 1")
	}

	for i, p := range o.Pool {
		if err := errors.ValidatePositive(fmt.Sprintf("pool[%d]", i), p); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPool, err, "invalid pooling factor")
		}
	}
	for i, s := range o.Sizes {
		if s <= 0 {
			return errors.New(errors.ErrCodeInvalidSizes, "sizes[%d] must be positive, got %d", i, s)
		}
	}

	n := o.BlockCount()
	for i, c := range o.Connections {
		if c.Start < 0 || c.Start >= n || c.End < 0 || c.End >= n {
			return errors.New(errors.ErrCodeInvalidConnection,
				"connection %d (%d,%d) is out of range for %d blocks", i, c.Start, c.End, n)
		}
	}

	if !o.Color.Selectable() {
		return errors.New(errors.ErrCodeInvalidColor, "color %s cannot be selected", o.Color)
	}

	positive := []struct {
		name string
		v    float64
	}{
		{"scale", o.Scale},
		{"scale_width", o.ScaleWidth},
		{"font_size", o.FontSize},
	}
	for _, p := range positive {
		if err := errors.ValidatePositive(p.name, p.v); err != nil {
			return err
		}
	}
	nonNegative := []struct {
		name string
		v    float64
	}{
		{"spacing", o.Spacing},
		{"min_width", o.MinWidth},
		{"arrow_size", o.ArrowSize},
	}
	for _, p := range nonNegative {
		if err := errors.ValidateNonNegative(p.name, p.v); err != nil {
			return err
		}
	}
	if err := errors.ValidateFinite("off.x", o.Off.X); err != nil {
		return err
	}
	return errors.ValidateFinite("off.y", o.Off.Y)
}

// MarshalJSON encodes p as [x, y].
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

// UnmarshalJSON decodes p from [x, y].
func (p *Point) UnmarshalJSON(data []byte) error {
	var v [2]float64
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "off must be a pair [x, y]")
	}
	p.X, p.Y = v[0], v[1]
	return nil
}

// UnmarshalTOML decodes p from a TOML array of two numbers.
func (p *Point) UnmarshalTOML(data any) error {
	v, err := tomlPair(data)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "off must be a pair [x, y]")
	}
	p.X, p.Y = v[0], v[1]
	return nil
}

// MarshalJSON encodes c as [start, end].
func (c Connection) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.Start, c.End})
}

// UnmarshalJSON decodes c from [start, end].
func (c *Connection) UnmarshalJSON(data []byte) error {
	var v [2]int
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConnection, err, "connection must be a pair [start, end]")
	}
	c.Start, c.End = v[0], v[1]
	return nil
}

// UnmarshalTOML decodes c from a TOML array of two integers.
func (c *Connection) UnmarshalTOML(data any) error {
	v, err := tomlPair(data)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConnection, err, "connection must be a pair [start, end]")
	}
	if v[0] != float64(int(v[0])) || v[1] != float64(int(v[1])) {
		return errors.New(errors.ErrCodeInvalidConnection, "connection indices must be integers, got %v", v)
	}
	c.Start, c.End = int(v[0]), int(v[1])
	return nil
}

// tomlPair converts a decoded TOML array into two floats.
func tomlPair(data any) ([2]float64, error) {
	var out [2]float64
	arr, ok := data.([]any)
	if !ok || len(arr) != 2 {
		return out, fmt.Errorf("expected an array of two numbers, got %v", data)
	}
	for i, v := range arr {
		switch n := v.(type) {
		case int64:
			out[i] = float64(n)
		case float64:
			out[i] = n
		default:
			return out, fmt.Errorf("expected a number, got %T", v)
		}
	}
	return out, nil
}
