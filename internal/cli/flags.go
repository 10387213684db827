package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/netdraw/pkg/diagram"
	"github.com/matzehuels/netdraw/pkg/errors"
	"github.com/matzehuels/netdraw/pkg/io"
)

// diagramFlags binds the diagram description flags shared by draw, layout and
// inspect. Values from a config file are applied first; flags set on the
// command line override them.
type diagramFlags struct {
	config      string
	pool        []float64
	sizes       []int
	connections []string
	color       string
	off         string
	opts        diagram.Options
}

func (f *diagramFlags) register(cmd *cobra.Command) {
	d := diagram.DefaultOptions()
	f.opts = d

	fs := cmd.Flags()
	fs.SetNormalizeFunc(flagAliases)
	fs.StringVarP(&f.config, "config", "c", "", "TOML or JSON config file (flags override its values)")
	fs.Float64SliceVar(&f.pool, "pool", nil, "pooling factor per block, comma-separated (default 1)")
	fs.IntSliceVar(&f.sizes, "sizes", nil, "tensor size per block, comma-separated")
	fs.StringArrayVar(&f.connections, "connection", nil, "skip connection as start,end (repeatable; --connections is an alias)")
	fs.StringVar(&f.color, "color", d.Color.String(), "base color: red, green, blue, yellow")
	fs.Float64Var(&f.opts.FontSize, "font-size", d.FontSize, "label font size")
	fs.Float64Var(&f.opts.Spacing, "spacing", d.Spacing, "horizontal gap between groups")
	fs.Float64Var(&f.opts.ArrowSize, "arrow-size", d.ArrowSize, "arrow size between groups (0 disables)")
	fs.StringVar(&f.off, "off", formatOff(d.Off), "diagram origin as x,y")
	fs.BoolVar(&f.opts.LogWidth, "log-width", d.LogWidth, "map channels to width logarithmically")
	fs.BoolVar(&f.opts.SqrtHeight, "sqrt-height", d.SqrtHeight, "shrink height by the square root of pooling")
	fs.Float64Var(&f.opts.Scale, "scale", d.Scale, "base block size")
	fs.Float64Var(&f.opts.ScaleWidth, "scale-width", d.ScaleWidth, "multiplier on the width fraction")
	fs.Float64Var(&f.opts.MinWidth, "min-width", d.MinWidth, "minimum block width")
}

// flagAliases maps alternate spellings onto registered flag names.
func flagAliases(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "connections" {
		name = "connection"
	}
	return pflag.NormalizedName(name)
}

// resolve merges the config file, positional channel groups and changed flags.
func (f *diagramFlags) resolve(cmd *cobra.Command, args []string) (io.Config, error) {
	cfg := io.DefaultConfig()
	if f.config != "" {
		loaded, err := io.LoadConfig(f.config, cfg)
		if err != nil {
			return io.Config{}, err
		}
		cfg = loaded
	}

	if len(args) > 0 {
		groups, err := parseChannels(args)
		if err != nil {
			return io.Config{}, err
		}
		cfg.Channels = groups
	}
	if len(cfg.Channels) == 0 {
		return io.Config{}, errors.New(errors.ErrCodeInvalidChannels, "no channels given: pass groups like '3 16-16 32' or set channels in --config")
	}

	changed := cmd.Flags().Changed
	if changed("pool") {
		cfg.Pool = f.pool
	}
	if changed("sizes") {
		cfg.Sizes = f.sizes
	}
	if changed("connection") {
		conns, err := parseConnections(f.connections)
		if err != nil {
			return io.Config{}, err
		}
		cfg.Connections = conns
	}
	if changed("color") {
		p, err := diagram.ParsePalette(f.color)
		if err != nil {
			return io.Config{}, err
		}
		cfg.Color = p
	}
	if changed("off") {
		p, err := parseOff(f.off)
		if err != nil {
			return io.Config{}, err
		}
		cfg.Off = p
	}

	floats := []struct {
		name string
		dst  *float64
		src  float64
	}{
		{"font-size", &cfg.FontSize, f.opts.FontSize},
		{"spacing", &cfg.Spacing, f.opts.Spacing},
		{"arrow-size", &cfg.ArrowSize, f.opts.ArrowSize},
		{"scale", &cfg.Scale, f.opts.Scale},
		{"scale-width", &cfg.ScaleWidth, f.opts.ScaleWidth},
		{"min-width", &cfg.MinWidth, f.opts.MinWidth},
	}
	for _, fl := range floats {
		if changed(fl.name) {
			*fl.dst = fl.src
		}
	}
	if changed("log-width") {
		cfg.LogWidth = f.opts.LogWidth
	}
	if changed("sqrt-height") {
		cfg.SqrtHeight = f.opts.SqrtHeight
	}

	return cfg, cfg.Validate()
}
