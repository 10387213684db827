// Package pkg provides the core libraries for netdraw layered-network diagrams.
//
// # Overview
//
// netdraw turns a sequence of channel groups into an isometric block diagram:
// each layer is a 3D box whose width follows its channel count and whose
// height shrinks with pooling, joined by arrows and dashed skip connections.
//
// # Architecture
//
// The typical data flow:
//
//	Options (flags or TOML/JSON config)
//	         ↓
//	    [diagram] package (validate + build blocks and routes)
//	         ↓
//	    [render] packages (SVG, PNG, PDF, JSON or Graphviz node-link)
//	         ↓
//	    [io] package (output paths + file writes)
//
// [pipeline] ties these together with caching and observability hooks. The
// CLI and any embedding program go through a [pipeline.Runner].
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/netdraw/pkg/diagram"
//	    "github.com/matzehuels/netdraw/pkg/render/sink"
//	)
//
//	opts := diagram.DefaultOptions()
//	opts.Channels = diagram.ExampleChannels
//	opts.Pool = diagram.ExamplePool
//
//	d, err := diagram.Build(opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := sink.RenderSVG(d)
//
// # Main Packages
//
// [diagram] - Options, validation and the geometry of blocks, labels, arrows
// and skip-connection routes.
//
// [render/sink] - Isometric output: SVG (byte-deterministic), PNG via gg,
// PDF via rsvg-convert and a JSON dump of the built diagram.
//
// [render/nodelink] - The layer chain as a Graphviz graph.
//
// [pipeline] - Validate, layout and render with per-artifact caching.
//
// [cache] - File-backed cache with TTLs and version-scoped keys.
//
// [observability] - Pipeline and cache hooks; a logging implementation ships
// with the CLI.
//
// [io] - Config loading and artifact output.
//
// [errors] - Coded errors for validation and user-facing messages.
//
// [diagram]: https://pkg.go.dev/github.com/matzehuels/netdraw/pkg/diagram
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/netdraw/pkg/render/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/netdraw/pkg/render/nodelink
// [render]: https://pkg.go.dev/github.com/matzehuels/netdraw/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/netdraw/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/netdraw/pkg/pipeline#Runner
// [cache]: https://pkg.go.dev/github.com/matzehuels/netdraw/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/netdraw/pkg/observability
// [io]: https://pkg.go.dev/github.com/matzehuels/netdraw/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/netdraw/pkg/errors
package pkg
