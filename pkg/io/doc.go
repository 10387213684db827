// Package io loads diagram configuration files and writes rendered artifacts.
//
// # Configuration
//
// A configuration file describes a diagram declaratively. TOML and JSON are
// supported and selected by file extension:
//
//	# net.toml
//	channels    = [[3], [64, 64], [128, 128], [256]]
//	pool        = [1, 2, 2, 2]
//	sizes       = [224, 112, 56, 28]
//	connections = [[1, 4]]
//	color       = "green"
//	arrow_size  = 1
//	type        = "diagram"
//	formats     = ["svg", "png"]
//
// Every [diagram.Options] field may appear using its snake_case name. The
// extra keys type, formats and output select the visualization, the output
// formats and the output path. Unknown keys are rejected so typos surface as
// errors instead of silently falling back to defaults.
//
// Use [LoadConfig] to decode a file onto a base configuration:
//
//	cfg, err := io.LoadConfig("net.toml", io.DefaultConfig())
//
// # Output
//
// [WriteArtifact] writes one rendered artifact, creating parent directories
// as needed. [OutputPath] derives per-format file names when one diagram is
// written in several formats.
//
// [diagram.Options]: github.com/matzehuels/netdraw/pkg/diagram.Options
package io
