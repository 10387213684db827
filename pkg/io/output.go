package io

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/netdraw/pkg/errors"
)

// formatExts lists the extensions OutputPath treats as format suffixes.
var formatExts = map[string]bool{
	".svg":  true,
	".png":  true,
	".pdf":  true,
	".json": true,
}

// BasePath strips a known format extension from output.
// Unknown extensions are kept: "net.v2" stays "net.v2".
func BasePath(output string) string {
	ext := filepath.Ext(output)
	if formatExts[strings.ToLower(ext)] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// OutputPath returns where the artifact for format should be written.
//
// With a single format, output is used as given unless its extension names a
// different format, in which case the extension is replaced. With several
// formats every artifact gets BasePath(output) plus its own extension.
func OutputPath(output, format string, multi bool) string {
	if !multi {
		ext := strings.ToLower(filepath.Ext(output))
		if ext == "."+format || (ext != "" && !formatExts[ext]) {
			return output
		}
	}
	return BasePath(output) + "." + format
}

// WriteArtifact writes data to path in a single write, creating parent
// directories as needed.
func WriteArtifact(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
