package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/netdraw/pkg/diagram"
	"github.com/matzehuels/netdraw/pkg/errors"
)

// Config is the on-disk form of a diagram invocation.
type Config struct {
	diagram.Options

	VizType string   `toml:"type" json:"type,omitempty"`
	Formats []string `toml:"formats" json:"formats,omitempty"`
	Output  string   `toml:"output" json:"output,omitempty"`
}

// DefaultConfig returns a Config carrying [diagram.DefaultOptions].
func DefaultConfig() Config {
	return Config{Options: diagram.DefaultOptions()}
}

// LoadConfig decodes the file at path onto a copy of base. Keys absent from
// the file keep their base values.
func LoadConfig(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	cfg := base
	cfg.Options = base.Options.Clone()
	cfg.Formats = append([]string(nil), base.Formats...)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(data, &cfg)
	case ".json":
		err = decodeJSON(data, &cfg)
	default:
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unsupported config extension %q (want .toml or .json)", ext)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	return cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func decodeJSON(data []byte, cfg *Config) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}
