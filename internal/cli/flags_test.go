package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/netdraw/pkg/diagram"
)

func newFlagCmd(t *testing.T, df *diagramFlags, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "x"}
	df.register(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
	return cmd
}

func TestDiagramFlagsDefaults(t *testing.T) {
	var df diagramFlags
	cmd := newFlagCmd(t, &df)

	cfg, err := df.resolve(cmd, []string{"1", "8"})
	if err != nil {
		t.Fatal(err)
	}

	want := diagram.DefaultOptions()
	if cfg.Spacing != want.Spacing || cfg.Off != want.Off || cfg.Color != want.Color || cfg.Scale != want.Scale {
		t.Errorf("defaults not applied: %+v", cfg.Options)
	}
	if cfg.BlockCount() != 2 {
		t.Errorf("BlockCount() = %d, want 2", cfg.BlockCount())
	}
}

func TestDiagramFlagsOverrides(t *testing.T) {
	var df diagramFlags
	cmd := newFlagCmd(t, &df,
		"--pool", "2,2",
		"--sizes", "64",
		"--connection", "0,1",
		"--connection", "1,2",
		"--color", "yellow",
		"--off", "10,20",
		"--log-width",
		"--sqrt-height",
		"--scale", "100",
		"--scale-width", "2",
		"--min-width", "4",
		"--font-size", "10",
		"--spacing", "40",
		"--arrow-size", "1.5",
	)

	cfg, err := df.resolve(cmd, []string{"3", "16-16"})
	if err != nil {
		t.Fatal(err)
	}

	o := cfg.Options
	if len(o.Pool) != 2 || o.Pool[1] != 2 {
		t.Errorf("Pool = %v", o.Pool)
	}
	if len(o.Sizes) != 1 || o.Sizes[0] != 64 {
		t.Errorf("Sizes = %v", o.Sizes)
	}
	if len(o.Connections) != 2 || o.Connections[1] != (diagram.Connection{Start: 1, End: 2}) {
		t.Errorf("Connections = %v", o.Connections)
	}
	if o.Color != diagram.Yellow {
		t.Errorf("Color = %v", o.Color)
	}
	if o.Off != (diagram.Point{X: 10, Y: 20}) {
		t.Errorf("Off = %+v", o.Off)
	}
	if !o.LogWidth || !o.SqrtHeight {
		t.Error("boolean toggles not applied")
	}
	if o.Scale != 100 || o.ScaleWidth != 2 || o.MinWidth != 4 || o.FontSize != 10 || o.Spacing != 40 || o.ArrowSize != 1.5 {
		t.Errorf("numeric flags not applied: %+v", o)
	}
}

func TestDiagramFlagsConnectionsAlias(t *testing.T) {
	var df diagramFlags
	cmd := newFlagCmd(t, &df, "--connections", "0,2", "--connection", "1,2")

	cfg, err := df.resolve(cmd, []string{"1", "8", "32"})
	if err != nil {
		t.Fatal(err)
	}
	want := []diagram.Connection{{Start: 0, End: 2}, {Start: 1, End: 2}}
	if len(cfg.Connections) != len(want) {
		t.Fatalf("Connections = %v, want %v", cfg.Connections, want)
	}
	for i := range want {
		if cfg.Connections[i] != want[i] {
			t.Errorf("Connections[%d] = %v, want %v", i, cfg.Connections[i], want[i])
		}
	}
}

func TestDiagramFlagsConfigThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.json")
	content := `{"channels": [[1], [8]], "spacing": 50, "color": "red"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	var df diagramFlags
	cmd := newFlagCmd(t, &df, "-c", path, "--spacing", "12")
	cfg, err := df.resolve(cmd, nil)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Spacing != 12 {
		t.Errorf("Spacing = %v, flag should win", cfg.Spacing)
	}
	if cfg.Color != diagram.Red {
		t.Errorf("Color = %v, config value should survive", cfg.Color)
	}
	if cfg.BlockCount() != 2 {
		t.Errorf("config channels lost: %v", cfg.Channels)
	}

	// positional channels replace config channels
	cfg, err = df.resolve(cmd, []string{"4", "4", "4"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BlockCount() != 3 {
		t.Errorf("BlockCount() = %d, want 3", cfg.BlockCount())
	}
}
