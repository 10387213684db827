package cli

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/netdraw/pkg/diagram"
)

func exampleDiagram(t *testing.T) *diagram.Diagram {
	t.Helper()
	opts := diagram.DefaultOptions()
	opts.Channels = diagram.ExampleChannels
	opts.Pool = diagram.ExamplePool
	opts.Sizes = []int{28}
	opts.Connections = []diagram.Connection{{Start: 0, End: 2}}
	opts.ArrowSize = 1
	d, err := diagram.Build(opts)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestBlockTable(t *testing.T) {
	out := blockTable(exampleDiagram(t))

	for _, want := range []string{"Channels", "Width", "18.75", "138.75", "gray", "blue", "28"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got < 6 {
		t.Errorf("table has %d lines, want header, rule, 4 rows and borders", got)
	}
}

func TestFmtNum(t *testing.T) {
	tests := map[float64]string{
		50:     "50",
		18.75:  "18.75",
		-100.5: "-100.5",
	}
	for in, want := range tests {
		if got := fmtNum(in); got != want {
			t.Errorf("fmtNum(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestLayoutCommandJSONFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "layout.json")
	if err := execute(t, "layout", "1", "8", "32", "--pool", "2,2,1", "-o", out); err != nil {
		t.Fatalf("layout: %v", err)
	}

	var doc struct {
		Blocks []struct {
			Index    int     `json:"index"`
			Channels int     `json:"channels"`
			Height   float64 `json:"height"`
		} `json:"blocks"`
	}
	if err := json.Unmarshal([]byte(readFile(t, out)), &doc); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(doc.Blocks) != 3 {
		t.Fatalf("len(blocks) = %d, want 3", len(doc.Blocks))
	}
	if doc.Blocks[1].Height != 75 {
		t.Errorf("blocks[1].height = %v, want 75", doc.Blocks[1].Height)
	}
}

func TestLayoutCommandTable(t *testing.T) {
	if err := execute(t, "layout", "1", "8", "--connection", "0,1"); err != nil {
		t.Fatalf("layout: %v", err)
	}
}

func TestLayoutCommandRequiresChannels(t *testing.T) {
	if err := execute(t, "layout"); err == nil {
		t.Error("layout without channels should fail")
	}
}
