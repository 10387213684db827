package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/netdraw/pkg/diagram"
)

func TestSummaryLine(t *testing.T) {
	s := summarize(exampleDiagram(t))
	if s.Blocks != 4 || s.Groups != 4 || s.Routes != 1 || s.MaxChannels != 64 {
		t.Fatalf("summarize() = %+v", s)
	}

	line := summaryLine(s, true)
	for _, want := range []string{"4 blocks", "1 connection", "max 64 ch", iconCached} {
		if !strings.Contains(line, want) {
			t.Errorf("summaryLine() = %q, missing %q", line, want)
		}
	}
	if strings.Contains(line, "groups") {
		t.Error("groups should be omitted when every block is its own group")
	}

	grouped := summaryLine(diagramSummary{Blocks: 5, Groups: 3}, false)
	for _, want := range []string{"5 blocks in 3 groups", iconFresh} {
		if !strings.Contains(grouped, want) {
			t.Errorf("summaryLine() = %q, missing %q", grouped, want)
		}
	}
	if strings.Contains(grouped, "connection") {
		t.Error("zero connections should be omitted")
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 blocks"},
		{1, "1 block"},
		{12, "12 blocks"},
	}
	for _, tt := range tests {
		if got := plural(tt.n, "block"); got != tt.want {
			t.Errorf("plural(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{512, "512 B"},
		{1536, "1.5 KB"},
		{3 << 20, "3.0 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestSwatch(t *testing.T) {
	for _, p := range append(diagram.Palettes, diagram.Gray) {
		if got := strings.Count(swatch(p), iconBlock); got != 3 {
			t.Errorf("swatch(%s) has %d squares, want 3", p, got)
		}
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	out := newPrinter(&buf)

	out.artifact("out/net.png", "png", 2048)
	out.route(diagram.Route{Index: 0, Start: 1, End: 4, Baseline: 115})
	out.warn("Skipped %s", "json")

	got := buf.String()
	for _, want := range []string{"out/net.png", "PNG", "2.0 KB", "connection 0: block 1 → block 4 at y=115", "Skipped json"} {
		if !strings.Contains(got, want) {
			t.Errorf("printer output missing %q:\n%s", want, got)
		}
	}
}

func TestDrawCommandReportsArtifacts(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	base := filepath.Join(t.TempDir(), "net")

	var out bytes.Buffer
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"draw", "1", "8-8", "32", "-f", "svg,json", "-o", base, "--connection", "0,3"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	for _, want := range []string{base + ".svg", "SVG", base + ".json", "JSON", "4 blocks in 3 groups", "1 connection", iconFresh} {
		if !strings.Contains(got, want) {
			t.Errorf("draw output missing %q:\n%s", want, got)
		}
	}
}
