package cli

import (
	"reflect"
	"testing"

	"github.com/matzehuels/netdraw/pkg/diagram"
	"github.com/matzehuels/netdraw/pkg/errors"
)

func TestParseChannels(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    [][]int
		wantErr bool
	}{
		{"singles", []string{"1", "8", "32"}, [][]int{{1}, {8}, {32}}, false},
		{"groups", []string{"3", "16-16", "32-32-32"}, [][]int{{3}, {16, 16}, {32, 32, 32}}, false},
		{"zero", []string{"0"}, nil, true},
		{"negative", []string{"-4"}, nil, true},
		{"trailing dash", []string{"16-"}, nil, true},
		{"word", []string{"abc"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseChannels(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseChannels(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidChannels) {
					t.Errorf("code = %s, want INVALID_CHANNELS", errors.GetCode(err))
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseChannels(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseConnection(t *testing.T) {
	tests := []struct {
		in      string
		want    diagram.Connection
		wantErr bool
	}{
		{"0,2", diagram.Connection{Start: 0, End: 2}, false},
		{" 1 , 3 ", diagram.Connection{Start: 1, End: 3}, false},
		{"1", diagram.Connection{}, true},
		{"a,b", diagram.Connection{}, true},
	}

	for _, tt := range tests {
		got, err := parseConnection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseConnection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseConnection(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseConnections(t *testing.T) {
	got, err := parseConnections([]string{"0,2", "1,3"})
	if err != nil {
		t.Fatal(err)
	}
	want := []diagram.Connection{{Start: 0, End: 2}, {Start: 1, End: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseConnections() = %v, want %v", got, want)
	}

	if _, err := parseConnections([]string{"0,2", "x"}); !errors.Is(err, errors.ErrCodeInvalidConnection) {
		t.Errorf("parseConnections() error = %v, want INVALID_CONNECTION", err)
	}
}

func TestParseOff(t *testing.T) {
	p, err := parseOff("50,200")
	if err != nil {
		t.Fatal(err)
	}
	if p != (diagram.Point{X: 50, Y: 200}) {
		t.Errorf("parseOff() = %+v", p)
	}
	if got := formatOff(p); got != "50,200" {
		t.Errorf("formatOff() = %q", got)
	}

	for _, bad := range []string{"50", "a,1", ""} {
		if _, err := parseOff(bad); err == nil {
			t.Errorf("parseOff(%q) should fail", bad)
		}
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in      string
		want    []string
		wantErr bool
	}{
		{"", []string{"svg"}, false},
		{"svg", []string{"svg"}, false},
		{"svg,PNG, pdf", []string{"svg", "png", "pdf"}, false},
		{"svg,svg", []string{"svg"}, false},
		{"gif", nil, true},
		{",", nil, true},
	}

	for _, tt := range tests {
		got, err := parseFormats(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseFormats(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestJoinInts(t *testing.T) {
	if got := joinInts([]int{16, 16}, "-"); got != "16-16" {
		t.Errorf("joinInts() = %q", got)
	}
}
