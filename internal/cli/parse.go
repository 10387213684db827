package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/netdraw/pkg/diagram"
	"github.com/matzehuels/netdraw/pkg/errors"
	"github.com/matzehuels/netdraw/pkg/pipeline"
)

// parseChannels converts positional groups like "3" or "16-16" into channel
// groups.
func parseChannels(args []string) ([][]int, error) {
	groups := make([][]int, 0, len(args))
	for _, arg := range args {
		parts := strings.Split(arg, "-")
		group := make([]int, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || n <= 0 {
				return nil, errors.New(errors.ErrCodeInvalidChannels, "invalid channel group %q: want positive integers joined by '-'", arg)
			}
			group = append(group, n)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// parseConnection parses "start,end".
func parseConnection(s string) (diagram.Connection, error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok {
		return diagram.Connection{}, errors.New(errors.ErrCodeInvalidConnection, "invalid connection %q: want start,end", s)
	}
	start, err1 := strconv.Atoi(strings.TrimSpace(a))
	end, err2 := strconv.Atoi(strings.TrimSpace(b))
	if err1 != nil || err2 != nil {
		return diagram.Connection{}, errors.New(errors.ErrCodeInvalidConnection, "invalid connection %q: indices must be integers", s)
	}
	return diagram.Connection{Start: start, End: end}, nil
}

func parseConnections(ss []string) ([]diagram.Connection, error) {
	out := make([]diagram.Connection, 0, len(ss))
	for _, s := range ss {
		c, err := parseConnection(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// parseOff parses an "x,y" origin.
func parseOff(s string) (diagram.Point, error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok {
		return diagram.Point{}, errors.New(errors.ErrCodeInvalidInput, "invalid offset %q: want x,y", s)
	}
	x, err1 := strconv.ParseFloat(strings.TrimSpace(a), 64)
	y, err2 := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if err1 != nil || err2 != nil {
		return diagram.Point{}, errors.New(errors.ErrCodeInvalidInput, "invalid offset %q: coordinates must be numbers", s)
	}
	return diagram.Point{X: x, Y: y}, nil
}

// formatOff renders p the way parseOff reads it.
func formatOff(p diagram.Point) string {
	return strconv.FormatFloat(p.X, 'f', -1, 64) + "," + strconv.FormatFloat(p.Y, 'f', -1, 64)
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) ([]string, error) {
	if s == "" {
		return []string{pipeline.FormatSVG}, nil
	}
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		if err := pipeline.ValidateFormat(f); err != nil {
			return nil, err
		}
		seen[f] = true
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "no formats in %q", s)
	}
	return out, nil
}

// joinInts formats a channel group the way parseChannels reads it.
func joinInts(xs []int, sep string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, sep)
}
