package sink

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/matzehuels/netdraw/pkg/diagram"
	"github.com/matzehuels/netdraw/pkg/errors"
)

func TestRenderPNG(t *testing.T) {
	d := mustBuild(t, func(o *diagram.Options) {
		o.Connections = []diagram.Connection{{Start: 0, End: 1}}
		o.ArrowSize = 20
	})

	data, err := RenderPNG(d, WithScale(1))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}

	b := d.Bounds()
	wantW := int(b.Width() + 2*frameMargin + 0.999)
	if got := img.Bounds().Dx(); got < wantW-1 || got > wantW+1 {
		t.Errorf("width = %d, want about %d", got, wantW)
	}

	// Center of the second block's front face.
	x := int(230 - b.MinX + frameMargin)
	y := int(275 - b.MinY + frameMargin)
	r, g, bl, _ := img.At(x, y).RGBA()
	if r>>8 != 0x60 || g>>8 != 0xa2 || bl>>8 != 0xc5 {
		t.Errorf("pixel at (%d,%d) = #%02x%02x%02x, want #60a2c5", x, y, r>>8, g>>8, bl>>8)
	}
}

func TestRenderPNGScale(t *testing.T) {
	d := mustBuild(t, nil)

	small, err := RenderPNG(d, WithScale(1))
	if err != nil {
		t.Fatal(err)
	}
	large, err := RenderPNG(d)
	if err != nil {
		t.Fatal(err)
	}

	a, _ := png.Decode(bytes.NewReader(small))
	b, _ := png.Decode(bytes.NewReader(large))
	if b.Bounds().Dx() < 2*a.Bounds().Dx()-2 {
		t.Errorf("default scale width %d, want about 2x %d", b.Bounds().Dx(), a.Bounds().Dx())
	}
}

func TestRenderPNGRejectsOversizedCanvas(t *testing.T) {
	huge := mustBuild(t, func(o *diagram.Options) { o.Scale = 1e6 })
	if _, err := RenderPNG(huge); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("RenderPNG(scale 1e6) error = %v, want INVALID_INPUT", err)
	}

	d := mustBuild(t, nil)
	if _, err := RenderPNG(d, WithScale(math.Inf(1))); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("RenderPNG(+Inf scale) error = %v, want INVALID_INPUT", err)
	}
}

func TestRouteMarker(t *testing.T) {
	rt := diagram.Route{Points: [4]diagram.Point{{X: 0, Y: 100}, {X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 100}}}
	m := routeMarker(rt)
	if m[0] != (diagram.Point{X: 50, Y: 100}) {
		t.Errorf("marker tip = %v", m[0])
	}
	for _, p := range m[1:] {
		if p.Y != 100-markerLength {
			t.Errorf("marker base y = %v, want %v", p.Y, 100-markerLength)
		}
	}

	flat := diagram.Route{Points: [4]diagram.Point{{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}}}
	if m := routeMarker(flat); m[1].Y != 5+markerLength {
		t.Errorf("degenerate route should point up, base y = %v", m[1].Y)
	}
}
