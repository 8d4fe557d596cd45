package canvasrenderer_test

import (
	"bytes"
	"testing"

	"github.com/WalrusGumboot/folium/dsl"
	"github.com/WalrusGumboot/folium/layout"
	canvasrenderer "github.com/WalrusGumboot/folium/renderer/canvas"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func newTestRenderer(t *testing.T) *canvasrenderer.Renderer {
	t.Helper()
	r, err := canvasrenderer.NewRenderer(canvasrenderer.Options{})
	if err != nil {
		t.Skipf("no usable system font: %v", err)
	}
	return r
}

func TestMeasure(t *testing.T) {
	r := newTestRenderer(t)

	w, h := r.Measure("Hello", 24)
	if w <= 0 || h <= 0 {
		t.Fatalf("expected positive extents, got %dx%d", w, h)
	}
	w2, _ := r.Measure("Hello Hello", 24)
	if w2 <= w {
		t.Fatalf("expected longer text to be wider, got %d then %d", w, w2)
	}
}

func TestRenderPNGPerSlide(t *testing.T) {
	r := newTestRenderer(t)

	deck, err := dsl.ParseString(`
[ centre(text("one")) slide { width: 64, height: 48, bg: #FFFFFF } ]
[ text("two") slide { width: 64, height: 48 } ]
`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	res, err := layout.Build(deck, layout.Options{Measurer: r})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	outputs, err := r.Render(res)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(outputs) != 2 {
		t.Fatalf("expected 2 outputs, got %d", len(outputs))
	}
	for i, want := range []string{"1.png", "2.png"} {
		if outputs[i].Name != want {
			t.Errorf("output %d: expected name %s, got %s", i, want, outputs[i].Name)
		}
		if !bytes.HasPrefix(outputs[i].Data, pngMagic) {
			t.Errorf("output %d: not a PNG", i)
		}
	}
}

func TestRenderEmptyResult(t *testing.T) {
	r := newTestRenderer(t)
	if _, err := r.Render(&layout.Result{}); err == nil {
		t.Fatal("expected an error for an empty result")
	}
}
