package htmlrenderer_test

import (
	"strings"
	"testing"

	"github.com/WalrusGumboot/folium/dsl"
	"github.com/WalrusGumboot/folium/layout"
	htmlrenderer "github.com/WalrusGumboot/folium/renderer/html"
)

type stubMeasurer struct{}

func (stubMeasurer) Measure(text string, size float64) (int, int) {
	return 10 * len(text), 20
}

func TestRenderDeck(t *testing.T) {
	deck, err := dsl.ParseString(`
[
    centre(text("Hello") { fill: #FF0000 })
    slide { width: 200, height: 100, bg: #000000 }
]`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	res, err := layout.Build(deck, layout.Options{Measurer: stubMeasurer{}})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	outputs, err := htmlrenderer.NewRenderer().Render(res)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(outputs) != 1 || outputs[0].Name != htmlrenderer.OutputName {
		t.Fatalf("expected a single %s output, got %+v", htmlrenderer.OutputName, outputs)
	}

	page := string(outputs[0].Data)
	for _, want := range []string{
		"<!doctype html>",
		"width: 200px; height: 100px; background: #000000;",
		"position: absolute;",
		"color: #FF0000;",
		">Hello</div>",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("output missing %q:\n%s", want, page)
		}
	}
}

func TestRenderEmptyResult(t *testing.T) {
	if _, err := htmlrenderer.NewRenderer().Render(&layout.Result{}); err == nil {
		t.Fatal("expected an error for an empty result")
	}
}
