package layout_test

import (
	"testing"

	"github.com/WalrusGumboot/folium/dsl"
	"github.com/WalrusGumboot/folium/layout"
)

const multiSlideDeck = `
[ text("one") slide { width: 100, height: 100 } ]
[ text("two") slide { width: 200, height: 200 } ]
[ text("three") slide { width: 300, height: 300 } ]
`

func TestBuildKeepsDeckOrder(t *testing.T) {
	deck, err := dsl.ParseString(multiSlideDeck)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	res, err := layout.Build(deck, layout.Options{Measurer: stubMeasurer{}})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if len(res.Slides) != 3 {
		t.Fatalf("expected 3 slides, got %d", len(res.Slides))
	}
	for i, want := range []int{100, 200, 300} {
		if res.Slides[i].Width != want {
			t.Errorf("slide %d: expected width %d, got %d", i, want, res.Slides[i].Width)
		}
		if res.Slides[i].Root == nil {
			t.Errorf("slide %d: missing root box", i)
		}
	}
}

func TestBuildViewportOverride(t *testing.T) {
	deck, err := dsl.ParseString(multiSlideDeck)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	res, err := layout.Build(deck, layout.Options{
		Measurer: stubMeasurer{},
		Viewport: layout.Viewport{W: 640, H: 480},
	})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	for i, slide := range res.Slides {
		if slide.Width != 640 || slide.Height != 480 {
			t.Errorf("slide %d: expected 640x480, got %dx%d", i, slide.Width, slide.Height)
		}
	}
}

func TestBuildRequiresMeasurer(t *testing.T) {
	deck, err := dsl.ParseString(`[ text("hi") ]`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, err := layout.Build(deck, layout.Options{}); err == nil {
		t.Fatal("expected an error without a measurer")
	}
}

func TestBuildStyleErrorIsDeterministic(t *testing.T) {
	deck, err := dsl.ParseString(`
[ text("ok") ]
[ text("bad") ghost { size: 10 } ]
`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, err := layout.Build(deck, layout.Options{Measurer: stubMeasurer{}}); err == nil {
		t.Fatal("expected the unresolved style target to fail the build")
	}
}

func TestBuildInterpolatesData(t *testing.T) {
	deck, err := dsl.ParseString(`[ text("hi ${name}") slide { width: 400, height: 100 } ]`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	res, err := layout.Build(deck, layout.Options{
		Measurer: stubMeasurer{},
		Data:     map[string]any{"name": "Ada"},
	})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	root := res.Slides[0].Root
	if root.Text != "hi Ada" {
		t.Fatalf("expected interpolated text, got %q", root.Text)
	}
	// 6 characters at 10 units each.
	if root.W != 60 {
		t.Fatalf("expected the interpolated text to be measured, got width %d", root.W)
	}
}
