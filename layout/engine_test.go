package layout_test

import (
	"testing"

	"github.com/WalrusGumboot/folium/dsl"
	"github.com/WalrusGumboot/folium/layout"
	"github.com/WalrusGumboot/folium/style"
)

// stubMeasurer sizes text at 10 units per character on a 20 unit line,
// ignoring the font size, so expected geometry is easy to state.
type stubMeasurer struct{}

func (stubMeasurer) Measure(text string, size float64) (int, int) {
	return 10 * len(text), 20
}

func layoutSlide(t *testing.T, src string) *layout.SlideLayout {
	t.Helper()
	deck, err := dsl.ParseString(src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	sheet, err := style.Resolve(deck.Slides[0])
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	return layout.BuildSlide(deck.Slides[0], sheet, layout.Options{Measurer: stubMeasurer{}})
}

func TestLayoutSingleText(t *testing.T) {
	slide := layoutSlide(t, `[ text("Hello") { size: 24 } slide { width: 1920, height: 1080, bg: #000000 } ]`)

	if slide.Width != 1920 || slide.Height != 1080 {
		t.Fatalf("unexpected slide size %dx%d", slide.Width, slide.Height)
	}
	if slide.Background == nil || slide.Background.Hex() != "#000000" {
		t.Fatalf("unexpected background %v", slide.Background)
	}

	root := slide.Root
	if root.Kind != dsl.KindText {
		t.Fatalf("expected text root, got %s", root.Kind)
	}
	if root.X != 0 || root.Y != 0 {
		t.Fatalf("expected text at origin, got (%d,%d)", root.X, root.Y)
	}
	if root.W != 50 || root.H != 20 {
		t.Fatalf("expected measured 50x20, got %dx%d", root.W, root.H)
	}
	if root.TextSize != 24 {
		t.Fatalf("expected resolved size 24, got %g", root.TextSize)
	}
}

func TestLayoutCentredPadding(t *testing.T) {
	slide := layoutSlide(t, `[ centre(padding(text("abcd")) { amount: 10 }) slide { width: 200, height: 100 } ]`)

	centre := slide.Root
	if centre.W != 200 || centre.H != 100 {
		t.Fatalf("expected centre to fill 200x100, got %dx%d", centre.W, centre.H)
	}

	padding := centre.Children[0]
	// text is 40x20, so the padded box is 60x40, centred in 200x100.
	if padding.W != 60 || padding.H != 40 {
		t.Fatalf("expected padded box 60x40, got %dx%d", padding.W, padding.H)
	}
	if padding.X != 70 || padding.Y != 30 {
		t.Fatalf("expected padded box at (70,30), got (%d,%d)", padding.X, padding.Y)
	}

	text := padding.Children[0]
	if text.X != 10 || text.Y != 10 {
		t.Fatalf("expected text at (10,10) inside the padded box, got (%d,%d)", text.X, text.Y)
	}
	if text.W != 40 || text.H != 20 {
		t.Fatalf("expected text 40x20, got %dx%d", text.W, text.H)
	}
}

func TestLayoutRowSplit(t *testing.T) {
	// Both texts are wider than their slots, so each child is clamped
	// to its slot and the extra pixel goes to the first child.
	slide := layoutSlide(t, `[ row(text("aaaaaaaaaa"), text("bbbbbbbbbb")) slide { width: 101, height: 50 } ]`)

	row := slide.Root
	if len(row.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(row.Children))
	}
	a, b := row.Children[0], row.Children[1]
	if a.W != 51 || b.W != 50 {
		t.Fatalf("expected widths 51/50, got %d/%d", a.W, b.W)
	}
	if a.X != 0 || b.X != 51 {
		t.Fatalf("expected children packed at 0 and 51, got %d and %d", a.X, b.X)
	}
	if row.W != 101 || row.H != 20 {
		t.Fatalf("expected row 101x20, got %dx%d", row.W, row.H)
	}
}

func TestLayoutRowRemainder(t *testing.T) {
	slide := layoutSlide(t, `[ row(text("aaaaaaaaaa"), text("bbbbbbbbbb"), text("cccccccccc")) slide { width: 100, height: 50 } ]`)

	widths := make([]int, 0, 3)
	for _, child := range slide.Root.Children {
		widths = append(widths, child.W)
	}
	if widths[0] != 34 || widths[1] != 33 || widths[2] != 33 {
		t.Fatalf("expected 34/33/33, got %v", widths)
	}
}

func TestLayoutColumnPacking(t *testing.T) {
	slide := layoutSlide(t, `[ column(text("a"), text("bb"), text("ccc")) slide { width: 300, height: 100 } ]`)

	column := slide.Root
	ys := []int{0, 20, 40}
	for i, child := range column.Children {
		if child.Y != ys[i] {
			t.Errorf("child %d: expected y %d, got %d", i, ys[i], child.Y)
		}
		if child.H != 20 {
			t.Errorf("child %d: expected height 20, got %d", i, child.H)
		}
	}
	// Column height is the sum of child heights, width the widest child.
	if column.H != 60 || column.W != 30 {
		t.Fatalf("expected column 30x60, got %dx%d", column.W, column.H)
	}
}

func TestLayoutDegeneratePadding(t *testing.T) {
	slide := layoutSlide(t, `[ padding(text("hi")) { amount: 500 } slide { width: 100, height: 50 } ]`)

	padding := slide.Root
	text := padding.Children[0]
	if text.W != 0 || text.H != 0 {
		t.Fatalf("expected the squeezed text to collapse to 0x0, got %dx%d", text.W, text.H)
	}
	if padding.W < 0 || padding.H < 0 || padding.W > 100 || padding.H > 50 {
		t.Fatalf("expected the padded box clamped to the slide, got %dx%d", padding.W, padding.H)
	}
}

func TestLayoutMargin(t *testing.T) {
	slide := layoutSlide(t, `[ text("hi") slide { width: 100, height: 100, margin: 10 } ]`)

	root := slide.Root
	if root.X != 10 || root.Y != 10 {
		t.Fatalf("expected root offset by the margin, got (%d,%d)", root.X, root.Y)
	}
	if slide.Width != 100 || slide.Height != 100 {
		t.Fatalf("margin must not change the slide size, got %dx%d", slide.Width, slide.Height)
	}
}
