package layout

import (
	"github.com/WalrusGumboot/folium/dsl"
)

// This file defines the geometry produced by layout, shared by the
// renderers and the debug JSON dump.

// Viewport is the outer constraint handed to a layout run.
type Viewport struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Box is one positioned element. X and Y are relative to the parent
// box; a renderer accumulates them while walking the tree. A box is
// never modified once Layout has returned it: a viewport change
// re-runs layout instead of patching geometry in place.
type Box struct {
	Node *dsl.ContentNode `json:"-"`

	Kind dsl.NodeKind `json:"kind"`
	Name string       `json:"name,omitempty"`
	X    int          `json:"x"`
	Y    int          `json:"y"`
	W    int          `json:"w"`
	H    int          `json:"h"`

	// Leaf payload, only set for text boxes. Carrying the resolved
	// values here lets a renderer draw without re-consulting the AST
	// or the style sheet.
	Text     string     `json:"text,omitempty"`
	TextSize float64    `json:"textSize,omitempty"`
	TextFill *dsl.Colour `json:"textFill,omitempty"`

	Children []*Box `json:"children,omitempty"`
}

// SlideLayout pairs a slide's resolved outer record with its box tree.
type SlideLayout struct {
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Background *dsl.Colour `json:"background,omitempty"`
	Root       *Box        `json:"root"`
}

// Result holds the laid-out deck in document order.
type Result struct {
	Slides []*SlideLayout `json:"slides"`
}

// Measurer supplies the intrinsic size of a single line of text at a
// given size. Implementations must be pure and deterministic for a
// fixed font configuration; the canvas renderer implements it from
// the same font faces it draws with.
type Measurer interface {
	Measure(text string, size float64) (w, h int)
}
