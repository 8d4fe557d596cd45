// Package htmlrenderer emits a deck as a single self-contained HTML
// page of absolutely positioned elements, one stacked section per
// slide.
package htmlrenderer

import (
	"bytes"
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/WalrusGumboot/folium/dsl"
	"github.com/WalrusGumboot/folium/layout"
	"github.com/WalrusGumboot/folium/renderer"
)

// OutputName is the single artifact the HTML backend produces.
const OutputName = "deck.html"

// Renderer writes the whole deck into one HTML document.
type Renderer struct{}

var _ renderer.Renderer = (*Renderer)(nil)

// NewRenderer returns an HTML renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// Render implements renderer.Renderer.
func (r *Renderer) Render(res *layout.Result) ([]renderer.Output, error) {
	if res == nil || len(res.Slides) == 0 {
		return nil, fmt.Errorf("nothing to render")
	}

	slides := make([]g.Node, 0, len(res.Slides))
	for _, slide := range res.Slides {
		slides = append(slides, slideNode(slide))
	}

	doc := h.Doctype(
		h.HTML(
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.TitleEl(g.Text("folium deck")),
			),
			h.Body(
				h.Style("margin: 0; font-family: sans-serif;"),
				g.Group(slides),
			),
		),
	)

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return []renderer.Output{{Name: OutputName, Data: buf.Bytes()}}, nil
}

func slideNode(slide *layout.SlideLayout) g.Node {
	bg := "#FFFFFF"
	if slide.Background != nil {
		bg = slide.Background.Hex()
	}
	return h.Div(
		h.Class("slide"),
		h.Style(fmt.Sprintf(
			"position: relative; overflow: hidden; width: %dpx; height: %dpx; background: %s;",
			slide.Width, slide.Height, bg,
		)),
		boxNode(slide.Root),
	)
}

func boxNode(box *layout.Box) g.Node {
	if box == nil {
		return nil
	}

	style := fmt.Sprintf(
		"position: absolute; left: %dpx; top: %dpx; width: %dpx; height: %dpx;",
		box.X, box.Y, box.W, box.H,
	)
	if box.Kind == dsl.KindText {
		fill := dsl.Colour{A: 0xFF}
		if box.TextFill != nil {
			fill = *box.TextFill
		}
		style += fmt.Sprintf(" font-size: %gpx; line-height: %dpx; color: %s; white-space: nowrap;",
			box.TextSize, box.H, fill.Hex())
		return h.Div(h.Style(style), g.Text(box.Text))
	}

	children := make([]g.Node, 0, len(box.Children)+1)
	children = append(children, h.Style(style))
	for _, child := range box.Children {
		children = append(children, boxNode(child))
	}
	return h.Div(children...)
}
