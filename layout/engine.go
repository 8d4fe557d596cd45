package layout

import (
	"github.com/WalrusGumboot/folium/binding"
	"github.com/WalrusGumboot/folium/dsl"
	"github.com/WalrusGumboot/folium/style"
)

// The layout walk is constraints-down/sizes-up: a parent hands each
// child the maximum space it may occupy and receives back the size the
// child actually chose. The walk is total: degenerate inputs (a
// padding amount larger than the viewport, more row children than
// available pixels) clamp to zero instead of failing, so a live show
// always gets a box tree.

// Layout walks a styled content tree under the given viewport and
// returns its box tree. The result's X/Y are zero; the caller places
// the root (BuildSlide offsets it by the slide margin).
func Layout(root *dsl.ContentNode, sheet *style.Sheet, vp Viewport, m Measurer) *Box {
	e := &engine{sheet: sheet, measurer: m}
	return e.node(root, clampZero(vp.W), clampZero(vp.H))
}

type engine struct {
	sheet    *style.Sheet
	measurer Measurer
	data     any
}

func (e *engine) node(n *dsl.ContentNode, availW, availH int) *Box {
	box := &Box{Node: n, Kind: n.Kind, Name: n.Name}
	props := e.sheet.For(n)

	switch n.Kind {
	case dsl.KindCentre:
		child := e.node(n.Children[0], availW, availH)
		child.X = clampZero((availW - child.W) / 2)
		child.Y = clampZero((availH - child.H) / 2)
		box.W = availW
		box.H = availH
		box.Children = []*Box{child}

	case dsl.KindPadding:
		amount := clampZero(int(props.Number("amount", style.DefaultPaddingAmount)))
		child := e.node(n.Children[0], clampZero(availW-2*amount), clampZero(availH-2*amount))
		child.X = amount
		child.Y = amount
		box.W = minInt(availW, child.W+2*amount)
		box.H = minInt(availH, child.H+2*amount)
		box.Children = []*Box{child}

	case dsl.KindRow:
		count := len(n.Children)
		base, rem := availW/count, availW%count
		x, maxH := 0, 0
		box.Children = make([]*Box, 0, count)
		for i, childNode := range n.Children {
			slot := base
			if i < rem {
				slot++
			}
			child := e.node(childNode, slot, availH)
			child.X = x
			x += child.W
			if child.H > maxH {
				maxH = child.H
			}
			box.Children = append(box.Children, child)
		}
		box.W = x
		box.H = maxH

	case dsl.KindColumn:
		count := len(n.Children)
		base, rem := availH/count, availH%count
		y, maxW := 0, 0
		box.Children = make([]*Box, 0, count)
		for i, childNode := range n.Children {
			slot := base
			if i < rem {
				slot++
			}
			child := e.node(childNode, availW, slot)
			child.Y = y
			y += child.H
			if child.W > maxW {
				maxW = child.W
			}
			box.Children = append(box.Children, child)
		}
		box.W = maxW
		box.H = y

	case dsl.KindText:
		text := n.Text
		if e.data != nil {
			text = binding.Interpolate(text, e.data)
		}
		size := props.Number("size", style.DefaultTextSize)
		fill, ok := props.Colour("fill")
		if !ok {
			fill = style.DefaultTextFill
		}
		w, h := e.measure(text, size)
		// Overflowing text is clamped to the constraint; wrapping is
		// not supported, overflow is the renderer's to show.
		box.W = minInt(clampZero(w), availW)
		box.H = minInt(clampZero(h), availH)
		box.Text = text
		box.TextSize = size
		box.TextFill = &fill
	}

	return box
}

func (e *engine) measure(text string, size float64) (int, int) {
	if e.measurer == nil {
		return 0, 0
	}
	return e.measurer.Measure(text, size)
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
