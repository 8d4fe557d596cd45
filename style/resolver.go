package style

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/WalrusGumboot/folium/dsl"
)

// SlideGeometry is the resolved outer description of one slide.
// Background is nil when no bg key reached the slide.
type SlideGeometry struct {
	Width      int
	Height     int
	Margin     int
	Background *dsl.Colour
}

// Sheet holds the resolved style record for every node of one slide.
type Sheet struct {
	Geometry SlideGeometry
	Slide    Properties
	nodes    map[*dsl.ContentNode]Properties
}

// For returns the resolved properties of a node from this sheet's
// slide. Nodes from other slides resolve to empty properties.
func (s *Sheet) For(node *dsl.ContentNode) Properties {
	if p, ok := s.nodes[node]; ok {
		return p
	}
	return Properties{}
}

// UnresolvedStyleTargetError reports a named style block whose target
// matches no element in the slide.
type UnresolvedStyleTargetError struct {
	Pos    lexer.Position
	Target string
}

func (e *UnresolvedStyleTargetError) Error() string {
	return fmt.Sprintf("%s: style target %q does not match any element", e.Pos, e.Target)
}

// Resolve merges each node's style layers into a concrete record.
// Precedence, low to high: built-in kind defaults, the slide{} block,
// a block targeting the node's kind, a block targeting the node's
// name, the node's inline parameter block. Merges are key-wise and
// right-biased, so unspecified keys fall through.
func Resolve(slide *dsl.Slide) (*Sheet, error) {
	var slideBlock map[string]dsl.PropertyValue
	kindBlocks := map[dsl.NodeKind]map[string]dsl.PropertyValue{}
	namedBlocks := map[string]map[string]dsl.PropertyValue{}

	names := map[string]bool{}
	slide.Root.Walk(func(n *dsl.ContentNode) {
		if n.Name != "" {
			names[n.Name] = true
		}
	})

	for _, block := range slide.Styles {
		switch {
		case block.Target == "slide":
			slideBlock = block.Props
		default:
			if kind, ok := dsl.ContentKind(block.Target); ok {
				kindBlocks[kind] = block.Props
				continue
			}
			if !names[block.Target] {
				return nil, &UnresolvedStyleTargetError{Pos: block.Pos, Target: block.Target}
			}
			namedBlocks[block.Target] = block.Props
		}
	}

	sheet := &Sheet{
		Slide: defaultSlideProps().merged(slideBlock),
		nodes: map[*dsl.ContentNode]Properties{},
	}
	sheet.Geometry = geometryFrom(sheet.Slide)

	slide.Root.Walk(func(n *dsl.ContentNode) {
		props := defaultsForKind(n.Kind)
		props = props.merged(slideBlock)
		props = props.merged(kindBlocks[n.Kind])
		if n.Name != "" {
			props = props.merged(namedBlocks[n.Name])
		}
		props = props.merged(n.Params)
		sheet.nodes[n] = props
	})

	return sheet, nil
}

func geometryFrom(props Properties) SlideGeometry {
	geo := SlideGeometry{
		Width:  int(props.Number("width", DefaultSlideWidth)),
		Height: int(props.Number("height", DefaultSlideHeight)),
		Margin: int(props.Number("margin", 0)),
	}
	if bg, ok := props.Colour("bg"); ok {
		geo.Background = &bg
	}
	return geo
}
