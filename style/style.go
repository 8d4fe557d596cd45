// Package style resolves the cascade of style directives into concrete
// per-node property records. Resolution is a sequence of immutable,
// right-biased key-wise map merges; nothing here mutates the AST.
package style

import (
	"github.com/WalrusGumboot/folium/dsl"
)

// Properties is one resolved key/value record.
type Properties map[string]dsl.PropertyValue

// Number returns the numeric value for key, or fallback when the key
// is absent or not a number.
func (p Properties) Number(key string, fallback float64) float64 {
	if v, ok := p[key]; ok && v.Kind == dsl.NumberValue {
		return v.Number
	}
	return fallback
}

// String returns the string value for key, or fallback.
func (p Properties) String(key, fallback string) string {
	if v, ok := p[key]; ok && v.Kind == dsl.StringValue {
		return v.Str
	}
	return fallback
}

// Colour returns the colour value for key, or false when absent.
func (p Properties) Colour(key string) (dsl.Colour, bool) {
	if v, ok := p[key]; ok && v.Kind == dsl.ColourValue {
		return v.Colour, true
	}
	return dsl.Colour{}, false
}

// merged returns a copy of p with overrides layered on top.
// Unspecified keys fall through to the lower-precedence value.
func (p Properties) merged(overrides map[string]dsl.PropertyValue) Properties {
	out := make(Properties, len(p)+len(overrides))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Built-in defaults. Slide dimensions follow the original tool's
// 1920x1080; a slide has no background and no margin unless styled.
const (
	DefaultSlideWidth  = 1920
	DefaultSlideHeight = 1080

	DefaultTextSize      = 16
	DefaultPaddingAmount = 12
)

// DefaultTextFill is opaque black.
var DefaultTextFill = dsl.Colour{A: 0xFF}

func defaultsForKind(kind dsl.NodeKind) Properties {
	switch kind {
	case dsl.KindText:
		return Properties{
			"size": dsl.Number(DefaultTextSize),
			"fill": dsl.ColourOf(DefaultTextFill),
		}
	case dsl.KindPadding:
		return Properties{
			"amount": dsl.Number(DefaultPaddingAmount),
		}
	case dsl.KindCentre, dsl.KindRow, dsl.KindColumn:
		return Properties{}
	default:
		return Properties{}
	}
}

func defaultSlideProps() Properties {
	return Properties{
		"width":  dsl.Number(DefaultSlideWidth),
		"height": dsl.Number(DefaultSlideHeight),
		"margin": dsl.Number(0),
	}
}
