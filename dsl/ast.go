package dsl

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// This file defines the typed AST produced by Compile. It is the
// durable artifact of the pipeline: style resolution and layout read
// it but never modify it, so one deck can be re-laid-out for any
// number of viewports.

// Deck is an ordered sequence of compiled slides.
type Deck struct {
	Slides []*Slide
}

// Slide is one screen's content tree plus its style directives.
type Slide struct {
	Pos    lexer.Position
	Root   *ContentNode
	Styles []*StyleBlock
}

// NodeKind enumerates the closed set of content kinds. The layout walk
// dispatches on it with a single exhaustive switch.
type NodeKind int

const (
	KindCentre NodeKind = iota
	KindPadding
	KindRow
	KindColumn
	KindText
)

// String returns the source-level keyword for the kind.
func (k NodeKind) String() string {
	switch k {
	case KindCentre:
		return "centre"
	case KindPadding:
		return "padding"
	case KindRow:
		return "row"
	case KindColumn:
		return "column"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// MarshalJSON encodes the kind as its keyword so layout dumps read
// like source.
func (k NodeKind) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", k.String())), nil
}

var contentKinds = map[string]NodeKind{
	"centre":  KindCentre,
	"padding": KindPadding,
	"row":     KindRow,
	"column":  KindColumn,
	"text":    KindText,
}

// ContentKind maps a source keyword to its NodeKind.
func ContentKind(word string) (NodeKind, bool) {
	k, ok := contentKinds[word]
	return k, ok
}

// ContentNode is one element of a slide's content tree.
//
// Children holds exactly one node for Centre and Padding and at least
// one for Row and Column; Text is a leaf. Params carries the node's
// inline parameter block (e.g. `{amount: 10}` or `{size: 24}`).
type ContentNode struct {
	Kind     NodeKind
	Name     string
	Pos      lexer.Position
	Children []*ContentNode
	Text     string
	Params   map[string]PropertyValue
}

// Walk visits n and all of its descendants in document order.
func (n *ContentNode) Walk(fn func(*ContentNode)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// StyleBlock is one `target { key: value, ... }` directive. Target is
// the reserved word "slide", a content kind word, or an element name.
type StyleBlock struct {
	Pos    lexer.Position
	Target string
	Props  map[string]PropertyValue
}

// PropertyKind tags a PropertyValue.
type PropertyKind int

const (
	NumberValue PropertyKind = iota
	StringValue
	ColourValue
	BoolValue
)

// PropertyValue is a tagged style value: number, string, colour or
// boolean.
type PropertyValue struct {
	Kind   PropertyKind
	Number float64
	Str    string
	Colour Colour
	Bool   bool
}

// Number builds a numeric property value.
func Number(v float64) PropertyValue { return PropertyValue{Kind: NumberValue, Number: v} }

// String builds a string property value.
func String(s string) PropertyValue { return PropertyValue{Kind: StringValue, Str: s} }

// ColourOf builds a colour property value.
func ColourOf(c Colour) PropertyValue { return PropertyValue{Kind: ColourValue, Colour: c} }

// Bool builds a boolean property value.
func Bool(b bool) PropertyValue { return PropertyValue{Kind: BoolValue, Bool: b} }

// Source renders the value in canonical source form.
func (v PropertyValue) Source() string {
	switch v.Kind {
	case NumberValue:
		return formatNumber(v.Number)
	case StringValue:
		return fmt.Sprintf("%q", v.Str)
	case ColourValue:
		return fmt.Sprintf("%q", v.Colour.Hex())
	case BoolValue:
		return fmt.Sprintf("%t", v.Bool)
	default:
		return ""
	}
}

// Colour is an sRGB colour with alpha, as written in `#RRGGBB` or
// `#RRGGBBAA` form.
type Colour struct {
	R, G, B, A uint8
}

// Hex renders the colour back to source form. The alpha component is
// omitted when fully opaque.
func (c Colour) Hex() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// MarshalJSON encodes the colour in its hex source form.
func (c Colour) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", c.Hex())), nil
}

// ParseColour parses a `#RRGGBB` or `#RRGGBBAA` string.
func ParseColour(value string) (Colour, error) {
	hex, ok := strings.CutPrefix(value, "#")
	if !ok {
		return Colour{}, fmt.Errorf("colour value %s does not start with #", value)
	}
	if len(hex) != 6 && len(hex) != 8 {
		return Colour{}, fmt.Errorf("colour value %s must have 6 or 8 hex digits", value)
	}
	var digits [4]uint8
	digits[3] = 0xFF
	for i := 0; i*2 < len(hex); i++ {
		hi, ok1 := hexDigit(hex[i*2])
		lo, ok2 := hexDigit(hex[i*2+1])
		if !ok1 || !ok2 {
			return Colour{}, fmt.Errorf("colour value %s contains a non-hex digit", value)
		}
		digits[i] = hi<<4 | lo
	}
	return Colour{R: digits[0], G: digits[1], B: digits[2], A: digits[3]}, nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}
