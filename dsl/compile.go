package dsl

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Compile lowers the syntactic tree into the typed AST, classifying
// each slide's expressions into a single content root plus style
// blocks and enforcing kind, arity, naming, parameter and colour
// rules. The first violation aborts the whole document.
func Compile(doc *Document) (*Deck, error) {
	deck := &Deck{Slides: make([]*Slide, 0, len(doc.Slides))}
	for _, sn := range doc.Slides {
		slide, err := compileSlide(sn)
		if err != nil {
			return nil, err
		}
		deck.Slides = append(deck.Slides, slide)
	}
	return deck, nil
}

func compileSlide(sn *SlideNode) (*Slide, error) {
	slide := &Slide{Pos: sn.Pos}
	names := map[string]lexer.Position{}
	targets := map[string]lexer.Position{}

	for _, expr := range sn.Exprs {
		switch {
		case expr.Call != nil:
			if slide.Root != nil {
				return nil, &ParseError{
					Pos:     expr.Pos,
					Message: "multiple content roots: a slide holds exactly one content expression",
				}
			}
			root, err := compileContent(expr, names)
			if err != nil {
				return nil, err
			}
			slide.Root = root

		case expr.Params != nil:
			block, err := compileStyleBlock(expr, targets)
			if err != nil {
				return nil, err
			}
			slide.Styles = append(slide.Styles, block)

		default:
			return nil, &ParseError{Pos: expr.Target.Pos, Expected: `"(" or "{"`, Found: expr.Target.Text}
		}
	}

	if slide.Root == nil {
		return nil, &ParseError{Pos: sn.Pos, Expected: "a content expression"}
	}
	return slide, nil
}

func compileContent(expr *Expr, names map[string]lexer.Position) (*ContentNode, error) {
	kind, ok := ContentKind(expr.Target.Text)
	if !ok {
		return nil, &UnknownContentKindError{Pos: expr.Target.Pos, Token: expr.Target.Text}
	}

	if expr.Name != "" {
		if _, isKind := ContentKind(expr.Name); isKind {
			return nil, &ContentTypeNameError{Pos: expr.Pos, Word: expr.Name}
		}
		if _, dup := names[expr.Name]; dup {
			return nil, &DuplicateNameError{Pos: expr.Pos, Name: expr.Name}
		}
		names[expr.Name] = expr.Pos
	}

	node := &ContentNode{
		Kind: kind,
		Name: expr.Name,
		Pos:  expr.Pos,
	}

	if expr.Params != nil {
		params, err := compileProps(expr.Params)
		if err != nil {
			return nil, err
		}
		node.Params = params
	}

	args := expr.Call.Args
	switch kind {
	case KindText:
		if len(args) != 1 || args[0].Value == nil || args[0].Value.Str == nil {
			return nil, &ParseError{Pos: expr.Call.Pos, Expected: "exactly one string argument to text", Found: expr.Target.Text}
		}
		node.Text = string(*args[0].Value.Str)

	case KindCentre, KindPadding:
		if len(args) != 1 {
			return nil, &ParseError{Pos: expr.Call.Pos, Expected: "exactly one content argument to " + kind.String(), Found: expr.Target.Text}
		}
		child, err := compileContentArg(args[0], names)
		if err != nil {
			return nil, err
		}
		node.Children = []*ContentNode{child}

	case KindRow, KindColumn:
		if len(args) == 0 {
			return nil, &ParseError{Pos: expr.Call.Pos, Expected: "at least one content argument to " + kind.String(), Found: expr.Target.Text}
		}
		node.Children = make([]*ContentNode, 0, len(args))
		for _, arg := range args {
			child, err := compileContentArg(arg, names)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		}
	}

	return node, nil
}

func compileContentArg(arg *Arg, names map[string]lexer.Position) (*ContentNode, error) {
	if arg.Child == nil {
		return nil, &ParseError{Pos: arg.Pos, Expected: "a content expression", Found: literalText(arg.Value)}
	}
	if arg.Child.Call == nil {
		// A bare identifier in argument position can only be a
		// misspelled or incomplete content call.
		return nil, &ParseError{Pos: arg.Child.Target.Pos, Expected: "a content expression", Found: arg.Child.Target.Text}
	}
	return compileContent(arg.Child, names)
}

func compileStyleBlock(expr *Expr, targets map[string]lexer.Position) (*StyleBlock, error) {
	if expr.Name != "" {
		return nil, &ParseError{Pos: expr.Pos, Expected: "a style target identifier", Found: expr.Name + " ::"}
	}
	target := expr.Target.Text
	if _, dup := targets[target]; dup {
		return nil, &DuplicateStyleDefinitionError{Pos: expr.Pos, Target: target}
	}
	targets[target] = expr.Pos

	props, err := compileProps(expr.Params)
	if err != nil {
		return nil, err
	}
	return &StyleBlock{Pos: expr.Pos, Target: target, Props: props}, nil
}

func compileProps(block *ParamBlock) (map[string]PropertyValue, error) {
	props := make(map[string]PropertyValue, len(block.Entries))
	for _, entry := range block.Entries {
		value, err := compileValue(entry.Key, entry.Value)
		if err != nil {
			return nil, err
		}
		props[entry.Key] = value
	}
	return props, nil
}

func compileValue(key string, v *Value) (PropertyValue, error) {
	switch {
	case v.Str != nil:
		s := string(*v.Str)
		if strings.HasPrefix(s, "#") {
			c, err := ParseColour(s)
			if err != nil {
				return PropertyValue{}, &InvalidColourError{Pos: v.Pos, Value: s}
			}
			return ColourOf(c), nil
		}
		return String(s), nil

	case v.Number != nil:
		if v.Number.Neg {
			return PropertyValue{}, &InvalidParameterValueError{Pos: v.Pos, Key: key, Value: formatNumber(v.Number.Float())}
		}
		return Number(v.Number.Value), nil

	case v.Colour != nil:
		c, err := ParseColour(*v.Colour)
		if err != nil {
			return PropertyValue{}, &InvalidColourError{Pos: v.Pos, Value: *v.Colour}
		}
		return ColourOf(c), nil

	case v.Bool != nil:
		return Bool(bool(*v.Bool)), nil

	default:
		return PropertyValue{}, &ParseError{Pos: v.Pos, Expected: "a property value"}
	}
}

func literalText(v *Value) string {
	if v == nil {
		return ""
	}
	switch {
	case v.Str != nil:
		return string(*v.Str)
	case v.Number != nil:
		return formatNumber(v.Number.Float())
	case v.Colour != nil:
		return *v.Colour
	case v.Bool != nil:
		if *v.Bool {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}
