package dsl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	dslLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Define", Pattern: `::`},
		{Name: "Colour", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6})`},
		{Name: "Number", Pattern: `\d+(?:\.\d+)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[][(){}:,\-]`},
	})

	tokenNames          = invertSymbols(dslLexer.Symbols())
	whitespaceTokenType = mustTokenType("Whitespace")
	commentTokenType    = mustTokenType("LineComment")
	stringTokenType     = mustTokenType("String")

	documentParser = participle.MustBuild[Document](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment"),
		participle.UseLookahead(2),
	)
)

// Document is the syntactic root: a sequence of slide blocks as they
// appear in the source, before semantic checking.
type Document struct {
	Pos    lexer.Position `parser:""`
	Slides []*SlideNode   `parser:"( @@ )*"`
}

// SlideNode is one `[ ... ]` block. Its expressions are classified into
// the content root and style blocks by Compile.
type SlideNode struct {
	Pos   lexer.Position `parser:""`
	Exprs []*Expr        `parser:"'[' ( @@ )* ']'"`
}

// Expr is the loose shape shared by content expressions and style
// blocks: an optionally named identifier with optional call arguments
// and an optional parameter block.
type Expr struct {
	Pos    lexer.Position `parser:""`
	Name   string         `parser:"( @Ident '::' )?"`
	Target *IdentTok      `parser:"@@"`
	Call   *ArgList       `parser:"( @@ )?"`
	Params *ParamBlock    `parser:"( @@ )?"`
}

// IdentTok is an identifier that remembers where it was.
type IdentTok struct {
	Pos  lexer.Position `parser:""`
	Text string         `parser:"@Ident"`
}

// ArgList is a parenthesized, comma-separated argument list.
type ArgList struct {
	Pos  lexer.Position `parser:""`
	Args []*Arg         `parser:"'(' ( @@ ( ',' @@ )* )? ')'"`
}

// Arg is either a nested content expression or a literal value.
type Arg struct {
	Pos   lexer.Position `parser:""`
	Child *Expr          `parser:"  @@"`
	Value *Value         `parser:"| @@"`
}

// ParamBlock is a `{ key: value, ... }` group. The same syntax serves
// style blocks and inline per-node parameters.
type ParamBlock struct {
	Pos     lexer.Position `parser:""`
	Entries []*Param       `parser:"'{' ( @@ ( ',' )? )* '}'"`
}

// Param is a single key/value entry inside a ParamBlock.
type Param struct {
	Pos   lexer.Position `parser:""`
	Key   string         `parser:"@Ident"`
	Value *Value         `parser:"':' @@"`
}

// Value is a literal property value.
type Value struct {
	Pos    lexer.Position `parser:""`
	Str    *StringLiteral `parser:"  @String"`
	Number *NumberLit     `parser:"| @@"`
	Colour *string        `parser:"| @Colour"`
	Bool   *BoolLit       `parser:"| @('true' | 'false')"`
}

// NumberLit keeps the sign separate so that negative parameters can be
// rejected with a dedicated error instead of a generic grammar failure.
type NumberLit struct {
	Neg   bool    `parser:"( @'-' )?"`
	Value float64 `parser:"@Number"`
}

// Float returns the signed numeric value.
func (n *NumberLit) Float() float64 {
	if n.Neg {
		return -n.Value
	}
	return n.Value
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// BoolLit captures the true/false keywords.
type BoolLit bool

// Capture implements participle.Capture.
func (b *BoolLit) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("boolean literal capture requires value")
	}
	val, err := strconv.ParseBool(values[0])
	if err != nil {
		return err
	}
	*b = BoolLit(val)
	return nil
}

// Parse reads slide source from r and returns the compiled deck.
func Parse(r io.Reader) (*Deck, error) {
	doc, err := documentParser.Parse("", r)
	if err != nil {
		return nil, convertError(err)
	}
	return Compile(doc)
}

// ParseString parses slide source from a string.
func ParseString(input string) (*Deck, error) {
	return Parse(strings.NewReader(input))
}

// ParseDocument returns the syntactic tree without semantic checking.
func ParseDocument(input string) (*Document, error) {
	doc, err := documentParser.ParseString("", input)
	if err != nil {
		return nil, convertError(err)
	}
	return doc, nil
}

// Lexeme captures a single lexical token.
type Lexeme struct {
	Type  string         `json:"type"`
	Value string         `json:"value"`
	Raw   string         `json:"raw"`
	Pos   lexer.Position `json:"-"`
}

// Lex tokenizes input, dropping whitespace and comments. It fails with
// *LexError on the first unrecognized character.
func Lex(input string) ([]Lexeme, error) {
	lx, err := dslLexer.Lex("", strings.NewReader(input))
	if err != nil {
		return nil, convertError(err)
	}
	var out []Lexeme
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, convertError(err)
		}
		if tok.EOF() {
			return out, nil
		}
		if tok.Type == whitespaceTokenType || tok.Type == commentTokenType {
			continue
		}
		lexeme, err := newLexeme(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, lexeme)
	}
}

func newLexeme(tok lexer.Token) (Lexeme, error) {
	name, ok := tokenNames[tok.Type]
	if !ok {
		name = fmt.Sprintf("#%d", tok.Type)
	}
	val := tok.Value
	if tok.Type == stringTokenType {
		unquoted, err := strconv.Unquote(tok.Value)
		if err != nil {
			return Lexeme{}, err
		}
		val = unquoted
	}

	return Lexeme{
		Type:  name,
		Value: val,
		Raw:   tok.Value,
		Pos:   tok.Pos,
	}, nil
}

func invertSymbols(symbols map[string]lexer.TokenType) map[lexer.TokenType]string {
	out := make(map[lexer.TokenType]string, len(symbols))
	for name, tt := range symbols {
		out[tt] = name
	}
	return out
}

func mustTokenType(name string) lexer.TokenType {
	symbols := dslLexer.Symbols()
	tt, ok := symbols[name]
	if !ok {
		panic(fmt.Sprintf("token %s not defined", name))
	}
	return tt
}
