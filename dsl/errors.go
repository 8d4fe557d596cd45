package dsl

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Errors carry the source position of the offence so callers can point
// the author at the exact spot. All compile-stage failures abort the
// whole document: slide boundaries are only reliably known post-parse.

// LexError reports an unrecognized character in the source.
type LexError struct {
	Pos    lexer.Position
	Reason string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Reason)
}

// ParseError reports a grammar or structural violation. Message, when
// set, overrides the expected/found rendering.
type ParseError struct {
	Pos      lexer.Position
	Expected string
	Found    string
	Message  string
}

func (e *ParseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	if e.Found == "" {
		return fmt.Sprintf("%s: expected %s but the file ended abruptly", e.Pos, e.Expected)
	}
	return fmt.Sprintf("%s: expected %s, got %q", e.Pos, e.Expected, e.Found)
}

// UnknownContentKindError reports an identifier called as content that
// is not one of the five content kinds.
type UnknownContentKindError struct {
	Pos   lexer.Position
	Token string
}

func (e *UnknownContentKindError) Error() string {
	return fmt.Sprintf("%s: expected content type but got token %q instead", e.Pos, e.Token)
}

// InvalidParameterValueError reports a parameter whose value is out of
// range, currently always a negative number.
type InvalidParameterValueError struct {
	Pos   lexer.Position
	Key   string
	Value string
}

func (e *InvalidParameterValueError) Error() string {
	return fmt.Sprintf("%s: invalid value %s for parameter %q", e.Pos, e.Value, e.Key)
}

// InvalidColourError reports a colour string that does not match
// #RRGGBB or #RRGGBBAA.
type InvalidColourError struct {
	Pos   lexer.Position
	Value string
}

func (e *InvalidColourError) Error() string {
	return fmt.Sprintf("%s: colour value %q cannot be parsed", e.Pos, e.Value)
}

// ContentTypeNameError reports the use of a content kind word as an
// element name.
type ContentTypeNameError struct {
	Pos  lexer.Position
	Word string
}

func (e *ContentTypeNameError) Error() string {
	return fmt.Sprintf("%s: erroneous usage of %q, which is the name of a content type, in a disallowed context", e.Pos, e.Word)
}

// DuplicateStyleDefinitionError reports two style blocks for the same
// target within one slide.
type DuplicateStyleDefinitionError struct {
	Pos    lexer.Position
	Target string
}

func (e *DuplicateStyleDefinitionError) Error() string {
	return fmt.Sprintf("%s: duplicate style definition for %q", e.Pos, e.Target)
}

// DuplicateNameError reports two elements sharing a name within one
// slide, which would make named style targets ambiguous.
type DuplicateNameError struct {
	Pos  lexer.Position
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s: element name %q is already in use", e.Pos, e.Name)
}

// convertError maps participle's lexer and parser errors onto this
// package's error kinds, preserving positions.
func convertError(err error) error {
	if err == nil {
		return nil
	}
	var lerr *lexer.Error
	if errors.As(err, &lerr) {
		return &LexError{Pos: lerr.Pos, Reason: lerr.Msg}
	}
	var uerr *participle.UnexpectedTokenError
	if errors.As(err, &uerr) {
		found := uerr.Unexpected.Value
		if uerr.Unexpected.EOF() {
			found = ""
		}
		return &ParseError{Pos: uerr.Unexpected.Pos, Expected: uerr.Expect, Found: found}
	}
	var perr participle.Error
	if errors.As(err, &perr) {
		return &ParseError{Pos: perr.Position(), Message: perr.Message()}
	}
	return err
}
