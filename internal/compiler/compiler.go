// Package compiler translates shorthand pattern source into standard
// regular-expression syntax by driving the lexer's translator chain.
package compiler

import (
	"fmt"
	"strings"

	"github.com/kolkov/fpat/internal/lexer"
	"github.com/kolkov/fpat/internal/token"
)

// Error reports shorthand source that no translator accepts.
type Error struct {
	Source    string     // Trimmed shorthand source
	Offset    int        // Byte offset of the first unconsumed character
	Remainder string     // Unconsumed source starting at Offset
	Near      token.Kind // Construct that starts at Offset but is malformed, or ILLEGAL
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("no translation for %q at offset %d", e.Remainder, e.Offset)
	if e.Near.IsTopLevel() {
		msg += fmt.Sprintf(" (malformed %s)", e.Near)
	}
	return msg
}

// Compile translates src in a single left-to-right pass. Translation is a
// pure function of src.
func Compile(src string) (string, error) {
	frags, err := Explain(src)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, f := range frags {
		sb.WriteString(f.Text)
	}
	return sb.String(), nil
}

// Explain returns the fragments Compile concatenates, in source order.
func Explain(src string) ([]token.Fragment, error) {
	l := lexer.New(src)
	var frags []token.Fragment
	for {
		f := l.Scan()
		switch f.Kind {
		case token.EOF:
			return frags, nil
		case token.ILLEGAL:
			return nil, &Error{
				Source:    l.Source(),
				Offset:    f.Span.Start,
				Remainder: f.Text,
				Near:      l.Near(),
			}
		}
		frags = append(frags, f)
	}
}
