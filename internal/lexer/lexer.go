// Package lexer provides the token translators of the shorthand pattern
// language and a Lexer that drives them over a source string.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/kolkov/fpat/internal/token"
)

// parseFunc translates the construct whose recognizer matched src[start:end].
// It returns the emitted text and the offset just past the consumed source,
// which may lie beyond end when the construct has a body.
type parseFunc func(src string, start, end int, m *regexp2.Match) (text string, next int, ok bool)

// Translator recognizes one shorthand construct and emits its
// standard-syntax equivalent.
type Translator struct {
	Kind  token.Kind
	recog *regexp2.Regexp
	parse parseFunc
}

// newTranslator builds a translator whose recognizer is expr anchored at
// the start of the remaining source, with leading whitespace allowed.
func newTranslator(kind token.Kind, expr string, parse parseFunc) *Translator {
	return &Translator{
		Kind:  kind,
		recog: regexp2.MustCompile(`\A\s*(?:`+expr+`)`, regexp2.None),
		parse: parse,
	}
}

// Recognize reports whether the construct starts at src[pos:], ignoring
// leading whitespace. An empty recognition does not count.
func (t *Translator) Recognize(src string, pos int) bool {
	_, ok := t.recognize(src, pos)
	return ok
}

func (t *Translator) recognize(src string, pos int) (*regexp2.Match, bool) {
	if pos > len(src) {
		return nil, false
	}
	m, err := t.recog.FindStringMatch(src[pos:])
	if err != nil || m == nil || len(m.String()) == leadingSpace(src[pos:]) {
		return nil, false
	}
	return m, true
}

// Translate tries the translator at *pos. On success it returns the
// fragment and advances *pos past the consumed source; on failure *pos is
// left untouched.
func (t *Translator) Translate(src string, pos *int) (token.Fragment, bool) {
	m, ok := t.recognize(src, *pos)
	if !ok {
		return token.Fragment{}, false
	}
	start := *pos + leadingSpace(src[*pos:])
	end := *pos + len(m.String())
	text, next, ok := t.parse(src, start, end, m)
	if !ok {
		return token.Fragment{}, false
	}
	*pos = next
	return token.Fragment{
		Kind: t.Kind,
		Span: token.Span{Start: start, End: next},
		Text: text,
	}, true
}

// Lexer scans a shorthand source into translated fragments.
type Lexer struct {
	src   string
	pos   int
	chain []*Translator
}

// New creates a Lexer over the trimmed source using the top-level chain.
func New(src string) *Lexer {
	return &Lexer{
		src:   strings.TrimSpace(src),
		chain: topChain,
	}
}

// Source returns the trimmed source being scanned.
func (l *Lexer) Source() string {
	return l.src
}

// Pos returns the current byte offset in Source.
func (l *Lexer) Pos() int {
	return l.pos
}

// Scan returns the next fragment. At the end of the source it returns an
// EOF fragment; when no translator accepts the remaining source it returns
// an ILLEGAL fragment spanning the unconsumed remainder and does not move.
func (l *Lexer) Scan() token.Fragment {
	l.pos += leadingSpace(l.src[l.pos:])
	if l.pos >= len(l.src) {
		return token.Fragment{Kind: token.EOF, Span: token.Span{Start: l.pos, End: l.pos}}
	}
	for _, t := range l.chain {
		if f, ok := t.Translate(l.src, &l.pos); ok {
			return f
		}
	}
	return token.Fragment{
		Kind: token.ILLEGAL,
		Span: token.Span{Start: l.pos, End: len(l.src)},
		Text: l.src[l.pos:],
	}
}

// Near returns the kind of the first translator whose recognizer accepts
// the source at the current offset, or ILLEGAL. After Scan returns an
// ILLEGAL fragment it names the construct that started there but was
// malformed.
func (l *Lexer) Near() token.Kind {
	for _, t := range l.chain {
		if t.Recognize(l.src, l.pos) {
			return t.Kind
		}
	}
	return token.ILLEGAL
}

// Chain returns the top-level translators in priority order.
func Chain() []*Translator {
	return append([]*Translator(nil), topChain...)
}

// ClassChain returns the character class sub-chain in priority order.
func ClassChain() []*Translator {
	return append([]*Translator(nil), classChain...)
}

func leadingSpace(s string) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !unicode.IsSpace(r) {
			break
		}
		n += size
	}
	return n
}
