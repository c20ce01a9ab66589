// Package token defines the constructs of the shorthand pattern language.
package token

import "fmt"

// Kind identifies a shorthand construct recognized by one translator.
type Kind uint8

const (
	ILLEGAL Kind = iota // <illegal>
	EOF                 // EOF

	// Top-level constructs
	topStart
	COMMENT       // comment
	QUOTED        // quoted
	NAMED_GROUP   // named-group
	NAMED_BACKREF // named-backref
	BACKREF       // backref
	REMAINDER     // remainder
	CLASS         // class
	SPAN_BREAK    // span-break
	SLASH_CLASS   // slash-class
	OUTSIDE       // outside
	QUOTE_MARKER  // quote-marker
	QUANTIFIER    // quantifier
	GROUP         // group
	PASSTHROUGH   // passthrough
	topEnd

	// Constructs valid only inside a character class
	classStart
	CLASS_STRING // class-string
	CLASS_SLASH  // class-slash
	INSIDE       // inside
	RAW_CHAR     // raw-char
	NAMED_CLASS  // named-class
	CLASS_MARKER // class-marker
	CLASS_END    // class-end
	classEnd
)

var kindNames = [...]string{
	ILLEGAL:       "<illegal>",
	EOF:           "EOF",
	COMMENT:       "comment",
	QUOTED:        "quoted",
	NAMED_GROUP:   "named-group",
	NAMED_BACKREF: "named-backref",
	BACKREF:       "backref",
	REMAINDER:     "remainder",
	CLASS:         "class",
	SPAN_BREAK:    "span-break",
	SLASH_CLASS:   "slash-class",
	OUTSIDE:       "outside",
	QUOTE_MARKER:  "quote-marker",
	QUANTIFIER:    "quantifier",
	GROUP:         "group",
	PASSTHROUGH:   "passthrough",
	CLASS_STRING:  "class-string",
	CLASS_SLASH:   "class-slash",
	INSIDE:        "inside",
	RAW_CHAR:      "raw-char",
	NAMED_CLASS:   "named-class",
	CLASS_MARKER:  "class-marker",
	CLASS_END:     "class-end",
}

// String returns the construct name.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsTopLevel returns true if the construct may appear outside a character class.
func (k Kind) IsTopLevel() bool {
	return k > topStart && k < topEnd
}

// IsClassMember returns true if the construct is only valid inside a character class.
func (k Kind) IsClassMember() bool {
	return k > classStart && k < classEnd
}

// Span is a half-open byte range [Start, End) of shorthand source.
type Span struct {
	Start int
	End   int
}

// Len returns the number of source bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// String returns "start:end".
func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Start, s.End)
}

// Fragment is the output of one translator: the construct it recognized,
// the source it consumed and the standard-syntax text it emitted.
type Fragment struct {
	Kind Kind
	Span Span
	Text string
}
