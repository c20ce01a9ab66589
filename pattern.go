package fpat

import (
	"github.com/kolkov/fpat/internal/engine"
)

// Options are the matching options of a Pattern.
type Options = engine.Options

// Pattern is a compiled pattern: translated text, matching options and
// whether the text came from shorthand. Patterns are immutable and safe
// for concurrent use. Patterns with equal text and options share one
// engine instance.
type Pattern struct {
	env       *Env
	raw       string // body as written, without flag suffix
	text      string
	opts      Options
	shorthand bool
}

// Text returns the translated pattern text executed by the engine.
func (p *Pattern) Text() string {
	return p.text
}

// Source returns the pattern body as written, without the flag suffix.
func (p *Pattern) Source() string {
	return p.raw
}

// Options returns the matching options.
func (p *Pattern) Options() Options {
	return p.opts
}

// IsShorthand reports whether Text was translated from shorthand.
func (p *Pattern) IsShorthand() bool {
	return p.shorthand
}

// String returns the translated text followed by its flag suffix.
func (p *Pattern) String() string {
	flags := p.opts.String()
	if p.shorthand {
		flags += "f"
	} else {
		flags += "u"
	}
	return p.text + "; " + flags
}

// Equal reports whether p and q have the same text, options and
// shorthand flag.
func (p *Pattern) Equal(q *Pattern) bool {
	if p == nil || q == nil {
		return p == q
	}
	return p.text == q.text && p.opts == q.opts && p.shorthand == q.shorthand
}

func (p *Pattern) with(fn func(*Pattern)) *Pattern {
	q := *p
	fn(&q)
	return &q
}

// WithIgnoreCase returns a copy of p with case-insensitive matching on or off.
func (p *Pattern) WithIgnoreCase(on bool) *Pattern {
	return p.with(func(q *Pattern) { q.opts.IgnoreCase = on })
}

// WithMultiline returns a copy of p with multiline mode on or off.
func (p *Pattern) WithMultiline(on bool) *Pattern {
	return p.with(func(q *Pattern) { q.opts.Multiline = on })
}

// Transform returns a copy of p whose text is fn applied to p's text.
func (p *Pattern) Transform(fn func(string) string) *Pattern {
	return p.with(func(q *Pattern) { q.text = fn(p.text) })
}

// Native returns a copy of p that treats its source as standard syntax.
// Native patterns are returned unchanged.
func (p *Pattern) Native() *Pattern {
	if !p.shorthand {
		return p
	}
	return p.with(func(q *Pattern) {
		q.text = p.raw
		q.shorthand = false
	})
}

// Shorthand returns a copy of p whose source is translated as shorthand.
// Shorthand patterns are returned unchanged.
func (p *Pattern) Shorthand() (*Pattern, error) {
	if p.shorthand {
		return p, nil
	}
	text, err := p.env.Translate(p.raw)
	if err != nil {
		return nil, err
	}
	return p.with(func(q *Pattern) {
		q.text = text
		q.shorthand = true
	}), nil
}

// Validate compiles the engine for p and reports an engine fault as a
// *MatchError.
func (p *Pattern) Validate() error {
	_, err := p.regex()
	return err
}

func (p *Pattern) regex() (engine.Regex, error) {
	re, err := p.env.regex(p.text, p.opts)
	if err != nil {
		return nil, &MatchError{Pattern: p.text, Err: err}
	}
	return re, nil
}

// IsMatch reports whether input contains a match of p.
func (p *Pattern) IsMatch(input string) (bool, error) {
	re, err := p.regex()
	if err != nil {
		return false, err
	}
	ok, err := re.MatchString(input)
	if err != nil {
		return false, &MatchError{Pattern: p.text, Err: err}
	}
	return ok, nil
}

// Match executes p against input and collects every non-overlapping match.
// It returns nil, nil when there is no match; a non-nil error is always a
// *MatchError.
func (p *Pattern) Match(input string) (*MatchResult, error) {
	re, err := p.regex()
	if err != nil {
		return nil, err
	}
	spans, err := re.FindAll(input)
	if err != nil {
		return nil, &MatchError{Pattern: p.text, Err: err}
	}
	if len(spans) == 0 {
		return nil, nil
	}
	return newMatchResult(p, re.GroupNames(), input, spans), nil
}
