// Package engine adapts external regular-expression engines to the
// span-based interface the pattern layer executes against.
package engine

import (
	"fmt"
	"strings"
)

// Kind selects the engine that executes a translated pattern.
type Kind uint8

const (
	// Backtrack executes .NET-style syntax (lookaround, atomic groups,
	// backreferences, inline comments) with dlclark/regexp2.
	Backtrack Kind = iota
	// Linear executes RE2-style syntax with coregex in linear time.
	Linear
)

// String returns the engine name.
func (k Kind) String() string {
	switch k {
	case Backtrack:
		return "backtrack"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// ParseKind converts an engine name into a Kind. The empty string selects
// Backtrack.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "backtrack", "regexp2":
		return Backtrack, nil
	case "linear", "coregex":
		return Linear, nil
	default:
		return Backtrack, fmt.Errorf("unknown engine %q", s)
	}
}

// Options are the matching options of a compiled pattern.
type Options struct {
	IgnoreCase bool
	Multiline  bool
}

// String returns the inline flag letters, e.g. "im".
func (o Options) String() string {
	var sb strings.Builder
	if o.IgnoreCase {
		sb.WriteByte('i')
	}
	if o.Multiline {
		sb.WriteByte('m')
	}
	return sb.String()
}

// Span is a half-open byte range of the subject. A group that did not
// participate in a match has Start == End == -1.
type Span struct {
	Start int
	End   int
}

// Matched reports whether the group participated in the match.
func (s Span) Matched() bool {
	return s.Start >= 0
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	if !s.Matched() {
		return 0
	}
	return s.End - s.Start
}

var noSpan = Span{Start: -1, End: -1}

// Regex is a compiled pattern. Implementations are safe for concurrent use.
type Regex interface {
	// Text returns the pattern text as compiled.
	Text() string
	// Options returns the options the pattern was compiled with.
	Options() Options
	// Kind returns the engine executing the pattern.
	Kind() Kind
	// GroupNames returns one name per group, group 0 first. Unnamed groups
	// are reported by the engine as their decimal number or as "".
	GroupNames() []string
	// FindAll returns every non-overlapping match of s in order. Each match
	// holds the spans of its groups, group 0 first.
	FindAll(s string) ([][]Span, error)
	// MatchString reports whether s contains a match.
	MatchString(s string) (bool, error)
}

// CompileError reports text an engine rejected.
type CompileError struct {
	Text string
	Kind Kind
	Err  error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s engine: cannot compile %q: %v", e.Kind, e.Text, e.Err)
}

// Unwrap returns the engine error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// Compile compiles text with the selected engine.
func Compile(text string, opts Options, kind Kind) (re Regex, err error) {
	defer func() {
		if r := recover(); r != nil {
			re, err = nil, &CompileError{Text: text, Kind: kind, Err: fmt.Errorf("engine fault: %v", r)}
		}
	}()

	switch kind {
	case Linear:
		re, err = compileLinear(text, opts)
	default:
		re, err = compileBacktrack(text, opts)
	}
	if err != nil {
		return nil, &CompileError{Text: text, Kind: kind, Err: err}
	}
	return re, nil
}

// MustCompile is like Compile but panics if the text cannot be compiled.
func MustCompile(text string, opts Options, kind Kind) Regex {
	re, err := Compile(text, opts, kind)
	if err != nil {
		panic(err)
	}
	return re
}

// recoverFault converts an engine panic into an error.
func recoverFault(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("engine fault: %v", r)
	}
}
