package engine

import (
	"github.com/coregx/coregex"
)

// linear wraps a coregex pattern. Options are applied as an inline flag
// prefix; reported offsets are already in bytes.
type linear struct {
	text  string
	opts  Options
	re    *coregex.Regexp
	names []string
}

func compileLinear(text string, opts Options) (*linear, error) {
	src := text
	if flags := opts.String(); flags != "" {
		src = "(?" + flags + ")" + text
	}
	re, err := coregex.Compile(src)
	if err != nil {
		return nil, err
	}
	return &linear{text: text, opts: opts, re: re, names: re.SubexpNames()}, nil
}

func (l *linear) Text() string         { return l.text }
func (l *linear) Options() Options     { return l.opts }
func (l *linear) Kind() Kind           { return Linear }
func (l *linear) GroupNames() []string { return append([]string(nil), l.names...) }

func (l *linear) MatchString(s string) (ok bool, err error) {
	defer recoverFault(&err)
	return l.re.MatchString(s), nil
}

func (l *linear) FindAll(s string) (matches [][]Span, err error) {
	defer recoverFault(&err)

	for _, loc := range l.re.FindAllStringSubmatchIndex(s, -1) {
		spans := make([]Span, len(loc)/2)
		for i := range spans {
			if loc[2*i] < 0 {
				spans[i] = noSpan
				continue
			}
			spans[i] = Span{Start: loc[2*i], End: loc[2*i+1]}
		}
		matches = append(matches, spans)
	}
	return matches, nil
}
