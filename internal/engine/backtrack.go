package engine

import (
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// backtrack wraps a regexp2 pattern. regexp2 reports rune offsets; they
// are converted to byte offsets before leaving this file.
type backtrack struct {
	text  string
	opts  Options
	re    *regexp2.Regexp
	names []string
}

func compileBacktrack(text string, opts Options) (*backtrack, error) {
	flags := regexp2.None
	if opts.IgnoreCase {
		flags |= regexp2.IgnoreCase
	}
	if opts.Multiline {
		flags |= regexp2.Multiline
	}
	re, err := regexp2.Compile(text, flags)
	if err != nil {
		return nil, err
	}

	numbers := re.GetGroupNumbers()
	names := make([]string, len(numbers))
	for i, n := range numbers {
		names[i] = re.GroupNameFromNumber(n)
	}
	return &backtrack{text: text, opts: opts, re: re, names: names}, nil
}

func (b *backtrack) Text() string         { return b.text }
func (b *backtrack) Options() Options     { return b.opts }
func (b *backtrack) Kind() Kind           { return Backtrack }
func (b *backtrack) GroupNames() []string { return append([]string(nil), b.names...) }

func (b *backtrack) MatchString(s string) (ok bool, err error) {
	defer recoverFault(&err)
	return b.re.MatchString(s)
}

func (b *backtrack) FindAll(s string) (matches [][]Span, err error) {
	defer recoverFault(&err)

	offsets := runeOffsets(s)
	m, err := b.re.FindStringMatch(s)
	for m != nil && err == nil {
		groups := m.Groups()
		spans := make([]Span, len(groups))
		for i, g := range groups {
			if len(g.Captures) == 0 {
				spans[i] = noSpan
				continue
			}
			spans[i] = Span{
				Start: offsets.byteAt(g.Index),
				End:   offsets.byteAt(g.Index + g.Length),
			}
		}
		matches = append(matches, spans)
		m, err = b.re.FindNextMatch(m)
	}
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// runeTable maps rune indexes of a string to byte offsets. A nil table
// means the string is ASCII and both coincide.
type runeTable []int

func runeOffsets(s string) runeTable {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return nil
	}
	t := make(runeTable, 0, len(s)+1)
	for i := range s {
		t = append(t, i)
	}
	return append(t, len(s))
}

func (t runeTable) byteAt(runeIndex int) int {
	if t == nil {
		return runeIndex
	}
	return t[runeIndex]
}
