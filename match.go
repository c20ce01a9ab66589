package fpat

import (
	"fmt"
	"strconv"

	"github.com/kolkov/fpat/internal/engine"
	"github.com/kolkov/fpat/internal/slicer"
)

// Group is a captured window of the input. Offsets are bytes of the
// original, unedited input.
type Group struct {
	Index   int    // Byte offset; -1 if the group did not participate
	Length  int    // Length in bytes
	Text    string // Captured text at match time
	Ordinal int    // Position among the groups of its match; 0 is the whole match
	Success bool   // Whether the group participated in the match
}

// End returns the offset just past the group.
func (g Group) End() int {
	return g.Index + g.Length
}

// Match is one occurrence of a pattern. The embedded Group is group 0.
type Match struct {
	Group
	Groups  []Group // Groups[0] is the whole match
	Ordinal int     // Position among the matches of its result
}

// MatchResult is the outcome of executing a Pattern against an input.
// Reads return the current content of a window, including edits made
// through the result; edits never move the recorded offsets of other
// windows. The rendered text is produced by Render.
//
// A MatchResult is not safe for concurrent use.
type MatchResult struct {
	pattern *Pattern
	input   string
	matches []*Match
	names   []string // group index to name, "" when unnamed
	index   map[string]int
	slicer  *slicer.Slicer
}

func newMatchResult(p *Pattern, groupNames []string, input string, spans [][]engine.Span) *MatchResult {
	r := &MatchResult{
		pattern: p,
		input:   input,
		names:   make([]string, len(groupNames)),
		index:   make(map[string]int),
		slicer:  slicer.New(input),
	}
	for i, name := range groupNames {
		if name == "" || isNumeric(name) {
			continue
		}
		r.names[i] = name
		r.index[name] = i
	}

	r.matches = make([]*Match, len(spans))
	for i, gs := range spans {
		m := &Match{Groups: make([]Group, len(gs)), Ordinal: i}
		for j, s := range gs {
			g := Group{Index: -1, Ordinal: j}
			if s.Matched() {
				g = Group{
					Index:   s.Start,
					Length:  s.Len(),
					Text:    input[s.Start:s.End],
					Ordinal: j,
					Success: true,
				}
			}
			m.Groups[j] = g
		}
		m.Group = m.Groups[0]
		r.matches[i] = m
	}
	return r
}

func isNumeric(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// Pattern returns the pattern that produced the result.
func (r *MatchResult) Pattern() *Pattern {
	return r.pattern
}

// Input returns the original input.
func (r *MatchResult) Input() string {
	return r.input
}

// Len returns the number of matches.
func (r *MatchResult) Len() int {
	return len(r.matches)
}

// Matches returns the matches in input order.
func (r *MatchResult) Matches() []*Match {
	return r.matches
}

// Match returns match m. It panics if m is out of range.
func (r *MatchResult) Match(m int) *Match {
	if m < 0 || m >= len(r.matches) {
		panic(fmt.Sprintf("fpat: match %d out of range [0,%d)", m, len(r.matches)))
	}
	return r.matches[m]
}

// Group returns group g of match m. It panics if either is out of range.
func (r *MatchResult) Group(m, g int) Group {
	match := r.Match(m)
	if g < 0 || g >= len(match.Groups) {
		panic(fmt.Sprintf("fpat: group %d out of range [0,%d)", g, len(match.Groups)))
	}
	return match.Groups[g]
}

// GroupByName returns the named group of match m. It panics if the name
// is not declared by the pattern.
func (r *MatchResult) GroupByName(m int, name string) Group {
	return r.Group(m, r.mustIndex(name))
}

// Index returns the group index of a named group.
func (r *MatchResult) Index(name string) (int, bool) {
	i, ok := r.index[name]
	return i, ok
}

func (r *MatchResult) mustIndex(name string) int {
	i, ok := r.index[name]
	if !ok {
		panic(fmt.Sprintf("fpat: unknown group name %q", name))
	}
	return i
}

// Name returns the name of group index g, or "" for an unnamed group.
// It panics if g is out of range.
func (r *MatchResult) Name(g int) string {
	if g < 0 || g >= len(r.names) {
		panic(fmt.Sprintf("fpat: group %d out of range [0,%d)", g, len(r.names)))
	}
	return r.names[g]
}

// Names returns the named groups in group index order.
func (r *MatchResult) Names() []string {
	var names []string
	for _, n := range r.names {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

// Value returns the current text of match m.
func (r *MatchResult) Value(m int) string {
	return r.Text(m, 0)
}

// Text returns the current text of group g of match m. A group that did
// not participate reads as "".
func (r *MatchResult) Text(m, g int) string {
	grp := r.Group(m, g)
	if !grp.Success {
		return ""
	}
	return r.slicer.Get(grp.Index, grp.Length)
}

// TextByName returns the current text of the named group of match m.
func (r *MatchResult) TextByName(m int, name string) string {
	return r.Text(m, r.mustIndex(name))
}

// SetValue replaces the text of match m.
func (r *MatchResult) SetValue(m int, value string) {
	r.SetText(m, 0, value)
}

// SetText replaces the text of group g of match m. It panics if the group
// did not participate in the match.
func (r *MatchResult) SetText(m, g int, value string) {
	grp := r.Group(m, g)
	if !grp.Success {
		panic(fmt.Sprintf("fpat: group %d of match %d did not participate", g, m))
	}
	r.slicer.Set(grp.Index, grp.Length, value)
}

// SetTextByName replaces the text of the named group of match m.
func (r *MatchResult) SetTextByName(m int, name, value string) {
	r.SetText(m, r.mustIndex(name), value)
}

// EditMatches calls fn for every match with its current text and applies
// the replacements fn returns. It returns the number of edits.
func (r *MatchResult) EditMatches(fn func(m *Match, text string) (string, bool)) int {
	n := 0
	for _, m := range r.matches {
		if s, ok := fn(m, r.Text(m.Ordinal, 0)); ok {
			r.SetText(m.Ordinal, 0, s)
			n++
		}
	}
	return n
}

// EditGroups calls fn for every participating group of every match and
// applies the replacements fn returns. Group 0 is skipped when skipWhole
// is set. It returns the number of edits.
func (r *MatchResult) EditGroups(skipWhole bool, fn func(m *Match, g Group, text string) (string, bool)) int {
	n := 0
	for _, m := range r.matches {
		for _, g := range m.Groups {
			if !g.Success || (skipWhole && g.Ordinal == 0) {
				continue
			}
			if s, ok := fn(m, g, r.Text(m.Ordinal, g.Ordinal)); ok {
				r.SetText(m.Ordinal, g.Ordinal, s)
				n++
			}
		}
	}
	return n
}

// Edited reports whether any window was edited.
func (r *MatchResult) Edited() bool {
	return r.slicer.Edited()
}

// Reset discards every edit, so that reads return the matched text again.
func (r *MatchResult) Reset() {
	r.slicer.Reset()
}

// Render returns the input with every edit applied. Edited windows must
// be disjoint; otherwise Render fails with ErrOverlap.
func (r *MatchResult) Render() (string, error) {
	return r.slicer.Render()
}
