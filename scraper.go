package fpat

import "maps"

// Stack holds the child scrapers of one scraping session. A Stack is not
// safe for concurrent use; give each session its own.
type Stack struct {
	frames []*Scraper
}

// NewStack creates an empty Stack.
func NewStack() *Stack {
	return &Stack{}
}

// Len returns the number of pushed scrapers.
func (s *Stack) Len() int {
	return len(s.frames)
}

// Scraper extracts named values from a text by consuming it piece by
// piece. Patterns given to Match, Skip and Push are matched against the
// remaining text and should be anchored to its start; the cursor moves by
// the length of the match.
type Scraper struct {
	src    *Source
	vars   map[string]string
	stack  *Stack
	parent *Scraper
}

// NewScraper creates a Scraper over text. If stack is nil a new Stack is
// created for the session.
func NewScraper(text string, stack *Stack) *Scraper {
	if stack == nil {
		stack = NewStack()
	}
	return &Scraper{src: NewSource(text), vars: make(map[string]string), stack: stack}
}

// Source returns the cursor of the scraper.
func (s *Scraper) Source() *Source {
	return s.src
}

// Stack returns the stack shared by the session.
func (s *Scraper) Stack() *Stack {
	return s.stack
}

// Remaining returns the unconsumed text.
func (s *Scraper) Remaining() string {
	return s.src.Current()
}

// Var returns the value of a variable.
func (s *Scraper) Var(name string) (string, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Vars returns a copy of all variables.
func (s *Scraper) Vars() map[string]string {
	return maps.Clone(s.vars)
}

// Set assigns a variable.
func (s *Scraper) Set(name, value string) {
	s.vars[name] = value
}

// first matches p against the remaining text.
func (s *Scraper) first(p *Pattern) (*MatchResult, error) {
	r, err := p.Match(s.src.Current())
	if err != nil || r == nil {
		return nil, err
	}
	return r, nil
}

// Match matches p against the remaining text, assigns groups 1..n of the
// first match to names in order and consumes the match. Extra names or
// extra groups are ignored; an empty name skips its group. It reports
// false and leaves the cursor alone when p does not match.
func (s *Scraper) Match(p *Pattern, names ...string) (bool, error) {
	r, err := s.first(p)
	if err != nil || r == nil {
		return false, err
	}
	m := r.Match(0)
	for i, name := range names {
		if i+1 >= len(m.Groups) {
			break
		}
		if name != "" {
			s.vars[name] = r.Text(0, i+1)
		}
	}
	s.src.Advance(m.Length)
	return true, nil
}

// MatchNamed is like Match but assigns every named group of the pattern
// to a variable of the same name.
func (s *Scraper) MatchNamed(p *Pattern) (bool, error) {
	r, err := s.first(p)
	if err != nil || r == nil {
		return false, err
	}
	for _, name := range r.Names() {
		s.vars[name] = r.TextByName(0, name)
	}
	s.src.Advance(r.Match(0).Length)
	return true, nil
}

// Skip consumes the first match of p without capturing. It reports false
// when p does not match.
func (s *Scraper) Skip(p *Pattern) (bool, error) {
	r, err := s.first(p)
	if err != nil || r == nil {
		return false, err
	}
	s.src.Advance(r.Match(0).Length)
	return true, nil
}

// SkipN consumes n bytes. It reports false, consuming nothing, when fewer
// than n bytes remain.
func (s *Scraper) SkipN(n int) bool {
	if n < 0 || n > s.src.Len() {
		return false
	}
	s.src.Advance(n)
	return true
}

// Split splits the remaining text around the matches of p and consumes
// it. Each piece i is stored under name(i, piece); an empty name drops the
// piece. It returns the number of pieces, or 0 with the cursor and
// variables untouched when p finds no separator.
func (s *Scraper) Split(p *Pattern, name func(i int, piece string) string) (int, error) {
	rest := s.src.Current()
	r, err := p.Match(rest)
	if err != nil || r == nil {
		return 0, err
	}

	var pieces []string
	start := 0
	for _, m := range r.Matches() {
		if m.Length == 0 && (m.Index == 0 || m.Index == len(rest)) {
			continue
		}
		pieces = append(pieces, rest[start:m.Index])
		start = m.End()
	}
	if len(pieces) == 0 {
		return 0, nil
	}
	pieces = append(pieces, rest[start:])

	for i, piece := range pieces {
		if n := name(i, piece); n != "" {
			s.vars[n] = piece
		}
	}
	s.src.Advance(len(rest))
	return len(pieces), nil
}

// Push carves the first match of p into a child Scraper sharing the
// session stack, pushes the child and consumes the match in s. It returns
// nil when p does not match.
func (s *Scraper) Push(p *Pattern) (*Scraper, error) {
	r, err := s.first(p)
	if err != nil || r == nil {
		return nil, err
	}
	child := NewScraper(r.Value(0), s.stack)
	child.parent = s
	s.stack.frames = append(s.stack.frames, child)
	s.src.Advance(r.Match(0).Length)
	return child, nil
}

// Pop pops the most recently pushed scraper of the session, merges its
// variables into its parent, overwriting on collision, and returns the
// parent. It reports false when the stack is empty.
func (s *Scraper) Pop() (*Scraper, bool) {
	n := len(s.stack.frames)
	if n == 0 {
		return nil, false
	}
	child := s.stack.frames[n-1]
	s.stack.frames = s.stack.frames[:n-1]
	maps.Copy(child.parent.vars, child.vars)
	return child.parent, true
}
