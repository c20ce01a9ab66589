package fpat

import (
	"fmt"
	"strings"
)

// Source is a cursor over an immutable text. Current is the unconsumed
// suffix. A Source is not safe for concurrent use.
type Source struct {
	text  string
	index int
	peek  int // pending peek length; -1 when none is outstanding
}

// NewSource creates a Source positioned at the start of text.
func NewSource(text string) *Source {
	return &Source{text: text, peek: -1}
}

// Text returns the whole text.
func (s *Source) Text() string {
	return s.text
}

// Current returns the unconsumed text.
func (s *Source) Current() string {
	return s.text[s.index:]
}

// Index returns the byte offset of the cursor.
func (s *Source) Index() int {
	return s.index
}

// Len returns the number of unconsumed bytes.
func (s *Source) Len() int {
	return len(s.text) - s.index
}

// AtEnd reports whether the whole text has been consumed.
func (s *Source) AtEnd() bool {
	return s.index >= len(s.text)
}

// Advance consumes n bytes and discards any pending peek. It panics if n
// is negative or exceeds Len.
func (s *Source) Advance(n int) {
	if n < 0 || n > s.Len() {
		panic(fmt.Sprintf("fpat: advance %d out of range [0,%d]", n, s.Len()))
	}
	s.index += n
	s.peek = -1
}

// seek moves the cursor to an absolute offset.
func (s *Source) seek(index int) {
	s.index = index
	s.peek = -1
}

// NextLine consumes and returns the next line without its terminator.
// It reports false when nothing is left.
func (s *Source) NextLine() (string, bool) {
	line, n, ok := nextLine(s.Current())
	if !ok {
		return "", false
	}
	s.Advance(n)
	return line, true
}

// PeekNextLine returns the next line without consuming it. The line is
// consumed by a following AdvanceToPeek; any other cursor movement or a
// new peek discards it.
func (s *Source) PeekNextLine() (string, bool) {
	line, n, ok := nextLine(s.Current())
	if !ok {
		s.peek = -1
		return "", false
	}
	s.peek = n
	return line, true
}

// AdvanceToPeek consumes the line returned by the last PeekNextLine.
// It reports false when no peek is pending.
func (s *Source) AdvanceToPeek() bool {
	if s.peek < 0 {
		return false
	}
	s.Advance(s.peek)
	return true
}

// GoTo consumes lines until one contains a match of p and returns that
// line, which is consumed too. When no line matches the source is
// exhausted and GoTo reports false.
func (s *Source) GoTo(p *Pattern) (string, bool, error) {
	for {
		line, n, ok := nextLine(s.Current())
		if !ok {
			return "", false, nil
		}
		found, err := p.IsMatch(line)
		if err != nil {
			return "", false, err
		}
		s.Advance(n)
		if found {
			return line, true, nil
		}
	}
}

// nextLine splits the first line off text. Lines end at "\r\n", "\r" or
// "\n"; n includes the terminator. An empty text has no line.
func nextLine(text string) (line string, n int, ok bool) {
	if text == "" {
		return "", 0, false
	}
	i := strings.IndexAny(text, "\r\n")
	switch {
	case i < 0:
		return text, len(text), true
	case text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n':
		return text[:i], i + 2, true
	default:
		return text[:i], i + 1, true
	}
}
