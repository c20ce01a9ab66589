package fpat

import "iter"

// SourceLines is a Source with a stack of bookmarks and lazy line
// sequences.
type SourceLines struct {
	*Source
	marks []int
}

// NewSourceLines creates a SourceLines positioned at the start of text.
func NewSourceLines(text string) *SourceLines {
	return &SourceLines{Source: NewSource(text)}
}

// Bookmark pushes the current position.
func (s *SourceLines) Bookmark() {
	s.marks = append(s.marks, s.index)
}

// GoToBookmark pops the last bookmark and moves the cursor back to it.
// It reports false, leaving the cursor alone, when no bookmark is set.
func (s *SourceLines) GoToBookmark() bool {
	if len(s.marks) == 0 {
		return false
	}
	last := len(s.marks) - 1
	s.seek(s.marks[last])
	s.marks = s.marks[:last]
	return true
}

// Bookmarks returns the number of pushed bookmarks.
func (s *SourceLines) Bookmarks() int {
	return len(s.marks)
}

// Lines returns the remaining lines. Each line is consumed as it is
// yielded.
func (s *SourceLines) Lines() iter.Seq[string] {
	return s.While(func(string) bool { return true })
}

// While yields lines as long as pred holds. The first line failing pred
// is left unconsumed.
func (s *SourceLines) While(pred func(string) bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			line, ok := s.PeekNextLine()
			if !ok || !pred(line) {
				return
			}
			s.AdvanceToPeek()
			if !yield(line) {
				return
			}
		}
	}
}

// Until yields lines up to the first one satisfying pred, which is left
// unconsumed.
func (s *SourceLines) Until(pred func(string) bool) iter.Seq[string] {
	return s.While(func(line string) bool { return !pred(line) })
}
