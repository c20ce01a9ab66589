// Package slicer implements an edit buffer addressed by windows of the
// original text. Offsets always refer to the unedited text, so editing one
// window never moves another.
package slicer

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrOverlap is returned by Render when two edited windows overlap.
var ErrOverlap = errors.New("overlapping edits")

// Window is a byte range of the original text.
type Window struct {
	Index  int
	Length int
}

// End returns the offset just past the window.
func (w Window) End() int {
	return w.Index + w.Length
}

func (w Window) String() string {
	return fmt.Sprintf("[%d,%d)", w.Index, w.End())
}

// Slicer holds a text and the replacements made to windows of it.
// The zero value is an empty text with no edits.
type Slicer struct {
	text  string
	edits map[Window]string
}

// New creates a Slicer over text.
func New(text string) *Slicer {
	return &Slicer{text: text}
}

// Text returns the original text.
func (s *Slicer) Text() string {
	return s.text
}

func (s *Slicer) check(w Window) {
	if w.Index < 0 || w.Length < 0 || w.End() > len(s.text) {
		panic(fmt.Sprintf("slicer: window %s out of range [0,%d)", w, len(s.text)))
	}
}

// Get returns the current content of the window: the replacement if the
// same window was edited, otherwise the original text.
func (s *Slicer) Get(index, length int) string {
	w := Window{Index: index, Length: length}
	s.check(w)
	if v, ok := s.edits[w]; ok {
		return v
	}
	return s.text[w.Index:w.End()]
}

// Set replaces the content of the window. A later Set of the same window
// replaces the earlier one.
func (s *Slicer) Set(index, length int, value string) {
	w := Window{Index: index, Length: length}
	s.check(w)
	if s.edits == nil {
		s.edits = make(map[Window]string)
	}
	s.edits[w] = value
}

// Edited reports whether any window was set.
func (s *Slicer) Edited() bool {
	return len(s.edits) > 0
}

// Edits returns the edited windows ordered by position.
func (s *Slicer) Edits() []Window {
	ws := make([]Window, 0, len(s.edits))
	for w := range s.edits {
		ws = append(ws, w)
	}
	slices.SortFunc(ws, func(a, b Window) int {
		if a.Index != b.Index {
			return a.Index - b.Index
		}
		return a.Length - b.Length
	})
	return ws
}

// Reset discards all edits.
func (s *Slicer) Reset() {
	clear(s.edits)
}

// Render returns the original text with every edit applied. Edited windows
// must be disjoint; an empty window may touch a neighbour.
func (s *Slicer) Render() (string, error) {
	ws := s.Edits()
	if len(ws) == 0 {
		return s.text, nil
	}

	var sb strings.Builder
	sb.Grow(len(s.text))
	pos := 0
	for i, w := range ws {
		if i > 0 && w.Index < ws[i-1].End() {
			return "", fmt.Errorf("%w: %s and %s", ErrOverlap, ws[i-1], w)
		}
		sb.WriteString(s.text[pos:w.Index])
		sb.WriteString(s.edits[w])
		pos = w.End()
	}
	sb.WriteString(s.text[pos:])
	return sb.String(), nil
}
