package fpat

import (
	"fmt"

	"github.com/kolkov/fpat/internal/slicer"
)

// ErrOverlap is reported when edits made to one result address
// overlapping windows of the input.
var ErrOverlap = slicer.ErrOverlap

// CompileError represents shorthand that no translator accepts.
type CompileError struct {
	Pattern   string // Shorthand body being translated
	Offset    int    // Byte offset of the first untranslated construct
	Remainder string // Unconsumed source starting at Offset
	Construct string // Name of the malformed construct at Offset, if one was recognized
	Err       error  // Underlying translation error
}

func (e *CompileError) Error() string {
	msg := fmt.Sprintf("compile error at offset %d: no translation for %q", e.Offset, e.Remainder)
	if e.Construct != "" {
		msg += " (malformed " + e.Construct + ")"
	}
	return msg
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// MatchError represents a fault of the regular-expression engine, either
// while compiling the translated text or while executing it.
type MatchError struct {
	Pattern string // Translated pattern text
	Err     error  // Engine error
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("match error: pattern %q: %v", e.Pattern, e.Err)
}

func (e *MatchError) Unwrap() error {
	return e.Err
}

// ReplaceError represents a replacement that could not be applied.
type ReplaceError struct {
	Pattern string // Translated pattern text
	Err     error  // Cause, e.g. ErrOverlap
}

func (e *ReplaceError) Error() string {
	return fmt.Sprintf("replace error: pattern %q: %v", e.Pattern, e.Err)
}

func (e *ReplaceError) Unwrap() error {
	return e.Err
}
