package text

import (
	"errors"
	"fmt"
)

// Caller errors. All of these indicate misuse of the API and are returned
// immediately from the call that detected them; nothing is retried or
// recovered internally.
var (
	// ErrReversedRange reports range construction with start > end.
	ErrReversedRange = errors.New("range start is past its end")
	// ErrReversedSlice reports SubSequence with startIndex > endIndex.
	ErrReversedSlice = errors.New("slice start is past its end")
	// ErrNothingToPop reports Builder.Pop on an empty scope stack.
	ErrNothingToPop = errors.New("nothing to pop")
	// ErrPopIndex reports Builder.PopTo with an index outside the stack.
	ErrPopIndex = errors.New("pop index out of range")
	// ErrIndentUnitMismatch reports nested bullet lists whose indentation
	// units differ and therefore cannot accumulate.
	ErrIndentUnitMismatch = errors.New("bullet list indentation unit mismatch")
)

// ParagraphOverlapError reports two paragraph style ranges that criss-cross:
// they overlap without one containing the other and without being identical.
// Such a pair cannot be resolved into a flat paragraph sequence and is
// rejected at AnnotatedString construction.
type ParagraphOverlapError struct {
	Start int
	End   int
}

func (e *ParagraphOverlapError) Error() string {
	return fmt.Sprintf("paragraph style [%d, %d) partially overlaps a preceding paragraph style", e.Start, e.End)
}
