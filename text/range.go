// Package text implements an immutable annotated string model: a plain string
// carrying possibly overlapping, nested or coincident ranges of styling and
// metadata, together with the interval algebra and the paragraph
// normalization used by layout and accessibility consumers.
//
// Offsets everywhere in this package are byte offsets into the underlying
// string and every interval is half-open: [Start, End) includes Start and
// excludes End. Zero-length ranges are legal and denote point annotations.
package text

import "fmt"

// Range attaches an item to a half-open interval [Start, End) over a string.
// Tag is an optional namespace used by string, TTS and link annotation
// queries; it is empty for style ranges.
type Range[T any] struct {
	Item  T
	Start int
	End   int
	Tag   string
}

// NewRange creates a range over [start, end) carrying item.
// Returns ErrReversedRange when start > end.
func NewRange[T any](item T, start, end int) (Range[T], error) {
	return NewTaggedRange(item, start, end, "")
}

// NewTaggedRange creates a tagged range over [start, end) carrying item.
// Returns ErrReversedRange when start > end.
func NewTaggedRange[T any](item T, start, end int, tag string) (Range[T], error) {
	if start > end {
		return Range[T]{}, fmt.Errorf("%w: [%d, %d)", ErrReversedRange, start, end)
	}
	return Range[T]{Item: item, Start: start, End: end, Tag: tag}, nil
}

// Len returns the length of the interval.
func (r Range[T]) Len() int {
	return r.End - r.Start
}

// Intersects reports whether the range intersects [start, end),
// see Intersect for the exact boundary contract.
func (r Range[T]) Intersects(start, end int) bool {
	return Intersect(r.Start, r.End, start, end)
}

// Intersect reports whether half-open intervals [lStart, lEnd) and
// [rStart, rEnd) intersect.
//
// On top of the usual half-open overlap test, a zero-length interval counts
// as intersecting any interval that starts at the same position. Without this
// a point annotation at offset p would be unreachable by a query [p, p) or by
// any query range touching p from the right.
func Intersect(lStart, lEnd, rStart, rEnd int) bool {
	if (lStart == lEnd || rStart == rEnd) && lStart == rStart {
		return true
	}
	return lStart < rEnd && rStart < lEnd
}

// Contains reports whether [baseStart, baseEnd) contains
// [targetStart, targetEnd).
//
// When the two intervals share their end position, containment additionally
// requires both to be empty or both to be non-empty. A non-empty base does
// not contain a coincident empty target sitting on its end boundary; that
// target belongs to whatever follows the base.
func Contains(baseStart, baseEnd, targetStart, targetEnd int) bool {
	return baseStart <= targetStart && targetEnd <= baseEnd &&
		(baseEnd != targetEnd || (targetStart == targetEnd) == (baseStart == baseEnd))
}
