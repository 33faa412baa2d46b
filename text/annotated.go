package text

import (
	"fmt"
	"sort"
)

// AnnotatedString is an immutable string carrying an ordered list of
// annotation ranges. Two AnnotatedStrings are equal only when their texts
// match and their annotation lists match element for element in order;
// annotation order is part of identity.
//
// Values are freely shareable across goroutines. Derived strings are always
// rebuilt wholesale, never aliased mutably.
type AnnotatedString struct {
	text            string
	annotations     []Range[Annotation]
	spanStyles      []Range[SpanStyle]
	paragraphStyles []Range[ParagraphStyle]
}

// Plain wraps a string with no annotations.
func Plain(s string) AnnotatedString {
	return AnnotatedString{text: s}
}

// New builds an AnnotatedString from text and annotation ranges.
//
// Every range must satisfy Start <= End. Paragraph style ranges may be
// disjoint, nested or identical but must not criss-cross: sorted by start, a
// range may not begin inside an earlier range and end beyond it. Violations
// return ErrReversedRange or a ParagraphOverlapError.
func New(s string, annotations ...Range[Annotation]) (AnnotatedString, error) {
	for _, r := range annotations {
		if r.Start > r.End {
			return AnnotatedString{}, fmt.Errorf("%w: [%d, %d)", ErrReversedRange, r.Start, r.End)
		}
	}
	as := assemble(s, annotations)
	if err := validateParagraphs(as.paragraphStyles); err != nil {
		return AnnotatedString{}, err
	}
	return as, nil
}

// NewStyled builds an AnnotatedString from separate span style and paragraph
// style range lists, preserving their order (spans first) in the combined
// annotation list.
func NewStyled(s string, spans []Range[SpanStyle], paragraphs []Range[ParagraphStyle]) (AnnotatedString, error) {
	annotations := make([]Range[Annotation], 0, len(spans)+len(paragraphs))
	for _, r := range spans {
		annotations = append(annotations, Range[Annotation]{Item: r.Item, Start: r.Start, End: r.End, Tag: r.Tag})
	}
	for _, r := range paragraphs {
		annotations = append(annotations, Range[Annotation]{Item: r.Item, Start: r.Start, End: r.End, Tag: r.Tag})
	}
	return New(s, annotations...)
}

// assemble builds the value and its per-variant fast-access lists without
// validating; callers must have established the invariants already.
func assemble(s string, annotations []Range[Annotation]) AnnotatedString {
	as := AnnotatedString{text: s}
	if len(annotations) == 0 {
		return as
	}
	as.annotations = annotations
	for _, r := range annotations {
		switch item := r.Item.(type) {
		case SpanStyle:
			as.spanStyles = append(as.spanStyles, Range[SpanStyle]{Item: item, Start: r.Start, End: r.End, Tag: r.Tag})
		case ParagraphStyle:
			as.paragraphStyles = append(as.paragraphStyles, Range[ParagraphStyle]{Item: item, Start: r.Start, End: r.End, Tag: r.Tag})
		}
	}
	return as
}

// validateParagraphs rejects criss-crossing paragraph ranges. It sweeps the
// ranges sorted by (start asc, end desc) keeping a stack of still-open
// containers; a range reaching past its innermost open container overlaps it
// partially.
func validateParagraphs(paragraphs []Range[ParagraphStyle]) error {
	if len(paragraphs) < 2 {
		return nil
	}
	sorted := sortedParagraphs(paragraphs)
	var open []Range[ParagraphStyle]
	for _, r := range sorted {
		for len(open) > 0 && open[len(open)-1].End <= r.Start {
			open = open[:len(open)-1]
		}
		if len(open) > 0 && r.End > open[len(open)-1].End {
			return &ParagraphOverlapError{Start: r.Start, End: r.End}
		}
		open = append(open, r)
	}
	return nil
}

// sortedParagraphs orders ranges by start, containers before the ranges they
// contain (descending end on equal starts). The sort is stable so coincident
// ranges keep their insertion order.
func sortedParagraphs(paragraphs []Range[ParagraphStyle]) []Range[ParagraphStyle] {
	sorted := make([]Range[ParagraphStyle], len(paragraphs))
	copy(sorted, paragraphs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End > sorted[j].End
	})
	return sorted
}

// String returns the plain text.
func (a AnnotatedString) String() string { return a.text }

// Len returns the text length in bytes.
func (a AnnotatedString) Len() int { return len(a.text) }

// Annotations returns the stored annotation ranges in insertion order. The
// returned slice is owned by the AnnotatedString and must not be modified.
func (a AnnotatedString) Annotations() []Range[Annotation] { return a.annotations }

// SpanStyles returns the span style ranges in insertion order.
func (a AnnotatedString) SpanStyles() []Range[SpanStyle] { return a.spanStyles }

// ParagraphStyles returns the paragraph style ranges in insertion order.
func (a AnnotatedString) ParagraphStyles() []Range[ParagraphStyle] { return a.paragraphStyles }

// StringAnnotations returns every string annotation with the given tag
// intersecting [start, end). A query with start > end returns nothing.
func (a AnnotatedString) StringAnnotations(tag string, start, end int) []Range[StringAnnotation] {
	if start > end {
		return nil
	}
	var out []Range[StringAnnotation]
	for _, r := range a.annotations {
		item, ok := r.Item.(StringAnnotation)
		if !ok || r.Tag != tag || !Intersect(start, end, r.Start, r.End) {
			continue
		}
		out = append(out, Range[StringAnnotation]{Item: item, Start: r.Start, End: r.End, Tag: r.Tag})
	}
	return out
}

// AllStringAnnotations returns every string annotation intersecting
// [start, end) regardless of tag.
func (a AnnotatedString) AllStringAnnotations(start, end int) []Range[StringAnnotation] {
	if start > end {
		return nil
	}
	var out []Range[StringAnnotation]
	for _, r := range a.annotations {
		item, ok := r.Item.(StringAnnotation)
		if !ok || !Intersect(start, end, r.Start, r.End) {
			continue
		}
		out = append(out, Range[StringAnnotation]{Item: item, Start: r.Start, End: r.End, Tag: r.Tag})
	}
	return out
}

// HasStringAnnotations reports whether any string annotation with the given
// tag intersects [start, end).
func (a AnnotatedString) HasStringAnnotations(tag string, start, end int) bool {
	if start > end {
		return false
	}
	for _, r := range a.annotations {
		if _, ok := r.Item.(StringAnnotation); ok && r.Tag == tag && Intersect(start, end, r.Start, r.End) {
			return true
		}
	}
	return false
}

// TtsAnnotations returns every text-to-speech annotation intersecting
// [start, end).
func (a AnnotatedString) TtsAnnotations(start, end int) []Range[TtsAnnotation] {
	if start > end {
		return nil
	}
	var out []Range[TtsAnnotation]
	for _, r := range a.annotations {
		item, ok := r.Item.(TtsAnnotation)
		if !ok || !Intersect(start, end, r.Start, r.End) {
			continue
		}
		out = append(out, Range[TtsAnnotation]{Item: item, Start: r.Start, End: r.End, Tag: r.Tag})
	}
	return out
}

// LinkAnnotations returns every link annotation intersecting [start, end).
func (a AnnotatedString) LinkAnnotations(start, end int) []Range[Link] {
	if start > end {
		return nil
	}
	var out []Range[Link]
	for _, r := range a.annotations {
		item, ok := r.Item.(Link)
		if !ok || !Intersect(start, end, r.Start, r.End) {
			continue
		}
		out = append(out, Range[Link]{Item: item, Start: r.Start, End: r.End, Tag: r.Tag})
	}
	return out
}

// HasLinkAnnotations reports whether any link annotation intersects
// [start, end).
func (a AnnotatedString) HasLinkAnnotations(start, end int) bool {
	if start > end {
		return false
	}
	for _, r := range a.annotations {
		if _, ok := r.Item.(Link); ok && Intersect(start, end, r.Start, r.End) {
			return true
		}
	}
	return false
}

// SubSequence returns the slice [start, end) of the string together with
// every annotation range intersecting it, rebased to the slice coordinates
// and clipped to its bounds. Slicing the whole string returns the receiver
// unchanged.
func (a AnnotatedString) SubSequence(start, end int) (AnnotatedString, error) {
	if start > end {
		return AnnotatedString{}, fmt.Errorf("%w: [%d, %d)", ErrReversedSlice, start, end)
	}
	if start < 0 || end > len(a.text) {
		return AnnotatedString{}, fmt.Errorf("slice [%d, %d) is out of bounds for length %d", start, end, len(a.text))
	}
	if start == 0 && end == len(a.text) {
		return a, nil
	}
	var kept []Range[Annotation]
	for _, r := range a.annotations {
		if !Intersect(start, end, r.Start, r.End) {
			continue
		}
		kept = append(kept, Range[Annotation]{
			Item:  r.Item,
			Start: max(start, r.Start) - start,
			End:   min(end, r.End) - start,
			Tag:   r.Tag,
		})
	}
	// Clipping cannot introduce a partial overlap that was not already
	// there, so the slice is assembled without re-validation.
	return assemble(a.text[start:end], kept), nil
}

// Concat returns the concatenation of the receiver and the given strings,
// with every appended string's annotations translated past the text
// accumulated before it.
func (a AnnotatedString) Concat(others ...AnnotatedString) (AnnotatedString, error) {
	b := NewBuilderFrom(a)
	for _, other := range others {
		b.AppendAnnotated(other)
	}
	return b.Build()
}

// MapAnnotations rebuilds the string with fn applied to every annotation
// range, in order. The result is re-validated; fn may not introduce reversed
// ranges or criss-crossing paragraph styles.
func (a AnnotatedString) MapAnnotations(fn func(Range[Annotation]) Range[Annotation]) (AnnotatedString, error) {
	if len(a.annotations) == 0 {
		return a, nil
	}
	mapped := make([]Range[Annotation], 0, len(a.annotations))
	for _, r := range a.annotations {
		mapped = append(mapped, fn(r))
	}
	return New(a.text, mapped...)
}

// FlatMapAnnotations rebuilds the string with fn applied to every annotation
// range, flattening the results in encounter order. Returning nil drops a
// range.
func (a AnnotatedString) FlatMapAnnotations(fn func(Range[Annotation]) []Range[Annotation]) (AnnotatedString, error) {
	if len(a.annotations) == 0 {
		return a, nil
	}
	var mapped []Range[Annotation]
	for _, r := range a.annotations {
		mapped = append(mapped, fn(r)...)
	}
	return New(a.text, mapped...)
}

// Equal reports structural equality: same text and the same annotation list
// in the same order.
func (a AnnotatedString) Equal(other AnnotatedString) bool {
	return a.text == other.text && a.HasEqualAnnotations(other)
}

// HasEqualAnnotations compares only the annotation lists, in order, ignoring
// the texts.
func (a AnnotatedString) HasEqualAnnotations(other AnnotatedString) bool {
	if len(a.annotations) != len(other.annotations) {
		return false
	}
	for i := range a.annotations {
		if a.annotations[i] != other.annotations[i] {
			return false
		}
	}
	return true
}
