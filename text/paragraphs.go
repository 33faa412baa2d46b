package text

import "fmt"

// NormalizedParagraphStyles converts the sparse, possibly nested paragraph
// style ranges into a total partition of [0, Len()): the returned ranges are
// ordered, contiguous, start at 0 and end at Len(), and each carries a style
// fully resolved against def. Gaps between explicit ranges get def itself;
// nested ranges get the enclosing style with their own fields laid on top.
//
// An empty string with no paragraph ranges still yields a single zero-length
// range so that a layout consumer always receives at least one paragraph.
func (a AnnotatedString) NormalizedParagraphStyles(def ParagraphStyle) []Range[ParagraphStyle] {
	sorted := sortedParagraphs(a.paragraphStyles)

	out := make([]Range[ParagraphStyle], 0, 2*len(sorted)+1)
	// Open paragraphs whose span has not been fully emitted yet, innermost
	// last. Styles on the stack are already resolved against def and their
	// enclosing entries.
	var open []Range[ParagraphStyle]
	lastAdded := 0

	flush := func(style ParagraphStyle, start, end int) {
		out = append(out, Range[ParagraphStyle]{Item: style, Start: start, End: end})
		lastAdded = end
	}
	// popFinished removes the top and every further entry that also ends at
	// lastAdded; paragraphs closing at the same point produce no extra
	// zero-length chunks for their containers.
	popFinished := func() {
		open = open[:len(open)-1]
		for len(open) > 0 && open[len(open)-1].End == lastAdded {
			open = open[:len(open)-1]
		}
	}

	for _, r := range sorted {
		current := Range[ParagraphStyle]{Item: def.Merge(r.Item), Start: r.Start, End: r.End}

		// Emit everything up to current.Start that belongs to still-open
		// paragraphs, closing the ones that end before current begins.
		for lastAdded < current.Start && len(open) > 0 {
			top := open[len(open)-1]
			if current.Start < top.End {
				flush(top.Item, lastAdded, current.Start)
				break
			}
			flush(top.Item, lastAdded, top.End)
			popFinished()
		}
		// Whatever gap is left has no paragraph to attribute it to.
		if lastAdded < current.Start {
			flush(def, lastAdded, current.Start)
		}

		if len(open) == 0 {
			open = append(open, current)
			continue
		}

		top := open[len(open)-1]
		switch {
		case top.Start == current.Start && top.End == current.End:
			// Fully coincident: collapse into one range, later style wins
			// field by field.
			open[len(open)-1] = Range[ParagraphStyle]{
				Item:  top.Item.Merge(current.Item),
				Start: current.Start,
				End:   current.End,
			}
		case top.Start == top.End:
			// A point paragraph is its own zero-length chunk; emit it before
			// opening the new one.
			flush(top.Item, top.Start, top.End)
			open[len(open)-1] = current
		case top.End >= current.End:
			// Strictly nested (possibly sharing the end bound): the inner
			// paragraph inherits the outer style underneath its own.
			open = append(open, Range[ParagraphStyle]{
				Item:  top.Item.Merge(current.Item),
				Start: current.Start,
				End:   current.End,
			})
		default:
			// The constructor rejects partial overlaps, so reaching this
			// state means the normalization itself is broken.
			panic(fmt.Sprintf("paragraph normalization: range [%d, %d) escapes its container ending at %d",
				current.Start, current.End, top.End))
		}
	}

	for len(open) > 0 {
		top := open[len(open)-1]
		flush(top.Item, lastAdded, top.End)
		popFinished()
	}
	if lastAdded < len(a.text) {
		flush(def, lastAdded, len(a.text))
	}
	if len(out) == 0 {
		out = append(out, Range[ParagraphStyle]{Item: def, Start: 0, End: 0})
	}
	return out
}

// MapEachParagraph calls fn once per normalized paragraph with the
// paragraph's text and its resolved style range. This is the integration
// point for paragraph layout consumers.
func (a AnnotatedString) MapEachParagraph(def ParagraphStyle, fn func(paragraph string, style Range[ParagraphStyle])) {
	for _, r := range a.NormalizedParagraphStyles(def) {
		fn(a.text[r.Start:r.End], r)
	}
}
