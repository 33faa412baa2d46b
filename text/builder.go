package text

import (
	"fmt"
	"strings"
)

// unsetEnd marks a scope range that has been pushed but not popped yet.
const unsetEnd = -1

// mutableRange is a Range under construction inside a Builder.
type mutableRange struct {
	item  Annotation
	start int
	end   int
	tag   string
}

// Builder accumulates text and annotation ranges and freezes them into an
// AnnotatedString. Annotations are attached either over explicit intervals
// of already-appended text (AddStyle and friends) or through push/pop
// scoping: a push opens a range at the current length, the matching pop
// closes it.
//
// A Builder is a single-owner mutable object; concurrent use without
// external locking is undefined.
type Builder struct {
	text   strings.Builder
	ranges []mutableRange
	stack  []int // indices into ranges of still-open scopes, innermost last
	lists  []listLevel
}

// listLevel tracks one level of bullet list nesting.
type listLevel struct {
	indent TextUnit // accumulated across enclosing levels
	bullet Bullet
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// NewBuilderFrom returns a Builder seeded with the text and annotations of
// as, all ranges already closed.
func NewBuilderFrom(as AnnotatedString) *Builder {
	b := &Builder{}
	b.text.WriteString(as.text)
	for _, r := range as.annotations {
		b.ranges = append(b.ranges, mutableRange{item: r.Item, start: r.Start, end: r.End, tag: r.Tag})
	}
	return b
}

// Len returns the length of the accumulated text in bytes.
func (b *Builder) Len() int {
	return b.text.Len()
}

// Append appends plain text.
func (b *Builder) Append(s string) {
	b.text.WriteString(s)
}

// AppendRune appends a single rune.
func (b *Builder) AppendRune(r rune) {
	b.text.WriteRune(r)
}

// AppendAnnotated appends as with all of its annotations, translated past
// the text accumulated so far.
func (b *Builder) AppendAnnotated(as AnnotatedString) {
	offset := b.text.Len()
	b.text.WriteString(as.text)
	for _, r := range as.annotations {
		b.ranges = append(b.ranges, mutableRange{item: r.Item, start: r.Start + offset, end: r.End + offset, tag: r.Tag})
	}
}

// AppendRange appends the slice [start, end) of as along with every
// annotation range intersecting it, clipped to the slice and translated past
// the text accumulated so far.
func (b *Builder) AppendRange(as AnnotatedString, start, end int) error {
	slice, err := as.SubSequence(start, end)
	if err != nil {
		return err
	}
	b.AppendAnnotated(slice)
	return nil
}

// push opens a scope at the current length and returns its stack index.
func (b *Builder) push(item Annotation, tag string) int {
	index := len(b.stack)
	b.ranges = append(b.ranges, mutableRange{item: item, start: b.text.Len(), end: unsetEnd, tag: tag})
	b.stack = append(b.stack, len(b.ranges)-1)
	return index
}

// PushStyle opens a span style scope over the text appended until the
// matching Pop. Returns the scope's stack index for PopTo.
func (b *Builder) PushStyle(s SpanStyle) int {
	return b.push(s, "")
}

// PushParagraphStyle opens a paragraph style scope.
func (b *Builder) PushParagraphStyle(p ParagraphStyle) int {
	return b.push(p, "")
}

// PushStringAnnotation opens a tagged string annotation scope.
func (b *Builder) PushStringAnnotation(tag, annotation string) int {
	return b.push(StringAnnotation(annotation), tag)
}

// PushTts opens a text-to-speech annotation scope.
func (b *Builder) PushTts(tts TtsAnnotation) int {
	return b.push(tts, "")
}

// PushLink opens a link annotation scope.
func (b *Builder) PushLink(link Link) int {
	return b.push(link, "")
}

// PushBullet opens a bullet scope.
func (b *Builder) PushBullet(bullet Bullet) int {
	return b.push(bullet, "")
}

// Pop closes the most recently opened scope at the current text length.
// Returns ErrNothingToPop when no scope is open.
func (b *Builder) Pop() error {
	if len(b.stack) == 0 {
		return ErrNothingToPop
	}
	i := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.ranges[i].end = b.text.Len()
	return nil
}

// PopTo closes every scope at or above index, innermost first, down to and
// including the scope that the matching push returned index for. Returns
// ErrPopIndex when index does not address an open scope.
func (b *Builder) PopTo(index int) error {
	if index < 0 || index >= len(b.stack) {
		return fmt.Errorf("%w: %d with %d open", ErrPopIndex, index, len(b.stack))
	}
	for len(b.stack) > index {
		if err := b.Pop(); err != nil {
			return err
		}
	}
	return nil
}

// add appends a closed range without touching the scope stack.
func (b *Builder) add(item Annotation, start, end int, tag string) error {
	if start > end {
		return fmt.Errorf("%w: [%d, %d)", ErrReversedRange, start, end)
	}
	b.ranges = append(b.ranges, mutableRange{item: item, start: start, end: end, tag: tag})
	return nil
}

// AddStyle attaches a span style over [start, end) of text that already
// exists (or will exist) in the builder, without opening a scope.
func (b *Builder) AddStyle(s SpanStyle, start, end int) error {
	return b.add(s, start, end, "")
}

// AddParagraphStyle attaches a paragraph style over [start, end).
func (b *Builder) AddParagraphStyle(p ParagraphStyle, start, end int) error {
	return b.add(p, start, end, "")
}

// AddStringAnnotation attaches a tagged string annotation over [start, end).
func (b *Builder) AddStringAnnotation(tag, annotation string, start, end int) error {
	return b.add(StringAnnotation(annotation), start, end, tag)
}

// AddTts attaches a text-to-speech annotation over [start, end).
func (b *Builder) AddTts(tts TtsAnnotation, start, end int) error {
	return b.add(tts, start, end, "")
}

// AddLink attaches a link annotation over [start, end).
func (b *Builder) AddLink(link Link, start, end int) error {
	return b.add(link, start, end, "")
}

// AddBullet attaches a bullet over [start, end).
func (b *Builder) AddBullet(bullet Bullet, start, end int) error {
	return b.add(bullet, start, end, "")
}

// BulletList runs body inside a bullet list level. Nested lists accumulate
// indentation, so a child level is indented by its enclosing levels plus its
// own indentation; the units must match across levels or the call fails with
// ErrIndentUnitMismatch before running body. Items are created with
// BulletListItem inside body.
func (b *Builder) BulletList(indentation TextUnit, bullet Bullet, body func(*Builder) error) error {
	total := indentation
	if n := len(b.lists); n > 0 {
		parent := b.lists[n-1].indent
		if parent.Kind != indentation.Kind {
			return fmt.Errorf("%w: %s inside %s", ErrIndentUnitMismatch, indentation.Kind, parent.Kind)
		}
		total.Value += parent.Value
	}
	b.lists = append(b.lists, listLevel{indent: total, bullet: bullet})
	defer func() {
		b.lists = b.lists[:len(b.lists)-1]
	}()
	return body(b)
}

// BulletListItem runs body as one list item: a paragraph indented to the
// current list level carrying the list's bullet. The paragraph and bullet
// scopes are closed even when body fails. Outside a BulletList the item uses
// DefaultBulletIndentation and DefaultBullet.
func (b *Builder) BulletListItem(body func(*Builder) error) error {
	level := listLevel{indent: DefaultBulletIndentation, bullet: DefaultBullet}
	if n := len(b.lists); n > 0 {
		level = b.lists[n-1]
	}
	index := b.PushParagraphStyle(ParagraphStyle{
		Indent: TextIndent{FirstLine: level.indent, RestLine: level.indent},
	})
	b.PushBullet(level.bullet)
	defer func() {
		_ = b.PopTo(index) // scopes we just opened, cannot fail
	}()
	return body(b)
}

// Build freezes a snapshot of the builder into an AnnotatedString. Scopes
// still open are closed at the current text length in the snapshot only; the
// live builder keeps them open and remains usable.
//
// The snapshot goes through the same validation as New, so a builder that
// accumulated criss-crossing paragraph styles fails here.
func (b *Builder) Build() (AnnotatedString, error) {
	length := b.text.Len()
	annotations := make([]Range[Annotation], 0, len(b.ranges))
	for _, mr := range b.ranges {
		end := mr.end
		if end == unsetEnd {
			end = length
		}
		annotations = append(annotations, Range[Annotation]{Item: mr.item, Start: mr.start, End: end, Tag: mr.tag})
	}
	return New(b.text.String(), annotations...)
}
