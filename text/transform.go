package text

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToUpperCase returns the string upper-cased per the rules of lang, with all
// annotation ranges remapped to the transformed text. Length-changing
// mappings (German sharp s, ligatures) are handled by transforming the text
// segment by segment at annotation boundaries, so every boundary lands on
// the corresponding position of the result.
func (a AnnotatedString) ToUpperCase(lang language.Tag) AnnotatedString {
	return a.transformCase(cases.Upper(lang))
}

// ToLowerCase returns the string lower-cased per the rules of lang; see
// ToUpperCase for offset handling.
func (a AnnotatedString) ToLowerCase(lang language.Tag) AnnotatedString {
	return a.transformCase(cases.Lower(lang))
}

func (a AnnotatedString) transformCase(caser cases.Caser) AnnotatedString {
	if len(a.annotations) == 0 {
		return Plain(caser.String(a.text))
	}

	boundaries := a.annotationBoundaries()
	var sb strings.Builder
	sb.Grow(len(a.text))
	// remap[old] is the position of boundary old in the transformed text.
	remap := make(map[int]int, len(boundaries))
	remap[boundaries[0]] = 0
	for i := 1; i < len(boundaries); i++ {
		sb.WriteString(caser.String(a.text[boundaries[i-1]:boundaries[i]]))
		remap[boundaries[i]] = sb.Len()
	}

	mapped := make([]Range[Annotation], 0, len(a.annotations))
	for _, r := range a.annotations {
		mapped = append(mapped, Range[Annotation]{
			Item:  r.Item,
			Start: remap[clamp(r.Start, 0, len(a.text))],
			End:   remap[clamp(r.End, 0, len(a.text))],
			Tag:   r.Tag,
		})
	}
	// Remapping preserves boundary order, so the paragraph invariant of the
	// source carries over.
	return assemble(sb.String(), mapped)
}

// annotationBoundaries returns the sorted, de-duplicated set of offsets that
// must survive a text transformation: the string bounds and every annotation
// bound, clamped into the string.
func (a AnnotatedString) annotationBoundaries() []int {
	seen := map[int]bool{0: true, len(a.text): true}
	for _, r := range a.annotations {
		seen[clamp(r.Start, 0, len(a.text))] = true
		seen[clamp(r.End, 0, len(a.text))] = true
	}
	boundaries := make([]int, 0, len(seen))
	for b := range seen {
		boundaries = append(boundaries, b)
	}
	sort.Ints(boundaries)
	return boundaries
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
