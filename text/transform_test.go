package text

import (
	"testing"

	"golang.org/x/text/language"
)

func TestToUpperCase(t *testing.T) {
	as := mustNew(t, "hello world",
		span(0, 5, SpanStyle{FontWeight: FontWeightBold}),
		strAnn("note", "n", 6, 11),
	)

	up := as.ToUpperCase(language.English)
	if up.String() != "HELLO WORLD" {
		t.Errorf("unexpected text %q", up.String())
	}
	anns := up.Annotations()
	if len(anns) != 2 {
		t.Fatalf("expected 2 annotations, got %d", len(anns))
	}
	if anns[0].Start != 0 || anns[0].End != 5 {
		t.Errorf("expected span [0,5), got [%d,%d)", anns[0].Start, anns[0].End)
	}
	if anns[1].Start != 6 || anns[1].End != 11 {
		t.Errorf("expected note [6,11), got [%d,%d)", anns[1].Start, anns[1].End)
	}
}

func TestToLowerCase(t *testing.T) {
	as := mustNew(t, "HELLO", span(0, 5, SpanStyle{}))
	down := as.ToLowerCase(language.English)
	if down.String() != "hello" {
		t.Errorf("unexpected text %q", down.String())
	}
}

func TestToUpperCaseLengthChange(t *testing.T) {
	// Turkish dotless casing: "i" upper-cases to "İ", which is two bytes.
	// Every annotation boundary after a grown segment must follow the new
	// byte positions.
	src := mustNew(t, "si si",
		span(0, 2, SpanStyle{FontWeight: FontWeightBold}),
		strAnn("note", "n", 3, 5),
	)
	up := src.ToUpperCase(language.Turkish)
	if up.String() != "Sİ Sİ" {
		t.Fatalf("unexpected text %q", up.String())
	}
	anns := up.Annotations()
	// "Sİ" is 3 bytes; the note moves from [3,5) to [4,7)
	if anns[0].Start != 0 || anns[0].End != 3 {
		t.Errorf("expected span [0,3), got [%d,%d)", anns[0].Start, anns[0].End)
	}
	if anns[1].Start != 4 || anns[1].End != 7 {
		t.Errorf("expected note [4,7), got [%d,%d)", anns[1].Start, anns[1].End)
	}
}
