package text

import (
	"strings"
	"testing"
)

func TestSaveRestoreRoundTrip(t *testing.T) {
	as := mustNew(t, "Hello World",
		span(0, 5, SpanStyle{FontWeight: FontWeightBold, Color: RGB(0xff, 0, 0)}),
		para(0, 5, ParagraphStyle{Alignment: AlignCenter, Indent: TextIndent{FirstLine: Em(1), RestLine: Em(1)}}),
		strAnn("note", "greeting", 0, 5),
		Range[Annotation]{Item: VerbatimTts{Verbatim: "W3C"}, Start: 6, End: 9},
		Range[Annotation]{Item: UrlAnnotation{URL: "https://old.example.com"}, Start: 0, End: 5},
		Range[Annotation]{Item: LinkURL{URL: "https://example.com", Styles: TextLinkStyles{Style: SpanStyle{Decoration: DecorationUnderline}}}, Start: 6, End: 11},
		Range[Annotation]{Item: LinkClickable{Tag: "open"}, Start: 6, End: 11},
		Range[Annotation]{Item: DefaultBullet, Start: 0, End: 11},
	)

	data, err := Save(as)
	if err != nil {
		t.Fatalf("unable to save: %v", err)
	}
	restored, err := Restore(data)
	if err != nil {
		t.Fatalf("unable to restore: %v", err)
	}
	if !restored.Equal(as) {
		t.Errorf("round trip lost information:\n saved   %+v\n restored %+v", as.Annotations(), restored.Annotations())
	}
}

func TestRestoreRejectsBadInput(t *testing.T) {
	if _, err := Restore([]byte(`{`)); err == nil {
		t.Error("truncated input should be rejected")
	}
	if _, err := Restore([]byte(`{"text":"x","ranges":[{"kind":"mystery","start":0,"end":1}]}`)); err == nil {
		t.Error("unknown annotation kind should be rejected")
	}
	if _, err := Restore([]byte(`{"text":"x","ranges":[{"kind":"span","start":0,"end":1}]}`)); err == nil {
		t.Error("span record without a style should be rejected")
	}
	// restored documents go through construction validation
	crossing := `{"text":"abcdef","ranges":[
		{"kind":"paragraph","start":0,"end":4,"paragraph":{}},
		{"kind":"paragraph","start":2,"end":6,"paragraph":{}}]}`
	if _, err := Restore([]byte(crossing)); err == nil {
		t.Error("criss-crossing paragraph styles should be rejected on restore")
	}
}

func TestSaveEmptyString(t *testing.T) {
	data, err := Save(Plain(""))
	if err != nil {
		t.Fatalf("unable to save: %v", err)
	}
	if !strings.Contains(string(data), `"text":""`) {
		t.Errorf("unexpected document %s", data)
	}
	restored, err := Restore(data)
	if err != nil {
		t.Fatalf("unable to restore: %v", err)
	}
	if restored.Len() != 0 || len(restored.Annotations()) != 0 {
		t.Errorf("unexpected restored value %+v", restored)
	}
}
