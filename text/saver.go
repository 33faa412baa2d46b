package text

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// Flat serialization of an AnnotatedString: the text plus one record per
// annotation range, discriminated by a kind tag. There is no registry and no
// versioned migration; Save and Restore are an explicit function pair and
// Restore(Save(x)) rebuilds x exactly, annotation order included.

const (
	kindSpanStyle        = "span"
	kindParagraphStyle   = "paragraph"
	kindStringAnnotation = "string"
	kindVerbatimTts      = "tts-verbatim"
	kindURL              = "url"
	kindLinkURL          = "link-url"
	kindLinkClickable    = "link-clickable"
	kindBullet           = "bullet"
)

type savedDocument struct {
	Text   string       `json:"text"`
	Ranges []savedRange `json:"ranges,omitempty"`
}

type savedRange struct {
	Kind  string `json:"kind"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Tag   string `json:"tag,omitempty"`

	Span      *SpanStyle      `json:"span,omitempty"`
	Paragraph *ParagraphStyle `json:"paragraph,omitempty"`
	Value     string          `json:"value,omitempty"`
	Styles    *TextLinkStyles `json:"styles,omitempty"`
	Bullet    *Bullet         `json:"bullet,omitempty"`
}

// Save serializes as into a flat JSON document.
func Save(as AnnotatedString) ([]byte, error) {
	doc := savedDocument{Text: as.text}
	for _, r := range as.annotations {
		sr := savedRange{Start: r.Start, End: r.End, Tag: r.Tag}
		switch item := r.Item.(type) {
		case SpanStyle:
			sr.Kind, sr.Span = kindSpanStyle, &item
		case ParagraphStyle:
			sr.Kind, sr.Paragraph = kindParagraphStyle, &item
		case StringAnnotation:
			sr.Kind, sr.Value = kindStringAnnotation, string(item)
		case VerbatimTts:
			sr.Kind, sr.Value = kindVerbatimTts, item.Verbatim
		case UrlAnnotation:
			sr.Kind, sr.Value = kindURL, item.URL
		case LinkURL:
			styles := item.Styles
			sr.Kind, sr.Value, sr.Styles = kindLinkURL, item.URL, &styles
		case LinkClickable:
			styles := item.Styles
			sr.Kind, sr.Value, sr.Styles = kindLinkClickable, item.Tag, &styles
		case Bullet:
			sr.Kind, sr.Bullet = kindBullet, &item
		default:
			return nil, fmt.Errorf("unsaveable annotation %T over [%d, %d)", r.Item, r.Start, r.End)
		}
		doc.Ranges = append(doc.Ranges, sr)
	}
	return sonic.Marshal(doc)
}

// Restore rebuilds an AnnotatedString from the output of Save, running the
// usual construction validation.
func Restore(data []byte) (AnnotatedString, error) {
	var doc savedDocument
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return AnnotatedString{}, fmt.Errorf("unable to decode annotated text: %w", err)
	}
	annotations := make([]Range[Annotation], 0, len(doc.Ranges))
	for _, sr := range doc.Ranges {
		var item Annotation
		switch sr.Kind {
		case kindSpanStyle:
			if sr.Span == nil {
				return AnnotatedString{}, fmt.Errorf("span range [%d, %d) has no style", sr.Start, sr.End)
			}
			item = *sr.Span
		case kindParagraphStyle:
			if sr.Paragraph == nil {
				return AnnotatedString{}, fmt.Errorf("paragraph range [%d, %d) has no style", sr.Start, sr.End)
			}
			item = *sr.Paragraph
		case kindStringAnnotation:
			item = StringAnnotation(sr.Value)
		case kindVerbatimTts:
			item = VerbatimTts{Verbatim: sr.Value}
		case kindURL:
			item = UrlAnnotation{URL: sr.Value}
		case kindLinkURL:
			link := LinkURL{URL: sr.Value}
			if sr.Styles != nil {
				link.Styles = *sr.Styles
			}
			item = link
		case kindLinkClickable:
			link := LinkClickable{Tag: sr.Value}
			if sr.Styles != nil {
				link.Styles = *sr.Styles
			}
			item = link
		case kindBullet:
			if sr.Bullet == nil {
				return AnnotatedString{}, fmt.Errorf("bullet range [%d, %d) has no bullet", sr.Start, sr.End)
			}
			item = *sr.Bullet
		default:
			return AnnotatedString{}, fmt.Errorf("unknown annotation kind %q over [%d, %d)", sr.Kind, sr.Start, sr.End)
		}
		annotations = append(annotations, Range[Annotation]{Item: item, Start: sr.Start, End: sr.End, Tag: sr.Tag})
	}
	return New(doc.Text, annotations...)
}
