package markup

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"atext/text"
)

// NoteTag is the annotation tag documents use for reader notes, the value
// being the note name.
const NoteTag = "note"

// Parser converts the document markup dialect into annotated strings. The
// dialect is deliberately small: a doc root, p paragraphs, ul/li lists and a
// handful of inline tags. Unknown markup degrades to its text content with a
// warning instead of failing the whole document.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new markup parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log}
}

// Parse reads an XML document from r and builds its annotated string. The
// reader may use any charset the XML declaration names.
func (p *Parser) Parse(r io.Reader) (text.AnnotatedString, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Permissive:    true,
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return text.AnnotatedString{}, fmt.Errorf("unable to read document: %w", err)
	}
	return p.ParseDocument(doc)
}

// ParseDocument walks an already parsed etree DOM and builds its annotated
// string. The root element must be doc.
func (p *Parser) ParseDocument(doc *etree.Document) (text.AnnotatedString, error) {
	root := doc.Root()
	if root == nil {
		return text.AnnotatedString{}, fmt.Errorf("document has no root element")
	}
	if root.Tag != "doc" {
		return text.AnnotatedString{}, fmt.Errorf("unexpected root element %q", root.Tag)
	}

	b := text.NewBuilder()
	for _, child := range root.ChildElements() {
		switch child.Tag {
		case "p":
			if err := p.parseParagraph(b, child); err != nil {
				return text.AnnotatedString{}, err
			}
		case "ul":
			if err := p.parseList(b, child); err != nil {
				return text.AnnotatedString{}, err
			}
		default:
			p.log.Warn("Unexpected tag in doc, converting to paragraph", zap.String("tag", child.Tag))
			if err := p.parseParagraph(b, child); err != nil {
				return text.AnnotatedString{}, err
			}
		}
	}
	return b.Build()
}

func (p *Parser) parseParagraph(b *text.Builder, el *etree.Element) error {
	span, paragraph := ParseInlineStyle(el.SelectAttrValue("style", ""), p.log)

	index := b.PushParagraphStyle(paragraph)
	if span != (text.SpanStyle{}) {
		b.PushStyle(span)
	}
	p.parseInline(b, el)
	if err := b.PopTo(index); err != nil {
		return err
	}
	b.AppendRune('\n')
	return nil
}

func (p *Parser) parseList(b *text.Builder, el *etree.Element) error {
	return b.BulletList(text.DefaultBulletIndentation, text.DefaultBullet, func(b *text.Builder) error {
		for _, child := range el.ChildElements() {
			switch child.Tag {
			case "li":
				err := b.BulletListItem(func(b *text.Builder) error {
					p.parseInline(b, child)
					b.AppendRune('\n')
					return nil
				})
				if err != nil {
					return err
				}
			case "ul":
				if err := p.parseList(b, child); err != nil {
					return err
				}
			default:
				p.log.Warn("Unexpected tag in ul, ignoring", zap.String("tag", child.Tag))
			}
		}
		return nil
	})
}

// parseInline walks the mixed content of an element, pushing an annotation
// scope per recognized inline tag. Scopes are balanced locally, so errors
// cannot occur below this point.
func (p *Parser) parseInline(b *text.Builder, parent *etree.Element) {
	for _, node := range parent.Child {
		switch token := node.(type) {
		case *etree.CharData:
			if token.Data == "" {
				continue
			}
			b.Append(token.Data)
		case *etree.Element:
			index, ok := p.pushInline(b, token)
			if !ok {
				p.log.Warn("Unexpected inline tag, keeping its text", zap.String("parent", parent.Tag), zap.String("tag", token.Tag))
			}
			p.parseInline(b, token)
			if ok {
				_ = b.PopTo(index)
			}
		}
	}
}

// pushInline opens the annotation scope an inline tag stands for and returns
// its stack index. Unknown tags open no scope.
func (p *Parser) pushInline(b *text.Builder, el *etree.Element) (int, bool) {
	switch el.Tag {
	case "b", "strong":
		return b.PushStyle(text.SpanStyle{FontWeight: text.FontWeightBold}), true
	case "i", "em":
		return b.PushStyle(text.SpanStyle{FontStyle: text.FontStyleItalic}), true
	case "s", "del":
		return b.PushStyle(text.SpanStyle{Decoration: text.DecorationStrikeThrough}), true
	case "u":
		return b.PushStyle(text.SpanStyle{Decoration: text.DecorationUnderline}), true
	case "sub":
		return b.PushStyle(text.SpanStyle{BaselineShift: text.BaselineSubscript, FontSize: text.Em(0.75)}), true
	case "sup":
		return b.PushStyle(text.SpanStyle{BaselineShift: text.BaselineSuperscript, FontSize: text.Em(0.75)}), true
	case "code":
		return b.PushStyle(text.SpanStyle{FontFamily: "monospace"}), true
	case "a":
		href := el.SelectAttrValue("href", "")
		if href == "" {
			p.log.Warn("Link without href, keeping its text", zap.String("tag", el.Tag))
			return 0, false
		}
		return b.PushLink(text.LinkURL{URL: href}), true
	case "span":
		span, paragraph := ParseInlineStyle(el.SelectAttrValue("style", ""), p.log)
		if paragraph != (text.ParagraphStyle{}) {
			p.log.Warn("Paragraph properties on span, ignoring them", zap.String("tag", el.Tag))
		}
		return b.PushStyle(span), true
	case "note":
		name := el.SelectAttrValue("name", "")
		if name == "" {
			p.log.Warn("Note without name, keeping its text", zap.String("tag", el.Tag))
			return 0, false
		}
		return b.PushStringAnnotation(NoteTag, name), true
	default:
		return 0, false
	}
}
