// Package markup parses a small XML rich-text dialect into annotated strings.
// It covers the inline markup a document body needs (emphasis, links, notes,
// bullet lists) plus inline CSS styling, and degrades gracefully on anything
// it does not understand.
package markup

import (
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"atext/text"
)

// namedColors is the small palette inline styles are allowed to use by name;
// everything else must be a hex color.
var namedColors = map[string]text.Color{
	"black":   text.RGB(0x00, 0x00, 0x00),
	"white":   text.RGB(0xff, 0xff, 0xff),
	"red":     text.RGB(0xff, 0x00, 0x00),
	"green":   text.RGB(0x00, 0x80, 0x00),
	"blue":    text.RGB(0x00, 0x00, 0xff),
	"gray":    text.RGB(0x80, 0x80, 0x80),
	"yellow":  text.RGB(0xff, 0xff, 0x00),
	"magenta": text.RGB(0xff, 0x00, 0xff),
	"cyan":    text.RGB(0x00, 0xff, 0xff),
}

// ParseInlineStyle parses the declarations of a style="..." attribute into a
// span style and a paragraph style. Character-level properties land in the
// former, paragraph-level ones in the latter. Unsupported properties and
// unparsable values are logged and skipped; the function never fails, an
// unusable declaration simply contributes nothing.
func ParseInlineStyle(style string, log *zap.Logger) (text.SpanStyle, text.ParagraphStyle) {
	if log == nil {
		log = zap.NewNop()
	}

	var span text.SpanStyle
	var paragraph text.ParagraphStyle

	input := parse.NewInput(strings.NewReader(style))
	parser := css.NewParser(input, true)

	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return span, paragraph
		case css.DeclarationGrammar:
			name := strings.ToLower(string(data))
			value := declarationValue(parser.Values())
			if value == "" {
				continue
			}
			if !applyDeclaration(&span, &paragraph, name, value) {
				log.Debug("Skipping unsupported style declaration", zap.String("property", name), zap.String("value", value))
			}
		}
	}
}

// declarationValue rebuilds a declaration's value string from its tokens, a
// single space between them.
func declarationValue(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			continue
		}
		parts = append(parts, string(t.Data))
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func applyDeclaration(span *text.SpanStyle, paragraph *text.ParagraphStyle, name, value string) bool {
	switch name {
	case "color":
		c, ok := parseColor(value)
		if !ok {
			return false
		}
		span.Color = c
	case "background-color":
		c, ok := parseColor(value)
		if !ok {
			return false
		}
		span.Background = c
	case "font-size":
		u, ok := parseUnit(value)
		if !ok {
			return false
		}
		span.FontSize = u
	case "font-weight":
		w, ok := parseFontWeight(value)
		if !ok {
			return false
		}
		span.FontWeight = w
	case "font-style":
		switch strings.ToLower(value) {
		case "italic", "oblique":
			span.FontStyle = text.FontStyleItalic
		case "normal":
			span.FontStyle = text.FontStyleNormal
		default:
			return false
		}
	case "font-family":
		span.FontFamily = strings.Trim(value, `"'`)
	case "letter-spacing":
		u, ok := parseUnit(value)
		if !ok {
			return false
		}
		span.LetterSpacing = u
	case "text-decoration":
		var d text.TextDecoration
		for _, part := range strings.Fields(strings.ToLower(value)) {
			switch part {
			case "underline":
				d |= text.DecorationUnderline
			case "line-through":
				d |= text.DecorationStrikeThrough
			}
		}
		if d == 0 {
			return false
		}
		span.Decoration = d
	case "vertical-align":
		switch strings.ToLower(value) {
		case "sub":
			span.BaselineShift = text.BaselineSubscript
		case "super":
			span.BaselineShift = text.BaselineSuperscript
		default:
			return false
		}
	case "text-align":
		switch strings.ToLower(value) {
		case "left":
			paragraph.Alignment = text.AlignLeft
		case "right":
			paragraph.Alignment = text.AlignRight
		case "center":
			paragraph.Alignment = text.AlignCenter
		case "justify":
			paragraph.Alignment = text.AlignJustify
		case "start":
			paragraph.Alignment = text.AlignStart
		case "end":
			paragraph.Alignment = text.AlignEnd
		default:
			return false
		}
	case "direction":
		switch strings.ToLower(value) {
		case "ltr":
			paragraph.Direction = text.DirectionLtr
		case "rtl":
			paragraph.Direction = text.DirectionRtl
		default:
			return false
		}
	case "line-height":
		// a bare number is a font-size multiplier
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			paragraph.LineHeight = text.Em(v)
			return true
		}
		u, ok := parseUnit(value)
		if !ok {
			return false
		}
		paragraph.LineHeight = u
	case "text-indent":
		u, ok := parseUnit(value)
		if !ok {
			return false
		}
		paragraph.Indent = text.TextIndent{FirstLine: u, RestLine: u}
	default:
		return false
	}
	return true
}

// parseUnit converts a CSS dimension into a TextUnit: em stays relative,
// pt and px become scaled points (px at the usual 0.75pt per px).
func parseUnit(value string) (text.TextUnit, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	numEnd := 0
	for i, r := range value {
		if r >= '0' && r <= '9' || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
			continue
		}
		break
	}
	if numEnd == 0 {
		return text.TextUnit{}, false
	}
	v, err := strconv.ParseFloat(value[:numEnd], 64)
	if err != nil {
		return text.TextUnit{}, false
	}
	switch value[numEnd:] {
	case "em", "rem":
		return text.Em(v), true
	case "pt":
		return text.Sp(v), true
	case "px":
		return text.Sp(v * 0.75), true
	default:
		return text.TextUnit{}, false
	}
}

func parseFontWeight(value string) (text.FontWeight, bool) {
	switch strings.ToLower(value) {
	case "bold":
		return text.FontWeightBold, true
	case "normal":
		return text.FontWeightNormal, true
	}
	w, err := strconv.Atoi(value)
	if err != nil || w < 1 || w > 1000 {
		return 0, false
	}
	return text.FontWeight(w), true
}

// parseColor accepts #rgb, #rrggbb and the small named palette.
func parseColor(value string) (text.Color, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if c, ok := namedColors[value]; ok {
		return c, true
	}
	if !strings.HasPrefix(value, "#") {
		return 0, false
	}
	hex := value[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, false
	}
	return text.RGB(uint8(n>>16), uint8(n>>8), uint8(n)), true
}
