package text

import "fmt"

// Color is a 32-bit ARGB color. The zero value means "unspecified" and loses
// to any specified color during Merge; a fully transparent color that must
// survive merging should use a non-zero alpha-free encoding explicitly.
type Color uint32

// ARGB assembles a color from its components.
func ARGB(a, r, g, b uint8) Color {
	return Color(a)<<24 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// RGB assembles a fully opaque color.
func RGB(r, g, b uint8) Color {
	return ARGB(0xff, r, g, b)
}

// IsUnspecified reports whether the color carries no value.
func (c Color) IsUnspecified() bool {
	return c == 0
}

func (c Color) String() string {
	if c.IsUnspecified() {
		return "unspecified"
	}
	return fmt.Sprintf("#%08x", uint32(c))
}

// UnitKind is the measurement unit of a TextUnit.
type UnitKind int

const (
	UnitUnspecified UnitKind = iota
	UnitSp                   // scaled points
	UnitEm                   // relative to the current font size
)

func (k UnitKind) String() string {
	switch k {
	case UnitSp:
		return "sp"
	case UnitEm:
		return "em"
	default:
		return "unspecified"
	}
}

// TextUnit is a dimension value paired with its unit, the building block of
// font sizes, letter spacing, line heights and indents. The zero value is
// unspecified and loses to any specified unit during Merge.
type TextUnit struct {
	Value float64
	Kind  UnitKind
}

// Sp returns a scaled-points unit.
func Sp(v float64) TextUnit { return TextUnit{Value: v, Kind: UnitSp} }

// Em returns a font-relative unit.
func Em(v float64) TextUnit { return TextUnit{Value: v, Kind: UnitEm} }

// IsUnspecified reports whether the unit carries no value.
func (u TextUnit) IsUnspecified() bool { return u.Kind == UnitUnspecified }

func (u TextUnit) String() string {
	if u.IsUnspecified() {
		return "unspecified"
	}
	return fmt.Sprintf("%g%s", u.Value, u.Kind)
}

// FontWeight is a font weight on the usual 1..1000 scale, 0 meaning
// unspecified.
type FontWeight int

const (
	FontWeightNormal FontWeight = 400
	FontWeightBold   FontWeight = 700
)

// FontStyle selects between upright and italic glyphs.
type FontStyle int

const (
	FontStyleUnspecified FontStyle = iota
	FontStyleNormal
	FontStyleItalic
)

func (s FontStyle) String() string {
	switch s {
	case FontStyleNormal:
		return "normal"
	case FontStyleItalic:
		return "italic"
	default:
		return "unspecified"
	}
}

// TextDecoration is a bitmask of line decorations, 0 meaning unspecified.
type TextDecoration int

const (
	DecorationUnderline TextDecoration = 1 << iota
	DecorationStrikeThrough
)

// BaselineShift moves a span off the baseline for sub/superscripts.
type BaselineShift int

const (
	BaselineUnspecified BaselineShift = iota
	BaselineSubscript
	BaselineSuperscript
)

// SpanStyle is character-level styling applied over a text range. Zero-valued
// fields are unspecified; Merge resolves them against another style.
type SpanStyle struct {
	Color         Color
	Background    Color
	FontSize      TextUnit
	FontWeight    FontWeight
	FontStyle     FontStyle
	FontFamily    string
	LetterSpacing TextUnit
	BaselineShift BaselineShift
	Decoration    TextDecoration
}

func (SpanStyle) annotation() {}

// Merge returns the receiver with every specified field of other laid on top.
func (s SpanStyle) Merge(other SpanStyle) SpanStyle {
	if !other.Color.IsUnspecified() {
		s.Color = other.Color
	}
	if !other.Background.IsUnspecified() {
		s.Background = other.Background
	}
	if !other.FontSize.IsUnspecified() {
		s.FontSize = other.FontSize
	}
	if other.FontWeight != 0 {
		s.FontWeight = other.FontWeight
	}
	if other.FontStyle != FontStyleUnspecified {
		s.FontStyle = other.FontStyle
	}
	if other.FontFamily != "" {
		s.FontFamily = other.FontFamily
	}
	if !other.LetterSpacing.IsUnspecified() {
		s.LetterSpacing = other.LetterSpacing
	}
	if other.BaselineShift != BaselineUnspecified {
		s.BaselineShift = other.BaselineShift
	}
	if other.Decoration != 0 {
		s.Decoration = other.Decoration
	}
	return s
}

// TextAlign is the horizontal alignment of paragraph lines.
type TextAlign int

const (
	AlignUnspecified TextAlign = iota
	AlignLeft
	AlignRight
	AlignCenter
	AlignJustify
	AlignStart
	AlignEnd
)

func (a TextAlign) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	case AlignJustify:
		return "justify"
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	default:
		return "unspecified"
	}
}

// TextDirection is the base writing direction of a paragraph.
type TextDirection int

const (
	DirectionUnspecified TextDirection = iota
	DirectionLtr
	DirectionRtl
)

func (d TextDirection) String() string {
	switch d {
	case DirectionLtr:
		return "ltr"
	case DirectionRtl:
		return "rtl"
	default:
		return "unspecified"
	}
}

// TextIndent is the indentation of a paragraph's first and remaining lines.
type TextIndent struct {
	FirstLine TextUnit
	RestLine  TextUnit
}

// IsUnspecified reports whether neither line indent carries a value.
func (t TextIndent) IsUnspecified() bool {
	return t.FirstLine.IsUnspecified() && t.RestLine.IsUnspecified()
}

// ParagraphStyle is paragraph-level styling. Besides its visual effect every
// paragraph style range also defines paragraph boundaries, see
// NormalizedParagraphStyles.
type ParagraphStyle struct {
	Alignment  TextAlign
	Direction  TextDirection
	LineHeight TextUnit
	Indent     TextIndent
}

func (ParagraphStyle) annotation() {}

// Merge returns the receiver with every specified field of other laid on top.
func (p ParagraphStyle) Merge(other ParagraphStyle) ParagraphStyle {
	if other.Alignment != AlignUnspecified {
		p.Alignment = other.Alignment
	}
	if other.Direction != DirectionUnspecified {
		p.Direction = other.Direction
	}
	if !other.LineHeight.IsUnspecified() {
		p.LineHeight = other.LineHeight
	}
	if !other.Indent.IsUnspecified() {
		p.Indent = other.Indent
	}
	return p
}
