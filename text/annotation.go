package text

// Annotation is the closed set of payloads attachable to a Range over an
// AnnotatedString: SpanStyle, ParagraphStyle, StringAnnotation, a TTS
// annotation, a link annotation or a Bullet. The set is fixed; every consumer
// switches over it exhaustively.
type Annotation interface {
	annotation()
}

// StringAnnotation carries opaque tagged metadata over a range. The meaning
// of the value is up to the application; the range Tag namespaces queries.
type StringAnnotation string

func (StringAnnotation) annotation() {}

// TtsAnnotation marks a range with instructions for text-to-speech engines.
type TtsAnnotation interface {
	Annotation
	tts()
}

// VerbatimTts tells a text-to-speech engine to read the attached text
// verbatim, character by character.
type VerbatimTts struct {
	Verbatim string
}

func (VerbatimTts) annotation() {}
func (VerbatimTts) tts()        {}

// UrlAnnotation attaches a bare URL to a range. Retained for callers that
// predate Link; new code should use LinkURL.
type UrlAnnotation struct {
	URL string
}

func (UrlAnnotation) annotation() {}

// Link marks a range of text the user can interact with. Either a LinkURL or
// a LinkClickable.
type Link interface {
	Annotation
	link()
}

// TextLinkStyles carries the span styling of a link in its interaction
// states. Unset states fall back to Style.
type TextLinkStyles struct {
	Style   SpanStyle
	Focused SpanStyle
	Hovered SpanStyle
	Pressed SpanStyle
}

// LinkURL is a link that opens the given URL when activated.
type LinkURL struct {
	URL    string
	Styles TextLinkStyles
}

func (LinkURL) annotation() {}
func (LinkURL) link()       {}

// LinkClickable is a link dispatched back to the application by tag instead
// of resolving to a URL.
type LinkClickable struct {
	Tag    string
	Styles TextLinkStyles
}

func (LinkClickable) annotation() {}
func (LinkClickable) link()       {}
