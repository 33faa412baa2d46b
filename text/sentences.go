package text

import (
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Splitter segments text into sentences for TTS and accessibility consumers.
// A nil Splitter is valid and treats the whole text as one sentence.
type Splitter struct {
	*sentences.DefaultSentenceTokenizer
}

// NewSplitter returns a sentence splitter for the given language, or nil when
// no tokenizer model is available for it. Only English ships a trained model;
// other languages fall back to whole-text sentences.
func NewSplitter(lang language.Tag, log *zap.Logger) *Splitter {
	if log == nil {
		log = zap.NewNop()
	}

	base, confidence := lang.Base()
	if confidence == language.No {
		log.Warn("Unable to determine language base, turning off sentence splitting", zap.Stringer("tag", lang))
		return nil
	}
	if base.String() != "en" {
		log.Warn("No sentence tokenizer model for language, turning off sentence splitting", zap.Stringer("tag", lang))
		return nil
	}

	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		log.Warn("Unable to load sentence tokenizer data", zap.Stringer("tag", lang), zap.Error(err))
		return nil
	}
	return &Splitter{tokenizer}
}

// AnnotateSentences returns as with one verbatim TTS annotation per sentence
// appended to its annotation list. Sentence ranges exclude the trailing
// whitespace the tokenizer attributes to the following sentence. With a nil
// splitter the whole text becomes a single sentence.
func (s *Splitter) AnnotateSentences(as AnnotatedString) AnnotatedString {
	if as.Len() == 0 {
		return as
	}

	annotations := make([]Range[Annotation], 0, len(as.annotations)+1)
	annotations = append(annotations, as.annotations...)

	if s == nil {
		annotations = append(annotations, Range[Annotation]{
			Item: VerbatimTts{Verbatim: as.text},
			End:  as.Len(),
		})
		return assemble(as.text, annotations)
	}

	cursor := 0
	for _, sentence := range s.Tokenize(as.text) {
		trimmed := strings.TrimSpace(sentence.Text)
		if trimmed == "" {
			continue
		}
		start := strings.Index(as.text[cursor:], trimmed)
		if start < 0 {
			// tokenizer rewrote the text, should not happen
			continue
		}
		start += cursor
		end := start + len(trimmed)
		annotations = append(annotations, Range[Annotation]{
			Item:  VerbatimTts{Verbatim: trimmed},
			Start: start,
			End:   end,
		})
		cursor = end
	}
	return assemble(as.text, annotations)
}
