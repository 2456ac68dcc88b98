// Package keywords extracts salient tokens from news text using
// part-of-speech filtering.
package keywords

import (
	"github.com/Mountain311/business-news-processor/internal/core"
	"github.com/Mountain311/business-news-processor/internal/nlp"
)

// maxKeywords caps the number of keywords per item.
const maxKeywords = 20

// Extractor pulls keyword tokens out of raw text.
type Extractor struct {
	tagger *nlp.Tagger
}

// NewExtractor builds an extractor over the given POS tagger.
func NewExtractor(tagger *nlp.Tagger) *Extractor {
	return &Extractor{tagger: tagger}
}

// Extract returns up to 20 unique keywords: alphabetic, non-stopword
// tokens tagged as common noun, proper noun, or adjective. Deduplication
// is case-sensitive and the first 20 in encounter order win; there is no
// importance ranking.
func (e *Extractor) Extract(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tok := range e.tagger.Tag(text) {
		switch tok.POS {
		case core.POSNoun, core.POSProperNoun, core.POSAdjective:
		default:
			continue
		}
		if !isAlpha(tok.Text) || e.tagger.IsStopword(tok.Text) || seen[tok.Text] {
			continue
		}
		seen[tok.Text] = true
		out = append(out, tok.Text)
		if len(out) == maxKeywords {
			break
		}
	}
	return out
}

func isAlpha(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
