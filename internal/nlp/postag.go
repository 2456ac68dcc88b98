package nlp

import (
	"strings"
	"unicode"

	"github.com/Mountain311/business-news-processor/internal/core"
)

// adjectiveSuffixes mark tokens as adjectives when no lexicon entry exists.
var adjectiveSuffixes = []string{"ous", "ful", "ive", "able", "ible", "less", "ish"}

// Tagger assigns part-of-speech categories using embedded lexicons plus
// suffix and capitalization heuristics. Unknown lowercase words default to
// nouns, which is the dominant open-class category in news text.
type Tagger struct {
	verbs      map[string]bool
	adjectives map[string]bool
	stopwords  map[string]bool
}

// NewTagger loads the embedded lexicons. Returns an error if any fails.
func NewTagger() (*Tagger, error) {
	verbs, err := loadLexicon("verbs", verbsRaw)
	if err != nil {
		return nil, err
	}
	adjectives, err := loadLexicon("adjectives", adjectivesRaw)
	if err != nil {
		return nil, err
	}
	stopwords, err := loadLexicon("stopwords", stopwordsRaw)
	if err != nil {
		return nil, err
	}
	return &Tagger{verbs: verbs, adjectives: adjectives, stopwords: stopwords}, nil
}

// Tag tokenizes text and tags every token, preserving encounter order and
// original casing.
func (t *Tagger) Tag(text string) []core.Token {
	words := Tokenize(text)
	tokens := make([]core.Token, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, core.Token{Text: w.Text, POS: t.tagWord(w)})
	}
	return tokens
}

func (t *Tagger) tagWord(w Word) core.PartOfSpeech {
	tok := stripPossessive(w.Text)
	lower := strings.ToLower(tok)

	if !isAlphabetic(tok) {
		return core.POSOther
	}

	// Mid-sentence capitalization signals a proper noun. Sentence-initial
	// capitalized words are tagged by the same rules as lowercase ones,
	// except all-caps acronyms which read as proper nouns anywhere.
	if isCapitalized(tok) {
		if !w.SentenceStart || (isAllUpper(tok) && len(tok) >= 2 && !t.stopwords[lower]) {
			return core.POSProperNoun
		}
	}

	if t.verbs[lower] {
		return core.POSVerb
	}
	if t.adjectives[lower] {
		return core.POSAdjective
	}
	if len(lower) > 4 && strings.HasSuffix(lower, "ly") {
		return core.POSAdverb
	}
	for _, suffix := range adjectiveSuffixes {
		if len(lower) > len(suffix)+2 && strings.HasSuffix(lower, suffix) {
			return core.POSAdjective
		}
	}

	return core.POSNoun
}

// IsStopword reports whether the lowercase form of tok is a stopword.
func (t *Tagger) IsStopword(tok string) bool {
	return t.stopwords[strings.ToLower(tok)]
}

func isAlphabetic(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
