// Package normalize implements text normalization for the classification
// pipeline: lowercasing, tokenization, stopword and non-alphanumeric
// filtering, and lemmatization.
package normalize

import (
	"regexp"
	"strings"

	"github.com/Mountain311/business-news-processor/internal/nlp"
)

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// Normalizer is a pure-function text normalizer. Construct once and share
// freely; it holds only read-only state.
type Normalizer struct {
	stopwords map[string]bool
}

// New builds a Normalizer. Returns an error if the stopword set fails to
// load.
func New() (*Normalizer, error) {
	stopwords, err := nlp.Stopwords()
	if err != nil {
		return nil, err
	}
	return &Normalizer{stopwords: stopwords}, nil
}

// Normalize lowercases text, tokenizes on word boundaries, discards tokens
// that are stopwords or not purely alphanumeric, lemmatizes the survivors,
// and joins them with single spaces. Deterministic; empty input yields
// empty output.
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if n.stopwords[tok] {
			continue
		}
		out = append(out, Lemmatize(tok))
	}
	return strings.Join(out, " ")
}

// irregularNouns maps irregular plural forms to their singular lemma.
var irregularNouns = map[string]string{
	"men": "man", "women": "woman", "children": "child", "people": "person",
	"feet": "foot", "teeth": "tooth", "geese": "goose", "mice": "mouse",
	"indices": "index", "analyses": "analysis", "crises": "crisis",
	"criteria": "criterion", "data": "datum", "media": "medium",
	"series": "series", "species": "species", "news": "news",
}

// nonPlurals are s-final words that must not be singularized.
var nonPlurals = map[string]bool{
	"always": true, "bus": true, "business": true, "campus": true,
	"canvas": true, "census": true, "chaos": true, "class": true,
	"devops": true,
	"focus": true, "gas": true, "its": true, "lens": true, "loss": true,
	"perhaps": true, "plus": true, "status": true, "surplus": true,
	"this": true, "various": true, "virus": true, "was": true, "yes": true,
}

// Lemmatize reduces a lowercase token to its base noun form: irregular
// plurals via the exception table, regular plurals via suffix rules.
// Matches the behavior of a dictionary noun lemmatizer closely enough for
// vector-space projection, where only consistent treatment of catalog and
// query text matters.
func Lemmatize(tok string) string {
	if lemma, ok := irregularNouns[tok]; ok {
		return lemma
	}
	if nonPlurals[tok] || len(tok) < 4 || !strings.HasSuffix(tok, "s") {
		return tok
	}

	switch {
	case strings.HasSuffix(tok, "ies") && len(tok) > 4:
		return tok[:len(tok)-3] + "y"
	case strings.HasSuffix(tok, "sses"), strings.HasSuffix(tok, "shes"),
		strings.HasSuffix(tok, "ches"), strings.HasSuffix(tok, "xes"),
		strings.HasSuffix(tok, "zes"):
		return tok[:len(tok)-2]
	case strings.HasSuffix(tok, "ss"), strings.HasSuffix(tok, "us"),
		strings.HasSuffix(tok, "is"), strings.HasSuffix(tok, "ics"):
		return tok
	default:
		return tok[:len(tok)-1]
	}
}
