// Package nlp provides the pre-built language capabilities the pipeline
// consumes: tokenization, named-entity recognition, and part-of-speech
// tagging. The models are small embedded lexicons loaded at construction
// time; a load failure is fatal at startup since every item depends on them.
package nlp

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed stopwords.txt
var stopwordsRaw string

//go:embed verbs.txt
var verbsRaw string

//go:embed adjectives.txt
var adjectivesRaw string

//go:embed organizations.txt
var organizationsRaw string

//go:embed products.txt
var productsRaw string

// loadLexicon parses an embedded one-word-per-line lexicon into a set.
func loadLexicon(name, raw string) (map[string]bool, error) {
	set := make(map[string]bool)
	for _, line := range strings.Split(raw, "\n") {
		word := strings.TrimSpace(strings.ToLower(line))
		if word == "" {
			continue
		}
		set[word] = true
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("lexicon %s is empty", name)
	}
	return set, nil
}

// Stopwords returns the English stopword set. The returned map is built
// fresh on each call so callers can hold it without sharing state.
func Stopwords() (map[string]bool, error) {
	return loadLexicon("stopwords", stopwordsRaw)
}
