package nlp

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Mountain311/business-news-processor/internal/core"
)

var (
	// moneyPattern matches currency amounts: "$3.2 billion", "€500m",
	// "20 million dollars".
	moneyPattern = regexp.MustCompile(`(?i)(?:[$€£¥]\s?\d[\d,]*(?:\.\d+)?(?:\s?(?:million|billion|trillion|[mbk]n?))?|\d[\d,]*(?:\.\d+)?\s?(?:million|billion|trillion)?\s?(?:dollars|euros|pounds|rupees|yen|cents))`)

	// percentPattern matches percentages: "20%", "3.5 percent".
	percentPattern = regexp.MustCompile(`(?i)\d[\d,]*(?:\.\d+)?\s?(?:%|percent|per cent)`)
)

// corporateDesignators are span-final tokens that mark an organization name.
var corporateDesignators = map[string]bool{
	"inc": true, "corp": true, "corporation": true, "ltd": true, "llc": true,
	"co": true, "plc": true, "group": true, "holdings": true, "partners": true,
	"technologies": true, "systems": true, "labs": true, "ventures": true,
	"capital": true, "bank": true, "motors": true, "airlines": true,
	"industries": true, "enterprises": true, "media": true, "networks": true,
}

// EntityRecognizer extracts named entities from raw (non-normalized) text.
// It is built once at startup from embedded gazetteers plus the tracked
// company catalog, and is read-only afterwards.
type EntityRecognizer struct {
	orgs      map[string]bool // known organization names, lowercased
	orgTokens map[string]bool // leading tokens of known organizations
	products  map[string]bool
	stopwords map[string]bool
}

// NewEntityRecognizer builds the recognizer, seeding the organization
// gazetteer with the supplied company names. Returns an error if any
// embedded lexicon fails to load.
func NewEntityRecognizer(knownOrgs []string) (*EntityRecognizer, error) {
	orgs, err := loadLexicon("organizations", organizationsRaw)
	if err != nil {
		return nil, err
	}
	products, err := loadLexicon("products", productsRaw)
	if err != nil {
		return nil, err
	}
	stopwords, err := loadLexicon("stopwords", stopwordsRaw)
	if err != nil {
		return nil, err
	}

	orgTokens := make(map[string]bool)
	for name := range orgs {
		if first, _, ok := strings.Cut(name, " "); ok && len(first) >= 3 {
			orgTokens[first] = true
		}
	}
	for _, name := range knownOrgs {
		lower := strings.ToLower(strings.TrimSpace(name))
		if lower == "" {
			continue
		}
		orgs[lower] = true
		orgs[strings.TrimSuffix(lower, ".")] = true
		// Seed the leading token too, so "Apple" finds "Apple Inc.".
		first, _, _ := strings.Cut(lower, " ")
		first = strings.TrimSuffix(first, ".")
		if len(first) >= 3 && !stopwords[first] {
			orgTokens[first] = true
		}
	}

	return &EntityRecognizer{
		orgs:      orgs,
		orgTokens: orgTokens,
		products:  products,
		stopwords: stopwords,
	}, nil
}

// Entities returns all recognized entities in encounter order. Money and
// percent amounts come from pattern matches; organizations and products
// from capitalized spans checked against designators and gazetteers.
func (er *EntityRecognizer) Entities(text string) []core.Entity {
	var entities []core.Entity

	for _, m := range moneyPattern.FindAllString(text, -1) {
		entities = append(entities, core.Entity{Kind: core.EntityMoney, Text: strings.TrimSpace(m)})
	}
	for _, m := range percentPattern.FindAllString(text, -1) {
		entities = append(entities, core.Entity{Kind: core.EntityPercent, Text: strings.TrimSpace(m)})
	}

	words := Tokenize(text)
	for i := 0; i < len(words); {
		if !looksProper(words[i].Text) {
			i++
			continue
		}

		// Collect the run of adjacent capitalized tokens.
		j := i + 1
		for j < len(words) && looksProper(words[j].Text) && !words[j].SentenceStart &&
			words[j].Start-words[j-1].End <= 1 {
			j++
		}

		span := make([]string, 0, j-i)
		for _, w := range words[i:j] {
			span = append(span, stripPossessive(w.Text))
		}

		if ent, ok := er.classifySpan(span, words[i].SentenceStart); ok {
			entities = append(entities, ent)
		}
		i = j
	}

	return entities
}

// classifySpan decides whether a capitalized span is an organization or a
// product. Sentence-initial single words only qualify through a gazetteer
// so ordinary sentence openers are not misread as entities.
func (er *EntityRecognizer) classifySpan(span []string, sentenceInitial bool) (core.Entity, bool) {
	text := strings.Join(span, " ")
	lower := strings.ToLower(text)

	last := strings.ToLower(strings.TrimSuffix(span[len(span)-1], "."))
	if len(span) > 1 && corporateDesignators[last] {
		return core.Entity{Kind: core.EntityOrganization, Text: text}, true
	}

	if er.orgs[lower] || er.orgs[strings.TrimSuffix(lower, ".")] {
		return core.Entity{Kind: core.EntityOrganization, Text: text}, true
	}
	if len(span) == 1 && er.orgTokens[strings.TrimSuffix(lower, ".")] {
		return core.Entity{Kind: core.EntityOrganization, Text: text}, true
	}
	if er.products[lower] {
		return core.Entity{Kind: core.EntityProduct, Text: text}, true
	}

	// All-caps acronyms (IBM, SEC) read as organizations.
	if len(span) == 1 && len(span[0]) >= 2 && isAllUpper(span[0]) && !er.stopwords[lower] {
		return core.Entity{Kind: core.EntityOrganization, Text: text}, true
	}

	// A multi-word capitalized span away from a sentence start is likely a
	// proper name; treat it as an organization candidate. Single unknown
	// capitalized words stay unclassified.
	if len(span) > 1 && !sentenceInitial {
		return core.Entity{Kind: core.EntityOrganization, Text: text}, true
	}

	return core.Entity{}, false
}

// looksProper reports whether a token is shaped like a proper name: either
// capitalized or camel-cased ("iPhone", "eBay").
func looksProper(tok string) bool {
	if isCapitalized(tok) {
		return true
	}
	hasUpper := false
	for _, r := range tok {
		if unicode.IsUpper(r) {
			hasUpper = true
			break
		}
	}
	return hasUpper
}

func isCapitalized(tok string) bool {
	for _, r := range tok {
		return unicode.IsUpper(r)
	}
	return false
}

func isAllUpper(tok string) bool {
	hasLetter := false
	for _, r := range tok {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
