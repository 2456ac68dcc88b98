// Package companies matches organization entities found in news text
// against the tracked-company catalog.
package companies

import (
	"strings"

	"github.com/Mountain311/business-news-processor/internal/core"
	"github.com/Mountain311/business-news-processor/internal/nlp"
)

// Matcher identifies tracked companies mentioned in text. The catalog is
// fixed at construction and read-only afterwards.
type Matcher struct {
	recognizer *nlp.EntityRecognizer
	catalog    []string // canonical names, insertion order
	lowered    []string // lowercased names, same order
}

// NewMatcher builds a matcher over the company catalog, using the given
// recognizer to extract organization entities.
func NewMatcher(recognizer *nlp.EntityRecognizer, catalog []string) *Matcher {
	lowered := make([]string, len(catalog))
	for i, name := range catalog {
		lowered[i] = strings.ToLower(name)
	}
	return &Matcher{
		recognizer: recognizer,
		catalog:    append([]string(nil), catalog...),
		lowered:    lowered,
	}
}

// Identify extracts organization entities from text and returns every
// catalog entry that passes a bidirectional case-insensitive substring test
// against any of them: the entity text contains the catalog name, or the
// catalog name contains the entity text. Deliberately permissive so
// abbreviations match ("Apple" finds "Apple Inc.") at the cost of false
// positives on short names. Results are deduplicated and returned in
// catalog order; no organization entities yields an empty result.
func (m *Matcher) Identify(text string) []string {
	var orgs []string
	for _, ent := range m.recognizer.Entities(text) {
		if ent.Kind == core.EntityOrganization {
			orgs = append(orgs, strings.ToLower(ent.Text))
		}
	}
	if len(orgs) == 0 {
		return nil
	}

	var matched []string
	for i, name := range m.lowered {
		for _, org := range orgs {
			if strings.Contains(org, name) || strings.Contains(name, org) {
				matched = append(matched, m.catalog[i])
				break
			}
		}
	}
	return matched
}
