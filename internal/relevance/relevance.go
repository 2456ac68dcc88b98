// Package relevance decides whether a piece of text is business news.
// Two independent signals are OR-combined: structured named-entity evidence
// (organizations, products, monetary amounts, percentages) and a fixed
// business-vocabulary allowlist. Entities capture named signals that plain
// keyword matching misses; keywords catch topical language with no named
// entities. Presence or absence only, no numeric threshold.
package relevance

import (
	"strings"

	"github.com/Mountain311/business-news-processor/internal/core"
	"github.com/Mountain311/business-news-processor/internal/nlp"
)

// businessKeywords is the allowlist matched case-insensitively as
// substrings of the raw text.
var businessKeywords = []string{
	"revenue", "profit", "merger", "acquisition", "stock", "market", "industry",
	"economy", "startup", "investment", "venture capital", "IPO", "earnings",
	"financial", "CEO", "executives", "board", "shareholders", "dividend",
	"forecast", "growth", "downturn", "recession", "expansion", "quarterly",
	"fiscal", "technology", "innovation", "disruption", "partnership",
	"collaboration", "competition", "market share", "strategy", "valuation",
	"funding", "Series A", "Series B", "angel investor", "private equity",
	"hedge fund", "blockchain", "cryptocurrency", "artificial intelligence",
	"machine learning", "cloud computing", "SaaS", "e-commerce", "fintech",
	"biotech", "cleantech", "cybersecurity", "data analytics", "IoT",
	"augmented reality", "virtual reality", "5G", "quantum computing",
	"robotics", "autonomous vehicles", "space technology", "green energy",
}

// Classifier decides business relevance of raw (non-normalized) text.
type Classifier struct {
	recognizer *nlp.EntityRecognizer
	keywords   []string // lowercased allowlist
}

// NewClassifier builds a classifier on top of the given entity recognizer.
func NewClassifier(recognizer *nlp.EntityRecognizer) *Classifier {
	keywords := make([]string, len(businessKeywords))
	for i, kw := range businessKeywords {
		keywords[i] = strings.ToLower(kw)
	}
	return &Classifier{recognizer: recognizer, keywords: keywords}
}

// IsBusinessNews reports whether text carries at least one business entity
// (organization, product, money, or percent) or any allowlist keyword.
func (c *Classifier) IsBusinessNews(text string) bool {
	for _, ent := range c.recognizer.Entities(text) {
		switch ent.Kind {
		case core.EntityOrganization, core.EntityProduct, core.EntityMoney, core.EntityPercent:
			return true
		}
	}

	lower := strings.ToLower(text)
	for _, kw := range c.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
