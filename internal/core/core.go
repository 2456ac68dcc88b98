// Package core defines the shared data model for the news processing pipeline.
package core

import "github.com/google/uuid"

// RawItem represents a single entry collected from a syndicated feed.
// Any field may be an empty string; malformed entries flow through the
// pipeline and are rejected by the relevance filter, never errored on.
type RawItem struct {
	Title       string `json:"title"`       // Entry title
	Description string `json:"description"` // Entry description/summary
	PubDate     string `json:"pub_date"`    // Publication date as published by the feed
	Link        string `json:"link"`        // Entry URL
}

// ID returns a deterministic identifier for the item, derived from its link
// and title. Used for logging and display only; items are not deduplicated.
func (r RawItem) ID() string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(r.Link+r.Title)).String()
}

// FullText returns the concatenated title and description that every
// pipeline stage operates on.
func (r RawItem) FullText() string {
	return r.Title + " " + r.Description
}

// SentimentScore holds polarity and subjectivity for a piece of text.
type SentimentScore struct {
	Polarity     float64 `json:"polarity"`     // -1.0 (negative) to 1.0 (positive)
	Subjectivity float64 `json:"subjectivity"` // 0.0 (objective) to 1.0 (subjective)
}

// ProcessedItem is a RawItem that survived relevance and company filtering,
// annotated with the derived classification fields. Each ProcessedItem is
// independent; the pipeline shares no mutable state between items.
type ProcessedItem struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	PubDate     string         `json:"pub_date"`
	Link        string         `json:"link"`
	Companies   []string       `json:"companies"` // Tracked companies mentioned, catalog order
	Alerts      []string       `json:"alerts"`    // Matched topic alerts, ranked, at most 5
	Sentiment   SentimentScore `json:"sentiment"`
	Keywords    []string       `json:"keywords"` // Salient tokens, at most 20
}

// EntityKind is the semantic category assigned to a named entity.
type EntityKind string

const (
	EntityOrganization EntityKind = "organization"
	EntityProduct      EntityKind = "product"
	EntityMoney        EntityKind = "money"
	EntityPercent      EntityKind = "percent"
	EntityOther        EntityKind = "other"
)

// Entity is a span of text tagged with a semantic category by the
// entity-recognition capability.
type Entity struct {
	Kind EntityKind `json:"kind"`
	Text string     `json:"text"`
}

// PartOfSpeech is the grammatical category assigned to a token.
type PartOfSpeech string

const (
	POSNoun       PartOfSpeech = "noun"
	POSProperNoun PartOfSpeech = "propn"
	POSAdjective  PartOfSpeech = "adj"
	POSVerb       PartOfSpeech = "verb"
	POSAdverb     PartOfSpeech = "adv"
	POSOther      PartOfSpeech = "other"
)

// Token is a word with its part-of-speech tag.
type Token struct {
	Text string       `json:"text"`
	POS  PartOfSpeech `json:"pos"`
}
