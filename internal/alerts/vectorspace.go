// Package alerts tags news text with topical alert categories by projecting
// it into a TF-IDF vector space built from the alert catalog and ranking
// topics by cosine similarity.
package alerts

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// vocabPattern extracts vocabulary terms: runs of two or more word
// characters, the same token shape the catalog vectors are built from.
var vocabPattern = regexp.MustCompile(`\b\w\w+\b`)

// acronyms expands common tech abbreviations to the full forms the catalog
// labels use, so "AI" in query text lands on "Artificial Intelligence".
// Applied identically when embedding the catalog and when projecting
// queries, keeping the frozen-vocabulary guarantee intact.
var acronyms = map[string][]string{
	"ai":  {"artificial", "intelligence"},
	"ar":  {"augmented", "reality"},
	"iot": {"internet", "things"},
	"ml":  {"machine", "learning"},
	"nlp": {"natural", "language", "processing"},
	"vr":  {"virtual", "reality"},
}

// analyze tokenizes lowercase text into vocabulary terms with acronyms
// expanded.
func analyze(text string) []string {
	raw := vocabPattern.FindAllString(text, -1)
	terms := make([]string, 0, len(raw))
	for _, term := range raw {
		if full, ok := acronyms[term]; ok {
			terms = append(terms, full...)
			continue
		}
		terms = append(terms, term)
	}
	return terms
}

// Space is a TF-IDF vector space over a fixed topic catalog. It is built
// exactly once per process, before any concurrent processing begins, and
// is immutable afterwards: the vocabulary is frozen at build time and
// never re-fit on query text.
type Space struct {
	labels  []string            // catalog labels in insertion order
	vocab   map[string]int      // term -> dimension index
	idf     []float64           // per-dimension inverse document frequency
	vectors [][]float64         // per-label l2-normalized TF-IDF vectors
}

// NewSpace embeds the topic catalog into a TF-IDF vector space. The labels
// themselves are the document corpus: term frequency counts come from each
// label, document frequency from how many labels share a term. Returns an
// error for an empty catalog, since a space with no topics cannot rank
// anything.
func NewSpace(labels []string) (*Space, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("alerts: topic catalog is empty")
	}

	docs := make([][]string, len(labels))
	vocab := make(map[string]int)
	for i, label := range labels {
		terms := analyze(strings.ToLower(label))
		docs[i] = terms
		for _, term := range terms {
			if _, ok := vocab[term]; !ok {
				vocab[term] = len(vocab)
			}
		}
	}
	if len(vocab) == 0 {
		return nil, fmt.Errorf("alerts: topic catalog yields no vocabulary terms")
	}

	// Smoothed IDF: ln((1+n)/(1+df)) + 1. Every term scores even when it
	// appears in all documents.
	df := make([]int, len(vocab))
	for _, terms := range docs {
		seen := make(map[string]bool, len(terms))
		for _, term := range terms {
			if !seen[term] {
				seen[term] = true
				df[vocab[term]]++
			}
		}
	}
	n := float64(len(labels))
	idf := make([]float64, len(vocab))
	for i, d := range df {
		idf[i] = math.Log((1+n)/(1+float64(d))) + 1
	}

	s := &Space{
		labels: append([]string(nil), labels...),
		vocab:  vocab,
		idf:    idf,
	}
	s.vectors = make([][]float64, len(labels))
	for i, terms := range docs {
		s.vectors[i] = s.vectorize(terms)
	}
	return s, nil
}

// Labels returns the catalog labels in insertion order.
func (s *Space) Labels() []string {
	return append([]string(nil), s.labels...)
}

// Project embeds normalized query text into the space. Out-of-vocabulary
// terms contribute nothing; text sharing no terms with the catalog yields
// the zero vector.
func (s *Space) Project(normalized string) []float64 {
	return s.vectorize(analyze(normalized))
}

// vectorize builds an l2-normalized TF-IDF vector from a term sequence.
func (s *Space) vectorize(terms []string) []float64 {
	vec := make([]float64, len(s.vocab))
	for _, term := range terms {
		if idx, ok := s.vocab[term]; ok {
			vec[idx]++
		}
	}
	var norm float64
	for i := range vec {
		vec[i] *= s.idf[i]
		norm += vec[i] * vec[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Zero vectors have zero similarity to everything.
func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
