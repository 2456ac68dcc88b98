package alerts

import (
	"sort"

	"github.com/Mountain311/business-news-processor/internal/normalize"
)

const (
	// maxAlerts caps how many alert labels a single item can carry.
	maxAlerts = 5
	// similarityThreshold drops topics whose cosine similarity is too weak
	// to be a meaningful match.
	similarityThreshold = 0.1
)

// Tagger assigns ranked alert labels to text using a pre-built Space.
type Tagger struct {
	space      *Space
	normalizer *normalize.Normalizer
}

// NewTagger creates a tagger over the given space.
func NewTagger(space *Space, normalizer *normalize.Normalizer) *Tagger {
	return &Tagger{space: space, normalizer: normalizer}
}

// Tag returns up to five alert labels ranked by descending cosine
// similarity against the topic catalog. Ranking happens first, then the
// similarity threshold is applied to the top ranks, keeping cutoff and cap
// independently tunable. Equal similarities keep catalog insertion order.
// Text matching nothing returns an empty slice, not an error.
func (t *Tagger) Tag(text string) []string {
	query := t.space.Project(t.normalizer.Normalize(text))

	type ranked struct {
		index      int
		similarity float64
	}
	scores := make([]ranked, len(t.space.vectors))
	for i, vec := range t.space.vectors {
		scores[i] = ranked{index: i, similarity: cosineSimilarity(query, vec)}
	}

	// Stable sort keeps ties in catalog order.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].similarity > scores[j].similarity
	})

	top := scores
	if len(top) > maxAlerts {
		top = top[:maxAlerts]
	}

	labels := make([]string, 0, len(top))
	for _, r := range top {
		if r.similarity <= similarityThreshold {
			continue
		}
		labels = append(labels, t.space.labels[r.index])
	}
	return labels
}
