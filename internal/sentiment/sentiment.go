// Package sentiment scores text polarity and subjectivity using an embedded
// word lexicon, in the manner of pattern-based sentiment libraries.
package sentiment

import (
	"bufio"
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/Mountain311/business-news-processor/internal/core"
)

//go:embed lexicon.txt
var lexiconRaw string

// negators flip and dampen the polarity of the following sentiment word.
var negators = map[string]bool{
	"not": true, "no": true, "never": true, "neither": true, "nor": true,
	"cannot": true, "without": true, "hardly": true, "barely": true,
}

// negationFactor scales a negated word's polarity: "not good" is mildly
// negative, not the full inverse of "good".
const negationFactor = -0.5

// entry is one lexicon word with its polarity and subjectivity weights.
type entry struct {
	polarity     float64
	subjectivity float64
}

// Scorer is a lexicon-based sentiment model. Built once at startup and
// read-only afterwards; a parse failure of the embedded lexicon is fatal.
type Scorer struct {
	lexicon map[string]entry
}

// NewScorer parses the embedded lexicon. Lines are "word polarity
// subjectivity"; blank lines and # comments are skipped.
func NewScorer() (*Scorer, error) {
	lexicon := make(map[string]entry)
	scanner := bufio.NewScanner(strings.NewReader(lexiconRaw))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("sentiment: lexicon line %d: want 3 fields, got %d", line, len(fields))
		}
		polarity, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("sentiment: lexicon line %d: bad polarity: %w", line, err)
		}
		subjectivity, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("sentiment: lexicon line %d: bad subjectivity: %w", line, err)
		}
		lexicon[strings.ToLower(fields[0])] = entry{polarity: polarity, subjectivity: subjectivity}
	}
	if len(lexicon) == 0 {
		return nil, fmt.Errorf("sentiment: lexicon is empty")
	}
	return &Scorer{lexicon: lexicon}, nil
}

// Analyze scores text and returns polarity in [-1, 1] and subjectivity in
// [0, 1], averaged over the lexicon words found. A preceding negator flips
// and dampens a word's polarity. Empty text, or text with no lexicon
// matches, scores neutral (0, 0).
func (s *Scorer) Analyze(text string) core.SentimentScore {
	words := strings.Fields(strings.ToLower(text))

	var polaritySum, subjectivitySum float64
	matches := 0
	negated := false
	for _, raw := range words {
		word := strings.Trim(raw, ".,!?;:\"'()[]")
		e, ok := s.lexicon[word]
		if !ok {
			// Stems: try singular/base form of a trailing "s".
			if len(word) > 3 && strings.HasSuffix(word, "s") {
				e, ok = s.lexicon[word[:len(word)-1]]
			}
		}
		if !ok {
			negated = negators[word]
			continue
		}

		polarity := e.polarity
		if negated {
			polarity *= negationFactor
		}
		polaritySum += polarity
		subjectivitySum += e.subjectivity
		matches++
		negated = false
	}

	if matches == 0 {
		return core.SentimentScore{}
	}

	score := core.SentimentScore{
		Polarity:     clamp(polaritySum/float64(matches), -1, 1),
		Subjectivity: clamp(subjectivitySum/float64(matches), 0, 1),
	}
	return score
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
