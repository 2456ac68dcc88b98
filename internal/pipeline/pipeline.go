// Package pipeline composes the classification stages and applies the
// short-circuit rejection rules per item.
package pipeline

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Mountain311/business-news-processor/internal/alerts"
	"github.com/Mountain311/business-news-processor/internal/companies"
	"github.com/Mountain311/business-news-processor/internal/core"
	"github.com/Mountain311/business-news-processor/internal/keywords"
	"github.com/Mountain311/business-news-processor/internal/logger"
	"github.com/Mountain311/business-news-processor/internal/nlp"
	"github.com/Mountain311/business-news-processor/internal/normalize"
	"github.com/Mountain311/business-news-processor/internal/relevance"
	"github.com/Mountain311/business-news-processor/internal/sentiment"
)

// defaultWorkers bounds concurrent item processing when the caller does
// not choose a pool size.
const defaultWorkers = 8

// Config carries the two catalogs the pipeline is built from. Both are
// read-only for the process lifetime; changing them means building a new
// Processor.
type Config struct {
	Companies []string // tracked-company catalog
	Topics    []string // alert topic catalog
	Workers   int      // concurrent items; defaults to defaultWorkers
}

// Processor runs the full classification pipeline. All state is built once
// in New, before any processing starts, and never written again, so a
// single Processor is safe for concurrent use without locking.
type Processor struct {
	classifier *relevance.Classifier
	matcher    *companies.Matcher
	tagger     *alerts.Tagger
	scorer     *sentiment.Scorer
	extractor  *keywords.Extractor
	workers    int
	log        zerolog.Logger
}

// New builds every capability and catalog embedding up front. Any model or
// catalog that fails to load fails the whole constructor: every item
// depends on them, so the process must not start partially degraded.
func New(cfg Config) (*Processor, error) {
	recognizer, err := nlp.NewEntityRecognizer(cfg.Companies)
	if err != nil {
		return nil, err
	}
	posTagger, err := nlp.NewTagger()
	if err != nil {
		return nil, err
	}
	normalizer, err := normalize.New()
	if err != nil {
		return nil, err
	}
	scorer, err := sentiment.NewScorer()
	if err != nil {
		return nil, err
	}
	space, err := alerts.NewSpace(cfg.Topics)
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	return &Processor{
		classifier: relevance.NewClassifier(recognizer),
		matcher:    companies.NewMatcher(recognizer, cfg.Companies),
		tagger:     alerts.NewTagger(space, normalizer),
		scorer:     scorer,
		extractor:  keywords.NewExtractor(posTagger),
		workers:    workers,
		log:        logger.With("pipeline"),
	}, nil
}

// Process classifies a single item. The second return value is false when
// the item was rejected: not business news, or no tracked company matched.
// Rejection is the normal "not relevant" outcome, never an error.
func (p *Processor) Process(item core.RawItem) (*core.ProcessedItem, bool) {
	fullText := item.FullText()

	if !p.classifier.IsBusinessNews(fullText) {
		p.log.Debug().Str("item", item.ID()).Msg("rejected: not business news")
		return nil, false
	}

	matched := p.matcher.Identify(fullText)
	if len(matched) == 0 {
		p.log.Debug().Str("item", item.ID()).Msg("rejected: no tracked company")
		return nil, false
	}

	return &core.ProcessedItem{
		Title:       item.Title,
		Description: item.Description,
		PubDate:     item.PubDate,
		Link:        item.Link,
		Companies:   matched,
		Alerts:      p.tagger.Tag(fullText),
		Sentiment:   p.scorer.Analyze(fullText),
		Keywords:    p.extractor.Extract(fullText),
	}, true
}

// ProcessAll classifies items concurrently with a bounded worker pool.
// Each item is independent, so the only coordination is the result slice:
// workers write to their own index, and rejected slots are compacted at
// the end, which preserves input order in the output.
func (p *Processor) ProcessAll(ctx context.Context, items []core.RawItem) ([]core.ProcessedItem, error) {
	results := make([]*core.ProcessedItem, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, item := range items {
		i, item := i, item // per-iteration copies for the Go 1.21 toolchain
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if processed, ok := p.Process(item); ok {
				results[i] = processed
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	kept := make([]core.ProcessedItem, 0, len(items))
	for _, r := range results {
		if r != nil {
			kept = append(kept, *r)
		}
	}
	p.log.Info().Int("in", len(items)).Int("kept", len(kept)).Msg("processed items")
	return kept, nil
}
