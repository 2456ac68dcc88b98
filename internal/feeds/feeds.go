// Package feeds collects raw items from syndicated news feeds. It is the
// pipeline's input collaborator: an I/O wrapper returning a flat item list,
// with no classification logic of its own.
package feeds

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog"

	"github.com/Mountain311/business-news-processor/internal/core"
	"github.com/Mountain311/business-news-processor/internal/logger"
)

// Fetcher retrieves and parses RSS/Atom feeds.
type Fetcher struct {
	parser  *gofeed.Parser
	timeout time.Duration
	log     zerolog.Logger
}

// NewFetcher creates a feed fetcher with a per-feed timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Fetcher{
		parser:  gofeed.NewParser(),
		timeout: timeout,
		log:     logger.With("feeds"),
	}
}

// FetchAll fetches every feed URL and returns the combined flat list of
// raw items. Failed sources are logged and skipped; feed retrieval has no
// retry policy here and items are not deduplicated across feeds.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) []core.RawItem {
	var items []core.RawItem
	for _, url := range urls {
		fetched, err := f.fetch(ctx, url)
		if err != nil {
			f.log.Warn().Str("url", url).Err(err).Msg("skipping feed")
			continue
		}
		f.log.Debug().Str("url", url).Int("items", len(fetched)).Msg("fetched feed")
		items = append(items, fetched...)
	}
	return items
}

// fetch parses one feed URL into raw items.
func (f *Fetcher) fetch(ctx context.Context, url string) ([]core.RawItem, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	feed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, err
	}

	items := make([]core.RawItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		items = append(items, core.RawItem{
			Title:       strings.TrimSpace(item.Title),
			Description: cleanHTML(item.Description),
			PubDate:     item.Published,
			Link:        item.Link,
		})
	}
	return items, nil
}

// cleanHTML strips markup from feed descriptions, which frequently carry
// embedded HTML.
func cleanHTML(s string) string {
	if s == "" || !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}
