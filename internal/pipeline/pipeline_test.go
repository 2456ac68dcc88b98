package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/Mountain311/business-news-processor/internal/config"
	"github.com/Mountain311/business-news-processor/internal/core"
)

const (
	appleTitle = "Apple Inc. reports record quarterly revenue amid AI push"
	appleBody  = "Apple's profit grew 20% driven by strong iPhone sales and AI investments."

	bakeryTitle = "Local bakery wins community award"
	bakeryBody  = "The bakery was praised for its fresh bread."
)

func newProcessor(t *testing.T) *Processor {
	t.Helper()
	p, err := New(Config{
		Companies: config.DefaultCompanies,
		Topics:    config.DefaultTopics,
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return p
}

func TestNewErrors(t *testing.T) {
	if _, err := New(Config{Companies: config.DefaultCompanies}); err == nil {
		t.Error("New with an empty topic catalog returned no error, expected one")
	}
}

func TestProcessRelevantItem(t *testing.T) {
	p := newProcessor(t)

	item := core.RawItem{
		Title:       appleTitle,
		Description: appleBody,
		PubDate:     "Mon, 02 Jan 2006 15:04:05 MST",
		Link:        "https://example.com/apple-earnings",
	}
	got, ok := p.Process(item)
	if !ok {
		t.Fatal("Process rejected a business item mentioning a tracked company")
	}

	if got.Title != item.Title || got.Link != item.Link || got.PubDate != item.PubDate {
		t.Error("Process did not carry the raw item fields through")
	}

	if len(got.Companies) == 0 || got.Companies[0] != "Apple Inc." {
		t.Errorf("Companies = %v, expected to lead with %q", got.Companies, "Apple Inc.")
	}

	if len(got.Alerts) == 0 || len(got.Alerts) > 5 {
		t.Fatalf("Alerts = %v, expected between 1 and 5 labels", got.Alerts)
	}
	if got.Alerts[0] != "Artificial Intelligence" {
		t.Errorf("top alert = %q, expected %q", got.Alerts[0], "Artificial Intelligence")
	}

	if got.Sentiment.Polarity <= 0 {
		t.Errorf("Sentiment.Polarity = %v, expected positive for upbeat earnings text", got.Sentiment.Polarity)
	}

	if len(got.Keywords) == 0 || len(got.Keywords) > 20 {
		t.Fatalf("Keywords = %v, expected between 1 and 20", got.Keywords)
	}
	for _, kw := range []string{"revenue", "profit", "sales"} {
		found := false
		for _, k := range got.Keywords {
			if k == kw {
				found = true
			}
		}
		if !found {
			t.Errorf("Keywords %v missing %q", got.Keywords, kw)
		}
	}
	fullText := item.FullText()
	for _, k := range got.Keywords {
		if !strings.Contains(fullText, k) {
			t.Errorf("keyword %q does not occur in the item text", k)
		}
	}
}

func TestProcessRejections(t *testing.T) {
	p := newProcessor(t)

	testCases := []struct {
		name string
		item core.RawItem
	}{
		{
			name: "Not business news",
			item: core.RawItem{Title: bakeryTitle, Description: bakeryBody},
		},
		{
			name: "Business news without a tracked company",
			item: core.RawItem{
				Title:       "Acme Corp posts strong quarterly revenue",
				Description: "The industrial group raised its forecast.",
			},
		},
		{
			name: "Empty item",
			item: core.RawItem{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got, ok := p.Process(tc.item); ok {
				t.Errorf("Process accepted the item, expected rejection: %+v", got)
			}
		})
	}
}

func TestProcessAllKeepsInputOrder(t *testing.T) {
	p := newProcessor(t)

	items := []core.RawItem{
		{Title: appleTitle, Description: appleBody, Link: "https://example.com/1"},
		{Title: bakeryTitle, Description: bakeryBody, Link: "https://example.com/2"},
		{Title: "Microsoft unveils new cloud computing services", Description: "Microsoft announced expanded Azure offerings for enterprise customers.", Link: "https://example.com/3"},
	}

	got, err := p.ProcessAll(context.Background(), items)
	if err != nil {
		t.Fatalf("ProcessAll returned error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("ProcessAll kept %d items, expected 2: %+v", len(got), got)
	}
	if got[0].Link != items[0].Link || got[1].Link != items[2].Link {
		t.Errorf("ProcessAll reordered results: %q, %q", got[0].Link, got[1].Link)
	}
}

func TestProcessAllEmpty(t *testing.T) {
	p := newProcessor(t)

	got, err := p.ProcessAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("ProcessAll returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ProcessAll = %v, expected no results", got)
	}
}

func TestProcessAllCancelled(t *testing.T) {
	p := newProcessor(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := make([]core.RawItem, 64)
	for i := range items {
		items[i] = core.RawItem{Title: appleTitle, Description: appleBody}
	}
	if _, err := p.ProcessAll(ctx, items); err == nil {
		t.Error("ProcessAll with a cancelled context returned no error, expected one")
	}
}
