package render

import (
	"strings"
	"testing"

	"github.com/Mountain311/business-news-processor/internal/core"
)

func TestItem(t *testing.T) {
	item := core.ProcessedItem{
		Title:     "Apple Inc. reports record revenue",
		PubDate:   "Mon, 02 Jan 2006 15:04:05 MST",
		Link:      "https://example.com/apple",
		Companies: []string{"Apple Inc."},
		Alerts:    []string{"Artificial Intelligence", "Earnings Report"},
		Sentiment: core.SentimentScore{Polarity: 0.35, Subjectivity: 0.45},
		Keywords:  []string{"revenue", "profit"},
	}

	got := Item(item)
	for _, want := range []string{
		item.Title,
		item.Link,
		"Apple Inc.",
		"Artificial Intelligence, Earnings Report",
		"polarity 0.35",
		"revenue, profit",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered item missing %q:\n%s", want, got)
		}
	}
}

func TestItemsEmpty(t *testing.T) {
	got := Items(nil)
	if !strings.Contains(got, "No relevant business news items.") {
		t.Errorf("empty render = %q, expected the empty-state message", got)
	}
}

func TestItemsCount(t *testing.T) {
	items := []core.ProcessedItem{
		{Title: "first"},
		{Title: "second"},
	}
	got := Items(items)
	if !strings.Contains(got, "Processed 2 relevant news item(s)") {
		t.Errorf("render missing the count line:\n%s", got)
	}
	if !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Errorf("render missing item titles:\n%s", got)
	}
}
