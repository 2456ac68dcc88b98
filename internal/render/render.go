// Package render formats processed items for terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mountain311/business-news-processor/internal/core"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	metaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	ruleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Item renders a single processed item as styled multi-line text.
func Item(item core.ProcessedItem) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(item.Title))
	b.WriteString("\n")
	if item.PubDate != "" {
		b.WriteString(metaStyle.Render(item.PubDate))
		b.WriteString("\n")
	}
	if item.Link != "" {
		b.WriteString(metaStyle.Render(item.Link))
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render("Companies: "))
	b.WriteString(strings.Join(item.Companies, ", "))
	b.WriteString("\n")

	if len(item.Alerts) > 0 {
		b.WriteString(labelStyle.Render("Alerts: "))
		b.WriteString(strings.Join(item.Alerts, ", "))
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render("Sentiment: "))
	b.WriteString(sentimentLine(item.Sentiment))
	b.WriteString("\n")

	if len(item.Keywords) > 0 {
		b.WriteString(labelStyle.Render("Keywords: "))
		b.WriteString(strings.Join(item.Keywords, ", "))
		b.WriteString("\n")
	}

	if item.Description != "" {
		b.WriteString(item.Description)
		b.WriteString("\n")
	}
	return b.String()
}

// Items renders a full result set with separators and a count line.
func Items(items []core.ProcessedItem) string {
	if len(items) == 0 {
		return metaStyle.Render("No relevant business news items.") + "\n"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Processed %d relevant news item(s)\n\n", len(items)))
	for i, item := range items {
		b.WriteString(Item(item))
		if i < len(items)-1 {
			b.WriteString(ruleStyle.Render(strings.Repeat("─", 60)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// sentimentLine formats polarity and subjectivity, coloring polarity by
// sign.
func sentimentLine(s core.SentimentScore) string {
	text := fmt.Sprintf("polarity %.2f, subjectivity %.2f", s.Polarity, s.Subjectivity)
	switch {
	case s.Polarity > 0:
		return positiveStyle.Render(text)
	case s.Polarity < 0:
		return negativeStyle.Render(text)
	default:
		return text
	}
}
