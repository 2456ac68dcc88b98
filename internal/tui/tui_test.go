package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mountain311/business-news-processor/internal/core"
)

func testItems() []core.ProcessedItem {
	return []core.ProcessedItem{
		{Title: "first item", Companies: []string{"Apple Inc."}},
		{Title: "second item", Companies: []string{"Microsoft"}},
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdateNavigation(t *testing.T) {
	m := initialModel(testItems())

	next, _ := m.Update(key("j"))
	m = next.(model)
	if m.selectedIdx != 1 {
		t.Errorf("selectedIdx = %d after down, expected 1", m.selectedIdx)
	}

	// Down at the end stays put.
	next, _ = m.Update(key("j"))
	m = next.(model)
	if m.selectedIdx != 1 {
		t.Errorf("selectedIdx = %d past the end, expected 1", m.selectedIdx)
	}

	next, _ = m.Update(key("k"))
	m = next.(model)
	if m.selectedIdx != 0 {
		t.Errorf("selectedIdx = %d after up, expected 0", m.selectedIdx)
	}

	// Up at the top stays put.
	next, _ = m.Update(key("k"))
	m = next.(model)
	if m.selectedIdx != 0 {
		t.Errorf("selectedIdx = %d past the top, expected 0", m.selectedIdx)
	}
}

func TestUpdateQuit(t *testing.T) {
	m := initialModel(testItems())
	next, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("quit key produced no command")
	}
	if !next.(model).quitting {
		t.Error("quit key did not set quitting")
	}
}

func TestViewListsItems(t *testing.T) {
	m := initialModel(testItems())
	m.width = 120
	m.height = 40

	view := m.View()
	if !strings.Contains(view, "first item") || !strings.Contains(view, "second item") {
		t.Errorf("view missing item titles:\n%s", view)
	}
}

func TestViewEmpty(t *testing.T) {
	m := initialModel(nil)
	if view := m.View(); !strings.Contains(view, "No relevant") {
		t.Errorf("empty view = %q, expected the empty-state message", view)
	}
}
