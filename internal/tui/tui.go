// Package tui is an interactive terminal browser for processed news items.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Mountain311/business-news-processor/internal/core"
	"github.com/Mountain311/business-news-processor/internal/render"
)

type model struct {
	items       []core.ProcessedItem
	selectedIdx int
	width       int
	height      int
	quitting    bool
}

// initialModel returns the starting state for a result set.
func initialModel(items []core.ProcessedItem) model {
	return model{items: items}
}

// Init implements tea.Model; no startup command is needed.
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles key and resize messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.selectedIdx > 0 {
				m.selectedIdx--
			}
		case "down", "j":
			if m.selectedIdx < len(m.items)-1 {
				m.selectedIdx++
			}
		}
	}
	return m, nil
}

// View renders a list pane beside the selected item's detail.
func (m model) View() string {
	if m.quitting {
		return ""
	}
	if len(m.items) == 0 {
		return "No relevant business news items.\n\n[q] Quit"
	}

	listWidth := m.width/3 - 2
	if listWidth < 24 {
		listWidth = 24
	}
	detailWidth := m.width - listWidth - 8
	if detailWidth < 40 {
		detailWidth = 40
	}

	listStyle := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(listWidth)
	detailStyle := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(detailWidth)
	selected := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

	var list string
	for i, item := range m.items {
		line := truncate(item.Title, listWidth-4)
		if i == m.selectedIdx {
			line = selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		list += line + "\n"
	}

	detail := render.Item(m.items[m.selectedIdx])

	body := lipgloss.JoinHorizontal(lipgloss.Top, listStyle.Render(list), detailStyle.Render(detail))
	help := fmt.Sprintf("\n%d item(s)  [↑/k] up  [↓/j] down  [q] quit", len(m.items))
	return body + help
}

func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// Run starts the interactive browser and blocks until the user quits.
func Run(items []core.ProcessedItem) error {
	p := tea.NewProgram(initialModel(items), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
