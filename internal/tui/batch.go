package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/persona/internal/display"
	"github.com/zarlcorp/persona/internal/person"
)

const (
	defaultBatchSize = 10
	maxBatchSize     = 50
)

// batchModel displays a batch of generated people as table rows.
type batchModel struct {
	people []person.Person
	count  int
	cursor int
	flash  string
}

// regenerateBatchMsg asks the root model for a fresh batch.
type regenerateBatchMsg struct {
	count int
}

func newBatchModel(people []person.Person, count int) batchModel {
	return batchModel{people: people, count: count}
}

func (m batchModel) Init() tea.Cmd {
	return nil
}

func (m batchModel) Update(msg tea.Msg) (batchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m batchModel) handleKey(msg tea.KeyMsg) (batchModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if len(m.people) == 0 {
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.people)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		row := display.OneLine(m.people[m.cursor])
		if err := copyToClipboard(row); err != nil {
			m.flash = "copy: " + err.Error()
			return m, clearFlashAfter()
		}
		m.flash = "copied!"
		return m, clearFlashAfter()
	}

	switch msg.String() {
	case "n":
		count := m.count
		return m, func() tea.Msg { return regenerateBatchMsg{count: count} }

	case "+":
		if m.count < maxBatchSize {
			count := m.count + 1
			return m, func() tea.Msg { return regenerateBatchMsg{count: count} }
		}

	case "-":
		if m.count > 1 {
			count := m.count - 1
			return m, func() tea.Msg { return regenerateBatchMsg{count: count} }
		}
	}

	return m, nil
}

func (m batchModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)

	s := "\n"

	if len(m.people) == 0 {
		s += "  " + zstyle.MutedText.Render("nothing generated") + "\n\n\n"
		return s
	}

	for i, p := range m.people {
		line := display.OneLine(p)

		if i == m.cursor {
			s += "  " + accentStyle.Render("▸") + " " + line + "\n"
		} else {
			s += "    " + line + "\n"
		}
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
