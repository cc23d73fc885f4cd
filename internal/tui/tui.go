// Package tui implements the root Bubble Tea model for persona.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/persona/internal/person"
)

// TODO: add a persona accent to zstyle; borrowing zburn's until then.
var accent = zstyle.ZburnAccent

type viewID int

const (
	viewMenu viewID = iota
	viewGenerate
	viewBatch
)

// Model is the root TUI model.
type Model struct {
	version string
	gen     *person.Generator

	active   viewID
	menu     menuModel
	generate generateModel
	batch    batchModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model.
func New(version string, gen *person.Generator) Model {
	return Model{
		version: version,
		gen:     gen,
		active:  viewMenu,
		menu:    newMenuModel(version),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case navigateMsg:
		return m.navigate(msg.view)

	case regenerateBatchMsg:
		return m.loadBatch(msg.count)
	}

	return m.updateActive(msg)
}

func (m Model) View() string {
	// the menu includes the logo — render directly
	if m.active == viewMenu {
		return m.menu.View()
	}

	var content string
	switch m.active {
	case viewGenerate:
		content = m.generate.View()
	case viewBatch:
		content = m.batch.View()
	}

	header := zstyle.RenderHeader("persona", viewTitle(m.active), accent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewGenerate:
		return "Generate Person"
	case viewBatch:
		return "Generate Batch"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewGenerate:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "copy field"},
			{Key: "c", Desc: "copy all"},
			{Key: "n", Desc: "new"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewBatch:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "copy row"},
			{Key: "n", Desc: "new batch"},
			{Key: "+/-", Desc: "size"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewGenerate:
		m.generate, cmd = m.generate.Update(msg)
	case viewBatch:
		m.batch, cmd = m.batch.Update(msg)
	}

	return m, cmd
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	switch view {
	case viewMenu:
		m.menu = newMenuModel(m.version)
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewGenerate:
		p, err := m.gen.Generate("", person.DefaultMinAge, person.DefaultMaxAge)
		if err != nil {
			m.menu.flash = "generate: " + err.Error()
			m.active = viewMenu
			return m, clearFlashAfter()
		}
		m.generate = newGenerateModel(p)
		m.active = viewGenerate
		return m, tea.ClearScreen

	case viewBatch:
		count := m.batch.count
		if count == 0 {
			count = defaultBatchSize
		}
		model, cmd := m.loadBatch(count)
		return model, tea.Batch(cmd, tea.ClearScreen)
	}

	return m, nil
}

func (m Model) loadBatch(count int) (tea.Model, tea.Cmd) {
	people, err := m.gen.GenerateN(count, "", person.DefaultMinAge, person.DefaultMaxAge)
	if err != nil {
		m.menu.flash = "generate: " + err.Error()
		m.active = viewMenu
		return m, clearFlashAfter()
	}

	m.batch = newBatchModel(people, count)
	m.active = viewBatch
	return m, nil
}
