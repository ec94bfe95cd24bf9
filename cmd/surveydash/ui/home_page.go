package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"surveydash/internal/dataset"
)

const homeMarkdown = `### Developer Survey Explorer

This dashboard analyzes programming language statistics from the
Stack Overflow developer survey export.

Pick a page from the sidebar menu to start; the country selector
filters every analysis page.
`

// HomePageModel renders the landing page: intro text, respondent count,
// and a head preview of the raw data.
type HomePageModel struct {
	viewport viewport.Model
	table    *dataset.Table
	styles   Styles
	renderer *glamour.TermRenderer
	width    int
	height   int
}

// NewHomePageModel creates the home page for a loaded table.
func NewHomePageModel(table *dataset.Table, styles Styles) HomePageModel {
	vp := viewport.New(80, 20)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)
	if err != nil {
		renderer = nil // fall back to raw markdown
	}
	m := HomePageModel{
		viewport: vp,
		table:    table,
		styles:   styles,
		renderer: renderer,
	}
	m.updateContent()
	return m
}

// SetSize updates the viewport dimensions.
func (m *HomePageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h
	m.updateContent()
}

func (m *HomePageModel) updateContent() {
	var sb strings.Builder

	intro := homeMarkdown
	if m.renderer != nil {
		if out, err := m.renderer.Render(homeMarkdown); err == nil {
			intro = out
		}
	}
	sb.WriteString(intro)
	sb.WriteString("\n")
	sb.WriteString(m.styles.Body.Render(
		fmt.Sprintf("The loaded dataset holds %d survey responses across %d columns.",
			m.table.Len(), len(m.table.Columns()))))
	sb.WriteString("\n\n")
	sb.WriteString(m.previewTable())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Info.Render("Use the sidebar menu on the left to start the analysis."))

	m.viewport.SetContent(sb.String())
}

// previewTable renders the first few rows and columns of the raw data.
func (m *HomePageModel) previewTable() string {
	cols := m.table.Columns()
	if len(cols) > PreviewColumns {
		cols = cols[:PreviewColumns]
	}

	t := NewSimpleTable("Data preview", cols)
	for i := range m.table.Head(PreviewRows) {
		cells := make([]string, len(cols))
		for c, name := range cols {
			v := m.table.Cell(i, name)
			if v.IsMissing() {
				cells[c] = "-"
			} else {
				cells[c] = truncate(v.String(), 24)
			}
		}
		t.AddRow(cells...)
	}
	return t.View(m.styles)
}

// Update handles messages; only viewport scrolling is interactive here.
func (m HomePageModel) Update(msg tea.Msg) (HomePageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m HomePageModel) View() string {
	return m.viewport.View()
}

// truncate shortens s to at most l runes, ellipsized. Rune-indexed so
// multibyte country names never split mid-character.
func truncate(s string, l int) string {
	runes := []rune(s)
	if len(runes) <= l {
		return s
	}
	if l < 4 {
		return string(runes[:l])
	}
	return string(runes[:l-3]) + "..."
}
