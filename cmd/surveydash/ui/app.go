package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"surveydash/internal/dataset"
	"surveydash/internal/logging"
	"surveydash/internal/survey"
)

// Page identifies the active content page.
type Page int

const (
	PageHome Page = iota
	PageUsage
	PageAnalysis
)

var pageNames = []string{"Home", "Language Usage", "Detailed Analysis"}

// Focus identifies which selector receives arrow keys.
type Focus int

const (
	FocusMenu Focus = iota
	FocusCountry
	FocusTopic
)

// Model is the root bubbletea model: a sidebar (page menu + country
// selector) beside the active page.
type Model struct {
	table    *dataset.Table
	analyzer *survey.Analyzer
	styles   Styles
	cache    *RenderCache

	page  Page
	focus Focus

	menuIdx    int
	countries  []string // AllCountries sentinel first
	countryIdx int

	home     HomePageModel
	usage    UsagePageModel
	analysis AnalysisPageModel

	width  int
	height int
	ready  bool
}

// NewModel builds the dashboard model over a loaded table.
func NewModel(table *dataset.Table, analyzer *survey.Analyzer, topN int, styles Styles) Model {
	cache := NewRenderCache(128)

	countries := append([]string{survey.AllCountries}, table.Countries()...)

	return Model{
		table:     table,
		analyzer:  analyzer,
		styles:    styles,
		cache:     cache,
		countries: countries,
		home:      NewHomePageModel(table, styles),
		usage:     NewUsagePageModel(table, analyzer, cache, topN, styles),
		analysis:  NewAnalysisPageModel(table, analyzer, cache, topN, styles),
	}
}

// Country returns the active country filter.
func (m Model) Country() string {
	return m.countries[m.countryIdx]
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.cache.Clear() // every cached render assumed the old width
		contentW := ContentWidth(msg.Width)
		contentH := ContentHeight(msg.Height)
		m.home.SetSize(contentW, contentH)
		m.usage.SetSize(contentW, contentH)
		m.analysis.SetSize(contentW, contentH)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		logging.UI("quit")
		return m, tea.Quit

	case "tab":
		m.focus = m.nextFocus()
		return m, nil

	case "1":
		return m.switchPage(PageHome), nil
	case "2":
		return m.switchPage(PageUsage), nil
	case "3":
		return m.switchPage(PageAnalysis), nil

	case "up", "k":
		return m.moveSelection(-1)
	case "down", "j":
		return m.moveSelection(1)

	case "enter":
		if m.focus == FocusMenu {
			return m.switchPage(Page(m.menuIdx)), nil
		}
		return m, nil
	}

	// Everything else goes to the focused page component.
	return m.routeToPage(msg)
}

func (m Model) nextFocus() Focus {
	switch m.focus {
	case FocusMenu:
		return FocusCountry
	case FocusCountry:
		if m.page == PageAnalysis {
			return FocusTopic
		}
		return FocusMenu
	default:
		return FocusMenu
	}
}

func (m Model) switchPage(p Page) Model {
	if p != m.page {
		logging.UI("page: %s -> %s", pageNames[m.page], pageNames[p])
	}
	m.page = p
	m.menuIdx = int(p)
	if m.focus == FocusTopic && p != PageAnalysis {
		m.focus = FocusMenu
	}
	return m
}

func (m Model) moveSelection(delta int) (tea.Model, tea.Cmd) {
	switch m.focus {
	case FocusMenu:
		m.menuIdx = clamp(m.menuIdx+delta, 0, len(pageNames)-1)
		return m, nil
	case FocusCountry:
		prev := m.countryIdx
		m.countryIdx = clamp(m.countryIdx+delta, 0, len(m.countries)-1)
		if m.countryIdx != prev {
			logging.UI("country filter: %s", m.Country())
		}
		return m, nil
	case FocusTopic:
		var cmd tea.Cmd
		key := tea.KeyMsg(tea.Key{Type: tea.KeyUp})
		if delta > 0 {
			key = tea.KeyMsg(tea.Key{Type: tea.KeyDown})
		}
		m.analysis, cmd = m.analysis.Update(key)
		return m, cmd
	}
	return m, nil
}

func (m Model) routeToPage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.page {
	case PageHome:
		m.home, cmd = m.home.Update(msg)
	case PageAnalysis:
		if m.focus == FocusTopic {
			m.analysis, cmd = m.analysis.Update(msg)
		}
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading dashboard..."
	}
	if m.width < MinimumTerminalWidth || m.height < MinimumTerminalHeight {
		return m.styles.Warning.Render(
			fmt.Sprintf("Terminal too small: need at least %dx%d.",
				MinimumTerminalWidth, MinimumTerminalHeight))
	}

	header := m.styles.Header.Width(m.width).Render("surveydash — developer survey explorer")

	var content string
	switch m.page {
	case PageHome:
		content = m.home.View()
	case PageUsage:
		content = m.usage.View(m.Country())
	case PageAnalysis:
		content = m.analysis.View(m.Country())
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.viewSidebar(),
		m.styles.Content.Width(ContentWidth(m.width)).Render(content),
	)

	footer := m.styles.Footer.Render(
		"1/2/3: pages • tab: focus • ↑/↓: select • q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// viewSidebar renders the page menu and the country selector.
func (m Model) viewSidebar() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Menu"))
	sb.WriteString("\n")
	for i, name := range pageNames {
		sb.WriteString(m.selectorLine(name, i == m.menuIdx, m.focus == FocusMenu))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.RenderDivider(SidebarWidth - 4))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Title.Render("Country filter"))
	sb.WriteString("\n")

	// Scroll the country list so the cursor stays visible.
	visible := m.height - 12
	if visible < 3 {
		visible = 3
	}
	start := 0
	if m.countryIdx >= visible {
		start = m.countryIdx - visible + 1
	}
	end := start + visible
	if end > len(m.countries) {
		end = len(m.countries)
	}
	if start > 0 {
		sb.WriteString(m.styles.Muted.Render("  ↑ more"))
		sb.WriteString("\n")
	}
	for i := start; i < end; i++ {
		sb.WriteString(m.selectorLine(truncate(m.countries[i], SidebarWidth-6), i == m.countryIdx, m.focus == FocusCountry))
		sb.WriteString("\n")
	}
	if end < len(m.countries) {
		sb.WriteString(m.styles.Muted.Render("  ↓ more"))
		sb.WriteString("\n")
	}

	return m.styles.Sidebar.
		Width(SidebarWidth).
		Height(ContentHeight(m.height) + ContentPaddingV*2).
		Render(sb.String())
}

func (m Model) selectorLine(label string, selected, focused bool) string {
	cursor := "  "
	style := m.styles.Unselected
	if selected {
		cursor = "> "
		style = m.styles.Selected
		if !focused {
			style = m.styles.Bold
		}
	}
	return cursor + style.Render(label)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Run starts the dashboard program over a loaded table and blocks until
// the user quits.
func Run(table *dataset.Table, analyzer *survey.Analyzer, topN int, dark bool) error {
	theme := DetectTheme()
	if dark {
		theme = DarkTheme()
	}
	model := NewModel(table, analyzer, topN, NewStyles(theme))

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
