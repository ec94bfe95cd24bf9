package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"surveydash/internal/dataset"
	"surveydash/internal/survey"
)

// UsagePageModel renders the language usage page: top languages for the
// selected country as a bar chart next to a rank table.
type UsagePageModel struct {
	table    *dataset.Table
	analyzer *survey.Analyzer
	cache    *RenderCache
	styles   Styles
	topN     int
	width    int
	height   int
}

// NewUsagePageModel creates the language usage page.
func NewUsagePageModel(table *dataset.Table, analyzer *survey.Analyzer, cache *RenderCache, topN int, styles Styles) UsagePageModel {
	return UsagePageModel{
		table:    table,
		analyzer: analyzer,
		cache:    cache,
		styles:   styles,
		topN:     topN,
	}
}

// SetSize updates the page dimensions.
func (m *UsagePageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// View renders the page for the selected country. Output is cached by
// (country, width); the underlying counts are memoized separately by
// the analyzer.
func (m UsagePageModel) View(country string) string {
	key := ComputeKey("usage", country, m.width)
	return m.cache.GetOrCompute(key, func() string {
		return m.render(country)
	})
}

func (m UsagePageModel) render(country string) string {
	topic := survey.TopicLanguagesUsed
	top := m.analyzer.Top(m.table, topic, country, m.topN)

	header := m.styles.Title.Render("Language Usage")
	subtitle := m.styles.Subtitle.Render(
		fmt.Sprintf("Languages respondents in %q have worked with.", country))

	if top.Empty() {
		warning := m.styles.Warning.Render(
			fmt.Sprintf("No data for the selected country (%s).", country))
		return lipgloss.JoinVertical(lipgloss.Left, header, subtitle, "", warning)
	}

	chartWidth, _ := SplitWidths(m.width)
	chart := NewBarChart(fmt.Sprintf("Top %d languages", len(top)), top, chartWidth)
	table := RankTable("Rank table", top)

	split := lipgloss.JoinHorizontal(
		lipgloss.Top,
		chart.View(m.styles),
		"  ",
		table.View(m.styles),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, subtitle, "", split)
}
