package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"surveydash/internal/dataset"
	"surveydash/internal/survey"
)

// topicItem adapts survey.Topic to list.Item for the topic selectbox.
type topicItem struct {
	topic survey.Topic
}

func (i topicItem) Title() string       { return i.topic.Label() }
func (i topicItem) Description() string { return i.topic.Column() }
func (i topicItem) FilterValue() string { return i.topic.Label() + " " + i.topic.Column() }

// AnalysisPageModel renders the detailed analysis page: a topic
// selectbox over the six multi-value columns, with the chart and rank
// table for the current (country, topic) selection.
type AnalysisPageModel struct {
	table    *dataset.Table
	analyzer *survey.Analyzer
	cache    *RenderCache
	styles   Styles
	topN     int

	topics list.Model
	width  int
	height int
}

// NewAnalysisPageModel creates the detailed analysis page.
func NewAnalysisPageModel(table *dataset.Table, analyzer *survey.Analyzer, cache *RenderCache, topN int, styles Styles) AnalysisPageModel {
	items := make([]list.Item, 0, len(survey.Topics()))
	for _, t := range survey.Topics() {
		items = append(items, topicItem{topic: t})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Analysis topic"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = styles.Title

	return AnalysisPageModel{
		table:    table,
		analyzer: analyzer,
		cache:    cache,
		styles:   styles,
		topN:     topN,
		topics:   l,
	}
}

// SetSize updates the page dimensions.
func (m *AnalysisPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	selectorWidth, _ := m.split()
	m.topics.SetSize(selectorWidth, h-2)
}

func (m AnalysisPageModel) split() (selectorWidth, resultWidth int) {
	selectorWidth = 30
	if selectorWidth > m.width/2 {
		selectorWidth = m.width / 2
	}
	resultWidth = m.width - selectorWidth - 2
	if resultWidth < 0 {
		resultWidth = 0
	}
	return
}

// Topic returns the currently selected topic.
func (m AnalysisPageModel) Topic() survey.Topic {
	if item, ok := m.topics.SelectedItem().(topicItem); ok {
		return item.topic
	}
	return survey.TopicLanguagesUsed
}

// Update routes key messages into the topic selectbox.
func (m AnalysisPageModel) Update(msg tea.Msg) (AnalysisPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.topics, cmd = m.topics.Update(msg)
	return m, cmd
}

// View renders the page for the selected country.
func (m AnalysisPageModel) View(country string) string {
	topic := m.Topic()
	header := m.styles.Title.Render("Detailed Analysis")
	subtitle := m.styles.Subtitle.Render(
		fmt.Sprintf("%s, filtered to %q.", topic.Label(), country))

	key := ComputeKey("analysis", country, topic.Column(), m.width)
	result := m.cache.GetOrCompute(key, func() string {
		return m.renderResult(country, topic)
	})

	split := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.topics.View(),
		"  ",
		result,
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, subtitle, "", split)
}

func (m AnalysisPageModel) renderResult(country string, topic survey.Topic) string {
	top := m.analyzer.Top(m.table, topic, country, m.topN)
	if top.Empty() {
		return m.styles.Warning.Render(
			fmt.Sprintf("No %s data for the selected country (%s).", topic.Label(), country))
	}

	_, resultWidth := m.split()
	chartWidth, _ := SplitWidths(resultWidth)

	chart := NewBarChart(fmt.Sprintf("Top %d (%s)", len(top), topic.Label()), top, chartWidth)
	table := RankTable("Rank table", top)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		chart.View(m.styles),
		"  ",
		table.View(m.styles),
	)
}
