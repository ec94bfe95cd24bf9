package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"surveydash/internal/survey"
)

// BarChart renders a frequency breakdown as a horizontal bar chart,
// largest count first, bars scaled to the widest entry.
type BarChart struct {
	Title   string
	Entries survey.FrequencyCount
	Width   int // total width the chart may occupy
}

// NewBarChart creates a chart for the given breakdown.
func NewBarChart(title string, fc survey.FrequencyCount, width int) *BarChart {
	return &BarChart{Title: title, Entries: fc, Width: width}
}

// View renders the chart.
func (c *BarChart) View(styles Styles) string {
	if len(c.Entries) == 0 {
		return ""
	}

	var sb strings.Builder
	if c.Title != "" {
		sb.WriteString(styles.Title.Render(c.Title))
		sb.WriteString("\n")
	}

	labelWidth := 0
	maxCount := 0
	for _, e := range c.Entries {
		label := displayLabel(e.Label)
		if w := lipgloss.Width(label); w > labelWidth {
			labelWidth = w
		}
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}

	// label + space + bar + space + count
	countWidth := len(fmt.Sprintf("%d", maxCount))
	barSpace := c.Width - labelWidth - countWidth - 2
	if barSpace > MaxBarWidth {
		barSpace = MaxBarWidth
	}
	if barSpace < 1 {
		barSpace = 1
	}

	labelStyle := styles.Body
	countStyle := styles.Muted

	for rank, e := range c.Entries {
		barLen := 0
		if maxCount > 0 {
			barLen = e.Count * barSpace / maxCount
		}
		if barLen < 1 && e.Count > 0 {
			barLen = 1
		}

		barStyle := lipgloss.NewStyle().Foreground(ChartColor(rank))
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%*s", labelWidth, displayLabel(e.Label))))
		sb.WriteString(" ")
		sb.WriteString(barStyle.Render(strings.Repeat("█", barLen)))
		sb.WriteString(" ")
		sb.WriteString(countStyle.Render(fmt.Sprintf("%d", e.Count)))
		sb.WriteString("\n")
	}

	return sb.String()
}

func displayLabel(label string) string {
	if label == "" {
		return "(empty)"
	}
	return label
}
