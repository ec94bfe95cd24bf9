package ui

import (
	"strings"
	"testing"

	"surveydash/internal/survey"
)

func TestSimpleTable(t *testing.T) {
	table := NewSimpleTable("Data preview", []string{"Country", "Lang"})
	table.AddRow("Germany", "Go")

	view := table.View(DefaultStyles())

	if !strings.Contains(view, "Data preview") {
		t.Error("view missing title")
	}
	if !strings.Contains(view, "Germany") {
		t.Error("view missing cell content")
	}
}

func TestSimpleTableEmpty(t *testing.T) {
	table := NewSimpleTable("Empty", []string{"A"})
	if got := table.View(DefaultStyles()); got != "" {
		t.Errorf("empty table should render nothing, got %q", got)
	}
}

func TestRankTable(t *testing.T) {
	fc := survey.FrequencyCount{{Label: "Go", Count: 7}, {Label: "", Count: 2}}
	view := RankTable("Rank table", fc).View(DefaultStyles())

	if !strings.Contains(view, "Go") || !strings.Contains(view, "7") {
		t.Errorf("rank table missing entry: %q", view)
	}
	// Empty tokens from literal splitting render visibly.
	if !strings.Contains(view, "(empty)") {
		t.Errorf("empty token should render as placeholder: %q", view)
	}
	if !strings.Contains(view, "1") || !strings.Contains(view, "2") {
		t.Errorf("rank column missing: %q", view)
	}
}
