package ui

import (
	"strings"
	"testing"

	"surveydash/internal/survey"
)

func TestBarChart(t *testing.T) {
	fc := survey.FrequencyCount{
		{Label: "Go", Count: 10},
		{Label: "Python", Count: 5},
	}
	view := NewBarChart("Top languages", fc, 60).View(DefaultStyles())

	if !strings.Contains(view, "Top languages") {
		t.Error("chart missing title")
	}
	if !strings.Contains(view, "Go") || !strings.Contains(view, "Python") {
		t.Error("chart missing labels")
	}
	if !strings.Contains(view, "█") {
		t.Error("chart missing bars")
	}

	// The larger count draws the longer bar.
	var goBar, pyBar int
	for _, line := range strings.Split(view, "\n") {
		n := strings.Count(line, "█")
		if strings.Contains(line, "Go") && !strings.Contains(line, "Python") {
			goBar = n
		}
		if strings.Contains(line, "Python") {
			pyBar = n
		}
	}
	if goBar <= pyBar {
		t.Errorf("expected Go bar (%d) longer than Python bar (%d)", goBar, pyBar)
	}
}

func TestBarChartEmpty(t *testing.T) {
	view := NewBarChart("x", survey.FrequencyCount{}, 60).View(DefaultStyles())
	if view != "" {
		t.Errorf("empty breakdown should render nothing, got %q", view)
	}
}

func TestBarChartNarrowWidth(t *testing.T) {
	fc := survey.FrequencyCount{{Label: "VeryLongLanguageName", Count: 3}}
	// Must not panic and every non-zero count keeps a visible bar.
	view := NewBarChart("x", fc, 10).View(DefaultStyles())
	if !strings.Contains(view, "█") {
		t.Error("non-zero count lost its bar at narrow width")
	}
}
