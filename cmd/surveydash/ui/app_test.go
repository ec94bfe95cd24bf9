package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"surveydash/internal/dataset"
	"surveydash/internal/survey"
)

func testModel(t *testing.T) Model {
	t.Helper()
	table := dataset.NewTable(
		[]string{"Country", "LanguageHaveWorkedWith"},
		[]dataset.Row{
			{dataset.StringValue("Austria"), dataset.StringValue("Go;Python")},
			{dataset.StringValue("Germany"), dataset.StringValue("Go")},
		},
	)
	m := NewModel(table, survey.NewAnalyzer(), 15, NewStyles(LightTheme()))

	resized, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return resized.(Model)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestCountrySelectorSeededWithAllSentinel(t *testing.T) {
	m := testModel(t)
	if m.Country() != survey.AllCountries {
		t.Errorf("initial country should be %q, got %q", survey.AllCountries, m.Country())
	}
	want := []string{survey.AllCountries, "Austria", "Germany"}
	if len(m.countries) != len(want) {
		t.Fatalf("countries: got %v, want %v", m.countries, want)
	}
	for i, c := range want {
		if m.countries[i] != c {
			t.Errorf("countries[%d] = %q, want %q", i, m.countries[i], c)
		}
	}
}

func TestPageSwitchByNumber(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(key("2"))
	m = updated.(Model)
	if m.page != PageUsage {
		t.Errorf("expected usage page, got %v", m.page)
	}

	updated, _ = m.Update(key("3"))
	m = updated.(Model)
	if m.page != PageAnalysis {
		t.Errorf("expected analysis page, got %v", m.page)
	}

	updated, _ = m.Update(key("1"))
	if updated.(Model).page != PageHome {
		t.Error("expected home page")
	}
}

func TestMenuNavigationWithEnter(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyDown}))
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))
	m = updated.(Model)

	if m.page != PageUsage {
		t.Errorf("menu down+enter should open usage page, got %v", m.page)
	}
}

func TestCountrySelection(t *testing.T) {
	m := testModel(t)

	// Tab moves focus to the country selector; down picks Austria.
	updated, _ := m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyTab}))
	m = updated.(Model)
	if m.focus != FocusCountry {
		t.Fatalf("expected country focus, got %v", m.focus)
	}

	updated, _ = m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyDown}))
	m = updated.(Model)
	if m.Country() != "Austria" {
		t.Errorf("expected Austria, got %q", m.Country())
	}

	// Up past the top clamps at the sentinel.
	updated, _ = m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyUp}))
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyUp}))
	m = updated.(Model)
	if m.Country() != survey.AllCountries {
		t.Errorf("expected clamp at %q, got %q", survey.AllCountries, m.Country())
	}
}

func TestTopicFocusOnlyOnAnalysisPage(t *testing.T) {
	m := testModel(t)

	// Home page: menu -> country -> menu.
	if got := m.nextFocus(); got != FocusCountry {
		t.Errorf("expected country after menu, got %v", got)
	}
	m.focus = FocusCountry
	if got := m.nextFocus(); got != FocusMenu {
		t.Errorf("expected menu after country on home page, got %v", got)
	}

	// Analysis page adds the topic selectbox to the cycle.
	updated, _ := m.Update(key("3"))
	m = updated.(Model)
	m.focus = FocusCountry
	if got := m.nextFocus(); got != FocusTopic {
		t.Errorf("expected topic focus on analysis page, got %v", got)
	}
}

func TestViewRendersPages(t *testing.T) {
	m := testModel(t)

	view := m.View()
	if !strings.Contains(view, "Menu") || !strings.Contains(view, "Country filter") {
		t.Error("sidebar missing from view")
	}
	if !strings.Contains(view, "survey responses") {
		t.Error("home page content missing")
	}

	updated, _ := m.Update(key("2"))
	usageView := updated.(Model).View()
	if !strings.Contains(usageView, "Language Usage") {
		t.Error("usage page content missing")
	}

	updated, _ = m.Update(key("3"))
	analysisView := updated.(Model).View()
	if !strings.Contains(analysisView, "Detailed Analysis") {
		t.Error("analysis page content missing")
	}
}

func TestViewTooSmall(t *testing.T) {
	m := testModel(t)
	resized, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	view := resized.(Model).View()
	if !strings.Contains(view, "Terminal too small") {
		t.Errorf("expected size warning, got %q", view)
	}
}

func TestQuitKeys(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg == nil {
		t.Error("expected tea.Quit message")
	}
}
