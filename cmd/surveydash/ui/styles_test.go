package ui

import "testing"

func TestThemes(t *testing.T) {
	light := LightTheme()
	if light.IsDark {
		t.Error("light theme marked dark")
	}
	dark := DarkTheme()
	if !dark.IsDark {
		t.Error("dark theme marked light")
	}
	if light.Background == dark.Background {
		t.Error("themes share a background color")
	}
}

func TestDetectThemeEnvOverride(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("SURVEYDASH_DARK_MODE", "1")
	if !DetectTheme().IsDark {
		t.Error("SURVEYDASH_DARK_MODE=1 should select the dark theme")
	}
}

func TestDetectThemeColorFgBg(t *testing.T) {
	t.Setenv("SURVEYDASH_DARK_MODE", "")
	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Error("dark background index should select the dark theme")
	}
	t.Setenv("COLORFGBG", "0;15")
	if DetectTheme().IsDark {
		t.Error("light background index should select the light theme")
	}
}

func TestChartColorCycles(t *testing.T) {
	if ChartColor(0) != ChartColor(len(ChartColors)) {
		t.Error("chart colors should cycle")
	}
}

func TestRenderDividerWidth(t *testing.T) {
	// Zero and negative widths must not panic.
	if DefaultStyles().RenderDivider(0) == "" {
		t.Error("divider should render at least one rune")
	}
}
