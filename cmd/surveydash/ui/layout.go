// Package ui layout constants for consistent spacing and dimensions.
package ui

// Layout constants for sidebar and content sizing.
const (
	SidebarWidth = 26

	HeaderHeight = 1
	FooterHeight = 1

	ContentPaddingH = 2
	ContentPaddingV = 1

	// Chart pane takes the left share of the content split; the rank
	// table takes the rest.
	ChartPaneRatio = 0.62

	// MaxBarWidth caps bar length independent of terminal width.
	MaxBarWidth = 60

	MinimumTerminalWidth  = 80
	MinimumTerminalHeight = 20

	// PreviewRows is how many rows the Home page data preview shows.
	PreviewRows = 5
	// PreviewColumns caps how many columns the preview table renders.
	PreviewColumns = 4
)

// ContentWidth returns the usable width right of the sidebar.
func ContentWidth(terminalWidth int) int {
	w := terminalWidth - SidebarWidth - ContentPaddingH*2
	if w < 0 {
		w = 0
	}
	return w
}

// ContentHeight returns the usable height between header and footer.
func ContentHeight(terminalHeight int) int {
	h := terminalHeight - HeaderHeight - FooterHeight - ContentPaddingV*2
	if h < 0 {
		h = 0
	}
	return h
}

// SplitWidths divides the content pane into chart and table widths.
func SplitWidths(contentWidth int) (chartWidth, tableWidth int) {
	chartWidth = int(float64(contentWidth) * ChartPaneRatio)
	tableWidth = contentWidth - chartWidth - 1
	if tableWidth < 0 {
		tableWidth = 0
	}
	return
}
