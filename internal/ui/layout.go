package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which slider bars are hidden.
	LayoutCompactWidth = 72
)

// Form geometry.
const (
	labelWidth     = 16
	inputWidth     = 6
	inputCharLimit = 8
	sliderWidth    = 32
)

// Pane geometry. Every pane has a rounded border and a title line.
const (
	headerHeight = 1
	// formHeight is one input line plus one message line per field.
	formHeight    = 8
	paneChrome    = 3
	tabsChrome    = paneChrome + 2 // tab bar and label hint
	minPaneHeight = 6

	// horizontalStep is how far H/L scroll a wide table.
	horizontalStep = 8
)

// Timing constants.
const (
	// statusTTL is how long a footer status message stays visible.
	statusTTL = 4 * time.Second
)

// paneHeights splits the rows left after the fixed chrome between the
// preview and the saved tables pane.
func (m Model) paneHeights() (previewHeight, tabsHeight int) {
	remaining := m.height - headerHeight - formHeight - m.footerHeight()
	if remaining < 2*minPaneHeight {
		remaining = 2 * minPaneHeight
	}
	previewHeight = remaining / 2
	tabsHeight = remaining - previewHeight
	return previewHeight, tabsHeight
}

// paneInnerWidth is the usable width inside a bordered, padded pane.
func (m Model) paneInnerWidth() int {
	return max(m.width-4, 1)
}

// resizeTableView fits the saved table viewport to the current window.
func (m *Model) resizeTableView() {
	_, tabsHeight := m.paneHeights()
	m.tableView.Width = m.paneInnerWidth()
	m.tableView.Height = max(tabsHeight-tabsChrome, 1)
	m.refreshTableView()
}
