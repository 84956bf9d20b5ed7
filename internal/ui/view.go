package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/multable/internal/form"
	"github.com/five82/multable/internal/grid"
)

// invalidRangeText replaces a table whose bounds could not be used.
const invalidRangeText = "Invalid range values"

// tabBarMarkWidth is the width of the ‹ and › marks around a scrolled tab bar.
const tabBarMarkWidth = 2

// emptyTabsText is shown in the tab bar before anything is saved.
const emptyTabsText = "No saved tables yet."

// renderMain renders the full screen.
func (m Model) renderMain() string {
	previewHeight, tabsHeight := m.paneHeights()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderForm(),
		m.renderPreview(previewHeight),
		m.renderTabs(tabsHeight),
		m.renderFooter(),
	)
}

// renderHeader renders the title bar with the current request.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := lipgloss.Color(m.theme.Surface)

	state := styles.DangerText.Background(bg).Render("fix highlighted fields")
	if req, ok := m.result.Request(); ok {
		state = styles.MutedText.Background(bg).Render(req.Label())
	}
	left := styles.Logo.Render("multable") + styles.FaintText.Background(bg).Render("  ") + state
	right := styles.FaintText.Background(bg).Render(m.theme.Name)

	gap := m.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return styles.Header.Width(m.width).Render(left)
	}
	spacer := lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", gap))
	return styles.Header.Width(m.width).Render(left + spacer + right)
}

// renderForm renders the four fields with their sliders and messages.
func (m Model) renderForm() string {
	styles := m.theme.Styles()
	showSlider := m.width >= LayoutCompactWidth

	lines := make([]string, 0, formHeight)
	for _, f := range form.Fields {
		focused := m.focus == int(f)
		errText := m.result.Error(f)

		marker := "  "
		labelStyle := styles.MutedText
		if focused {
			marker = styles.AccentText.Render("› ")
			labelStyle = styles.Text.Bold(true)
		}
		if errText != "" {
			labelStyle = styles.DangerText
		}
		label := labelStyle.Width(labelWidth).Render(f.Label())

		inputStyle := lipgloss.NewStyle().Width(inputWidth + 1)
		if focused {
			inputStyle = styles.FieldFocused.Width(inputWidth + 1)
		}
		row := marker + label + inputStyle.Render(m.inputs[f].View())

		if showSlider {
			pair := m.sync.Pair(f)
			bounds := styles.FaintText.Render(fmt.Sprintf("%d", grid.MinValue))
			row += "  " + bounds + " " + m.bar.ViewAs(pair.Percent()) + " " +
				styles.FaintText.Render(fmt.Sprintf("%d", grid.MaxValue))
		}
		lines = append(lines, row)

		msg := ""
		if errText != "" {
			msg = strings.Repeat(" ", 2+labelWidth) + styles.DangerText.Render(errText)
		}
		lines = append(lines, msg)
	}
	return clipBlock(strings.Join(lines, "\n"), m.width, formHeight)
}

// renderPreview renders the live preview pane.
func (m Model) renderPreview(height int) string {
	styles := m.theme.Styles()
	width := m.paneInnerWidth()
	bodyHeight := max(height-paneChrome, 1)

	var body string
	switch {
	case m.preview.Err != nil:
		body = styles.DangerText.Render(invalidRangeText)
	case !m.preview.Ready():
		body = styles.MutedText.Render(m.preview.Placeholder)
	default:
		hint := styles.FaintText.Render(m.preview.Request.Label())
		body = hint + "\n" + m.previewGrid
	}

	title := styles.AccentText.Bold(true).Render("Preview")
	return m.renderPane(title, clipBlock(body, width, bodyHeight), height, false)
}

// renderTabs renders the saved tables pane: tab bar, label hint and the
// scrollable active table.
func (m Model) renderTabs(height int) string {
	styles := m.theme.Styles()
	width := m.paneInnerWidth()

	deleteHint := styles.FaintText.Render("D delete checked")
	if n := len(m.tabs.Selected()); n > 0 {
		deleteHint = styles.WarningText.Render(fmt.Sprintf("D delete checked (%d)", n))
	}
	title := styles.AccentText.Bold(true).Render(fmt.Sprintf("Saved tables (%d)", m.tabs.Len())) +
		"  " + deleteHint

	var body string
	tab, ok := m.tabs.Active()
	if !ok {
		body = styles.MutedText.Render(emptyTabsText)
	} else {
		body = strings.Join([]string{
			m.renderTabBar(width),
			styles.FaintText.Render(tab.Label),
			m.tableView.View(),
		}, "\n")
	}

	return m.renderPane(title, clipBlock(body, width, max(height-paneChrome, 1)), height, m.focus == focusTabs)
}

// renderTabBar renders one entry per tab with its checkbox and close mark.
// Entries that do not fit in width scroll so the active tab stays visible;
// hidden entries are marked with ‹ and ›.
func (m Model) renderTabBar(width int) string {
	styles := m.theme.Styles()
	list := m.tabs.List()
	if len(list) == 0 {
		return ""
	}
	active := max(m.tabs.ActiveIndex(), 0)

	parts := make([]string, len(list))
	total := 0
	for i, tab := range list {
		box := "[ ]"
		if m.tabs.IsSelected(tab.ID) {
			box = "[x]"
		}
		text := fmt.Sprintf(" %s %s × ", box, tab.Label)
		if i == active {
			parts[i] = styles.Selected.Render(text)
		} else {
			parts[i] = styles.Tab.Render(text)
		}
		total += lipgloss.Width(parts[i])
	}
	sep := styles.FaintText.Render("│")
	if total+len(parts)-1 <= width {
		return strings.Join(parts, sep)
	}

	// Grow a window around the active entry, leaving room for both marks.
	room := width - 2*tabBarMarkWidth
	first, last := active, active
	used := lipgloss.Width(parts[active])
	for grew := true; grew; {
		grew = false
		if first > 0 {
			if w := lipgloss.Width(parts[first-1]) + 1; used+w <= room {
				first--
				used += w
				grew = true
			}
		}
		if last < len(parts)-1 {
			if w := lipgloss.Width(parts[last+1]) + 1; used+w <= room {
				last++
				used += w
				grew = true
			}
		}
	}

	bar := strings.Join(parts[first:last+1], sep)
	if first > 0 {
		bar = styles.FaintText.Render("‹ ") + bar
	}
	if last < len(parts)-1 {
		bar += styles.FaintText.Render(" ›")
	}
	return bar
}

// renderPane draws a bordered box with a title line. body must already fit.
func (m Model) renderPane(title, body string, height int, focused bool) string {
	border := m.theme.Border
	if focused {
		border = m.theme.BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(max(m.width-2, 1)).
		Height(max(height-2, 1)).
		Render(title + "\n" + body)
}

// renderFooter renders the status line above the key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	status := ""
	if m.status.text != "" {
		if m.status.err {
			status = styles.DangerText.Render(m.status.text)
		} else {
			status = styles.SuccessText.Render(m.status.text)
		}
	}
	return clipBlock(status, m.width, 1) + "\n" + m.help.View(m.keys)
}

// footerHeight is the number of lines renderFooter produces.
func (m Model) footerHeight() int {
	return 1 + lipgloss.Height(m.help.View(m.keys))
}

// renderGrid renders t with header row and header column highlighted.
func (m Model) renderGrid(t grid.Table) string {
	g := t.Grid()
	if len(g) == 0 {
		return ""
	}
	styles := m.theme.Styles()
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Border))).
		Headers(g[0]...).
		Rows(g[1:]...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return styles.TableHeader
			}
			return styles.TableCell
		}).
		Render()
}

// refreshTableView renders the active tab into the viewport at the current
// horizontal offset.
func (m *Model) refreshTableView() {
	tab, ok := m.tabs.Active()
	if !ok {
		m.tableLeft = 0
		m.tableView.SetContent("")
		return
	}
	rendered := m.renderGrid(tab.Table)
	m.tableLeft = min(max(m.tableLeft, 0), max(blockWidth(rendered)-m.tableView.Width, 0))
	m.tableView.SetContent(cutBlock(rendered, m.tableLeft, m.tableView.Width))
}

// scrollTable moves the saved table horizontally by delta cells.
func (m *Model) scrollTable(delta int) {
	m.tableLeft += delta
	m.refreshTableView()
}

// showActiveTab resets scrolling after the active tab changes.
func (m *Model) showActiveTab() {
	m.tableLeft = 0
	m.refreshTableView()
	m.tableView.GotoTop()
}
