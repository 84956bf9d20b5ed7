package ui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/multable/internal/config"
	"github.com/five82/multable/internal/export"
	"github.com/five82/multable/internal/form"
	"github.com/five82/multable/internal/grid"
	"github.com/five82/multable/internal/prefs"
	"github.com/five82/multable/internal/preview"
)

type testClipboard struct {
	text string
	err  error
}

func (c *testClipboard) write(s string) error {
	if c.err != nil {
		return c.err
	}
	c.text = s
	return nil
}

func newTestModel(t *testing.T, clip *testClipboard) Model {
	t.Helper()
	if clip == nil {
		clip = &testClipboard{}
	}
	cfg := config.Config{
		Defaults:        config.DefaultRequest,
		PreviewDebounce: time.Millisecond,
		ExportDir:       filepath.Join(t.TempDir(), "exports"),
	}
	m := New(Options{
		Config:    cfg,
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
		Clipboard: clip.write,
	})
	m, _ = update(m, tea.WindowSizeMsg{Width: 140, Height: 60})
	return m
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		m, _ = update(m, k)
	}
	return m
}

// setField focuses f, clears it and types text one rune at a time.
func setField(m Model, f form.Field, text string) Model {
	m.setFocus(int(f))
	m = press(m, tea.KeyMsg{Type: tea.KeyEnd}, tea.KeyMsg{Type: tea.KeyCtrlU})
	for _, r := range text {
		m = press(m, runes(string(r)))
	}
	return m
}

// settle delivers the pending debounce message.
func settle(m Model, cmd tea.Cmd) Model {
	if cmd == nil {
		return m
	}
	if msg, ok := cmd().(preview.FireMsg); ok {
		m, _ = update(m, msg)
	}
	return m
}

func TestView_LoadingBeforeResize(t *testing.T) {
	m := New(Options{Config: config.Default(), PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View = %q, want Loading...", got)
	}
}

func TestNew_InitialPreviewIsImmediate(t *testing.T) {
	m := newTestModel(t, nil)

	want := []string{"1", "10", "1", "10"}
	for _, f := range form.Fields {
		if got := m.inputs[f].Value(); got != want[f] {
			t.Fatalf("%s = %q, want %q", f.Name(), got, want[f])
		}
	}
	if !m.preview.Ready() {
		t.Fatalf("preview not ready at startup: %+v", m.preview)
	}
	if got := m.preview.Request.Label(); got != "Cols 1..10 x Rows 1..10" {
		t.Fatalf("preview label = %q", got)
	}
	if !strings.Contains(m.View(), emptyTabsText) {
		t.Fatalf("View missing %q", emptyTabsText)
	}
}

func TestTyping_ClampsOutOfRangeIntoField(t *testing.T) {
	m := newTestModel(t, nil)
	m = setField(m, form.MaxColumn, "100")

	if got := m.inputs[form.MaxColumn].Value(); got != "50" {
		t.Fatalf("field = %q, want 50", got)
	}
	if got := m.sync.Pair(form.MaxColumn).Value(); got != 50 {
		t.Fatalf("slider = %d, want 50", got)
	}
	if !m.result.Valid() {
		t.Fatalf("form invalid after clamp: %q", m.result.Error(form.MaxColumn))
	}
}

func TestTyping_NonIntegerLeavesSlider(t *testing.T) {
	m := newTestModel(t, nil)
	m = setField(m, form.MinRow, "abc")

	if got := m.inputs[form.MinRow].Value(); got != "abc" {
		t.Fatalf("field = %q, want abc", got)
	}
	if got := m.sync.Pair(form.MinRow).Value(); got != 1 {
		t.Fatalf("slider = %d, want 1", got)
	}
	if got := m.result.Error(form.MinRow); got != form.RangeMessage {
		t.Fatalf("error = %q, want %q", got, form.RangeMessage)
	}
}

func TestTyping_EmptyFieldIsRequired(t *testing.T) {
	m := newTestModel(t, nil)
	m = setField(m, form.MinColumn, "")

	if got := m.result.Error(form.MinColumn); got != "Please provide a minimum column value." {
		t.Fatalf("error = %q", got)
	}
	if !strings.Contains(m.View(), "Please provide a minimum column value.") {
		t.Fatalf("View does not show the field error")
	}
}

func TestSliderKeys_WriteBackToField(t *testing.T) {
	cases := []struct {
		name string
		keys []tea.KeyMsg
		want string
	}{
		{"up one", []tea.KeyMsg{runes("]")}, "2"},
		{"down one", []tea.KeyMsg{runes("[")}, "0"},
		{"up ten", []tea.KeyMsg{runes("}")}, "11"},
		{"page down", []tea.KeyMsg{{Type: tea.KeyPgDown}}, "-9"},
		{"to min", []tea.KeyMsg{runes("<")}, "-50"},
		{"to max", []tea.KeyMsg{runes(">")}, "50"},
		{"clamped", []tea.KeyMsg{runes(">"), runes("]")}, "50"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := press(newTestModel(t, nil), tc.keys...)
			if got := m.inputs[form.MinColumn].Value(); got != tc.want {
				t.Fatalf("field = %q, want %q", got, tc.want)
			}
			if got := m.sync.Pair(form.MinColumn).Text(); got != tc.want {
				t.Fatalf("pair text = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDebounce_OnlyLatestChangeRefreshesPreview(t *testing.T) {
	m := newTestModel(t, nil)

	m, first := update(m, runes("]"))
	m, second := update(m, runes("]"))
	if first == nil || second == nil {
		t.Fatalf("slider changes did not schedule a preview refresh")
	}

	stale := first().(preview.FireMsg)
	m, _ = update(m, stale)
	if got := m.preview.Request.Columns.Min; got != 1 {
		t.Fatalf("stale refresh applied: columns min = %d, want 1", got)
	}

	m = settle(m, second)
	if got := m.preview.Request.Columns.Min; got != 3 {
		t.Fatalf("columns min = %d, want 3", got)
	}
}

func TestPreview_GridRenderedOncePerRefresh(t *testing.T) {
	m := newTestModel(t, nil)
	if m.previewGrid == "" || m.previewGrid != m.renderGrid(m.preview.Table) {
		t.Fatalf("startup grid not cached")
	}

	m, cmd := update(m, runes("]"))
	m = settle(m, cmd)
	if !strings.Contains(m.previewGrid, "20") || m.previewGrid != m.renderGrid(m.preview.Table) {
		t.Fatalf("cached grid does not match refreshed preview")
	}

	m, _ = update(m, runes("T"))
	if m.previewGrid != m.renderGrid(m.preview.Table) {
		t.Fatalf("cached grid not restyled after theme change")
	}

	m, cmd = update(m, runes(">"))
	m = settle(m, cmd)
	if m.previewGrid != "" {
		t.Fatalf("cached grid kept while form is invalid")
	}
}

func TestPreview_PlaceholderWhileInvalid(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := update(m, runes(">"))
	m = settle(m, cmd)

	want := "Column max must be greater than or equal to the column min."
	if got := m.result.Error(form.MaxColumn); got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
	if m.preview.Ready() {
		t.Fatalf("preview still ready while form is invalid")
	}
	if !strings.Contains(m.View(), preview.Placeholder) {
		t.Fatalf("View missing placeholder")
	}
}

func TestSubmit_AddsAndActivatesTab(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.tabs.Len(); got != 1 {
		t.Fatalf("tabs = %d, want 1", got)
	}
	tab, ok := m.tabs.Active()
	if !ok || tab.Label != "Cols 1..10 x Rows 1..10" {
		t.Fatalf("active = %+v, %v", tab, ok)
	}
	if m.status.err || !strings.Contains(m.status.text, tab.Label) {
		t.Fatalf("status = %+v", m.status)
	}
	if !strings.Contains(m.View(), "Saved tables (1)") {
		t.Fatalf("View missing saved tables count")
	}
}

func TestSubmit_InvalidFormAddsNothing(t *testing.T) {
	m := newTestModel(t, nil)
	m = setField(m, form.MaxRow, "")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.tabs.Len(); got != 0 {
		t.Fatalf("tabs = %d, want 0", got)
	}
	if !m.status.err {
		t.Fatalf("status = %+v, want error", m.status)
	}
}

func TestFocus_WrapsThroughTabsPane(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != focusTabs {
		t.Fatalf("focus = %d, want tabs pane", m.focus)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 0 || !m.inputs[0].Focused() {
		t.Fatalf("focus = %d, want first field", m.focus)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if m.focus != int(form.MinRow) || m.inputs[0].Focused() {
		t.Fatalf("focus = %d, want %d", m.focus, form.MinRow)
	}
}

// saveTwo saves two different tables and moves focus to the tabs pane.
func saveTwo(t *testing.T, m Model) Model {
	t.Helper()
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter}, runes("]"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.tabs.Len() != 2 {
		t.Fatalf("tabs = %d, want 2", m.tabs.Len())
	}
	m.setFocus(focusTabs)
	return m
}

func TestTabsPane_SwitchTabs(t *testing.T) {
	m := saveTwo(t, newTestModel(t, nil))

	if got := m.tabs.ActiveIndex(); got != 1 {
		t.Fatalf("active = %d, want newest", got)
	}
	m = press(m, runes("h"))
	if got := m.tabs.ActiveIndex(); got != 0 {
		t.Fatalf("after h active = %d, want 0", got)
	}
	m = press(m, runes("h"))
	if got := m.tabs.ActiveIndex(); got != 1 {
		t.Fatalf("after wrap active = %d, want 1", got)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.tabs.ActiveIndex(); got != 0 {
		t.Fatalf("after right active = %d, want 0", got)
	}
}

func TestTabsPane_TabBarKeepsActiveEntryVisible(t *testing.T) {
	m := newTestModel(t, nil)
	for i := 0; i < 8; i++ {
		m = press(m, tea.KeyMsg{Type: tea.KeyEnter}, runes("]"))
	}
	if m.tabs.Len() != 8 {
		t.Fatalf("tabs = %d, want 8", m.tabs.Len())
	}
	m.setFocus(focusTabs)
	m = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	view := m.View()
	if !strings.Contains(view, "[x] Cols 8..10 x Rows 1..10 ×") {
		t.Fatalf("View does not show the checked active tab:\n%s", view)
	}
	if !strings.Contains(view, "‹") {
		t.Fatalf("View does not mark the hidden tabs:\n%s", view)
	}

	m = press(m, runes("l"))
	view = m.View()
	if !strings.Contains(view, "[ ] Cols 1..10 x Rows 1..10 ×") {
		t.Fatalf("View does not show the first tab after wrapping:\n%s", view)
	}
	if !strings.Contains(view, "›") {
		t.Fatalf("View does not mark the hidden tabs:\n%s", view)
	}
}

func TestTabsPane_CheckAndDeleteSelected(t *testing.T) {
	m := saveTwo(t, newTestModel(t, nil))

	m = press(m, runes("D"))
	if m.tabs.Len() != 2 || !m.status.err {
		t.Fatalf("delete with nothing checked: tabs = %d, status = %+v", m.tabs.Len(), m.status)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	active, _ := m.tabs.Active()
	if !m.tabs.IsSelected(active.ID) {
		t.Fatalf("space did not check the active tab")
	}
	if !strings.Contains(m.View(), "[x]") {
		t.Fatalf("View missing checked box")
	}

	m = press(m, runes("D"))
	if got := m.tabs.Len(); got != 1 {
		t.Fatalf("tabs = %d, want 1", got)
	}
	if m.tabs.CanDeleteSelected() {
		t.Fatalf("selection not cleared after delete")
	}
}

func TestTabsPane_CloseLastShowsEmptyState(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m.setFocus(focusTabs)

	m = press(m, runes("x"))
	if got := m.tabs.Len(); got != 0 {
		t.Fatalf("tabs = %d, want 0", got)
	}
	if !strings.Contains(m.View(), emptyTabsText) {
		t.Fatalf("View missing %q", emptyTabsText)
	}

	// Closing with nothing open is a no-op.
	m = press(m, runes("x"))
	if got := m.tabs.Len(); got != 0 {
		t.Fatalf("tabs = %d, want 0", got)
	}
}

func TestTabsPane_EscapeReturnsToForm(t *testing.T) {
	m := newTestModel(t, nil)
	m.setFocus(focusTabs)
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.focus != 0 {
		t.Fatalf("focus = %d, want 0", m.focus)
	}
}

func TestTabsPane_HorizontalScrollStaysInBounds(t *testing.T) {
	m := newTestModel(t, nil)
	m = setField(m, form.MinColumn, "-50")
	m = setField(m, form.MaxColumn, "50")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m.setFocus(focusTabs)

	m = press(m, runes("H"))
	if m.tableLeft != 0 {
		t.Fatalf("tableLeft = %d, want 0", m.tableLeft)
	}
	m = press(m, runes("L"), runes("L"))
	if m.tableLeft != 2*horizontalStep {
		t.Fatalf("tableLeft = %d, want %d", m.tableLeft, 2*horizontalStep)
	}
	for i := 0; i < 200; i++ {
		m = press(m, runes("L"))
	}
	if limit := blockWidth(m.renderGrid(activeTable(t, m))) - m.tableView.Width; m.tableLeft != limit {
		t.Fatalf("tableLeft = %d, want %d", m.tableLeft, limit)
	}
}

func activeTable(t *testing.T, m Model) grid.Table {
	t.Helper()
	tab, ok := m.tabs.Active()
	if !ok {
		t.Fatalf("no active tab")
	}
	return tab.Table
}

func TestCopy_WritesActiveTableAsTSV(t *testing.T) {
	clip := &testClipboard{}
	m := newTestModel(t, clip)
	m.setFocus(focusTabs)

	m = press(m, runes("y"))
	if !m.status.err || clip.text != "" {
		t.Fatalf("copy with no tabs: status = %+v, clipboard = %q", m.status, clip.text)
	}

	m.setFocus(0)
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m.setFocus(focusTabs)
	m = press(m, runes("y"))
	if want := export.TSV(activeTable(t, m)); clip.text != want {
		t.Fatalf("clipboard = %q, want %q", clip.text, want)
	}
}

func TestCopy_ReportsClipboardError(t *testing.T) {
	clip := &testClipboard{err: errors.New("no clipboard")}
	m := newTestModel(t, clip)
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m.setFocus(focusTabs)

	m = press(m, runes("y"))
	if !m.status.err || !strings.Contains(m.status.text, "no clipboard") {
		t.Fatalf("status = %+v", m.status)
	}
}

func TestExport_WritesWorkbook(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m.setFocus(focusTabs)

	m, cmd := update(m, runes("s"))
	if cmd == nil {
		t.Fatalf("export returned no command")
	}
	done, ok := cmd().(exportDoneMsg)
	if !ok {
		t.Fatalf("export command returned %T", cmd())
	}
	if done.err != nil {
		t.Fatalf("export error: %v", done.err)
	}
	if _, err := os.Stat(done.path); err != nil {
		t.Fatalf("Stat(%s): %v", done.path, err)
	}
	if filepath.Base(done.path) != "multable_c1_10_r1_10.xlsx" {
		t.Fatalf("path = %q", done.path)
	}

	m, _ = update(m, done)
	if m.status.err || !strings.Contains(m.status.text, "Exported") {
		t.Fatalf("status = %+v", m.status)
	}
}

func TestCycleTheme_PersistsPreference(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(m, runes("T"))
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	if got := prefs.Load(m.prefsPath).Theme; got != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", got)
	}
	// Theme keys do not reach the text input.
	if got := m.inputs[form.MinColumn].Value(); got != "1" {
		t.Fatalf("field = %q, want 1", got)
	}
}

func TestHelpToggle_PersistsPreference(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(m, runes("?"))
	if !m.help.ShowAll {
		t.Fatalf("full help not shown")
	}
	if got := prefs.Load(m.prefsPath); !got.FullHelp {
		t.Fatalf("saved prefs = %+v, want full help", got)
	}
}

func TestStatus_ExpiresOnlyForLatestMessage(t *testing.T) {
	m := newTestModel(t, nil)
	m.setStatus("first", false)
	m.setStatus("second", false)

	m, _ = update(m, statusExpiredMsg{seq: 1})
	if m.status.text != "second" {
		t.Fatalf("stale expiry cleared status: %+v", m.status)
	}
	m, _ = update(m, statusExpiredMsg{seq: 2})
	if m.status.text != "" {
		t.Fatalf("status = %q, want cleared", m.status.text)
	}
}
