package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/multable/internal/config"
	"github.com/five82/multable/internal/export"
	"github.com/five82/multable/internal/form"
	"github.com/five82/multable/internal/grid"
	"github.com/five82/multable/internal/prefs"
	"github.com/five82/multable/internal/preview"
	"github.com/five82/multable/internal/slider"
	"github.com/five82/multable/internal/tabs"
)

// focusTabs is the focus slot of the saved tables pane. Slots below it are
// the form fields in order.
const focusTabs = len(form.Fields)

// Options configures the UI.
type Options struct {
	Config    config.Config
	ThemeName string
	FullHelp  bool
	PrefsPath string

	// Clipboard receives copied tables. Nil uses the system clipboard.
	Clipboard func(string) error
}

// statusLine is the transient message shown in the footer.
type statusLine struct {
	text string
	err  bool
	seq  int
}

type statusExpiredMsg struct{ seq int }

type exportDoneMsg struct {
	path string
	err  error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	prefsPath string
	exportDir string
	clipboard func(string) error
	keys      keyMap

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool
	focus  int
	help   help.Model
	status statusLine

	// Form state
	inputs [len(form.Fields)]textinput.Model
	sync   *slider.Synchronizer
	result form.Result
	bar    progress.Model

	// Preview state
	debounce    preview.Debouncer
	preview     preview.State
	previewGrid string

	// Saved tables
	tabs      *tabs.Manager
	tableView viewport.Model
	tableLeft int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	cfg := opts.Config

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}

	m := Model{
		prefsPath: prefsPath,
		exportDir: cfg.ExportDir,
		clipboard: clip,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		help:      help.New(),
		sync:      slider.New(form.FromRequest(cfg.Defaults)),
		debounce:  preview.NewDebouncer(cfg.PreviewDebounce),
		tabs:      tabs.New(),
		tableView: viewport.New(0, 0),
	}
	m.help.ShowAll = opts.FullHelp

	for _, f := range form.Fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = inputCharLimit
		ti.Width = inputWidth
		ti.SetValue(m.sync.Pair(f).Text())
		m.inputs[f] = ti
	}
	m.inputs[0].Focus()
	m.applyTheme()

	// The first preview does not wait for the debounce.
	m.result = form.Validate(m.sync.Values())
	m.setPreview(preview.Compute(m.result))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.resizeTableView()
		return m, nil

	case preview.FireMsg:
		if m.debounce.Ready(msg) {
			m.setPreview(preview.Compute(m.result))
		}
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			log.Printf("export failed: %v", msg.err)
			return m, m.setStatus(fmt.Sprintf("Export failed: %v", msg.err), true)
		}
		log.Printf("exported %s", msg.path)
		return m, m.setStatus("Exported "+msg.path, false)

	case statusExpiredMsg:
		if msg.seq == m.status.seq {
			m.status.text = ""
			m.status.err = false
		}
		return m, nil
	}

	// Cursor blink and other input housekeeping.
	if m.focus < focusTabs {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.renderMain()
}

// handleKey processes keyboard input. Global bindings win over the focused
// pane.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextFocus):
		return m, m.setFocus(m.focus + 1)

	case key.Matches(msg, m.keys.PrevFocus):
		return m, m.setFocus(m.focus - 1)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeTableView()
		return m, m.savePrefs()

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		m.refreshTableView()
		return m, m.savePrefs()
	}

	if m.focus == focusTabs {
		return m.handleTabsKey(msg)
	}
	return m.handleFieldKey(msg)
}

// handleFieldKey handles keys while a form field has focus. Keys without a
// binding go to the text input.
func (m Model) handleFieldKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := form.Fields[m.focus]

	switch {
	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()
	case key.Matches(msg, m.keys.SliderDown):
		return m, m.nudge(f, -1)
	case key.Matches(msg, m.keys.SliderUp):
		return m, m.nudge(f, 1)
	case key.Matches(msg, m.keys.SliderDown10):
		return m, m.nudge(f, -10)
	case key.Matches(msg, m.keys.SliderUp10):
		return m, m.nudge(f, 10)
	case key.Matches(msg, m.keys.SliderMin):
		return m, m.slide(f, grid.MinValue)
	case key.Matches(msg, m.keys.SliderMax):
		return m, m.slide(f, grid.MaxValue)
	}

	before := m.inputs[f].Value()
	var cmd tea.Cmd
	m.inputs[f], cmd = m.inputs[f].Update(msg)
	if after := m.inputs[f].Value(); after != before {
		return m, tea.Batch(cmd, m.editField(f, after))
	}
	return m, cmd
}

// handleTabsKey handles keys while the saved tables pane has focus.
func (m Model) handleTabsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		return m, m.setFocus(0)

	case key.Matches(msg, m.keys.PrevTab):
		m.tabs.Prev()
		m.showActiveTab()

	case key.Matches(msg, m.keys.NextTab):
		m.tabs.Next()
		m.showActiveTab()

	case key.Matches(msg, m.keys.CloseTab):
		tab, ok := m.tabs.Active()
		if !ok {
			return m, nil
		}
		m.tabs.Close(tab.ID)
		log.Printf("tab closed: %s (%s)", tab.ID, tab.Label)
		m.showActiveTab()
		return m, m.setStatus("Closed "+tab.Label, false)

	case key.Matches(msg, m.keys.ToggleSelect):
		if tab, ok := m.tabs.Active(); ok {
			m.tabs.ToggleSelected(tab.ID)
		}

	case key.Matches(msg, m.keys.DeleteSelected):
		if !m.tabs.CanDeleteSelected() {
			return m, m.setStatus("Check at least one tab to delete.", true)
		}
		ids := m.tabs.Selected()
		n := m.tabs.DeleteSelected()
		log.Printf("tabs deleted: %v", ids)
		m.showActiveTab()
		return m, m.setStatus(fmt.Sprintf("Deleted %d %s", n, pluralize(n, "table", "tables")), false)

	case key.Matches(msg, m.keys.ScrollUp):
		m.tableView.LineUp(1)

	case key.Matches(msg, m.keys.ScrollDown):
		m.tableView.LineDown(1)

	case key.Matches(msg, m.keys.ScrollLeft):
		m.scrollTable(-horizontalStep)

	case key.Matches(msg, m.keys.ScrollRight):
		m.scrollTable(horizontalStep)

	case key.Matches(msg, m.keys.Top):
		m.tableView.GotoTop()

	case key.Matches(msg, m.keys.Bottom):
		m.tableView.GotoBottom()

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyActive()

	case key.Matches(msg, m.keys.Export):
		return m, m.exportActive()
	}
	return m, nil
}

// setFocus moves focus to slot i, wrapping around the form and the tabs pane.
func (m *Model) setFocus(i int) tea.Cmd {
	n := focusTabs + 1
	i = ((i % n) + n) % n
	if m.focus < focusTabs {
		m.inputs[m.focus].Blur()
	}
	m.focus = i
	if i < focusTabs {
		return m.inputs[i].Focus()
	}
	return nil
}

// editField applies text typed into field f.
func (m *Model) editField(f form.Field, raw string) tea.Cmd {
	out := m.sync.EditField(f, raw)
	if out.TextChanged {
		m.inputs[f].SetValue(m.sync.Pair(f).Text())
	}
	if !out.Notify {
		return nil
	}
	return m.revalidate()
}

// slide moves the slider of f to v.
func (m *Model) slide(f form.Field, v int) tea.Cmd {
	return m.applySlider(f, m.sync.EditSlider(f, v))
}

// nudge moves the slider of f by delta.
func (m *Model) nudge(f form.Field, delta int) tea.Cmd {
	return m.applySlider(f, m.sync.Nudge(f, delta))
}

func (m *Model) applySlider(f form.Field, out slider.Outcome) tea.Cmd {
	if out.TextChanged {
		m.inputs[f].SetValue(m.sync.Pair(f).Text())
	}
	if !out.Notify {
		return nil
	}
	return m.revalidate()
}

// revalidate checks the form and schedules a preview refresh.
func (m *Model) revalidate() tea.Cmd {
	m.result = form.Validate(m.sync.Values())
	return m.debounce.Trigger()
}

// submit saves the current request as a new tab.
func (m *Model) submit() tea.Cmd {
	m.result = form.Validate(m.sync.Values())
	req, ok := m.result.Request()
	if !ok {
		return m.setStatus("Fix the highlighted fields before saving.", true)
	}
	tab, err := m.tabs.Add(req)
	if err != nil {
		log.Printf("add tab: %v", err)
		return m.setStatus(fmt.Sprintf("Could not save table: %v", err), true)
	}
	log.Printf("tab added: %s (%s)", tab.ID, tab.Label)
	m.showActiveTab()
	return m.setStatus("Saved "+tab.Label, false)
}

// copyActive writes the active table to the clipboard as TSV.
func (m *Model) copyActive() tea.Cmd {
	tab, ok := m.tabs.Active()
	if !ok {
		return m.setStatus("No table to copy.", true)
	}
	if err := m.clipboard(export.TSV(tab.Table)); err != nil {
		log.Printf("clipboard: %v", err)
		return m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
	}
	return m.setStatus("Copied "+tab.Label, false)
}

// exportActive writes the active table as a workbook in the export directory.
func (m *Model) exportActive() tea.Cmd {
	tab, ok := m.tabs.Active()
	if !ok {
		return m.setStatus("No table to export.", true)
	}
	path := filepath.Join(m.exportDir, export.FileName(tab.Table))
	table := tab.Table
	return func() tea.Msg {
		return exportDoneMsg{path: path, err: export.SaveXLSX(path, table)}
	}
}

// setPreview stores st and renders its table once for the frames that follow.
func (m *Model) setPreview(st preview.State) {
	m.preview = st
	m.previewGrid = ""
	if st.Ready() {
		m.previewGrid = m.renderGrid(st.Table)
	}
}

// savePrefs persists the theme and help mode.
func (m *Model) savePrefs() tea.Cmd {
	p := prefs.Prefs{Theme: m.theme.Name, FullHelp: m.help.ShowAll}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Printf("save prefs: %v", err)
		return m.setStatus(fmt.Sprintf("Could not save preferences: %v", err), true)
	}
	return nil
}

// setStatus shows text in the footer until statusTTL passes or another
// status replaces it.
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.status.seq++
	m.status.text = text
	m.status.err = isErr
	seq := m.status.seq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

// applyTheme restyles the inputs, slider bar and help footer.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	for i := range m.inputs {
		m.inputs[i].TextStyle = styles.Text
		m.inputs[i].PlaceholderStyle = styles.FaintText
		m.inputs[i].Cursor.Style = styles.AccentText
	}

	m.bar = progress.New(
		progress.WithSolidFill(m.theme.Accent),
		progress.WithoutPercentage(),
		progress.WithWidth(sliderWidth),
	)
	m.bar.EmptyColor = m.theme.Border

	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.AccentText
	m.help.Styles.FullDesc = styles.MutedText
	m.help.Styles.FullSeparator = styles.FaintText
	m.help.Styles.Ellipsis = styles.FaintText

	if m.previewGrid != "" {
		m.setPreview(m.preview)
	}
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
