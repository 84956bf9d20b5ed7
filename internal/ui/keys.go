package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	NextFocus  key.Binding
	PrevFocus  key.Binding
	Escape     key.Binding

	// Form
	Submit       key.Binding
	SliderDown   key.Binding
	SliderUp     key.Binding
	SliderDown10 key.Binding
	SliderUp10   key.Binding
	SliderMin    key.Binding
	SliderMax    key.Binding

	// Tabs pane
	PrevTab        key.Binding
	NextTab        key.Binding
	CloseTab       key.Binding
	ToggleSelect   key.Binding
	DeleteSelected key.Binding
	ScrollUp       key.Binding
	ScrollDown     key.Binding
	ScrollLeft     key.Binding
	ScrollRight    key.Binding
	Top            key.Binding
	Bottom         key.Binding
	Copy           key.Binding
	Export         key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "More keys"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/down", "Next field"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/up", "Previous field"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back to form"),
		),

		// Form
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Save as tab"),
		),
		SliderDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Slider -1"),
		),
		SliderUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Slider +1"),
		),
		SliderDown10: key.NewBinding(
			key.WithKeys("{", "pgdown"),
			key.WithHelp("{/pgdown", "Slider -10"),
		),
		SliderUp10: key.NewBinding(
			key.WithKeys("}", "pgup"),
			key.WithHelp("}/pgup", "Slider +10"),
		),
		SliderMin: key.NewBinding(
			key.WithKeys("ctrl+home", "<"),
			key.WithHelp("ctrl+home/<", "Slider to min"),
		),
		SliderMax: key.NewBinding(
			key.WithKeys("ctrl+end", ">"),
			key.WithHelp("ctrl+end/>", "Slider to max"),
		),

		// Tabs pane
		PrevTab: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("h/left", "Previous tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("l/right", "Next tab"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Close tab"),
		),
		ToggleSelect: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Check tab"),
		),
		DeleteSelected: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "Delete checked"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "Scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "Scroll down"),
		),
		ScrollLeft: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "Scroll left"),
		),
		ScrollRight: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Scroll right"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy table"),
		),
		Export: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Export xlsx"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Submit, k.SliderUp, k.SliderDown, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Form
		{k.NextFocus, k.PrevFocus, k.Submit},
		{k.SliderDown, k.SliderUp, k.SliderDown10, k.SliderUp10, k.SliderMin, k.SliderMax},
		// Tabs
		{k.PrevTab, k.NextTab, k.CloseTab, k.ToggleSelect, k.DeleteSelected},
		{k.ScrollUp, k.ScrollDown, k.ScrollLeft, k.ScrollRight, k.Top, k.Bottom},
		{k.Copy, k.Export},
		// General
		{k.Escape, k.CycleTheme, k.Help, k.Quit},
	}
}
