package tabs

import (
	"fmt"

	"github.com/five82/multable/internal/grid"
)

// Tab is a saved generated table.
type Tab struct {
	ID      string
	Label   string
	Request grid.Request
	Table   grid.Table
}

// Manager owns the tabs of one session. It is not safe for concurrent use;
// the UI mutates it from its update loop only.
type Manager struct {
	tabs     []Tab
	nextID   int
	active   string
	selected map[string]bool
}

// New returns an empty manager.
func New() *Manager {
	return &Manager{selected: make(map[string]bool)}
}

// Add generates the table for req, appends it as a new tab and activates it.
func (m *Manager) Add(req grid.Request) (Tab, error) {
	if err := checkRange(req.Columns); err != nil {
		return Tab{}, fmt.Errorf("columns: %w", err)
	}
	if err := checkRange(req.Rows); err != nil {
		return Tab{}, fmt.Errorf("rows: %w", err)
	}

	m.nextID++
	tab := Tab{
		ID:      fmt.Sprintf("table-tab-%d", m.nextID),
		Label:   req.Label(),
		Request: req,
		Table:   grid.BuildRequest(req),
	}
	m.tabs = append(m.tabs, tab)
	m.active = tab.ID
	m.clearSelection()
	return tab, nil
}

func checkRange(r grid.Range) error {
	for _, v := range []int{r.Min, r.Max} {
		if v < grid.MinValue || v > grid.MaxValue {
			return fmt.Errorf("value %d outside [%d, %d]", v, grid.MinValue, grid.MaxValue)
		}
	}
	return nil
}

// Delete removes the tabs with the given ids and returns how many were
// removed. Unknown ids are ignored. When the active tab is removed the last
// remaining tab becomes active.
func (m *Manager) Delete(ids ...string) int {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	kept := m.tabs[:0]
	removed := 0
	for _, tab := range m.tabs {
		if drop[tab.ID] {
			removed++
			continue
		}
		kept = append(kept, tab)
	}
	for i := len(kept); i < len(m.tabs); i++ {
		m.tabs[i] = Tab{}
	}
	m.tabs = kept

	if removed > 0 {
		m.clearSelection()
	}
	if drop[m.active] || m.indexOf(m.active) < 0 {
		m.active = ""
		if n := len(m.tabs); n > 0 {
			m.active = m.tabs[n-1].ID
		}
	}
	return removed
}

// Close removes a single tab.
func (m *Manager) Close(id string) bool {
	return m.Delete(id) == 1
}

// List returns the tabs in creation order.
func (m *Manager) List() []Tab {
	out := make([]Tab, len(m.tabs))
	copy(out, m.tabs)
	return out
}

// Len returns the number of tabs.
func (m *Manager) Len() int { return len(m.tabs) }

// Active returns the active tab. The second result is false when there are
// no tabs.
func (m *Manager) Active() (Tab, bool) {
	i := m.indexOf(m.active)
	if i < 0 {
		return Tab{}, false
	}
	return m.tabs[i], true
}

// ActiveIndex returns the position of the active tab, or -1.
func (m *Manager) ActiveIndex() int {
	return m.indexOf(m.active)
}

// Activate makes id the active tab. Unknown ids are ignored.
func (m *Manager) Activate(id string) bool {
	if m.indexOf(id) < 0 {
		return false
	}
	m.active = id
	return true
}

// Next activates the tab after the active one, wrapping around.
func (m *Manager) Next() {
	m.step(1)
}

// Prev activates the tab before the active one, wrapping around.
func (m *Manager) Prev() {
	m.step(-1)
}

func (m *Manager) step(delta int) {
	n := len(m.tabs)
	if n == 0 {
		return
	}
	i := m.indexOf(m.active)
	if i < 0 {
		i = n - 1
	}
	i = (i + delta + n) % n
	m.active = m.tabs[i].ID
}

// ToggleSelected flips the bulk-delete checkbox of id.
func (m *Manager) ToggleSelected(id string) bool {
	if m.indexOf(id) < 0 {
		return false
	}
	if m.selected[id] {
		delete(m.selected, id)
	} else {
		m.selected[id] = true
	}
	return true
}

// IsSelected reports whether the checkbox of id is checked.
func (m *Manager) IsSelected(id string) bool {
	return m.selected[id]
}

// Selected returns the checked ids in tab order.
func (m *Manager) Selected() []string {
	var out []string
	for _, tab := range m.tabs {
		if m.selected[tab.ID] {
			out = append(out, tab.ID)
		}
	}
	return out
}

// CanDeleteSelected reports whether the bulk delete action is enabled.
func (m *Manager) CanDeleteSelected() bool {
	return len(m.Selected()) > 0
}

// DeleteSelected removes every checked tab.
func (m *Manager) DeleteSelected() int {
	ids := m.Selected()
	if len(ids) == 0 {
		return 0
	}
	return m.Delete(ids...)
}

func (m *Manager) clearSelection() {
	for id := range m.selected {
		delete(m.selected, id)
	}
}

func (m *Manager) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, tab := range m.tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}
