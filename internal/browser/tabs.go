package browser

import "github.com/google/uuid"

// TabManager keeps the ordered tab strip. Exactly one tab is active and the
// strip never becomes empty.
type TabManager struct {
	tabs []*Tab
}

func NewTabManager(title, url string) *TabManager {
	t := newTab(title, url)
	t.Active = true
	return &TabManager{tabs: []*Tab{t}}
}

func newTab(title, url string) *Tab {
	h := NewNavigationHistory()
	h.Visit(url)
	return &Tab{
		ID:      uuid.NewString(),
		Title:   title,
		URL:     url,
		history: h,
	}
}

// Add appends a blank tab and makes it the active one.
func (m *TabManager) Add() Tab {
	for _, t := range m.tabs {
		t.Active = false
	}
	t := newTab(NewTabTitle, BlankURL)
	t.Active = true
	m.tabs = append(m.tabs, t)
	return *t
}

// Close removes the tab with the given id. Closing the last remaining tab or
// an unknown id does nothing. When the active tab is closed, the tab that now
// occupies its index (or the new last tab) becomes active.
func (m *TabManager) Close(id string) bool {
	if len(m.tabs) <= 1 {
		return false
	}
	idx := m.Index(id)
	if idx < 0 {
		return false
	}
	wasActive := m.tabs[idx].Active
	m.tabs = append(m.tabs[:idx], m.tabs[idx+1:]...)
	if wasActive {
		next := idx
		if next > len(m.tabs)-1 {
			next = len(m.tabs) - 1
		}
		m.tabs[next].Active = true
	}
	return true
}

// Switch activates the tab with the given id. An unknown id keeps the
// current active tab.
func (m *TabManager) Switch(id string) bool {
	idx := m.Index(id)
	if idx < 0 {
		return false
	}
	for i, t := range m.tabs {
		t.Active = i == idx
	}
	return true
}

func (m *TabManager) Next() Tab {
	return m.cycle(1)
}

func (m *TabManager) Prev() Tab {
	return m.cycle(-1)
}

func (m *TabManager) cycle(delta int) Tab {
	idx := m.activeIndex()
	next := (idx + delta + len(m.tabs)) % len(m.tabs)
	for i, t := range m.tabs {
		t.Active = i == next
	}
	return *m.tabs[next]
}

func (m *TabManager) Active() *Tab {
	return m.tabs[m.activeIndex()]
}

func (m *TabManager) activeIndex() int {
	for i, t := range m.tabs {
		if t.Active {
			return i
		}
	}
	// Unreachable while the invariant holds; recover by activating the first.
	m.tabs[0].Active = true
	return 0
}

func (m *TabManager) Index(id string) int {
	for i, t := range m.tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (m *TabManager) Len() int {
	return len(m.tabs)
}

// Tabs returns a snapshot of the strip in display order.
func (m *TabManager) Tabs() []Tab {
	out := make([]Tab, 0, len(m.tabs))
	for _, t := range m.tabs {
		out = append(out, *t)
	}
	return out
}

// History returns the navigation history owned by the tab.
func (t *Tab) History() *NavigationHistory {
	if t.history == nil {
		t.history = NewNavigationHistory()
	}
	return t.history
}
