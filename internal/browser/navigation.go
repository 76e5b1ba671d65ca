package browser

// NavigationHistory is a linear back/forward stack. The cursor is -1 while
// the history is empty and otherwise stays within [0, len-1].
type NavigationHistory struct {
	entries []string
	cursor  int
}

func NewNavigationHistory() *NavigationHistory {
	return &NavigationHistory{cursor: -1}
}

// Visit drops every entry past the cursor, appends url and moves the cursor
// onto it. Empty and blank URLs are ignored.
func (h *NavigationHistory) Visit(url string) bool {
	if IsBlank(url) {
		return false
	}
	if h.cursor < len(h.entries)-1 {
		h.entries = h.entries[:h.cursor+1]
	}
	h.entries = append(h.entries, url)
	h.cursor = len(h.entries) - 1
	return true
}

func (h *NavigationHistory) Back() (string, bool) {
	if !h.CanGoBack() {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

func (h *NavigationHistory) Forward() (string, bool) {
	if !h.CanGoForward() {
		return "", false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

func (h *NavigationHistory) CanGoBack() bool {
	return h.cursor > 0
}

func (h *NavigationHistory) CanGoForward() bool {
	return h.cursor >= 0 && h.cursor < len(h.entries)-1
}

func (h *NavigationHistory) Current() string {
	if h.cursor < 0 || h.cursor >= len(h.entries) {
		return ""
	}
	return h.entries[h.cursor]
}

func (h *NavigationHistory) Cursor() int {
	return h.cursor
}

func (h *NavigationHistory) Len() int {
	return len(h.entries)
}

func (h *NavigationHistory) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
