package session

// History is the navigation history of the content frame.
type History struct {
	entries []string
	index   int
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{index: -1}
}

// Push records url as the current entry, dropping any forward entries.
// Pushing the current URL again is a no-op.
func (h *History) Push(url string) {
	if h.index >= 0 && h.entries[h.index] == url {
		return
	}
	h.entries = append(h.entries[:h.index+1], url)
	h.index = len(h.entries) - 1
}

// Replace swaps the current entry for url without touching the rest.
func (h *History) Replace(url string) {
	if h.index < 0 {
		h.Push(url)
		return
	}
	h.entries[h.index] = url
}

// Current returns the current entry, or "" when empty.
func (h *History) Current() string {
	if h.index < 0 {
		return ""
	}
	return h.entries[h.index]
}

func (h *History) CanBack() bool    { return h.index > 0 }
func (h *History) CanForward() bool { return h.index >= 0 && h.index < len(h.entries)-1 }

// Back moves to the previous entry and reports whether it moved.
func (h *History) Back() bool {
	if !h.CanBack() {
		return false
	}
	h.index--
	return true
}

// Forward moves to the next entry and reports whether it moved.
func (h *History) Forward() bool {
	if !h.CanForward() {
		return false
	}
	h.index++
	return true
}

// Entries returns a copy of the entries, oldest first, and the current index.
func (h *History) Entries() ([]string, int) {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out, h.index
}
