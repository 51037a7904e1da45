package tui

const defaultHistorySize = 500

// History keeps the most recent input lines in memory.
type History struct {
	entries []string
	maxSize int
}

// NewHistory creates a History holding at most maxSize lines. A non-positive
// maxSize selects the default.
func NewHistory(maxSize int) *History {
	if maxSize <= 0 {
		maxSize = defaultHistorySize
	}
	return &History{maxSize: maxSize}
}

// Add appends a line. Consecutive duplicates are stored once.
func (h *History) Add(line string) {
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	h.entries = append(h.entries, line)
	if len(h.entries) > h.maxSize {
		h.entries = h.entries[1:]
	}
}

// Get returns the entry at index (0 = most recent), or "" when out of range.
func (h *History) Get(index int) string {
	if index < 0 || index >= len(h.entries) {
		return ""
	}
	return h.entries[len(h.entries)-1-index]
}

// Len returns the number of stored lines.
func (h *History) Len() int {
	return len(h.entries)
}
