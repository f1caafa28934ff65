package core

// MaxHistory bounds the replay history.
const MaxHistory = 50

// Entry is one successful calculation.
type Entry struct {
	Visual   string
	Internal string
	Result   string
}

// History records calculations for the replay keys. The cursor sits one
// past the newest entry until Previous moves it back.
type History struct {
	entries []Entry
	cursor  int
}

func NewHistory() *History {
	return &History{}
}

// Record appends e, dropping the oldest entry when full, and resets the cursor.
func (h *History) Record(e Entry) {
	h.entries = append(h.entries, e)
	if len(h.entries) > MaxHistory {
		h.entries = h.entries[len(h.entries)-MaxHistory:]
	}
	h.cursor = len(h.entries)
}

// Previous steps back one entry. It stops at the oldest.
func (h *History) Previous() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next steps forward one entry. Past the newest it reports false.
func (h *History) Next() (Entry, bool) {
	if h.cursor >= len(h.entries)-1 {
		h.cursor = len(h.entries)
		return Entry{}, false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	return len(h.entries)
}
