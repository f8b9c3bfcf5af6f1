package model

// DefaultHistoryDepth is enough to notice still lifes and period-2 and period-3 oscillators
const DefaultHistoryDepth = 5

// History keeps fingerprints of recent generations for cycle detection
type History struct {
	depth  int
	hashes []string
}

// NewHistory creates a history remembering the last depth generations
func NewHistory(depth int) *History {
	if depth < 1 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Repeats reports whether g matches any remembered generation
func (h *History) Repeats(g *Grid) bool {
	return h.indexOf(g.Hash()) >= 0
}

// Period returns how many generations ago g was last seen, or 0 if it was not
func (h *History) Period(g *Grid) int {
	idx := h.indexOf(g.Hash())
	if idx < 0 {
		return 0
	}
	return len(h.hashes) - idx
}

func (h *History) indexOf(hash string) int {
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == hash {
			return i
		}
	}
	return -1
}

// Record adds g to the history, dropping the oldest entry once full
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())

	if len(h.hashes) > h.depth {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets all remembered generations
func (h *History) Reset() {
	h.hashes = nil
}
