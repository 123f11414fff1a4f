package model

// DefaultHistorySize matches the window the terminal demo keeps
const DefaultHistorySize = 5

// History stores the hashes of recent generations for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps at most size hashes; size < 3 is raised to 3 so period-3 cycles stay visible
func NewHistory(size int) *History {
	return &History{size: max(size, 3)}
}

// Record appends a generation hash and drops the oldest beyond the window
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Len returns the number of stored hashes
func (h *History) Len() int {
	return len(h.hashes)
}

// Clear forgets every stored hash
func (h *History) Clear() {
	h.hashes = nil
}

// Stagnant reports whether hash repeats one of the last three recorded generations,
// which covers still lifes and period-2/3 oscillators
func (h *History) Stagnant(hash string) bool {
	if len(h.hashes) < 3 {
		return false
	}
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == hash {
			return true
		}
	}
	return false
}
