package engine

import "github.com/vovakirdan/tui-2048/internal/grid"

// DefaultHistoryLimit bounds the undo history.
const DefaultHistoryLimit = 10

// snapshot is an immutable copy of the board and score captured before a
// state-changing move. Each entry owns its grid copy; entries share nothing.
type snapshot struct {
	grid  *grid.Grid
	score uint64
}

// history is a bounded FIFO queue of snapshots. Pushing beyond capacity
// evicts the oldest entry; the queue never grows past its limit.
type history struct {
	entries []snapshot
	limit   int
}

func newHistory(limit int) *history {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &history{limit: limit}
}

// Push appends a snapshot, evicting the oldest entry when full.
func (h *history) Push(s snapshot) {
	if len(h.entries) >= h.limit {
		h.entries = h.entries[1:]
	}
	h.entries = append(h.entries, s)
}

// Pop removes and returns the most recent snapshot.
// The second return value is false if the history is empty.
func (h *history) Pop() (snapshot, bool) {
	if len(h.entries) == 0 {
		return snapshot{}, false
	}
	s := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return s, true
}

// Len returns the number of stored snapshots.
func (h *history) Len() int {
	return len(h.entries)
}

// Clear drops all snapshots.
func (h *history) Clear() {
	h.entries = nil
}
