package editor

// historyEntry is one recorded geometry state. Committed and active polygons
// are stored side by side; an in-progress polygon is never folded into the
// committed list, so redo can never resurrect it as committed.
type historyEntry struct {
	committed []Polygon
	active    Polygon
}

// history is a linear undo/redo stack of geometry snapshots plus a pointer to
// the entry currently live in the editor. Entry 0 is always the baseline
// empty state, so undo at the bottom and redo at the top are ordinary
// pointer-boundary no-ops.
type history struct {
	entries []historyEntry
	index   int
}

func newHistory() *history {
	return &history{entries: []historyEntry{{}}}
}

// record captures the given state as a new entry. Any redo-able entries past
// the pointer are discarded first: pushing after an undo abandons that
// branch of the future.
func (h *history) record(committed []Polygon, active Polygon) {
	h.entries = h.entries[:h.index+1]
	h.entries = append(h.entries, historyEntry{
		committed: clonePolygons(committed),
		active:    active.clone(),
	})
	h.index = len(h.entries) - 1
}

// undo steps the pointer back and returns a copy of the entry to restore.
// Reports false, with no movement, when already at the baseline.
func (h *history) undo() (historyEntry, bool) {
	if h.index == 0 {
		return historyEntry{}, false
	}
	h.index--
	return h.current(), true
}

// redo steps the pointer forward and returns a copy of the entry to restore.
// Reports false, with no movement, when already at the newest entry.
func (h *history) redo() (historyEntry, bool) {
	if h.index >= len(h.entries)-1 {
		return historyEntry{}, false
	}
	h.index++
	return h.current(), true
}

func (h *history) current() historyEntry {
	e := h.entries[h.index]
	return historyEntry{
		committed: clonePolygons(e.committed),
		active:    e.active.clone(),
	}
}

func (h *history) canUndo() bool { return h.index > 0 }

func (h *history) canRedo() bool { return h.index < len(h.entries)-1 }

// reset drops everything back to the single baseline entry.
func (h *history) reset() {
	h.entries = []historyEntry{{}}
	h.index = 0
}
