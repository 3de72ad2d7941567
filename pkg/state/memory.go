package state

// Memory is the per-window persistent state: the keyed value store plus
// the single drag slot shared by everything that can be dragged.
type Memory struct {
	// Data holds persisted values keyed by ID.
	Data *Store

	dragOwner ID
	dragging  bool
}

// NewMemory creates a Memory with an empty store and no drag in progress.
func NewMemory() *Memory {
	return &Memory{Data: NewStore()}
}

// StartDrag claims the drag slot for the given ID. The previous owner,
// if any, loses the slot; there is at most one drag at a time.
func (m *Memory) StartDrag(id ID) {
	m.dragOwner = id
	m.dragging = true
}

// IsDragOwner reports whether the given ID currently owns the drag slot.
func (m *Memory) IsDragOwner(id ID) bool {
	return m.dragging && m.dragOwner == id
}

// DragOwner returns the current drag owner, if a drag is in progress.
func (m *Memory) DragOwner() (ID, bool) {
	return m.dragOwner, m.dragging
}

// StopDrag releases the drag slot.
func (m *Memory) StopDrag() {
	m.dragging = false
	m.dragOwner = 0
}
