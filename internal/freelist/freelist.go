package freelist

// Freelist tracks released pager slots so they can be handed out again.
// Slots are reused most-recently-freed first.
type Freelist struct {
	freed []uint32            // stack of free slots
	index map[uint32]struct{} // membership, guards against double frees
}

// New creates a new Freelist with empty state
func New() *Freelist {
	return &Freelist{
		index: make(map[uint32]struct{}),
	}
}

// Allocate pops a free slot. Returns false if none is available.
func (f *Freelist) Allocate() (uint32, bool) {
	if len(f.freed) == 0 {
		return 0, false
	}

	slot := f.freed[len(f.freed)-1]
	f.freed = f.freed[:len(f.freed)-1]
	delete(f.index, slot)
	return slot, true
}

// Free makes slot available for reuse. Freeing a slot twice is a no-op.
func (f *Freelist) Free(slot uint32) {
	if _, exists := f.index[slot]; exists {
		return
	}
	f.index[slot] = struct{}{}
	f.freed = append(f.freed, slot)
}

// Contains reports whether slot is currently free
func (f *Freelist) Contains(slot uint32) bool {
	_, exists := f.index[slot]
	return exists
}

// Len returns the number of free slots
func (f *Freelist) Len() int {
	return len(f.freed)
}

// Reset drops every free slot
func (f *Freelist) Reset() {
	f.freed = f.freed[:0]
	clear(f.index)
}
