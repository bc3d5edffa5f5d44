// Package pager owns every page of a tree. Pages are addressed by
// generation-checked handles so a link to a freed page can be detected
// instead of silently reaching whatever reused its slot.
package pager

import (
	"pagetree/internal/base"
	"pagetree/internal/freelist"
)

type slot struct {
	page *base.Page // nil while the slot is free
	gen  uint32     // bumped on every allocation of the slot
}

// Pager allocates, resolves and frees pages
type Pager struct {
	slots    []slot
	freelist *freelist.Freelist
	live     int
}

// NewPager creates an empty pager
func NewPager() *Pager {
	return &Pager{
		freelist: freelist.New(),
	}
}

// Allocate creates an empty page with the capacity band of rank at level.
// Freed slots are reused before the arena grows.
func (p *Pager) Allocate(rank, level int) *base.Page {
	idx, ok := p.freelist.Allocate()
	if !ok {
		idx = uint32(len(p.slots))
		p.slots = append(p.slots, slot{})
	}

	s := &p.slots[idx]
	s.gen++
	if s.gen == 0 {
		// Generation zero is reserved for InvalidPageID
		s.gen = 1
	}

	s.page = base.NewPage(base.PageID{Index: idx, Gen: s.gen}, rank, level)
	p.live++
	return s.page
}

// Get resolves id. Returns nil for InvalidPageID, an unknown slot, or a
// handle whose page has been freed.
func (p *Pager) Get(id base.PageID) *base.Page {
	if !id.Valid() || int(id.Index) >= len(p.slots) {
		return nil
	}
	s := p.slots[id.Index]
	if s.gen != id.Gen {
		return nil
	}
	return s.page
}

// Free releases the page behind id. Returns false if id is stale or invalid.
func (p *Pager) Free(id base.PageID) bool {
	if p.Get(id) == nil {
		return false
	}
	p.slots[id.Index].page = nil
	p.freelist.Free(id.Index)
	p.live--
	return true
}

// Live returns the number of allocated pages
func (p *Pager) Live() int {
	return p.live
}

// Capacity returns the number of slots, free or not
func (p *Pager) Capacity() int {
	return len(p.slots)
}

// Reset frees every page. Handles issued before Reset stay stale.
func (p *Pager) Reset() {
	for i := range p.slots {
		if p.slots[i].page != nil {
			p.slots[i].page = nil
			p.freelist.Free(uint32(i))
		}
	}
	p.live = 0
}
