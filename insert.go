package pagetree

import (
	"github.com/cockroachdb/errors"

	"pagetree/internal/base"
)

// Insert adds value to the tree. Inserting a value that is already present
// changes nothing and returns ErrDuplicateKey.
func (t *Tree) Insert(value int64) error {
	if !t.root.Valid() {
		root := t.pages.Allocate(t.rank, base.LeafLevel)
		root.MakeRoot()
		root.Insert(base.NewEntry(value))
		t.root = root.ID
		t.inserted()
		return nil
	}

	// The descent only stops short at a leaf: internal pages always have both links
	id, found := t.descend(value)
	if found {
		t.stats.Duplicates++
		t.log.Warn("insert rejected", "key", value, "reason", "duplicate")
		return errors.Wrapf(ErrDuplicateKey, "insert %d", value)
	}

	leaf := t.page(id)
	leaf.Insert(base.NewEntry(value))
	if leaf.Overflows() {
		t.fixOverflow(id)
	}

	t.inserted()
	return nil
}

func (t *Tree) inserted() {
	t.count++
	t.stats.Inserts++
	t.mutated()
}

// fixOverflow splits id and then each ancestor the promoted median overflows,
// growing a new root above the old one when the cascade reaches the top.
func (t *Tree) fixOverflow(id base.PageID) {
	for {
		p := t.page(id)
		if !p.Overflows() {
			return
		}

		if p.IsRoot() {
			// Give the split a parent to promote into
			root := t.pages.Allocate(t.rank, p.Level+1)
			root.MakeRoot()
			p.Parent = root.ID
			t.root = root.ID
			t.stats.RootSplits++
			t.log.Info("root split", "height", root.Level)
		}

		id = t.split(p)
	}
}

// split replaces an overflowing page with two new pages holding the keys
// before and after its median, promotes the median into the parent between
// them and returns the parent.
func (t *Tree) split(p *base.Page) base.PageID {
	parent := t.page(p.Parent)
	entries := p.Entries()
	median, mid := p.Median()

	// The median's own links are the last child of before and the first
	// child of after, so they move with the partitions.
	before := t.pageFrom(entries[:mid], p.Level, parent.ID)
	after := t.pageFrom(entries[mid+1:], p.Level, parent.ID)

	// Both neighbours of the median in the parent pointed at p
	if prev := parent.Predecessor(median.Value); prev != nil {
		prev.Right = before.ID
	}
	if next := parent.Successor(median.Value); next != nil {
		next.Left = after.ID
	}
	parent.Insert(&base.Entry{Value: median.Value, Left: before.ID, Right: after.ID})

	t.pages.Free(p.ID)
	t.stats.Splits++
	return parent.ID
}

// pageFrom builds a page at level under parent holding entries, and points
// the children of those entries at it.
func (t *Tree) pageFrom(entries []*base.Entry, level int, parent base.PageID) *base.Page {
	p := t.pages.Allocate(t.rank, level)
	p.Parent = parent
	for _, e := range entries {
		p.Insert(e)
	}
	t.reparent(p)
	return p
}
