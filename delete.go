package pagetree

import (
	"github.com/cockroachdb/errors"

	"pagetree/internal/base"
)

// Delete removes value from the tree. Deleting from an empty tree returns
// ErrTreeEmpty and deleting an absent value returns ErrKeyNotFound; neither
// changes the tree.
func (t *Tree) Delete(value int64) error {
	if !t.root.Valid() {
		t.stats.Misses++
		t.log.Warn("delete rejected", "key", value, "reason", "tree empty")
		return errors.Wrapf(ErrTreeEmpty, "delete %d", value)
	}

	id, found := t.descend(value)
	if !found {
		t.stats.Misses++
		t.log.Warn("delete rejected", "key", value, "reason", "not found")
		return errors.Wrapf(ErrKeyNotFound, "delete %d", value)
	}

	p := t.page(id)
	if p.IsLeaf() {
		t.deleteFromLeaf(p, value)
	} else {
		t.deleteFromInternalPage(p, value)
	}

	t.count--
	t.stats.Deletes++
	t.mutated()

	if !t.root.Valid() {
		t.log.Info("tree emptied")
	}
	return nil
}

func (t *Tree) deleteFromLeaf(p *base.Page, value int64) {
	p.Delete(value)

	if p.IsRoot() {
		if p.Len() == 0 {
			t.pages.Free(p.ID)
			t.root = base.InvalidPageID
		}
		return
	}

	if p.Underflows() {
		t.fixUnderflow(p.ID)
	}
}

// deleteFromInternalPage removes the key of an internal page by replacing it
// with a neighbouring key from a leaf below, or, when its two children are
// minimal leaves, by merging them.
func (t *Tree) deleteFromInternalPage(p *base.Page, value int64) {
	e, _ := p.Find(value)
	successor := t.leftmostLeaf(e.Right)
	predecessor := t.rightmostLeaf(e.Left)

	switch {
	case !successor.HasMinNodes():
		v := successor.MinValue()
		successor.Delete(v)
		t.substitute(p, e, v)

	case !predecessor.HasMinNodes():
		v := predecessor.MaxValue()
		predecessor.Delete(v)
		t.substitute(p, e, v)

	case successor.ID == e.Right:
		t.mergeChildren(p, e)

	default:
		// Pull the successor up anyway and repair the leaf it came from
		v := successor.MinValue()
		t.substitute(p, e, v)
		successor.Delete(v)
		t.fixUnderflow(successor.ID)
	}
}

// mergeChildren drops e from p and joins its two minimal leaf children into
// the left one.
func (t *Tree) mergeChildren(p *base.Page, e *base.Entry) {
	left, right := t.page(e.Left), t.page(e.Right)
	for _, moved := range right.Entries() {
		left.Insert(moved)
	}
	t.reparent(left)
	t.pages.Free(right.ID)

	p.Delete(e.Value)
	relinkAround(p, e.Value, left.ID)
	t.stats.Merges++

	if p.IsRoot() {
		if p.Len() == 0 {
			t.collapseRoot(p, left)
		}
		return
	}

	if p.Underflows() {
		t.fixUnderflow(p.ID)
	}
}

// fixUnderflow restores the lower bound of id and, if that takes a key out
// of the parent, of each ancestor in turn.
//
// A page borrows from its left sibling when it is the rightmost child and
// from its right sibling otherwise. If the sibling has no key to spare the
// two are merged around their separator, pushing the separator down; the
// parent then fixes its own deficiency on the next pass.
func (t *Tree) fixUnderflow(id base.PageID) {
	for {
		p := t.page(id)
		if p.IsRoot() || !p.Underflows() {
			return
		}

		parent := t.page(p.Parent)
		entries := parent.Entries()
		idx := parent.ChildIndex(p.ID)
		if idx < 0 {
			panic(errors.AssertionFailedf("%s missing from its parent %s", p.ID, parent.ID))
		}

		if idx == len(entries) {
			sep := entries[idx-1]
			sibling := t.page(sep.Left)
			if !sibling.HasMinNodes() {
				t.borrowFromLeft(parent, sep, sibling, p)
				return
			}
			if t.merge(parent, sep, sibling, p, p) {
				return
			}
		} else {
			sep := entries[idx]
			sibling := t.page(sep.Right)
			if !sibling.HasMinNodes() {
				t.borrowFromRight(parent, sep, p, sibling)
				return
			}
			if t.merge(parent, sep, p, sibling, p) {
				return
			}
		}

		id = parent.ID
	}
}

// borrowFromLeft rotates the largest key of left up into the parent and the
// separator sep down into p, the page right of it.
func (t *Tree) borrowFromLeft(parent *base.Page, sep *base.Entry, left, p *base.Page) {
	donor := left.MaxEntry()
	left.Delete(donor.Value)

	// donor.Right was left's last child and becomes p's first
	p.Insert(&base.Entry{Value: sep.Value, Left: donor.Right, Right: p.LeftPage()})
	if donor.Right.Valid() {
		t.page(donor.Right).Parent = p.ID
	}

	parent.Delete(sep.Value)
	parent.Insert(&base.Entry{Value: donor.Value, Left: left.ID, Right: p.ID})
	t.stats.Rotations++
}

// borrowFromRight rotates the smallest key of right up into the parent and
// the separator sep down into p, the page left of it.
func (t *Tree) borrowFromRight(parent *base.Page, sep *base.Entry, p, right *base.Page) {
	donor := right.MinEntry()
	right.Delete(donor.Value)

	// donor.Left was right's first child and becomes p's last
	p.Insert(&base.Entry{Value: sep.Value, Left: p.RightPage(), Right: donor.Left})
	if donor.Left.Valid() {
		t.page(donor.Left).Parent = p.ID
	}

	parent.Delete(sep.Value)
	parent.Insert(&base.Entry{Value: donor.Value, Left: p.ID, Right: right.ID})
	t.stats.Rotations++
}

// merge joins left, sep and right into dst, which is one of left and right,
// frees the other page and removes sep from parent. It returns true if that
// emptied the root and dst took its place.
func (t *Tree) merge(parent *base.Page, sep *base.Entry, left, right, dst *base.Page) bool {
	src := right
	if dst == right {
		src = left
	}

	// The separator comes down between left's last child and right's first
	pulled := &base.Entry{Value: sep.Value, Left: left.RightPage(), Right: right.LeftPage()}
	for _, moved := range src.Entries() {
		dst.Insert(moved)
	}
	dst.Insert(pulled)
	t.reparent(dst)
	t.pages.Free(src.ID)

	parent.Delete(sep.Value)
	relinkAround(parent, sep.Value, dst.ID)
	t.stats.Merges++

	if parent.IsRoot() && parent.Len() == 0 {
		t.collapseRoot(parent, dst)
		return true
	}
	return false
}

// collapseRoot replaces the emptied root with its only remaining child.
func (t *Tree) collapseRoot(root, child *base.Page) {
	t.pages.Free(root.ID)
	t.promote(child)
	t.stats.RootCollapses++
	t.log.Info("root collapsed", "height", child.Level)
}
