package pagetree

import (
	"github.com/cockroachdb/errors"

	"pagetree/internal/base"
)

// Verify walks the whole tree and returns an ErrInvariantViolation error
// describing the first broken invariant, or nil. It checks key order across
// pages, the capacity band of every page, leaf/internal consistency, the
// shared child link of neighbouring keys, parent links, that all leaves sit
// on level 1 with levels growing by one toward the root, the key count, and
// that no page outside the tree is still allocated.
func (t *Tree) Verify() error {
	if err := t.verify(); err != nil {
		t.log.Error("verify failed", "error", err)
		return err
	}
	return nil
}

func violation(format string, args ...any) error {
	return errors.Wrapf(ErrInvariantViolation, format, args...)
}

type verifier struct {
	t     *Tree
	keys  int
	pages int
	seen  map[base.PageID]struct{}
}

func (t *Tree) verify() error {
	if !t.root.Valid() {
		if t.count != 0 {
			return violation("empty tree reports %d keys", t.count)
		}
		if live := t.pages.Live(); live != 0 {
			return violation("empty tree holds %d pages", live)
		}
		return nil
	}

	root := t.pages.Get(t.root)
	if root == nil {
		return violation("root %s does not resolve", t.root)
	}
	if !root.IsRoot() {
		return violation("root %s has parent %s", root.ID, root.Parent)
	}

	v := &verifier{t: t, seen: make(map[base.PageID]struct{})}
	if err := v.walk(root, nil, nil); err != nil {
		return err
	}

	if v.keys != t.count {
		return violation("found %d keys, tree reports %d", v.keys, t.count)
	}
	if live := t.pages.Live(); v.pages != live {
		return violation("reached %d pages but %d are allocated", v.pages, live)
	}
	return nil
}

// walk checks p and its subtree. Every key must lie strictly between lo and
// hi when those are set.
func (v *verifier) walk(p *base.Page, lo, hi *int64) error {
	if _, dup := v.seen[p.ID]; dup {
		return violation("%s reached twice", p.ID)
	}
	v.seen[p.ID] = struct{}{}
	v.pages++

	if err := v.checkCapacity(p); err != nil {
		return err
	}

	entries := p.Entries()
	v.keys += len(entries)

	leaf := entries[0].IsLeaf()
	for i, e := range entries {
		if leaf && !e.IsLeaf() || !leaf && !e.IsInternal() {
			return violation("%s mixes leaf and internal entries at key %d", p.ID, e.Value)
		}
		if lo != nil && e.Value <= *lo || hi != nil && e.Value >= *hi {
			return violation("%s key %d outside its parent's range", p.ID, e.Value)
		}
		if i > 0 {
			prev := entries[i-1]
			if prev.Value >= e.Value {
				return violation("%s keys %d and %d out of order", p.ID, prev.Value, e.Value)
			}
			if prev.Right != e.Left {
				return violation("%s keys %d and %d disagree on their shared child", p.ID, prev.Value, e.Value)
			}
		}
	}

	if leaf {
		if p.Level != base.LeafLevel {
			return violation("leaf %s at level %d", p.ID, p.Level)
		}
		return nil
	}

	for i, id := range p.Children() {
		child := v.t.pages.Get(id)
		if child == nil {
			return violation("%s links to freed page %s", p.ID, id)
		}
		if child.Parent != p.ID {
			return violation("%s has parent %s, linked from %s", id, child.Parent, p.ID)
		}
		if child.Level != p.Level-1 {
			return violation("%s at level %d under %s at level %d", id, child.Level, p.ID, p.Level)
		}

		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &entries[i-1].Value
		}
		if i < len(entries) {
			childHi = &entries[i].Value
		}
		if err := v.walk(child, childLo, childHi); err != nil {
			return err
		}
	}
	return nil
}

func (v *verifier) checkCapacity(p *base.Page) error {
	rank := v.t.rank
	minKeys := rank
	if p.IsRoot() {
		minKeys = 1
	}

	if p.MinNodes != minKeys || p.MaxNodes != 2*rank {
		return violation("%s has band [%d,%d], want [%d,%d]", p.ID, p.MinNodes, p.MaxNodes, minKeys, 2*rank)
	}
	if n := p.Len(); n < minKeys || n > 2*rank {
		return violation("%s holds %d keys, outside [%d,%d]", p.ID, n, minKeys, 2*rank)
	}
	return nil
}
