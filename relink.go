package pagetree

import (
	"pagetree/internal/base"
)

// reparent points the parent link of every child of p at p. Called after any
// move of entries into p, since the moved entries bring their children along.
func (t *Tree) reparent(p *base.Page) {
	for _, child := range p.Children() {
		t.page(child).Parent = p.ID
	}
}

// promote makes p the root of the tree.
func (t *Tree) promote(p *base.Page) {
	p.MakeRoot()
	t.root = p.ID
}

// substitute swaps the key of e in p for value, keeping e's child links.
// value must fit between e's neighbours in p.
func (t *Tree) substitute(p *base.Page, e *base.Entry, value int64) {
	p.Delete(e.Value)
	p.Insert(&base.Entry{Value: value, Left: e.Left, Right: e.Right})
}

// relinkAround points the neighbours of the removed separator value at the
// page that now fills the gap it left in p.
func relinkAround(p *base.Page, value int64, merged base.PageID) {
	if prev := p.Predecessor(value); prev != nil {
		prev.Right = merged
	}
	if next := p.Successor(value); next != nil {
		next.Left = merged
	}
}
