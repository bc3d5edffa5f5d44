package pagetree

import (
	"pagetree/internal/base"
)

// PageRef is a read-only view of one page. It is only meaningful until the
// next Insert, Delete or Clear on its tree; after that it may report the
// page as gone.
type PageRef struct {
	tree *Tree
	id   base.PageID
}

func (r PageRef) resolve() *base.Page {
	if r.tree == nil {
		return nil
	}
	return r.tree.pages.Get(r.id)
}

// Valid reports whether the page still exists.
func (r PageRef) Valid() bool {
	return r.resolve() != nil
}

// Values returns the page's keys in ascending order.
func (r PageRef) Values() []int64 {
	if p := r.resolve(); p != nil {
		return p.Values()
	}
	return nil
}

// Len returns the number of keys in the page.
func (r PageRef) Len() int {
	if p := r.resolve(); p != nil {
		return p.Len()
	}
	return 0
}

// Level returns the page's level; leaves are level 1.
func (r PageRef) Level() int {
	if p := r.resolve(); p != nil {
		return p.Level
	}
	return 0
}

// IsLeaf reports whether the page has no children.
func (r PageRef) IsLeaf() bool {
	if p := r.resolve(); p != nil {
		return p.IsLeaf()
	}
	return false
}

// IsRoot reports whether the page is the tree's root.
func (r PageRef) IsRoot() bool {
	if p := r.resolve(); p != nil {
		return p.IsRoot()
	}
	return false
}

// Parent returns the parent page. False for the root.
func (r PageRef) Parent() (PageRef, bool) {
	p := r.resolve()
	if p == nil || p.IsRoot() {
		return PageRef{}, false
	}
	return PageRef{tree: r.tree, id: p.Parent}, true
}

// Children returns the child pages in key order, nil for a leaf.
func (r PageRef) Children() []PageRef {
	p := r.resolve()
	if p == nil {
		return nil
	}
	var children []PageRef
	for _, id := range p.Children() {
		children = append(children, PageRef{tree: r.tree, id: id})
	}
	return children
}

func (r PageRef) String() string {
	if p := r.resolve(); p != nil {
		return p.String()
	}
	return "[]"
}
