package pagetree

import (
	"github.com/cockroachdb/errors"

	"pagetree/internal/base"
	"pagetree/internal/pager"
)

// Tree is an in-memory multiway balanced search tree over int64 keys. Keys
// are grouped into pages of rank..2*rank keys (the root may hold fewer), and
// every key carries links to the pages just below and just above it.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	rank  int
	root  base.PageID
	pages *pager.Pager
	count int

	log   Logger
	cache *locateCache // nil unless WithLocateCache was given
	stats Stats
}

// New creates an empty tree.
func New(options ...Option) (*Tree, error) {
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	if opts.rank < MinRank {
		return nil, errors.Wrapf(ErrInvalidRank, "rank %d", opts.rank)
	}

	t := &Tree{
		rank:  opts.rank,
		pages: pager.NewPager(),
		log:   opts.logger,
	}

	if opts.locateCacheSize > 0 {
		cache, err := newLocateCache(opts.locateCacheSize)
		if err != nil {
			return nil, errors.Wrap(err, "locate cache")
		}
		t.cache = cache
	}

	return t, nil
}

// page resolves id. A dangling handle means the link bookkeeping is broken,
// which no caller can recover from.
func (t *Tree) page(id base.PageID) *base.Page {
	p := t.pages.Get(id)
	if p == nil {
		panic(errors.AssertionFailedf("dangling page reference %s", id))
	}
	return p
}

// descend walks from the root toward value. It returns the page holding
// value, or the leaf where the walk ran out of child links and false.
// The tree must not be empty.
func (t *Tree) descend(value int64) (base.PageID, bool) {
	id := t.root
	for {
		p := t.page(id)

		var next base.PageID
		switch {
		case value < p.MinValue():
			next = p.LeftPage()
		case value > p.MaxValue():
			next = p.RightPage()
		case p.Has(value):
			return id, true
		default:
			next = p.ContentPage(value)
		}

		if !next.Valid() {
			return id, false
		}
		id = next
	}
}

// Locate returns the page holding value.
func (t *Tree) Locate(value int64) (PageRef, bool) {
	if !t.root.Valid() {
		return PageRef{}, false
	}

	if t.cache != nil {
		if id, ok := t.cache.get(value); ok {
			// Cache is purged on mutation, the check only guards stale handles
			if p := t.pages.Get(id); p != nil && p.Has(value) {
				t.stats.CacheHits++
				return PageRef{tree: t, id: id}, true
			}
		}
		t.stats.CacheMisses++
	}

	id, found := t.descend(value)
	if !found {
		return PageRef{}, false
	}

	if t.cache != nil {
		t.cache.add(value, id)
	}
	return PageRef{tree: t, id: id}, true
}

// Search reports whether value is stored in the tree.
func (t *Tree) Search(value int64) bool {
	_, found := t.Locate(value)
	return found
}

// mutated drops everything derived from the current shape of the tree.
func (t *Tree) mutated() {
	if t.cache != nil {
		t.cache.purge()
	}
}

// Root returns the root page. False for an empty tree.
func (t *Tree) Root() (PageRef, bool) {
	if !t.root.Valid() {
		return PageRef{}, false
	}
	return PageRef{tree: t, id: t.root}, true
}

// Len returns the number of keys in the tree.
func (t *Tree) Len() int {
	return t.count
}

// Empty reports whether the tree holds no keys.
func (t *Tree) Empty() bool {
	return !t.root.Valid()
}

// Rank returns the tree's capacity parameter.
func (t *Tree) Rank() int {
	return t.rank
}

// Height returns the number of levels, 0 for an empty tree.
func (t *Tree) Height() int {
	if !t.root.Valid() {
		return 0
	}
	return t.page(t.root).Level
}

// Min returns the smallest key.
func (t *Tree) Min() (int64, bool) {
	if !t.root.Valid() {
		return 0, false
	}
	return t.leftmostLeaf(t.root).MinValue(), true
}

// Max returns the largest key.
func (t *Tree) Max() (int64, bool) {
	if !t.root.Valid() {
		return 0, false
	}
	return t.rightmostLeaf(t.root).MaxValue(), true
}

// Ascend calls fn for every key in ascending order until fn returns false.
func (t *Tree) Ascend(fn func(value int64) bool) {
	if !t.root.Valid() {
		return
	}
	t.ascend(t.root, fn)
}

func (t *Tree) ascend(id base.PageID, fn func(value int64) bool) bool {
	p := t.page(id)
	if p.IsLeaf() {
		for _, v := range p.Values() {
			if !fn(v) {
				return false
			}
		}
		return true
	}

	for i, e := range p.Entries() {
		if i == 0 && !t.ascend(e.Left, fn) {
			return false
		}
		if !fn(e.Value) {
			return false
		}
		if !t.ascend(e.Right, fn) {
			return false
		}
	}
	return true
}

// Values returns every key in ascending order.
func (t *Tree) Values() []int64 {
	values := make([]int64, 0, t.count)
	t.Ascend(func(v int64) bool {
		values = append(values, v)
		return true
	})
	return values
}

// Clear removes every key and resets the counters.
func (t *Tree) Clear() {
	t.pages.Reset()
	t.root = base.InvalidPageID
	t.count = 0
	t.stats = Stats{}
	t.mutated()
}

// Stats returns the tree's shape and operation counters.
func (t *Tree) Stats() Stats {
	s := t.stats
	s.Keys = t.count
	s.Pages = t.pages.Live()
	s.Height = t.Height()
	return s
}

// leftmostLeaf follows left links from id down to a leaf.
func (t *Tree) leftmostLeaf(id base.PageID) *base.Page {
	p := t.page(id)
	for !p.IsLeaf() {
		p = t.page(p.LeftPage())
	}
	return p
}

// rightmostLeaf follows right links from id down to a leaf.
func (t *Tree) rightmostLeaf(id base.PageID) *base.Page {
	p := t.page(id)
	for !p.IsLeaf() {
		p = t.page(p.RightPage())
	}
	return p
}
