package base

import (
	"fmt"

	"pagetree/internal/keyset"
)

// LeafLevel is the level of every leaf page. Levels grow toward the root.
const LeafLevel = 1

// PageID is a generation-checked handle to a page held by the pager. The zero
// value is InvalidPageID and never refers to a page.
type PageID struct {
	Index uint32
	Gen   uint32
}

// InvalidPageID marks an absent child or parent link.
var InvalidPageID = PageID{}

// Valid returns true if the handle was issued by a pager
func (id PageID) Valid() bool {
	return id.Gen != 0
}

func (id PageID) String() string {
	if !id.Valid() {
		return "page(nil)"
	}
	return fmt.Sprintf("page(%d#%d)", id.Index, id.Gen)
}

// Page is one node of the page tree: an ordered container of entries, a weak
// link to its parent, its level and the capacity band it must stay within.
//
// A page is a leaf if none of its entries carry child links and internal if
// all of them carry both. The children of an internal page with entries
// e0..ek-1 are e0.Left, e0.Right (== e1.Left), ..., ek-1.Right.
type Page struct {
	ID       PageID
	Keys     *keyset.Set[*Entry]
	Parent   PageID
	Level    int
	MinNodes int
	MaxNodes int
}

// NewPage creates an empty, parentless page with the capacity band
// [rank, 2*rank].
func NewPage(id PageID, rank, level int) *Page {
	return &Page{
		ID:       id,
		Keys:     keyset.New(entryLess),
		Level:    level,
		MinNodes: rank,
		MaxNodes: 2 * rank,
	}
}

// MakeRoot detaches the page from any parent and relaxes its lower bound to a
// single key.
func (p *Page) MakeRoot() {
	p.Parent = InvalidPageID
	p.MinNodes = 1
}

// IsRoot returns true if the page has no parent
func (p *Page) IsRoot() bool {
	return !p.Parent.Valid()
}

// IsLeaf returns true if the page's entries carry no child links. The engine
// keeps pages all-leaf or all-internal, so the first entry decides.
func (p *Page) IsLeaf() bool {
	e, ok := p.Keys.Min()
	return !ok || e.IsLeaf()
}

// Len returns the number of entries in the page
func (p *Page) Len() int {
	return p.Keys.Len()
}

// HasMinNodes returns true if removing an entry would underflow the page
func (p *Page) HasMinNodes() bool {
	return p.Len() <= p.MinNodes
}

// HasMaxNodes returns true if adding an entry would overflow the page
func (p *Page) HasMaxNodes() bool {
	return p.Len() >= p.MaxNodes
}

// Overflows returns true if the page holds more than MaxNodes entries
func (p *Page) Overflows() bool {
	return p.Len() > p.MaxNodes
}

// Underflows returns true if the page holds fewer than MinNodes entries
func (p *Page) Underflows() bool {
	return p.Len() < p.MinNodes
}

// Has returns true if value is one of the page's keys
func (p *Page) Has(value int64) bool {
	return p.Keys.Has(probe(value))
}

// Find returns the entry holding value.
func (p *Page) Find(value int64) (*Entry, bool) {
	return p.Keys.Get(probe(value))
}

// Insert adds e to the page. Returns false if an entry with the same value
// was replaced.
func (p *Page) Insert(e *Entry) bool {
	return p.Keys.Insert(e)
}

// Delete removes the entry holding value and returns it.
func (p *Page) Delete(value int64) (*Entry, bool) {
	return p.Keys.Delete(probe(value))
}

// MinEntry returns the smallest entry, or nil for an empty page.
func (p *Page) MinEntry() *Entry {
	e, _ := p.Keys.Min()
	return e
}

// MaxEntry returns the largest entry, or nil for an empty page.
func (p *Page) MaxEntry() *Entry {
	e, _ := p.Keys.Max()
	return e
}

// MinValue returns the smallest key. The page must not be empty.
func (p *Page) MinValue() int64 {
	return p.MinEntry().Value
}

// MaxValue returns the largest key. The page must not be empty.
func (p *Page) MaxValue() int64 {
	return p.MaxEntry().Value
}

// Predecessor returns the entry immediately below value, or nil.
func (p *Page) Predecessor(value int64) *Entry {
	e, _ := p.Keys.Predecessor(probe(value))
	return e
}

// Successor returns the entry immediately above value, or nil.
func (p *Page) Successor(value int64) *Entry {
	e, _ := p.Keys.Successor(probe(value))
	return e
}

// LeftPage returns the leftmost child: the left link of the smallest entry.
func (p *Page) LeftPage() PageID {
	if e := p.MinEntry(); e != nil {
		return e.Left
	}
	return InvalidPageID
}

// RightPage returns the rightmost child: the right link of the largest entry.
func (p *Page) RightPage() PageID {
	if e := p.MaxEntry(); e != nil {
		return e.Right
	}
	return InvalidPageID
}

// ContentPage returns the child straddling value, which must lie strictly
// between the page's min and max and not be one of its keys.
func (p *Page) ContentPage(value int64) PageID {
	if e := p.Predecessor(value); e != nil {
		return e.Right
	}
	if e := p.Successor(value); e != nil {
		return e.Left
	}
	return InvalidPageID
}

// Entries returns the page's entries in ascending order
func (p *Page) Entries() []*Entry {
	return p.Keys.Items()
}

// Values returns the page's keys in ascending order
func (p *Page) Values() []int64 {
	values := make([]int64, 0, p.Len())
	p.Keys.Ascend(func(e *Entry) bool {
		values = append(values, e.Value)
		return true
	})
	return values
}

// Children returns the distinct child pages in key order, nil for a leaf.
func (p *Page) Children() []PageID {
	if p.IsLeaf() {
		return nil
	}
	children := make([]PageID, 0, p.Len()+1)
	p.Keys.Ascend(func(e *Entry) bool {
		if len(children) == 0 {
			children = append(children, e.Left)
		}
		children = append(children, e.Right)
		return true
	})
	return children
}

// ChildIndex returns the position of child among Children, or -1.
func (p *Page) ChildIndex(child PageID) int {
	for i, id := range p.Children() {
		if id == child {
			return i
		}
	}
	return -1
}

// Median returns the entry at position Len()/2 and that position.
func (p *Page) Median() (*Entry, int) {
	mid := p.Len() / 2
	e, _ := p.Keys.At(mid)
	return e, mid
}

func (p *Page) String() string {
	return fmt.Sprint(p.Values())
}
