package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func id(i uint32) PageID {
	return PageID{Index: i, Gen: 1}
}

func leafPage(values ...int64) *Page {
	p := NewPage(id(100), 2, LeafLevel)
	for _, v := range values {
		p.Insert(NewEntry(v))
	}
	return p
}

// branchPage builds an internal page over values whose children are
// id(1)..id(len(values)+1), linked the way the engine links them.
func branchPage(values ...int64) *Page {
	p := NewPage(id(200), 2, LeafLevel+1)
	for i, v := range values {
		p.Insert(&Entry{Value: v, Left: id(uint32(i + 1)), Right: id(uint32(i + 2))})
	}
	return p
}

func TestPageCapacity(t *testing.T) {
	t.Parallel()

	p := leafPage(1, 2)
	assert.Equal(t, 2, p.MinNodes)
	assert.Equal(t, 4, p.MaxNodes)
	assert.True(t, p.HasMinNodes())
	assert.False(t, p.Underflows())

	p.Insert(NewEntry(3))
	p.Insert(NewEntry(4))
	assert.True(t, p.HasMaxNodes())
	assert.False(t, p.Overflows())

	p.Insert(NewEntry(5))
	assert.True(t, p.Overflows())

	p = leafPage(1)
	assert.True(t, p.Underflows())
	p.MakeRoot()
	assert.True(t, p.IsRoot())
	assert.False(t, p.Underflows(), "a root may hold a single key")
}

func TestPageLeafDetection(t *testing.T) {
	t.Parallel()

	assert.True(t, NewPage(id(1), 2, LeafLevel).IsLeaf(), "empty page is a leaf")
	assert.True(t, leafPage(1, 2, 3).IsLeaf())
	assert.False(t, branchPage(10, 20).IsLeaf())
	assert.Nil(t, leafPage(1, 2).Children())
}

func TestPageMinMax(t *testing.T) {
	t.Parallel()

	p := leafPage(30, 10, 20)
	assert.Equal(t, int64(10), p.MinValue())
	assert.Equal(t, int64(30), p.MaxValue())
	assert.Equal(t, []int64{10, 20, 30}, p.Values())

	empty := NewPage(id(1), 2, LeafLevel)
	assert.Nil(t, empty.MinEntry())
	assert.Nil(t, empty.MaxEntry())
	assert.False(t, empty.LeftPage().Valid())
	assert.False(t, empty.RightPage().Valid())
}

func TestPageChildren(t *testing.T) {
	t.Parallel()

	p := branchPage(10, 20, 30)
	assert.Equal(t, []PageID{id(1), id(2), id(3), id(4)}, p.Children())
	assert.Equal(t, id(1), p.LeftPage())
	assert.Equal(t, id(4), p.RightPage())

	for i, child := range p.Children() {
		assert.Equal(t, i, p.ChildIndex(child))
	}
	assert.Equal(t, -1, p.ChildIndex(id(99)))
}

func TestPageContentPage(t *testing.T) {
	t.Parallel()

	p := branchPage(10, 20, 30)

	tests := []struct {
		value int64
		want  PageID
	}{
		{value: 11, want: id(2)},
		{value: 19, want: id(2)},
		{value: 21, want: id(3)},
		{value: 29, want: id(3)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.ContentPage(tt.value), "value %d", tt.value)
	}
}

func TestPageNeighbours(t *testing.T) {
	t.Parallel()

	p := leafPage(10, 20, 30)

	assert.Nil(t, p.Predecessor(10))
	assert.Equal(t, int64(10), p.Predecessor(15).Value)
	assert.Equal(t, int64(20), p.Predecessor(30).Value)

	assert.Equal(t, int64(20), p.Successor(10).Value)
	assert.Equal(t, int64(30), p.Successor(25).Value)
	assert.Nil(t, p.Successor(30))
}

func TestPageFindDelete(t *testing.T) {
	t.Parallel()

	p := leafPage(1, 2, 3)

	e, ok := p.Find(2)
	require.True(t, ok)
	assert.Equal(t, int64(2), e.Value)
	assert.True(t, p.Has(2))

	_, ok = p.Delete(2)
	require.True(t, ok)
	assert.False(t, p.Has(2))

	_, ok = p.Find(2)
	assert.False(t, ok)

	assert.False(t, p.Insert(NewEntry(3)), "insert of an existing value replaces it")
	assert.Equal(t, 2, p.Len())
}

func TestPageMedian(t *testing.T) {
	t.Parallel()

	tests := []struct {
		values  []int64
		median  int64
		atIndex int
	}{
		{values: []int64{1, 2, 3, 4, 5}, median: 3, atIndex: 2},
		{values: []int64{1, 2, 3, 4}, median: 3, atIndex: 2},
		{values: []int64{5}, median: 5, atIndex: 0},
	}
	for _, tt := range tests {
		e, idx := leafPage(tt.values...).Median()
		require.NotNil(t, e)
		assert.Equal(t, tt.median, e.Value)
		assert.Equal(t, tt.atIndex, idx)
	}
}
