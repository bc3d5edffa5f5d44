package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryLinks(t *testing.T) {
	t.Parallel()

	t.Run("fresh entry is a leaf entry", func(t *testing.T) {
		e := NewEntry(7)
		assert.Equal(t, int64(7), e.Value)
		assert.True(t, e.IsLeaf())
		assert.False(t, e.IsInternal())
	})

	t.Run("one link is neither leaf nor internal", func(t *testing.T) {
		e := &Entry{Value: 7, Left: PageID{Index: 1, Gen: 1}}
		assert.False(t, e.IsLeaf())
		assert.False(t, e.IsInternal())
	})

	t.Run("both links make an internal entry", func(t *testing.T) {
		e := &Entry{Value: 7, Left: PageID{Index: 1, Gen: 1}, Right: PageID{Index: 2, Gen: 1}}
		assert.False(t, e.IsLeaf())
		assert.True(t, e.IsInternal())
	})
}

func TestPageIDValid(t *testing.T) {
	t.Parallel()

	assert.False(t, InvalidPageID.Valid())
	assert.Equal(t, "page(nil)", InvalidPageID.String())

	// Index zero is a real slot, only the generation marks validity
	id := PageID{Index: 0, Gen: 1}
	assert.True(t, id.Valid())
	assert.Equal(t, "page(0#1)", id.String())
}
