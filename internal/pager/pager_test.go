package pager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagetree/internal/base"
)

func TestPagerAllocate(t *testing.T) {
	t.Parallel()

	pg := NewPager()
	p := pg.Allocate(2, base.LeafLevel)
	require.NotNil(t, p)

	assert.True(t, p.ID.Valid())
	assert.Equal(t, 2, p.MinNodes)
	assert.Equal(t, 4, p.MaxNodes)
	assert.Equal(t, base.LeafLevel, p.Level)
	assert.True(t, p.IsRoot(), "fresh page has no parent")
	assert.Equal(t, 1, pg.Live())

	assert.Same(t, p, pg.Get(p.ID))
}

func TestPagerGetInvalid(t *testing.T) {
	t.Parallel()

	pg := NewPager()
	assert.Nil(t, pg.Get(base.InvalidPageID))
	assert.Nil(t, pg.Get(base.PageID{Index: 42, Gen: 1}), "slot never allocated")
	assert.False(t, pg.Free(base.InvalidPageID))
}

func TestPagerStaleHandle(t *testing.T) {
	t.Parallel()

	pg := NewPager()
	old := pg.Allocate(2, base.LeafLevel).ID

	require.True(t, pg.Free(old))
	assert.Nil(t, pg.Get(old), "freed page must not resolve")
	assert.False(t, pg.Free(old), "double free is rejected")
	assert.Equal(t, 0, pg.Live())

	// The slot is reused with a new generation
	reused := pg.Allocate(2, base.LeafLevel).ID
	assert.Equal(t, old.Index, reused.Index)
	assert.NotEqual(t, old.Gen, reused.Gen)
	assert.Nil(t, pg.Get(old), "old handle stays stale after reuse")
	assert.NotNil(t, pg.Get(reused))
	assert.Equal(t, 1, pg.Capacity())
}

func TestPagerReset(t *testing.T) {
	t.Parallel()

	pg := NewPager()
	var ids []base.PageID
	for i := 0; i < 8; i++ {
		ids = append(ids, pg.Allocate(3, base.LeafLevel).ID)
	}
	require.True(t, pg.Free(ids[3]))

	pg.Reset()
	assert.Equal(t, 0, pg.Live())
	for _, id := range ids {
		assert.Nil(t, pg.Get(id))
	}

	// Reset slots are reused rather than growing the arena
	for i := 0; i < 8; i++ {
		pg.Allocate(3, base.LeafLevel)
	}
	assert.Equal(t, 8, pg.Capacity())
	assert.Equal(t, 8, pg.Live())
}
