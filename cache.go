package pagetree

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/elastic/go-freelru"

	"pagetree/internal/base"
)

// locateCache remembers which page a key was last found in. Entries are only
// trusted until the next mutation; the tree purges the cache on every insert
// and delete.
type locateCache struct {
	lru *freelru.LRU[int64, base.PageID]
}

func newLocateCache(size uint32) (*locateCache, error) {
	lru, err := freelru.New[int64, base.PageID](size, hashKey)
	if err != nil {
		return nil, err
	}
	return &locateCache{lru: lru}, nil
}

func hashKey(key int64) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))
	return uint32(xxhash.Sum64(buf[:]))
}

func (c *locateCache) get(key int64) (base.PageID, bool) {
	return c.lru.Get(key)
}

func (c *locateCache) add(key int64, id base.PageID) {
	c.lru.Add(key, id)
}

func (c *locateCache) purge() {
	c.lru.Purge()
}

func (c *locateCache) len() int {
	return c.lru.Len()
}
