package pagetree

// Stats reports the shape of a tree and counts the structural work done on
// it since it was created or last cleared.
type Stats struct {
	Keys   int // Keys stored
	Pages  int // Live pages
	Height int // Levels from root to leaves, 0 when empty

	Inserts    uint64 // Successful inserts
	Deletes    uint64 // Successful deletes
	Duplicates uint64 // Inserts rejected as duplicates
	Misses     uint64 // Deletes rejected as absent or on an empty tree

	Splits        uint64 // Overflowing pages split around their median
	RootSplits    uint64 // Splits that grew the tree by one level
	Rotations     uint64 // Keys borrowed from a sibling through the parent
	Merges        uint64 // Sibling pairs joined into one page
	RootCollapses uint64 // Merges that shrank the tree by one level

	CacheHits   uint64 // Locates answered by the locate cache
	CacheMisses uint64 // Locates that had to descend with the cache enabled
}
