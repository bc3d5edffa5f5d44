package base

// Entry is one key of a page plus the two child pages adjacent to it.
//
// Left holds every key below Value (and above the previous entry of the same
// page, if any); Right holds every key above Value and below the next entry.
// Neighbouring entries a < b of one page share a child: a.Right == b.Left.
type Entry struct {
	Value int64
	Left  PageID
	Right PageID
}

// NewEntry creates an entry with no child links.
func NewEntry(value int64) *Entry {
	return &Entry{Value: value}
}

// IsLeaf returns true if the entry has no child links at all
func (e *Entry) IsLeaf() bool {
	return !e.Left.Valid() && !e.Right.Valid()
}

// IsInternal returns true if both child links are set
func (e *Entry) IsInternal() bool {
	return e.Left.Valid() && e.Right.Valid()
}

func entryLess(a, b *Entry) bool {
	return a.Value < b.Value
}

// probe builds a lookup key for the entry container.
func probe(value int64) *Entry {
	return &Entry{Value: value}
}
