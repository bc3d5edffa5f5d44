package pagetree

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the keys of every page together with how they are laid
// out in pages and levels. Two trees with the same fingerprint almost
// certainly have the same shape and contents.
func (t *Tree) Fingerprint() uint64 {
	d := xxhash.New()
	var buf []byte

	for _, level := range t.Levels() {
		buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(len(level)))
		_, _ = d.Write(buf)

		for _, values := range level {
			buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(len(values)))
			for _, v := range values {
				buf = binary.LittleEndian.AppendUint64(buf, uint64(v))
			}
			_, _ = d.Write(buf)
		}
	}
	return d.Sum64()
}
