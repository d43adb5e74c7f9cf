package crypto

import (
	"encoding/binary"
	"hash/fnv"
)

// SimpleHasher is a fast deterministic hasher for tests.
// It is NOT cryptographically secure: it packs an FNV-1a sum into the
// first 8 bytes of the digest and leaves the rest zero. FNV-1a is
// position sensitive, so reordered inputs still map to distinct digests.
type SimpleHasher struct{}

// Sum hashes value into a 32-byte digest
func (SimpleHasher) Sum(value []byte) Digest {
	var d Digest

	h := fnv.New64a()
	_, _ = h.Write(value)
	binary.BigEndian.PutUint64(d[:8], h.Sum64())

	return d
}
