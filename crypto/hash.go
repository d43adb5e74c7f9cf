package crypto

import (
	"encoding/hex"
	"fmt"
)

// DigestSize is the size of every digest in bytes
const DigestSize = 32

// Domain separation prefixes for leaf and internal node hashing
const (
	leafPrefix     = 0x00
	internalPrefix = 0x01
)

// Digest is the fixed-size output of a Hasher
type Digest [DigestSize]byte

// Hasher maps a byte sequence to a fixed-size digest
type Hasher interface {
	Sum(data []byte) Digest
}

// HashLeaf hashes raw leaf data with the leaf domain prefix
func HashLeaf(h Hasher, data []byte) Digest {
	buf := make([]byte, 0, 1+len(data))
	buf = append(buf, leafPrefix)
	buf = append(buf, data...)

	return h.Sum(buf)
}

// HashNodes hashes two child digests into one with the internal domain prefix
func HashNodes(h Hasher, left Digest, right Digest) Digest {
	buf := make([]byte, 0, 1+2*DigestSize)
	buf = append(buf, internalPrefix)
	buf = append(buf, left[:]...)
	buf = append(buf, right[:]...)

	return h.Sum(buf)
}

// Hex returns the lowercase hex encoding of the digest
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// ParseDigest decodes a hex string into a digest
func ParseDigest(s string) (Digest, error) {
	var d Digest

	raw, err := hex.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("invalid digest %q: %w", s, err)
	}
	if len(raw) != DigestSize {
		return d, fmt.Errorf("invalid digest length %d, want %d", len(raw), DigestSize)
	}

	copy(d[:], raw)
	return d, nil
}

// ConstantTimeEqual compares two digests byte by byte without early return.
// All 32 bytes are visited regardless of where a mismatch occurs.
func (d Digest) ConstantTimeEqual(other Digest) bool {
	var diff byte
	for i := 0; i < DigestSize; i++ {
		diff |= d[i] ^ other[i]
	}

	return diff == 0
}
