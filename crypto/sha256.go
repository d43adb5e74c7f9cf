package crypto

import "crypto/sha256"

// SHA256Hasher hashes bytes by SHA256
type SHA256Hasher struct{}

// Sum hashes value into a 32-byte digest
func (SHA256Hasher) Sum(value []byte) Digest {
	return sha256.Sum256(value)
}
