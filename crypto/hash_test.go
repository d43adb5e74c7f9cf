package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSHA256HasherVectors(t *testing.T) {
	r := require.New(t)

	inputs := []string{"encoding/hex", "placeholder", "merkle placeholder",
		"5638d79f9ac9e896cf275a1d7b1a4b59324984775bb9316a801583f44d798a59", "hello"}
	expects := []string{"5638d79f9ac9e896cf275a1d7b1a4b59324984775bb9316a801583f44d798a59",
		"4097889236a2af26c293033feb964c4cf118c0224e0d063fec0a89e9d0569ef2",
		"d33966c05481764d5bfea42d79177abad4d2d245e5d245b13f65a6ea020e5ba6",
		"a8145d86bde02e70958cc47f935369740c329275c92346cd7c667e97717c8afb",
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"}

	h := SHA256Hasher{}
	for i, input := range inputs {
		r.Equal(expects[i], h.Sum([]byte(input)).Hex())
	}
}

func TestSimpleHasherDeterministic(t *testing.T) {
	r := require.New(t)

	h := SimpleHasher{}
	r.Equal(h.Sum([]byte("test")), h.Sum([]byte("test")))
	r.NotEqual(h.Sum([]byte("hello")), h.Sum([]byte("world")))
}

func TestSimpleHasherOrderSensitive(t *testing.T) {
	r := require.New(t)

	h := SimpleHasher{}
	a := HashLeaf(h, []byte("a"))
	b := HashLeaf(h, []byte("b"))

	r.NotEqual(HashNodes(h, a, b), HashNodes(h, b, a))
}

func TestDomainSeparation(t *testing.T) {
	r := require.New(t)

	for _, h := range []Hasher{SHA256Hasher{}, SimpleHasher{}} {
		left := HashLeaf(h, []byte("a"))
		right := HashLeaf(h, []byte("b"))

		// A leaf over the concatenated child digests differs from the
		// internal combination of the same bytes only by the domain prefix.
		concat := append(append([]byte{}, left[:]...), right[:]...)
		r.NotEqual(HashLeaf(h, concat), HashNodes(h, left, right))

		// The leaf prefix also separates leaf hashes from plain hashes.
		r.NotEqual(h.Sum([]byte("a")), HashLeaf(h, []byte("a")))
	}
}

func TestDigestHexRoundTrip(t *testing.T) {
	r := require.New(t)

	d := SHA256Hasher{}.Sum([]byte("round trip"))
	parsed, err := ParseDigest(d.Hex())
	r.NoError(err)
	r.Equal(d, parsed)

	_, err = ParseDigest("zz")
	r.Error(err)

	_, err = ParseDigest("abcd")
	r.Error(err)
}

func TestConstantTimeEqual(t *testing.T) {
	r := require.New(t)

	d := SHA256Hasher{}.Sum([]byte("digest"))
	r.True(d.ConstantTimeEqual(d))

	for i := 0; i < DigestSize; i++ {
		tampered := d
		tampered[i] ^= 0x01
		r.False(d.ConstantTimeEqual(tampered))
	}
}
