package merkle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frankonly/merkletree/crypto"
)

func TestVerifyTamperedLeafData(t *testing.T) {
	r := require.New(t)

	h := crypto.SHA256Hasher{}
	tree := buildTree(t, h, "alpha", "beta", "gamma", "delta")
	root, ok := tree.Root()
	r.True(ok)

	proof, err := tree.Prove(1)
	r.NoError(err)
	r.True(VerifyProof(h, []byte("beta"), proof, root))

	// Any single flipped bit in the leaf data fails verification
	data := []byte("beta")
	for i := range data {
		for bit := uint(0); bit < 8; bit++ {
			tampered := append([]byte{}, data...)
			tampered[i] ^= 1 << bit
			r.False(VerifyProof(h, tampered, proof, root))
		}
	}
}

func TestVerifyTamperedSibling(t *testing.T) {
	r := require.New(t)

	h := crypto.SHA256Hasher{}
	tree := buildTree(t, h, "alpha", "beta", "gamma", "delta")
	root, ok := tree.Root()
	r.True(ok)

	proof, err := tree.Prove(2)
	r.NoError(err)

	for level := range proof.Siblings {
		for i := 0; i < crypto.DigestSize; i++ {
			tampered := Proof{
				Index:    proof.Index,
				Siblings: append([]crypto.Digest{}, proof.Siblings...),
			}
			tampered.Siblings[level][i] ^= 0x01
			r.False(VerifyProof(h, []byte("gamma"), tampered, root))
		}
	}
}

func TestVerifyTamperedIndex(t *testing.T) {
	r := require.New(t)

	h := crypto.SHA256Hasher{}
	leaves := []string{"0", "1", "2", "3", "4", "5", "6", "7"}
	tree := buildTree(t, h, leaves...)
	root, ok := tree.Root()
	r.True(ok)

	proof, err := tree.Prove(3)
	r.NoError(err)

	for bit := uint(0); bit < 64; bit++ {
		tampered := proof
		tampered.Index ^= 1 << bit
		r.False(VerifyProof(h, []byte("3"), tampered, root))
	}
}

func TestVerifyTamperedRoot(t *testing.T) {
	r := require.New(t)

	h := crypto.SHA256Hasher{}
	tree := buildTree(t, h, "a", "b", "c")
	root, ok := tree.Root()
	r.True(ok)

	proof, err := tree.Prove(0)
	r.NoError(err)

	for i := 0; i < crypto.DigestSize; i++ {
		tampered := root
		tampered[i] ^= 0x01
		r.False(VerifyProof(h, []byte("a"), proof, tampered))
	}
}

func TestVerifyTruncatedAndExtendedSiblings(t *testing.T) {
	r := require.New(t)

	h := crypto.SHA256Hasher{}
	tree := buildTree(t, h, "a", "b", "c", "d")
	root, ok := tree.Root()
	r.True(ok)

	proof, err := tree.Prove(1)
	r.NoError(err)

	truncated := Proof{Index: proof.Index, Siblings: proof.Siblings[:1]}
	r.False(VerifyProof(h, []byte("b"), truncated, root))

	extended := Proof{
		Index:    proof.Index,
		Siblings: append(append([]crypto.Digest{}, proof.Siblings...), crypto.Digest{}),
	}
	r.False(VerifyProof(h, []byte("b"), extended, root))
}

func TestVerifyCrossTree(t *testing.T) {
	r := require.New(t)

	h := crypto.SHA256Hasher{}
	treeA := buildTree(t, h, "shared", "a2", "a3", "a4")
	treeB := buildTree(t, h, "shared", "b2", "b3", "b4")

	rootA, ok := treeA.Root()
	r.True(ok)
	rootB, ok := treeB.Root()
	r.True(ok)
	r.NotEqual(rootA, rootB)

	// Same leaf data at the same index, but the proof belongs to tree A
	proof, err := treeA.Prove(0)
	r.NoError(err)
	r.True(VerifyProof(h, []byte("shared"), proof, rootA))
	r.False(VerifyProof(h, []byte("shared"), proof, rootB))
}

func TestVerifyIndexBeyondSiblingCount(t *testing.T) {
	r := require.New(t)

	h := crypto.SHA256Hasher{}
	tree := buildTree(t, h, "a", "b", "c", "d")
	root, ok := tree.Root()
	r.True(ok)

	proof, err := tree.Prove(1)
	r.NoError(err)

	// Two siblings support indexes 0..3 only; anything wider is a
	// definite mismatch
	overlong := Proof{Index: 4, Siblings: proof.Siblings}
	r.False(VerifyProof(h, []byte("b"), overlong, root))

	overlong.Index = 1 << 40
	r.False(VerifyProof(h, []byte("b"), overlong, root))

	// And a nonzero index never matches an empty sibling list, even when
	// the leaf digest equals the root
	single := buildTree(t, h, "x")
	singleRoot, ok := single.Root()
	r.True(ok)
	r.False(VerifyProof(h, []byte("x"), Proof{Index: 5}, singleRoot))
	r.True(VerifyProof(h, []byte("x"), Proof{Index: 0}, singleRoot))
}

func TestProofOutlivesTree(t *testing.T) {
	r := require.New(t)

	h := crypto.SHA256Hasher{}

	var proof Proof
	var root crypto.Digest
	{
		tree := buildTree(t, h, "a", "b", "c")
		var ok bool
		root, ok = tree.Root()
		r.True(ok)

		p, err := tree.Prove(1)
		r.NoError(err)
		proof = p
	}

	// Verification needs no tree access
	r.True(VerifyProof(h, []byte("b"), proof, root))
}
