package merkle

import (
	"fmt"

	"github.com/frankonly/merkletree/crypto"
)

// Proof is a membership proof for a single leaf: the leaf position and the
// sibling digests from the leaf level toward the root. A Proof carries no
// reference back to the tree it came from, so it stays valid after the tree
// is gone and may be copied freely.
type Proof struct {
	Index    uint64
	Siblings []crypto.Digest
}

// Prove generates the membership proof for the leaf at index. It fails with
// ErrInvalidIndex when the tree is empty or index is out of range. The proof
// holds ceil(log2(n)) siblings, none for a single-leaf tree.
func (t *Tree) Prove(index uint64) (Proof, error) {
	if index >= uint64(len(t.leaves)) {
		return Proof{}, fmt.Errorf("%w: %d of %d leaves", ErrInvalidIndex, index, len(t.leaves))
	}

	t.rebuild()

	siblings := make([]crypto.Digest, 0, len(t.levels)-1)
	idx := index

	// Walk from the leaf level toward the root, recording the sibling of
	// the node on the path at each level
	for level := 0; level < len(t.levels)-1; level++ {
		nodes := t.levels[level]

		var siblingIdx uint64
		if idx%2 == 0 {
			siblingIdx = idx + 1
		} else {
			siblingIdx = idx - 1
		}

		// Last node of an odd-sized level pairs with itself
		if siblingIdx >= uint64(len(nodes)) {
			siblingIdx = idx
		}

		siblings = append(siblings, nodes[siblingIdx].Digest())
		idx /= 2
	}

	return Proof{Index: index, Siblings: siblings}, nil
}

// Verify checks proof against expectedRoot using the tree's hasher
func (t *Tree) Verify(proof Proof, leafData []byte, expectedRoot crypto.Digest) bool {
	return VerifyProof(t.hasher, leafData, proof, expectedRoot)
}

// VerifyProof recomputes the root from leafData, the proof index and the
// sibling digests, and compares it to expectedRoot in constant time. It is
// pure given its inputs and performs no tree access. A failed verification
// is an expected outcome, not an error.
func VerifyProof(h crypto.Hasher, leafData []byte, proof Proof, expectedRoot crypto.Digest) bool {
	// An index that does not fit in len(Siblings) bits cannot address a
	// leaf of any tree this proof could describe
	if proof.Index>>uint(len(proof.Siblings)) != 0 {
		return false
	}

	current := crypto.HashLeaf(h, leafData)
	idx := proof.Index

	for _, sibling := range proof.Siblings {
		if idx%2 == 0 {
			current = crypto.HashNodes(h, current, sibling)
		} else {
			current = crypto.HashNodes(h, sibling, current)
		}

		idx /= 2
	}

	return current.ConstantTimeEqual(expectedRoot)
}
