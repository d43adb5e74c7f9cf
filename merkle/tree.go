package merkle

import (
	"fmt"

	"github.com/frankonly/merkletree/crypto"
)

var (
	ErrEmptyInput   = fmt.Errorf("empty input")
	ErrInvalidIndex = fmt.Errorf("invalid index")
)

// Tree is a binary merkle tree over an ordered sequence of data blocks.
// Leaves are hashed with a 0x00 domain prefix and internal nodes with 0x01.
// When a level holds an odd number of nodes, the last node is paired with
// itself. The root is a pure function of the ordered leaf data.
//
// A Tree is not safe for concurrent mutation; callers serialize appends.
// A fully built tree may be read concurrently since digests are immutable.
type Tree struct {
	hasher crypto.Hasher
	leaves []*Node

	// levels[0] is the leaf level and the last level holds the root.
	// nil whenever an append has invalidated the derived levels.
	levels [][]*Node
}

// New creates an empty tree using the given hasher
func New(h crypto.Hasher) *Tree {
	return &Tree{hasher: h}
}

// AddLeaf appends a data block as a new leaf. Zero-length data is rejected
// with ErrEmptyInput and the tree is left unchanged.
func (t *Tree) AddLeaf(data []byte) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}

	t.leaves = append(t.leaves, NewLeaf(t.hasher, data))
	t.levels = nil

	return nil
}

// Size returns the number of leaves
func (t *Tree) Size() uint64 {
	return uint64(len(t.leaves))
}

// Leaf returns the raw data of the leaf at index
func (t *Tree) Leaf(index uint64) ([]byte, error) {
	if index >= uint64(len(t.leaves)) {
		return nil, fmt.Errorf("%w: %d of %d leaves", ErrInvalidIndex, index, len(t.leaves))
	}

	data, _ := t.leaves[index].Data()
	return data, nil
}

// Root returns the root digest, or false when the tree has no leaves.
// Callers distinguish "no root yet" from an error.
func (t *Tree) Root() (crypto.Digest, bool) {
	if len(t.leaves) == 0 {
		return crypto.Digest{}, false
	}

	t.rebuild()
	top := t.levels[len(t.levels)-1]

	return top[0].Digest(), true
}

// RootHex returns the hex-encoded root digest, or the empty string when the
// tree has no leaves
func (t *Tree) RootHex() string {
	root, ok := t.Root()
	if !ok {
		return ""
	}

	return root.Hex()
}

// rebuild folds the leaf level pairwise, left to right, until one node
// remains. Leaf nodes are shared across rebuilds while internal nodes are
// fresh values, so no digest is ever mutated in place.
func (t *Tree) rebuild() {
	if t.levels != nil {
		return
	}

	levels := [][]*Node{t.leaves}

	current := t.leaves
	for len(current) > 1 {
		next := make([]*Node, 0, (len(current)+1)/2)

		for i := 0; i < len(current); i += 2 {
			left := current[i]

			// Odd number of nodes: the last one pairs with itself
			right := left
			if i+1 < len(current) {
				right = current[i+1]
			}

			next = append(next, NewInternal(t.hasher, left, right))
		}

		levels = append(levels, next)
		current = next
	}

	t.levels = levels
}
