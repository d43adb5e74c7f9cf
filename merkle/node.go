package merkle

import "github.com/frankonly/merkletree/crypto"

type nodeKind uint8

const (
	leafKind nodeKind = iota
	internalKind
)

// Node is one node of a merkle tree, either a leaf owning its raw data or an
// internal node sharing two children. The digest is computed at creation and
// never mutated, so nodes may be shared freely across rebuilt trees.
type Node struct {
	kind   nodeKind
	data   []byte
	left   *Node
	right  *Node
	digest crypto.Digest
}

// NewLeaf creates a leaf node over a copy of data
func NewLeaf(h crypto.Hasher, data []byte) *Node {
	owned := make([]byte, len(data))
	copy(owned, data)

	return &Node{
		kind:   leafKind,
		data:   owned,
		digest: crypto.HashLeaf(h, owned),
	}
}

// NewInternal creates an internal node combining two children
func NewInternal(h crypto.Hasher, left *Node, right *Node) *Node {
	return &Node{
		kind:   internalKind,
		left:   left,
		right:  right,
		digest: crypto.HashNodes(h, left.digest, right.digest),
	}
}

// IsLeaf judges whether the node is a leaf
func (n *Node) IsLeaf() bool {
	return n.kind == leafKind
}

// Data returns the raw data of a leaf, or false for an internal node
func (n *Node) Data() ([]byte, bool) {
	if n.kind != leafKind {
		return nil, false
	}

	return n.data, true
}

// Digest returns the node digest
func (n *Node) Digest() crypto.Digest {
	return n.digest
}

// Left returns the left child, nil for a leaf
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, nil for a leaf
func (n *Node) Right() *Node {
	return n.right
}
