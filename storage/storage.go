package storage

import (
	"fmt"

	"github.com/frankonly/merkletree/crypto"
	"github.com/frankonly/merkletree/merkle"
)

var (
	ErrOutOfRange = fmt.Errorf("out of range")
	ErrNotFound   = fmt.Errorf("not found")
)

// BlockStore is an append-only store of data blocks summarized by a merkle root
type BlockStore interface {
	Append([]byte) (uint64, error)
	Get(uint64) ([]byte, error)
	Search(crypto.Digest) (uint64, error)
	Size() uint64
	Root() (crypto.Digest, bool)
	Prove(uint64) (merkle.Proof, error)
	Close() error
}

type KvStore interface {
	Get(key []byte) ([]byte, error)
	Put(key, value []byte) error
	Delete(key []byte) error
	Close() error
}
