package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"

	"github.com/frankonly/merkletree/crypto"
	"github.com/frankonly/merkletree/merkle"
)

// LeafStore persists raw leaf blocks in a KvStore and keeps the derived
// merkle tree in memory. Only the raw blocks and a digest index are stored;
// the tree and its root are rebuilt from the blocks on open, so the store
// never writes a serialized tree.
type LeafStore struct {
	db     KvStore
	hasher crypto.Hasher
	tree   *merkle.Tree
}

// OpenLeafStore loads the block count from db and replays every stored
// block into a fresh tree
func OpenLeafStore(db KvStore, hasher crypto.Hasher) (*LeafStore, error) {
	store := &LeafStore{
		db:     db,
		hasher: hasher,
		tree:   merkle.New(hasher),
	}

	size, err := store.loadSize()
	if err != nil {
		return nil, err
	}

	for id := uint64(0); id < size; id++ {
		block, err := db.Get(blockKey(id))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load block %d", id)
		}

		if err := store.tree.AddLeaf(block); err != nil {
			return nil, errors.Wrapf(err, "failed to replay block %d", id)
		}
	}

	return store, nil
}

// Append validates and appends a data block, returning its index
func (s *LeafStore) Append(data []byte) (uint64, error) {
	if err := s.tree.AddLeaf(data); err != nil {
		return 0, err
	}

	id := s.tree.Size() - 1

	if err := s.db.Put(blockKey(id), data); err != nil {
		return 0, errors.Wrapf(err, "failed to store block %d", id)
	}

	key, value := leafIndexKeyValue(crypto.HashLeaf(s.hasher, data), id)
	if err := s.db.Put(key, value); err != nil {
		return 0, errors.Wrapf(err, "failed to index block %d", id)
	}

	key, value = sizeKeyValue(s.tree.Size())
	if err := s.db.Put(key, value); err != nil {
		return 0, errors.Wrap(err, "failed to update size")
	}

	return id, nil
}

// Get returns the raw data of the block at id
func (s *LeafStore) Get(id uint64) ([]byte, error) {
	if id >= s.tree.Size() {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, id)
	}

	return s.db.Get(blockKey(id))
}

// Search returns the index of the block whose leaf digest equals digest.
// When the same block was appended more than once, the latest index wins.
func (s *LeafStore) Search(digest crypto.Digest) (uint64, error) {
	value, err := s.db.Get(leafIndexKey(digest))
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint64(value), nil
}

// Size returns the number of stored blocks
func (s *LeafStore) Size() uint64 {
	return s.tree.Size()
}

// Root returns the merkle root over all stored blocks, false when empty
func (s *LeafStore) Root() (crypto.Digest, bool) {
	return s.tree.Root()
}

// Prove generates a membership proof for the block at id
func (s *LeafStore) Prove(id uint64) (merkle.Proof, error) {
	return s.tree.Prove(id)
}

func (s *LeafStore) Close() error {
	return s.db.Close()
}

func (s *LeafStore) loadSize() (uint64, error) {
	value, err := s.db.Get(sizeKey())
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to load size")
	}

	return binary.BigEndian.Uint64(value), nil
}
