package storage

import (
	"encoding/binary"

	"github.com/frankonly/merkletree/crypto"
)

const (
	sizeConstantKey = "s"
	blockPrefix     = "b"
	leafIndexPrefix = "h"
)

func sizeKey() []byte {
	return []byte(sizeConstantKey)
}

func sizeKeyValue(size uint64) ([]byte, []byte) {
	sizeValue := make([]byte, 8)
	binary.BigEndian.PutUint64(sizeValue, size)

	return []byte(sizeConstantKey), sizeValue
}

func blockKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)

	return append([]byte(blockPrefix), key...)
}

func leafIndexKey(digest crypto.Digest) []byte {
	return append([]byte(leafIndexPrefix), digest[:]...)
}

func leafIndexKeyValue(digest crypto.Digest, id uint64) ([]byte, []byte) {
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, id)

	return leafIndexKey(digest), value
}
