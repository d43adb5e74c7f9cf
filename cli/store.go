package cli

import (
	"github.com/frankonly/merkletree/crypto"
	"github.com/frankonly/merkletree/log"
	"github.com/frankonly/merkletree/storage"
)

// withStore opens the block store at the --db path, runs fn against it and
// closes it again
func withStore(fn func(storage.BlockStore) error) error {
	db, err := storage.NewLevelDB(dbPath)
	if err != nil {
		return err
	}

	store, err := storage.OpenLeafStore(db, crypto.SHA256Hasher{})
	if err != nil {
		_ = db.Close()
		return err
	}

	defer func() {
		if err := store.Close(); err != nil {
			log.New().Warnw("failed to close block store", "db", dbPath, "error", err)
		}
	}()

	return fn(store)
}
