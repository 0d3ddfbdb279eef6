package cache

import (
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
)

// OpenDB opens the Badger database backing the persistent tier. One
// database is shared by every Persistent store created over it.
func OpenDB(dir string) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database at %s: %w", dir, err)
	}
	return db, nil
}

// Persistent is the L2 tier: values JSON-encoded into a Badger
// database under a per-store key prefix.
type Persistent[V any] struct {
	db     *badger.DB
	prefix []byte
}

// NewPersistent creates an L2 store over db. The prefix namespaces
// this store's keys so several stores can share one database.
func NewPersistent[V any](db *badger.DB, prefix string) *Persistent[V] {
	return &Persistent[V]{db: db, prefix: []byte(prefix + "/")}
}

func (p *Persistent[V]) key(key string) []byte {
	return append(append([]byte{}, p.prefix...), key...)
}

// Get returns the stored value for key, if present. Decoding failures
// are treated as misses.
func (p *Persistent[V]) Get(key string) (V, bool) {
	var value V
	err := p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(p.key(key))
		if err != nil {
			return err
		}
		return item.Value(func(data []byte) error {
			return json.Unmarshal(data, &value)
		})
	})
	if err != nil {
		var zero V
		return zero, false
	}
	return value, true
}

// Put stores a value. Encoding or write failures drop the entry; the
// cache is advisory and never fails a calculation.
func (p *Persistent[V]) Put(key string, value V) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = p.db.Update(func(txn *badger.Txn) error {
		return txn.Set(p.key(key), data)
	})
}

// Purge removes every entry under this store's prefix.
func (p *Persistent[V]) Purge() {
	_ = p.db.DropPrefix(p.prefix)
}
