package cache

// Tiered combines the L1 memory tier with an optional L2 persistent
// tier. L2 hits are promoted into L1.
type Tiered[V any] struct {
	memory     *Memory[V]
	persistent *Persistent[V]
}

// NewTiered creates a tiered cache. persistent may be nil for a
// memory-only cache.
func NewTiered[V any](size int, persistent *Persistent[V]) (*Tiered[V], error) {
	memory, err := NewMemory[V](size)
	if err != nil {
		return nil, err
	}
	return &Tiered[V]{memory: memory, persistent: persistent}, nil
}

// Get looks key up in L1, then L2.
func (t *Tiered[V]) Get(key string) (V, bool) {
	if value, ok := t.memory.Get(key); ok {
		return value, true
	}
	if t.persistent != nil {
		if value, ok := t.persistent.Get(key); ok {
			t.memory.Put(key, value)
			return value, true
		}
	}
	var zero V
	return zero, false
}

// Put stores a value in both tiers.
func (t *Tiered[V]) Put(key string, value V) {
	t.memory.Put(key, value)
	if t.persistent != nil {
		t.persistent.Put(key, value)
	}
}

// Purge clears both tiers. Called whenever the underlying graph
// mutates, so cached results never outlive the snapshot they were
// computed from.
func (t *Tiered[V]) Purge() {
	t.memory.Purge()
	if t.persistent != nil {
		t.persistent.Purge()
	}
}
