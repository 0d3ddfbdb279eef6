package cache

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTier(t *testing.T) {
	m, err := NewMemory[decimal.Decimal](2)
	require.NoError(t, err)

	m.Put("a", decimal.NewFromInt(1))
	m.Put("b", decimal.NewFromInt(2))

	got, ok := m.Get("a")
	require.True(t, ok)
	assert.True(t, got.Equal(decimal.NewFromInt(1)))

	// "b" is now least recently used; adding a third entry evicts it.
	m.Put("c", decimal.NewFromInt(3))
	_, ok = m.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 2, m.Len())

	m.Purge()
	assert.Equal(t, 0, m.Len())
}

func TestPersistentTier(t *testing.T) {
	db, err := OpenDB(t.TempDir())
	require.NoError(t, err)
	defer db.Close()

	store := NewPersistent[decimal.Decimal](db, "cost")
	other := NewPersistent[decimal.Decimal](db, "other")

	store.Put("ENGINE", decimal.RequireFromString("1299.95"))
	other.Put("ENGINE", decimal.NewFromInt(7))

	got, ok := store.Get("ENGINE")
	require.True(t, ok)
	assert.Equal(t, "1299.95", got.String())

	_, ok = store.Get("MISSING")
	assert.False(t, ok)

	// Purging one prefix must not touch the other store.
	store.Purge()
	_, ok = store.Get("ENGINE")
	assert.False(t, ok)
	got, ok = other.Get("ENGINE")
	require.True(t, ok)
	assert.True(t, got.Equal(decimal.NewFromInt(7)))
}

func TestTieredPromotion(t *testing.T) {
	db, err := OpenDB(t.TempDir())
	require.NoError(t, err)
	defer db.Close()

	persistent := NewPersistent[string](db, "results")
	tiered, err := NewTiered[string](8, persistent)
	require.NoError(t, err)

	// Seed only L2, as if written by a previous process.
	persistent.Put("k", "v")

	got, ok := tiered.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)

	// The hit is promoted into L1.
	assert.Equal(t, 1, tiered.memory.Len())

	tiered.Put("k2", "v2")
	tiered.Purge()
	_, ok = tiered.Get("k")
	assert.False(t, ok)
	_, ok = tiered.Get("k2")
	assert.False(t, ok)
}

func TestTieredMemoryOnly(t *testing.T) {
	tiered, err := NewTiered[int](4, nil)
	require.NoError(t, err)

	tiered.Put("n", 42)
	got, ok := tiered.Get("n")
	require.True(t, ok)
	assert.Equal(t, 42, got)
}
