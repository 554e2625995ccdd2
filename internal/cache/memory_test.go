package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, ok := m.Get(ctx, "footprint:https://example.com/a")
	assert.False(t, ok, "empty cache misses")

	m.Set(ctx, "footprint:https://example.com/a", []byte(`{"carbonFootprint":180}`), time.Minute)

	val, ok := m.Get(ctx, "footprint:https://example.com/a")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"carbonFootprint":180}`), val)
}

func TestMemoryKeysAreExact(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	m.Set(ctx, "footprint:https://example.com/a", []byte("1"), time.Minute)

	// URLs differing only in a trailing slash are distinct entries.
	_, ok := m.Get(ctx, "footprint:https://example.com/a/")
	assert.False(t, ok)
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	m.Set(ctx, "k", []byte("v"), 10*time.Millisecond)

	_, ok := m.Get(ctx, "k")
	require.True(t, ok)

	time.Sleep(20 * time.Millisecond)

	_, ok = m.Get(ctx, "k")
	assert.False(t, ok, "expired entries miss")
}

func TestMemoryOverwrite(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	m.Set(ctx, "k", []byte("old"), time.Minute)
	m.Set(ctx, "k", []byte("new"), time.Minute)

	val, ok := m.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), val)
	assert.Equal(t, 1, m.Size())
}
