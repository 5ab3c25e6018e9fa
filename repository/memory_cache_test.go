package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()

	_, ok, _ := c.Get("missing")
	assert.False(t, ok)

	require.NoError(t, c.Set("k", "v", 0))
	got, ok, err := c.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", got)

	require.NoError(t, c.Delete("k"))
	_, ok, _ = c.Get("k")
	assert.False(t, ok)
}

func TestMemoryCacheExpiry(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set("k", "v", time.Minute))

	now = now.Add(59 * time.Second)
	_, ok, _ := c.Get("k")
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok, _ = c.Get("k")
	assert.False(t, ok, "entry expires once its ttl has elapsed")
}
