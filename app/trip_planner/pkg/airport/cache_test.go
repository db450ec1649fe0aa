package airport

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache(time.Hour)
	c.now = func() time.Time { return now }

	_, ok := c.Get(ctx, "delhi")
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "delhi", "DEL"))
	code, ok := c.Get(ctx, "delhi")
	assert.True(t, ok)
	assert.Equal(t, "DEL", code)

	now = now.Add(2 * time.Hour)
	_, ok = c.Get(ctx, "delhi")
	assert.False(t, ok)
}

func TestMemoryCache_NoTTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0)
	require.NoError(t, c.Set(ctx, "goa", "GOI"))
	code, ok := c.Get(ctx, "goa")
	assert.True(t, ok)
	assert.Equal(t, "GOI", code)
}

func TestRedisCache_Unavailable(t *testing.T) {
	client := NewRedisClient("127.0.0.1:1", "", 0)
	defer client.Close()
	c := NewRedisCache(client, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, ok := c.Get(ctx, "delhi")
	assert.False(t, ok)
	assert.Error(t, c.Set(ctx, "delhi", "DEL"))
}
