package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	r := NewRedis(mr.Addr(), time.Minute)
	t.Cleanup(func() { _ = r.Close() })

	return r, mr
}

func TestRedis_GetSet(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t)

	require.NoError(t, r.Ping(ctx))

	_, ok, err := r.Get(ctx, "news:menu:en")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.Set(ctx, "news:menu:en", []byte(`[{"id":"sports"}]`)))

	data, ok, err := r.Get(ctx, "news:menu:en")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"sports"}]`, string(data))
	assert.Equal(t, time.Minute, mr.TTL("news:menu:en"))

	mr.FastForward(2 * time.Minute)
	_, ok, err = r.Get(ctx, "news:menu:en")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_Delete(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t)

	require.NoError(t, r.Set(ctx, "a", []byte("1")))
	require.NoError(t, r.Set(ctx, "b", []byte("2")))
	require.NoError(t, r.Delete(ctx, "a", "b", "missing"))
	require.NoError(t, r.Delete(ctx))

	assert.False(t, mr.Exists("a"))
	assert.False(t, mr.Exists("b"))
}

func TestRedis_Unavailable(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t)
	mr.Close()

	_, _, err := r.Get(ctx, "key")
	assert.Error(t, err)
}
