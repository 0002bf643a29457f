package ledger

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client)
}

func TestRedisStoreAppendAndList(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	first, err := store.Append(ctx, "山田太郎", "2026-09-15", "10:00")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, StatusBooked, first.Status)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := store.Append(ctx, "佐藤花子", "2026-09-16", "14:30")
	require.NoError(t, err)

	got, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID, "rows must come back in insertion order")
	assert.Equal(t, second.ID, got[1].ID)
	assert.Equal(t, "佐藤花子", got[1].Name)
}

func TestRedisStoreListEmpty(t *testing.T) {
	store := newTestRedisStore(t)

	got, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRedisStoreAcceptsBlankFields(t *testing.T) {
	store := newTestRedisStore(t)

	res, err := store.Append(context.Background(), "", "", "")
	require.NoError(t, err)
	assert.Equal(t, StatusBooked, res.Status)

	got, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Name)
}

func TestMemoryStoreAppendAndList(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Append(ctx, "山田太郎", "2026-09-15", "10:00")
	require.NoError(t, err)
	_, err = store.Append(ctx, "佐藤花子", "2026-09-16", "14:30")
	require.NoError(t, err)

	got, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "山田太郎", got[0].Name)

	// Mutating the returned slice must not leak into the store.
	got[0].Name = "changed"
	again, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "山田太郎", again[0].Name)
}
