package draft

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_GetSetDelete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedis(db)
	ctx := context.Background()

	key := SessionKey("lower-1")
	require.Equal(t, "session:lower-1", key)

	mock.ExpectGet(key).RedisNil()
	_, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	payload := []byte(`{"templateId":"lower-1"}`)
	mock.ExpectSet(key, payload, 0).SetVal("OK")
	require.NoError(t, store.Set(ctx, key, payload))

	mock.ExpectGet(key).SetVal(string(payload))
	got, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, payload, got)

	mock.ExpectDel(key).SetVal(1)
	require.NoError(t, store.Delete(ctx, key))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_LastWriteWins(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedis(db)
	ctx := context.Background()

	key := SessionKey("upper-1")
	first := []byte(`{"v":1}`)
	second := []byte(`{"v":2}`)

	mock.ExpectSet(key, first, 0).SetVal("OK")
	mock.ExpectSet(key, second, 0).SetVal("OK")
	mock.ExpectGet(key).SetVal(string(second))

	require.NoError(t, store.Set(ctx, key, first))
	require.NoError(t, store.Set(ctx, key, second))

	got, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, second, got)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "session:a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "session:a", []byte("1")))
	require.NoError(t, store.Set(ctx, "session:b", []byte("2")))
	require.NoError(t, store.Set(ctx, "other:c", []byte("3")))

	got, ok, err := store.Get(ctx, "session:a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("1"), got)

	require.NoError(t, store.Clear(ctx, "session:"))
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete(ctx, "other:c"))
	assert.Equal(t, 0, store.Len())

	// deleting an absent key is not an error
	require.NoError(t, store.Delete(ctx, "other:c"))
}
