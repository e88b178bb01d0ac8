package prefs

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricexhq/pricex/internal/config"
)

func setupTestStore(t *testing.T) *Store {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
		Password:     "",
		DB:           0,
		User:         "",
	}

	store, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	return store
}

func TestSetAndGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	err := store.Set(ctx, "pricex:session:soy", `{"username":"soy","id":"user_1"}`)
	require.NoError(t, err)

	val, found, err := store.Get(ctx, "pricex:session:soy")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `{"username":"soy","id":"user_1"}`, val)
}

func TestGetNotFound(t *testing.T) {
	store := setupTestStore(t)

	val, found, err := store.Get(context.Background(), "no_such_key")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, val)
}

func TestSetOverwrites(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "pricex:theme:soy", "light"))
	require.NoError(t, store.Set(ctx, "pricex:theme:soy", "dark"))

	val, found, err := store.Get(ctx, "pricex:theme:soy")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "dark", val)
}

func TestRemove(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "key", "value"))
	require.NoError(t, store.Remove(ctx, "key"))

	_, found, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRemoveMissingKeyIsNoop(t *testing.T) {
	store := setupTestStore(t)

	err := store.Remove(context.Background(), "never_existed")
	assert.NoError(t, err)
}
