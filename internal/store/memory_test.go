package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/classroom-booking/internal/store"
)

func TestMemoryStoreGetPut(t *testing.T) {
	kv := store.NewMemoryStore()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Put(ctx, "k", []byte(`[1,2,3]`)))
	v, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[1,2,3]`), v)
}

func TestMemoryStoreGetReturnsACopy(t *testing.T) {
	kv := store.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, "k", []byte("abc")))
	v, _, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	v[0] = 'x'

	again, _, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again, "callers must not mutate the stored snapshot")
}

func TestMemoryStoreWatchReceivesNotify(t *testing.T) {
	kv := store.NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticks, err := kv.Watch(ctx, "ch")
	require.NoError(t, err)

	require.NoError(t, kv.Notify(context.Background(), "ch"))
	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("expected a tick after Notify")
	}
}

func TestMemoryStoreWatchEndsOnCancel(t *testing.T) {
	kv := store.NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())

	ticks, err := kv.Watch(ctx, "ch")
	require.NoError(t, err)
	cancel()

	select {
	case _, open := <-ticks:
		assert.False(t, open, "channel closes once the watch context ends")
	case <-time.After(time.Second):
		t.Fatal("expected the watch channel to close")
	}
}

func TestMemoryStoreNotifyOtherChannelDoesNotTick(t *testing.T) {
	kv := store.NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticks, err := kv.Watch(ctx, "a")
	require.NoError(t, err)
	require.NoError(t, kv.Notify(context.Background(), "b"))

	select {
	case <-ticks:
		t.Fatal("tick delivered for the wrong channel")
	case <-time.After(50 * time.Millisecond):
	}
}
