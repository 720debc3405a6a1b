package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/classroom-booking/internal/model"
	"github.com/iliyamo/classroom-booking/internal/repository"
	"github.com/iliyamo/classroom-booking/internal/store"
)

func newBookingRepo() (*repository.BookingRepo, *store.MemoryStore) {
	kv := store.NewMemoryStore()
	return repository.NewBookingRepo(kv), kv
}

func sample() model.Booking {
	return model.Booking{
		Block:      "Block A",
		Room:       "A101",
		Name:       "Alice",
		Department: "Physics",
		Date:       "2024-06-01",
		StartTime:  "09:00",
		EndTime:    "10:00",
		Purpose:    "Lecture",
	}
}

func TestBookingAddAssignsIDAndPersists(t *testing.T) {
	repo, _ := newBookingRepo()
	ctx := context.Background()

	created, err := repo.Add(ctx, sample())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created, items[0])
}

func TestBookingListEmptyStore(t *testing.T) {
	repo, _ := newBookingRepo()

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestBookingListRecoversFromMalformedSnapshot(t *testing.T) {
	repo, kv := newBookingRepo()
	ctx := context.Background()
	require.NoError(t, kv.Put(ctx, store.BookingsKey, []byte("{not json")))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items, "malformed snapshot falls back to an empty collection")
}

func TestBookingRemoveIsIdempotent(t *testing.T) {
	repo, _ := newBookingRepo()
	ctx := context.Background()

	created, err := repo.Add(ctx, sample())
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, created.ID))
	once, err := repo.List(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, created.ID))
	twice, err := repo.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, once, twice, "removing twice leaves the same collection as removing once")
	assert.Empty(t, twice)
}

func TestBookingUpdateReplacesMatchingID(t *testing.T) {
	repo, _ := newBookingRepo()
	ctx := context.Background()

	created, err := repo.Add(ctx, sample())
	require.NoError(t, err)

	created.Purpose = "Seminar"
	require.NoError(t, repo.Update(ctx, created))

	got, found, err := repo.Find(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Seminar", got.Purpose)
}

func TestBookingUpdateUnknownIDIsNoOp(t *testing.T) {
	repo, _ := newBookingRepo()
	ctx := context.Background()

	created, err := repo.Add(ctx, sample())
	require.NoError(t, err)

	ghost := sample()
	ghost.ID = "missing"
	ghost.Purpose = "Ghost"
	require.NoError(t, repo.Update(ctx, ghost))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created, items[0])
}

func TestBookingMutationsEmitChangeSignal(t *testing.T) {
	repo, kv := newBookingRepo()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticks, err := kv.Watch(ctx, store.BookingsChannel)
	require.NoError(t, err)

	_, err = repo.Add(ctx, sample())
	require.NoError(t, err)

	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("expected a change signal after Add")
	}
}
