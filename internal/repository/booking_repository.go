// Package repository provides the typed collection views over the shared
// key-value store.  Every mutation is a full-collection
// read-modify-write-notify cycle: load the snapshot, alter it in memory,
// persist it whole, then broadcast a payload-less change signal so other
// mounted views re-read.  A mutex serializes the cycle within this process;
// across processes the store stays last-write-wins and the usual
// time-of-check/time-of-use caveat applies to conflict validation.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/iliyamo/classroom-booking/internal/model"
	"github.com/iliyamo/classroom-booking/internal/store"
)

// BookingRepo manages the bookings collection.
type BookingRepo struct {
	kv store.KeyValue
	mu sync.Mutex // serializes read-modify-write cycles in this process
}

// NewBookingRepo constructs a BookingRepo over the given store.  The store
// is injected so tests can substitute the in-memory implementation.
func NewBookingRepo(kv store.KeyValue) *BookingRepo {
	return &BookingRepo{kv: kv}
}

// List returns the current snapshot of the bookings collection.  A missing
// key yields an empty collection.  Malformed persisted JSON is recovered by
// falling back to an empty collection and logging the parse failure; a read
// never fails on bad data, only on store errors.
func (r *BookingRepo) List(ctx context.Context) ([]model.Booking, error) {
	raw, ok, err := r.kv.Get(ctx, store.BookingsKey)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	if !ok || len(raw) == 0 {
		return []model.Booking{}, nil
	}
	var out []model.Booking
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("bookings: malformed snapshot, falling back to empty collection: %v", err)
		return []model.Booking{}, nil
	}
	return out, nil
}

// Find returns the booking with the given id and whether it exists.
func (r *BookingRepo) Find(ctx context.Context, id string) (model.Booking, bool, error) {
	items, err := r.List(ctx)
	if err != nil {
		return model.Booking{}, false, err
	}
	for _, b := range items {
		if b.ID == id {
			return b, true, nil
		}
	}
	return model.Booking{}, false, nil
}

// Add appends the booking under a freshly generated id, persists the
// snapshot and emits the change signal.  The stored booking is returned.
func (r *BookingRepo) Add(ctx context.Context, b model.Booking) (model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.List(ctx)
	if err != nil {
		return model.Booking{}, err
	}
	b.ID = uuid.NewString()
	items = append(items, b)
	if err := r.save(ctx, items); err != nil {
		return model.Booking{}, err
	}
	return b, nil
}

// Remove filters the booking out by id and persists the result.  An absent
// id is a silent no-op: removing twice leaves the same collection as
// removing once.
func (r *BookingRepo) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.List(ctx)
	if err != nil {
		return err
	}
	out := items[:0]
	for _, b := range items {
		if b.ID != id {
			out = append(out, b)
		}
	}
	return r.save(ctx, out)
}

// Update replaces the booking whose id matches b.ID.  An unknown id leaves
// the collection contents unchanged; no error is reported.
func (r *BookingRepo) Update(ctx context.Context, b model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == b.ID {
			items[i] = b
		}
	}
	return r.save(ctx, items)
}

// save persists the whole collection then broadcasts the change signal.
// Notification failures are logged, not returned: the write has already
// succeeded and observers fall back to their next full read.
func (r *BookingRepo) save(ctx context.Context, items []model.Booking) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}
	if err := r.kv.Put(ctx, store.BookingsKey, raw); err != nil {
		return fmt.Errorf("persist bookings: %w", err)
	}
	if err := r.kv.Notify(ctx, store.BookingsChannel); err != nil {
		log.Printf("bookings: change notification failed: %v", err)
	}
	return nil
}
