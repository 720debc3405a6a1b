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

// ClassroomRepo manages the classroom inventory collection.  It follows the
// same full-collection read-modify-write-notify cycle as BookingRepo.
type ClassroomRepo struct {
	kv store.KeyValue
	mu sync.Mutex
}

func NewClassroomRepo(kv store.KeyValue) *ClassroomRepo {
	return &ClassroomRepo{kv: kv}
}

// Seed writes the reference campus inventory when the classrooms collection
// is empty or has never been written.  An already-populated collection is
// left untouched, so seeding at every startup is safe.
func (r *ClassroomRepo) Seed(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.List(ctx)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return nil
	}
	defaults := model.SeedClassrooms()
	log.Printf("classrooms: seeding %d rooms from reference inventory", len(defaults))
	return r.save(ctx, defaults)
}

// List returns the current snapshot of the classroom collection, with the
// same malformed-JSON fallback as the bookings repository.
func (r *ClassroomRepo) List(ctx context.Context) ([]model.Classroom, error) {
	raw, ok, err := r.kv.Get(ctx, store.ClassroomsKey)
	if err != nil {
		return nil, fmt.Errorf("load classrooms: %w", err)
	}
	if !ok || len(raw) == 0 {
		return []model.Classroom{}, nil
	}
	var out []model.Classroom
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("classrooms: malformed snapshot, falling back to empty collection: %v", err)
		return []model.Classroom{}, nil
	}
	return out, nil
}

// Find returns the classroom with the given id and whether it exists.
func (r *ClassroomRepo) Find(ctx context.Context, id string) (model.Classroom, bool, error) {
	items, err := r.List(ctx)
	if err != nil {
		return model.Classroom{}, false, err
	}
	for _, c := range items {
		if c.ID == id {
			return c, true, nil
		}
	}
	return model.Classroom{}, false, nil
}

// Add appends the classroom under a fresh id and persists the snapshot.
func (r *ClassroomRepo) Add(ctx context.Context, c model.Classroom) (model.Classroom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.List(ctx)
	if err != nil {
		return model.Classroom{}, err
	}
	c.ID = uuid.NewString()
	items = append(items, c)
	if err := r.save(ctx, items); err != nil {
		return model.Classroom{}, err
	}
	return c, nil
}

// Remove deletes a classroom by id; absent ids are a silent no-op.
// Historical bookings keep referring to the room by its code, so deleting a
// classroom orphans their display linkage rather than cascading.
func (r *ClassroomRepo) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.List(ctx)
	if err != nil {
		return err
	}
	out := items[:0]
	for _, c := range items {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return r.save(ctx, out)
}

// Update replaces the classroom whose id matches c.ID; unknown ids leave
// the collection contents unchanged.
func (r *ClassroomRepo) Update(ctx context.Context, c model.Classroom) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == c.ID {
			items[i] = c
		}
	}
	return r.save(ctx, items)
}

func (r *ClassroomRepo) save(ctx context.Context, items []model.Classroom) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode classrooms: %w", err)
	}
	if err := r.kv.Put(ctx, store.ClassroomsKey, raw); err != nil {
		return fmt.Errorf("persist classrooms: %w", err)
	}
	if err := r.kv.Notify(ctx, store.ClassroomsChannel); err != nil {
		log.Printf("classrooms: change notification failed: %v", err)
	}
	return nil
}
