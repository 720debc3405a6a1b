// Package store provides the shared key-value persistence layer backing the
// booking and classroom collections.  A store is a durable map from string
// key to raw JSON bytes plus a payload-less change signal per channel:
// observers re-fetch the whole collection on a signal rather than receiving
// a delta.  Writes are last-write-wins; the store gives no transaction
// isolation beyond replacing one key atomically.
package store

import "context"

// Keys under which the two collections are persisted, and the channels
// their change signals are broadcast on.  The key names are kept identical
// to the original admin tool's storage layout.
const (
	BookingsKey   = "classroom_bookings"
	ClassroomsKey = "classroom_definitions"

	BookingsChannel   = "classroom_bookings.changed"
	ClassroomsChannel = "classroom_definitions.changed"
)

// KeyValue is the store contract the repositories depend on.  Implementations
// must be safe for concurrent use.  It is injected rather than reached for as
// ambient state so the validator and repositories can be unit tested against
// the in-memory implementation.
type KeyValue interface {
	// Get returns the raw value stored under key.  ok is false when the key
	// has never been written.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Put replaces the value stored under key in one step.
	Put(ctx context.Context, key string, value []byte) error

	// Notify broadcasts a payload-less change signal on the named channel.
	Notify(ctx context.Context, channel string) error

	// Watch returns a channel that receives one tick per change signal
	// broadcast on the named channel.  The subscription ends when ctx is
	// cancelled.  Slow watchers may observe coalesced ticks; a tick means
	// "re-read the collection", so coalescing loses nothing.
	Watch(ctx context.Context, channel string) (<-chan struct{}, error)

	// Close releases the underlying connection, if any.
	Close() error
}
