package store

import (
	"context"
	"sync"
)

// broadcaster fans payload-less change signals out to in-process watchers.
// The MySQL and in-memory stores use it because neither has a cross-process
// signalling primitive; the Redis store broadcasts over pub/sub instead.
type broadcaster struct {
	mu       sync.Mutex
	watchers map[string]map[chan struct{}]struct{}
}

func newBroadcaster() *broadcaster {
	return &broadcaster{watchers: map[string]map[chan struct{}]struct{}{}}
}

// notify delivers one tick to every watcher of the channel.  Sends are
// non-blocking: a watcher that already holds an undelivered tick keeps just
// that one, which is enough since ticks carry no payload.
func (b *broadcaster) notify(channel string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.watchers[channel] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// watch registers a new watcher for the channel and removes it again when
// ctx is cancelled.
func (b *broadcaster) watch(ctx context.Context, channel string) <-chan struct{} {
	ch := make(chan struct{}, 1)
	b.mu.Lock()
	if b.watchers[channel] == nil {
		b.watchers[channel] = map[chan struct{}]struct{}{}
	}
	b.watchers[channel][ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.watchers[channel], ch)
		b.mu.Unlock()
		close(ch)
	}()
	return ch
}
