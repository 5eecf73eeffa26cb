package notify

import "sync"

// NoProgress is the progress value for status messages that do not
// carry a progress fraction
const NoProgress = -1

// Handler receives a human-readable status message and, for per-item
// progress events, a completion fraction in [0,1]. Plain status messages
// carry NoProgress.
type Handler func(status string, progress float64)

// subscription pairs a handler with its registration id
type subscription struct {
	handler Handler
	id      int
}

// Bus fans status updates out to subscribers. Delivery is synchronous
// and in registration order; a handler is called once per publish for
// as long as it stays subscribed.
type Bus struct {
	mu     sync.Mutex
	subs   []subscription
	nextID int
}

// NewBus creates an empty notification bus
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler and returns an id for Unsubscribe
func (b *Bus) Subscribe(handler Handler) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subs = append(b.subs, subscription{id: b.nextID, handler: handler})
	return b.nextID
}

// Unsubscribe removes a handler. Safe to call from inside a handler
// during an active publish: the running publish uses a snapshot of the
// subscriber list and is not invalidated.
func (b *Bus) Unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subs {
		if sub.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish invokes all current subscribers synchronously, in
// registration order
func (b *Bus) Publish(status string, progress float64) {
	b.mu.Lock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, sub := range subs {
		sub.handler(status, progress)
	}
}
