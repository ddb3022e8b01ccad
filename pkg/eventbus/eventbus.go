// Package eventbus provides a typed publish/subscribe bus.
//
// A galaxy view publishes layout, window and spotlight changes on a bus;
// renderers subscribe without the view knowing who they are.
package eventbus

import (
	"slices"
	"sync"
)

// Handler is a callback function for events.
type Handler[T any] func(T)

type subscription[T any] struct {
	id      int
	handler Handler[T]
}

// Bus delivers events to registered handlers. It is safe for concurrent use.
type Bus[T any] struct {
	mu     sync.RWMutex
	subs   []subscription[T]
	nextID int
}

// New creates an empty bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Subscribe registers a handler and returns a function that removes it.
// The returned function may be called more than once.
func (b *Bus[T]) Subscribe(handler Handler[T]) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscription[T]{id: id, handler: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.subs = slices.DeleteFunc(b.subs, func(s subscription[T]) bool { return s.id == id })
	}
}

// Publish calls every handler synchronously, in subscription order.
// Handlers may subscribe or unsubscribe while being called; such changes
// take effect from the next Publish.
func (b *Bus[T]) Publish(event T) {
	b.mu.RLock()
	snapshot := slices.Clone(b.subs)
	b.mu.RUnlock()

	for _, s := range snapshot {
		s.handler(event)
	}
}

// Count returns the number of registered handlers.
func (b *Bus[T]) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Chan subscribes a buffered channel of the given capacity. Events that
// arrive while the channel is full are dropped so a slow consumer never
// blocks the publisher. The returned function unsubscribes; the channel is
// not closed because a concurrent Publish may still be sending.
func (b *Bus[T]) Chan(capacity int) (<-chan T, func()) {
	ch := make(chan T, max(capacity, 1))
	unsub := b.Subscribe(func(event T) {
		select {
		case ch <- event:
		default:
		}
	})
	return ch, unsub
}
