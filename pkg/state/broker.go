package state

import (
	"sync"

	"notectl/pkg/core"
)

// Broker fans store change events out to any number of subscribers.
// Publishing never blocks: a subscriber that stops draining its channel
// loses events rather than stalling the store.
type Broker struct {
	mu   sync.Mutex
	subs []chan core.Event
}

// Subscribe returns a buffered channel of change events.
func (b *Broker) Subscribe() <-chan core.Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan core.Event, 16)
	b.subs = append(b.subs, ch)
	return ch
}

// Publish delivers e to every subscriber that has room.
func (b *Broker) Publish(e core.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}
