package marketcache

import (
	"sync"
	"time"
)

// EventKind names a change in a store's state.
type EventKind uint8

const (
	EventFetchStarted EventKind = iota + 1
	EventFetchSucceeded
	EventFetchFailed
	EventCleared
)

func (k EventKind) String() string {
	switch k {
	case EventFetchStarted:
		return "fetch_started"
	case EventFetchSucceeded:
		return "fetch_succeeded"
	case EventFetchFailed:
		return "fetch_failed"
	case EventCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Event is published whenever a store's state changes, so a UI layer can
// react without polling. Key is empty when a whole store was cleared.
type Event struct {
	Store string
	Key   string
	Kind  EventKind
	At    time.Time
	Err   *FetchError // set for EventFetchFailed
}

// Hub fans events out to subscribers. Publish never blocks: when a
// subscriber's buffer is full the event is dropped for that subscriber.
type Hub struct {
	mu     sync.RWMutex
	subs   map[*subscriber]struct{}
	closed bool
}

type subscriber struct {
	ch chan Event
}

// NewHub returns a hub with no subscribers.
func NewHub() *Hub {
	return &Hub{subs: make(map[*subscriber]struct{})}
}

// Subscribe registers a subscriber with the given buffer depth. The returned
// function unsubscribes and closes the channel; it is safe to call more than
// once. Subscribing to a closed hub yields a closed channel.
func (h *Hub) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	s := &subscriber{ch: make(chan Event, buffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(s.ch)
		return s.ch, func() {}
	}
	h.subs[s] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return s.ch, func() { once.Do(func() { h.unregister(s) }) }
}

// Publish delivers ev to every subscriber that has room for it.
func (h *Hub) Publish(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subs {
		select {
		case s.ch <- ev:
		default:
			eventsDropped.Inc()
		}
	}
}

// Count returns the number of current subscribers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close unregisters and closes every subscriber. Later publishes are no-ops.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.subs {
		close(s.ch)
		delete(h.subs, s)
	}
	h.closed = true
}

func (h *Hub) unregister(s *subscriber) {
	h.mu.Lock()
	if _, ok := h.subs[s]; ok {
		delete(h.subs, s)
		close(s.ch)
	}
	h.mu.Unlock()
}
