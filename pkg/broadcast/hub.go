package broadcast

import "sync"

// Hub fans out a coarse "orders changed" invalidation signal to subscribed
// admin sessions. The signal carries no payload: receivers re-fetch the order
// list on notification. There is no delivery guarantee, no ordering across
// rapid mutations, and no replay for disconnected subscribers.
type Hub struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{subs: make(map[chan struct{}]struct{})}
}

// Subscribe registers a new listener. The returned cancel func must be called
// when the listener goes away; it is safe to call more than once.
func (h *Hub) Subscribe() (<-chan struct{}, func()) {
	// Buffer of one: a pending signal already means "state changed, re-fetch",
	// so further signals while one is pending coalesce into it.
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
		})
	}
	return ch, cancel
}

// Notify signals every subscriber that order data changed. It never blocks:
// subscribers with a signal already pending are skipped.
func (h *Hub) Notify() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Len returns the current number of subscribers
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
