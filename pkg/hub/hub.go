package hub

import "sync"

// Hub fans values out to subscribers grouped by key. Publishing never blocks:
// a subscriber whose buffer is full misses the value.
type Hub[T any] struct {
	mu     sync.RWMutex
	subs   map[string]map[chan T]struct{}
	buffer int
}

func New[T any](buffer int) *Hub[T] {
	if buffer <= 0 {
		buffer = 1
	}
	return &Hub[T]{
		subs:   make(map[string]map[chan T]struct{}),
		buffer: buffer,
	}
}

// Subscribe returns a channel for key and a func that unsubscribes and closes it.
func (h *Hub[T]) Subscribe(key string) (<-chan T, func()) {
	ch := make(chan T, h.buffer)

	h.mu.Lock()
	if h.subs[key] == nil {
		h.subs[key] = make(map[chan T]struct{})
	}
	h.subs[key][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[key], ch)
			if len(h.subs[key]) == 0 {
				delete(h.subs, key)
			}
			close(ch)
		})
	}
	return ch, cancel
}

// Publish returns the number of subscribers that received v.
func (h *Hub[T]) Publish(key string, v T) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for ch := range h.subs[key] {
		select {
		case ch <- v:
			delivered++
		default:
		}
	}
	return delivered
}

func (h *Hub[T]) Subscribers(key string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[key])
}
