// Package events carries cross-cutting notifications between layers that do
// not call each other directly, e.g. the HTTP layer telling the session
// manager the token was rejected. The bus is constructed once per app and
// injected; it is never package-level state.
package events

import "sync"

type Name string

// ForceLogout is published by the HTTP layer when the backend rejects the
// token with a 401 that is not an unverified-email response.
const ForceLogout Name = "auth.force_logout"

type Event struct {
	Name    Name
	Payload any
}

type Handler func(Event)

type Bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[Name]map[int]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[Name]map[int]Handler)}
}

// Subscribe registers h for events named n and returns an unsubscribe
// function.
func (b *Bus) Subscribe(n Name, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[n] == nil {
		b.handlers[n] = make(map[int]Handler)
	}
	id := b.nextID
	b.nextID++
	b.handlers[n][id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers[n], id)
	}
}

// Publish invokes every handler subscribed to the event's name. Dispatch is
// synchronous; handlers must not block.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers[e.Name]))
	for _, h := range b.handlers[e.Name] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}
