package events

import (
	"sync"
)

type EventHandler func(event Event)

// EventManager fans out game events to registered handlers.
type EventManager struct {
	lock     sync.Mutex
	handlers []EventHandler
}

func NewEventManager() *EventManager {
	return &EventManager{}
}

// RegisterHandler registers a handler for events.
// The handler will be called in its own goroutine.
func (em *EventManager) RegisterHandler(handler EventHandler) {
	em.lock.Lock()
	defer em.lock.Unlock()
	em.handlers = append(em.handlers, handler)
}

// Trigger triggers an event.
// All registered handlers will be called in their own goroutine.
func (em *EventManager) Trigger(event Event) {
	em.lock.Lock()
	defer em.lock.Unlock()
	for _, handler := range em.handlers {
		go handler(event)
	}
}
