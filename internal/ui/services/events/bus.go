package events

import (
	"fmt"
	"sync"
)

// Bus is a simple event bus for UI services.
// Handlers run synchronously on the publishing goroutine, which is the UI loop.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type, see TypeName
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// SubscribeAll registers a listener for every event
func (b *Bus) SubscribeAll(handler func(interface{})) {
	b.Subscribe(anyEvent, handler)
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	handlers := append([]func(interface{}){}, b.listeners[TypeName(event)]...)
	handlers = append(handlers, b.listeners[anyEvent]...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

const anyEvent = "*"

// TypeName is the subscription key for an event value
func TypeName(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
