package feature

import (
	"sync"
)

// Event names published by the manager.
const (
	EventFeatureStarted = "feature.started"
	EventFeatureFailed  = "feature.failed"
)

// EventBus represents a simple event bus for inter-feature communication
type EventBus struct {
	subscribers map[string][]func(any)
	mu          sync.RWMutex
	wg          sync.WaitGroup
}

// NewEventBus creates a new EventBus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]func(any)),
	}
}

// Subscribe adds a subscriber for a specific event
func (eb *EventBus) Subscribe(eventName string, handler func(any)) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.subscribers[eventName] = append(eb.subscribers[eventName], handler)
}

// Publish delivers data to every subscriber of eventName, each on its own goroutine
func (eb *EventBus) Publish(eventName string, data any) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	for _, handler := range eb.subscribers[eventName] {
		eb.wg.Add(1)
		go func(h func(any)) {
			defer eb.wg.Done()
			h(data)
		}(handler)
	}
}

// Wait blocks until every delivery started by Publish has returned
func (eb *EventBus) Wait() {
	eb.wg.Wait()
}
