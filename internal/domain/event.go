package domain

import (
	"context"
	"fmt"
	"sync"
	"time"
)

//go:generate mockgen -destination mocks/mock_event_bus.go -package mocks github.com/TraineeHub/notify/internal/domain EventBus

// EventType defines the type of an event
type EventType string

// Define event types
const (
	// EventHistorySaved fires after a History row is created or updated.
	EventHistorySaved EventType = "history.saved"
	// EventHistoryDeleted fires after a History row is removed.
	EventHistoryDeleted EventType = "history.deleted"
)

// EventPayload represents the data associated with an event
type EventPayload struct {
	Type EventType `json:"type"`
	// EntityID is the History row id the event refers to.
	EntityID string `json:"entity_id"`
	// History carries the saved row for history.saved events; nil on delete.
	History *History `json:"history,omitempty"`
}

// EventHandler is a function that handles events
type EventHandler func(ctx context.Context, payload EventPayload)

// EventAckCallback is a function that's called after an event is processed
// to acknowledge success or failure
type EventAckCallback func(err error)

// EventBus decouples History mutations from their downstream broadcast. The
// store is side-effect free; publication is a post-commit hook on this bus.
type EventBus interface {
	// Publish sends an event to all subscribers
	Publish(ctx context.Context, event EventPayload)

	// PublishWithAck sends an event to all subscribers and calls the
	// acknowledgment callback when all subscribers have processed the event
	// or if an error occurs
	PublishWithAck(ctx context.Context, event EventPayload, callback EventAckCallback)

	// Subscribe registers a handler for a specific event type
	Subscribe(eventType EventType, handler EventHandler)
}

// InMemoryEventBus is a simple in-memory implementation of the EventBus
type InMemoryEventBus struct {
	subscribers map[EventType][]EventHandler
	mu          sync.RWMutex
}

// NewInMemoryEventBus creates a new in-memory event bus
func NewInMemoryEventBus() *InMemoryEventBus {
	return &InMemoryEventBus{
		subscribers: make(map[EventType][]EventHandler),
	}
}

// Publish sends an event to all subscribers
func (b *InMemoryEventBus) Publish(ctx context.Context, event EventPayload) {
	b.PublishWithAck(ctx, event, nil)
}

// PublishWithAck sends an event to all subscribers and calls the acknowledgment callback
func (b *InMemoryEventBus) PublishWithAck(ctx context.Context, event EventPayload, callback EventAckCallback) {
	b.mu.RLock()
	handlers, exists := b.subscribers[event.Type]
	b.mu.RUnlock()

	if !exists || len(handlers) == 0 {
		// No handlers, consider it a success
		if callback != nil {
			callback(nil)
		}
		return
	}

	if callback != nil {
		var wg sync.WaitGroup
		wg.Add(len(handlers))

		errCh := make(chan error, len(handlers))

		for _, handler := range handlers {
			go func(h EventHandler) {
				defer wg.Done()

				handlerCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
				defer cancel()

				done := make(chan struct{})

				go func() {
					defer close(done)

					// Catch and handle panics in event handlers
					defer func() {
						if r := recover(); r != nil {
							errCh <- fmt.Errorf("panic in event handler: %v", r)
						}
					}()

					h(handlerCtx, event)
				}()

				select {
				case <-done:
					// Handler completed normally
				case <-handlerCtx.Done():
					errCh <- fmt.Errorf("event handler timed out: %v", handlerCtx.Err())
				}
			}(handler)
		}

		go func() {
			wg.Wait()
			close(errCh)

			var allErrors []error
			for err := range errCh {
				allErrors = append(allErrors, err)
			}

			if len(allErrors) > 0 {
				errMsg := fmt.Sprintf("%d errors occurred processing event", len(allErrors))
				for i, err := range allErrors {
					errMsg += fmt.Sprintf("\n  %d: %v", i+1, err)
				}
				callback(fmt.Errorf("%s", errMsg))
			} else {
				callback(nil)
			}
		}()
	} else {
		// No callback, just process handlers without waiting
		for _, handler := range handlers {
			go func(h EventHandler) {
				defer func() {
					if r := recover(); r != nil {
						fmt.Printf("ERROR: Panic in event handler: %v\n", r)
					}
				}()

				h(ctx, event)
			}(handler)
		}
	}
}

// Subscribe registers a handler for a specific event type
func (b *InMemoryEventBus) Subscribe(eventType EventType, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.subscribers[eventType]; !exists {
		b.subscribers[eventType] = make([]EventHandler, 0)
	}

	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}
