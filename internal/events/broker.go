// Path: internal/events/broker.go
package events

import "sync"

// TopicRefreshed announces that a fresh batch landed in the cache. A
// display layer subscribes to it instead of polling the manager.
const TopicRefreshed = "datasets:refreshed"

// RefreshInfo describes one completed upstream refresh.
type RefreshInfo struct {
	Key     string // cache key the batch was stored under
	Fetched int    // records that normalized cleanly
	Skipped int    // raw entries dropped during normalization
}

// Event represents a message passed through the broker.
type Event struct {
	Topic string
	Data  any
}

// Broker implements a simple in-memory pub/sub system.
type Broker struct {
	mu          sync.RWMutex
	subscribers map[string][]chan Event
}

// NewBroker creates a new event broker.
func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[string][]chan Event),
	}
}

// Subscribe creates a new subscription to a topic.
// It returns a read-only channel where events for that topic will be sent.
func (b *Broker) Subscribe(topic string) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, 1) // Buffered channel to prevent blocking publishers
	b.subscribers[topic] = append(b.subscribers[topic], ch)
	return ch
}

// Publish sends an event to all subscribers of a topic. A subscriber that
// is not ready to receive misses the event rather than blocking the
// publisher.
func (b *Broker) Publish(topic string, data any) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	event := Event{Topic: topic, Data: data}
	for _, ch := range b.subscribers[topic] {
		select {
		case ch <- event:
		default:
		}
	}
}
