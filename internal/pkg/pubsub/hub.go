// Package pubsub is an in-process publish/subscribe hub keyed by topic.
// Publishing never blocks: a subscriber whose buffer is full misses the
// message.
package pubsub

import (
	"sync"
	"sync/atomic"
)

// DefaultBuffer is the per-subscriber queue length.
const DefaultBuffer = 16

// Subscription receives the messages published to one topic.
type Subscription struct {
	topic   string
	ch      chan []byte
	hub     *Hub
	dropped atomic.Uint64
	once    sync.Once
}

// C delivers messages until the subscription is closed.
func (s *Subscription) C() <-chan []byte { return s.ch }

// Dropped counts messages lost because the buffer was full.
func (s *Subscription) Dropped() uint64 { return s.dropped.Load() }

// Close unsubscribes and closes C. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() { s.hub.remove(s) })
}

// Hub fans messages out to the subscribers of a topic.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[*Subscription]struct{}
	buffer int
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{
		topics: make(map[string]map[*Subscription]struct{}),
		buffer: buffer,
	}
}

func (h *Hub) Subscribe(topic string) *Subscription {
	s := &Subscription{
		topic: topic,
		ch:    make(chan []byte, h.buffer),
		hub:   h,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.topics[topic]
	if !ok {
		subs = make(map[*Subscription]struct{})
		h.topics[topic] = subs
	}
	subs[s] = struct{}{}
	return s
}

// Publish delivers msg to every current subscriber of topic and returns how
// many received it.
func (h *Hub) Publish(topic string, msg []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for s := range h.topics[topic] {
		select {
		case s.ch <- msg:
			delivered++
		default:
			s.dropped.Add(1)
		}
	}
	return delivered
}

// Subscribers returns the number of open subscriptions on topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

func (h *Hub) remove(s *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if subs, ok := h.topics[s.topic]; ok {
		delete(subs, s)
		if len(subs) == 0 {
			delete(h.topics, s.topic)
		}
	}
	close(s.ch)
}
