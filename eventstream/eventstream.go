/*
 * MIT License
 *
 * Copyright (c) 2024-2026 Janus Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package eventstream provides the in-process pub/sub broker used by the
// actor system to surface lifecycle events, deadletters and supervision
// events without coupling observers to the runtime internals.
package eventstream

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// Stream defines the event stream broker.
type Stream interface {
	// AddSubscriber adds a subscriber.
	AddSubscriber() Subscriber
	// RemoveSubscriber removes a subscriber from every topic and shuts it
	// down.
	RemoveSubscriber(sub Subscriber)
	// SubscribersCount returns the number of subscribers for a given topic.
	SubscribersCount(topic string) int
	// Subscribe subscribes a subscriber to a topic.
	Subscribe(sub Subscriber, topic string)
	// Unsubscribe removes a subscriber from a topic.
	Unsubscribe(sub Subscriber, topic string)
	// Publish publishes a message to a topic.
	Publish(topic string, msg any)
	// Close closes the stream.
	Close()
}

// EventsStream is the default Stream implementation. The broker keeps a flat
// subscriber registry and, per topic, the set of subscriber IDs listening to
// it; delivery happens outside the lock against a snapshot.
type EventsStream struct {
	mu          sync.RWMutex
	subscribers map[string]Subscriber
	topics      map[string]mapset.Set[string]
}

// enforce compilation error
var _ Stream = (*EventsStream)(nil)

// New creates an instance of EventsStream.
func New() Stream {
	return &EventsStream{
		subscribers: make(map[string]Subscriber),
		topics:      make(map[string]mapset.Set[string]),
	}
}

// AddSubscriber adds a subscriber
func (b *EventsStream) AddSubscriber() Subscriber {
	sub := newSubscriber()
	b.mu.Lock()
	b.subscribers[sub.ID()] = sub
	b.mu.Unlock()
	return sub
}

// RemoveSubscriber removes a subscriber
func (b *EventsStream) RemoveSubscriber(sub Subscriber) {
	b.mu.Lock()
	for _, topic := range sub.Topics() {
		sub.unsubscribe(topic)
		b.forget(topic, sub.ID())
	}
	delete(b.subscribers, sub.ID())
	b.mu.Unlock()

	sub.Shutdown()
}

// SubscribersCount returns the number of subscribers for a given topic
func (b *EventsStream) SubscribersCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if ids, ok := b.topics[topic]; ok {
		return ids.Cardinality()
	}
	return 0
}

// Subscribe subscribes a subscriber to a topic
func (b *EventsStream) Subscribe(sub Subscriber, topic string) {
	if !sub.Active() {
		return
	}

	sub.subscribe(topic)

	b.mu.Lock()
	ids, ok := b.topics[topic]
	if !ok {
		ids = mapset.NewSet[string]()
		b.topics[topic] = ids
	}
	ids.Add(sub.ID())
	b.mu.Unlock()
}

// Unsubscribe removes a subscriber from a topic
func (b *EventsStream) Unsubscribe(sub Subscriber, topic string) {
	sub.unsubscribe(topic)

	b.mu.Lock()
	b.forget(topic, sub.ID())
	b.mu.Unlock()
}

// Publish publishes a message to a topic
func (b *EventsStream) Publish(topic string, msg any) {
	b.mu.RLock()
	var recipients []Subscriber
	if ids, ok := b.topics[topic]; ok {
		recipients = make([]Subscriber, 0, ids.Cardinality())
		ids.Each(func(id string) bool {
			if sub, ok := b.subscribers[id]; ok {
				recipients = append(recipients, sub)
			}
			return false
		})
	}
	b.mu.RUnlock()

	if len(recipients) == 0 {
		return
	}
	message := NewMessage(topic, msg)
	for _, sub := range recipients {
		if sub.Active() {
			sub.signal(message)
		}
	}
}

// Close closes the stream
func (b *EventsStream) Close() {
	b.mu.Lock()
	for _, sub := range b.subscribers {
		if sub.Active() {
			sub.Shutdown()
		}
	}
	b.subscribers = make(map[string]Subscriber)
	b.topics = make(map[string]mapset.Set[string])
	b.mu.Unlock()
}

// forget drops a subscriber ID from a topic index entry. Callers hold the
// lock.
func (b *EventsStream) forget(topic, id string) {
	ids, ok := b.topics[topic]
	if !ok {
		return
	}
	ids.Remove(id)
	if ids.Cardinality() == 0 {
		delete(b.topics, topic)
	}
}
