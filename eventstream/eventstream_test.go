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

package eventstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func collect(subscriber Subscriber) []any {
	var payloads []any
	for message := range subscriber.Iterator() {
		payloads = append(payloads, message.Payload())
	}
	return payloads
}

func TestEventsStream(t *testing.T) {
	t.Run("With publish and subscribe", func(t *testing.T) {
		stream := New()
		subscriber := stream.AddSubscriber()
		stream.Subscribe(subscriber, "events")
		assert.Equal(t, 1, stream.SubscribersCount("events"))

		stream.Publish("events", "first")
		stream.Publish("events", "second")

		payloads := collect(subscriber)
		require.Len(t, payloads, 2)
		assert.Equal(t, "first", payloads[0])
		assert.Equal(t, "second", payloads[1])

		stream.Close()
	})
	t.Run("With topic isolation", func(t *testing.T) {
		stream := New()
		subscriber := stream.AddSubscriber()
		stream.Subscribe(subscriber, "deadletters")

		stream.Publish("events", "ignored")
		stream.Publish("deadletters", "seen")

		payloads := collect(subscriber)
		require.Len(t, payloads, 1)
		assert.Equal(t, "seen", payloads[0])

		stream.Close()
	})
	t.Run("With fan-out", func(t *testing.T) {
		stream := New()
		first := stream.AddSubscriber()
		second := stream.AddSubscriber()
		stream.Subscribe(first, "events")
		stream.Subscribe(second, "events")
		assert.Equal(t, 2, stream.SubscribersCount("events"))

		stream.Publish("events", "everyone")

		assert.Len(t, collect(first), 1)
		assert.Len(t, collect(second), 1)

		stream.Close()
	})
	t.Run("With unsubscribe", func(t *testing.T) {
		stream := New()
		subscriber := stream.AddSubscriber()
		stream.Subscribe(subscriber, "events")
		stream.Unsubscribe(subscriber, "events")
		assert.Zero(t, stream.SubscribersCount("events"))
		assert.Empty(t, subscriber.Topics())

		stream.Publish("events", "missed")
		assert.Empty(t, collect(subscriber))

		stream.Close()
	})
	t.Run("With removed subscriber", func(t *testing.T) {
		stream := New()
		subscriber := stream.AddSubscriber()
		stream.Subscribe(subscriber, "events")

		stream.RemoveSubscriber(subscriber)
		assert.False(t, subscriber.Active())
		assert.Zero(t, stream.SubscribersCount("events"))

		// publishing to an inactive subscriber is a no-op
		stream.Publish("events", "missed")

		stream.Close()
	})
	t.Run("With closed stream", func(t *testing.T) {
		stream := New()
		subscriber := stream.AddSubscriber()
		stream.Subscribe(subscriber, "events")

		stream.Close()
		assert.False(t, subscriber.Active())
		assert.Zero(t, stream.SubscribersCount("events"))
	})
}

func TestMessage(t *testing.T) {
	message := NewMessage("events", "payload")
	assert.Equal(t, "events", message.Topic())
	assert.Equal(t, "payload", message.Payload())
}
