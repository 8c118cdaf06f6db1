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

package actor

import (
	"sync"
	"time"

	"github.com/janus-actors/janus/future"
)

// pool of envelopes. Envelopes are short-lived and allocated on every send,
// so they are recycled once the mailbox processing loop is done with them.
var envelopePool = sync.Pool{
	New: func() any {
		return new(Envelope)
	},
}

// Envelope pairs a message with its optional response slot while the message
// sits in a mailbox.
//
// A tell produces an envelope with a nil reply. An ask carries the
// Completable the sender is awaiting; whoever consumes the envelope is
// responsible for completing it exactly once.
type Envelope struct {
	message any
	reply   future.Completable
	sentAt  time.Time
}

// newEnvelope returns an envelope from the pool, initialized with the given
// message and reply slot.
func newEnvelope(message any, reply future.Completable) *Envelope {
	envelope := envelopePool.Get().(*Envelope)
	envelope.message = message
	envelope.reply = reply
	envelope.sentAt = time.Now()
	return envelope
}

// releaseEnvelope resets the envelope and returns it to the pool.
func releaseEnvelope(envelope *Envelope) {
	envelope.message = nil
	envelope.reply = nil
	envelope.sentAt = time.Time{}
	envelopePool.Put(envelope)
}

// Message returns the enclosed message.
func (e *Envelope) Message() any {
	return e.message
}

// Reply returns the response slot, nil for a tell.
func (e *Envelope) Reply() future.Completable {
	return e.reply
}

// SentAt returns the time the envelope was created.
func (e *Envelope) SentAt() time.Time {
	return e.sentAt
}
