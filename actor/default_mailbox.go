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
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	gerrors "github.com/janus-actors/janus/errors"
)

// node returns the queue node
type node struct {
	value *Envelope
	next  unsafe.Pointer
}

// nodePool is a pool of queue nodes to reduce allocations on the send path.
var nodePool = sync.Pool{
	New: func() any {
		return new(node)
	},
}

// DefaultMailbox is an unbounded intrusive MPSC (multi-producer single
// consumer) mailbox. Producers link envelopes onto the tail with a single
// atomic swap; the sole consumer walks the list from the head. Per-producer
// enqueue order is preserved, which gives FIFO delivery for every
// sender/receiver pair.
type DefaultMailbox struct {
	head   unsafe.Pointer
	tail   unsafe.Pointer
	length int64
	// entering counts producers between the disposed check and the tail
	// link; Dispose waits for it to drain so no envelope is stranded
	entering int64
	disposed atomic.Bool
}

// enforce compilation error
var _ Mailbox = (*DefaultMailbox)(nil)

// NewDefaultMailbox creates an instance of DefaultMailbox
func NewDefaultMailbox() *DefaultMailbox {
	dummy := nodePool.Get().(*node)
	dummy.value = nil
	dummy.next = nil
	mailbox := &DefaultMailbox{
		head: unsafe.Pointer(dummy),
		tail: unsafe.Pointer(dummy),
	}
	return mailbox
}

// Enqueue places the given envelope in the mailbox. Safe for concurrent use
// by multiple producers.
func (m *DefaultMailbox) Enqueue(envelope *Envelope) error {
	atomic.AddInt64(&m.entering, 1)
	defer atomic.AddInt64(&m.entering, -1)

	if m.disposed.Load() {
		return gerrors.ErrMailboxClosed
	}

	n := nodePool.Get().(*node)
	n.value = envelope
	atomic.StorePointer(&n.next, nil)

	prev := (*node)(atomic.SwapPointer(&m.tail, unsafe.Pointer(n)))
	atomic.StorePointer(&prev.next, unsafe.Pointer(n))
	atomic.AddInt64(&m.length, 1)
	return nil
}

// Dequeue takes the next envelope from the mailbox, or nil when the mailbox
// is empty. Only a single consumer may call Dequeue at a time; the actor's
// processing loop guarantees this.
func (m *DefaultMailbox) Dequeue() *Envelope {
	head := (*node)(atomic.LoadPointer(&m.head))
	next := (*node)(atomic.LoadPointer(&head.next))
	if next == nil {
		return nil
	}

	envelope := next.value
	next.value = nil
	atomic.StorePointer(&m.head, unsafe.Pointer(next))
	atomic.AddInt64(&m.length, -1)

	// the dequeued node becomes the new dummy head; recycle the old one
	head.next = nil
	nodePool.Put(head)
	return envelope
}

// IsEmpty returns true when the mailbox is empty
func (m *DefaultMailbox) IsEmpty() bool {
	return m.Len() == 0
}

// Len returns the number of envelopes in the mailbox
func (m *DefaultMailbox) Len() int64 {
	return atomic.LoadInt64(&m.length)
}

// Dispose closes the mailbox for new envelopes and waits for producers
// already past the closed check to finish linking. Once Dispose returns,
// every accepted envelope is visible to a subsequent drain. Envelopes
// already enqueued remain dequeueable.
func (m *DefaultMailbox) Dispose() {
	m.disposed.Store(true)
	for atomic.LoadInt64(&m.entering) != 0 {
		runtime.Gosched()
	}
}
